// Package worker provides a parallel color conversion worker pool.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/MeKo-Tech/colorconv/internal/color"
	"github.com/MeKo-Tech/colorconv/internal/converter"
)

// Converter is the interface for a single conversion.
// This matches the signature of converter.Converter.Convert.
type Converter interface {
	Convert(input string) converter.Result
}

// Task represents a single input line to convert.
type Task struct {
	Input string
	Line  int
}

// Result represents the outcome of a conversion task.
type Result struct {
	Task       Task
	Conversion converter.Result
	Err        error
	Elapsed    time.Duration
}

// Tally counts finished tasks by what their input turned out to be.
// Invalid inputs are those that fell back to the default color.
type Tally struct {
	Total     int
	Hex       int
	RGB       int
	Invalid   int
	Cancelled int
}

// Completed returns the number of finished tasks, cancelled ones included.
func (t Tally) Completed() int {
	return t.Hex + t.RGB + t.Invalid + t.Cancelled
}

// Converted returns the number of inputs that were valid colors.
func (t Tally) Converted() int {
	return t.Hex + t.RGB
}

func (t *Tally) add(r Result) {
	switch {
	case r.Err != nil:
		t.Cancelled++
	case !r.Conversion.Valid:
		t.Invalid++
	case r.Conversion.Kind == color.KindRGB:
		t.RGB++
	default:
		t.Hex++
	}
}

// ProgressFunc is called with the running tally after each task completes.
type ProgressFunc func(Tally)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Converter  Converter
	OnProgress ProgressFunc
}

// Pool manages parallel conversion.
type Pool struct {
	workers    int
	converter  Converter
	onProgress ProgressFunc
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		converter:  cfg.Converter,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns results in completion order.
// The function blocks until all tasks complete or the context is cancelled;
// tasks not started before cancellation carry ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// The buffer holds every task, so feeding never blocks.
	for _, task := range tasks {
		taskCh <- task
	}
	close(taskCh)

	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		tally := Tally{Total: len(tasks)}
		for result := range resultCh {
			results = append(results, result)
			tally.add(result)

			if p.onProgress != nil {
				p.onProgress(tally)
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)
	<-done

	return results
}

// worker processes tasks from the task channel and sends results to the result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			results <- Result{
				Task: task,
				Err:  ctx.Err(),
			}
			continue
		default:
		}

		start := time.Now()
		conv := p.converter.Convert(task.Input)

		results <- Result{
			Task:       task,
			Conversion: conv,
			Elapsed:    time.Since(start),
		}
	}
}
