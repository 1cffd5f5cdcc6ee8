package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/colorconv/internal/converter"
	"github.com/MeKo-Tech/colorconv/internal/worker"
)

var batchCmd = &cobra.Command{
	Use:   "batch [FILE|-]",
	Short: "Convert one color per line from a file or stdin",
	Long: `Convert many colors in parallel. Each non-blank input line is one value.
Results are printed in input order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	batchCmd.Flags().Bool("progress", false, "Show progress bar on stderr")
	batchCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	batchCmd.Flags().Bool("allow-invalid", true, "Exit successfully even if some lines are not colors")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"batch.workers", "workers"},
		{"batch.progress", "progress"},
		{"batch.format", "format"},
		{"batch.allow_invalid", "allow-invalid"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, batchCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	workers := viper.GetInt("batch.workers")
	showProgress := viper.GetBool("batch.progress")
	format := viper.GetString("batch.format")
	allowInvalid := viper.GetBool("batch.allow_invalid")

	if logger == nil {
		initLogging()
	}

	if err := validateFormat(format); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
		source = args[0]
	}

	tasks, err := readTasks(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}

	conv, err := newConverter()
	if err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received interrupt signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Debug("Starting batch conversion", "source", source, "colors", len(tasks), "workers", workers)

	progress := worker.NewProgress(len(tasks), showProgress)
	pool := worker.New(worker.Config{
		Workers:    workers,
		Converter:  conv,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	conversions, invalid, err := collectResults(results)
	if err != nil {
		return err
	}

	if err := writeResults(cmd.OutOrStdout(), conversions, format); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	logger.Debug(progress.Summary())

	if invalid > 0 && !allowInvalid {
		return fmt.Errorf("%d of %d lines are not valid colors", invalid, len(conversions))
	}
	return nil
}

// readTasks turns each non-blank line into a task numbered from 1.
func readTasks(r io.Reader) ([]worker.Task, error) {
	var tasks []worker.Task
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		tasks = append(tasks, worker.Task{Line: line, Input: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// collectResults orders results by input line and counts invalid inputs.
// Any task error (cancellation) aborts the batch.
func collectResults(results []worker.Result) ([]converter.Result, int, error) {
	slices.SortFunc(results, func(a, b worker.Result) int {
		return a.Task.Line - b.Task.Line
	})

	conversions := make([]converter.Result, 0, len(results))
	invalid := 0
	for _, r := range results {
		if r.Err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", r.Task.Line, r.Err)
		}
		if !r.Conversion.Valid {
			invalid++
			logger.Warn("Invalid color", "line", r.Task.Line, "input", r.Task.Input)
		}
		conversions = append(conversions, r.Conversion)
	}
	return conversions, invalid, nil
}
