package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 30

// barGlyphs fill the bar for hex, rgb and invalid inputs, in that order.
// Cancelled tasks stay unfilled.
var barGlyphs = [...]string{"█", "▓", "▒"}

const barEmpty = "░"

// Progress renders a batch tally as a stacked bar on stderr.
type Progress struct {
	mu      sync.Mutex
	out     io.Writer
	started time.Time
	tally   Tally
	enabled bool
}

// NewProgress creates a tracker for total tasks. Nothing is printed unless enabled.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		out:     os.Stderr,
		started: time.Now(),
		tally:   Tally{Total: total},
		enabled: enabled,
	}
}

// Observe records the latest tally and redraws the bar.
func (p *Progress) Observe(t Tally) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tally = t
	if p.enabled {
		fmt.Fprint(p.out, "\r"+p.line()+"    ")
	}
}

// Callback returns a ProgressFunc for Config.OnProgress.
func (p *Progress) Callback() ProgressFunc {
	return p.Observe
}

// Tally returns the last observed tally.
func (p *Progress) Tally() Tally {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tally
}

// Done redraws the final bar and ends the line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		fmt.Fprintln(p.out, "\r"+p.line())
	}
}

// Summary describes the finished batch, e.g.
// "Converted 8/10 colors (5 hex, 3 rgb), 2 invalid in 4s".
func (p *Progress) Summary() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	t := p.tally
	s := fmt.Sprintf("Converted %d/%d colors (%d hex, %d rgb), %d invalid",
		t.Converted(), t.Total, t.Hex, t.RGB, t.Invalid)
	if t.Cancelled > 0 {
		s += fmt.Sprintf(", %d cancelled", t.Cancelled)
	}
	return s + " in " + formatDuration(time.Since(p.started))
}

// line must be called with mu held.
func (p *Progress) line() string {
	t := p.tally
	s := fmt.Sprintf("[%s] %d/%d  hex %d  rgb %d  invalid %d",
		bar(t), t.Completed(), t.Total, t.Hex, t.RGB, t.Invalid)
	if t.Cancelled > 0 {
		s += fmt.Sprintf("  cancelled %d", t.Cancelled)
	}
	if t.Completed() >= t.Total {
		s += " - " + formatDuration(time.Since(p.started))
	}
	return s
}

// bar stacks one segment per kind. Segment ends are rounded on the running
// sum so the filled cells never exceed barWidth.
func bar(t Tally) string {
	if t.Total <= 0 {
		return strings.Repeat(barEmpty, barWidth)
	}

	var b strings.Builder
	filled, sum := 0, 0
	for i, n := range [...]int{t.Hex, t.RGB, t.Invalid} {
		sum += n
		end := min(sum*barWidth/t.Total, barWidth)
		b.WriteString(strings.Repeat(barGlyphs[i], end-filled))
		filled = end
	}
	b.WriteString(strings.Repeat(barEmpty, barWidth-filled))
	return b.String()
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	}
}
