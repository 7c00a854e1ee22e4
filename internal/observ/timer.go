package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase records the duration of one pipeline phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks pipeline phases and a few counters. Safe for concurrent use:
// directory scans end file phases from worker goroutines.
type Timer struct {
	mu       sync.Mutex
	phases   []Phase
	counters map[string]int64
	order    []string
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8), counters: make(map[string]int64)}
}

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Add increments a named counter (tokens, bytes, files).
func (t *Timer) Add(counter string, n int64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.counters[counter]; !ok {
		t.order = append(t.order, counter)
	}
	t.counters[counter] += n
}

// Counter returns the current value of a counter.
func (t *Timer) Counter(name string) int64 {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counters[name]
}

// Summary returns a human-readable table of phases and counters.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-20s %9.3f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %9.3f ms\n", "total", report.TotalMS)
	for _, c := range report.Counters {
		fmt.Fprintf(&b, "  %-20s %9d\n", c.Name, c.Value)
	}
	return b.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name" msgpack:"name"`
	DurationMS float64 `json:"duration_ms" msgpack:"duration_ms"`
	Note       string  `json:"note,omitempty" msgpack:"note,omitempty"`
}

// CounterReport is one named counter.
type CounterReport struct {
	Name  string `json:"name" msgpack:"name"`
	Value int64  `json:"value" msgpack:"value"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS  float64         `json:"total_ms" msgpack:"total_ms"`
	Phases   []PhaseReport   `json:"phases" msgpack:"phases"`
	Counters []CounterReport `json:"counters,omitempty" msgpack:"counters,omitempty"`
}

// Report snapshots phases in start order. The total covers top-level phases
// only: a phase that starts inside an earlier one is not added twice.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	var coveredUntil time.Time
	for i, phase := range t.phases {
		if end := phase.Start.Add(phase.Dur); phase.Start.After(coveredUntil) || phase.Start.Equal(coveredUntil) {
			total += phase.Dur
			coveredUntil = end
		} else if end.After(coveredUntil) {
			total += end.Sub(coveredUntil)
			coveredUntil = end
		}
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	for _, name := range t.order {
		report.Counters = append(report.Counters, CounterReport{Name: name, Value: t.counters[name]})
	}
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
