package traces

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/desdiag/automaton"
)

var (
	// ErrInvalidSteps is returned when minSteps >= maxSteps or minSteps < 1.
	ErrInvalidSteps = errors.New("traces: invalid step range")

	// ErrSampleExhausted is returned when the attempt budget is spent before
	// the dataset reaches the requested size.
	ErrSampleExhausted = errors.New("traces: attempt budget exhausted")

	// ErrNilAutomaton is returned when a nil automaton or config is passed.
	ErrNilAutomaton = errors.New("traces: automaton or config is nil")
)

// Log is one labelled observation.
type Log struct {
	Observation string
	Label       int
}

// String renders "<observation>T<label>".
func (l Log) String() string { return l.Observation + "T" + strconv.Itoa(l.Label) }

// Dataset is a conflict-free set of labelled observations.
type Dataset struct {
	// MinLen and MaxLen record the walk length range used for sampling.
	MinLen, MaxLen int
	// Observable lists the observable symbols, rendered in the header.
	Observable []automaton.Symbol

	numLabels  int
	labels     map[string]int
	conflicted map[string]bool
}

// NewDataset returns an empty dataset accepting labels in [0, numLabels).
func NewDataset(numLabels, minLen, maxLen int, observable []automaton.Symbol) *Dataset {
	return &Dataset{
		MinLen:     minLen,
		MaxLen:     maxLen,
		Observable: append([]automaton.Symbol(nil), observable...),
		numLabels:  numLabels,
		labels:     make(map[string]int),
		conflicted: make(map[string]bool),
	}
}

// Add inserts l and reports whether the dataset grew. A second log with the
// same observation and label is ignored; one with a different label removes
// the observation and blocks it from coming back. Out-of-range labels are
// rejected.
func (d *Dataset) Add(l Log) bool {
	if l.Label < 0 || l.Label >= d.numLabels || d.conflicted[l.Observation] {
		return false
	}
	prev, ok := d.labels[l.Observation]
	if !ok {
		d.labels[l.Observation] = l.Label
		return true
	}
	if prev != l.Label {
		delete(d.labels, l.Observation)
		d.conflicted[l.Observation] = true
	}

	return false
}

// Len returns the number of logs.
func (d *Dataset) Len() int { return len(d.labels) }

// Conflicts returns the number of observations dropped for conflicting labels.
func (d *Dataset) Conflicts() int { return len(d.conflicted) }

// NumLabels returns the size of the label space.
func (d *Dataset) NumLabels() int { return d.numLabels }

// Label returns the label of observation, if present.
func (d *Dataset) Label(observation string) (int, bool) {
	l, ok := d.labels[observation]

	return l, ok
}

// Logs returns every log sorted by its rendered line.
func (d *Dataset) Logs() []Log {
	out := make([]Log, 0, len(d.labels))
	for obs, l := range d.labels {
		out = append(out, Log{Observation: obs, Label: l})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// Statistics returns the number of logs per label.
func (d *Dataset) Statistics() []int {
	stats := make([]int, d.numLabels)
	for _, l := range d.labels {
		stats[l]++
	}

	return stats
}

// Header renders the statistics line written before the logs.
func (d *Dataset) Header() string {
	stats := d.Statistics()
	var b strings.Builder
	fmt.Fprintf(&b, "Logs size: %d", d.Len())
	if len(stats) > 0 {
		fmt.Fprintf(&b, ", Normal logs: %d", stats[0])
	}
	for i := 1; i < len(stats); i++ {
		fmt.Fprintf(&b, ", T%d logs: %d", i, stats[i])
	}
	fmt.Fprintf(&b, ",minLen:%d,maxLen:%d observable events:[", d.MinLen, d.MaxLen)
	for i, s := range d.Observable {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteRune(rune(s))
	}
	b.WriteByte(']')

	return b.String()
}

// WriteTo writes the header and one line per log. It implements io.WriterTo.
func (d *Dataset) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(s string) error {
		m, err := bw.WriteString(s)
		n += int64(m)
		if err != nil {
			return err
		}
		m, err = bw.WriteString("\n")
		n += int64(m)
		return err
	}

	if err := write(d.Header()); err != nil {
		return n, fmt.Errorf("traces: WriteTo: %w", err)
	}
	for _, l := range d.Logs() {
		if err := write(l.String()); err != nil {
			return n, fmt.Errorf("traces: WriteTo: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("traces: WriteTo: %w", err)
	}

	return n, nil
}
