package traces

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/desdiag/automaton"
)

// Sampler draws labelled running logs from one automaton.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	a   *automaton.Automaton
	cfg *automaton.Config

	rng         *rand.Rand
	log         *slog.Logger
	minSteps    int
	maxSteps    int
	maxAttempts int
}

// NewSampler validates the step range and returns a sampler for a.
//
// Errors:
//   - ErrNilAutomaton if a or cfg is nil.
//   - ErrInvalidSteps if minSteps < 1 or minSteps >= maxSteps.
func NewSampler(a *automaton.Automaton, cfg *automaton.Config, opts ...Option) (*Sampler, error) {
	if a == nil || cfg == nil {
		return nil, ErrNilAutomaton
	}
	c := samplerConfig{
		logger:   slog.New(slog.DiscardHandler),
		minSteps: DefaultMinSteps,
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.minSteps < 1 || c.minSteps >= c.maxSteps {
		return nil, fmt.Errorf("traces: NewSampler: [%d, %d]: %w", c.minSteps, c.maxSteps, ErrInvalidSteps)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Sampler{
		a:           a,
		cfg:         cfg,
		rng:         c.rng,
		log:         c.logger,
		minSteps:    c.minSteps,
		maxSteps:    c.maxSteps,
		maxAttempts: c.maxAttempts,
	}, nil
}

// NumLabels returns the size of the label space: k+1 for single-fault
// systems, 2^k for multi-fault ones.
func (s *Sampler) NumLabels() int {
	k := s.cfg.NumFaults()
	if s.cfg.MultiFaulty {
		return 1 << k
	}

	return k + 1
}

// Walk takes one random walk from the root and returns its labelled
// observation. The walk stops early at a state without transitions.
func (s *Sampler) Walk() Log {
	steps := s.minSteps + s.rng.Intn(s.maxSteps-s.minSteps+1)
	run := make([]automaton.Symbol, 0, steps)
	cur := s.a.Root()
	for ; steps > 0; steps-- {
		syms := s.a.Symbols(cur)
		if len(syms) == 0 {
			break
		}
		sym := syms[s.rng.Intn(len(syms))]
		next, err := s.a.Navigate(cur, sym)
		if err != nil {
			break
		}
		run = append(run, sym)
		cur = next
	}

	return s.Label(run)
}

// Label projects run onto its observable symbols and attaches the label.
func (s *Sampler) Label(run []automaton.Symbol) Log {
	var obs strings.Builder
	k := s.cfg.NumFaults()
	seen := make([]bool, k)
	for _, sym := range run {
		if i := s.cfg.FaultIndex(sym); i >= 0 {
			seen[i] = true
			continue
		}
		obs.WriteRune(rune(sym))
	}

	label := 0
	if s.cfg.MultiFaulty {
		for i, ok := range seen {
			if ok {
				label |= 1 << (k - i - 1)
			}
		}
	} else {
		for i, ok := range seen {
			if ok {
				label = i + 1
				break
			}
		}
	}

	return Log{Observation: obs.String(), Label: label}
}

// Sample walks until the dataset holds size logs.
//
// Errors:
//   - ErrSampleExhausted (with the partial dataset) when the attempt budget
//     runs out first.
//   - ctx.Err() on cancellation, also with the partial dataset.
func (s *Sampler) Sample(ctx context.Context, size int) (*Dataset, error) {
	d := NewDataset(s.NumLabels(), s.minSteps, s.maxSteps, s.cfg.Observable)
	budget := s.maxAttempts
	if budget <= 0 {
		budget = attemptsPerLog * max(size, 1)
	}
	s.log.Info("sampling running logs",
		slog.Int("size", size),
		slog.Int("min_steps", s.minSteps),
		slog.Int("max_steps", s.maxSteps))

	attempts := 0
	for d.Len() < size {
		if err := ctx.Err(); err != nil {
			return d, err
		}
		if attempts == budget {
			s.log.Warn("sampling budget exhausted",
				slog.Int("attempts", attempts),
				slog.Int("logs", d.Len()),
				slog.Int("conflicts", d.Conflicts()))
			return d, fmt.Errorf("traces: Sample: %d of %d logs after %d walks: %w",
				d.Len(), size, attempts, ErrSampleExhausted)
		}
		attempts++
		l := s.Walk()
		if d.Add(l) {
			s.log.Debug("log", slog.String("log", l.String()))
		}
	}

	stats := d.Statistics()
	s.log.Info("running logs sampled",
		slog.Int("logs", d.Len()),
		slog.Int("normal", stats[0]),
		slog.Int("conflicts", d.Conflicts()),
		slog.Int("attempts", attempts))

	return d, nil
}
