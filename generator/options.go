package generator

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/diagnosability"
	"github.com/katalvlaran/desdiag/metrics"
)

// DefaultMaxAttempts bounds a run when WithMaxAttempts is not given.
const DefaultMaxAttempts = 100

// Option configures a Generator.
type Option func(*config)

type config struct {
	extraNormal bool
	multiFaulty bool
	maxAttempts int
	rng         *rand.Rand
	logger      *slog.Logger
	metrics     *metrics.Registry
	order       automaton.FaultOrder
	pairing     diagnosability.Pairing
}

func newConfig(opts ...Option) config {
	c := config{
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.DiscardHandler),
		order:       automaton.OrderReversed,
		pairing:     diagnosability.PairFirst,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// WithExtraNormal appends a recovery segment to every build.
func WithExtraNormal(on bool) Option {
	return func(c *config) { c.extraNormal = on }
}

// WithMultiFaulty cross-wires fault segments and uses the multi-fault check.
func WithMultiFaulty(on bool) Option {
	return func(c *config) { c.multiFaulty = on }
}

// WithMaxAttempts caps the builds of one run. Panics when n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("generator: WithMaxAttempts(n < 1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithSeed seeds the random source shared by every build of the generator.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger routes records of the generator, the builder and the check to
// l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records builds, checks and attempts into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *config) { c.metrics = r }
}

// WithFaultOrder selects the fault symbol ordering of every build.
// Panics on an unknown ordering.
func WithFaultOrder(o automaton.FaultOrder) Option {
	if !o.Valid() {
		panic("generator: WithFaultOrder(unknown)")
	}
	return func(c *config) { c.order = o }
}

// WithPairing selects the composite successor pairing of the check.
func WithPairing(p diagnosability.Pairing) Option {
	return func(c *config) { c.pairing = p }
}
