package traces

import (
	"log/slog"
	"math/rand"
)

const (
	// DefaultMinSteps and DefaultMaxSteps bound the walk length.
	DefaultMinSteps = 10
	DefaultMaxSteps = 100

	// attemptsPerLog sizes the default attempt budget of Sample.
	attemptsPerLog = 50
)

// Option configures a Sampler.
type Option func(*samplerConfig)

type samplerConfig struct {
	rng         *rand.Rand
	logger      *slog.Logger
	minSteps    int
	maxSteps    int
	maxAttempts int
}

// WithSteps sets the walk length range [minSteps, maxSteps]. The range is
// checked by NewSampler.
func WithSteps(minSteps, maxSteps int) Option {
	return func(c *samplerConfig) {
		c.minSteps = minSteps
		c.maxSteps = maxSteps
	}
}

// WithSeed seeds a private generator.
func WithSeed(seed int64) Option {
	return func(c *samplerConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("traces: WithRand(nil)")
	}
	return func(c *samplerConfig) {
		c.rng = r
	}
}

// WithLogger routes sampling records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("traces: WithLogger(nil)")
	}
	return func(c *samplerConfig) {
		c.logger = l
	}
}

// WithMaxAttempts caps the number of walks one Sample call may take.
// n <= 0 restores the default of 50 walks per requested log.
func WithMaxAttempts(n int) Option {
	return func(c *samplerConfig) {
		c.maxAttempts = n
	}
}
