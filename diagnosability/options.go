package diagnosability

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/desdiag/automaton"
)

// Option configures a diagnosability check.
type Option func(*options)

type options struct {
	ctx      context.Context
	logger   *slog.Logger
	order    automaton.FaultOrder
	orderSet bool
	pairing  Pairing
	stats    *Stats
}

func newOptions(opts ...Option) options {
	o := options{
		ctx:     context.Background(),
		logger:  slog.New(slog.DiscardHandler),
		pairing: PairFirst,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// resolveOrder returns the explicit ordering, or the one recorded in cfg.
func (o options) resolveOrder(cfg *automaton.Config) automaton.FaultOrder {
	if o.orderSet {
		return o.order
	}

	return cfg.FaultOrder
}

// WithContext sets a context checked between traversal steps.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("diagnosability: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithFaultOrder overrides the symbol → tag ordering recorded in the config.
// Panics on an unknown ordering.
func WithFaultOrder(order automaton.FaultOrder) Option {
	if !order.Valid() {
		panic("diagnosability: WithFaultOrder(unknown)")
	}
	return func(o *options) {
		o.order = order
		o.orderSet = true
	}
}

// WithPairing selects the successor pairing for composite nodes whose two
// components differ. The default is PairFirst.
func WithPairing(p Pairing) Option {
	return func(o *options) {
		o.pairing = p
	}
}

// WithStats makes the check record derived-graph sizes into s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}
