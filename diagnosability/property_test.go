package diagnosability_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/desdiag/builder"
	"github.com/katalvlaran/desdiag/diagnosability"
)

// TestVerdictProperties checks that verdicts are pure functions of the
// automaton and that both algorithms agree on single-fault systems.
func TestVerdictProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	// Property 1: repeated checks on the same input agree.
	properties.Property("verdict is pure", prop.ForAll(
		func(seed int64, span int, extra, multi bool) bool {
			a, cfg, err := builder.Build(11, 11+span, extra, multi, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			snapshot := a.Clone()
			v1, err1 := diagnosability.IsDiagnosable(a, cfg)
			v2, err2 := diagnosability.IsDiagnosable(a, cfg)
			return err1 == nil && err2 == nil && v1 == v2 && a.Equal(snapshot)
		},
		gen.Int64(),
		gen.IntRange(1, 30),
		gen.Bool(),
		gen.Bool(),
	))

	// Property 2: without cross-wiring, labels never accumulate, so the
	// single and multi algorithms reach the same verdict.
	properties.Property("single and multi agree", prop.ForAll(
		func(seed int64, span int, extra bool) bool {
			a, cfg, err := builder.Build(11, 11+span, extra, false, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			single, err1 := diagnosability.IsDiagnosableSingle(a, cfg)
			multi, err2 := diagnosability.IsDiagnosableMulti(a, cfg)
			return err1 == nil && err2 == nil && single == multi
		},
		gen.Int64(),
		gen.IntRange(1, 30),
		gen.Bool(),
	))

	// Property 3: the agreement holds on large systems, where up to six
	// fault segments share the faulty id range.
	properties.Property("single and multi agree on large systems", prop.ForAll(
		func(seed int64, minStates int) bool {
			a, cfg, err := builder.Build(minStates, minStates+20, false, false, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			single, err1 := diagnosability.IsDiagnosableSingle(a, cfg)
			multi, err2 := diagnosability.IsDiagnosableMulti(a, cfg)
			return err1 == nil && err2 == nil && single == multi
		},
		gen.Int64(),
		gen.IntRange(100, 300),
	))

	// Property 4: every mismatched node of the product carries two
	// observer nodes that exist.
	properties.Property("product closed over observer", prop.ForAll(
		func(seed int64, multi bool) bool {
			a, cfg, err := builder.Build(11, 25, false, multi, builder.WithSeed(seed))
			if err != nil {
				return false
			}
			mode := diagnosability.ModeSingle
			if multi {
				mode = diagnosability.ModeMulti
			}
			obs, err := diagnosability.BuildObserver(a, cfg, mode)
			if err != nil {
				return false
			}
			p, err := diagnosability.Compose(obs)
			if err != nil {
				return false
			}
			for _, k := range p.Nodes() {
				if !obs.Has(k.First) || !obs.Has(k.Second) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
