package reference

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/desdiag/automaton"
	"github.com/katalvlaran/desdiag/traces"
)

// Running log lengths and labels of the EGR dataset.
const (
	MinLogLen = 10
	MaxLogLen = 50

	LabelNormal    = 0
	LabelFaulty    = 1
	LabelAmbiguous = 2
)

// Walk takes one random walk of MinLogLen..MaxLogLen steps from a random
// state and labels it: LabelAmbiguous when the log is not online
// diagnosable, otherwise LabelFaulty when the fault occurred and
// LabelNormal when it did not. The returned observation has the fault and
// hidden symbols removed.
func Walk(rng *rand.Rand) traces.Log {
	a, _ := EGR(automaton.State(1 + rng.Intn(NumStates)))
	cur := a.Root()
	steps := MinLogLen + rng.Intn(MaxLogLen-MinLogLen+1)

	var raw strings.Builder
	for ; steps > 0; steps-- {
		syms := a.Symbols(cur)
		sym := syms[rng.Intn(len(syms))]
		cur, _ = a.Navigate(cur, sym)
		if sym != HiddenSymbol {
			raw.WriteRune(rune(sym))
		}
	}

	log := raw.String()
	obs := strings.ReplaceAll(log, string(FaultSymbol), "")
	switch {
	case !OnlineDiagnosable(log):
		return traces.Log{Observation: obs, Label: LabelAmbiguous}
	case obs != log:
		return traces.Log{Observation: obs, Label: LabelFaulty}
	default:
		return traces.Log{Observation: obs, Label: LabelNormal}
	}
}

// Logs samples size conflict-free EGR running logs. The attempt budget is
// 50 walks per requested log; running out yields the partial dataset and
// traces.ErrSampleExhausted.
func Logs(ctx context.Context, rng *rand.Rand, size int) (*traces.Dataset, error) {
	d := traces.NewDataset(3, MinLogLen, MaxLogLen, []automaton.Symbol{'a', 'b', 'e', 'f'})
	for budget := 50 * max(size, 1); d.Len() < size; budget-- {
		if err := ctx.Err(); err != nil {
			return d, err
		}
		if budget == 0 {
			return d, fmt.Errorf("reference: Logs: %d of %d logs: %w", d.Len(), size, traces.ErrSampleExhausted)
		}
		d.Add(Walk(rng))
	}

	return d, nil
}
