// Package prune decides which counted candidates survive to the next
// mining level. Strategies are pure functions of their inputs, so one
// strategy value is safe to share across parallel workers.
package prune

import (
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/seqgo/sequence"
)

// Context carries per-level information a strategy may consult.
type Context struct {
	// Level is the item-count level currently being pruned.
	Level int

	// MinSupportCount is the absolute support threshold derived from the
	// search's fractional minimum support.
	MinSupportCount int

	// Constraints are the temporal bounds active for this search.
	Constraints sequence.Constraints
}

// Strategy decides whether a counted candidate is discarded.
type Strategy[I comparable] interface {
	// ShouldPrune returns true when the candidate must be discarded.
	ShouldPrune(candidate sequence.Pattern[I], supportCount, totalTransactions int, ctx Context) bool

	// Description returns a human-readable summary for logging.
	Description() string
}

// MinSupport discards candidates whose support fraction falls below a
// threshold. With Fraction <= 0 the threshold comes from the search via
// Context.MinSupportCount, which is the default behavior.
type MinSupport[I comparable] struct {
	// Fraction overrides the search threshold when positive.
	Fraction float64
}

// ShouldPrune implements Strategy.
func (s MinSupport[I]) ShouldPrune(_ sequence.Pattern[I], supportCount, totalTransactions int, ctx Context) bool {
	threshold := ctx.MinSupportCount
	if s.Fraction > 0 {
		threshold = int(math.Ceil(float64(totalTransactions) * s.Fraction))
	}
	return supportCount < threshold
}

// Description implements Strategy.
func (s MinSupport[I]) Description() string {
	if s.Fraction > 0 {
		return fmt.Sprintf("min-support(%v)", s.Fraction)
	}
	return "min-support(search threshold)"
}

// MinFrequency discards candidates appearing fewer than Count times,
// regardless of dataset size.
type MinFrequency[I comparable] struct {
	Count int
}

// ShouldPrune implements Strategy.
func (s MinFrequency[I]) ShouldPrune(_ sequence.Pattern[I], supportCount, _ int, _ Context) bool {
	return supportCount < s.Count
}

// Description implements Strategy.
func (s MinFrequency[I]) Description() string {
	return fmt.Sprintf("min-frequency(%d)", s.Count)
}

// TemporalFeasibility discards candidates whose structure cannot satisfy
// the active temporal bounds: a k-element pattern needs k-1 gaps, so
// (k-1)*mingap > maxspan proves infeasibility without any matching. It
// additionally applies the search's support threshold.
type TemporalFeasibility[I comparable] struct{}

// ShouldPrune implements Strategy.
func (s TemporalFeasibility[I]) ShouldPrune(candidate sequence.Pattern[I], supportCount, totalTransactions int, ctx Context) bool {
	if supportCount < ctx.MinSupportCount {
		return true
	}
	minGap, okGap := ctx.Constraints.MinGap()
	maxSpan, okSpan := ctx.Constraints.MaxSpan()
	if okGap && okSpan {
		if gaps := len(candidate.Elements) - 1; gaps > 0 && float64(gaps)*minGap > maxSpan {
			return true
		}
	}
	return false
}

// Description implements Strategy.
func (s TemporalFeasibility[I]) Description() string {
	return "temporal-feasibility"
}

// Any discards a candidate when any constituent strategy would.
type Any[I comparable] []Strategy[I]

// ShouldPrune implements Strategy.
func (a Any[I]) ShouldPrune(candidate sequence.Pattern[I], supportCount, totalTransactions int, ctx Context) bool {
	for _, s := range a {
		if s.ShouldPrune(candidate, supportCount, totalTransactions, ctx) {
			return true
		}
	}
	return false
}

// Description implements Strategy.
func (a Any[I]) Description() string {
	descs := make([]string, len(a))
	for i, s := range a {
		descs[i] = s.Description()
	}
	return "any(" + strings.Join(descs, ", ") + ")"
}

// Default returns the strategy a search uses when none is configured:
// temporal-feasibility pruning when temporal bounds are active, plain
// support-based pruning otherwise.
func Default[I comparable](c sequence.Constraints) Strategy[I] {
	if c.Active() {
		return TemporalFeasibility[I]{}
	}
	return MinSupport[I]{}
}
