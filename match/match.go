// Package match implements the containment test between a candidate
// pattern and a transaction: ordered, non-contiguous, with itemset-subset
// semantics and optional temporal bounds.
//
// The search backtracks rather than taking the earliest feasible
// position for each element. Under a maxgap/maxspan bound the earliest
// match for element i can make a later bound unsatisfiable even though a
// later valid position would not, so greedy matching would report false
// negatives.
package match

import (
	"github.com/hupe1980/seqgo/sequence"
)

// Contains reports whether the transaction contains the pattern: there
// exist strictly increasing itemset positions p1 < ... < pk such that
// pattern element i is a subset of the transaction itemset at p_i, and
// every active temporal bound holds over the matched timestamps.
//
// Temporal bounds are ignored when the transaction is untimed; surfacing
// that situation to the caller is the orchestrator's job, not a matching
// failure. An empty pattern matches every transaction.
func Contains[I comparable](tx sequence.Transaction[I], p sequence.Pattern[I], c sequence.Constraints) bool {
	if len(p.Elements) == 0 {
		return true
	}
	// Cheap rejection: a pattern with more items than the transaction
	// can never match.
	if p.ItemCount() > tx.ItemCount() {
		return false
	}

	temporal := c.Active() && tx.Timed
	return find(tx, p, c, temporal, 0, 0, 0, 0)
}

// find tries to place pattern element ei at transaction position from or
// later, backtracking over alternatives when a temporal bound fails
// further down. prevTime and firstTime are only meaningful when ei > 0.
func find[I comparable](
	tx sequence.Transaction[I],
	p sequence.Pattern[I],
	c sequence.Constraints,
	temporal bool,
	ei, from int,
	prevTime, firstTime float64,
) bool {
	if ei == len(p.Elements) {
		return true
	}

	// Not enough itemsets left for the remaining elements.
	remaining := len(p.Elements) - ei
	for pos := from; pos <= tx.Len()-remaining; pos++ {
		set := tx.Itemsets[pos]
		if !set.ContainsAll(p.Elements[ei]) {
			continue
		}

		t := set.Time()
		if temporal {
			if ei > 0 {
				gap := t - prevTime
				if min, ok := c.MinGap(); ok && gap < min {
					continue
				}
				if max, ok := c.MaxGap(); ok && gap > max {
					continue
				}
			}
			first := firstTime
			if ei == 0 {
				first = t
			}
			if span, ok := c.MaxSpan(); ok && t-first > span {
				continue
			}
			if find(tx, p, c, temporal, ei+1, pos+1, t, first) {
				return true
			}
			// Try a later position for this element.
			continue
		}

		if find(tx, p, c, temporal, ei+1, pos+1, 0, 0) {
			return true
		}
	}
	return false
}
