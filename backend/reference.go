package backend

import (
	"context"

	"github.com/hupe1980/seqgo/match"
	"github.com/hupe1980/seqgo/sequence"
)

// referenceCounter is the single-goroutine counting implementation all
// other backends are measured against: candidate-major, transaction
// inner loop, one Contains call per pair.
type referenceCounter[I comparable] struct {
	progress func(done, total int)
}

// NewReference returns the reference counter. progress may be nil.
func NewReference[I comparable](progress func(done, total int)) Counter[I] {
	return &referenceCounter[I]{progress: progress}
}

// Name implements Counter.
func (r *referenceCounter[I]) Name() string { return "reference" }

// Supports implements Counter. The reference counter handles every
// constraint combination.
func (r *referenceCounter[I]) Supports(sequence.Constraints) bool { return true }

// Count implements Counter.
func (r *referenceCounter[I]) Count(ctx context.Context, candidates []sequence.Pattern[I], txs []sequence.Transaction[I], c sequence.Constraints) (Record, error) {
	if err := validate(candidates); err != nil {
		return Record{}, err
	}

	counts := make([]int, len(candidates))
	for i, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return Record{}, err
		}
		n := 0
		for _, tx := range txs {
			if match.Contains(tx, cand, c) {
				n++
			}
		}
		counts[i] = n
		if r.progress != nil {
			r.progress(i+1, len(candidates))
		}
	}
	return Record{Counts: counts, Total: len(txs)}, nil
}
