package seqgo

import (
	"context"

	"github.com/hupe1980/seqgo/sequence"
)

// PreprocessHook runs once before level 1 over the transaction
// collection. It may return a transformed copy (for example after
// deduplication or relabeling); returning the input unchanged is fine.
// A non-nil error aborts the search.
type PreprocessHook[I comparable] func(ctx context.Context, transactions []sequence.Transaction[I]) ([]sequence.Transaction[I], error)

// CandidateFilterHook runs after pruning on each level's surviving
// patterns and returns the patterns to keep. It can only narrow a
// level, never resurrect pruned candidates.
type CandidateFilterHook[I comparable] func(ctx context.Context, level int, patterns sequence.Level[I]) (sequence.Level[I], error)

// PostprocessHook runs once over the complete ordered result before
// Search returns it.
type PostprocessHook[I comparable] func(ctx context.Context, levels []sequence.Level[I]) ([]sequence.Level[I], error)

// ProgressFunc receives counting progress for the current level.
// done is the number of candidates counted so far out of total.
// Callbacks are throttled; the final done == total call always fires.
type ProgressFunc func(level, done, total int)
