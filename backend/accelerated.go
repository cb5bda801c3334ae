package backend

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/seqgo/match"
	"github.com/hupe1980/seqgo/sequence"
)

const defaultBatchSize = 64

// acceleratedCounter is the in-process accelerated implementation. It
// builds one roaring bitmap per item holding the IDs of the
// transactions where the item occurs; a candidate's bitmaps are
// intersected to prefilter the transaction set before the full matcher
// runs. Candidate batches fan out across a bounded errgroup.
//
// Counts are written into per-candidate slots, so the resulting Record
// is identical to the reference backend's for any partitioning.
type acceleratedCounter[I comparable] struct {
	workers   int
	batchSize int
	progress  func(done, total int)
}

// NewAccelerated returns the bitmap-prefiltered parallel counter.
// workers <= 0 means GOMAXPROCS; batchSize <= 0 picks a default.
func NewAccelerated[I comparable](workers, batchSize int, progress func(done, total int)) Counter[I] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &acceleratedCounter[I]{workers: workers, batchSize: batchSize, progress: progress}
}

// Name implements Counter.
func (a *acceleratedCounter[I]) Name() string { return "accelerated" }

// Supports implements Counter. The prefilter only narrows the
// transaction set; the matcher enforcing temporal bounds still runs on
// every surviving pair, so all constraints are honored.
func (a *acceleratedCounter[I]) Supports(sequence.Constraints) bool { return true }

// Count implements Counter.
func (a *acceleratedCounter[I]) Count(ctx context.Context, candidates []sequence.Pattern[I], txs []sequence.Transaction[I], c sequence.Constraints) (Record, error) {
	if err := validate(candidates); err != nil {
		return Record{}, err
	}

	presence := buildPresence(txs)
	counts := make([]int, len(candidates))

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for start := 0; start < len(candidates); start += a.batchSize {
		start := start
		end := start + a.batchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				counts[i] = a.countOne(candidates[i], txs, presence, c)
			}
			if a.progress != nil {
				a.progress(int(done.Add(int64(end-start))), len(candidates))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Record{}, err
	}
	return Record{Counts: counts, Total: len(txs)}, nil
}

func (a *acceleratedCounter[I]) countOne(cand sequence.Pattern[I], txs []sequence.Transaction[I], presence map[I]*roaring.Bitmap, c sequence.Constraints) int {
	// An empty candidate matches everything.
	if len(cand.Elements) == 0 {
		return len(txs)
	}

	filter := candidateFilter(cand, presence)
	if filter == nil {
		// Some item never occurs: no transaction can match.
		return 0
	}

	n := 0
	it := filter.Iterator()
	for it.HasNext() {
		if match.Contains(txs[it.Next()], cand, c) {
			n++
		}
	}
	return n
}

// buildPresence maps each item to the set of transaction IDs containing
// it. Built once per Count call; the level-batched contract keeps this
// amortized across the whole candidate batch.
func buildPresence[I comparable](txs []sequence.Transaction[I]) map[I]*roaring.Bitmap {
	presence := make(map[I]*roaring.Bitmap)
	for id, tx := range txs {
		for _, set := range tx.Itemsets {
			for _, ev := range set {
				bm, ok := presence[ev.Item]
				if !ok {
					bm = roaring.New()
					presence[ev.Item] = bm
				}
				bm.Add(uint32(id))
			}
		}
	}
	return presence
}

// candidateFilter intersects the presence bitmaps of the candidate's
// distinct items. A nil result means some item is entirely absent.
func candidateFilter[I comparable](cand sequence.Pattern[I], presence map[I]*roaring.Bitmap) *roaring.Bitmap {
	var filter *roaring.Bitmap
	seen := make(map[I]struct{})
	for _, element := range cand.Elements {
		for _, item := range element {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			bm, ok := presence[item]
			if !ok {
				return nil
			}
			if filter == nil {
				filter = bm.Clone()
				continue
			}
			filter.And(bm)
			if filter.IsEmpty() {
				return filter
			}
		}
	}
	return filter
}
