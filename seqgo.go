// Package seqgo mines frequent sequential patterns from ordered
// transaction collections using the Generalized Sequence Pattern (GSP)
// method: level-wise candidate generation, batched support counting via
// ordered itemset-subset containment, optional temporal constraints, and
// a pluggable pruning policy.
//
// # Quick Start
//
//	txs := sequence.FromItems([][]string{
//	    {"Bread", "Milk"},
//	    {"Bread", "Diaper", "Beer", "Eggs"},
//	    {"Milk", "Diaper", "Beer", "Coke"},
//	    {"Bread", "Milk", "Diaper", "Beer"},
//	})
//
//	miner, err := seqgo.New(txs)
//	if err != nil {
//	    panic(err)
//	}
//	levels, err := miner.Search(ctx, 0.5)
//	for k, level := range levels {
//	    for _, p := range level {
//	        fmt.Println(k+1, p.Items(), p.Support)
//	    }
//	}
//
// # Temporal mining
//
// Transactions built with sequence.FromTimedItems carry per-item
// timestamps, enabling gap and span bounds:
//
//	miner, err := seqgo.New(txs,
//	    seqgo.WithConstraints(sequence.Constraints{}.WithMaxGap(5)),
//	)
//
// # Backends
//
// Support counting dispatches to a backend: "reference" (single
// goroutine), "accelerated" (roaring-bitmap prefilter plus bounded
// parallel fan-out) or an externally supplied GPU-assisted counter.
// Every backend is result-equivalent; the default automatic mode prefers
// accelerated and falls back to reference.
package seqgo

import (
	"context"
	"fmt"

	"github.com/hupe1980/seqgo/backend"
	"github.com/hupe1980/seqgo/prune"
	"github.com/hupe1980/seqgo/sequence"
)

// Miner runs GSP searches over one immutable transaction collection.
// A Miner is safe to reuse for multiple searches; each Search call is
// independent.
type Miner[I comparable] struct {
	transactions []sequence.Transaction[I]
	timed        bool
	maxLevel     int
	progress     *progressTracker

	opts options[I]
}

// New validates the transaction collection and prepares a Miner.
//
// The collection must hold at least two transactions; mining a single
// transaction cannot produce meaningful supports. Temporal constraints
// are validated here, before any counting work.
func New[I comparable](transactions []sequence.Transaction[I], optFns ...Option[I]) (*Miner[I], error) {
	o := applyOptions(optFns)

	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}
	if len(transactions) < 2 {
		return nil, ErrTooFewTransactions
	}
	if err := o.constraints.Validate(); err != nil {
		return nil, err
	}

	timed := sequence.AnyTimed(transactions)
	if o.constraints.Active() && !timed {
		// Caller-level diagnostic: bounds cannot bind without
		// timestamps, so matching proceeds unconstrained.
		o.logger.WarnContext(context.Background(),
			"temporal constraints ignored: transactions carry no timestamps",
			"constraints", o.constraints.String(),
		)
		o.constraints = sequence.Constraints{}
	}

	if o.pruning == nil {
		o.pruning = prune.Default[I](o.constraints)
	}
	o.logger.Debug("pruning strategy configured", "strategy", o.pruning.Description())

	return &Miner[I]{
		transactions: transactions,
		timed:        timed,
		maxLevel:     sequence.MaxItemCount(transactions),
		progress:     newProgressTracker(o.progress, o.progressInterval),
		opts:         o,
	}, nil
}

// Constraints returns the temporal constraints active for this miner.
// Empty when none were configured or when the transactions are untimed.
func (m *Miner[I]) Constraints() sequence.Constraints { return m.opts.constraints }

// TotalTransactions returns the size of the mined collection.
func (m *Miner[I]) TotalTransactions() int { return len(m.transactions) }

// Search is a convenience wrapper building a one-shot Miner and running
// a single search.
func Search[I comparable](ctx context.Context, transactions []sequence.Transaction[I], minSupport float64, optFns ...Option[I]) ([]sequence.Level[I], error) {
	m, err := New(transactions, optFns...)
	if err != nil {
		return nil, err
	}
	return m.Search(ctx, minSupport)
}

// resolveCounter dispatches the configured backend mode, logging the
// outcome. Only automatic mode may recover from an unavailable backend,
// and recovery never changes counting results.
func (m *Miner[I]) resolveCounter() (backend.Counter[I], error) {
	counter, err := backend.Select(m.opts.mode, m.opts.constraints, backend.Options[I]{
		Workers:   m.opts.workers,
		BatchSize: m.opts.batchSize,
		Progress:  m.progressFunc(),
		GPU:       m.opts.gpu,
	})
	if err != nil {
		return nil, fmt.Errorf("selecting backend %q: %w", m.opts.mode, err)
	}
	m.opts.logger.Debug("backend selected", "mode", m.opts.mode.String(), "backend", counter.Name())
	return counter, nil
}
