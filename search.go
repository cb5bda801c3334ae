package seqgo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/seqgo/candidate"
	"github.com/hupe1980/seqgo/prune"
	"github.com/hupe1980/seqgo/sequence"
)

type searchConfig struct {
	maxK   int
	logger *Logger
}

// SearchOption configures a single Search call without touching the
// Miner's configuration.
type SearchOption func(*searchConfig)

// WithMaxK caps the pattern length (item count) a search explores.
// Zero or negative means unbounded.
func WithMaxK(k int) SearchOption {
	return func(c *searchConfig) {
		c.maxK = k
	}
}

// WithSearchLogger overrides the Miner's logger for one search.
func WithSearchLogger(l *Logger) SearchOption {
	return func(c *searchConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Search mines all frequent sequential patterns at the given fractional
// minimum support. The result holds one Level per pattern length, in
// ascending order, each level ordered by candidate generation; it stops
// at the first level producing no frequent pattern.
//
// minSupport must lie in (0, 1]. The absolute threshold is
// ceil(transactions * minSupport), so a pattern is frequent when it is
// contained in at least that many transactions.
func (m *Miner[I]) Search(ctx context.Context, minSupport float64, optFns ...SearchOption) (levels []sequence.Level[I], err error) {
	if minSupport <= 0 || minSupport > 1 {
		return nil, &MinSupportError{Value: minSupport}
	}

	cfg := searchConfig{logger: m.opts.logger}
	for _, fn := range optFns {
		if fn != nil {
			fn(&cfg)
		}
	}

	start := time.Now()
	cfg.logger.LogSearchStart(ctx, minSupport, len(m.transactions), m.opts.constraints.String())

	defer func() {
		cfg.logger.LogSearchDone(ctx, len(levels), time.Since(start), err)
		m.opts.metrics.RecordSearch(len(levels), time.Since(start), err)
	}()

	txs := m.transactions
	limit := m.maxLevel
	if m.opts.preprocess != nil {
		txs, err = m.opts.preprocess(ctx, txs)
		if err != nil {
			return nil, fmt.Errorf("preprocess hook: %w", err)
		}
		if len(txs) == 0 {
			return nil, ErrNoTransactions
		}
		limit = sequence.MaxItemCount(txs)
	}

	counter, err := m.resolveCounter()
	if err != nil {
		return nil, err
	}

	absMin := int(math.Ceil(float64(len(txs)) * minSupport))
	if cfg.maxK > 0 && cfg.maxK < limit {
		limit = cfg.maxK
	}

	var prev sequence.Level[I]

	for k := 1; k <= limit; k++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		levelStart := time.Now()

		var candidates []sequence.Pattern[I]
		if k == 1 {
			candidates = candidate.Singletons(txs)
		} else {
			candidates = candidate.Generate(prev)
		}
		if len(candidates) == 0 {
			break
		}

		m.progress.setLevel(k)

		record, countErr := counter.Count(ctx, candidates, txs, m.opts.constraints)
		if countErr != nil {
			err = fmt.Errorf("counting level %d: %w", k, countErr)
			return nil, err
		}

		pctx := prune.Context{
			Level:           k,
			MinSupportCount: absMin,
			Constraints:     m.opts.constraints,
		}

		var level sequence.Level[I]
		for i, cand := range candidates {
			count := record.Counts[i]
			if k == 1 {
				if count < absMin {
					continue
				}
			} else if m.opts.pruning.ShouldPrune(cand, count, record.Total, pctx) {
				continue
			}
			level = append(level, cand.WithSupport(count))
		}

		if m.opts.filter != nil {
			level, err = m.opts.filter(ctx, k, level)
			if err != nil {
				return nil, fmt.Errorf("candidate filter hook at level %d: %w", k, err)
			}
		}

		cfg.logger.LogLevel(ctx, k, len(candidates), len(level), time.Since(levelStart))
		m.opts.metrics.RecordLevel(k, len(candidates), len(level), time.Since(levelStart))

		if len(level) == 0 {
			break
		}
		levels = append(levels, level)
		prev = level
	}

	if m.opts.postprocess != nil {
		levels, err = m.opts.postprocess(ctx, levels)
		if err != nil {
			return nil, fmt.Errorf("postprocess hook: %w", err)
		}
	}

	return levels, nil
}
