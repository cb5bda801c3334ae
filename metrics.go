package seqgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting mining metrics.
// Implement it to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLevel is called after each mining level with the number of
	// generated candidates, the number surviving pruning, and the time
	// the level took (generation + counting + pruning).
	RecordLevel(level, candidates, frequent int, duration time.Duration)

	// RecordSearch is called once per search. levels is the number of
	// non-empty frequent levels; err is nil on success.
	RecordSearch(levels int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLevel(int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LevelCount       atomic.Int64
	CandidateCount   atomic.Int64
	FrequentCount    atomic.Int64
	LevelTotalNanos  atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordLevel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLevel(level, candidates, frequent int, duration time.Duration) {
	b.LevelCount.Add(1)
	b.CandidateCount.Add(int64(candidates))
	b.FrequentCount.Add(int64(frequent))
	b.LevelTotalNanos.Add(duration.Nanoseconds())
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(levels int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LevelCount:     b.LevelCount.Load(),
		CandidateCount: b.CandidateCount.Load(),
		FrequentCount:  b.FrequentCount.Load(),
		LevelAvgNanos:  avg(b.LevelTotalNanos.Load(), b.LevelCount.Load()),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LevelCount     int64
	CandidateCount int64
	FrequentCount  int64
	LevelAvgNanos  int64
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
}
