// Package backend provides the support-counting implementations and the
// dispatcher that selects between them.
//
// Every backend must be result-equivalent to the reference
// implementation for identical inputs; that contract is what makes
// backends swappable. A backend that cannot honor the active temporal
// constraints refuses selection instead of silently ignoring them.
package backend

import (
	"context"
	"fmt"

	"github.com/hupe1980/seqgo/sequence"
)

// Record is the outcome of counting one candidate batch. Counts is
// parallel to the candidate slice passed to Count, which keeps the
// result deterministic regardless of how work was partitioned.
type Record struct {
	Counts []int
	Total  int
}

// Counter counts, for a batch of candidates, how many transactions
// contain each candidate. Counting a whole level in one call is the
// contract that lets implementations parallelize internally.
type Counter[I comparable] interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Supports reports whether the backend can honor the given temporal
	// constraints. A backend returning false here is skipped in
	// automatic mode and rejected in forced mode.
	Supports(c sequence.Constraints) bool

	// Count runs the containment test for every (candidate, transaction)
	// pair and returns per-candidate totals. Implementations must not
	// mutate their inputs.
	Count(ctx context.Context, candidates []sequence.Pattern[I], txs []sequence.Transaction[I], c sequence.Constraints) (Record, error)
}

// Mode selects the counting backend.
type Mode int

const (
	// Auto tries backends in preference order (accelerated, then
	// reference) and silently falls back when one is unavailable or
	// refuses the active constraints.
	Auto Mode = iota

	// Reference forces the single-goroutine reference implementation.
	Reference

	// Accelerated forces the bitmap-prefiltered parallel implementation.
	Accelerated

	// GPU forces a GPU-assisted counter. None ships with this module;
	// one must be supplied via Options.GPU.
	GPU
)

// String returns the mode name used in configuration and logs.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Reference:
		return "reference"
	case Accelerated:
		return "accelerated"
	case GPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "reference":
		return Reference, nil
	case "accelerated":
		return Accelerated, nil
	case "gpu":
		return GPU, nil
	default:
		return Auto, fmt.Errorf("unknown backend mode %q", s)
	}
}

// UnavailableError is returned when a forced backend cannot be used.
// Automatic mode never surfaces it; it falls back instead.
type UnavailableError struct {
	Backend string
	Reason  string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("backend %q unavailable: %s", e.Backend, e.Reason)
}

// MatchError reports a matching contract violation, such as a candidate
// with an empty itemset element. It signals malformed input, never an
// unmatched pattern.
type MatchError struct {
	CandidateIndex int
	Reason         string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("candidate %d: %s", e.CandidateIndex, e.Reason)
}

// Options configures counter construction during dispatch.
type Options[I comparable] struct {
	// Workers bounds the parallelism of the accelerated backend.
	// Zero means GOMAXPROCS.
	Workers int

	// BatchSize is the number of candidates one worker task counts.
	// Zero means a sensible default.
	BatchSize int

	// Progress, when set, is invoked as (countedCandidates, totalCandidates)
	// while a batch is being processed. It must be safe for concurrent use.
	Progress func(done, total int)

	// GPU is an externally supplied GPU-assisted counter. Forced GPU
	// mode fails without it.
	GPU Counter[I]
}

// Select resolves a mode to a concrete counter for the given temporal
// constraints. Forced modes fail immediately with *UnavailableError when
// the requested backend is missing or refuses the constraints; automatic
// mode walks the preference order and falls back silently.
func Select[I comparable](mode Mode, c sequence.Constraints, o Options[I]) (Counter[I], error) {
	switch mode {
	case Reference:
		return NewReference[I](o.Progress), nil

	case Accelerated:
		counter := NewAccelerated[I](o.Workers, o.BatchSize, o.Progress)
		if !counter.Supports(c) {
			return nil, &UnavailableError{Backend: counter.Name(), Reason: "temporal constraints not supported"}
		}
		return counter, nil

	case GPU:
		if o.GPU == nil {
			return nil, &UnavailableError{Backend: "gpu", Reason: "no GPU-assisted counter registered"}
		}
		if !o.GPU.Supports(c) {
			return nil, &UnavailableError{Backend: o.GPU.Name(), Reason: "temporal constraints not supported"}
		}
		return o.GPU, nil

	case Auto:
		if counter := NewAccelerated[I](o.Workers, o.BatchSize, o.Progress); counter.Supports(c) {
			return counter, nil
		}
		return NewReference[I](o.Progress), nil

	default:
		return nil, &UnavailableError{Backend: mode.String(), Reason: "unknown mode"}
	}
}

// validate rejects structurally malformed candidates before any
// counting work happens.
func validate[I comparable](candidates []sequence.Pattern[I]) error {
	for i, cand := range candidates {
		for _, element := range cand.Elements {
			if len(element) == 0 {
				return &MatchError{CandidateIndex: i, Reason: "empty itemset element"}
			}
		}
	}
	return nil
}
