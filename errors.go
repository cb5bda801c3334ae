package seqgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seqgo/backend"
	"github.com/hupe1980/seqgo/sequence"
)

var (
	// ErrNoTransactions is returned when the input collection is empty.
	ErrNoTransactions = errors.New("input transactions are empty")

	// ErrTooFewTransactions is returned when the collection holds a
	// single transaction; meaningful supports need at least two.
	ErrTooFewTransactions = errors.New("at least two transactions are required")
)

// ErrInvalidMinSupport indicates a minimum support outside (0, 1].
//
// The offending value is available on the concrete *MinSupportError.
var ErrInvalidMinSupport = errors.New("minimum support must be in (0, 1]")

// MinSupportError carries the rejected minimum-support value.
type MinSupportError struct {
	Value float64
}

func (e *MinSupportError) Error() string {
	return fmt.Sprintf("minimum support must be in (0, 1], got %v", e.Value)
}

func (e *MinSupportError) Unwrap() error { return ErrInvalidMinSupport }

// Re-exported error types so callers rarely need to import subpackages
// for error handling.
type (
	// BackendUnavailableError is returned when a forced backend cannot
	// be used. Automatic dispatch falls back instead of surfacing it.
	BackendUnavailableError = backend.UnavailableError

	// MatchError reports a matching contract violation such as a
	// candidate carrying an empty itemset element.
	MatchError = backend.MatchError

	// ConstraintError describes an invalid temporal bound.
	ConstraintError = sequence.ConstraintError
)

// ErrInvalidConstraints tags all temporal-constraint validation failures.
var ErrInvalidConstraints = sequence.ErrInvalidConstraints
