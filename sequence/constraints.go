package sequence

import (
	"errors"
	"fmt"
	"strings"
)

// Constraints bounds the temporal shape of a match. The zero value means
// "no constraints". Constraints are immutable: the With* methods return
// an updated copy, so a single value can be shared across workers.
//
// All bounds are expressed in the same (caller-chosen) unit as the event
// timestamps.
type Constraints struct {
	minGap, maxGap, maxSpan float64

	hasMinGap, hasMaxGap, hasMaxSpan bool
}

// WithMinGap returns constraints requiring at least v between the
// timestamps of consecutively matched itemsets.
func (c Constraints) WithMinGap(v float64) Constraints {
	c.minGap, c.hasMinGap = v, true
	return c
}

// WithMaxGap returns constraints allowing at most v between the
// timestamps of consecutively matched itemsets.
func (c Constraints) WithMaxGap(v float64) Constraints {
	c.maxGap, c.hasMaxGap = v, true
	return c
}

// WithMaxSpan returns constraints allowing at most v between the first
// and last matched itemset timestamps.
func (c Constraints) WithMaxSpan(v float64) Constraints {
	c.maxSpan, c.hasMaxSpan = v, true
	return c
}

// MinGap returns the minimum-gap bound and whether it is set.
func (c Constraints) MinGap() (float64, bool) { return c.minGap, c.hasMinGap }

// MaxGap returns the maximum-gap bound and whether it is set.
func (c Constraints) MaxGap() (float64, bool) { return c.maxGap, c.hasMaxGap }

// MaxSpan returns the maximum-span bound and whether it is set.
func (c Constraints) MaxSpan() (float64, bool) { return c.maxSpan, c.hasMaxSpan }

// Active reports whether any bound is set.
func (c Constraints) Active() bool {
	return c.hasMinGap || c.hasMaxGap || c.hasMaxSpan
}

// Validate checks that every set bound is non-negative and that
// mingap <= maxgap when both are given.
func (c Constraints) Validate() error {
	if c.hasMinGap && c.minGap < 0 {
		return &ConstraintError{Field: "mingap", Value: c.minGap, Reason: "must be non-negative"}
	}
	if c.hasMaxGap && c.maxGap < 0 {
		return &ConstraintError{Field: "maxgap", Value: c.maxGap, Reason: "must be non-negative"}
	}
	if c.hasMaxSpan && c.maxSpan < 0 {
		return &ConstraintError{Field: "maxspan", Value: c.maxSpan, Reason: "must be non-negative"}
	}
	if c.hasMinGap && c.hasMaxGap && c.minGap > c.maxGap {
		return &ConstraintError{Field: "mingap", Value: c.minGap, Reason: fmt.Sprintf("cannot exceed maxgap (%v)", c.maxGap)}
	}
	return nil
}

// String renders the set bounds, e.g. "mingap=2 maxspan=10".
func (c Constraints) String() string {
	if !c.Active() {
		return "none"
	}
	var parts []string
	if c.hasMinGap {
		parts = append(parts, fmt.Sprintf("mingap=%v", c.minGap))
	}
	if c.hasMaxGap {
		parts = append(parts, fmt.Sprintf("maxgap=%v", c.maxGap))
	}
	if c.hasMaxSpan {
		parts = append(parts, fmt.Sprintf("maxspan=%v", c.maxSpan))
	}
	return strings.Join(parts, " ")
}

// ErrInvalidConstraints tags all constraint validation failures.
//
// Use errors.Is(err, ErrInvalidConstraints) to detect them.
var ErrInvalidConstraints = errors.New("invalid temporal constraints")

// ConstraintError describes a single invalid temporal bound.
type ConstraintError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("invalid temporal constraints: %s=%v %s", e.Field, e.Value, e.Reason)
}

func (e *ConstraintError) Unwrap() error { return ErrInvalidConstraints }
