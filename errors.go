package dlx

import (
	"errors"
	"fmt"

	"github.com/kpitt/dlx/internal/matrix"
)

// ErrNoConstraints is returned by FindOne, Find, FindAll and CreateStream
// when the handler they are called on has zero rows.
var ErrNoConstraints = errors.New("dlx: solver has no constraint rows")

// ErrExhausted is returned by Stream.Next once a stream has produced
// every solution it ever will. It plays the same role io.EOF plays for
// an io.Reader: reaching it is expected, not a failure.
var ErrExhausted = errors.New("dlx: stream exhausted")

// ErrInvalidConstraint is the sentinel errors.Is target for every
// InvalidConstraintError. Validation failures are only ever reported as
// *InvalidConstraintError, but callers that don't need the offending
// value and limit can match on this sentinel instead of the concrete
// type.
var ErrInvalidConstraint = errors.New("dlx: invalid constraint")

// ErrCapacityExceeded indicates a builder or capacity-estimator bug: a
// store allocation ran past the capacity computed for it. It is never
// triggered by user input and is not meant to be recovered from.
var ErrCapacityExceeded = matrix.ErrCapacityExceeded

// InvalidConstraintError reports that a constraint added through
// AddSparse/AddBinary (or their batch variants) failed validation. Which
// names the offending field ("column", "primaryColumn", "secondaryColumn",
// "duplicateColumn", "duplicatePrimaryColumn", "duplicateSecondaryColumn",
// "rowLength", "primaryRowLength" or "secondaryRowLength"); Value is the
// offending index or length; Limit is the bound that Value violated (0
// for a duplicate, since a repeated index has no limit to report).
//
// Validation only runs when ValidateConstraints has been called on the
// handler; it is opt-in so that the hot path building pre-validated rows
// (e.g. from a Template) never pays for it.
type InvalidConstraintError struct {
	Which string
	Value int
	Limit int
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("dlx: invalid constraint: %s %d (limit %d)", e.Which, e.Value, e.Limit)
}

// Is reports whether target is ErrInvalidConstraint, so that
// errors.Is(err, ErrInvalidConstraint) matches any *InvalidConstraintError
// regardless of its Which/Value/Limit.
func (e *InvalidConstraintError) Is(target error) bool {
	return target == ErrInvalidConstraint
}
