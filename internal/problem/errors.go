package problem

import "errors"

var (
	// ErrEmpty is returned for a problem file with no document or no matrix.
	ErrEmpty = errors.New("problem: empty problem")

	// ErrUnknownField is returned for a field name outside Fields.
	ErrUnknownField = errors.New("problem: unknown field")

	// ErrUnknownOp is returned for an operation name outside Ops.
	ErrUnknownOp = errors.New("problem: unknown operation")

	// ErrInvalidEpsilon is returned for a negative or non-finite tolerance.
	ErrInvalidEpsilon = errors.New("problem: invalid epsilon")

	// ErrNotApplicable is returned when an explicitly requested operation
	// cannot run on the problem (non-square matrix, missing rhs, not nilpotent).
	ErrNotApplicable = errors.New("problem: operation not applicable")
)
