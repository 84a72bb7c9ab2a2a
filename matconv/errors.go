package matconv

import "errors"

var (
	// ErrNotSymmetric is returned by EigenSym for a matrix that differs from
	// its transpose under field.Real equality.
	ErrNotSymmetric = errors.New("matconv: matrix is not symmetric")

	// ErrEigenFailed is returned when gonum's factorisation does not succeed.
	ErrEigenFailed = errors.New("matconv: eigen decomposition failed")
)
