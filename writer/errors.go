package writer

import "errors"

// Encode-time precondition failures. All are wrapped with the offending
// value and the configured constraints, so match with errors.Is.
var (
	// ErrTypeMismatch reports a value whose dynamic type does not match the
	// writer's logical type.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrFixedLengthMismatch reports a byte sequence whose length differs
	// from a fixed writer's configured length.
	ErrFixedLengthMismatch = errors.New("fixed length mismatch")

	// ErrScaleMismatch reports a decimal whose scale differs from the
	// writer's configured scale.
	ErrScaleMismatch = errors.New("decimal scale mismatch")

	// ErrPrecisionOverflow reports a decimal with more digits than the
	// writer's configured precision.
	ErrPrecisionOverflow = errors.New("decimal precision overflow")
)

// ErrInvalidBranchIndex is a construction-time failure: the null branch of an
// option writer must be 0 or 1.
var ErrInvalidBranchIndex = errors.New("invalid option branch index")
