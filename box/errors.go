package box

import "github.com/pkg/errors"

// Contract violations are detected eagerly at the boundary of the offending
// operation and reported to the caller. They are programming errors, not
// transient conditions: nothing in this module retries or corrects them.
var (
	// ErrShapeMismatch means the parallel sequences of a set disagree in length.
	ErrShapeMismatch = errors.New("parallel sequences have mismatched lengths")
	// ErrMissingField means an operation needed a field the set does not carry.
	ErrMissingField = errors.New("required field is missing")
	// ErrInvalidShape means an operation received data of the wrong rank,
	// for example a ragged batch where a rectangular one is required.
	ErrInvalidShape = errors.New("invalid shape")
	// ErrIndexOutOfRange means an index fell outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
)
