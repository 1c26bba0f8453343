package course

import "errors"

// The tracker reports exactly two recoverable error kinds. Everything else
// is a defect caught at catalog load.
var (
	// ErrNotFound covers unknown modules, questions, answers and absent
	// user progress. Expected, frequent, cheap.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState covers operations out of order, such as submitting
	// an answer before starting the module.
	ErrInvalidState = errors.New("invalid state")
)
