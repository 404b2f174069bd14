package status

import "errors"

// Attach failure modes. Both are reported to the caller and logged; no other
// operation in this package can fail.
var (
	// ErrInvalidTarget means the target has no usable identifier. The widget
	// destroys itself as a side effect of this failure.
	ErrInvalidTarget = errors.New("status: target has no identifier")

	// ErrAlreadyAttached means the target (or the page) already has a bound
	// widget and overwrite was not requested. Nothing is mutated.
	ErrAlreadyAttached = errors.New("status: target already has an attached widget")
)
