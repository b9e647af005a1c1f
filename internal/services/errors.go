package services

import "errors"

var (
	// ErrValidation marks a request rejected before any write: a missing
	// required field or a malformed value.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStock marks a mutation that would leave stock negative.
	ErrInvalidStock = errors.New("stock cannot be negative")
)
