package ackermann

import "github.com/katalvlaran/recursion/errs"

var (
	// ErrNegativeArgument indicates x < 0 or y < 0.
	ErrNegativeArgument = errs.New("ackermann", "arguments must be non-negative", errs.ErrInvalidArgument)

	// ErrOverflow indicates that the value does not fit in int.
	ErrOverflow = errs.New("ackermann", "value does not fit in int", errs.ErrOverflow)
)

const (
	methodAckermann = "Ackermann"
	methodRecursive = "Recursive"
)
