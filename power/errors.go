package power

import "github.com/katalvlaran/recursion/errs"

var (
	// ErrZeroBase indicates 0^n with n <= 0, which is undefined.
	ErrZeroBase = errs.New("power", "zero base requires a positive exponent", errs.ErrInvalidArgument)

	// ErrNegativeExponent indicates a negative exponent passed to Int.
	ErrNegativeExponent = errs.New("power", "integer power requires a non-negative exponent", errs.ErrInvalidArgument)

	// ErrOverflow indicates that Int's result does not fit in int64.
	ErrOverflow = errs.New("power", "result does not fit in int64", errs.ErrOverflow)
)

const (
	methodPow = "Pow"
	methodInt = "Int"
)
