package digits

import "github.com/katalvlaran/recursion/errs"

var (
	// ErrEmptyInput indicates an empty digit string.
	ErrEmptyInput = errs.New("digits", "input must be non-empty", errs.ErrInvalidArgument)

	// ErrNonDigit indicates a byte outside '0'..'9'.
	ErrNonDigit = errs.New("digits", "non-digit character", errs.ErrInvalidArgument)

	// ErrOverflow indicates that the value exceeds math.MaxInt64.
	ErrOverflow = errs.New("digits", "value does not fit in int64", errs.ErrOverflow)
)

const (
	methodToInt          = "ToInt"
	methodToIntRecursive = "ToIntRecursive"
	methodToBig          = "ToBig"
)
