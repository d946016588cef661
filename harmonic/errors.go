package harmonic

import "github.com/katalvlaran/recursion/errs"

// ErrNegativeTerms indicates n < 0.
var ErrNegativeTerms = errs.New("harmonic", "term count must be non-negative", errs.ErrInvalidArgument)

const (
	methodSum       = "Sum"
	methodRecursive = "Recursive"
	methodPartial   = "Partial"
)
