package harmonic

import (
	"iter"

	"github.com/katalvlaran/recursion/errs"
)

// Sum returns H(n) with an O(1)-space loop.
func Sum(n int) (float64, error) {
	if n < 0 {
		return 0, errs.Wrapf(methodSum, ErrNegativeTerms, "n=%d", n)
	}

	var s float64
	for k := 1; k <= n; k++ {
		s = 1/float64(k) + s
	}

	return s, nil
}

// Recursive returns H(n) straight from the definition, one stack frame per
// term.
func Recursive(n int) (float64, error) {
	if n < 0 {
		return 0, errs.Wrapf(methodRecursive, ErrNegativeTerms, "n=%d", n)
	}

	return recurse(n), nil
}

func recurse(n int) float64 {
	switch n {
	case 0:
		return 0
	case 1:
		return 1
	}

	return 1/float64(n) + recurse(n-1)
}

// Partial streams (k, H(k)) for k = 1..n.
func Partial(n int) (iter.Seq2[int, float64], error) {
	if n < 0 {
		return nil, errs.Wrapf(methodPartial, ErrNegativeTerms, "n=%d", n)
	}

	return func(yield func(int, float64) bool) {
		var s float64
		for k := 1; k <= n; k++ {
			s = 1/float64(k) + s
			if !yield(k, s) {
				return
			}
		}
	}, nil
}
