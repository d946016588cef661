package power

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/recursion/errs"
)

// Int returns base^exp in int64, failing with ErrOverflow instead of
// wrapping around.
//
// exp must be non-negative (ErrNegativeExponent). 0^0 is rejected with
// ErrZeroBase, matching Pow. math.MinInt64 is reachable: (-2)^63 succeeds.
//
// Complexity: O(log exp).
func Int(base int64, exp int) (int64, error) {
	if exp < 0 {
		return 0, errs.Wrapf(methodInt, ErrNegativeExponent, "exp=%d", exp)
	}
	if base == 0 {
		if exp == 0 {
			return 0, errs.Wrapf(methodInt, ErrZeroBase, "base=0 exp=0")
		}

		return 0, nil
	}

	neg := base < 0 && exp%2 == 1
	var m uint64
	if base < 0 {
		m = uint64(-(base + 1)) + 1
	} else {
		m = uint64(base)
	}

	// magnitude bound: |MinInt64| = MaxInt64+1 is allowed for negative results
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	r, ok := checkedSquaring(m, uint(exp), limit)
	if !ok {
		return 0, errs.Wrapf(methodInt, ErrOverflow, "%d^%d", base, exp)
	}
	if neg {
		// r <= MaxInt64+1; two's complement negation covers MinInt64
		return int64(^r + 1), nil
	}

	return int64(r), nil
}

// checkedSquaring computes m^e, reporting false when any partial product
// exceeds limit. For m >= 1 partial products never exceed the final value,
// so an early exceed means the result exceeds too.
func checkedSquaring(m uint64, e uint, limit uint64) (uint64, bool) {
	if e == 0 {
		return 1, true
	}
	t, ok := checkedSquaring(m, e/2, limit)
	if !ok {
		return 0, false
	}
	hi, sq := bits.Mul64(t, t)
	if hi != 0 || sq > limit {
		return 0, false
	}
	if e%2 == 0 {
		return sq, true
	}
	hi, r := bits.Mul64(sq, m)
	if hi != 0 || r > limit {
		return 0, false
	}

	return r, true
}
