package power

import "github.com/katalvlaran/recursion/errs"

// Pow returns x raised to the integer power n.
//
// Rules, in order:
//   - x == 0 and n <= 0 → ErrZeroBase
//   - x == 0            → 0
//   - n == 0            → 1
//   - n < 0             → 1 / x^|n|
//   - otherwise           exponentiation by squaring
//
// The squaring runs on |x|; the sign is applied once at the end, negative
// exactly when x < 0 and n is odd. math.MinInt is a valid exponent: its
// magnitude is taken in uint, so it is never negated in int.
//
// Complexity: O(log |n|) time and recursion depth.
func Pow(x float64, n int) (float64, error) {
	if x == 0 {
		if n <= 0 {
			return 0, errs.Wrapf(methodPow, ErrZeroBase, "x=0 n=%d", n)
		}

		return 0, nil
	}
	if n == 0 {
		return 1, nil
	}

	neg := x < 0
	if neg {
		x = -x
	}

	var mag uint
	if n < 0 {
		mag = uint(-(n + 1)) + 1
	} else {
		mag = uint(n)
	}

	r := squaring(x, mag)
	if neg && mag%2 == 1 {
		r = -r
	}
	if n < 0 {
		return 1 / r, nil
	}

	return r, nil
}

// squaring computes a^e for a > 0 by recursive halving of e.
func squaring(a float64, e uint) float64 {
	if e == 0 {
		return 1
	}
	t := squaring(a, e/2)
	if e%2 == 0 {
		return t * t
	}

	return a * t * t
}
