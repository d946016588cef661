// Package power implements exponentiation by squaring.
//
// 🚀 What is exponentiation by squaring?
//
//	x^n is computed from t = x^(n/2) (integer division) as t·t when n is
//	even and x·t·t when n is odd, so only O(log n) multiplications and
//	O(log n) recursive calls are needed instead of n−1.
//
// ✨ Key features:
//   - Pow: float64 base, any int exponent (negative exponents via 1/x^−n)
//   - explicit sign handling for negative bases with odd exponents
//   - 0^0 and negative powers of zero rejected with ErrZeroBase
//   - Int: checked int64 exponentiation, ErrOverflow instead of wrap-around
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/recursion/power"
//
//	v, err := power.Pow(-2, 3) // -8
//	if errors.Is(err, errs.ErrInvalidArgument) {
//	  // 0^n with n <= 0
//	}
//
//	w, err := power.Int(10, 18) // 1e18, fits int64
//	_, err = power.Int(10, 19)  // ErrOverflow
//
// Performance:
//
//   - Time:   O(log |n|)
//   - Memory: O(log |n|) stack
package power
