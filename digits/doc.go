// Package digits converts strings of decimal digits to integers.
//
// The conversion follows the positional definition
//
//	ToInt("d")    = d
//	ToInt("d…r")  = d·10^(len−1) + ToInt("…r")
//
// and is strict about its input: the string must be non-empty and made of
// the ASCII digits '0'..'9' only. Signs, spaces, underscores and non-ASCII
// digits are rejected with ErrNonDigit; the empty string with ErrEmptyInput.
//
// Overflow policy: ToInt FAILS. A value above math.MaxInt64 returns
// ErrOverflow (kind errs.ErrOverflow); it never saturates or wraps. Use ToBig
// for digit strings of arbitrary length.
//
//	v, err := digits.ToInt("1984")           // 1984, nil
//	_, err = digits.ToInt("12a")             // ErrNonDigit
//	_, err = digits.ToInt("9223372036854775808") // ErrOverflow
//	b, err := digits.ToBig("9223372036854775808") // 2^63 as *big.Int
//
// Complexity: O(len(s)) time; ToInt uses O(1) extra space, ToIntRecursive
// O(len(s)) stack.
package digits
