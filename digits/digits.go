package digits

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/recursion/errs"
	"github.com/katalvlaran/recursion/power"
)

// ToInt parses s as a non-negative decimal integer.
//
// The loop accumulates v = v·10 + d left to right, which yields the same
// value as the positional definition for every valid input. Leading zeros
// are accepted ("007" = 7).
//
// Errors: ErrEmptyInput, ErrNonDigit (with the byte offset), ErrOverflow.
func ToInt(s string) (int64, error) {
	if err := validate(methodToInt, s); err != nil {
		return 0, err
	}

	var v int64
	for i := 0; i < len(s); i++ {
		d := int64(s[i] - '0')
		if v > (math.MaxInt64-d)/10 {
			return 0, errs.Wrapf(methodToInt, ErrOverflow, "%s", excerpt(s))
		}
		v = v*10 + d
	}

	return v, nil
}

// ToIntRecursive is the literal recursive definition:
// digit(s[0])·10^(len(s)−1) + ToIntRecursive(s[1:]).
//
// It returns exactly what ToInt returns, errors included, and costs one
// stack frame per digit. The positional weight comes from power.Int, so a
// weight beyond int64 surfaces as ErrOverflow even when the leading digit
// is zero; such inputs are re-checked with the leading zeros stripped.
func ToIntRecursive(s string) (int64, error) {
	if err := validate(methodToIntRecursive, s); err != nil {
		return 0, err
	}

	// zeros carry no weight; dropping them keeps 10^(len−1) representable
	// whenever the value itself is
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}

	v, ok := positional(s[i:])
	if !ok {
		return 0, errs.Wrapf(methodToIntRecursive, ErrOverflow, "%s", excerpt(s))
	}

	return v, nil
}

// positional evaluates the recursion on a validated string, reporting false
// on overflow.
func positional(s string) (int64, bool) {
	d := int64(s[0] - '0')
	if len(s) == 1 {
		return d, true
	}

	rest, ok := positional(s[1:])
	if !ok {
		return 0, false
	}
	if d == 0 {
		return rest, true
	}
	w, err := power.Int(10, len(s)-1)
	if err != nil {
		return 0, false
	}
	if w > (math.MaxInt64-rest)/d {
		return 0, false
	}

	return d*w + rest, true
}

// ToBig parses s with no upper bound on the value.
//
// Errors: ErrEmptyInput, ErrNonDigit.
func ToBig(s string) (*big.Int, error) {
	if err := validate(methodToBig, s); err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		// unreachable after validate
		return nil, errs.Wrapf(methodToBig, ErrNonDigit, "%s", excerpt(s))
	}

	return v, nil
}

// Valid reports whether s satisfies the ToInt precondition
// (non-empty, ASCII digits only). It does not check for overflow.
func Valid(s string) bool {
	return validate("", s) == nil
}

// maxExcerpt bounds how much of the input an error message quotes.
const maxExcerpt = 24

// excerpt quotes s for an error message, cutting long inputs down to their
// leading digits and length.
func excerpt(s string) string {
	if len(s) <= maxExcerpt {
		return fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("%q... (%d digits)", s[:maxExcerpt], len(s))
}

// validate checks the shared precondition and reports the first offending
// byte offset.
func validate(method, s string) error {
	if len(s) == 0 {
		return errs.Wrapf(method, ErrEmptyInput, "")
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return errs.Wrapf(method, ErrNonDigit, "%q at offset %d", c, i)
		}
	}

	return nil
}
