package ackermann

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/recursion/errs"
)

// maxY is the smallest y for which A(x, y) with x ≥ 1 cannot fit in int.
const maxY = bits.UintSize - 1

// Ackermann returns A(x, y) for the restricted recurrence (see package doc).
//
// Algorithm:
//  1. stack = [x], v = y.
//  2. Pop x and reduce (x, v):
//     x == 0 → v = 2v; v == 0 → v = 0; v == 1 → v = 2;
//     else push x−1, push x, v = v−1 (A(x,v) = A(x−1, A(x,v−1))).
//  3. When the stack is empty, v is the answer.
//
// Errors: ErrNegativeArgument, ErrOverflow.
func Ackermann(x, y int) (int, error) {
	if x < 0 || y < 0 {
		return 0, errs.Wrapf(methodAckermann, ErrNegativeArgument, "x=%d y=%d", x, y)
	}

	stack := []int{x}
	v := y
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top == 0:
			if v > math.MaxInt/2 {
				return 0, errs.Wrapf(methodAckermann, ErrOverflow, "A(%d,%d)", x, y)
			}
			v *= 2
		case v == 0:
			// A(top, 0) = 0
		case v == 1:
			v = 2
		default:
			if v >= maxY {
				return 0, errs.Wrapf(methodAckermann, ErrOverflow, "A(%d,%d)", x, y)
			}
			stack = append(stack, top-1, top)
			v--
		}
	}

	return v, nil
}

// Recursive is the direct recursive rendition of the recurrence.
// It agrees with Ackermann on every input, errors included, but uses one
// goroutine stack frame per nesting level.
func Recursive(x, y int) (int, error) {
	if x < 0 || y < 0 {
		return 0, errs.Wrapf(methodRecursive, ErrNegativeArgument, "x=%d y=%d", x, y)
	}

	v, ok := recurse(x, y)
	if !ok {
		return 0, errs.Wrapf(methodRecursive, ErrOverflow, "A(%d,%d)", x, y)
	}

	return v, nil
}

func recurse(x, y int) (int, bool) {
	switch {
	case x == 0:
		if y > math.MaxInt/2 {
			return 0, false
		}
		return 2 * y, true
	case y == 0:
		return 0, true
	case y == 1:
		return 2, true
	case y >= maxY:
		return 0, false
	}

	inner, ok := recurse(x, y-1)
	if !ok {
		return 0, false
	}

	return recurse(x-1, inner)
}
