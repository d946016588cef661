// Package ackermann evaluates a restricted two-argument recurrence in the
// Ackermann family:
//
//	A(0, y) = 2y
//	A(x, 0) = 0                    for x > 0
//	A(x, 1) = 2                    for x > 0
//	A(x, y) = A(x−1, A(x, y−1))    otherwise
//
// This is NOT the Ackermann–Péter function (A(0,y)=y+1, A(x,0)=A(x−1,1));
// the base cases above are part of the contract and give, for example,
// A(1, y) = 2^y, A(2, y) = 2↑↑y and A(3, 3) = 65536.
//
// Growth:
//
//	Values explode for x ≥ 2. For every x ≥ 1, y ≥ 1 the result is at least
//	2^y, so any y ≥ bits.UintSize−1 is rejected up front with ErrOverflow.
//	Doubling is overflow-checked as well. A result of type int is therefore
//	always exact; anything larger is reported, never wrapped.
//
// Evaluation:
//
//	Ackermann runs the recurrence on an explicit stack of pending x values,
//	so deep nesting consumes heap, not goroutine stack. Recursive is the
//	literal definition and is intended for small inputs and cross-checks.
//
//	v, err := ackermann.Ackermann(3, 3) // 65536
//	_, err = ackermann.Ackermann(2, 5)  // ErrOverflow
package ackermann
