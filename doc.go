// Package recursion is a small collection of classic recursive algorithms,
// each in its own package, each returning typed errors instead of computing
// garbage on bad input.
//
// 🚀 What's inside?
//
//	digits/    — decimal digit strings to int64 (fails on overflow) or *big.Int
//	ackermann/ — a restricted Ackermann-family recurrence, overflow-checked
//	hanoi/     — Tower of Hanoi move generation, streaming and verification
//	permute/   — in-place swap-based permutation streams (iter.Seq)
//	harmonic/  — harmonic partial sums in a fixed summation order
//	power/     — exponentiation by squaring for float64 and checked int64
//	errs/      — the two shared error kinds: ErrInvalidArgument, ErrOverflow
//
// ✨ Conventions:
//
//   - Pure functions; no shared state, no goroutines, no I/O.
//   - Every precondition is checked; failures are sentinel errors that match
//     both a package-specific value and one of the errs kinds via errors.Is.
//   - Where recursion depth could grow with the input, an iterative or
//     explicit-stack rendition is the default and the literal recursive one
//     is kept alongside for reference.
//
// The cmd/recursiondemo command runs every algorithm on the classic exercise
// inputs.
//
//	go get github.com/katalvlaran/recursion
package recursion
