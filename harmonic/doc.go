// Package harmonic computes partial sums of the harmonic series
// H(n) = 1 + 1/2 + … + 1/n.
//
// 🚀 Definition
//
//	H(0) = 0, H(1) = 1, H(n) = 1/n + H(n−1)
//
// Evaluated literally, the recursion adds the largest terms first and the
// smallest term 1/n last. Floating-point addition is not associative, so
// every function here keeps exactly that order; Sum and Recursive return
// bit-identical results.
//
// ✨ API:
//   - Sum       — O(1)-space loop
//   - Recursive — one stack frame per term
//   - Partial   — streams (k, H(k)) for k = 1..n as iter.Seq2
//
// ⚙️ Usage:
//
//	h, err := harmonic.Sum(4) // 2.0833…
//	if errors.Is(err, errs.ErrInvalidArgument) {
//	  // n < 0
//	}
package harmonic
