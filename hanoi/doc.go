// Package hanoi generates and checks Tower of Hanoi solutions.
//
// 🚀 The puzzle
//
//	n disks of distinct sizes sit on peg `from`, largest at the bottom.
//	Move them all to peg `to`, one disk at a time, never placing a larger
//	disk on a smaller one, with peg `spare` as scratch space.
//
// The recursive solution moves n−1 disks from→spare (using `to` as scratch),
// moves disk n from→to, then moves n−1 disks spare→to (using `from` as
// scratch). It takes exactly 2^n − 1 moves and the emission order below is
// part of the contract.
//
//	   │        │        │
//	  ─┼─       │        │      disk 1
//	 ──┼──      │        │      disk 2
//	───┼───     │        │      disk 3
//	═══A════════B════════C═══
//
// ✨ API:
//   - Moves  — eager []Move for n ≤ MaxEagerDisks
//   - All    — the same sequence streamed as iter.Seq[Move], n ≤ MaxDisks
//   - Count  — 2^n − 1 without generating anything
//   - Verify — replays moves on three peg stacks and checks the invariant
//
// Printing is the caller's concern; Move implements fmt.Stringer.
package hanoi
