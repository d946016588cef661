package hanoi

import "github.com/katalvlaran/recursion/errs"

// Verify replays moves on three peg stacks, starting with disks n..1 on
// from, and checks that:
//   - every move names a known peg and a different destination;
//   - the source peg is non-empty and its top disk is m.Disk;
//   - the disk lands on an empty peg or on a larger disk;
//   - afterwards every disk sits on to.
//
// The first violation is reported as ErrIllegalMove with its index;
// a legal but incomplete list yields ErrNotSolved.
//
// Complexity: O(n + len(moves)).
func Verify(n int, from, spare, to Peg, moves []Move) error {
	if err := validate(methodVerify, n, MaxDisks, from, spare, to); err != nil {
		return err
	}

	stacks := map[Peg][]int{from: make([]int, 0, n), spare: nil, to: nil}
	for d := n; d >= 1; d-- {
		stacks[from] = append(stacks[from], d)
	}

	for i, m := range moves {
		src, okSrc := stacks[m.From]
		dst, okDst := stacks[m.To]
		switch {
		case !okSrc || !okDst:
			return errs.Wrapf(methodVerify, ErrIllegalMove, "move %d (%v): unknown peg", i, m)
		case m.From == m.To:
			return errs.Wrapf(methodVerify, ErrIllegalMove, "move %d (%v): same peg", i, m)
		case len(src) == 0:
			return errs.Wrapf(methodVerify, ErrIllegalMove, "move %d (%v): peg %c is empty", i, m, m.From)
		case src[len(src)-1] != m.Disk:
			return errs.Wrapf(methodVerify, ErrIllegalMove, "move %d (%v): top of %c is disk %d", i, m, m.From, src[len(src)-1])
		case len(dst) > 0 && dst[len(dst)-1] < m.Disk:
			return errs.Wrapf(methodVerify, ErrIllegalMove, "move %d (%v): disk %d on top of smaller disk %d", i, m, m.Disk, dst[len(dst)-1])
		}
		stacks[m.From] = src[:len(src)-1]
		stacks[m.To] = append(dst, m.Disk)
	}

	if len(stacks[to]) != n {
		return errs.Wrapf(methodVerify, ErrNotSolved, "%d of %d disks on %c", len(stacks[to]), n, to)
	}

	return nil
}
