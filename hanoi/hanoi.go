package hanoi

import (
	"iter"
	"math"

	"github.com/katalvlaran/recursion/errs"
)

// Moves returns the full solution for n disks as a slice of 2^n − 1 moves.
//
// Errors: ErrNegativeDisks, ErrPegsNotDistinct, ErrTooManyDisks when
// n > MaxEagerDisks.
func Moves(n int, from, spare, to Peg) ([]Move, error) {
	if err := validate(methodMoves, n, MaxEagerDisks, from, spare, to); err != nil {
		return nil, err
	}

	out := make([]Move, 0, (1<<n)-1)
	solve(n, from, spare, to, func(m Move) bool {
		out = append(out, m)
		return true
	})

	return out, nil
}

// All streams the same sequence as Moves without materialising it.
// Stopping the range loop early stops the generation.
//
// Errors: ErrNegativeDisks, ErrPegsNotDistinct, ErrTooManyDisks when
// n > MaxDisks.
func All(n int, from, spare, to Peg) (iter.Seq[Move], error) {
	if err := validate(methodAll, n, MaxDisks, from, spare, to); err != nil {
		return nil, err
	}

	return func(yield func(Move) bool) {
		solve(n, from, spare, to, yield)
	}, nil
}

// Count returns 2^n − 1, the length of the solution for n disks.
func Count(n int) (uint64, error) {
	if n < 0 {
		return 0, errs.Wrapf(methodCount, ErrNegativeDisks, "n=%d", n)
	}
	if n > MaxDisks {
		return 0, errs.Wrapf(methodCount, ErrTooManyDisks, "n=%d > %d", n, MaxDisks)
	}

	return math.MaxUint64 >> (MaxDisks - n), nil
}

// solve emits the moves for n disks in recursive order and reports
// whether the consumer wants more.
func solve(n int, from, spare, to Peg, yield func(Move) bool) bool {
	if n == 0 {
		return true
	}
	if !solve(n-1, from, to, spare, yield) {
		return false
	}
	if !yield(Move{Disk: n, From: from, To: to}) {
		return false
	}

	return solve(n-1, spare, from, to, yield)
}

func validate(method string, n, limit int, from, spare, to Peg) error {
	if n < 0 {
		return errs.Wrapf(method, ErrNegativeDisks, "n=%d", n)
	}
	if n > limit {
		return errs.Wrapf(method, ErrTooManyDisks, "n=%d > %d", n, limit)
	}
	if from == spare || from == to || spare == to {
		return errs.Wrapf(method, ErrPegsNotDistinct, "from=%c spare=%c to=%c", from, spare, to)
	}

	return nil
}
