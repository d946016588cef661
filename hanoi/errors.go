package hanoi

import "github.com/katalvlaran/recursion/errs"

var (
	// ErrNegativeDisks indicates n < 0.
	ErrNegativeDisks = errs.New("hanoi", "disk count must be non-negative", errs.ErrInvalidArgument)

	// ErrPegsNotDistinct indicates that two of from/spare/to are equal.
	ErrPegsNotDistinct = errs.New("hanoi", "pegs must be distinct", errs.ErrInvalidArgument)

	// ErrTooManyDisks indicates n above MaxDisks, or above MaxEagerDisks for Moves.
	ErrTooManyDisks = errs.New("hanoi", "too many disks", errs.ErrInvalidArgument)

	// ErrIllegalMove indicates a move that breaks the puzzle rules.
	ErrIllegalMove = errs.New("hanoi", "illegal move", errs.ErrInvalidArgument)

	// ErrNotSolved indicates a legal move list that does not end with every
	// disk on the target peg.
	ErrNotSolved = errs.New("hanoi", "puzzle not solved", errs.ErrInvalidArgument)
)

const (
	methodMoves  = "Moves"
	methodAll    = "All"
	methodCount  = "Count"
	methodVerify = "Verify"
)
