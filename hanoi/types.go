package hanoi

import "fmt"

// Peg labels one of the three pegs, e.g. 'A'.
type Peg rune

// Move records one step: disk Disk (1 = smallest) goes from From to To.
type Move struct {
	Disk int
	From Peg
	To   Peg
}

// String renders the move as "Move disk 1 from A to C".
func (m Move) String() string {
	return fmt.Sprintf("Move disk %d from %c to %c", m.Disk, m.From, m.To)
}

const (
	// MaxDisks is the largest n whose move count 2^n − 1 fits in uint64.
	MaxDisks = 64

	// MaxEagerDisks bounds Moves: 2^20 − 1 moves is the largest slice
	// Moves will allocate. Use All beyond that.
	MaxEagerDisks = 20
)
