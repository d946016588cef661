package hanoi_test

import (
	"testing"

	"github.com/katalvlaran/recursion/hanoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerify_RejectsIllegalMoves feeds hand-made invalid move lists.
func TestVerify_RejectsIllegalMoves(t *testing.T) {
	cases := []struct {
		name  string
		moves []hanoi.Move
	}{
		{"larger on smaller", []hanoi.Move{
			{Disk: 1, From: 'A', To: 'B'},
			{Disk: 2, From: 'A', To: 'B'},
		}},
		{"not the top disk", []hanoi.Move{
			{Disk: 2, From: 'A', To: 'C'},
		}},
		{"empty source", []hanoi.Move{
			{Disk: 1, From: 'B', To: 'C'},
		}},
		{"unknown peg", []hanoi.Move{
			{Disk: 1, From: 'A', To: 'Q'},
		}},
		{"same peg", []hanoi.Move{
			{Disk: 1, From: 'A', To: 'A'},
		}},
	}
	for _, c := range cases {
		err := hanoi.Verify(2, 'A', 'B', 'C', c.moves)
		assert.ErrorIs(t, err, hanoi.ErrIllegalMove, c.name)
	}
}

// TestVerify_NotSolved reports legal but incomplete solutions.
func TestVerify_NotSolved(t *testing.T) {
	err := hanoi.Verify(2, 'A', 'B', 'C', []hanoi.Move{{Disk: 1, From: 'A', To: 'B'}})
	assert.ErrorIs(t, err, hanoi.ErrNotSolved)

	err = hanoi.Verify(1, 'A', 'B', 'C', nil)
	assert.ErrorIs(t, err, hanoi.ErrNotSolved)

	require.NoError(t, hanoi.Verify(0, 'A', 'B', 'C', nil))
}

// TestVerify_WrongTarget rejects a solution that ends on the spare peg.
func TestVerify_WrongTarget(t *testing.T) {
	moves, err := hanoi.Moves(4, 'A', 'C', 'B')
	require.NoError(t, err)

	assert.NoError(t, hanoi.Verify(4, 'A', 'C', 'B', moves))
	assert.ErrorIs(t, hanoi.Verify(4, 'A', 'B', 'C', moves), hanoi.ErrNotSolved)
}
