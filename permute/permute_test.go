package permute_test

import (
	"fmt"
	"math/big"
	"slices"
	"testing"

	"github.com/katalvlaran/recursion/errs"
	"github.com/katalvlaran/recursion/permute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqInts returns [1..n].
func seqInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

// TestPermutations_CompleteAndDistinct verifies L! distinct orderings and
// restoration of the buffer for L = 0..7.
func TestPermutations_CompleteAndDistinct(t *testing.T) {
	for l := 0; l <= 7; l++ {
		items := seqInts(l)
		orig := slices.Clone(items)

		seq, err := permute.Permutations(items, 0)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for p := range seq {
			require.Len(t, p, l)
			sorted := slices.Clone(p)
			slices.Sort(sorted)
			require.Equal(t, orig, sorted, "not a permutation: %v", p)
			seen[fmt.Sprint(p)] = struct{}{}
		}

		want, err := permute.Count(l, 0)
		require.NoError(t, err)
		assert.Equal(t, want.Int64(), int64(len(seen)), "L=%d", l)
		assert.Equal(t, orig, items, "buffer not restored, L=%d", l)
	}
}

// TestPermutations_Order pins the swap order for three elements.
func TestPermutations_Order(t *testing.T) {
	got, err := permute.Collect([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{1, 2, 3}, {1, 3, 2},
		{2, 1, 3}, {2, 3, 1},
		{3, 2, 1}, {3, 1, 2},
	}, got)
}

// TestPermutations_PrefixFixed checks that the prefix never moves.
func TestPermutations_PrefixFixed(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	got, err := permute.Collect(items, 2)
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, p := range got {
		assert.Equal(t, []string{"a", "b"}, p[:2])
	}

	// prefixLen == len yields the arrangement itself once
	got, err = permute.Collect(items, len(items))
	require.NoError(t, err)
	assert.Equal(t, [][]string{items}, got)
}

// TestPermutations_EarlyBreakRestores stops a 100-element stream after a few
// yields and checks the buffer order.
func TestPermutations_EarlyBreakRestores(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	orig := slices.Clone(items)

	seq, err := permute.Permutations(items, 0)
	require.NoError(t, err)

	n := 0
	var last []int
	for p := range seq {
		last = slices.Clone(p)
		if n++; n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
	assert.Equal(t, orig[:95], last[:95], "only the tail moves first")
	assert.Equal(t, orig, items)
}

// TestWalk_StopsAndRestores checks the callback form.
func TestWalk_StopsAndRestores(t *testing.T) {
	items := seqInts(6)
	orig := slices.Clone(items)

	calls := 0
	err := permute.Walk(items, 0, func([]int) bool {
		calls++
		return calls < 100
	})
	require.NoError(t, err)
	assert.Equal(t, 100, calls)
	assert.Equal(t, orig, items)

	calls = 0
	require.NoError(t, permute.Walk(items, 1, func([]int) bool {
		calls++
		return true
	}))
	assert.Equal(t, 120, calls)

	assert.ErrorIs(t, permute.Walk(items, 0, nil), permute.ErrNilVisitor)
}

// TestPermutations_InvalidPrefix covers the prefix-range contract.
func TestPermutations_InvalidPrefix(t *testing.T) {
	for _, k := range []int{-1, 4} {
		_, err := permute.Permutations([]int{1, 2, 3}, k)
		assert.ErrorIs(t, err, permute.ErrPrefixOutOfRange, "k=%d", k)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument, "k=%d", k)

		_, err = permute.Collect([]int{1, 2, 3}, k)
		assert.ErrorIs(t, err, permute.ErrPrefixOutOfRange, "k=%d", k)

		_, err = permute.Count(3, k)
		assert.ErrorIs(t, err, permute.ErrPrefixOutOfRange, "k=%d", k)

		err = permute.Walk([]int{1, 2, 3}, k, func([]int) bool { return true })
		assert.ErrorIs(t, err, permute.ErrPrefixOutOfRange, "k=%d", k)
	}

	_, err := permute.Count(-1, 0)
	assert.ErrorIs(t, err, permute.ErrPrefixOutOfRange)
}

// TestCollect_TooLarge refuses to materialise 11! results.
func TestCollect_TooLarge(t *testing.T) {
	_, err := permute.Collect(seqInts(permute.MaxCollect+1), 0)
	assert.ErrorIs(t, err, permute.ErrTooLarge)

	// the same length is fine once a prefix is fixed
	got, err := permute.Collect(seqInts(permute.MaxCollect+1), 8)
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

// TestCount_Large checks the factorial for a 100-element buffer.
func TestCount_Large(t *testing.T) {
	got, err := permute.Count(100, 0)
	require.NoError(t, err)

	want := big.NewInt(1)
	for i := int64(2); i <= 100; i++ {
		want.Mul(want, big.NewInt(i))
	}
	assert.Zero(t, want.Cmp(got))
	assert.Len(t, got.String(), 158)
}
