package permute_test

import (
	"testing"

	"github.com/katalvlaran/recursion/permute"
)

// BenchmarkPermutations_8 streams all 40320 permutations of 8 elements.
func BenchmarkPermutations_8(b *testing.B) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < b.N; i++ {
		seq, err := permute.Permutations(items, 0)
		if err != nil {
			b.Fatalf("Permutations failed: %v", err)
		}
		for range seq {
		}
	}
}

// BenchmarkCollect_8 materialises the same permutations.
func BenchmarkCollect_8(b *testing.B) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < b.N; i++ {
		if _, err := permute.Collect(items, 0); err != nil {
			b.Fatalf("Collect failed: %v", err)
		}
	}
}
