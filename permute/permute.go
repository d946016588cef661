package permute

import (
	"iter"
	"math/big"

	"github.com/katalvlaran/recursion/errs"
)

// MaxCollect is the largest suffix length Collect accepts (10! results).
const MaxCollect = 10

// Permutations streams every ordering of items[prefixLen:] behind the fixed
// prefix. Each yielded slice is items itself; clone it to retain it.
// items is restored to its original order when the loop finishes or breaks.
//
// Errors: ErrPrefixOutOfRange.
//
// Complexity: (n−k)! yields, O(n−k) stack, no allocation per permutation.
func Permutations[T any](items []T, prefixLen int) (iter.Seq[[]T], error) {
	if err := checkPrefix(methodPermutations, len(items), prefixLen); err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		permute(items, prefixLen, yield)
	}, nil
}

// Walk calls visit for every permutation, as Permutations does, stopping
// early when visit returns false.
//
// Errors: ErrPrefixOutOfRange, ErrNilVisitor.
func Walk[T any](items []T, prefixLen int, visit func([]T) bool) error {
	if err := checkPrefix(methodWalk, len(items), prefixLen); err != nil {
		return err
	}
	if visit == nil {
		return errs.Wrapf(methodWalk, ErrNilVisitor, "")
	}
	permute(items, prefixLen, visit)

	return nil
}

// Collect returns a copy of every permutation, in generation order.
//
// Errors: ErrPrefixOutOfRange, ErrTooLarge when len(items)−prefixLen >
// MaxCollect.
func Collect[T any](items []T, prefixLen int) ([][]T, error) {
	if err := checkPrefix(methodCollect, len(items), prefixLen); err != nil {
		return nil, err
	}
	free := len(items) - prefixLen
	if free > MaxCollect {
		return nil, errs.Wrapf(methodCollect, ErrTooLarge, "%d free positions > %d", free, MaxCollect)
	}

	out := make([][]T, 0, factorial(free))
	permute(items, prefixLen, func(p []T) bool {
		out = append(out, append([]T(nil), p...))
		return true
	})

	return out, nil
}

// Count returns (length − prefixLen)!, the number of permutations produced.
//
// Errors: ErrPrefixOutOfRange.
func Count(length, prefixLen int) (*big.Int, error) {
	if length < 0 {
		return nil, errs.Wrapf(methodCount, ErrPrefixOutOfRange, "length=%d", length)
	}
	if err := checkPrefix(methodCount, length, prefixLen); err != nil {
		return nil, err
	}

	return new(big.Int).MulRange(1, int64(length-prefixLen)), nil
}

// permute swaps items[k] with each of items[k:], recurses, and swaps back.
// It returns false once yield asks to stop; the un-swap still runs on the
// way out.
func permute[T any](items []T, k int, yield func([]T) bool) bool {
	if k == len(items) {
		return yield(items)
	}
	for f := k; f < len(items); f++ {
		items[k], items[f] = items[f], items[k]
		more := permute(items, k+1, yield)
		items[k], items[f] = items[f], items[k]
		if !more {
			return false
		}
	}

	return true
}

func checkPrefix(method string, n, prefixLen int) error {
	if prefixLen < 0 || prefixLen > n {
		return errs.Wrapf(method, ErrPrefixOutOfRange, "prefixLen=%d len=%d", prefixLen, n)
	}

	return nil
}

// factorial for n <= MaxCollect.
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}
