// Package permute enumerates permutations in place by swapping.
//
// For a buffer items and a fixed prefix length k, every ordering of
// items[k:] is produced exactly once, each appearing behind the untouched
// prefix items[:k]:
//
//	for f := k; f < len(items); f++ {
//	    swap(items[k], items[f])
//	    recurse(k + 1)
//	    swap(items[k], items[f]) // restore
//	}
//
// Nothing is copied: the consumer sees the live buffer, rearranged, and
// must clone it to keep a permutation. When the traversal ends (normally
// or because the consumer stopped) the buffer is back in its original
// order.
//
// Output is a lazy stream (iter.Seq), so a 100-element buffer is fine as
// long as the consumer stops early; only Collect materialises results.
//
// Concurrency: the buffer is mutated during traversal. Do not share it
// between goroutines, or read it elsewhere, while a traversal is running.
//
//	seq, _ := permute.Permutations([]int{1, 2, 3}, 0)
//	for p := range seq {
//	    fmt.Println(p) // [1 2 3] [1 3 2] [2 1 3] [2 3 1] [3 2 1] [3 1 2]
//	}
package permute
