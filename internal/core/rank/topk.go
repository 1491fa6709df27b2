package rank

import "slices"

// TopK rearranges items so items[:k] holds the k smallest elements under cmp, sorted.
// The order of items[k:] is unspecified. It panics unless 0 <= k < len(items).
//
// Quickselect narrows the window to the side holding index k until the pivot lands
// there, then only the prefix is sorted
func TopK[T any](items []T, k int, cmp func(a, b T) int) {
	if k < 0 || k >= len(items) {
		panic("rank: TopK requires 0 <= k < len(items)")
	}
	lo, hi := 0, len(items)-1
	for lo < hi {
		p := partition(items, lo, hi, cmp)
		switch {
		case p == k:
			lo = hi
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	slices.SortFunc(items[:k], cmp)
}

// partition is Lomuto over items[lo..hi] with a median-of-three pivot parked at hi
func partition[T any](items []T, lo, hi int, cmp func(a, b T) int) int {
	mid := lo + (hi-lo)/2
	if cmp(items[mid], items[lo]) < 0 {
		items[mid], items[lo] = items[lo], items[mid]
	}
	if cmp(items[hi], items[lo]) < 0 {
		items[hi], items[lo] = items[lo], items[hi]
	}
	if cmp(items[mid], items[hi]) < 0 {
		items[mid], items[hi] = items[hi], items[mid]
	}

	pivot := items[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cmp(items[j], pivot) < 0 {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]
	return i
}
