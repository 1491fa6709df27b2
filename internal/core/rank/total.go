// Package rank orders candidate strings by similarity to a query and selects the best k
package rank

import "math"

// Total is a float64 ordered by the IEEE 754 totalOrder predicate
// -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN
type Total float64

// key maps the bit pattern onto an int64 whose signed order is totalOrder
func (t Total) key() int64 {
	b := int64(math.Float64bits(float64(t)))
	return b ^ int64(uint64(b>>63)>>1)
}

// Cmp returns -1, 0 or +1 as t sorts before, with or after o
func (t Total) Cmp(o Total) int {
	a, b := t.key(), o.key()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare orders two float64 values by totalOrder
func Compare(a, b float64) int { return Total(a).Cmp(Total(b)) }
