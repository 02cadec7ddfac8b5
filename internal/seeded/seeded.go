// Package seeded provides the deterministic pseudo-random stream that drives
// all content generation. Every value is a pure function of (seed, offset), so
// a layout generated for a given seed is exactly reproducible.
package seeded

import "math"

// Value returns a value in [0,1) derived from the trigonometric hash
// frac(sin(seed+n) * 10000). It has no internal state and no dependency on
// call order.
func Value(seed, n int) float64 {
	x := math.Sin(float64(seed+n)) * 10000
	return x - math.Floor(x)
}

// Between scales a draw into [min, max).
func Between(seed, n int, min, max float64) float64 {
	return min + Value(seed, n)*(max-min)
}

// Index picks an index in [0, length) for choosing from a candidate list.
func Index(seed, n, length int) int {
	if length <= 0 {
		return 0
	}
	i := int(math.Floor(Value(seed, n) * float64(length)))
	if i >= length {
		i = length - 1
	}
	return i
}

// ShuffleStrings returns a seeded Fisher-Yates shuffle of items. The input
// slice is not modified.
func ShuffleStrings(items []string, seed int) []string {
	shuffled := make([]string, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(math.Floor(Value(seed, i) * float64(i+1)))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
