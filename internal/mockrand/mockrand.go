// Package mockrand provides a deterministic scalar generator used to fabricate
// reproducible display data. It is not a source of randomness in any
// cryptographic sense: identical seeds always produce identical values, which
// is what lets mock candidate records survive reloads unchanged.
package mockrand

import (
	"math"
	"time"
)

// Next returns a value in [0, 1) derived from seed as frac(sin(seed) * 10000).
// Pure and stateless; callers wanting several independent values from one base
// seed multiply the seed by distinct small integer salts first.
func Next(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// Index maps seed onto an index in [0, n). Returns 0 when n <= 0.
func Index(seed float64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Next(seed) * float64(n))
}

// IntBetween returns an integer in [lo, hi] inclusive. When hi < lo it
// returns lo.
func IntBetween(seed float64, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + Index(seed, hi-lo+1)
}

// DateBetween returns an instant uniformly placed between from and to.
// When to precedes from, from is returned.
func DateBetween(seed float64, from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return from
	}
	offset := time.Duration(Next(seed) * float64(span))
	return from.Add(offset)
}
