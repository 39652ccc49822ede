package maxplus

import "math"

// DefaultEpsilon is the absolute tolerance applied to timestamp comparisons.
const DefaultEpsilon = 1e-9

// MinusInfinity is the max-plus zero ("unrelated").
var MinusInfinity = math.Inf(-1)

// IsMinusInfinity reports whether t is the max-plus zero.
func IsMinusInfinity(t float64) bool {
	return math.IsInf(t, -1)
}

// Max returns the max-plus sum of a and b.
func Max(a, b float64) float64 {
	if a >= b {
		return a
	}

	return b
}

// Add returns the max-plus product of a and b. MinusInfinity is absorbing.
func Add(a, b float64) float64 {
	if IsMinusInfinity(a) || IsMinusInfinity(b) {
		return MinusInfinity
	}

	return a + b
}

// Close reports whether a and b are equal within eps.
// MinusInfinity is close only to MinusInfinity.
func Close(a, b, eps float64) bool {
	ai, bi := IsMinusInfinity(a), IsMinusInfinity(b)
	if ai || bi {
		return ai && bi
	}

	return math.Abs(a-b) <= eps
}

// LessOrClose reports a ≤ b + eps. MinusInfinity is below everything.
func LessOrClose(a, b, eps float64) bool {
	if IsMinusInfinity(a) {
		return true
	}
	if IsMinusInfinity(b) {
		return false
	}

	return a <= b+eps
}

// minusInfinityBucket is the quantization code of MinusInfinity.
const minusInfinityBucket = math.MinInt64

// KeyBucket is the width of a Quantize bucket in units of eps.
const KeyBucket = 1024

// Quantize maps t to an integer bucket of width KeyBucket·eps for hashing.
// Values within eps of each other land in the same or adjacent buckets;
// MinusInfinity has a dedicated bucket.
func Quantize(t, eps float64) int64 {
	if IsMinusInfinity(t) {
		return minusInfinityBucket
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return int64(math.Round(t / (KeyBucket * eps)))
}
