// SPDX-License-Identifier: MIT

package maxplus

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an ordered sequence of timestamps. It is a value type:
// every method that derives a new vector returns a fresh slice.
type Vector []float64

// NewVector returns a vector of size n with every entry set to fill.
func NewVector(n int, fill float64) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = fill
	}

	return v
}

// Unit returns the j-th max-plus basis vector of size n:
// 0 at position j and MinusInfinity elsewhere.
func Unit(n, j int) Vector {
	v := NewVector(n, MinusInfinity)
	v[j] = 0

	return v
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Norm returns the largest entry of v (MinusInfinity for an empty or
// all-unrelated vector).
func (v Vector) Norm() float64 {
	m := MinusInfinity
	for _, t := range v {
		if t > m {
			m = t
		}
	}

	return m
}

// Normalize subtracts Norm from every finite entry in place and returns the
// subtracted amount. A vector without finite entries is left untouched and
// MinusInfinity is returned. Normalizing twice returns 0 the second time.
func (v Vector) Normalize() float64 {
	shift := v.Norm()
	if IsMinusInfinity(shift) {
		return shift
	}
	for i, t := range v {
		if !IsMinusInfinity(t) {
			v[i] = t - shift
		}
	}

	return shift
}

// AddScalar returns v ⊗ c, i.e. c added to every finite entry.
func (v Vector) AddScalar(c float64) Vector {
	out := v.Clone()
	for i, t := range out {
		out[i] = Add(t, c)
	}

	return out
}

// Maximum returns the componentwise max-plus sum v ⊕ w.
func (v Vector) Maximum(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("Maximum(%d,%d): %w", len(v), len(w), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Max(v[i], w[i])
	}

	return out, nil
}

// MaxDifference returns max_i (v_i − w_i) over the positions where v is
// finite. A finite v_i against an unrelated w_i yields +Inf; the result is
// MinusInfinity when v has no finite entry.
func (v Vector) MaxDifference(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, fmt.Errorf("MaxDifference(%d,%d): %w", len(v), len(w), ErrDimensionMismatch)
	}
	d := MinusInfinity
	for i, t := range v {
		if IsMinusInfinity(t) {
			continue
		}
		d = Max(d, t-w[i])
	}

	return d, nil
}

// Smooth returns the 50/50 average of v and w used to damp oscillation
// in power iteration. An unrelated entry on one side takes the other side.
func (v Vector) Smooth(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("Smooth(%d,%d): %w", len(v), len(w), ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		switch {
		case IsMinusInfinity(v[i]):
			out[i] = w[i]
		case IsMinusInfinity(w[i]):
			out[i] = v[i]
		default:
			out[i] = 0.5*v[i] + 0.5*w[i]
		}
	}

	return out, nil
}

// Equal reports whether v and w have the same size and all entries are
// Close within eps.
func (v Vector) Equal(w Vector, eps float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !Close(v[i], w[i], eps) {
			return false
		}
	}

	return true
}

// DominatedBy reports whether v ≤ w pointwise within eps.
func (v Vector) DominatedBy(w Vector, eps float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !LessOrClose(v[i], w[i], eps) {
			return false
		}
	}

	return true
}

// Key returns a hash key for v, quantized with eps. A vector Equal to v
// carries one of the keys returned by Keys; the owner of the hash table must
// still confirm with Equal.
func (v Vector) Key(eps float64) string {
	codes := make([]int64, len(v))
	for i, t := range v {
		codes[i] = Quantize(t, eps)
	}

	return keyOf(codes)
}

// Keys returns Key(eps) followed by the keys a vector Equal to v may have
// when some of its components fall on the other side of a bucket boundary.
// A component within 2·eps of a boundary doubles the number of keys.
func (v Vector) Keys(eps float64) []string {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	base := make([]int64, len(v))
	var near []int // components with an alternative bucket
	alt := make([]int64, len(v))
	for i, t := range v {
		base[i] = Quantize(t, eps)
		if IsMinusInfinity(t) {
			continue
		}
		lo, hi := Quantize(t-2*eps, eps), Quantize(t+2*eps, eps)
		switch {
		case lo != base[i]:
			alt[i] = lo
			near = append(near, i)
		case hi != base[i]:
			alt[i] = hi
			near = append(near, i)
		}
	}

	keys := make([]string, 0, 1<<len(near))
	codes := make([]int64, len(v))
	for mask := 0; mask < 1<<len(near); mask++ {
		copy(codes, base)
		for b, i := range near {
			if mask&(1<<b) != 0 {
				codes[i] = alt[i]
			}
		}
		keys = append(keys, keyOf(codes))
	}

	return keys
}

func keyOf(codes []int64) string {
	var sb strings.Builder
	sb.Grow(len(codes) * 8)
	for i, c := range codes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(c, 36))
	}

	return sb.String()
}

// String renders v as "[t0, t1, ...]" with "-inf" for unrelated entries.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatTime(t))
	}
	sb.WriteByte(']')

	return sb.String()
}

func formatTime(t float64) string {
	if IsMinusInfinity(t) {
		return "-inf"
	}

	return strconv.FormatFloat(t, 'g', -1, 64)
}
