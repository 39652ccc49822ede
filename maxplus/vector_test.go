package maxplus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/maxplus"
)

var ninf = maxplus.MinusInfinity

func TestClose_MinusInfinity(t *testing.T) {
	assert.True(t, maxplus.Close(ninf, ninf, maxplus.DefaultEpsilon))
	assert.False(t, maxplus.Close(ninf, -1e300, maxplus.DefaultEpsilon))
	assert.False(t, maxplus.Close(-1e300, ninf, maxplus.DefaultEpsilon))
	assert.True(t, maxplus.Close(1.0, 1.0+1e-12, maxplus.DefaultEpsilon))
	assert.False(t, maxplus.Close(1.0, 1.1, maxplus.DefaultEpsilon))
}

func TestAdd_Absorbing(t *testing.T) {
	assert.True(t, maxplus.IsMinusInfinity(maxplus.Add(ninf, 5)))
	assert.True(t, maxplus.IsMinusInfinity(maxplus.Add(5, ninf)))
	assert.Equal(t, 7.0, maxplus.Add(3, 4))
}

func TestVector_NormalizeIdempotent(t *testing.T) {
	v := maxplus.Vector{3, 7, ninf, -2}

	first := v.Normalize()
	assert.Equal(t, 7.0, first)
	assert.Equal(t, maxplus.Vector{-4, 0, ninf, -9}, v)

	snapshot := v.Clone()
	second := v.Normalize()
	assert.Equal(t, 0.0, second)
	assert.True(t, v.Equal(snapshot, maxplus.DefaultEpsilon))
}

func TestVector_NormalizeUnrelated(t *testing.T) {
	v := maxplus.Vector{ninf, ninf}
	shift := v.Normalize()
	assert.True(t, maxplus.IsMinusInfinity(shift))
	assert.True(t, maxplus.IsMinusInfinity(v[0]))
}

func TestVector_MaxDifference(t *testing.T) {
	v := maxplus.Vector{1, 5, ninf}
	w := maxplus.Vector{0, 0, 0}
	d, err := v.MaxDifference(w)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = v.MaxDifference(maxplus.Vector{0})
	assert.ErrorIs(t, err, maxplus.ErrDimensionMismatch)
}

func TestVector_Smooth(t *testing.T) {
	v := maxplus.Vector{0, -4, ninf, ninf}
	w := maxplus.Vector{-2, 0, -1, ninf}
	got, err := v.Smooth(w)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got[0])
	assert.Equal(t, -2.0, got[1])
	assert.Equal(t, -1.0, got[2])
	assert.True(t, maxplus.IsMinusInfinity(got[3]))
}

func TestVector_DominatedBy(t *testing.T) {
	assert.True(t, maxplus.Vector{-1, ninf}.DominatedBy(maxplus.Vector{0, -3}, maxplus.DefaultEpsilon))
	assert.False(t, maxplus.Vector{-1, -2}.DominatedBy(maxplus.Vector{0, ninf}, maxplus.DefaultEpsilon))
	assert.False(t, maxplus.Vector{0}.DominatedBy(maxplus.Vector{0, 0}, maxplus.DefaultEpsilon))
}

func TestVector_KeyStableUnderTolerance(t *testing.T) {
	v := maxplus.Vector{-1.5, 0, ninf}
	w := maxplus.Vector{-1.5 + 1e-13, 0, ninf}
	assert.Equal(t, v.Key(maxplus.DefaultEpsilon), w.Key(maxplus.DefaultEpsilon))
	assert.NotEqual(t, v.Key(maxplus.DefaultEpsilon), maxplus.Vector{-1.5, 0, -7}.Key(maxplus.DefaultEpsilon))
}

func TestVector_KeysAcrossBucketBoundary(t *testing.T) {
	eps := maxplus.DefaultEpsilon
	edge := maxplus.KeyBucket * eps / 2
	below := maxplus.Vector{0, edge - 1e-12, ninf}
	above := maxplus.Vector{0, edge + 1e-12, ninf}

	require.True(t, below.Equal(above, eps))
	require.NotEqual(t, below.Key(eps), above.Key(eps))
	assert.Contains(t, below.Keys(eps), above.Key(eps))
	assert.Contains(t, above.Keys(eps), below.Key(eps))
	assert.Equal(t, below.Key(eps), below.Keys(eps)[0])

	far := maxplus.Vector{-1.5, 0, ninf}
	assert.Equal(t, []string{far.Key(eps)}, far.Keys(eps))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "[0, -2.5, -inf]", maxplus.Vector{0, -2.5, ninf}.String())
}
