package maxplus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/maxplus"
)

func TestMatrix_MulVector(t *testing.T) {
	m, err := maxplus.FromColumns(2, []maxplus.Vector{
		{3, ninf},
		{1, 2},
	})
	require.NoError(t, err)

	got, err := m.MulVector(maxplus.Vector{0, 5})
	require.NoError(t, err)
	assert.Equal(t, maxplus.Vector{6, 7}, got)

	_, err = m.MulVector(maxplus.Vector{0})
	assert.ErrorIs(t, err, maxplus.ErrDimensionMismatch)
}

func TestMatrix_MulAssociatesWithMulVector(t *testing.T) {
	a, _ := maxplus.FromColumns(2, []maxplus.Vector{{1, 4}, {ninf, 2}})
	b, _ := maxplus.FromColumns(2, []maxplus.Vector{{0, 3}, {5, ninf}})
	v := maxplus.Vector{-1, 2}

	ab, err := a.Mul(b)
	require.NoError(t, err)
	lhs, _ := ab.MulVector(v)

	bv, _ := b.MulVector(v)
	rhs, _ := a.MulVector(bv)

	assert.True(t, lhs.Equal(rhs, maxplus.DefaultEpsilon), "%v vs %v", lhs, rhs)
}

func TestMatrix_AtSetBounds(t *testing.T) {
	m, err := maxplus.NewMatrix(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 4))
	got, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	_, err = m.At(1, 0)
	assert.ErrorIs(t, err, maxplus.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, 0), maxplus.ErrOutOfRange)

	_, err = maxplus.NewMatrix(-1, 2)
	assert.ErrorIs(t, err, maxplus.ErrBadShape)
}

func TestMatrix_Finite(t *testing.T) {
	m, _ := maxplus.FromColumns(2, []maxplus.Vector{{3, ninf}, {ninf, 2}})
	var seen [][3]float64
	m.Finite(func(i, j int, v float64) {
		seen = append(seen, [3]float64{float64(i), float64(j), v})
	})
	assert.Equal(t, [][3]float64{{0, 0, 3}, {1, 1, 2}}, seen)
	assert.True(t, m.IsSquare())
	assert.Equal(t, "[3, -inf]\n[-inf, 2]\n", m.String())
}
