package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sadf/maxplus"
)

func TestStateTable_FindAcrossBucketBoundary(t *testing.T) {
	eps := maxplus.DefaultEpsilon
	edge := maxplus.KeyBucket * eps / 2
	stored := maxplus.Vector{0, edge + 1e-12}
	near := maxplus.Vector{0, edge - 1e-12}
	require.NotEqual(t, stored.Key(eps), near.Key(eps))

	tbl := newStateTable(eps)
	id := tbl.insert(3, stored)

	got, ok := tbl.find(3, near)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = tbl.find(4, near)
	assert.False(t, ok, "tags separate states")
	_, ok = tbl.find(3, maxplus.Vector{0, edge + 2*eps})
	assert.False(t, ok)
}
