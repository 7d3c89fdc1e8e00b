package vector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorConstructor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := Immutable[int](BitsPerLevel(2))
	assert.EqualValues(t, 0x03, v.mask)
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.IsEmpty())
}

func TestVectorZeroValue(t *testing.T) {
	var v Vector[string]
	require.True(t, v.IsEmpty())
	v = v.Append("a")
	assert.Equal(t, "a", v.Get(0))
}

func TestVectorAppendSmallDegree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	v := Immutable[int](BitsPerLevel(1))
	for i := 0; i < 3; i++ {
		v = v.Append(77 + i)
	}
	require.Equal(t, 3, v.Len())
	assert.Len(t, v.tail, 1, "tail after 3 pushes at degree 2:\n%s", v.DebugTree())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 77+i, v.Get(i))
	}
}

func TestVectorAppendAcrossTrieLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	const n = 200
	v := Immutable[int](BitsPerLevel(2))
	for i := 0; i < n; i++ {
		v = v.Append(i)
	}
	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, i, v.Get(i), "\n%s", v.DebugTree())
	}
}

func TestVectorGetPanicsOutOfRange(t *testing.T) {
	v := Immutable[int]()
	v = v.Append(1).Append(2)
	assert.PanicsWithError(t, "Attempt to get index 5 for vector of size 2", func() {
		v.Get(5)
	})
}

func TestVectorSetAtBoundaryIsAppend(t *testing.T) {
	v := New([]int{1, 2, 3})
	v2 := v.Set(3, 4)
	v3 := v.Append(4)
	assert.Equal(t, v3.Len(), v2.Len())
	assert.Equal(t, v3.ToList(), v2.ToList())
}

func TestVectorImmutability(t *testing.T) {
	v1 := New([]int{1, 2, 3})
	v2 := v1.Set(1, 99)
	assert.Equal(t, 2, v1.Get(1))
	assert.Equal(t, 99, v2.Get(1))
}

func TestVectorRemoveLastRoundTrip(t *testing.T) {
	const n = 100
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	v := New(items, BitsPerLevel(2))
	for i := n; i > 0; i-- {
		require.Equal(t, i, v.Len())
		require.Equal(t, i-1, v.Last())
		v = v.RemoveLast()
	}
	assert.True(t, v.IsEmpty())
}

func TestVectorRemoveLastPanicsOnEmpty(t *testing.T) {
	assert.PanicsWithError(t, "Cannot remove_last from empty vector", func() {
		Immutable[int]().RemoveLast()
	})
}

func TestVectorLastPanicsOnEmpty(t *testing.T) {
	assert.PanicsWithError(t, "last/1 called for empty vector", func() {
		Immutable[int]().Last()
	})
}
