package wires_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qlath/wires"
	"github.com/stretchr/testify/require"
)

// TestNew_DedupAndNormalise checks that ints and strings share one label space
// and that duplicates keep their first position.
func TestNew_DedupAndNormalise(t *testing.T) {
	w := wires.New(2, "a", 0, "2", "a")
	if diff := cmp.Diff([]string{"2", "a", "0"}, w.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 0, w.Index("2"))
	require.Equal(t, 0, w.Index(2))
	require.Equal(t, -1, w.Index("b"))
}

// TestSetAlgebra covers Union/Shared/Intersects/Subtract ordering.
func TestSetAlgebra(t *testing.T) {
	a := wires.New(0, 1, 2)
	b := wires.New(2, 3)

	require.Equal(t, "[0, 1, 2, 3]", wires.Union(a, b).String())
	require.Equal(t, "[2]", wires.Shared(a, b).String())
	require.True(t, wires.Intersects(a, b))
	require.False(t, wires.Intersects(wires.New(0), wires.New(1)))
	require.Equal(t, "[0, 1]", a.Subtract(b).String())
	require.True(t, a.ContainsAll(wires.New(2, 0)))
	require.False(t, a.ContainsAll(b))
}

// TestRangeAndEqual checks the 0..n-1 helper and order-sensitive equality.
func TestRangeAndEqual(t *testing.T) {
	require.True(t, wires.Range(3).Equal(wires.New(0, 1, 2)))
	require.False(t, wires.Range(3).Equal(wires.New(2, 1, 0)))
	require.True(t, wires.Range(0).IsEmpty())
	require.Equal(t, "[1, 2]", wires.Range(4).Slice(1, 3).String())
}
