package engine

import (
	"math"
	"math/rand"
	"testing"

	"InkOverlay/internal/state"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(xs ...float64) []state.Point {
	out := make([]state.Point, len(xs))
	for i, x := range xs {
		out[i] = state.Point{X: x}
	}
	return out
}

func pointsOf(paths []state.Path) [][]state.Point {
	out := make([][]state.Point, len(paths))
	for i, p := range paths {
		out[i] = p.Points
	}
	return out
}

func TestSegmentDistance(t *testing.T) {
	a, b := state.Point{X: 0, Y: 0}, state.Point{X: 10, Y: 0}
	for _, tt := range []struct {
		name string
		c    state.Point
		want float64
	}{
		{"above middle", state.Point{X: 5, Y: 3}, 3},
		{"on segment", state.Point{X: 7, Y: 0}, 0},
		{"before start", state.Point{X: -3, Y: 4}, 5},
		{"past end", state.Point{X: 13, Y: -4}, 5},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SegmentDistance(tt.c, a, b), 1e-12)
		})
	}

	p := state.Point{X: 2, Y: 2}
	assert.InDelta(t, math.Hypot(1, 1), SegmentDistance(state.Point{X: 3, Y: 3}, p, p), 1e-12)
}

func TestSegmentDistanceSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pt := func() state.Point { return state.Point{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100} }
	for i := 0; i < 1000; i++ {
		a, b, c := pt(), pt(), pt()
		r := rng.Float64() * 60
		assert.InDelta(t, SegmentDistance(c, a, b), SegmentDistance(c, b, a), 1e-9)
		assert.Equal(t, SegmentHit(c, a, b, r), SegmentHit(c, b, a, r))
	}
}

func TestSegmentHitSymmetricAtRadius(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pt := func() state.Point { return state.Point{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100} }
	for i := 0; i < 20000; i++ {
		a, b, c := pt(), pt(), pt()
		r := SegmentDistance(c, a, b)
		require.Equal(t, SegmentDistance(c, a, b), SegmentDistance(c, b, a), "case %d", i)
		require.Equal(t, SegmentHit(c, a, b, r), SegmentHit(c, b, a, r), "case %d", i)
	}
}

func TestSegmentHitTangent(t *testing.T) {
	a, b := state.Point{X: 30}, state.Point{X: 40}
	assert.False(t, SegmentHit(state.Point{X: 50}, a, b, 10))
	assert.True(t, SegmentHit(state.Point{X: 49.99}, a, b, 10))
}

func TestSplitPathCoarseStrokeVanishes(t *testing.T) {
	p := state.Path{ID: "coarse", Points: line(0, 50, 100)}

	parts, hit := SplitPath(p, state.Point{X: 50}, 10)

	assert.True(t, hit)
	assert.Empty(t, parts, "(0,0) and (100,0) are single-point fragments")
}

func TestSplitPathDenseStrokeKeepsBothEnds(t *testing.T) {
	p := state.Path{ID: "dense", Points: line(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100)}

	parts, hit := SplitPath(p, state.Point{X: 50}, 10)

	require.True(t, hit)
	want := [][]state.Point{
		line(0, 10, 20, 30, 40),
		line(60, 70, 80, 90, 100),
	}
	if diff := cmp.Diff(want, pointsOf(parts)); diff != "" {
		t.Errorf("fragments mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitPathMiss(t *testing.T) {
	p := state.Path{Points: line(0, 10, 20)}
	parts, hit := SplitPath(p, state.Point{X: 10, Y: 50}, 10)
	assert.False(t, hit)
	assert.Nil(t, parts)
}

func TestSplitPathCutsAtEnds(t *testing.T) {
	p := state.Path{Points: line(0, 10, 20, 30, 40)}

	parts, hit := SplitPath(p, state.Point{X: -2}, 5)
	require.True(t, hit)
	assert.Equal(t, [][]state.Point{line(10, 20, 30, 40)}, pointsOf(parts))

	parts, hit = SplitPath(p, state.Point{X: 42}, 5)
	require.True(t, hit)
	assert.Equal(t, [][]state.Point{line(0, 10, 20, 30)}, pointsOf(parts))
}

func TestSplitPathSeveralCuts(t *testing.T) {
	// A U-shaped stroke crossed twice by one eraser position.
	p := state.Path{Points: []state.Point{
		{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 20},
		{X: 10, Y: 20}, {X: 20, Y: 20},
		{X: 20, Y: 10}, {X: 20, Y: 0},
	}}

	parts, hit := SplitPath(p, state.Point{X: 10, Y: 5}, 11)
	require.True(t, hit)
	assert.Equal(t, [][]state.Point{
		{{X: 0, Y: 10}, {X: 0, Y: 20}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 10}},
	}, pointsOf(parts))
}

func TestEraserApplyKeepsPaintOrder(t *testing.T) {
	store := state.NewPathStore()
	below, _ := store.Append(line(0, 10))
	store.Append(line(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100))
	above, _ := store.Append([]state.Point{{X: 0, Y: 100}, {X: 10, Y: 100}})

	e := NewEraser(store, state.EraserConfig{Radius: 10})
	n := e.Apply(state.Point{X: 50})

	assert.Equal(t, 1, n)
	paths := store.Paths()
	require.Len(t, paths, 4)
	assert.Equal(t, below.ID, paths[0].ID)
	assert.Equal(t, line(0, 10, 20, 30, 40), paths[1].Points)
	assert.Equal(t, line(60, 70, 80, 90, 100), paths[2].Points)
	assert.Equal(t, above.ID, paths[3].ID)
}

func TestEraserApplyMissLeavesStore(t *testing.T) {
	store := state.NewPathStore()
	store.Append(line(0, 10, 20))
	rev := store.Revision()

	e := NewEraser(store, state.EraserConfig{Radius: 5})
	assert.Equal(t, 0, e.Apply(state.Point{X: 10, Y: 30}))
	assert.Equal(t, rev, store.Revision())
}

func TestEraserRepeatedMovesCutFurther(t *testing.T) {
	store := state.NewPathStore()
	store.Append(line(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100))
	e := NewEraser(store, state.EraserConfig{Radius: 4})

	for _, x := range []float64{15, 25, 35} {
		e.Apply(state.Point{X: x})
	}

	assert.Equal(t, [][]state.Point{
		line(0, 10),
		line(40, 50, 60, 70, 80, 90, 100),
	}, pointsOf(store.Paths()))
}
