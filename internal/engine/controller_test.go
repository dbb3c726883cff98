package engine

import (
	"testing"

	"InkOverlay/internal/state"
	"InkOverlay/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(z view.ZoomSource, ratio float64, radius float64) (*Controller, *state.PathStore) {
	store := state.NewPathStore()
	c := NewController(store, view.NewMapper(z, view.Density(ratio)), state.EraserConfig{Radius: radius}, nil)
	return c, store
}

func gesture(c *Controller, end PointerKind, pts ...[2]float64) {
	c.HandlePointer(PointerEvent{Kind: PointerDown, X: pts[0][0], Y: pts[0][1]})
	for _, p := range pts[1:] {
		c.HandlePointer(PointerEvent{Kind: PointerMove, X: p[0], Y: p[1]})
	}
	c.HandlePointer(PointerEvent{Kind: end})
}

func TestControllerStartsDisabled(t *testing.T) {
	c, store := newTestController(nil, 1, 10)
	assert.Equal(t, state.ToolNone, c.ToolMode())

	gesture(c, PointerUp, [2]float64{0, 0}, [2]float64{10, 10})
	assert.Equal(t, 0, store.Len())
}

func TestControllerPencilStrokeMapped(t *testing.T) {
	z := view.NewZoom(0.3, 3, 1.2)
	z.Set(2)
	c, store := newTestController(z, 2, 10)
	c.SetToolMode(state.ToolPencil)

	gesture(c, PointerUp, [2]float64{10, 10}, [2]float64{20, 10}, [2]float64{20, 30})

	require.Equal(t, 1, store.Len())
	assert.Equal(t, []state.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 30}}, store.Paths()[0].Points)
}

func TestControllerLeaveEqualsUp(t *testing.T) {
	for _, end := range []PointerKind{PointerUp, PointerLeave} {
		t.Run(end.String(), func(t *testing.T) {
			c, store := newTestController(nil, 1, 10)
			c.SetToolMode(state.ToolPencil)

			gesture(c, end, [2]float64{0, 0}, [2]float64{5, 5})
			assert.Equal(t, 1, store.Len())
			assert.Equal(t, Idle, c.Pencil().State())

			gesture(c, end, [2]float64{0, 0})
			assert.Equal(t, 1, store.Len(), "a tap stores nothing")
			assert.Equal(t, Idle, c.Pencil().State())
		})
	}
}

func TestControllerEraserNeedsPress(t *testing.T) {
	c, store := newTestController(nil, 1, 10)
	store.Append(line(0, 50, 100))
	c.SetToolMode(state.ToolEraser)

	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 50})
	assert.Equal(t, 1, store.Len(), "hovering does not erase")

	c.HandlePointer(PointerEvent{Kind: PointerDown, X: 50})
	assert.Equal(t, 0, store.Len())
}

func TestControllerEraserDrag(t *testing.T) {
	c, store := newTestController(nil, 1, 4)
	store.Append(line(0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100))
	c.SetToolMode(state.ToolEraser)

	gesture(c, PointerUp, [2]float64{45, 0}, [2]float64{55, 0}, [2]float64{65, 0})

	assert.Equal(t, [][]state.Point{line(0, 10, 20, 30, 40), line(70, 80, 90, 100)}, pointsOf(store.Paths()))

	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 5})
	assert.Len(t, store.Paths(), 2, "released pointer does not erase")
}

func TestControllerEraseIsZoomInvariant(t *testing.T) {
	const ratio = 1.5
	target := state.Point{X: 50, Y: 0}

	var outcomes []int
	for _, zoomAtErase := range []float64{0.3, 0.5, 1, 1.7, 3} {
		z := view.NewZoom(0.3, 3, 1.2)
		c, store := newTestController(z, ratio, 10)

		// Draw at zoom 1 so the stored geometry is the dense example line.
		c.SetToolMode(state.ToolPencil)
		f := c.Mapper().Factors()
		var pts [][2]float64
		for x := 0.0; x <= 100; x += 10 {
			lx, ly := f.Project(state.Point{X: x})
			pts = append(pts, [2]float64{lx, ly})
		}
		gesture(c, PointerUp, pts...)
		require.Equal(t, 1, store.Len())
		for i, p := range store.Paths()[0].Points {
			assert.InDelta(t, float64(i*10), p.X, 1e-9)
		}

		z.Set(zoomAtErase)
		c.Mapper().Invalidate()

		c.SetToolMode(state.ToolEraser)
		lx, ly := c.Mapper().Factors().Project(target)
		c.HandlePointer(PointerEvent{Kind: PointerDown, X: lx, Y: ly})
		c.HandlePointer(PointerEvent{Kind: PointerUp})

		outcomes = append(outcomes, store.Len())
	}
	assert.Equal(t, []int{2, 2, 2, 2, 2}, outcomes)
}

func TestControllerModeSwitchMidStroke(t *testing.T) {
	c, store := newTestController(nil, 1, 5)
	victim, _ := store.Append([]state.Point{{X: 0, Y: 100}, {X: 100, Y: 100}})
	c.SetToolMode(state.ToolPencil)

	c.HandlePointer(PointerEvent{Kind: PointerDown, X: 0, Y: 0})
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 10, Y: 0})
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 20, Y: 0})

	c.SetToolMode(state.ToolEraser)
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 30, Y: 0})
	assert.Empty(t, c.Pencil().Pending(), "session stops receiving points")
	assert.Equal(t, Idle, c.Pencil().State())

	c.HandlePointer(PointerEvent{Kind: PointerUp})

	assert.Equal(t, Idle, c.Pencil().State())
	paths := store.Paths()
	require.Len(t, paths, 1, "no partial stroke committed")
	assert.Equal(t, victim.ID, paths[0].ID)
}

func TestControllerSwitchBackDoesNotReviveStroke(t *testing.T) {
	c, store := newTestController(nil, 1, 5)
	c.SetToolMode(state.ToolPencil)

	c.HandlePointer(PointerEvent{Kind: PointerDown, X: 0, Y: 0})
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 10, Y: 0})
	c.SetToolMode(state.ToolEraser)
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 50, Y: 50})
	c.SetToolMode(state.ToolPencil)
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 100, Y: 100})
	c.HandlePointer(PointerEvent{Kind: PointerUp})

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, Idle, c.Pencil().State())

	gesture(c, PointerUp, [2]float64{0, 0}, [2]float64{5, 5})
	assert.Equal(t, 1, store.Len(), "next down starts a fresh stroke")
}

func TestControllerModeSwitchMidStrokeErases(t *testing.T) {
	c, store := newTestController(nil, 1, 5)
	store.Append(line(0, 50, 100))
	c.SetToolMode(state.ToolPencil)

	c.HandlePointer(PointerEvent{Kind: PointerDown, X: 0, Y: 40})
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 10, Y: 40})
	c.SetToolMode(state.ToolEraser)
	c.HandlePointer(PointerEvent{Kind: PointerMove, X: 50, Y: 0})
	c.HandlePointer(PointerEvent{Kind: PointerLeave})

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, Idle, c.Pencil().State())
}

func TestControllerNoneIgnoresEverything(t *testing.T) {
	c, store := newTestController(nil, 1, 10)
	store.Append(line(0, 50, 100))
	c.SetToolMode(state.ToolEraser)
	c.SetToolMode(state.ToolNone)

	gesture(c, PointerUp, [2]float64{50, 0}, [2]float64{60, 0})
	assert.Equal(t, 1, store.Len())
}
