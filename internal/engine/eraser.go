package engine

import (
	"math"

	"InkOverlay/internal/logx"
	"InkOverlay/internal/state"
)

// SegmentDistance returns the distance from c to the closest point of the
// segment a-b: c is projected onto the line through a and b, the projection
// parameter is clamped to [0, 1], and the distance to that point is
// measured. A zero-length segment measures the distance to a.
//
// The endpoints are put in a fixed order first so that a-b and b-a give
// bit-identical results.
func SegmentDistance(c, a, b state.Point) float64 {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	abx, aby := b.X-a.X, b.Y-a.Y
	acx, acy := c.X-a.X, c.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return math.Hypot(acx, acy)
	}
	t := (acx*abx + acy*aby) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(c.X-(a.X+t*abx), c.Y-(a.Y+t*aby))
}

// SegmentHit reports whether the segment a-b reaches inside the eraser
// footprint centred at c. A segment exactly tangent to the footprint is not
// hit.
func SegmentHit(c, a, b state.Point, radius float64) bool {
	return SegmentDistance(c, a, b) < radius
}

// SplitPath cuts p wherever a segment is hit by the eraser. Segments are
// walked in order: a segment that is not hit extends the current fragment
// with its points, a hit segment closes the current fragment and starts a
// new one. Fragments of fewer than two points are dropped. When nothing is
// hit SplitPath returns nil, false and p stays as it is.
//
// Cuts only ever happen at captured points, so sparsely sampled strokes
// lose more length per hit than dense ones.
func SplitPath(p state.Path, center state.Point, radius float64) ([]state.Path, bool) {
	pts := p.Points
	if len(pts) < 2 {
		return nil, false
	}

	var (
		parts []state.Path
		cur   []state.Point
		hit   bool
	)
	closeFragment := func() {
		if len(cur) >= state.MinPathPoints {
			parts = append(parts, state.Path{Points: cur})
		} else if len(cur) > 0 {
			logx.L().Debug("[ERASER] dropped degenerate fragment", "path", p.ID, "points", len(cur))
		}
		cur = nil
	}

	cur = append(cur, pts[0])
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if SegmentHit(center, a, b, radius) {
			hit = true
			closeFragment()
			continue
		}
		if len(cur) == 0 {
			cur = append(cur, a)
		}
		cur = append(cur, b)
	}
	if !hit {
		return nil, false
	}
	closeFragment()
	return parts, true
}

// Eraser removes the parts of stored paths under its footprint.
type Eraser struct {
	store *state.PathStore
	cfg   state.EraserConfig
}

func NewEraser(store *state.PathStore, cfg state.EraserConfig) *Eraser {
	return &Eraser{store: store, cfg: cfg}
}

// Apply erases at center against every stored path and returns how many
// paths were cut or removed. Each call re-scans the whole store, so a drag
// costs O(moves x paths x segments).
func (e *Eraser) Apply(center state.Point) int {
	r := e.cfg.Radius
	n := e.store.Rewrite(func(p state.Path, bounds state.Rect) ([]state.Path, bool) {
		if !bounds.Inflate(r).Contains(center) {
			return nil, false
		}
		return SplitPath(p, center, r)
	})
	if n > 0 {
		logx.L().Info("[ERASER] paths cut", "count", n, "x", center.X, "y", center.Y)
	}
	return n
}
