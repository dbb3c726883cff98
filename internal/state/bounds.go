package state

// Rect is an axis-aligned box in canonical space.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsOf returns the bounding box of the points. Zero points give the
// zero Rect.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}

// Inflate grows the box by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{MinX: r.MinX - d, MinY: r.MinY - d, MaxX: r.MaxX + d, MaxY: r.MaxY + d}
}

// Contains reports whether p lies inside the box, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

