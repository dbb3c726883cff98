// Package render replays the path store onto a drawing surface.
package render

import (
	"image/color"

	"InkOverlay/internal/logx"
	"InkOverlay/internal/state"
)

// Style is the stroke style shared by every path.
type Style struct {
	Width float64
	Color color.Color
}

// DefaultStyle is a 2 unit black pencil.
var DefaultStyle = Style{Width: 2, Color: color.Black}

// Surface is a canvas-like drawing target.
type Surface interface {
	// Clear wipes everything drawn so far.
	Clear()
	// BeginStroke starts a new outline painted with style.
	BeginStroke(style Style)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke paints the current outline.
	Stroke()
}

// Projection maps canonical points into surface coordinates.
type Projection interface {
	Project(p state.Point) (x, y float64)
}

// Renderer redraws a surface from scratch on every call. There is no dirty
// region tracking: a full replay costs O(total points) and is always
// consistent with the store, whatever the eraser has split.
type Renderer struct {
	Style Style
}

func NewRenderer(style Style) *Renderer {
	if style.Color == nil {
		style.Color = DefaultStyle.Color
	}
	if style.Width <= 0 {
		style.Width = DefaultStyle.Width
	}
	return &Renderer{Style: style}
}

// Render clears s and draws paths in order, so later paths end up on top.
func (r *Renderer) Render(s Surface, paths []state.Path, proj Projection) {
	s.Clear()
	points := 0
	for _, p := range paths {
		if len(p.Points) < state.MinPathPoints {
			continue
		}
		s.BeginStroke(r.Style)
		s.MoveTo(proj.Project(p.Points[0]))
		for _, pt := range p.Points[1:] {
			s.LineTo(proj.Project(pt))
		}
		s.Stroke()
		points += len(p.Points)
	}
	logx.L().Debug("[RENDER] replayed", "paths", len(paths), "points", points)
}
