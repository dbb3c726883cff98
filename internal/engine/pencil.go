package engine

import (
	"fmt"

	"InkOverlay/internal/logx"
	"InkOverlay/internal/state"
)

// DrawState is the pencil's state.
type DrawState int

const (
	Idle DrawState = iota
	Drawing
)

func (s DrawState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	}
	return fmt.Sprintf("DrawState(%d)", int(s))
}

// Sketcher draws a single new segment right away, ahead of the next full
// render.
type Sketcher interface {
	SketchSegment(a, b state.Point)
}

// Pencil turns pointer gestures into committed paths.
//
//	Idle    --Down-->      Drawing   open session at the point
//	Drawing --Move-->      Drawing   append point, sketch segment
//	Drawing --End-->       Idle      commit if >= 2 points
//	Drawing --Cancel-->    Idle      drop session
type Pencil struct {
	store   *state.PathStore
	sketch  Sketcher
	state   DrawState
	session Session
}

// NewPencil returns an idle pencil committing into store. sketch may be nil.
func NewPencil(store *state.PathStore, sketch Sketcher) *Pencil {
	return &Pencil{store: store, sketch: sketch}
}

func (p *Pencil) State() DrawState { return p.state }

// Pending returns a copy of the points captured so far.
func (p *Pencil) Pending() []state.Point {
	out := make([]state.Point, len(p.session.Points))
	copy(out, p.session.Points)
	return out
}

func (p *Pencil) Down(pt state.Point) {
	if p.state == Drawing {
		logx.L().Debug("[PENCIL] down while drawing, restarting", "dropped", len(p.session.Points))
	}
	p.session.Begin(pt)
	p.state = Drawing
}

// Move appends pt to the open stroke. It reports false when idle.
func (p *Pencil) Move(pt state.Point) bool {
	if p.state != Drawing {
		return false
	}
	prev, ok := p.session.Add(pt)
	if !ok {
		return false
	}
	if p.sketch != nil {
		p.sketch.SketchSegment(prev, pt)
	}
	return true
}

// End closes the stroke. It is the same for pointer-up and pointer-leave.
// Strokes with fewer than two points are dropped.
func (p *Pencil) End() (state.Path, bool) {
	if p.state != Drawing {
		return state.Path{}, false
	}
	p.state = Idle
	pts := p.session.Take()
	path, ok := p.store.Append(pts)
	if ok {
		logx.L().Info("[PENCIL] stroke committed", "id", path.ID, "points", len(pts))
	}
	return path, ok
}

// Cancel closes the stroke without committing it.
func (p *Pencil) Cancel() {
	if p.state != Drawing {
		return
	}
	logx.L().Debug("[PENCIL] stroke cancelled", "points", len(p.session.Points))
	p.session.Reset()
	p.state = Idle
}
