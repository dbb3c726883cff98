// Package engine turns pointer input into changes of the path store: the
// pencil draws new strokes, the eraser cuts existing ones.
package engine

import (
	"InkOverlay/internal/logx"
	"InkOverlay/internal/state"
	"InkOverlay/internal/view"
)

// Controller routes pointer events to the engine selected by the current
// tool mode. Events must be delivered one at a time; no handler runs
// concurrently with another.
type Controller struct {
	mode    state.ToolMode
	pressed bool
	mapper  *view.Mapper
	pencil  *Pencil
	eraser  *Eraser
}

// NewController wires both engines to store. The controller starts in
// ToolNone.
func NewController(store *state.PathStore, mapper *view.Mapper, eraser state.EraserConfig, sketch Sketcher) *Controller {
	return &Controller{
		mapper: mapper,
		pencil: NewPencil(store, sketch),
		eraser: NewEraser(store, eraser),
	}
}

// SetToolMode changes the mode used for the next event. A stroke already
// in progress is not migrated: the first event handled in another mode
// drops it, and switching back to Pencil does not revive it.
func (c *Controller) SetToolMode(m state.ToolMode) {
	if m == c.mode {
		return
	}
	logx.L().Info("[TOOL] mode changed", "from", c.mode, "to", m)
	c.mode = m
}

func (c *Controller) ToolMode() state.ToolMode { return c.mode }

func (c *Controller) Pencil() *Pencil { return c.pencil }

// Mapper returns the coordinate mapper shared by both engines.
func (c *Controller) Mapper() *view.Mapper { return c.mapper }

// HandlePointer processes one pointer event against the current mode.
func (c *Controller) HandlePointer(ev PointerEvent) {
	if ev.Kind.terminal() {
		c.pressed = false
		if c.pencil.State() == Drawing {
			if c.mode == state.ToolPencil {
				c.pencil.End()
			} else {
				c.pencil.Cancel()
			}
		}
		return
	}

	if ev.Kind == PointerDown {
		c.pressed = true
	}
	if c.mode != state.ToolPencil && c.pencil.State() == Drawing {
		c.pencil.Cancel()
	}

	switch c.mode {
	case state.ToolPencil:
		p := c.mapper.Map(ev.X, ev.Y)
		if ev.Kind == PointerDown {
			c.pencil.Down(p)
		} else {
			c.pencil.Move(p)
		}
	case state.ToolEraser:
		if !c.pressed {
			return
		}
		c.eraser.Apply(c.mapper.Map(ev.X, ev.Y))
	}
}
