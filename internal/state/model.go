package state

import "fmt"

// Point is a position in canonical space: input coordinates already
// corrected for device pixel density and zoom.
type Point struct{ X, Y float64 }

// Path is one committed stroke, points in the order they were drawn.
type Path struct {
	ID     string
	Points []Point
}

// MinPathPoints is the shortest path the store accepts.
const MinPathPoints = 2

type ToolMode int

const (
	ToolNone ToolMode = iota
	ToolPencil
	ToolEraser
)

func (m ToolMode) String() string {
	switch m {
	case ToolNone:
		return "none"
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	}
	return fmt.Sprintf("ToolMode(%d)", int(m))
}

// EraserConfig holds the eraser footprint, in canonical units.
type EraserConfig struct {
	Radius float64
}
