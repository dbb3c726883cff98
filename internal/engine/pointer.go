package engine

import "fmt"

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	// PointerLeave is the pointer leaving the drawing surface. It ends a
	// gesture exactly like PointerUp.
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	}
	return fmt.Sprintf("PointerKind(%d)", int(k))
}

// terminal reports whether k ends the current gesture.
func (k PointerKind) terminal() bool {
	return k == PointerUp || k == PointerLeave
}

// PointerEvent is one pointer event in surface-local coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}
