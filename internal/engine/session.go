package engine

import "InkOverlay/internal/state"

// Session is the stroke in progress between pointer-down and the end of the
// gesture. The Active flag and the point list only change together.
type Session struct {
	Active bool
	Points []state.Point
}

// Begin opens the session at p, dropping anything left from before.
func (s *Session) Begin(p state.Point) {
	s.Active = true
	s.Points = []state.Point{p}
}

// Add appends p and returns the previous last point.
func (s *Session) Add(p state.Point) (prev state.Point, ok bool) {
	if !s.Active || len(s.Points) == 0 {
		return state.Point{}, false
	}
	prev = s.Points[len(s.Points)-1]
	s.Points = append(s.Points, p)
	return prev, true
}

// Take closes the session and hands over its points.
func (s *Session) Take() []state.Point {
	pts := s.Points
	s.Reset()
	return pts
}

// Reset closes the session and discards its points.
func (s *Session) Reset() {
	s.Active = false
	s.Points = nil
}
