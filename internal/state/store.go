package state

import (
	"sync"

	"InkOverlay/internal/logx"

	"github.com/google/uuid"
)

type entry struct {
	path   Path
	bounds Rect
}

// PathStore is the ordered set of committed strokes. Order is insertion
// order and doubles as paint order. Every stored path has at least
// MinPathPoints points.
//
// Stored point slices are shared with snapshots and must not be modified.
type PathStore struct {
	entries   []entry
	rev       Revision
	listeners []func()
	mu        sync.RWMutex
}

// NewPathStore creates an empty store.
func NewPathStore() *PathStore {
	return &PathStore{entries: make([]entry, 0)}
}

// OnChange registers fn to run after every mutation. Listeners run on the
// mutating goroutine, after the store lock is released.
func (s *PathStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *PathStore) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

func newEntry(points []Point) entry {
	pts := make([]Point, len(points))
	copy(pts, points)
	return entry{
		path:   Path{ID: uuid.NewString(), Points: pts},
		bounds: BoundsOf(pts),
	}
}

// Append commits a new path on top of the existing ones. Candidates with
// fewer than MinPathPoints points are dropped and ok is false.
func (s *PathStore) Append(points []Point) (p Path, ok bool) {
	if len(points) < MinPathPoints {
		logx.L().Debug("[STORE] dropped degenerate path", "points", len(points))
		return Path{}, false
	}
	e := newEntry(points)

	s.mu.Lock()
	s.entries = append(s.entries, e)
	rev := s.rev.Tick()
	s.mu.Unlock()

	logx.L().Info("[STORE] path added", "id", e.path.ID, "points", len(e.path.Points), "rev", rev)
	s.notify()
	return e.path, true
}

// Rewrite visits every stored path in order together with its bounding
// box. When fn reports changed, the path is replaced in place by the
// returned fragments; fragments shorter than MinPathPoints are dropped and
// the survivors get fresh IDs. All replacements land as one mutation.
// Rewrite returns the number of paths that changed.
func (s *PathStore) Rewrite(fn func(p Path, bounds Rect) ([]Path, bool)) int {
	s.mu.Lock()
	changed := 0
	next := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		parts, ok := fn(e.path, e.bounds)
		if !ok {
			next = append(next, e)
			continue
		}
		changed++
		for _, part := range parts {
			if len(part.Points) < MinPathPoints {
				logx.L().Debug("[STORE] dropped degenerate fragment", "from", e.path.ID, "points", len(part.Points))
				continue
			}
			next = append(next, newEntry(part.Points))
		}
	}
	if changed == 0 {
		s.mu.Unlock()
		return 0
	}
	s.entries = next
	rev := s.rev.Tick()
	s.mu.Unlock()

	logx.L().Info("[STORE] paths rewritten", "changed", changed, "total", len(next), "rev", rev)
	s.notify()
	return changed
}

// Clear removes every path.
func (s *PathStore) Clear() {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return
	}
	s.entries = make([]entry, 0)
	s.rev.Tick()
	s.mu.Unlock()

	logx.L().Info("[STORE] cleared")
	s.notify()
}

// Paths returns the stored paths in paint order.
func (s *PathStore) Paths() []Path {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]Path, 0, len(s.entries))
	for _, e := range s.entries {
		paths = append(paths, e.path)
	}
	return paths
}

// Len returns the number of stored paths.
func (s *PathStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Revision returns the number of mutations applied so far.
func (s *PathStore) Revision() uint64 {
	return s.rev.Current()
}
