package turtle

import "github.com/gogpu/turtle/surface"

// Snapshot is the part of the turtle state kept by Save.
// It holds no geometry.
type Snapshot struct {
	Position  surface.Point
	Heading   float64
	Color     Color
	LineWidth float64
}

// stateStack is an unbounded LIFO of snapshots.
type stateStack struct {
	items []Snapshot
}

func (s *stateStack) push(snap Snapshot) {
	s.items = append(s.items, snap)
}

// pop removes the top snapshot. ok is false if the stack is empty.
func (s *stateStack) pop() (snap Snapshot, ok bool) {
	n := len(s.items)
	if n == 0 {
		return Snapshot{}, false
	}
	snap = s.items[n-1]
	s.items = s.items[:n-1]
	return snap, true
}

func (s *stateStack) depth() int {
	return len(s.items)
}
