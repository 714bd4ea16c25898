package turtle

import "github.com/gogpu/turtle/surface"

// SegmentID addresses a segment by its position in the segment list.
// IDs are only valid until the next ClearSegments.
type SegmentID int

// Segment is a read-only copy of one drawn polyline and the style it is
// stroked with.
type Segment struct {
	path      *surface.Path
	color     Color
	lineWidth float64
}

// Path returns a copy of the segment geometry.
func (s Segment) Path() *surface.Path {
	return s.path.Clone()
}

// Color returns the segment stroke color.
func (s Segment) Color() Color {
	return s.color
}

// LineWidth returns the segment stroke width.
func (s Segment) LineWidth() float64 {
	return s.lineWidth
}

// Points returns the points of the segment geometry, in order.
func (s Segment) Points() []surface.Point {
	pts := s.path.Points()
	out := make([]surface.Point, len(pts))
	copy(out, pts)
	return out
}

// LineCount returns the number of visible line pieces in the segment.
func (s Segment) LineCount() int {
	return s.path.LineCount()
}

// segmentStore is the arena holding every segment. The current segment is
// always the last one and is looked up by index on every access.
type segmentStore struct {
	items []Segment
}

// open appends a new segment and returns its ID.
func (st *segmentStore) open(c Color, lineWidth float64) SegmentID {
	st.items = append(st.items, Segment{
		path:      surface.NewPath(),
		color:     c,
		lineWidth: lineWidth,
	})
	return st.current()
}

func (st *segmentStore) current() SegmentID {
	return SegmentID(len(st.items) - 1)
}

// at returns a pointer into the arena. It must not be kept across open.
func (st *segmentStore) at(id SegmentID) *Segment {
	return &st.items[id]
}

// truncateToLast drops every segment except the current one.
func (st *segmentStore) truncateToLast() {
	last := st.items[len(st.items)-1]
	clear(st.items)
	st.items = append(st.items[:0], last)
}

func (st *segmentStore) len() int {
	return len(st.items)
}

// snapshot returns detached copies of every segment.
func (st *segmentStore) snapshot() []Segment {
	out := make([]Segment, len(st.items))
	for i, s := range st.items {
		s.path = s.path.Clone()
		out[i] = s
	}
	return out
}
