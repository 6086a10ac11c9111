package connector

import (
	"fmt"

	"github.com/katalvlaran/circulation/geom"
)

// segmentSet deduplicates segments by unordered node-id pair. A segment is
// created once and shared by every route that traverses it, in either
// direction.
type segmentSet struct {
	graph  *Graph
	byPair map[[2]string]*Segment
	list   []*Segment // creation order, for deterministic output
}

func newSegmentSet(g *Graph) *segmentSet {
	return &segmentSet{
		graph:  g,
		byPair: make(map[[2]string]*Segment),
	}
}

// intern returns the segment for the pair (a,b), creating it on first use.
// The lookup is checked in both directions, so (b,a) reuses (a,b).
func (s *segmentSet) intern(a, b string) *Segment {
	if seg, ok := s.byPair[[2]string{a, b}]; ok {
		return seg
	}
	if seg, ok := s.byPair[[2]string{b, a}]; ok {
		return seg
	}

	na, nb := s.graph.Node(a), s.graph.Node(b)
	kind := Horizontal
	if edge, ok := s.graph.EdgeBetween(a, b); ok {
		kind = edge.Kind
	}
	start := geom.Point3{X: na.Centroid.X, Y: na.Centroid.Y, Z: s.graph.Elevation(na)}
	end := geom.Point3{X: nb.Centroid.X, Y: nb.Centroid.Y, Z: s.graph.Elevation(nb)}

	seg := &Segment{
		ID:     fmt.Sprintf("seg_%s_%s", a, b),
		From:   a,
		To:     b,
		Type:   kind,
		Start:  start,
		End:    end,
		Length: start.Distance(end),
		Metadata: map[string]string{
			"fromFloor": na.FloorID,
			"toFloor":   nb.FloorID,
		},
	}
	s.byPair[[2]string{a, b}] = seg
	s.list = append(s.list, seg)

	return seg
}
