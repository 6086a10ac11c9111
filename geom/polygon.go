package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Polygon is an ordered sequence of vertices, implicitly closed. A polygon
// with fewer than three vertices is degenerate and never contains anything.
// No self-intersection guarantee is assumed.
type Polygon []Point

// Ring converts the polygon to a closed orb.Ring (first vertex repeated at
// the end, as orb expects).
func (pg Polygon) Ring() orb.Ring {
	if len(pg) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(pg)+1)
	for _, p := range pg {
		ring = append(ring, p.Orb())
	}
	ring = append(ring, pg[0].Orb())

	return ring
}

// Contains reports whether p lies inside the polygon, using the standard
// ray-crossing test (via planar.RingContains).
func (pg Polygon) Contains(p Point) bool {
	if len(pg) < 3 {
		return false
	}

	return planar.RingContains(pg.Ring(), p.Orb())
}

// BoundingBox returns the axis-aligned bounding box of the polygon.
// A degenerate (empty) polygon yields zero bounds.
func (pg Polygon) BoundingBox() Bounds {
	if len(pg) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pg[0].X, MinY: pg[0].Y, MaxX: pg[0].X, MaxY: pg[0].Y}
	for _, p := range pg[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}

	return b
}

// Centroid returns the area centroid of the polygon. For zero-area polygons
// (collinear or fewer than three vertices) it falls back to the vertex mean,
// which is what a caller wants for thin entrance markers.
func (pg Polygon) Centroid() Point {
	if len(pg) == 0 {
		return Point{}
	}
	if len(pg) >= 3 {
		c, area := planar.CentroidArea(pg.Ring())
		if area != 0 {
			return Point{X: c[0], Y: c[1]}
		}
	}
	var sx, sy float64
	for _, p := range pg {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pg))

	return Point{X: sx / n, Y: sy / n}
}

// EdgeDistanceSquared returns the squared distance from p to the closest
// point on any edge of the polygon. Returns +Inf for polygons with fewer
// than two vertices.
func (pg Polygon) EdgeDistanceSquared(p Point) float64 {
	if len(pg) < 2 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	op := p.Orb()
	for i := range pg {
		a := pg[i].Orb()
		b := pg[(i+1)%len(pg)].Orb()
		if d := planar.DistanceFromSegmentSquared(a, b, op); d < best {
			best = d
		}
	}

	return best
}

// Rect builds the polygon of an axis-aligned rectangle, counter-clockwise.
func Rect(x, y, width, height float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}

// SegmentQuad inflates the segment a→b into a quad of the given thickness,
// so that line-based obstacles (wall centerlines) can be marked on an
// occupancy grid like any other polygon.
func SegmentQuad(a, b Point, thickness float64) Polygon {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		half := thickness / 2

		return Rect(a.X-half, a.Y-half, thickness, thickness)
	}
	// Unit normal, scaled to half thickness.
	nx := -dy / length * thickness / 2
	ny := dx / length * thickness / 2

	return Polygon{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}
