package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for geometry validation.
var (
	// ErrInvalidBounds indicates bounds with zero or negative width or height.
	ErrInvalidBounds = errors.New("geom: bounds must have positive width and height")
)

// Point is a location in continuous 2D world space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3 is a location in 3D world space, used for multi-floor segment
// endpoints where Z encodes floor elevation.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Orb converts p to an orb.Point for use with orb/planar predicates.
func (p Point) Orb() orb.Point { return orb.Point{p.X, p.Y} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return planar.Distance(p.Orb(), q.Orb())
}

// DistanceSquared returns the squared Euclidean distance between p and q.
// Prefer it over Distance when only comparing magnitudes.
func (p Point) DistanceSquared(q Point) float64 {
	return planar.DistanceSquared(p.Orb(), q.Orb())
}

// Distance returns the Euclidean distance between two 3D points.
func (p Point3) Distance(q Point3) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Bounds is an axis-aligned rectangle in world space.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Width returns MaxX-MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Validate returns ErrInvalidBounds (with dimensions attached) unless the
// bounds describe a rectangle of positive area.
func (b Bounds) Validate() error {
	if b.Width() <= 0 || b.Height() <= 0 {
		return fmt.Errorf("%w: got %.6g×%.6g", ErrInvalidBounds, b.Width(), b.Height())
	}

	return nil
}

// Expand grows the bounds by pad on every side. A negative pad shrinks them;
// callers are responsible for keeping the result valid.
func (b Bounds) Expand(pad float64) Bounds {
	return Bounds{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}
}

// Contains reports whether p lies inside the bounds (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
