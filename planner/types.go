// Package planner defines floor-plan input types, options, and sentinel
// errors for single-floor circulation planning.
package planner

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/circulation/geom"
)

// Sentinel errors for planner configuration.
var (
	// ErrBadCellSize indicates a non-positive grid cell size.
	ErrBadCellSize = errors.New("planner: CellSize must be positive")

	// ErrBadWallThickness indicates a non-positive wall inflation thickness.
	ErrBadWallThickness = errors.New("planner: WallThickness must be positive")

	// ErrBadMaxTargets indicates a non-positive destination cap. A cap of
	// zero is not valid input, it would silently plan nothing.
	ErrBadMaxTargets = errors.New("planner: MaxTargets must be positive")

	// ErrBadMaxExpansions indicates a non-positive A* expansion budget.
	ErrBadMaxExpansions = errors.New("planner: MaxExpansions must be positive")

	// ErrBadParallelism indicates a non-positive worker limit.
	ErrBadParallelism = errors.New("planner: Parallelism must be positive")
)

// WallLine is a wall given as a centerline segment. It is inflated to a thin
// quad of Options.WallThickness before being marked on the grid.
type WallLine struct {
	A geom.Point `json:"a"`
	B geom.Point `json:"b"`
}

// Entrance is a floor access point. Center, when set, overrides the outline
// centroid; otherwise the centroid of Outline is used.
type Entrance struct {
	ID      string       `json:"id"`
	Outline geom.Polygon `json:"outline,omitempty"`
	Center  *geom.Point  `json:"center,omitempty"`
}

// Unit is a placed storage unit as an axis-aligned rectangle. Units are both
// obstacles (with clearance) and path destinations (via their centers).
type Unit struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Polygon returns the unit's outline as a polygon.
func (u Unit) Polygon() geom.Polygon {
	return geom.Rect(u.X, u.Y, u.Width, u.Height)
}

// Center returns the unit's rectangle center.
func (u Unit) Center() geom.Point {
	return geom.Point{X: u.X + u.Width/2, Y: u.Y + u.Height/2}
}

// FloorPlan is the upstream-provided geometry of one floor.
type FloorPlan struct {
	Bounds         geom.Bounds    `json:"bounds"`
	Walls          []geom.Polygon `json:"walls,omitempty"`
	WallLines      []WallLine     `json:"wallLines,omitempty"`
	ForbiddenZones []geom.Polygon `json:"forbiddenZones,omitempty"`
	Entrances      []Entrance     `json:"entrances,omitempty"`
	Units          []Unit         `json:"units,omitempty"`
}

// Route is one computed entrance→unit connection for downstream exporters.
type Route struct {
	ID     string       `json:"id"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Points []geom.Point `json:"points"`
	Length float64      `json:"length"`
}

// Options configures a planning call.
//
// CellSize is the grid resolution in world units. Clearance pads walls and
// forbidden zones; UnitClearance pads placed units (required access space).
// MaxTargets is K, the per-entrance cap on destination candidates.
type Options struct {
	CellSize      float64
	Clearance     float64
	UnitClearance float64
	WallThickness float64
	MaxTargets    int
	MaxExpansions int
	Parallelism   int          // PlanConcurrent worker limit
	Logger        *slog.Logger // nil disables logging
}

// Option is a functional option for configuring planning.
type Option func(*Options)

// WithCellSize sets the grid resolution. Panics on non-positive values.
func WithCellSize(size float64) Option {
	return func(o *Options) {
		if size <= 0 {
			panic(ErrBadCellSize.Error())
		}
		o.CellSize = size
	}
}

// WithClearance sets the wall/forbidden-zone padding. Negative values clamp
// to zero.
func WithClearance(pad float64) Option {
	return func(o *Options) {
		o.Clearance = math.Max(0, pad)
	}
}

// WithUnitClearance sets the placed-unit padding. Negative values clamp to
// zero.
func WithUnitClearance(pad float64) Option {
	return func(o *Options) {
		o.UnitClearance = math.Max(0, pad)
	}
}

// WithWallThickness sets the inflation thickness for WallLines. Panics on
// non-positive values.
func WithWallThickness(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			panic(ErrBadWallThickness.Error())
		}
		o.WallThickness = t
	}
}

// WithMaxTargets sets K, the per-entrance destination cap.
// Panics on non-positive values; zero is not valid input.
func WithMaxTargets(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic(ErrBadMaxTargets.Error())
		}
		o.MaxTargets = k
	}
}

// WithMaxExpansions caps the per-path A* expansion count.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithParallelism sets the PlanConcurrent worker limit.
// Panics on non-positive values.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = n
	}
}

// WithLogger attaches a slog.Logger for planning diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the default planning configuration:
// 0.5-unit cells, 0.25 wall clearance, 0.75 unit clearance, 0.2 wall
// thickness, 3 targets per entrance, unbounded expansions, 4 workers.
func DefaultOptions() Options {
	return Options{
		CellSize:      0.5,
		Clearance:     0.25,
		UnitClearance: 0.75,
		WallThickness: 0.2,
		MaxTargets:    3,
		MaxExpansions: math.MaxInt,
		Parallelism:   4,
		Logger:        nil,
	}
}
