// Package astar defines options, sentinel errors, and the Path result type
// for grid A* search.
package astar

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/circulation/geom"
)

// Sentinel errors for search configuration.
var (
	// ErrNilGrid indicates a nil *grid.ObstacleGrid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrBadMaxExpansions indicates a non-positive expansion budget.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be positive")
)

// maxSnapRadius bounds the expanding-ring scan used to move an occupied
// endpoint cell onto free space.
const maxSnapRadius = 5

// Path is an ordered sequence of continuous-space waypoints on grid-cell
// centers, with its total polyline length in world units.
type Path struct {
	Points []geom.Point `json:"points"`
	Length float64      `json:"length"`
}

// Options configures a single FindPath call.
//
// MaxExpansions caps the number of cells the search may expand, bounding
// worst-case runtime on degenerate inputs. A budget hit is reported as
// "no path" (an expected negative outcome) and logged at debug level when a
// logger is set. Default is no cap.
type Options struct {
	MaxExpansions int
	Logger        *slog.Logger // nil disables logging
}

// Option is a functional option for configuring FindPath.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded cells.
// Panics on non-positive values.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger attaches a slog.Logger for debug instrumentation (currently
// only the expansion-budget warning).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the default search configuration: unbounded
// expansions, no logger.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: math.MaxInt,
		Logger:        nil,
	}
}
