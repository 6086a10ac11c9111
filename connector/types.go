// Package connector defines node/edge/segment types, options, and sentinel
// errors for multi-floor circulation routing.
package connector

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/circulation/geom"
)

// Sentinel errors for graph construction and routing.
var (
	// ErrNoNodes indicates an empty connector list.
	ErrNoNodes = errors.New("connector: node list is empty")

	// ErrDuplicateNode indicates two nodes sharing an id.
	ErrDuplicateNode = errors.New("connector: duplicate node id")

	// ErrUnknownNode indicates a stack link naming a node id that does not
	// exist in the node list.
	ErrUnknownNode = errors.New("connector: stack link references unknown node")

	// ErrNilGraph indicates a nil *Graph was passed to Plan.
	ErrNilGraph = errors.New("connector: graph is nil")

	// ErrBadFloorHeight indicates a non-positive floor height.
	ErrBadFloorHeight = errors.New("connector: FloorHeight must be positive")

	// ErrBadWeight indicates a non-positive edge weight multiplier.
	ErrBadWeight = errors.New("connector: weight multipliers must be positive")
)

// NodeType classifies a vertical connector.
type NodeType string

// Connector types detected upstream.
const (
	Stair    NodeType = "stair"
	Elevator NodeType = "elevator"
	Ramp     NodeType = "ramp"
)

// Node is one vertical connector instance on one floor. Nodes are immutable
// for the duration of a routing call.
type Node struct {
	ID         string            `json:"id"`
	FloorID    string            `json:"floorId"`
	FloorLevel int               `json:"floorLevel"` // ascending with height
	Type       NodeType          `json:"type"`
	Centroid   geom.Point        `json:"centroid"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// EdgeKind distinguishes synthesized same-floor edges from explicit
// stack-link edges.
type EdgeKind string

// Edge kinds.
const (
	Horizontal EdgeKind = "horizontal"
	Vertical   EdgeKind = "vertical"
)

// Edge is one weighted, undirected graph edge (stored once per direction in
// the adjacency map).
type Edge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight float64  `json:"weight"`
	Kind   EdgeKind `json:"kind"`
}

// StackLink declares that two specific connector nodes are vertically
// stacked. Only stack links create vertical edges.
type StackLink struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Segment is one deduplicated 3D edge instance used by at least one route.
// Identity is the unordered node-id pair: traversing (a→b) after (b→a)
// reuses the same segment.
type Segment struct {
	ID       string            `json:"id"`
	From     string            `json:"from"`
	To       string            `json:"to"`
	Type     EdgeKind          `json:"type"`
	Start    geom.Point3       `json:"start"`
	End      geom.Point3       `json:"end"`
	Length   float64           `json:"length"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Route is one computed connector→base path.
type Route struct {
	ID       string   `json:"id"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Cost     float64  `json:"cost"`
	Nodes    []string `json:"nodes"`
	Floors   []int    `json:"floors"`
	Segments []string `json:"segments"` // segment ids, in traversal order
}

// Summary aggregates routing statistics for downstream consumers.
type Summary struct {
	ComponentCount int      `json:"componentCount"`
	RouteCount     int      `json:"routeCount"`
	SegmentCount   int      `json:"segmentCount"`
	Unreachable    []string `json:"unreachable"`
}

// RoutePlan is the full multi-floor routing output: the inspectable graph,
// the computed routes, the deduplicated segment list, and a summary.
type RoutePlan struct {
	Graph    *Graph     `json:"graph"`
	Routes   []Route    `json:"routes"`
	Segments []*Segment `json:"segments"`
	Summary  Summary    `json:"summary"`
}

// Options configures graph construction and routing.
type Options struct {
	FloorHeight      float64      // z-distance between consecutive levels
	HorizontalWeight float64      // same-floor edge multiplier
	VerticalWeight   float64      // stack-link edge multiplier
	Logger           *slog.Logger // nil disables logging
}

// Option is a functional option for configuring the graph.
type Option func(*Options)

// WithFloorHeight sets the level-to-level height. Panics on non-positive
// values.
func WithFloorHeight(h float64) Option {
	return func(o *Options) {
		if h <= 0 {
			panic(ErrBadFloorHeight.Error())
		}
		o.FloorHeight = h
	}
}

// WithHorizontalWeight sets the same-floor edge multiplier. Panics on
// non-positive values.
func WithHorizontalWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadWeight.Error())
		}
		o.HorizontalWeight = w
	}
}

// WithVerticalWeight sets the stack-link edge multiplier. Panics on
// non-positive values. Values above HorizontalWeight penalize stairs and
// elevators relative to walking, which is the intended default.
func WithVerticalWeight(w float64) Option {
	return func(o *Options) {
		if w <= 0 {
			panic(ErrBadWeight.Error())
		}
		o.VerticalWeight = w
	}
}

// WithLogger attaches a slog.Logger for routing diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the default configuration: 3.0 floor height,
// horizontal weight 1.0, vertical weight 1.5.
func DefaultOptions() Options {
	return Options{
		FloorHeight:      3.0,
		HorizontalWeight: 1.0,
		VerticalWeight:   1.5,
		Logger:           nil,
	}
}
