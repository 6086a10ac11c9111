package connector

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Graph is the weighted, undirected multi-floor connector graph. Immutable
// once built.
type Graph struct {
	nodes     map[string]*Node
	order     []string // node ids, sorted for deterministic iteration
	adjacency map[string][]Edge
	options   Options
}

// NewGraph builds the connector graph from nodes and explicit stack links.
//
// Horizontal edges connect every pair of nodes sharing a floor level,
// weighted dist(a,b) × HorizontalWeight. Vertical edges are created only
// from stack links, weighted sqrt(dist² + (Δlevel × FloorHeight)²) ×
// VerticalWeight.
//
// Fails fast with ErrNoNodes on an empty node list, ErrDuplicateNode on a
// repeated id, and ErrUnknownNode on a stack link naming a missing node.
//
// Complexity: O(N² + L) time for N nodes and L stack links (pairwise
// same-level synthesis dominates), O(N + E) memory.
func NewGraph(nodes []Node, links []StackLink, opts ...Option) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes:     make(map[string]*Node, len(nodes)),
		order:     make([]string, 0, len(nodes)),
		adjacency: make(map[string][]Edge, len(nodes)),
		options:   cfg,
	}
	for i := range nodes {
		n := nodes[i]
		if _, exists := g.nodes[n.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		g.nodes[n.ID] = &n
		g.order = append(g.order, n.ID)
	}
	sort.Strings(g.order)

	// Horizontal edges: every same-level pair.
	for i := 0; i < len(g.order); i++ {
		for j := i + 1; j < len(g.order); j++ {
			a, b := g.nodes[g.order[i]], g.nodes[g.order[j]]
			if a.FloorLevel != b.FloorLevel {
				continue
			}
			w := a.Centroid.Distance(b.Centroid) * cfg.HorizontalWeight
			g.addUndirected(a.ID, b.ID, w, Horizontal)
		}
	}

	// Vertical edges: explicit stack links only.
	for _, link := range links {
		a, ok := g.nodes[link.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, link.From)
		}
		b, ok := g.nodes[link.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, link.To)
		}
		planar := a.Centroid.Distance(b.Centroid)
		rise := float64(b.FloorLevel-a.FloorLevel) * cfg.FloorHeight
		w := math.Sqrt(planar*planar+rise*rise) * cfg.VerticalWeight
		g.addUndirected(a.ID, b.ID, w, Vertical)
	}

	return g, nil
}

// addUndirected records the edge in both adjacency lists.
func (g *Graph) addUndirected(from, to string, weight float64, kind EdgeKind) {
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight, Kind: kind})
	g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight, Kind: kind})
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// NodeIDs returns all node ids in sorted order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)

	return ids
}

// Nodes returns all nodes, sorted by id.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// Neighbors returns the adjacency list of id. The returned slice is shared;
// callers must not mutate it.
func (g *Graph) Neighbors(id string) []Edge { return g.adjacency[id] }

// Adjacency returns a copy of the full adjacency map for inspection.
func (g *Graph) Adjacency() map[string][]Edge {
	out := make(map[string][]Edge, len(g.adjacency))
	for id, edges := range g.adjacency {
		cp := make([]Edge, len(edges))
		copy(cp, edges)
		out[id] = cp
	}

	return out
}

// EdgeBetween returns the first edge connecting a and b (either direction)
// and whether one exists.
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	for _, e := range g.adjacency[a] {
		if e.To == b {
			return e, true
		}
	}

	return Edge{}, false
}

// Elevation returns the z coordinate of a node: FloorLevel × FloorHeight.
func (g *Graph) Elevation(n *Node) float64 {
	return float64(n.FloorLevel) * g.options.FloorHeight
}

// Options returns the configuration the graph was built with.
func (g *Graph) Options() Options { return g.options }

// MarshalJSON serializes the graph as {"nodes": {...}, "adjacency": {...}}
// so downstream exporters can render the full circulation network.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Nodes     map[string]*Node  `json:"nodes"`
		Adjacency map[string][]Edge `json:"adjacency"`
	}{
		Nodes:     g.nodes,
		Adjacency: g.adjacency,
	})
}
