package connector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circulation/connector"
	"github.com/katalvlaran/circulation/geom"
)

func node(id string, level int, x, y float64) connector.Node {
	return connector.Node{
		ID:         id,
		FloorID:    "floor_" + id,
		FloorLevel: level,
		Type:       connector.Stair,
		Centroid:   geom.Point{X: x, Y: y},
	}
}

//----------------------------------------------------------------------------//
// Graph construction
//----------------------------------------------------------------------------//

func TestNewGraph_Errors(t *testing.T) {
	t.Run("EmptyNodes", func(t *testing.T) {
		_, err := connector.NewGraph(nil, nil)
		assert.ErrorIs(t, err, connector.ErrNoNodes)
	})
	t.Run("DuplicateID", func(t *testing.T) {
		_, err := connector.NewGraph(
			[]connector.Node{node("s1", 0, 0, 0), node("s1", 1, 0, 0)}, nil)
		assert.ErrorIs(t, err, connector.ErrDuplicateNode)
	})
	t.Run("UnknownLinkNode", func(t *testing.T) {
		_, err := connector.NewGraph(
			[]connector.Node{node("s1", 0, 0, 0)},
			[]connector.StackLink{{From: "s1", To: "ghost"}})
		assert.ErrorIs(t, err, connector.ErrUnknownNode)
	})
}

func TestNewGraph_HorizontalEdgesSameLevelOnly(t *testing.T) {
	g, err := connector.NewGraph([]connector.Node{
		node("a", 0, 0, 0),
		node("b", 0, 10, 0),
		node("c", 1, 5, 0),
	}, nil)
	require.NoError(t, err)

	edge, ok := g.EdgeBetween("a", "b")
	require.True(t, ok)
	assert.Equal(t, connector.Horizontal, edge.Kind)
	assert.InDelta(t, 10.0, edge.Weight, 1e-9)

	// Different levels are never connected without an explicit stack link.
	_, ok = g.EdgeBetween("a", "c")
	assert.False(t, ok)
}

// TestNewGraph_VerticalCostOrdering: with verticalWeight >= horizontalWeight
// and a positive floor height, a vertical edge always costs strictly more
// than the same pair's horizontal-only distance.
func TestNewGraph_VerticalCostOrdering(t *testing.T) {
	nodes := []connector.Node{node("lo", 0, 0, 0), node("hi", 1, 4, 0)}
	g, err := connector.NewGraph(nodes,
		[]connector.StackLink{{From: "lo", To: "hi"}},
		connector.WithFloorHeight(3.0),
		connector.WithHorizontalWeight(1.0),
		connector.WithVerticalWeight(1.0))
	require.NoError(t, err)

	edge, ok := g.EdgeBetween("lo", "hi")
	require.True(t, ok)
	assert.Equal(t, connector.Vertical, edge.Kind)

	horizontalOnly := geom.Point{X: 0, Y: 0}.Distance(geom.Point{X: 4, Y: 0}) // ×1.0
	assert.Greater(t, edge.Weight, horizontalOnly)
	assert.InDelta(t, 5.0, edge.Weight, 1e-9) // sqrt(4² + 3²)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { connector.WithFloorHeight(0) })
	assert.Panics(t, func() { connector.WithHorizontalWeight(-1) })
	assert.Panics(t, func() { connector.WithVerticalWeight(0) })
}

//----------------------------------------------------------------------------//
// Components
//----------------------------------------------------------------------------//

func TestComponents_DisconnectedGroups(t *testing.T) {
	g, err := connector.NewGraph([]connector.Node{
		node("a", 0, 0, 0), node("b", 0, 5, 0), // level 0 pair
		node("x", 3, 0, 0), node("y", 3, 5, 0), // level 3 pair
	}, nil)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []string{"a", "b"}, comps[0])
	assert.Equal(t, []string{"x", "y"}, comps[1])
}

//----------------------------------------------------------------------------//
// Routing
//----------------------------------------------------------------------------//

func TestPlan_NilGraph(t *testing.T) {
	_, err := connector.Plan(nil)
	assert.ErrorIs(t, err, connector.ErrNilGraph)
}

// TestPlan_TwoFloorsOneStack is the canonical two-floor scenario: two
// connectors on floor 0, one on floor 1 stacked above the first. One
// component, one route, one vertical segment of length sqrt(0 + 3.2²).
func TestPlan_TwoFloorsOneStack(t *testing.T) {
	g, err := connector.NewGraph([]connector.Node{
		node("g0", 0, 0, 0),
		node("g1", 0, 10, 0),
		node("u0", 1, 0, 0),
	},
		[]connector.StackLink{{From: "u0", To: "g0"}},
		connector.WithFloorHeight(3.2),
		connector.WithVerticalWeight(1.0))
	require.NoError(t, err)

	plan, err := connector.Plan(g)
	require.NoError(t, err)

	assert.Equal(t, 1, plan.Summary.ComponentCount)
	assert.Equal(t, 1, plan.Summary.RouteCount)
	assert.Equal(t, 1, plan.Summary.SegmentCount)
	assert.Empty(t, plan.Summary.Unreachable)

	route := plan.Routes[0]
	assert.Equal(t, "u0", route.From)
	assert.Equal(t, "g0", route.To)
	assert.Equal(t, []string{"u0", "g0"}, route.Nodes)
	assert.Equal(t, []int{0, 1}, route.Floors)
	assert.InDelta(t, 3.2, route.Cost, 1e-9)

	seg := plan.Segments[0]
	assert.Equal(t, connector.Vertical, seg.Type)
	assert.InDelta(t, 3.2, seg.Length, 1e-9)
	assert.InDelta(t, 3.2, seg.Start.Z-seg.End.Z, 1e-9) // start is the upper node
}

// TestPlan_SingletonComponent: a connector with no edges is its own base;
// zero routes, not unreachable.
func TestPlan_SingletonComponent(t *testing.T) {
	g, err := connector.NewGraph([]connector.Node{node("lonely", 2, 1, 1)}, nil)
	require.NoError(t, err)

	plan, err := connector.Plan(g)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Summary.ComponentCount)
	assert.Zero(t, plan.Summary.RouteCount)
	assert.Empty(t, plan.Summary.Unreachable)
}

// TestPlan_SegmentDedup: two routes sharing the lower stack reuse the same
// segment; the segment list never contains the same unordered pair twice.
func TestPlan_SegmentDedup(t *testing.T) {
	g, err := connector.NewGraph([]connector.Node{
		node("base", 0, 0, 0),
		node("mid", 1, 0, 0),
		node("top", 2, 0, 0),
	}, []connector.StackLink{
		{From: "base", To: "mid"},
		{From: "mid", To: "top"},
	})
	require.NoError(t, err)

	plan, err := connector.Plan(g)
	require.NoError(t, err)

	// Routes: mid→base and top→(mid)→base.
	assert.Equal(t, 2, plan.Summary.RouteCount)
	assert.Equal(t, 2, plan.Summary.SegmentCount, "mid–base segment is shared")

	seen := make(map[[2]string]bool)
	for _, seg := range plan.Segments {
		key := [2]string{seg.From, seg.To}
		if seg.From > seg.To {
			key = [2]string{seg.To, seg.From}
		}
		assert.False(t, seen[key], "duplicate segment for pair %v", key)
		seen[key] = true
	}
}

// TestPlan_PicksCheapestBase: a floor-1 node stacked above one of two base
// connectors routes to the directly linked one, not across the floor.
func TestPlan_PicksCheapestBase(t *testing.T) {
	g, err := connector.NewGraph([]connector.Node{
		node("west", 0, 0, 0),
		node("east", 0, 30, 0),
		node("upper", 1, 30, 0),
	},
		[]connector.StackLink{{From: "upper", To: "east"}},
		connector.WithFloorHeight(3.0))
	require.NoError(t, err)

	plan, err := connector.Plan(g)
	require.NoError(t, err)
	require.Equal(t, 1, plan.Summary.RouteCount)
	assert.Equal(t, "east", plan.Routes[0].To)
}
