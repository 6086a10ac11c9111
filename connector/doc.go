// Package connector builds the cross-floor circulation graph over vertical
// connectors (stairs, elevators, ramps) and routes every upper-floor
// connector down to its component's base level.
//
// Graph construction:
//
//   - Horizontal edges are synthesized between every pair of nodes sharing a
//     floor level, weighted by Euclidean distance × HorizontalWeight.
//   - Vertical edges come only from explicitly supplied stack links between
//     node pairs, never inferred from proximity, because floor stacking is
//     an architectural fact, not a geometric one. Their weight is the 3D
//     distance (Δlevel × FloorHeight in z) × VerticalWeight.
//   - VerticalWeight defaults above 1.0 to penalize vertical travel relative
//     to walking.
//
// Routing:
//
//   - Connected components are discovered with an iterative depth-first
//     sweep over the adjacency map (explicit stack, never recursion).
//   - Per component, the base level is the minimum floor level among member
//     nodes. Every non-base node is A*-routed (3D Euclidean heuristic) to
//     each base node and the cheapest result kept. Nodes with no path to
//     any base node are recorded as unreachable rather than failing the
//     call (component membership should prevent it, but it is guarded).
//   - Consecutive route node pairs become Segments, deduplicated by
//     unordered id pair and shared across all routes that traverse them.
//
// A routing call is pure: it allocates, computes, returns, and holds no
// cross-call state.
package connector
