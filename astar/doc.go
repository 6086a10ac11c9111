// Package astar implements A* search over a grid.ObstacleGrid between two
// continuous-space points.
//
// Behavior:
//
//  1. Start and goal are converted to cell coordinates by clamped floor
//     division. An occupied endpoint cell is snapped to the nearest free
//     cell by scanning expanding square rings (radius 1..5); the first free
//     cell in increasing (dr,dc) perimeter order wins. If no free cell is
//     found within the radius bound, there is no path.
//  2. Search runs with 8-connectivity. Axis moves cost 1, diagonals √2 (in
//     cell units). A diagonal is rejected when either of its two adjacent
//     orthogonal cells is occupied, so paths never cut corners through a
//     blocked cell.
//  3. The heuristic is Euclidean distance in cell units, admissible and
//     consistent on a uniform grid, so the result is optimal with respect to
//     the discretized graph.
//  4. The open set is a binary min-heap keyed by f-score with ties broken by
//     insertion order; duplicates are pushed lazily and stale entries skipped
//     on pop (same strategy as a lazy decrease-key Dijkstra).
//
// A nil path is the expected outcome for an unreachable pair, not an error.
// Returned waypoints always lie on grid-cell centers, not the original
// endpoints.
//
// Complexity:
//
//   - Time:  O(C log C) where C = cols×rows (each cell expanded at most once,
//     heap operations O(log C)).
//   - Space: O(C) for score, predecessor, and closed maps.
package astar
