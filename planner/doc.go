// Package planner orchestrates single-floor circulation planning: it
// rasterizes a floor's obstacles onto one occupancy grid, then connects each
// entrance to its nearest placed units with obstacle-aware paths.
//
// Pipeline per Plan call (allocate, compute, drop):
//
//  1. Build a fresh grid.ObstacleGrid over the floor bounds.
//  2. Mark walls, forbidden zones, and placed units. Wall centerlines are
//     inflated to thin quads first; units are marked with their own
//     clearance padding, representing required access space.
//  3. For each entrance, rank destination units by Euclidean distance from
//     the entrance centroid via an R-tree nearest-neighbor query, and
//     request paths to the K nearest (K is a tunable cap; only a few
//     shortest connections per entrance are needed).
//  4. Discard zero-length paths.
//
// Plan holds no cross-call state; PlanConcurrent fans entrances out over a
// bounded errgroup, sharing the read-only grid without locking.
package planner
