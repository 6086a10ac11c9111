// Package geom provides the planar primitives shared by the circulation
// routing packages: points, axis-aligned bounds, and polygons.
//
// All coordinates are continuous world units (typically meters). There is
// exactly one point representation, Point with named X/Y fields, and all
// higher-level packages are expected to use it; no positional or duck-typed
// point shapes exist anywhere in this module.
//
// Planar predicates (containment, centroid, point-to-segment distance) are
// delegated to github.com/paulmach/orb/planar rather than hand-rolled.
package geom
