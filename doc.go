// Package convexhull provides a pure, incremental geometry engine for 2D
// integer point sets: convex hulls and α-angle hulls.
//
// The engine takes a set of integer points and produces two structures:
//
//   - The convex hull: the smallest convex polygon enclosing the set,
//     built in three phases (an outline via two opposing sweeps, four
//     region chains, and per-region path straightening). The hull is
//     updatable; unchanged regions are reused across updates.
//   - The α-angle hull: for any aperture α strictly between 0° and 180°,
//     the closed path of circular arcs from which the set subtends
//     exactly the angle α, produced by a rotating two-pointer walk
//     around the hull.
//
// # Coordinate System
//
// This library assumes a y-down (image/screen) coordinate system: the
// x-axis increases to the right and the y-axis increases downward. All
// orientation tests (clockwise, counter-clockwise, left turn, right turn)
// are stated in this convention. A negative three-point determinant
// denotes a right turn.
//
// # Core Packages
//
//   - [github.com/aerben/convex-hull/point]: the integer point primitive
//     and the signed three-point determinant.
//   - [github.com/aerben/convex-hull/angle]: radian angle values and the
//     scalar-product angle calculators.
//   - [github.com/aerben/convex-hull/pointset]: deduplicated,
//     lexicographically ordered point sets.
//   - [github.com/aerben/convex-hull/hull]: sweep lines, the four-region
//     outline, path straightening and the updatable convex hull.
//   - [github.com/aerben/convex-hull/arc]: circular arcs defined by
//     center, radius, start and extent angles.
//   - [github.com/aerben/convex-hull/anglehull]: the rotating-caterpillar
//     walk emitting the α-angle hull arcs.
//   - [github.com/aerben/convex-hull/pointio]: reading and writing the
//     flat "x y" point file format.
//
// # Purity and Concurrency
//
// Every operation is a function from inputs to a new immutable value.
// The engine holds no shared mutable state, performs no I/O (outside
// pointio) and spawns no goroutines; calls may run concurrently as long
// as each call owns its inputs.
package convexhull
