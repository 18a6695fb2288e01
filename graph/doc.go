// Package graph treats a 4-connected ASCII grid as an immutable graph.
//
// What:
//
//   - Vertex carries a dense id (0..|V|-1), a grid index (width*y+x), its
//     (x,y) coordinates, and a fixed neighbor/action list.
//   - Graph holds the dense vertex slice V and the grid-indexed table U
//     (with holes at blocked cells).
//   - Parses the MovingAI-style map text format ("height H", "width W",
//     "map", then H rows of W characters).
//
// Why:
//
//   - The high-level and low-level search components (packages lacam and
//     pibt) only ever need O(1) neighbor/action lookups and a stable
//     per-vertex action order; a dense array-backed graph serves that far
//     more cheaply than a generic string-keyed mutable graph would.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - Size, Manhattan: O(1).
//
// Determinism:
//
//   - Neighbor order is fixed: left, right, up (y+1), down (y-1), each
//     included only when in-bounds and unblocked. Vertex ids are assigned
//     in row-major scan order. Both are load-bearing: the low-level
//     planner shuffles and sorts action lists, and reproducing a run from
//     a seed depends on this order being identical across builds.
//
// Errors:
//
//   - ErrEmptyMap: the map body has no walkable cell.
//   - ErrNonRectangular: a map row is shorter than the declared width.
//   - ErrMalformedHeader: "height"/"width" header lines missing, unparsable,
//     or zero.
//   - ErrVertexNotFound: an (x,y) or index lookup missed.
package graph
