package graph

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyMap indicates the map body has no walkable cell.
	ErrEmptyMap = errors.New("graph: map has no walkable cell")
	// ErrNonRectangular indicates a map row shorter than the declared width.
	ErrNonRectangular = errors.New("graph: map row is shorter than the declared width")
	// ErrMalformedHeader indicates the "height"/"width" header is missing,
	// could not be parsed, or declares a zero dimension.
	ErrMalformedHeader = errors.New("graph: malformed map header")
	// ErrVertexNotFound indicates a requested (x,y) or grid index has no vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)
