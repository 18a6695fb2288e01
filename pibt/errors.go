package pibt

import "errors"

// Sentinel errors for planner construction and use.
var (
	// ErrNilGraph indicates a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("pibt: graph must not be nil")
	// ErrNilDistTable indicates a nil *disttable.Table was supplied.
	ErrNilDistTable = errors.New("pibt: distance table must not be nil")
	// ErrConfigLength indicates New was given an empty goal configuration.
	ErrConfigLength = errors.New("pibt: goal configuration must not be empty")
)
