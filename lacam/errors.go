package lacam

import "errors"

// Sentinel errors for searcher construction.
var (
	// ErrNilGraph indicates a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("lacam: graph must not be nil")
	// ErrNilDistTable indicates a nil *disttable.Table was supplied.
	ErrNilDistTable = errors.New("lacam: distance table must not be nil")
	// ErrNilPlanner indicates a nil *pibt.Planner was supplied.
	ErrNilPlanner = errors.New("lacam: planner must not be nil")
	// ErrAgentCountMismatch indicates starts/goals disagreed in length.
	ErrAgentCountMismatch = errors.New("lacam: starts and goals must have equal, nonzero length")
)
