package disttable

import "errors"

// Sentinel errors for distance-table construction.
var (
	// ErrAgentCountMismatch indicates len(goals) disagreed with an explicit N.
	ErrAgentCountMismatch = errors.New("disttable: goal count does not match agent count")
	// ErrNilGraph indicates a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("disttable: graph must not be nil")
)
