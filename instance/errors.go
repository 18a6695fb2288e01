package instance

import "errors"

// Sentinel errors for instance loading and validation.
var (
	// ErrInvalidAgentCount indicates N was zero or negative.
	ErrInvalidAgentCount = errors.New("instance: agent count must be positive")
	// ErrScenarioTooShort indicates the scenario file had fewer than N records.
	ErrScenarioTooShort = errors.New("instance: scenario file has fewer records than requested agents")
	// ErrMalformedScenarioRecord indicates a record could not be parsed as
	// four integers.
	ErrMalformedScenarioRecord = errors.New("instance: malformed scenario record")
	// ErrCellOutOfBounds indicates a scenario coordinate fell outside the map.
	ErrCellOutOfBounds = errors.New("instance: scenario coordinate out of bounds")
	// ErrCellBlocked indicates a scenario coordinate named a blocked cell.
	ErrCellBlocked = errors.New("instance: scenario coordinate names a blocked cell")
	// ErrDisconnectedAgent indicates an agent's start and goal are not in
	// the same connected component of the graph.
	ErrDisconnectedAgent = errors.New("instance: agent start and goal are not connected")
	// ErrNoFreeCells indicates a random instance was requested for more
	// agents than the graph has walkable vertices.
	ErrNoFreeCells = errors.New("instance: graph has fewer walkable vertices than agents")
)
