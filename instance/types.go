package instance

import (
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/pibt"
)

// Instance is a graph plus a per-agent start and goal, ready to hand to
// the solver.
type Instance struct {
	Graph  *graph.Graph
	Starts pibt.Config
	Goals  pibt.Config
	N      int
}
