package solver

import (
	"math/rand"
	"time"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/instance"
	"github.com/mapf-lacam/lacam/internal/telemetry"
	"github.com/mapf-lacam/lacam/lacam"
	"github.com/mapf-lacam/lacam/pibt"
)

// Solve builds the distance oracle, low-level planner, and high-level
// searcher for inst and runs the search to completion or deadline. tel
// may be nil when metrics aren't wanted.
func Solve(inst *instance.Instance, opts Options, tel *telemetry.Telemetry) (lacam.Result, error) {
	if inst == nil {
		return lacam.Result{}, ErrNilInstance
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	dt, err := disttable.Build(inst.Graph, []*graph.Vertex(inst.Goals), !opts.LazyDistTable)
	if err != nil {
		return lacam.Result{}, err
	}

	planner, err := pibt.New(inst.Graph, dt, inst.Goals, rng, pibt.Options{
		Swap:      opts.Swap,
		Hindrance: opts.Hindrance,
	})
	if err != nil {
		return lacam.Result{}, err
	}

	searcher, err := lacam.New(inst.Graph, dt, planner, inst.Starts, inst.Goals, rng, lacam.Options{
		Anytime:           opts.Anytime,
		RandomInsertProb1: opts.RandomInsertProb1,
		RandomInsertProb2: opts.RandomInsertProb2,
	})
	if err != nil {
		return lacam.Result{}, err
	}

	started := time.Now()
	result := searcher.Run(started.Add(opts.Deadline))
	if tel != nil {
		tel.ObserveSolve(time.Since(started), result.LoopCount, result.NodesExplored)
		for i := 0; i < result.Improvements; i++ {
			tel.RecordImprovement()
		}
	}
	return result, nil
}
