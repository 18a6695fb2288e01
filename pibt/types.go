package pibt

import (
	"math/rand"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
)

// noAgent marks a vertex as currently or next unoccupied.
const noAgent = -1

// Config is a joint configuration: Config[i] is agent i's vertex.
type Config []*graph.Vertex

// Equal reports pointwise id equality, the Config equivalence spec.md
// mandates (object identity is irrelevant; only vertex id matters).
func (c Config) Equal(other Config) bool {
	if len(c) != len(other) {
		return false
	}
	for i, v := range c {
		if v == nil || other[i] == nil || v.ID != other[i].ID {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	copy(out, c)
	return out
}

// Planner resolves one high-level timestep into a collision-free joint
// configuration. A Planner is stateful scratch reused across calls to
// Step; it is not safe for concurrent use.
type Planner struct {
	g          *graph.Graph
	dt         *disttable.Table
	goals      Config
	rng        *rand.Rand
	swap       bool
	hindrance  bool
	occupiedNow  []int
	occupiedNext []int
}

// Options configures swap and hindrance refinements, mirroring the
// tuning-constant toggles the driver exposes. The zero value disables
// both.
type Options struct {
	Swap      bool
	Hindrance bool
}

// New builds a Planner over g and dt for the given per-agent goals, using
// rng as the single source of tie-break randomness.
func New(g *graph.Graph, dt *disttable.Table, goals Config, rng *rand.Rand, opts Options) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dt == nil {
		return nil, ErrNilDistTable
	}
	if len(goals) == 0 {
		return nil, ErrConfigLength
	}
	n := g.Size()
	p := &Planner{
		g:            g,
		dt:           dt,
		goals:        goals,
		rng:          rng,
		swap:         opts.Swap,
		hindrance:    opts.Hindrance,
		occupiedNow:  make([]int, n),
		occupiedNext: make([]int, n),
	}
	return p, nil
}
