package lacam

import (
	"encoding/binary"
	"math/rand"
	"sort"
	"time"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/pibt"
)

// Options are the tuning constants the driver exposes, set once before a
// Searcher runs.
type Options struct {
	Anytime           bool
	RandomInsertProb1 float64 // probability of restarting from the root on a transposition hit
	RandomInsertProb2 float64 // probability of a post-solution random kick
}

// DefaultOptions matches the reference implementation's defaults.
func DefaultOptions() Options {
	return Options{RandomInsertProb1: 0.001, RandomInsertProb2: 0.001}
}

// Result is everything a Run invocation produces, including the
// statistics the driver and telemetry layers need beyond the bare plan.
type Result struct {
	Plan          Plan
	Solved        bool
	LoopCount     int
	NodesExplored int
	Improvements  int
}

// Plan is a sequence of joint configurations, starts to goals.
type Plan []pibt.Config

// Searcher owns one run's OPEN deque, EXPLORED transposition table, and
// node arena; it is single-use — call Run once and discard it.
type Searcher struct {
	g       *graph.Graph
	dt      *disttable.Table
	planner *pibt.Planner
	starts  pibt.Config
	goals   pibt.Config
	n       int
	rng     *rand.Rand
	opts    Options

	open     *deque
	explored map[string]*HNode
	arena    []*HNode
	root     *HNode
	best     *HNode
}

// New builds a Searcher. planner must already be configured with the
// same goals.
func New(g *graph.Graph, dt *disttable.Table, planner *pibt.Planner, starts, goals pibt.Config, rng *rand.Rand, opts Options) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dt == nil {
		return nil, ErrNilDistTable
	}
	if planner == nil {
		return nil, ErrNilPlanner
	}
	if len(starts) == 0 || len(starts) != len(goals) {
		return nil, ErrAgentCountMismatch
	}
	return &Searcher{
		g:        g,
		dt:       dt,
		planner:  planner,
		starts:   starts,
		goals:    goals,
		n:        len(starts),
		rng:      rng,
		opts:     opts,
		open:     newDeque(),
		explored: make(map[string]*HNode),
	}, nil
}

// configKey encodes a configuration's vertex ids into a fixed-width byte
// string usable as a map key; since ids are the sole equality-relevant
// field of a Vertex, key equality is exactly pointwise id equality, so
// two distinct Config values with the same key are one transposition.
func configKey(q pibt.Config) string {
	buf := make([]byte, 4*len(q))
	for i, v := range q {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v.ID))
	}
	return string(buf)
}

func (s *Searcher) insert(h *HNode) {
	s.explored[configKey(h.Q)] = h
	s.arena = append(s.arena, h)
}

func (s *Searcher) newNode(parent *HNode, q pibt.Config) *HNode {
	h := newHNode(parent, q, s.dt, s.n)
	if parent == nil {
		h.G = 0
	} else {
		h.G = parent.G + edgeCost(parent.Q, q, s.goals)
	}
	h.H = heuristicOf(s.dt, q)
	h.F = h.G + h.H
	return h
}

// randomOpenNode samples uniformly from whatever is currently in OPEN,
// matching the reference implementation's post-solution kick (it draws
// from OPEN, not from every node explored so far).
func (s *Searcher) randomOpenNode() *HNode {
	return s.open.At(s.rng.Intn(s.open.Len()))
}

func shuffleActions(actions []*graph.Vertex, rng *rand.Rand) {
	rng.Shuffle(len(actions), func(i, j int) { actions[i], actions[j] = actions[j], actions[i] })
}

// Run executes the main loop until OPEN empties or deadline passes,
// returning the best plan found (empty if none).
func (s *Searcher) Run(deadline time.Time) Result {
	s.root = s.newNode(nil, s.starts)
	s.insert(s.root)
	s.open.PushFront(s.root)

	var loopCount, improvements int
	for !s.open.Empty() {
		if time.Now().After(deadline) {
			break
		}
		loopCount++

		if s.best != nil {
			r := s.rng.Float64()
			switch {
			case r < s.opts.RandomInsertProb2/2:
				s.open.PushFront(s.root)
			case r < s.opts.RandomInsertProb2:
				s.open.PushFront(s.randomOpenNode())
			}
		}

		h := s.open.Front()

		if s.best != nil && h.G >= s.best.G {
			s.open.PopFront()
			s.open.PushFront(s.root)
			continue
		}

		if h.Q.Equal(s.goals) && (s.best == nil || h.G < s.best.G) {
			if s.best != nil {
				improvements++
			}
			s.best = h
			if !s.opts.Anytime {
				break
			}
			continue
		}

		if len(h.Queue) == 0 {
			s.open.PopFront()
			continue
		}

		l := h.Queue[0]
		h.Queue = h.Queue[1:]

		if l.Depth < s.n {
			agent := h.Order[l.Depth]
			from := h.Q[agent]
			shuffleActions(from.Actions, s.rng)
			for _, u := range from.Actions {
				h.Queue = append(h.Queue, l.child(agent, u))
			}
		}

		qTo := l.buildConfig(s.n)
		if !s.planner.Step(h.Q, qTo, h.Order) {
			continue
		}

		key := configKey(qTo)
		if existing, ok := s.explored[key]; ok {
			bestG := -1
			if s.best != nil {
				bestG = s.best.G
			}
			s.rewrite(h, existing)
			if s.best != nil && s.best.G < bestG {
				improvements++
			}
			if s.rng.Float64() >= s.opts.RandomInsertProb1 {
				s.open.PushFront(existing)
			} else {
				s.open.PushFront(s.root)
			}
		} else {
			child := s.newNode(h, qTo)
			s.insert(child)
			s.open.PushFront(child)
		}
	}

	result := Result{LoopCount: loopCount, NodesExplored: len(s.arena), Improvements: improvements}
	if s.best == nil {
		return result
	}
	result.Solved = true
	result.Plan = s.backtrack(s.best)
	return result
}

func (s *Searcher) backtrack(goal *HNode) Plan {
	var rev Plan
	for n := goal; n != nil; n = n.Parent {
		rev = append(rev, n.Q)
	}
	plan := make(Plan, len(rev))
	for i, q := range rev {
		plan[len(rev)-1-i] = q
	}
	return plan
}

// rewrite is the anytime cost-rewiring relaxation: a Dijkstra-style FIFO
// propagation from hFrom through the neighbors graph, lowering any
// neighbor's cost (and reparenting it) whenever routing through hFrom is
// cheaper than what it already has. A plain FIFO suffices because every
// edge cost is a non-negative integer bounded by the agent count.
func (s *Searcher) rewrite(hFrom, hTo *HNode) {
	if !s.opts.Anytime {
		return
	}
	hFrom.Neighbors[hTo] = struct{}{}

	queue := []*HNode{hFrom}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		nbs := make([]*HNode, 0, len(n.Neighbors))
		for nb := range n.Neighbors {
			nbs = append(nbs, nb)
		}
		sort.Slice(nbs, func(a, b int) bool { return configKey(nbs[a].Q) < configKey(nbs[b].Q) })
		for _, nb := range nbs {
			g2 := n.G + edgeCost(n.Q, nb.Q, s.goals)
			if g2 >= nb.G {
				continue
			}
			nb.G = g2
			nb.F = g2 + nb.H
			nb.Parent = n
			nb.Depth = n.Depth + 1
			queue = append(queue, nb)
			if s.best != nil && nb.F < s.best.F {
				s.open.PushFront(nb)
			}
		}
	}
}
