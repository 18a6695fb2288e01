package lacam

import (
	"math"
	"sort"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/pibt"
)

// HNode is a node of the high-level search: one joint configuration plus
// everything derived from its position in the search. Neighbors forms a
// directed graph that can contain cycles (a transposition can link back to
// an earlier node), so it is tracked separately from Parent.
type HNode struct {
	Q         pibt.Config
	Parent    *HNode
	Neighbors map[*HNode]struct{}
	G, H, F   int
	Depth     int
	Priority  []float64
	Order     []int
	Queue     []*lnode
}

// lnode is a partial low-level constraint: agents in Who must be placed
// at the corresponding vertex in Where. The root lnode has depth 0 and no
// entries.
type lnode struct {
	Who   []int
	Where []*graph.Vertex
	Depth int
}

func (l *lnode) child(agent int, v *graph.Vertex) *lnode {
	who := make([]int, len(l.Who)+1)
	where := make([]*graph.Vertex, len(l.Where)+1)
	copy(who, l.Who)
	copy(where, l.Where)
	who[len(l.Who)] = agent
	where[len(l.Where)] = v
	return &lnode{Who: who, Where: where, Depth: l.Depth + 1}
}

// buildConfig materializes a successor configuration from a constraint,
// leaving agents the constraint doesn't mention as nil slots for the
// low-level planner to fill.
func (l *lnode) buildConfig(n int) pibt.Config {
	q := make(pibt.Config, n)
	for idx, agent := range l.Who {
		q[agent] = l.Where[idx]
	}
	return q
}

// newHNode derives priorities and the agent order from parent (nil for
// the root), per the starve-and-reset priority rule: an agent not yet at
// its goal accrues priority every step; one that reaches its goal drops
// the integer part of its priority, keeping only the fractional remainder
// so it doesn't immediately dominate again next time it's displaced.
func newHNode(parent *HNode, q pibt.Config, dt *disttable.Table, n int) *HNode {
	h := &HNode{
		Q:         q,
		Parent:    parent,
		Neighbors: make(map[*HNode]struct{}),
		Priority:  make([]float64, n),
	}
	if parent == nil {
		h.Depth = 0
		for i := 0; i < n; i++ {
			h.Priority[i] = float64(dt.Get(i, q[i])) / 10000.0
		}
	} else {
		h.Depth = parent.Depth + 1
		for i := 0; i < n; i++ {
			if dt.Get(i, q[i]) != 0 {
				h.Priority[i] = parent.Priority[i] + 1
			} else {
				h.Priority[i] = parent.Priority[i] - math.Floor(parent.Priority[i])
			}
		}
		parent.Neighbors[h] = struct{}{}
	}
	h.Order = stableOrder(h.Priority)
	h.Queue = []*lnode{{}}
	return h
}

// stableOrder returns 0..len(pr)-1 sorted descending by priority, stable
// on ties so equal-priority agents keep their original relative order.
func stableOrder(pr []float64) []int {
	order := make([]int, len(pr))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return pr[order[a]] > pr[order[b]] })
	return order
}

// edgeCost is the sum-of-loss step cost between two configurations: an
// agent contributes 1 unless it is at its goal on both sides of the step.
func edgeCost(q1, q2, goals pibt.Config) int {
	cost := 0
	for i := range q1 {
		if q1[i].ID != goals[i].ID || q2[i].ID != goals[i].ID {
			cost++
		}
	}
	return cost
}

// heuristicOf is h(H): the sum over agents of their remaining distance to
// goal, an admissible lower bound on remaining sum-of-loss.
func heuristicOf(dt *disttable.Table, q pibt.Config) int {
	sum := 0
	for i, v := range q {
		sum += dt.Get(i, v)
	}
	return sum
}
