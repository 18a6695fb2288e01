package pibt

import (
	"sort"

	"github.com/mapf-lacam/lacam/graph"
)

// candidate is one action under consideration for a single agent: the
// target vertex plus its sort triple (distance, hindrance, tie-break).
type candidate struct {
	v *graph.Vertex
	d int
	h int
	e float64
}

func less(a, b candidate) bool {
	if a.d != b.d {
		return a.d < b.d
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.e < b.e
}

// Step fills every nil slot of qTo so the result is a collision-free
// successor of qFrom, honoring any slots qTo already has set (high-level
// constraints) and resolving the rest in order. It returns false, with
// qTo left partially filled, if no collision-free completion exists.
func (p *Planner) Step(qFrom, qTo Config, order []int) bool {
	n := len(qFrom)
	for i := 0; i < len(p.occupiedNow); i++ {
		p.occupiedNow[i] = noAgent
		p.occupiedNext[i] = noAgent
	}
	for i, v := range qFrom {
		p.occupiedNow[v.ID] = i
	}

	for i := 0; i < n; i++ {
		u := qTo[i]
		if u == nil {
			continue
		}
		if p.occupiedNext[u.ID] != noAgent {
			return false
		}
		if k := p.occupiedNow[u.ID]; k != noAgent && k != i && qTo[k] != nil && qTo[k].ID == qFrom[i].ID {
			return false // mutual swap already decided by the constraint tree
		}
		p.occupiedNext[u.ID] = i
	}

	for _, i := range order {
		if qTo[i] != nil {
			continue
		}
		if !p.step(i, qFrom, qTo) {
			return false
		}
	}
	return true
}

// step resolves agent i's next vertex, recursing into whichever
// currently-undecided agent occupies the candidate it reserves.
func (p *Planner) step(i int, qFrom, qTo Config) bool {
	from := qFrom[i]
	actions := from.Actions

	cands := make([]candidate, len(actions))
	for idx, u := range actions {
		h := 0
		if p.hindrance {
			h = p.hindranceOf(i, u, qFrom)
		}
		cands[idx] = candidate{v: u, d: p.dt.Get(i, u), h: h, e: p.rng.Float64()}
	}
	sort.Slice(cands, func(a, b int) bool { return less(cands[a], cands[b]) })

	top := cands[0].v
	swapPartner := noAgent
	var swapTarget *graph.Vertex
	if p.swap {
		if j, ok := p.isSwapRequiredAndPossible(i, top, qFrom); ok {
			swapPartner = j
			for idx := range cands {
				cands[idx].d = -p.dt.Get(i, cands[idx].v)
				cands[idx].h = 0
			}
			sort.Slice(cands, func(a, b int) bool { return less(cands[a], cands[b]) })
			swapTarget = cands[0].v
		}
	}

	for _, c := range cands {
		u := c.v
		if p.occupiedNext[u.ID] != noAgent {
			continue
		}
		if k := p.occupiedNow[u.ID]; k != noAgent && k != i && qTo[k] != nil && qTo[k].ID == from.ID {
			continue
		}

		p.occupiedNext[u.ID] = i
		qTo[i] = u

		if k := p.occupiedNow[u.ID]; k != noAgent && u.ID != from.ID && qTo[k] == nil {
			if !p.step(k, qFrom, qTo) {
				p.occupiedNext[u.ID] = noAgent
				qTo[i] = nil
				continue
			}
		}

		if swapPartner != noAgent && u.ID == swapTarget.ID {
			if qTo[swapPartner] == nil && p.occupiedNext[from.ID] == noAgent {
				p.occupiedNext[from.ID] = swapPartner
				qTo[swapPartner] = from
			}
		}
		return true
	}

	qTo[i] = from
	p.occupiedNext[from.ID] = i
	return false
}

// hindranceOf counts agents adjacent to i's current vertex that candidate
// u would block: agents not currently on u whose distance to their own
// goal would strictly improve by taking u instead.
func (p *Planner) hindranceOf(i int, u *graph.Vertex, qFrom Config) int {
	from := qFrom[i]
	count := 0
	for _, nb := range from.Neighbors {
		j := p.occupiedNow[nb.ID]
		if j == noAgent || j == i {
			continue
		}
		if qFrom[j].ID == u.ID {
			continue
		}
		if p.dt.Get(j, u) < p.dt.Get(j, qFrom[j]) {
			count++
		}
	}
	return count
}

// isSettledGoal reports whether v is some agent's goal and that agent is
// currently sitting on it (so v is a dead end no longer worth routing
// through).
func (p *Planner) isSettledGoal(v *graph.Vertex) bool {
	for j, goal := range p.goals {
		if goal.ID == v.ID && p.occupiedNow[v.ID] == j {
			return true
		}
	}
	return false
}

// escapeNeighbor returns v's unique neighbor other than exclude and any
// settled dead-end goals, or nil if there isn't exactly one.
func (p *Planner) escapeNeighbor(v, exclude *graph.Vertex) *graph.Vertex {
	var found *graph.Vertex
	count := 0
	for _, nb := range v.Neighbors {
		if nb.ID == exclude.ID {
			continue
		}
		if len(nb.Neighbors) == 1 && p.isSettledGoal(nb) {
			continue
		}
		found = nb
		count++
	}
	if count != 1 {
		return nil
	}
	return found
}

// isSwapRequired walks from the puller's vertex away from the pusher's,
// pulling the chain along as long as the pusher would be closer to its own
// goal at the puller's vertex than at its own, and reports whether the walk
// ends with the puller strictly preferring the pusher's vertex while the
// pusher is at its goal or strictly prefers the puller's vertex.
func (p *Planner) isSwapRequired(pusher, puller int, qFrom Config) bool {
	vPusher := qFrom[pusher]
	vPuller := qFrom[puller]
	for p.dt.Get(pusher, vPuller) < p.dt.Get(pusher, vPusher) {
		next := p.escapeNeighbor(vPuller, vPusher)
		if next == nil {
			return false
		}
		vPusher, vPuller = vPuller, next
	}
	return p.dt.Get(puller, vPusher) < p.dt.Get(puller, vPuller) &&
		(p.dt.Get(pusher, vPusher) == 0 || p.dt.Get(pusher, vPuller) < p.dt.Get(pusher, vPusher))
}

// isSwapPossible walks from the pusher's own origin, stepping away from
// the puller, and confirms the walk reaches a branching vertex (at least
// two viable continuations) before looping back around to the puller's
// origin, which would make the swap infeasible.
func (p *Planner) isSwapPossible(pusher, puller int, qFrom Config) bool {
	origin := qFrom[puller]
	prev := qFrom[puller]
	cur := qFrom[pusher]
	for {
		var branch []*graph.Vertex
		for _, nb := range cur.Neighbors {
			if nb.ID == prev.ID {
				continue
			}
			if len(nb.Neighbors) == 1 && p.isSettledGoal(nb) {
				continue
			}
			branch = append(branch, nb)
		}
		if len(branch) >= 2 {
			return true
		}
		if len(branch) == 0 {
			return false
		}
		next := branch[0]
		if next.ID == origin.ID {
			return false
		}
		prev, cur = cur, next
	}
}

// isSwapRequiredAndPossible decides whether agent pusher should attempt a
// swap instead of a plain greedy move toward top, the candidate vertex
// that sorted first by (distance, hindrance, tie-break). It first checks
// a direct swap with top's current occupant, then, as a "clear operation"
// second branch, checks whether a neighbor of pusher's own origin is
// itself blocked on an unsatisfied agent that requires a swap with
// pusher one step removed.
func (p *Planner) isSwapRequiredAndPossible(pusher int, top *graph.Vertex, qFrom Config) (int, bool) {
	puller := p.occupiedNow[top.ID]
	if puller != noAgent && puller != pusher &&
		p.isSwapRequired(pusher, puller, qFrom) && p.isSwapPossible(pusher, puller, qFrom) {
		return puller, true
	}

	from := qFrom[pusher]
	for _, nb := range from.Neighbors {
		k := p.occupiedNow[nb.ID]
		if k == noAgent || k == pusher || k == puller {
			continue
		}
		if p.dt.Get(k, qFrom[k]) == 0 {
			continue // k already satisfied at its own goal
		}
		if p.isSwapRequired(pusher, k, qFrom) && p.isSwapPossible(pusher, k, qFrom) {
			return k, true
		}
	}
	return noAgent, false
}
