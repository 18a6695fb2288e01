package feasibility

import (
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/pibt"
)

// Check verifies plan against starts and goals, returning (true, nil) if
// every rule holds, or (false, violation) describing the first rule
// broken and where — matching is_feasible_solution's three checks: start
// mismatch, goal mismatch, and per-timestep connectivity/vertex/swap
// conflicts.
func Check(plan Plan, starts, goals pibt.Config) (bool, *Violation) {
	if len(plan) == 0 {
		return false, &Violation{Rule: RuleGoalMismatch, Timestep: 0}
	}
	if !plan[0].Equal(starts) {
		return false, &Violation{Rule: RuleStartMismatch, Timestep: 0}
	}
	last := plan[len(plan)-1]
	if !last.Equal(goals) {
		return false, &Violation{Rule: RuleGoalMismatch, Timestep: len(plan) - 1}
	}

	for t := 0; t+1 < len(plan); t++ {
		cur, next := plan[t], plan[t+1]

		occupied := make(map[int]int, len(next))
		for i, v := range next {
			if !isAction(cur[i], v) {
				return false, &Violation{Rule: RuleNonAdjacent, Timestep: t + 1, Agents: []int{i}}
			}
			if j, dup := occupied[v.ID]; dup {
				return false, &Violation{Rule: RuleVertexConflict, Timestep: t + 1, Agents: []int{j, i}}
			}
			occupied[v.ID] = i
		}

		for i := range cur {
			for j := i + 1; j < len(cur); j++ {
				if cur[i].ID == next[j].ID && cur[j].ID == next[i].ID {
					return false, &Violation{Rule: RuleSwapConflict, Timestep: t + 1, Agents: []int{i, j}}
				}
			}
		}
	}
	return true, nil
}

// isAction reports whether to is in from's action set (a neighbor of from,
// or from itself for a wait).
func isAction(from, to *graph.Vertex) bool {
	for _, a := range from.Actions {
		if a.ID == to.ID {
			return true
		}
	}
	return false
}
