package feasibility

import "github.com/mapf-lacam/lacam/pibt"

// Plan is a sequence of joint configurations from start to goal.
type Plan []pibt.Config

// Rule names the violated check; matches the three checks the reference
// implementation's plan verifier performs.
type Rule string

const (
	RuleStartMismatch Rule = "start_mismatch"
	RuleGoalMismatch  Rule = "goal_mismatch"
	RuleNonAdjacent   Rule = "non_adjacent_move"
	RuleVertexConflict Rule = "vertex_conflict"
	RuleSwapConflict  Rule = "swap_conflict"
)

// Violation reports the first rule a plan breaks, and where.
type Violation struct {
	Rule     Rule
	Timestep int
	Agents   []int
}
