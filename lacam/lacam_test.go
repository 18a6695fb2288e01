package lacam_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/lacam"
	"github.com/mapf-lacam/lacam/pibt"
	"github.com/stretchr/testify/require"
)

func openGrid(t *testing.T, w, h int) *graph.Graph {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("height ")
	sb.WriteString(itoa(h))
	sb.WriteString("\nwidth ")
	sb.WriteString(itoa(w))
	sb.WriteString("\nmap\n")
	for y := 0; y < h; y++ {
		sb.WriteString(strings.Repeat(".", w))
		sb.WriteString("\n")
	}
	g, err := graph.Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return g
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

// vertexByID finds the vertex with a given dense id by linear scan; the
// instances below are small enough that this is simpler than threading an
// id-indexed lookup through the test helpers.
func vertexByID(g *graph.Graph, id int) *graph.Vertex {
	for _, v := range g.V {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func assertFeasible(t *testing.T, plan lacam.Plan, starts, goals pibt.Config) {
	t.Helper()
	require.NotEmpty(t, plan)
	require.True(t, plan[0].Equal(starts), "plan must start at the instance starts")
	require.True(t, plan[len(plan)-1].Equal(goals), "plan must end at the instance goals")

	for t_ := 0; t_+1 < len(plan); t_++ {
		cur, next := plan[t_], plan[t_+1]
		seen := make(map[int]int)
		for i, v := range next {
			require.Contains(t, actionIDs(cur[i]), v.ID, "agent %d moved off its action set at t=%d", i, t_)
			if j, dup := seen[v.ID]; dup {
				t.Fatalf("vertex collision at t=%d between agents %d and %d", t_+1, j, i)
			}
			seen[v.ID] = i
		}
		for i := range cur {
			for j := i + 1; j < len(cur); j++ {
				if cur[i].ID == next[j].ID && cur[j].ID == next[i].ID {
					t.Fatalf("swap collision at t=%d between agents %d and %d", t_+1, i, j)
				}
			}
		}
	}
}

func actionIDs(v *graph.Vertex) []int {
	ids := make([]int, len(v.Actions))
	for i, a := range v.Actions {
		ids[i] = a.ID
	}
	return ids
}

func sumOfLoss(plan lacam.Plan, goals pibt.Config) int {
	total := 0
	for t := 0; t+1 < len(plan); t++ {
		for i := range plan[t] {
			if plan[t][i].ID != goals[i].ID || plan[t+1][i].ID != goals[i].ID {
				total++
			}
		}
	}
	return total
}

func buildSearcher(t *testing.T, g *graph.Graph, starts, goals pibt.Config, opts lacam.Options) *lacam.Searcher {
	t.Helper()
	dt, err := disttable.Build(g, []*graph.Vertex(goals), true)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(0))
	planner, err := pibt.New(g, dt, goals, rng, pibt.Options{Swap: true, Hindrance: true})
	require.NoError(t, err)
	s, err := lacam.New(g, dt, planner, starts, goals, rng, opts)
	require.NoError(t, err)
	return s
}

func TestSolve_EightByEightTwoAgents(t *testing.T) {
	g := openGrid(t, 8, 8)
	starts := pibt.Config{vertexByID(g, 0), vertexByID(g, 8)}
	goals := pibt.Config{vertexByID(g, 9), vertexByID(g, 1)}

	s := buildSearcher(t, g, starts, goals, lacam.DefaultOptions())
	result := s.Run(time.Now().Add(2 * time.Second))

	require.True(t, result.Solved)
	assertFeasible(t, result.Plan, starts, goals)
	require.LessOrEqual(t, sumOfLoss(result.Plan, goals), 4)
}

func TestSolve_EightByEightThreeAgents(t *testing.T) {
	g := openGrid(t, 8, 8)
	starts := pibt.Config{vertexByID(g, 0), vertexByID(g, 5), vertexByID(g, 10)}
	goals := pibt.Config{vertexByID(g, 2), vertexByID(g, 4), vertexByID(g, 11)}

	s := buildSearcher(t, g, starts, goals, lacam.DefaultOptions())
	result := s.Run(time.Now().Add(2 * time.Second))

	require.True(t, result.Solved)
	assertFeasible(t, result.Plan, starts, goals)
}

func TestSolve_ImpossibleTwoCellSwap(t *testing.T) {
	g := openGrid(t, 2, 1)
	starts := pibt.Config{vertexByID(g, 0), vertexByID(g, 1)}
	goals := pibt.Config{vertexByID(g, 1), vertexByID(g, 0)}

	s := buildSearcher(t, g, starts, goals, lacam.DefaultOptions())
	result := s.Run(time.Now().Add(200 * time.Millisecond))

	require.False(t, result.Solved)
	require.Empty(t, result.Plan)
}

func TestSolve_AnytimeFeasiblePlan(t *testing.T) {
	g := openGrid(t, 8, 8)
	starts := pibt.Config{vertexByID(g, 0), vertexByID(g, 8), vertexByID(g, 16)}
	goals := pibt.Config{vertexByID(g, 23), vertexByID(g, 15), vertexByID(g, 7)}

	opts := lacam.DefaultOptions()
	opts.Anytime = true
	s := buildSearcher(t, g, starts, goals, opts)
	result := s.Run(time.Now().Add(500 * time.Millisecond))

	require.True(t, result.Solved)
	assertFeasible(t, result.Plan, starts, goals)
}
