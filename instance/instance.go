package instance

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/pibt"
)

// Load reads a map and, if scenR is non-nil, a scenario file, producing an
// Instance for n agents. When scenR is nil, starts and goals are chosen
// uniformly at random from the map's walkable cells (NewRandom).
//
// Load does not reject an instance whose start/goal pairs sit in
// disconnected components: that is solver-level infeasibility, not a
// malformed-input error (spec.md §7 classifies it as "unsolvable", an
// empty plan with exit 0, not a load failure). Callers that want to warn
// up front can call Validate themselves.
func Load(mapR io.Reader, scenR io.Reader, n int, rng *rand.Rand) (*Instance, error) {
	if n <= 0 {
		return nil, ErrInvalidAgentCount
	}
	g, err := graph.Parse(mapR)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	if scenR == nil {
		return NewRandom(g, n, rng)
	}
	starts, goals, err := parseScenario(scenR, g, n)
	if err != nil {
		return nil, err
	}
	return &Instance{Graph: g, Starts: starts, Goals: goals, N: n}, nil
}

// NewRandom builds an instance by drawing n distinct random start vertices
// and n distinct random goal vertices from g, reproducing the reference
// implementation's no-scenario constructor behavior.
func NewRandom(g *graph.Graph, n int, rng *rand.Rand) (*Instance, error) {
	if n <= 0 {
		return nil, ErrInvalidAgentCount
	}
	if len(g.V) < n {
		return nil, ErrNoFreeCells
	}
	starts := make(pibt.Config, n)
	goals := make(pibt.Config, n)
	copy(starts, sampleDistinct(g.V, n, rng))
	copy(goals, sampleDistinct(g.V, n, rng))
	inst := &Instance{Graph: g, Starts: starts, Goals: goals, N: n}
	return inst, nil
}

// sampleDistinct draws n distinct vertices from vs via a partial
// Fisher-Yates shuffle, leaving vs itself untouched.
func sampleDistinct(vs []*graph.Vertex, n int, rng *rand.Rand) []*graph.Vertex {
	pool := make([]*graph.Vertex, len(vs))
	copy(pool, vs)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// parseScenario reads whitespace-separated records of the form
// "start_x start_y goal_x goal_y", one per line, skipping any line that
// doesn't parse as four integers (tolerating a leading "version" header,
// as typical scenario files carry). The first n valid records are taken.
func parseScenario(r io.Reader, g *graph.Graph, n int) (pibt.Config, pibt.Config, error) {
	starts := make(pibt.Config, 0, n)
	goals := make(pibt.Config, 0, n)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(starts) < n {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		vals := fields[len(fields)-4:]
		coords := make([]int, 4)
		ok := true
		for i, s := range vals {
			v, err := strconv.Atoi(s)
			if err != nil {
				ok = false
				break
			}
			coords[i] = v
		}
		if !ok {
			continue
		}

		sv, err := vertexAt(g, coords[0], coords[1])
		if err != nil {
			return nil, nil, err
		}
		gv, err := vertexAt(g, coords[2], coords[3])
		if err != nil {
			return nil, nil, err
		}
		starts = append(starts, sv)
		goals = append(goals, gv)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("instance: %w", err)
	}
	if len(starts) < n {
		return nil, nil, ErrScenarioTooShort
	}
	return starts, goals, nil
}

func vertexAt(g *graph.Graph, x, y int) (*graph.Vertex, error) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil, ErrCellOutOfBounds
	}
	v := g.At(x, y)
	if v == nil {
		return nil, ErrCellBlocked
	}
	return v, nil
}

// Validate checks that every agent's start and goal lie in the same
// connected component. It is advisory, not a load gate: an instance that
// fails Validate is still handed to the solver, which exhausts OPEN and
// reports an empty, "unsolvable" plan rather than treating the geometry
// as invalid input.
func (inst *Instance) Validate() error {
	for i := 0; i < inst.N; i++ {
		if !graph.SameComponent(inst.Starts[i], inst.Goals[i]) {
			return fmt.Errorf("%w: agent %d", ErrDisconnectedAgent, i)
		}
	}
	return nil
}
