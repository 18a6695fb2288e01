package disttable_test

import (
	"strings"
	"testing"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
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

func TestBuild_NilGraph(t *testing.T) {
	_, err := disttable.Build(nil, nil, true)
	require.ErrorIs(t, err, disttable.ErrNilGraph)
}

func TestEagerAndLazyAgree(t *testing.T) {
	g := openGrid(t, 5, 5)
	goals := []*graph.Vertex{g.At(4, 4), g.At(0, 0)}

	eager, err := disttable.Build(g, goals, true)
	require.NoError(t, err)
	lazy, err := disttable.Build(g, goals, false)
	require.NoError(t, err)

	for _, v := range g.V {
		for i := range goals {
			require.Equal(t, eager.Get(i, v), lazy.Get(i, v), "agent %d vertex %d", i, v.ID)
		}
	}
}

func TestGet_Unreachable(t *testing.T) {
	text := "height 1\nwidth 3\nmap\n.T.\n"
	g, err := graph.Parse(strings.NewReader(text))
	require.NoError(t, err)

	goal := g.At(0, 0)
	start := g.At(2, 0)
	dt, err := disttable.Build(g, []*graph.Vertex{goal}, false)
	require.NoError(t, err)
	require.Equal(t, dt.Sentinel(), dt.Get(0, start))
}

func TestGet_ZeroAtGoal(t *testing.T) {
	g := openGrid(t, 3, 3)
	goal := g.At(1, 1)
	dt, err := disttable.Build(g, []*graph.Vertex{goal}, true)
	require.NoError(t, err)
	require.Equal(t, 0, dt.Get(0, goal))
	require.Equal(t, 2, dt.Get(0, g.At(0, 0)))
}
