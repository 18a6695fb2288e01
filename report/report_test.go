package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/lacam"
	"github.com/mapf-lacam/lacam/pibt"
	"github.com/mapf-lacam/lacam/report"
	"github.com/stretchr/testify/require"
)

func TestCompute_SolvedInstance(t *testing.T) {
	g, err := graph.Parse(strings.NewReader("height 1\nwidth 3\nmap\n...\n"))
	require.NoError(t, err)
	starts := pibt.Config{g.At(0, 0)}
	goals := pibt.Config{g.At(2, 0)}
	dt, err := disttable.Build(g, []*graph.Vertex(goals), true)
	require.NoError(t, err)

	plan := lacam.Plan{
		{g.At(0, 0)},
		{g.At(1, 0)},
		{g.At(2, 0)},
	}
	result := lacam.Result{Solved: true, Plan: plan}
	s := report.Compute(result, starts, dt, 5*time.Millisecond, 42)

	require.Equal(t, 2, s.Makespan)
	require.Equal(t, 2, s.MakespanLB)
	require.Equal(t, 2, s.SumOfCosts)
	require.Equal(t, 2, s.SumOfCostsLB)
	require.Equal(t, 1.0, s.SumOfCostsRatio())
}

func TestCompute_UnsolvedInstance(t *testing.T) {
	g, err := graph.Parse(strings.NewReader("height 1\nwidth 2\nmap\n..\n"))
	require.NoError(t, err)
	starts := pibt.Config{g.At(0, 0)}
	goals := pibt.Config{g.At(1, 0)}
	dt, err := disttable.Build(g, []*graph.Vertex(goals), true)
	require.NoError(t, err)

	s := report.Compute(lacam.Result{Solved: false}, starts, dt, 0, 1)
	require.False(t, s.Solved)
	require.Equal(t, 0, s.Makespan)
	require.Equal(t, 1, s.MakespanLB)
}

func TestWriteLog_ContainsExpectedFields(t *testing.T) {
	g, err := graph.Parse(strings.NewReader("height 1\nwidth 2\nmap\n..\n"))
	require.NoError(t, err)
	starts := pibt.Config{g.At(0, 0)}
	goals := pibt.Config{g.At(1, 0)}
	plan := lacam.Plan{starts, goals}
	s := report.Stats{Agents: 1, Solved: true, Makespan: 1, MakespanLB: 1, SumOfCosts: 1, SumOfCostsLB: 1}

	var buf bytes.Buffer
	require.NoError(t, report.WriteLog(&buf, "map.txt", 7, starts, goals, plan, s))
	out := buf.String()
	require.Contains(t, out, "agents=1")
	require.Contains(t, out, "solved=1")
	require.Contains(t, out, "solution=")
	require.Contains(t, out, "0:(0,0),")
	require.Contains(t, out, "1:(1,0),")
}
