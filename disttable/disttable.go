package disttable

import (
	"context"

	"github.com/mapf-lacam/lacam/graph"
	"golang.org/x/sync/errgroup"
)

// Table answers dist(i, v) for every agent i and vertex v of a fixed graph.
// It is created once per instance and lives with the solver; lazy mode
// mutates its frontiers only from the solver's goroutine.
type Table struct {
	g        *graph.Graph
	goals    []*graph.Vertex
	sentinel int // == |V|; "not yet known" / "unreachable"
	table    [][]int
	frontier []fifo // only populated in lazy mode; an exhausted entry is empty()
}

// fifo is a minimal slice-backed queue of vertices, advanced by index rather
// than reslicing, so an exhausted lazy frontier is simply length==head.
type fifo struct {
	items []*graph.Vertex
	head  int
}

func (f *fifo) empty() bool { return f.head >= len(f.items) }

func (f *fifo) push(v *graph.Vertex) { f.items = append(f.items, v) }

func (f *fifo) pop() *graph.Vertex {
	v := f.items[f.head]
	f.head++
	return v
}

// Build constructs a Table over g for the given per-agent goals. When eager
// is true, every agent's BFS flood from its goal runs to completion before
// Build returns, executed concurrently with an explicit join via errgroup
// (the reference implementation instead launches detached std::async
// futures and relies on their blocking destructors for an implicit join;
// this port makes that join explicit). When eager is false, each agent's
// flood is advanced lazily, only as far as Get queries demand.
func Build(g *graph.Graph, goals []*graph.Vertex, eager bool) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := len(goals)
	k := g.Size()
	t := &Table{
		g:        g,
		goals:    goals,
		sentinel: k,
		table:    make([][]int, n),
	}
	for i := 0; i < n; i++ {
		row := make([]int, k)
		for j := range row {
			row[j] = k
		}
		t.table[i] = row
	}

	if eager {
		if err := t.buildEager(); err != nil {
			return nil, err
		}
		return t, nil
	}

	t.frontier = make([]fifo, n)
	for i, goal := range goals {
		t.table[i][goal.ID] = 0
		t.frontier[i].push(goal)
	}
	return t, nil
}

// buildEager floods a BFS from every agent's goal concurrently; each
// goroutine writes only to its own row of t.table, so no synchronization
// is needed beyond the errgroup join.
func (t *Table) buildEager() error {
	grp, _ := errgroup.WithContext(context.Background())
	for i := range t.goals {
		i := i
		grp.Go(func() error {
			t.floodFrom(i, t.goals[i])
			return nil
		})
	}
	return grp.Wait()
}

// floodFrom runs an unweighted BFS from goal, relaxing t.table[i] for every
// reachable vertex, to completion.
func (t *Table) floodFrom(i int, goal *graph.Vertex) {
	row := t.table[i]
	row[goal.ID] = 0
	queue := make([]*graph.Vertex, 0, len(row))
	queue = append(queue, goal)
	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		dn := row[n.ID]
		for _, m := range n.Neighbors {
			if dn+1 >= row[m.ID] {
				continue
			}
			row[m.ID] = dn + 1
			queue = append(queue, m)
		}
	}
}

// Get returns dist(i, v): the shortest-path distance in edges from v to
// agent i's goal, or the sentinel |V| if v cannot reach the goal. In lazy
// mode it advances agent i's BFS frontier only as far as needed, and is
// idempotent: once a value is known, repeated queries do no further work.
func (t *Table) Get(i int, v *graph.Vertex) int {
	row := t.table[i]
	if row[v.ID] < t.sentinel {
		return row[v.ID]
	}
	if t.frontier == nil {
		// eager mode already resolved every reachable vertex.
		return t.sentinel
	}
	f := &t.frontier[i]
	for !f.empty() {
		n := f.pop()
		dn := row[n.ID]
		for _, m := range n.Neighbors {
			if dn+1 >= row[m.ID] {
				continue
			}
			row[m.ID] = dn + 1
			f.push(m)
		}
		if n.ID == v.ID {
			return dn
		}
	}
	return t.sentinel
}

// Sentinel returns the "unreachable"/"unknown" value, equal to |V|.
func (t *Table) Sentinel() int { return t.sentinel }
