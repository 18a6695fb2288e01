package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/lacam"
	"github.com/mapf-lacam/lacam/pibt"
)

// Compute derives Stats from a solve result: costs come from the best
// plan found (zero if unsolved), lower bounds come from each agent's
// unobstructed shortest-path distance from its start to its goal.
func Compute(result lacam.Result, starts pibt.Config, dt *disttable.Table, compTime time.Duration, seed int64) Stats {
	n := len(starts)
	s := Stats{
		Agents:   n,
		Solved:   result.Solved,
		Seed:     seed,
		CompTime: compTime,
	}

	lb := 0
	maxLB := 0
	for i, v := range starts {
		d := dt.Get(i, v)
		lb += d
		if d > maxLB {
			maxLB = d
		}
	}
	s.SumOfCostsLB = lb
	s.SumOfLossLB = lb
	s.MakespanLB = maxLB

	if !result.Solved {
		return s
	}

	s.Makespan = len(result.Plan) - 1

	// Per agent, the timestep from which it stays at its goal.
	arrival := make([]int, n)
	goals := result.Plan[len(result.Plan)-1]
	for i := range arrival {
		last := 0
		for t := 0; t < len(result.Plan); t++ {
			if result.Plan[t][i].ID != goals[i].ID {
				last = t + 1
			}
		}
		arrival[i] = last
	}

	total := 0
	for _, a := range arrival {
		total += a
	}
	s.SumOfCosts = total

	// Sum-of-loss: per step, every agent not at its goal on both sides.
	loss := 0
	for t := 0; t+1 < len(result.Plan); t++ {
		for i := 0; i < n; i++ {
			if result.Plan[t][i].ID != goals[i].ID || result.Plan[t+1][i].ID != goals[i].ID {
				loss++
			}
		}
	}
	s.SumOfLoss = loss
	return s
}

// WriteLog renders stats and plan in the reference implementation's plan
// log format: key=value lines followed by one solution= line per
// timestep.
func WriteLog(w io.Writer, mapFile string, seed int64, starts, goals pibt.Config, plan lacam.Plan, s Stats) error {
	bw := func(format string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}
	if err := bw("agents=%d\n", s.Agents); err != nil {
		return err
	}
	if err := bw("map_file=%s\n", mapFile); err != nil {
		return err
	}
	if err := bw("solved=%d\n", boolToInt(s.Solved)); err != nil {
		return err
	}
	if err := bw("soc=%d\n", s.SumOfCosts); err != nil {
		return err
	}
	if err := bw("soc_lb=%d\n", s.SumOfCostsLB); err != nil {
		return err
	}
	if err := bw("makespan=%d\n", s.Makespan); err != nil {
		return err
	}
	if err := bw("makespan_lb=%d\n", s.MakespanLB); err != nil {
		return err
	}
	if err := bw("sum_of_loss=%d\n", s.SumOfLoss); err != nil {
		return err
	}
	if err := bw("sum_of_loss_lb=%d\n", s.SumOfLossLB); err != nil {
		return err
	}
	if err := bw("comp_time=%d\n", s.CompTime.Milliseconds()); err != nil {
		return err
	}
	if err := bw("seed=%d\n", seed); err != nil {
		return err
	}
	if err := bw("starts=%s\n", renderConfig(starts)); err != nil {
		return err
	}
	if err := bw("goals=%s\n", renderConfig(goals)); err != nil {
		return err
	}
	if err := bw("solution=\n"); err != nil {
		return err
	}
	for t, q := range plan {
		if err := bw("%d:%s\n", t, renderConfig(q)); err != nil {
			return err
		}
	}
	return nil
}

func renderConfig(q pibt.Config) string {
	out := ""
	for _, v := range q {
		out += fmt.Sprintf("(%d,%d),", v.X, v.Y)
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AppendCSV appends one experiment row to path, writing a header first if
// the file is new or empty. Dropping the reference implementation's
// Windows-only CPU-name probe; see DESIGN.md.
func AppendCSV(path string, mapFile string, s Stats) error {
	info, statErr := os.Stat(path)
	needsHeader := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, "map_file,agents,seed,solved,soc,soc_lb,makespan,makespan_lb,sum_of_loss,sum_of_loss_lb,comp_time_ms"); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(f, "%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n",
		mapFile, s.Agents, s.Seed, boolToInt(s.Solved),
		s.SumOfCosts, s.SumOfCostsLB, s.Makespan, s.MakespanLB,
		s.SumOfLoss, s.SumOfLossLB, s.CompTime.Milliseconds())
	return err
}
