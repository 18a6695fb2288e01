// Command lacam solves a multi-agent pathfinding instance from a map and
// scenario file and writes a plan log.
package main

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mapf-lacam/lacam/disttable"
	"github.com/mapf-lacam/lacam/feasibility"
	"github.com/mapf-lacam/lacam/graph"
	"github.com/mapf-lacam/lacam/instance"
	"github.com/mapf-lacam/lacam/internal/telemetry"
	"github.com/mapf-lacam/lacam/lacam"
	"github.com/mapf-lacam/lacam/report"
	"github.com/mapf-lacam/lacam/solver"
)

// cli mirrors spec.md §6's flag surface, plus the ambient config-file and
// metrics additions SPEC_FULL.md §5/§6 add.
var cli struct {
	Map       string  `name:"map" short:"m" help:"Map file path." type:"path" required:""`
	Scenario  string  `name:"scenario" short:"i" help:"Scenario file path (optional; random instance if omitted)."`
	Agents    int     `name:"agents" short:"N" help:"Number of agents." required:""`
	Seed      int64   `name:"seed" short:"s" help:"Random seed." default:"0"`
	TimeLimit float64 `name:"time-limit" short:"t" help:"Time limit in seconds." default:"3.0"`
	Verbosity int     `name:"verbosity" short:"v" help:"Verbosity level (0-5)." default:"0"`
	Output    string  `name:"output" short:"o" help:"Plan output path." default:"build/result.txt"`

	Anytime         bool `name:"anytime" help:"Enable anytime refinement."`
	NoDistTableInit bool `name:"no_dist_table_init" help:"Force lazy distance oracle."`
	NoPIBTSwap      bool `name:"no_pibt_swap" help:"Disable the swap rule."`
	NoPIBTHindrance bool `name:"no_pibt_hindrance" help:"Disable the hindrance heuristic."`

	Config      string `name:"config" short:"c" help:"Optional YAML config file providing flag defaults."`
	MetricsAddr string `name:"metrics-addr" help:"If set, serve Prometheus metrics on this address."`
	CSV         string `name:"csv" help:"If set, append an experiment row to this CSV file."`
}

func main() {
	opts := []kong.Option{
		kong.Name("lacam"),
		kong.Description("LaCAM*/PIBT multi-agent pathfinding solver."),
		kong.UsageOnError(),
	}
	if path := configPathFromArgs(os.Args[1:]); path != "" {
		opts = append(opts, kong.Configuration(yamlConfigLoader, path))
	}

	parser := kong.Must(&cli, opts...)
	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	setLogLevel(cli.Verbosity)

	rng := rand.New(rand.NewSource(cli.Seed))

	mapFile, err := os.Open(cli.Map)
	if err != nil {
		log.Error("failed to open map file", "err", err)
		os.Exit(1)
	}
	defer mapFile.Close()

	var scenReader io.Reader
	if cli.Scenario != "" {
		scenFile, err := os.Open(cli.Scenario)
		if err != nil {
			log.Error("failed to open scenario file", "err", err)
			os.Exit(1)
		}
		defer scenFile.Close()
		scenReader = scenFile
	}

	inst, err := instance.Load(mapFile, scenReader, cli.Agents, rng)
	if err != nil {
		log.Error("failed to load instance", "err", err)
		os.Exit(1)
	}
	if err := inst.Validate(); err != nil {
		log.Warn("unsolvable geometry: agent start/goal in disconnected components", "err", err)
	}

	var tel *telemetry.Telemetry
	if cli.MetricsAddr != "" {
		tel = telemetry.New()
		srv := tel.Serve(cli.MetricsAddr)
		defer srv.Close()
	}

	runID := uuid.New().String()
	log.Info("starting solve", "run_id", runID, "agents", cli.Agents, "seed", cli.Seed)

	solveOpts := solver.DefaultOptions()
	solveOpts.Anytime = cli.Anytime
	solveOpts.LazyDistTable = cli.NoDistTableInit
	solveOpts.Swap = !cli.NoPIBTSwap
	solveOpts.Hindrance = !cli.NoPIBTHindrance
	solveOpts.Seed = cli.Seed
	solveOpts.Deadline = time.Duration(cli.TimeLimit * float64(time.Second))

	started := time.Now()
	result, err := solver.Solve(inst, solveOpts, tel)
	compTime := time.Since(started)
	if err != nil {
		log.Error("solve failed", "err", err)
		os.Exit(1)
	}

	if result.Solved {
		if ok, violation := feasibility.Check(feasibility.Plan(result.Plan), inst.Starts, inst.Goals); !ok {
			log.Error("produced plan failed feasibility check", "rule", violation.Rule, "timestep", violation.Timestep)
			os.Exit(1)
		}
		log.Info("solved", "loop_cnt", result.LoopCount, "comp_time_ms", compTime.Milliseconds())
	} else {
		log.Info("reach time limit without a solution", "loop_cnt", result.LoopCount)
	}

	statsDT, err := disttable.Build(inst.Graph, []*graph.Vertex(inst.Goals), true)
	if err != nil {
		log.Error("failed to build stats distance table", "err", err)
		os.Exit(1)
	}
	stats := report.Compute(result, inst.Starts, statsDT, compTime, cli.Seed)

	if err := writeOutput(cli.Output, cli.Map, cli.Seed, inst, result, stats); err != nil {
		log.Error("failed to write plan output", "err", err)
		os.Exit(1)
	}

	if cli.CSV != "" {
		if err := report.AppendCSV(cli.CSV, cli.Map, stats); err != nil {
			log.Error("failed to append csv row", "err", err)
			os.Exit(1)
		}
	}

	os.Exit(0)
}

func setLogLevel(verbosity int) {
	switch {
	case verbosity <= 0:
		log.SetLevel(log.WarnLevel)
	case verbosity == 1:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.DebugLevel)
	}
}

func writeOutput(path, mapFile string, seed int64, inst *instance.Instance, result lacam.Result, stats report.Stats) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteLog(f, mapFile, seed, inst.Starts, inst.Goals, result.Plan, stats)
}
