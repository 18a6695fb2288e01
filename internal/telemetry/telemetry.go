package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Telemetry holds the solver's Prometheus collectors on their own
// registry, so a host process embedding this solver can mount it
// alongside its own metrics without name collisions.
type Telemetry struct {
	registry            *prometheus.Registry
	solveDuration        prometheus.Histogram
	loopCount            prometheus.Counter
	anytimeImprovements  prometheus.Counter
	nodesExplored        prometheus.Gauge
}

// New creates a Telemetry with its collectors registered.
func New() *Telemetry {
	reg := prometheus.NewRegistry()
	t := &Telemetry{
		registry: reg,
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lacam_solve_duration_seconds",
			Help:    "Wall-clock duration of Solve invocations.",
			Buckets: prometheus.DefBuckets,
		}),
		loopCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lacam_high_level_loop_total",
			Help: "Total high-level search loop iterations across all solves.",
		}),
		anytimeImprovements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lacam_anytime_improvements_total",
			Help: "Total times anytime rewiring lowered the best known cost.",
		}),
		nodesExplored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lacam_nodes_explored",
			Help: "Number of high-level nodes explored by the most recent solve.",
		}),
	}
	reg.MustRegister(t.solveDuration, t.loopCount, t.anytimeImprovements, t.nodesExplored)
	return t
}

// ObserveSolve records the outcome of one Solve invocation.
func (t *Telemetry) ObserveSolve(duration time.Duration, loopCount, nodesExplored int) {
	t.solveDuration.Observe(duration.Seconds())
	t.loopCount.Add(float64(loopCount))
	t.nodesExplored.Set(float64(nodesExplored))
}

// RecordImprovement counts one anytime cost improvement.
func (t *Telemetry) RecordImprovement() {
	t.anytimeImprovements.Inc()
}

// Serve starts an HTTP server exposing the registry at /metrics and
// returns it so the caller can shut it down; it does not block.
func (t *Telemetry) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	return srv
}

// Shutdown gracefully stops a server returned by Serve.
func Shutdown(ctx context.Context, srv *http.Server) error {
	return srv.Shutdown(ctx)
}
