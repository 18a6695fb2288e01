// Package telemetry holds Prometheus metrics for the solver: a
// solve-duration histogram, a loop-count counter, an anytime-improvement
// counter, and a nodes-explored gauge, optionally served over HTTP for
// scraping (the server logs its start and failure).
package telemetry
