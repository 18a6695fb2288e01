// Package instance loads and validates a solver instance: a graph plus a
// per-agent start and goal vertex.
package instance
