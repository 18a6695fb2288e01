// Package solver is the driver: it composes the graph, distance oracle,
// low-level planner, and high-level searcher behind a single Solve entry
// point, and owns the process-wide tuning constants (anytime mode,
// restart probabilities, swap/hindrance toggles, distance-table build
// mode) the reference implementation sets once before solving.
package solver
