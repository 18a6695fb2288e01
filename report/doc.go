// Package report computes solve statistics (sum-of-costs, makespan, and
// their lower bounds) and renders them as the plan log format and
// optional CSV experiment row the reference implementation's make_log
// produces.
package report
