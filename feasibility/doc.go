// Package feasibility independently verifies an externally supplied plan
// against the three rules a correct solve must never violate: the plan
// starts and ends where the instance says, every move stays within the
// mover's action set, and no timestep has a vertex or swap conflict.
package feasibility
