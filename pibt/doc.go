// Package pibt implements the priority-inherited single-step planner: given
// a current joint configuration, a partially filled successor configuration,
// and an agent priority order, it fills in every remaining slot so the
// result is collision-free, or reports failure.
//
// What:
//
//   - step(i) resolves one agent's next vertex by trying candidates in
//     (distance, hindrance, random tie-break) order, recursing into
//     whichever agent currently blocks the best candidate (priority
//     inheritance).
//   - Optional swap detection lets a blocked agent route around a
//     head-on conflict by pulling its blocker through a branching
//     vertex instead of only ever waiting.
//
// Why:
//
//   - Pure distance-greedy single-step resolution deadlocks agents facing
//     each other in a corridor; the swap rule is the standard fix, and
//     hindrance is a cheap tie-break that reduces how often one agent's
//     greedy move blocks another's.
//
// Complexity:
//
//   - step(i) is O(degree(v) log degree(v)) for the sort plus the cost of
//     any recursive calls; recursion depth is bounded by N because each
//     call either succeeds immediately, recurses into a strictly
//     not-yet-decided agent, or fails, and the set of decided agents only
//     grows.
//
// Determinism:
//
//   - Given the same graph, distance table, RNG stream, and priority
//     order, Step produces the same output every time: all randomness
//     (tie-break draws) comes from the single *rand.Rand supplied by the
//     caller, consumed in a fixed order (one draw per action per step
//     call).
package pibt
