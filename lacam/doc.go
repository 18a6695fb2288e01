// Package lacam implements the high-level configuration-space search:
// LaCAM*-style exploration of joint configurations reachable via the
// priority-inherited low-level planner, with a transposition cache,
// randomized restarts, and optional anytime cost-rewiring.
//
// What:
//
//   - Nodes (HNode) are joint configurations; edges connect a
//     configuration to the successors its low-level planner can reach.
//   - OPEN is a deque driven as a LIFO stack (front push, front pop, front
//     peek) with occasional front-insertions of the search root or a
//     random already-explored node, which is what keeps the search from
//     getting stuck retrying the same dead branch.
//   - EXPLORED maps every configuration ever reached to its HNode, so
//     revisiting a configuration reuses the existing node (a
//     transposition) instead of duplicating search effort.
//   - In anytime mode, once a goal is found the search keeps running;
//     every transposition triggers rewrite, a Dijkstra-style relaxation
//     that can lower a node's cost and reparent it, monotonically driving
//     down the best known solution cost.
//
// Why:
//
//   - A LIFO discipline finds a first solution fast (depth-first); the
//     front-insertion restarts are what prevent that depth-first bias
//     from trapping the search in one unproductive subtree forever.
//
// Complexity:
//
//   - Each loop iteration does O(1) deque work plus one low-level Step
//     call; total work is bounded by the number of distinct
//     configurations explored before the deadline fires.
//
// Determinism:
//
//   - All randomness (kicks, restarts, shuffle of action order) is drawn
//     from a single *rand.Rand in the fixed sequence the main loop
//     specifies, so two runs with the same seed, graph, and deadline
//     outcome produce the same plan and the same loop count.
package lacam
