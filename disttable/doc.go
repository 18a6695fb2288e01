// Package disttable is a lazy or eager all-pairs-to-goal distance oracle.
//
// What:
//
//   - For each agent i, answers dist(i, v): the number of edges on a
//     shortest path from v to agent i's goal in the undirected grid.
//   - Eager mode floods a breadth-first search from every goal concurrently
//     (one goroutine per agent, joined before returning) so later lookups
//     are O(1).
//   - Lazy mode keeps one still-growing BFS frontier per agent and only
//     advances it as far as a query demands, so agents whose distances are
//     never queried pay nothing.
//
// Why:
//
//   - Most MAPF instances only ever query a small fraction of dist(i, v)
//     pairs (only vertices actually visited during search); lazy mode
//     avoids the O(N×|V|) eager flood when N or |V| is large and the
//     deadline is short.
//
// Complexity:
//
//   - Eager Build: O(N×|V|) time and memory, parallel across agents.
//   - Get (lazy): amortized O(1) per distinct (i, v) ever resolved, plus the
//     one-time O(|V|) worst case to exhaust an agent's frontier.
//
// Invariants:
//
//   - Distances are monotone: once below the sentinel |V|, a value never
//     changes.
//   - Lazy and eager modes are observationally equivalent for the same
//     goals: lazy results are a prefix of what eager would compute.
package disttable
