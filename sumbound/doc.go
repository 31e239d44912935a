// Package sumbound enumerates all n-element integer vectors over an ordered
// candidate set whose elements sum to at most a fixed bound K.
//
// What:
//
//   - Feasible(K): the partial-assignment predicate "sum of assigned slots
//     ≤ K", plugged into the backtrack engine. Assigned-prefix sums only —
//     open slots contribute nothing.
//   - Enumerate / Stream / Count: drivers that validate the candidate set,
//     close the predicate over K, and run the generic search.
//
// Why:
//   - Generate candidate discrete schedules exhaustively ("how many events
//     per day across n days, total ≤ K" — see the schedule package)
//   - Serve as the reference predicate for the backtrack engine
//
// Soundness constraint:
//
//	Pruning a branch because its prefix sum already exceeds K is valid only
//	when no later value can lower the sum, i.e. all candidates are
//	non-negative. Negative candidates are rejected with
//	ErrNegativeCandidate instead of being searched incompletely.
//
// Complexity:
//
//   - Time O(|values|^size) worst case, heavily pruned when K is tight;
//     each predicate call sums the assigned prefix in O(filled).
//   - Memory O(size) plus one O(size) copy per solution.
//
// Errors:
//
//   - ErrNegativeCandidate          negative value in the candidate set
//   - backtrack.ErrNonPositiveSize  size <= 0
//   - backtrack.ErrNoCandidates     empty candidate set
//
// Degenerate inputs that are NOT errors: a negative bound, or a candidate
// set whose smallest size-length combination already exceeds the bound —
// both are valid searches with zero solutions.
package sumbound
