// Package backtrack implements generic constraint-pruned depth-first
// enumeration of integer vectors: a search driver parameterized by an
// ordered candidate set, a feasibility predicate over partial assignments,
// and a slot count.
//
// What:
//
//   - Enumerate: explore the full tree of assignments, pruning any branch
//     whose prefix the predicate rejects, and collect every surviving full
//     assignment. Supports:
//   - Per-solution hooks with error abort
//   - Cancellation via context.Context
//   - Solution budgets (WithMaxSolutions)
//   - Stream: the same search surfaced as a lazy pull-based iterator
//     (iter.Seq2); the consumer may stop pulling at any point and the
//     unexplored subtree is simply abandoned.
//   - Count: drive the search to exhaustion and report only the tally.
//
// Why:
//   - Generate candidate discrete schedules and allocations exhaustively
//   - Serve as the search core under problem-specific predicates (see
//     the sumbound package)
//   - Keep pruning logic decoupled from traversal logic: the engine sees
//     only a boolean verdict per attempted extension
//
// Key Types & Constants:
//
//   - Feasible: predicate over the assigned prefix of an Assignment
//   - Assignment: the in-place partial-assignment buffer (filled-prefix
//     tracking, no sentinel values)
//   - Option: functional options for search behavior
//   - Options: holds Context, OnSolution, MaxSolutions
//   - Result: materialized solutions plus count
//
// Complexity:
//
//   - Time O(|values|^size) worst case, cut down by pruning; exactly one
//     predicate call per attempted partial extension.
//   - Memory O(size) for the engine, plus one O(size) copy per solution.
//
// Errors:
//
//   - ErrNonPositiveSize   size <= 0
//   - ErrNoCandidates      empty candidate set
//   - ErrNilFeasible       missing predicate
//   - context.Canceled     search canceled via context
//   - predicate/hook errors propagated unchanged (wrapped with position)
//
// Functions:
//
//   - Enumerate(values []int, size int, feasible Feasible, opts ...Option) (*Result, error)
//     materialize every solution in candidate-order lexicographic sequence
//   - Stream(values []int, size int, feasible Feasible, opts ...Option) (iter.Seq2[[]int, error], error)
//     lazy pull-based variant with in-band error delivery
//   - Count(values []int, size int, feasible Feasible, opts ...Option) (int, error)
//     exhaustive count without materialization
//   - DefaultOptions(), WithContext(), WithOnSolution(), WithMaxSolutions()
//
// Determinism: the candidate ordering fully determines the emission order;
// independent invocations with identical inputs yield identical sequences.
package backtrack
