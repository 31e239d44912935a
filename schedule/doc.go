// Package schedule answers the question "how many events per day across n
// days, with at most K events in total?" by exhaustive enumeration.
//
// What:
//
//   - Planner: the question — Days, MaxPerDay, Total.
//   - Plans / Stream / Count: every admissible per-day event-count vector,
//     lazily or materialized, in deterministic lexicographic order
//     (quiet leading days first).
//
// Why:
//   - Feed candidate schedules into downstream simulation or scoring
//   - Size a planning problem before committing to a solver
//
// Built directly on sumbound (candidates 0..MaxPerDay, bound Total), which
// in turn runs the backtrack engine; backtrack options (context, budget,
// per-solution hook) pass straight through.
//
// Errors:
//
//   - ErrNoDays          Days <= 0
//   - ErrNegativeLimit   MaxPerDay < 0
//
// A negative Total is a valid question with zero plans, not an error.
package schedule
