// Package sumbound — sum-bounded vector enumeration over the backtrack core.
//
// The feasibility predicate accepts a partial assignment iff the sum of its
// assigned slots stays within a fixed bound K. Pruning on that predicate is
// sound only for non-negative candidate values: once a prefix sum exceeds K,
// no later non-negative addition can bring it back. The drivers in this
// package therefore reject negative candidates up front instead of silently
// enumerating incompletely.
//
// The predicate recomputes the prefix sum on every call, O(filled) per
// attempted extension. A running sum would avoid the recomputation without
// changing behavior; at the intended problem sizes the recompute is not a
// bottleneck.
package sumbound

import (
	"errors"
	"iter"

	"github.com/katalvlaran/combin/backtrack"
)

// ErrNegativeCandidate is returned when the candidate set contains a negative
// value. Fail-fast pruning of the sum predicate is unsound below zero, so the
// input is rejected rather than searched incorrectly.
var ErrNegativeCandidate = errors.New("sumbound: candidate values must be non-negative")

// Feasible returns the sum-bound predicate: true iff the sum of the assigned
// slots is at most bound. Unassigned slots contribute nothing; the predicate
// is pure and stateless, safe to reuse across searches.
func Feasible(bound int) backtrack.Feasible {
	return func(a *backtrack.Assignment) (bool, error) {
		sum := 0
		for _, v := range a.Prefix() {
			sum += v
		}

		return sum <= bound, nil
	}
}

// validateValues enforces the non-negativity constraint the pruning argument
// rests on.
func validateValues(values []int) error {
	for _, v := range values {
		if v < 0 {
			return ErrNegativeCandidate
		}
	}

	return nil
}

// Enumerate materializes every size-length vector over values whose sum is at
// most bound, in lexicographic candidate order. A negative bound is valid
// input and yields zero solutions.
//
// Errors: ErrNegativeCandidate, plus the backtrack validation sentinels.
func Enumerate(values []int, bound, size int, opts ...backtrack.Option) (*backtrack.Result, error) {
	if err := validateValues(values); err != nil {
		return nil, err
	}

	return backtrack.Enumerate(values, size, Feasible(bound), opts...)
}

// Stream is the lazy counterpart of Enumerate; see backtrack.Stream for the
// pull-based contract.
func Stream(values []int, bound, size int, opts ...backtrack.Option) (iter.Seq2[[]int, error], error) {
	if err := validateValues(values); err != nil {
		return nil, err
	}

	return backtrack.Stream(values, size, Feasible(bound), opts...)
}

// Count reports how many size-length vectors over values sum to at most
// bound, without materializing them.
func Count(values []int, bound, size int, opts ...backtrack.Option) (int, error) {
	if err := validateValues(values); err != nil {
		return 0, err
	}

	return backtrack.Count(values, size, Feasible(bound), opts...)
}
