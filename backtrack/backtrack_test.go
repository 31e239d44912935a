package backtrack_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/combin/backtrack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allFeasible accepts every partial assignment; the search degenerates to a
// full cartesian product.
func allFeasible(_ *backtrack.Assignment) (bool, error) { return true, nil }

// sumAtMost returns a predicate accepting prefixes whose assigned sum is
// within bound. Mirrors the sumbound package without importing it.
func sumAtMost(bound int) backtrack.Feasible {
	return func(a *backtrack.Assignment) (bool, error) {
		sum := 0
		for _, v := range a.Prefix() {
			sum += v
		}

		return sum <= bound, nil
	}
}

// TestEnumerate_NonPositiveSize verifies size <= 0 errors before searching.
func TestEnumerate_NonPositiveSize(t *testing.T) {
	_, err := backtrack.Enumerate([]int{0, 1}, 0, allFeasible)
	assert.ErrorIs(t, err, backtrack.ErrNonPositiveSize, "size=0 must error")

	_, err = backtrack.Enumerate([]int{0, 1}, -3, allFeasible)
	assert.ErrorIs(t, err, backtrack.ErrNonPositiveSize, "negative size must error")
}

// TestEnumerate_EmptyCandidates verifies an empty candidate set is rejected
// rather than silently producing zero solutions.
func TestEnumerate_EmptyCandidates(t *testing.T) {
	_, err := backtrack.Enumerate(nil, 2, allFeasible)
	assert.ErrorIs(t, err, backtrack.ErrNoCandidates, "nil candidates must error")

	_, err = backtrack.Enumerate([]int{}, 2, allFeasible)
	assert.ErrorIs(t, err, backtrack.ErrNoCandidates, "empty candidates must error")
}

// TestEnumerate_NilFeasible verifies a missing predicate is rejected.
func TestEnumerate_NilFeasible(t *testing.T) {
	_, err := backtrack.Enumerate([]int{0, 1}, 2, nil)
	assert.ErrorIs(t, err, backtrack.ErrNilFeasible, "nil predicate must error")
}

// TestEnumerate_CartesianOrder verifies the unpruned search emits the full
// cartesian product in lexicographic candidate order.
func TestEnumerate_CartesianOrder(t *testing.T) {
	res, err := backtrack.Enumerate([]int{0, 1}, 2, allFeasible)
	require.NoError(t, err)

	want := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	assert.Equal(t, want, res.Solutions, "unpruned search must be the ordered cartesian product")
	assert.Equal(t, 4, res.Count)
}

// TestEnumerate_PrunedOrder verifies pruning removes exactly the infeasible
// vectors while preserving order: V=[0,1], K=1, n=2.
func TestEnumerate_PrunedOrder(t *testing.T) {
	res, err := backtrack.Enumerate([]int{0, 1}, 2, sumAtMost(1))
	require.NoError(t, err)

	want := [][]int{{0, 0}, {0, 1}, {1, 0}}
	assert.Equal(t, want, res.Solutions, "[1 1] must be pruned, order preserved")
}

// TestEnumerate_CandidateOrderDeterminesOrder verifies the emission order
// follows the given candidate ordering, not numeric order.
func TestEnumerate_CandidateOrderDeterminesOrder(t *testing.T) {
	res, err := backtrack.Enumerate([]int{1, 0}, 2, allFeasible)
	require.NoError(t, err)

	want := [][]int{{1, 1}, {1, 0}, {0, 1}, {0, 0}}
	assert.Equal(t, want, res.Solutions, "order must follow the candidate sequence as given")
}

// TestEnumerate_PredicateSeesExactPrefix verifies the invariant that the
// predicate at position p sees exactly p+1 assigned slots.
func TestEnumerate_PredicateSeesExactPrefix(t *testing.T) {
	var seen []int
	probe := func(a *backtrack.Assignment) (bool, error) {
		seen = append(seen, a.Filled())

		// The tail past the prefix must be unassigned.
		_, ok := a.At(a.Filled())

		return !ok, nil
	}

	_, err := backtrack.Enumerate([]int{7}, 3, probe)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, seen, "one call per depth with growing prefix")
}

// TestEnumerate_PredicateErrorPropagates verifies a predicate error aborts
// the search immediately and surfaces to the caller.
func TestEnumerate_PredicateErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := func(_ *backtrack.Assignment) (bool, error) {
		calls++
		if calls == 2 {
			return false, boom
		}

		return true, nil
	}

	_, err := backtrack.Enumerate([]int{0, 1}, 3, failing)
	assert.ErrorIs(t, err, boom, "predicate error must propagate")
	assert.Equal(t, 2, calls, "search must stop at the failing call")
}

// TestEnumerate_HookAborts verifies an OnSolution error terminates the search
// with that error.
func TestEnumerate_HookAborts(t *testing.T) {
	boom := errors.New("enough")
	emitted := 0
	hook := func(_ []int) error {
		emitted++
		if emitted == 2 {
			return boom
		}

		return nil
	}

	_, err := backtrack.Enumerate([]int{0, 1}, 2, allFeasible, backtrack.WithOnSolution(hook))
	assert.ErrorIs(t, err, boom, "hook error must propagate")
	assert.Equal(t, 2, emitted, "no solutions after the aborting hook call")
}

// TestEnumerate_MaxSolutions verifies the budget truncates the sequence
// without error.
func TestEnumerate_MaxSolutions(t *testing.T) {
	res, err := backtrack.Enumerate([]int{0, 1}, 2, allFeasible, backtrack.WithMaxSolutions(2))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}}, res.Solutions, "budget keeps the leading solutions")

	res, err = backtrack.Enumerate([]int{0, 1}, 2, allFeasible, backtrack.WithMaxSolutions(0))
	require.NoError(t, err)
	assert.Empty(t, res.Solutions, "budget 0 emits nothing")
}

// TestEnumerate_ContextCanceled verifies a canceled context aborts the search.
func TestEnumerate_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := backtrack.Enumerate([]int{0, 1}, 2, allFeasible, backtrack.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled, "canceled context must abort")
}

// TestEnumerate_Idempotent verifies two independent invocations yield
// identical ordered sequences.
func TestEnumerate_Idempotent(t *testing.T) {
	first, err := backtrack.Enumerate([]int{0, 1, 2}, 3, sumAtMost(2))
	require.NoError(t, err)
	second, err := backtrack.Enumerate([]int{0, 1, 2}, 3, sumAtMost(2))
	require.NoError(t, err)

	assert.Equal(t, first.Solutions, second.Solutions, "independent runs must match")
}

// TestEnumerate_SolutionsDoNotAlias verifies emitted solutions are
// independent copies, not views of the internal buffer or of each other.
func TestEnumerate_SolutionsDoNotAlias(t *testing.T) {
	res, err := backtrack.Enumerate([]int{0, 1}, 2, allFeasible)
	require.NoError(t, err)
	require.Len(t, res.Solutions, 4)

	res.Solutions[0][0] = 99
	assert.Equal(t, []int{0, 1}, res.Solutions[1], "mutating one solution must not affect another")
}

// TestStream_LazyAndAbandonable verifies pull-based delivery and that
// breaking early abandons the rest of the tree cleanly.
func TestStream_LazyAndAbandonable(t *testing.T) {
	seq, err := backtrack.Stream([]int{0, 1}, 2, allFeasible)
	require.NoError(t, err)

	var got [][]int
	for sol, serr := range seq {
		require.NoError(t, serr)
		got = append(got, sol)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, [][]int{{0, 0}, {0, 1}}, got, "stream yields solutions in search order")
}

// TestStream_Restartable verifies ranging twice over the same sequence
// performs two identical independent searches.
func TestStream_Restartable(t *testing.T) {
	seq, err := backtrack.Stream([]int{0, 1}, 2, sumAtMost(1))
	require.NoError(t, err)

	collect := func() [][]int {
		var out [][]int
		for sol, serr := range seq {
			require.NoError(t, serr)
			out = append(out, sol)
		}

		return out
	}

	assert.Equal(t, collect(), collect(), "both passes must yield the same sequence")
}

// TestStream_PredicateErrorInBand verifies a predicate error arrives as the
// final in-band element of the stream.
func TestStream_PredicateErrorInBand(t *testing.T) {
	boom := errors.New("boom")
	failing := func(a *backtrack.Assignment) (bool, error) {
		if a.Filled() == 2 {
			return false, boom
		}

		return true, nil
	}

	seq, err := backtrack.Stream([]int{0, 1}, 2, failing)
	require.NoError(t, err, "validation passes; the error is a search-time event")

	var sols, errs int
	for sol, serr := range seq {
		if serr != nil {
			assert.ErrorIs(t, serr, boom)
			assert.Nil(t, sol)
			errs++

			continue
		}
		sols++
	}
	assert.Equal(t, 0, sols, "the first full prefix already fails")
	assert.Equal(t, 1, errs, "exactly one in-band error, then the stream ends")
}

// TestStream_InvalidInput verifies validation happens before any pull.
func TestStream_InvalidInput(t *testing.T) {
	_, err := backtrack.Stream([]int{}, 2, allFeasible)
	assert.ErrorIs(t, err, backtrack.ErrNoCandidates)
}

// TestCount_MatchesEnumerate verifies Count agrees with the materialized
// search.
func TestCount_MatchesEnumerate(t *testing.T) {
	res, err := backtrack.Enumerate([]int{0, 1, 2}, 4, sumAtMost(3))
	require.NoError(t, err)

	n, err := backtrack.Count([]int{0, 1, 2}, 4, sumAtMost(3))
	require.NoError(t, err)
	assert.Equal(t, res.Count, n, "Count must match Enumerate")
}

// TestEnumerate_CandidateSliceNotRetained verifies mutating the caller's
// candidate slice after the call cannot affect a later identical search.
func TestEnumerate_CandidateSliceNotRetained(t *testing.T) {
	values := []int{0, 1}
	seq, err := backtrack.Stream(values, 2, allFeasible)
	require.NoError(t, err)

	values[0] = 9 // the stream snapshotted the candidates at call time

	var first []int
	for sol, serr := range seq {
		require.NoError(t, serr)
		first = sol

		break
	}
	assert.Equal(t, []int{0, 0}, first, "stream must use the candidate set as passed")
}
