// Package backtrack implements the generic constraint-pruned depth-first
// enumerator. It walks the tree of partial assignments slot by slot, tries
// every candidate value in order, asks the feasibility predicate whether the
// extended prefix can still reach a full solution, and recurses only on
// success. Solutions are emitted as independent copies in deterministic
// lexicographic order (induced by the candidate ordering).
//
// Key features:
//   - Enumerate(values, size, feasible, opts...): materialize every solution
//   - Stream(values, size, feasible, opts...): lazy pull-based iteration
//   - Count(values, size, feasible, opts...): count without materializing
//   - Hooks: OnSolution with error abort; budgets via WithMaxSolutions
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(|values|^size) worst case, pruned by the predicate; one
//     predicate call per attempted partial extension.
//   - Memory: O(size) for the single in-place buffer, plus O(size) per
//     emitted solution copy.
//
// Errors:
//
//   - ErrNonPositiveSize        if size <= 0.
//   - ErrNoCandidates           if the candidate set is empty.
//   - ErrNilFeasible            if no predicate is supplied.
//   - context.Canceled          if the context is done.
//   - any error returned by the predicate or the OnSolution hook.
package backtrack

import (
	"fmt"
	"iter"
)

// enumerator encapsulates state during one search. A dedicated engine struct
// (instead of anonymous closures over the recursion state) keeps dependencies
// explicit and the hot-path state predictable.
type enumerator struct {
	values   []int       // candidate set, private copy, tried in order
	feasible Feasible    // partial-solution predicate
	opts     Options     // resolved options
	buf      *Assignment // the single in-place partial-assignment buffer

	sink    func(solution []int) error // receives each emitted copy
	emitted int                        // solutions emitted so far
}

// validate rejects malformed input before any search begins, so callers can
// always distinguish "valid input, zero solutions" from "invalid input".
func validate(values []int, size int, feasible Feasible) error {
	if size <= 0 {
		return ErrNonPositiveSize
	}
	if len(values) == 0 {
		return ErrNoCandidates
	}
	if feasible == nil {
		return ErrNilFeasible
	}

	return nil
}

// newEnumerator validates input, resolves options, and prepares a fresh
// engine with an all-unassigned buffer. Candidates are copied so later
// mutation by the caller cannot perturb a running or repeated search.
func newEnumerator(values []int, size int, feasible Feasible, opts []Option) (*enumerator, error) {
	if err := validate(values, size, feasible); err != nil {
		return nil, err
	}

	eopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&eopts)
	}

	vals := make([]int, len(values))
	copy(vals, values)

	return &enumerator{
		values:   vals,
		feasible: feasible,
		opts:     eopts,
		buf:      newAssignment(size),
	}, nil
}

// run drives the search from slot 0 and normalizes the early-stop sentinel:
// a consumer break or an exhausted budget is a clean finish, not an error.
func (e *enumerator) run() error {
	if err := e.descend(0); err != nil && err != errStop {
		return err
	}

	return nil
}

// descend explores slot pos. For each candidate in order it writes the value
// into the buffer, consults the predicate, and on success either emits (last
// slot) or recurses. Sibling tries overwrite the slot, so the only explicit
// undo is the final clear that restores the all-unassigned-tail invariant
// before control returns to pos-1.
func (e *enumerator) descend(pos int) error {
	// Cancellation check once per node.
	select {
	case <-e.opts.Ctx.Done():
		return e.opts.Ctx.Err()
	default:
	}

	last := pos == e.buf.Len()-1

	var (
		v   int
		ok  bool
		err error
	)
	for _, v = range e.values {
		e.buf.set(pos, v)

		ok, err = e.feasible(e.buf)
		if err != nil {
			return fmt.Errorf("backtrack: feasible at slot %d: %w", pos, err)
		}
		if !ok {
			continue
		}

		if last {
			if err = e.emit(); err != nil {
				return err
			}

			continue
		}

		if err = e.descend(pos + 1); err != nil {
			return err
		}
	}

	e.buf.clear(pos)

	return nil
}

// emit copies the full buffer out, runs the hook, hands the copy to the sink,
// and enforces the solution budget. The copy never aliases the buffer, which
// keeps mutating after emission.
func (e *enumerator) emit() error {
	if e.opts.MaxSolutions >= 0 && e.emitted >= e.opts.MaxSolutions {
		return errStop
	}

	sol := e.buf.snapshot()

	if e.opts.OnSolution != nil {
		if err := e.opts.OnSolution(sol); err != nil {
			return fmt.Errorf("backtrack: OnSolution hook: %w", err)
		}
	}
	if err := e.sink(sol); err != nil {
		return err
	}
	e.emitted++

	if e.opts.MaxSolutions >= 0 && e.emitted >= e.opts.MaxSolutions {
		return errStop
	}

	return nil
}

// Enumerate performs a full depth-first search and materializes every
// solution that passed the predicate at every prefix length. Solutions appear
// in lexicographic order induced by the candidate ordering; two invocations
// with identical inputs produce identical results.
//
// Returns a validation error before searching, or the first error raised by
// the predicate, the OnSolution hook, or the context.
func Enumerate(values []int, size int, feasible Feasible, opts ...Option) (*Result, error) {
	e, err := newEnumerator(values, size, feasible, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	e.sink = func(solution []int) error {
		res.Solutions = append(res.Solutions, solution)

		return nil
	}

	if err = e.run(); err != nil {
		return nil, err
	}
	res.Count = len(res.Solutions)

	return res, nil
}

// Stream validates the input eagerly, then returns a lazy pull-based sequence
// of solutions. The search runs only while the consumer keeps pulling;
// breaking out abandons the unexplored tree with no cleanup obligations.
// A predicate, hook, or context error is delivered in-band as a final
// (nil, err) element, after which the sequence ends.
//
// Each ranging over the returned sequence performs an independent fresh
// search over a newly allocated buffer, yielding the same solutions in the
// same order.
func Stream(values []int, size int, feasible Feasible, opts ...Option) (iter.Seq2[[]int, error], error) {
	if err := validate(values, size, feasible); err != nil {
		return nil, err
	}

	// Snapshot the candidate set now: it stays fixed for every range pass
	// even if the caller mutates the original slice afterwards.
	vals := make([]int, len(values))
	copy(vals, values)

	seq := func(yield func([]int, error) bool) {
		// Validation already passed above; options are re-resolved per range.
		e, _ := newEnumerator(vals, size, feasible, opts)
		e.sink = func(solution []int) error {
			if !yield(solution, nil) {
				return errStop
			}

			return nil
		}

		if err := e.run(); err != nil {
			yield(nil, err)
		}
	}

	return seq, nil
}

// Count runs the search without materializing solutions and returns how many
// were emitted. Same validation, ordering, and abort semantics as Enumerate.
func Count(values []int, size int, feasible Feasible, opts ...Option) (int, error) {
	e, err := newEnumerator(values, size, feasible, opts)
	if err != nil {
		return 0, err
	}

	e.sink = func([]int) error { return nil }

	if err = e.run(); err != nil {
		return 0, err
	}

	return e.emitted, nil
}
