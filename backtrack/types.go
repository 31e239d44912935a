// Package backtrack defines types and options for constraint-pruned
// depth-first enumeration, including cancellation, per-solution hooks,
// solution budgets, and strict input validation.
package backtrack

import (
	"context"
	"errors"
)

var (
	// ErrNonPositiveSize is returned when the requested vector size is
	// zero or negative; an enumeration over no slots is malformed input,
	// not an empty result.
	ErrNonPositiveSize = errors.New("backtrack: size must be positive")

	// ErrNoCandidates is returned when the candidate set is empty.
	// No slot could ever be filled, so the input is rejected up front
	// rather than silently yielding zero solutions.
	ErrNoCandidates = errors.New("backtrack: candidate set is empty")

	// ErrNilFeasible is returned when no feasibility predicate is supplied.
	ErrNilFeasible = errors.New("backtrack: feasibility predicate is nil")
)

// errStop aborts the search from inside without reporting an error to the
// caller: the consumer stopped pulling or the solution budget was reached.
var errStop = errors.New("backtrack: stop search")

// Feasible decides whether a partial assignment can still extend to a valid
// full solution. It sees only the assigned prefix via Assignment and must be
// a pure function of that prefix: no mutation of the buffer, no retained
// references. Returning false prunes the current branch; returning a non-nil
// error aborts the whole search and propagates to the caller.
type Feasible func(a *Assignment) (bool, error)

// Option configures optional behavior of an enumeration.
// Use with Enumerate(values, size, feasible, opts...).
type Option func(*Options)

// Options holds configurable parameters for an enumeration.
// All fields are optional; zero-configured searches run to exhaustion.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// OnSolution, if non-nil, is invoked once per emitted solution with a
	// private copy of the buffer. Returning an error aborts the search
	// with that error.
	OnSolution func(solution []int) error

	// MaxSolutions, if non-negative, stops the search after that many
	// solutions have been emitted. Default is -1 (no limit).
	MaxSolutions int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No per-solution hook
//   - No solution limit (MaxSolutions = -1)
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnSolution:   nil,
		MaxSolutions: -1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSolution returns an Option that installs fn as a per-solution hook.
// The hook receives a copy the caller may keep; an error aborts the search.
func WithOnSolution(fn func(solution []int) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// WithMaxSolutions returns an Option that limits the search to at most
// limit emitted solutions. A limit of 0 emits none; negative means no limit.
func WithMaxSolutions(limit int) Option {
	return func(o *Options) {
		o.MaxSolutions = limit
	}
}

// Result captures the outcome of a materializing enumeration.
type Result struct {
	// Solutions lists every emitted solution in search order: depth-first,
	// candidates tried in their given order, so the sequence is
	// lexicographic in the candidate ordering (first slot varies slowest).
	Solutions [][]int

	// Count is len(Solutions), kept explicit for symmetry with Count().
	Count int
}
