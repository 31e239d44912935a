package schedule

import (
	"errors"
	"iter"

	"github.com/katalvlaran/combin/backtrack"
	"github.com/katalvlaran/combin/sumbound"
)

var (
	// ErrNoDays indicates the planning horizon is empty.
	ErrNoDays = errors.New("schedule: planner needs at least one day")
	// ErrNegativeLimit indicates a negative per-day capacity.
	ErrNegativeLimit = errors.New("schedule: per-day capacity must be non-negative")
)

// Planner describes a discrete scheduling question: across Days days, with at
// most MaxPerDay events on any single day, how can at most Total events be
// distributed? Each plan is one vector of per-day event counts.
type Planner struct {
	// Days is the number of slots in every plan (must be positive).
	Days int

	// MaxPerDay caps a single day's event count; candidates per day are
	// 0..MaxPerDay (must be non-negative).
	MaxPerDay int

	// Total caps the sum of a plan. A negative Total is a valid question
	// with an empty answer.
	Total int
}

// Validate reports whether the planner describes a well-formed question.
func (p Planner) Validate() error {
	if p.Days <= 0 {
		return ErrNoDays
	}
	if p.MaxPerDay < 0 {
		return ErrNegativeLimit
	}

	return nil
}

// perDay materializes the candidate set 0..MaxPerDay.
func (p Planner) perDay() []int {
	values := make([]int, p.MaxPerDay+1)
	for i := range values {
		values[i] = i
	}

	return values
}

// Plans enumerates every admissible plan in lexicographic order: quiet
// leading days first. Each returned vector is independent of the others and
// of the search.
func (p Planner) Plans(opts ...backtrack.Option) (*backtrack.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return sumbound.Enumerate(p.perDay(), p.Total, p.Days, opts...)
}

// Stream is the lazy counterpart of Plans for consumers that want a few
// plans without enumerating all of them.
func (p Planner) Stream(opts ...backtrack.Option) (iter.Seq2[[]int, error], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return sumbound.Stream(p.perDay(), p.Total, p.Days, opts...)
}

// Count reports how many admissible plans exist without materializing them.
func (p Planner) Count(opts ...backtrack.Option) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	return sumbound.Count(p.perDay(), p.Total, p.Days, opts...)
}
