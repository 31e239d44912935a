package backtrack

// Assignment is the mutable partial-solution buffer owned by a single
// enumeration. Slots 0..Filled()-1 hold assigned values; everything past the
// filled prefix is unassigned. Tracking the filled length explicitly (rather
// than writing a sentinel value into open slots) keeps "no value" out of the
// value domain entirely.
//
// The engine mutates the buffer in place while descending and backtracking;
// predicates receive it read-only and must not retain it across calls.
type Assignment struct {
	values []int // backing buffer, length == slot count
	filled int   // number of assigned leading slots
}

// newAssignment returns an all-unassigned buffer with size slots.
func newAssignment(size int) *Assignment {
	return &Assignment{values: make([]int, size)}
}

// Len returns the total number of slots.
func (a *Assignment) Len() int { return len(a.values) }

// Filled returns how many leading slots currently hold a value.
func (a *Assignment) Filled() int { return a.filled }

// At returns the value at slot i and whether slot i is assigned.
// Unassigned or out-of-range slots report (0, false).
func (a *Assignment) At(i int) (int, bool) {
	if i < 0 || i >= a.filled {
		return 0, false
	}

	return a.values[i], true
}

// Prefix returns the assigned leading slots. The slice aliases the internal
// buffer: read it during the current predicate call only.
func (a *Assignment) Prefix() []int { return a.values[:a.filled] }

// set assigns v to slot pos, making pos the last filled slot.
// The engine only ever calls it with pos == filled prefix boundary.
func (a *Assignment) set(pos, v int) {
	a.values[pos] = v
	a.filled = pos + 1
}

// clear restores slot pos (and everything after it) to unassigned.
func (a *Assignment) clear(pos int) { a.filled = pos }

// snapshot copies the buffer out as an independent solution vector.
// Called only when every slot is assigned.
func (a *Assignment) snapshot() []int {
	out := make([]int, len(a.values))
	copy(out, a.values)

	return out
}
