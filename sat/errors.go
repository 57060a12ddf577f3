package sat

import "fmt"

// InvariantError reports a violation of one of the core's internal
// invariants: assigning a variable that is already assigned, an unknown
// heuristic kind at build time, or a non-positive RNG bound (all raised by
// panicking via invariant), or a final verification pass in Solve that
// finds an unassigned variable or an unsatisfied clause (returned as an
// error). The propagation stack grows as needed and is not checked for
// overflow, and the negation-bits-within-membership-bits property is not
// checked. These are internal-bug class failures, never a consequence of
// malformed input — callers should treat them as fatal.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("sat: invariant violated in %s: %s", e.Op, e.Msg)
}

func invariant(cond bool, op, msg string) {
	if !cond {
		panic(&InvariantError{Op: op, Msg: msg})
	}
}

// RangeError reports an out-of-range clause or variable id passed to a
// public build-time API (AddLiteral, ApplyUnit). Unlike InvariantError
// this is the caller's fault, not the solver's, so it is returned rather
// than panicked.
type RangeError struct {
	Op  string
	Msg string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sat: %s: %s", e.Op, e.Msg)
}
