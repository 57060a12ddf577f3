package sat

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrCancelled is returned by Problem.Solve when Problem.Cancel was called
// while a search was in progress. It is checked between decisions only —
// spec §5 requires propagation itself to run to completion once started,
// so cancellation is never observed mid-clause-scan.
var ErrCancelled = errors.New("sat: search cancelled")

// Problem is the assembled DPLL instance from spec §4.H: the bit-packed
// clause store, assignment state, propagation and decision stacks, watch
// index, and the chosen splitting heuristic, plus the counters that feed
// it. Build it with New, load it with AddLiteral/ApplyUnit, then call
// Solve once.
type Problem struct {
	variableCount int // V+1, includes the sentinel
	clauseCount   int
	heuristicKind SplittingHeuristic

	clauses *clauseStore
	asg     *assignment
	prop    *propagationStack
	dec     *decisionStack
	watch   *watchIndex
	h       heuristic
	rng     *RNG

	clauseWidth          []int
	posCount, negCount   []int
	twoClauseOccurrences []int

	unsatAtParse bool
	built        bool
	cancelled    int32

	stats Stats
}

// New allocates a Problem for variableCount user-facing variables
// (numbered 1..variableCount) and clauseCount clauses (numbered
// 0..clauseCount-1 at the AddLiteral call site). seed feeds the RANDOM
// heuristic's RNG; it is ignored by the other two.
func New(variableCount, clauseCount int, h SplittingHeuristic, seed uint64) (*Problem, error) {
	if variableCount < 0 {
		return nil, &RangeError{Op: "New", Msg: "variableCount must be >= 0"}
	}
	if clauseCount < 0 {
		return nil, &RangeError{Op: "New", Msg: "clauseCount must be >= 0"}
	}

	internal := variableCount + 1
	p := &Problem{
		variableCount:        internal,
		clauseCount:          clauseCount,
		heuristicKind:        h,
		clauses:              newClauseStore(internal, clauseCount),
		asg:                  newAssignment(internal),
		prop:                 newPropagationStack(internal),
		dec:                  newDecisionStack(internal),
		rng:                  NewRNG(seed),
		clauseWidth:          make([]int, clauseCount),
		posCount:             make([]int, internal),
		negCount:             make([]int, internal),
		twoClauseOccurrences: make([]int, internal),
	}
	return p, nil
}

// AddLiteral registers one literal of clauseID. Call it once per literal
// token while parsing; duplicate literals within the same clause (either
// polarity) are handled per spec by marking the clause satisfied via the
// sentinel variable rather than rejected.
func (p *Problem) AddLiteral(clauseID, variableID int, negated bool) error {
	if clauseID < 0 || clauseID >= p.clauseCount {
		return &RangeError{Op: "AddLiteral", Msg: fmt.Sprintf("clause id %d out of range [0,%d)", clauseID, p.clauseCount)}
	}
	if variableID < 1 || variableID >= p.variableCount {
		return &RangeError{Op: "AddLiteral", Msg: fmt.Sprintf("variable id %d out of range [1,%d)", variableID, p.variableCount)}
	}

	p.clauseWidth[clauseID]++
	if negated {
		p.negCount[variableID]++
	} else {
		p.posCount[variableID]++
	}
	p.clauses.addLiteral(clauseID, variableID, negated)
	return nil
}

// ApplyUnit forces variableID to value immediately, bypassing the watch
// index (which does not exist yet at parse time). The caller — normally
// internal/dimacs, which knows a clause had exactly one literal — decides
// when to call this. Two contradictory unit clauses are not treated as an
// invariant violation: the conflict is recorded and Solve reports UNSAT
// without ever entering the search loop.
func (p *Problem) ApplyUnit(variableID int, value bool) error {
	if variableID < 1 || variableID >= p.variableCount {
		return &RangeError{Op: "ApplyUnit", Msg: fmt.Sprintf("variable id %d out of range [1,%d)", variableID, p.variableCount)}
	}
	if p.unsatAtParse {
		return nil
	}
	if p.asg.IsAssigned(variableID) {
		if p.asg.ValueOf(variableID) != value {
			p.unsatAtParse = true
		}
		return nil
	}
	p.asg.Assign(variableID, value, p.prop)
	return nil
}

// Cancel requests that an in-progress Solve stop at the next decision
// boundary. Safe to call from another goroutine.
func (p *Problem) Cancel() {
	atomic.StoreInt32(&p.cancelled, 1)
}

func (p *Problem) cancelRequested() bool {
	return atomic.LoadInt32(&p.cancelled) != 0
}

// Stats reports search effort accumulated by the most recent Solve call.
func (p *Problem) Stats() Stats {
	return p.stats
}

// Value reports the assigned truth value of a variable after a SAT
// result. Meaningless if the variable was never assigned.
func (p *Problem) Value(variableID int) bool {
	return p.asg.ValueOf(variableID)
}

// VariableCount returns V, the user-facing variable count (excluding the
// internal sentinel).
func (p *Problem) VariableCount() int {
	return p.variableCount - 1
}

// build finalizes the literal-occurrence counters into the chosen
// heuristic's static ordering and constructs the watch index. Runs once,
// lazily, on the first Solve call.
func (p *Problem) build() {
	if p.built {
		return
	}
	p.built = true

	if p.heuristicKind == TwoClause {
		for c := 0; c < p.clauseCount; c++ {
			if p.clauseWidth[c] != 2 {
				continue
			}
			row := p.clauses.rowStart(c)
			for w := 0; w < p.clauses.wordsPerClause; w++ {
				word := p.clauses.membership[row+w]
				for word != 0 {
					bit := word & (-word)
					word &^= bit
					v := w*64 + trailingZeros(bit)
					if v == 0 {
						continue
					}
					p.twoClauseOccurrences[v]++
				}
			}
		}
	}

	switch p.heuristicKind {
	case Random:
		p.h = newRandomHeuristic(p.rng, p.variableCount)
	case TwoClause:
		p.h = newTwoClauseHeuristic(p.variableCount, p.twoClauseOccurrences)
	case Polarity:
		p.h = newPolarityHeuristic(p.variableCount, p.posCount, p.negCount)
	default:
		invariant(false, "build", fmt.Sprintf("unknown heuristic %v", p.heuristicKind))
	}

	p.watch = buildWatchIndex(p.clauses, p.asg)
}

// decide pushes a new decision frame and assigns the chosen variable.
func (p *Problem) decide(variable int, value bool) {
	snap := p.asg.snapshot(p.dec.takeBuffer())
	p.dec.push(variable, value, snap)
	p.asg.Assign(variable, value, p.prop)
	p.stats.Splits++
}

// backtrack implements chronological backtracking (spec §4.D/§4.H): pop
// frames whose both values have already been tried, then flip the first
// frame found with a value still untried. Returns false once the decision
// stack empties with nothing left to flip, meaning the problem is UNSAT.
func (p *Problem) backtrack() bool {
	for !p.dec.empty() {
		top := p.dec.top()
		p.asg.restore(top.snapshot)
		if !top.triedBoth {
			top.triedBoth = true
			top.value = !top.value
			p.asg.Assign(top.variable, top.value, p.prop)
			return true
		}
		frame := p.dec.pop()
		p.dec.releaseBuffer(frame.snapshot)
	}
	return false
}

// Solve runs the DPLL search to completion (or until Cancel is called)
// and reports SAT/UNSAT. A non-nil error means the search could not
// finish conclusively: either ErrCancelled, or an *InvariantError if the
// final verification pass finds a clause the search left unsatisfied,
// which indicates a bug in the solver rather than in the input formula.
func (p *Problem) Solve() (Result, error) {
	if p.unsatAtParse {
		return Unsat, nil
	}

	p.build()

	// buildWatchIndex deliberately omits watch entries for variables
	// already assigned when it runs, so a clause whose every variable was
	// forced by a parse-time unit clause has no watch entry anywhere and
	// unitPropagate's LIFO walk can never reach it. Such a clause can still
	// be falsified (e.g. two unit clauses (1) and (2) with a third clause
	// (-1 -2)), so it needs a direct scan rather than a propagation pass.
	if p.scanForConflict() {
		return Unsat, nil
	}

	for {
		if p.cancelRequested() {
			return Unresolved, ErrCancelled
		}

		variable := p.h.chooseVariable(p.asg)
		if variable == 0 {
			break
		}

		p.decide(variable, p.h.chooseValue(variable))

		for unitPropagate(p.clauses, p.asg, p.watch, p.prop, &p.stats) == conflict {
			p.stats.Backtracks++
			if !p.backtrack() {
				return Unsat, nil
			}
		}
	}

	if err := p.verify(); err != nil {
		return Unresolved, err
	}
	return Sat, nil
}

// verify is the paranoid final pass: every clause must have at least one
// satisfied literal once every variable is assigned. A failure here means
// the search loop above has a bug, not that the input was unsatisfiable.
func (p *Problem) verify() error {
	for v := 1; v < p.variableCount; v++ {
		if !p.asg.IsAssigned(v) {
			return &InvariantError{Op: "verify", Msg: fmt.Sprintf("variable %d left unassigned", v)}
		}
	}
	for c := 0; c < p.clauseCount; c++ {
		satisfied, _ := p.classifyClause(c)
		if !satisfied {
			return &InvariantError{Op: "verify", Msg: fmt.Sprintf("clause %d has no satisfied literal", c)}
		}
	}
	return nil
}

// scanForConflict directly classifies every clause's current satisfied/
// falsified/unresolved status against the live assignment, rather than
// relying on unitPropagate's watch-triggered walk. It exists specifically
// for the gap buildWatchIndex's skip-already-assigned rule leaves open: a
// clause with no unassigned variable left and no satisfied literal is a
// conflict no watch list will ever surface.
func (p *Problem) scanForConflict() bool {
	for c := 0; c < p.clauseCount; c++ {
		satisfied, hasUnknown := p.classifyClause(c)
		if !satisfied && !hasUnknown {
			return true
		}
	}
	return false
}

// classifyClause reports whether clauseID is already satisfied by the live
// assignment and, if not, whether it still has at least one unassigned
// member variable.
func (p *Problem) classifyClause(clauseID int) (satisfied, hasUnknown bool) {
	row := p.clauses.rowStart(clauseID)
	for w := 0; w < p.clauses.wordsPerClause; w++ {
		memWord := p.clauses.membership[row+w]
		negWord := p.clauses.negations[row+w]
		unassignedWord := p.asg.unassigned[w] & memWord
		assignedWord := memWord &^ unassignedWord

		posAssignedTrue := assignedWord &^ negWord & p.asg.values[w]
		negAssignedTrue := assignedWord & negWord &^ p.asg.values[w]
		if posAssignedTrue|negAssignedTrue != 0 {
			return true, false
		}
		if unassignedWord != 0 {
			hasUnknown = true
		}
	}
	return false, hasUnknown
}
