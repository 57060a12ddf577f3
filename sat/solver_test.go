package sat

import "testing"

func mustNew(t *testing.T, variableCount, clauseCount int, h SplittingHeuristic) *Problem {
	t.Helper()
	p, err := New(variableCount, clauseCount, h, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func addClause(t *testing.T, p *Problem, clauseID int, literals ...int) {
	t.Helper()
	if len(literals) == 1 {
		v := literals[0]
		value := v > 0
		if v < 0 {
			v = -v
		}
		if err := p.ApplyUnit(v, value); err != nil {
			t.Fatalf("ApplyUnit: %v", err)
		}
	}
	for _, lit := range literals {
		v := lit
		negated := v < 0
		if negated {
			v = -v
		}
		if err := p.AddLiteral(clauseID, v, negated); err != nil {
			t.Fatalf("AddLiteral: %v", err)
		}
	}
}

func TestSingleUnitClauseIsSat(t *testing.T) {
	p := mustNew(t, 1, 1, Random)
	addClause(t, p, 0, 1)

	result, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result != Sat {
		t.Fatalf("want SAT, got %v", result)
	}
	if !p.Value(1) {
		t.Fatalf("want variable 1 true")
	}
}

func TestContradictoryUnitsIsUnsat(t *testing.T) {
	p := mustNew(t, 1, 2, Random)
	addClause(t, p, 0, 1)
	addClause(t, p, 1, -1)

	result, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result != Unsat {
		t.Fatalf("want UNSAT, got %v", result)
	}
}

// TestConflictAmongAllUnitForcedVariablesIsUnsat covers a clause whose
// every variable is forced true by a separate unit clause: buildWatchIndex
// skips already-assigned variables, so this clause gets no watch entry
// anywhere and only a direct post-build scan can catch the conflict.
func TestConflictAmongAllUnitForcedVariablesIsUnsat(t *testing.T) {
	p := mustNew(t, 2, 3, Random)
	addClause(t, p, 0, 1)
	addClause(t, p, 1, 2)
	addClause(t, p, 2, -1, -2)

	result, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result != Unsat {
		t.Fatalf("want UNSAT, got %v", result)
	}
}

func TestThreeVariableSatisfiable(t *testing.T) {
	for _, h := range []SplittingHeuristic{Random, TwoClause, Polarity} {
		h := h
		t.Run(h.String(), func(t *testing.T) {
			p := mustNew(t, 3, 3, h)
			addClause(t, p, 0, 1, -2, 3)
			addClause(t, p, 1, -1, 2)
			addClause(t, p, 2, -3, 1)

			result, err := p.Solve()
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if result != Sat {
				t.Fatalf("want SAT, got %v", result)
			}
		})
	}
}

// TestPigeonholeIsUnsat encodes PHP(3,2): three pigeons, two holes, every
// pigeon in some hole, no hole holds two pigeons. Classic unsatisfiable
// instance used to exercise deep backtracking.
func TestPigeonholeIsUnsat(t *testing.T) {
	// variable(p, h) = (p-1)*2 + h, p in {1,2,3}, h in {1,2}
	v := func(pigeon, hole int) int { return (pigeon-1)*2 + hole }

	for _, h := range []SplittingHeuristic{Random, TwoClause, Polarity} {
		h := h
		t.Run(h.String(), func(t *testing.T) {
			const variableCount = 6
			clauses := [][]int{
				{v(1, 1), v(1, 2)},
				{v(2, 1), v(2, 2)},
				{v(3, 1), v(3, 2)},
				{-v(1, 1), -v(2, 1)},
				{-v(1, 1), -v(3, 1)},
				{-v(2, 1), -v(3, 1)},
				{-v(1, 2), -v(2, 2)},
				{-v(1, 2), -v(3, 2)},
				{-v(2, 2), -v(3, 2)},
			}
			p := mustNew(t, variableCount, len(clauses), h)
			for i, c := range clauses {
				addClause(t, p, i, c...)
			}
			result, err := p.Solve()
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if result != Unsat {
				t.Fatalf("want UNSAT, got %v", result)
			}
		})
	}
}

func TestTautologicalClauseIsAlwaysSatisfied(t *testing.T) {
	p := mustNew(t, 2, 1, Random)
	addClause(t, p, 0, 1, -1, 2)

	result, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result != Sat {
		t.Fatalf("want SAT, got %v", result)
	}
}

func TestWordBoundaryVariableCounts(t *testing.T) {
	for _, variableCount := range []int{63, 64, 65, 127, 128, 129} {
		variableCount := variableCount
		t.Run("", func(t *testing.T) {
			p := mustNew(t, variableCount, variableCount, Polarity)
			for i := 1; i <= variableCount; i++ {
				addClause(t, p, i-1, i)
			}
			result, err := p.Solve()
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if result != Sat {
				t.Fatalf("want SAT, got %v", result)
			}
			for i := 1; i <= variableCount; i++ {
				if !p.Value(i) {
					t.Fatalf("variable %d: want true", i)
				}
			}
		})
	}
}

func TestEmptyClauseCountIsTriviallySat(t *testing.T) {
	p := mustNew(t, 5, 0, Random)
	result, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result != Sat {
		t.Fatalf("want SAT, got %v", result)
	}
}

func TestCrossHeuristicAgreementOnRandom3CNF(t *testing.T) {
	const variableCount = 50
	const clauseCount = 150

	gen := NewRNG(42)
	clauses := make([][]int, clauseCount)
	for i := range clauses {
		seen := map[int]bool{}
		lits := make([]int, 0, 3)
		for len(lits) < 3 {
			v := gen.Intn(variableCount) + 1
			if seen[v] {
				continue
			}
			seen[v] = true
			if gen.Bool() {
				v = -v
			}
			lits = append(lits, v)
		}
		clauses[i] = lits
	}

	var results []Result
	for _, h := range []SplittingHeuristic{Random, TwoClause, Polarity} {
		p := mustNew(t, variableCount, clauseCount, h)
		for i, c := range clauses {
			addClause(t, p, i, c...)
		}
		r, err := p.Solve()
		if err != nil {
			t.Fatalf("Solve(%v): %v", h, err)
		}
		results = append(results, r)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatalf("heuristics disagree on satisfiability: %v", results)
		}
	}
}

func TestRangeErrorsOnOutOfBoundsLiteral(t *testing.T) {
	p := mustNew(t, 2, 1, Random)
	if err := p.AddLiteral(0, 3, false); err == nil {
		t.Fatalf("want RangeError for out-of-range variable")
	}
	if err := p.AddLiteral(5, 1, false); err == nil {
		t.Fatalf("want RangeError for out-of-range clause")
	}
}

func TestCancelStopsSearch(t *testing.T) {
	p := mustNew(t, 4, 1, Random)
	addClause(t, p, 0, 1)
	p.Cancel()
	_, err := p.Solve()
	if err != ErrCancelled {
		t.Fatalf("want ErrCancelled, got %v", err)
	}
}
