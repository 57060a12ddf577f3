package formula

import (
	"testing"

	"github.com/xDarkicex/gosat/sat"
)

func solve(t *testing.T, enc *Encoding) (sat.Result, *sat.Problem) {
	t.Helper()
	p, err := sat.New(enc.VariableCount, len(enc.Clauses), sat.Random, 1)
	if err != nil {
		t.Fatalf("sat.New: %v", err)
	}
	for i, clause := range enc.Clauses {
		for _, lit := range clause {
			v := lit
			negated := v < 0
			if negated {
				v = -v
			}
			if err := p.AddLiteral(i, v, negated); err != nil {
				t.Fatalf("AddLiteral: %v", err)
			}
		}
	}
	result, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return result, p
}

func TestAndRequiresBothTrue(t *testing.T) {
	enc := Encode(And(Var("a"), Var("b")))
	result, p := solve(t, enc)
	if result != sat.Sat {
		t.Fatalf("want SAT, got %v", result)
	}
	if !p.Value(enc.Names["a"]) || !p.Value(enc.Names["b"]) {
		t.Fatalf("want a and b both true")
	}
}

func TestContradictionIsUnsat(t *testing.T) {
	enc := Encode(And(Var("a"), Not(Var("a"))))
	result, _ := solve(t, enc)
	if result != sat.Unsat {
		t.Fatalf("want UNSAT, got %v", result)
	}
}

func TestImpliesForcesConsequent(t *testing.T) {
	enc := Encode(And(Var("a"), Implies(Var("a"), Var("b"))))
	result, p := solve(t, enc)
	if result != sat.Sat {
		t.Fatalf("want SAT, got %v", result)
	}
	if !p.Value(enc.Names["b"]) {
		t.Fatalf("implication did not force b true")
	}
}

func TestUniqueAllowsExactlyOne(t *testing.T) {
	enc := Encode(Unique(Var("a"), Var("b"), Var("c")))
	result, p := solve(t, enc)
	if result != sat.Sat {
		t.Fatalf("want SAT, got %v", result)
	}
	trueCount := 0
	for _, name := range []string{"a", "b", "c"} {
		if p.Value(enc.Names[name]) {
			trueCount++
		}
	}
	if trueCount != 1 {
		t.Fatalf("want exactly one true, got %d", trueCount)
	}
}
