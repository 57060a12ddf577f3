package riddle

import (
	"testing"

	"github.com/xDarkicex/gosat/sat"
)

func categoryOf(key string) string {
	for i, c := range key {
		if c == ':' {
			return key[:i]
		}
	}
	return key
}

func TestRiddleIsSatisfiableWithForcedConstraints(t *testing.T) {
	enc := Encode()

	p, err := sat.New(enc.VariableCount, len(enc.Clauses), sat.Polarity, 1)
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
	if result != sat.Sat {
		t.Fatalf("want SAT, got %v", result)
	}

	model := Interpret(enc, p.Value)
	if model["drink:milk"] != 3 {
		t.Fatalf("want milk in house 3, got %d", model["drink:milk"])
	}
	if model["nation:norwegian"] != 1 {
		t.Fatalf("want norwegian in house 1, got %d", model["nation:norwegian"])
	}

	seenHouse := make(map[string]map[int]bool)
	for key, house := range model {
		cat := categoryOf(key)
		if seenHouse[cat] == nil {
			seenHouse[cat] = make(map[int]bool)
		}
		if seenHouse[cat][house] {
			t.Fatalf("category %s assigned two values to house %d", cat, house)
		}
		seenHouse[cat][house] = true
	}
}
