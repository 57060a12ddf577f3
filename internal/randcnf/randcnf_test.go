package randcnf

import "testing"

func TestGenerateProducesWidthThreeClauses(t *testing.T) {
	_, clauses := Generate(Options{VariableCount: 50, Ratio: 4.2, Seed: 7})
	wantClauses := int(50 * 4.2)
	if len(clauses) != wantClauses {
		t.Fatalf("want %d clauses, got %d", wantClauses, len(clauses))
	}
	for _, c := range clauses {
		if len(c) != 3 {
			t.Fatalf("want width-3 clause, got %v", c)
		}
		seen := map[int]bool{}
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if v < 1 || v > 50 {
				t.Fatalf("literal %d out of range", lit)
			}
			if seen[v] {
				t.Fatalf("duplicate variable %d within clause %v", v, c)
			}
			seen[v] = true
		}
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	_, a := Generate(Options{VariableCount: 20, Ratio: 3, Seed: 99})
	_, b := Generate(Options{VariableCount: 20, Ratio: 3, Seed: 99})
	if len(a) != len(b) {
		t.Fatalf("length mismatch")
	}
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("clause %d literal %d differs: %d vs %d", i, j, a[i][j], b[i][j])
			}
		}
	}
}

func TestSuiteCoversEveryRatioStep(t *testing.T) {
	instances := Suite(50, 3.0, 3.4, 0.2, 2, 1)
	// ratios 3.0, 3.2, 3.4 => 3 steps * 2 per ratio = 6 instances
	if len(instances) != 6 {
		t.Fatalf("want 6 instances, got %d", len(instances))
	}
}
