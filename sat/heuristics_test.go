package sat

import "testing"

// TestPolarityHeuristicTiesPreferFalse matches spec.md §4.G's strict
// inequality: a tie between positive and negative occurrence counts must
// resolve to a false trial value, not true.
func TestPolarityHeuristicTiesPreferFalse(t *testing.T) {
	posCount := []int{0, 3, 3, 5}
	negCount := []int{0, 3, 2, 5}
	h := newPolarityHeuristic(4, posCount, negCount)

	if h.chooseValue(1) {
		t.Fatalf("variable 1 is tied 3/3, want trueFirst=false")
	}
	if !h.chooseValue(2) {
		t.Fatalf("variable 2 has posCount > negCount, want trueFirst=true")
	}
	if h.chooseValue(3) {
		t.Fatalf("variable 3 is tied 5/5, want trueFirst=false")
	}
}
