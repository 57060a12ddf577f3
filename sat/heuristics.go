package sat

import "sort"

// heuristic chooses the next branching variable and its trial value. All
// three implementations are built once, after every clause has been added
// (TWO_CLAUSE and POLARITY from literal-occurrence counts), and never
// touched again during search — spec.md's design notes are explicit that this is not VSIDS and
// must not re-rank mid-search.
type heuristic interface {
	// chooseVariable returns the next unassigned variable, or 0 if none
	// remains (variable ids are always >= 1; 0 is reserved for the
	// sentinel and is never a valid answer).
	chooseVariable(asg *assignment) int
	chooseValue(variable int) bool
}

// randomHeuristic picks uniformly among the currently unassigned
// variables and flips a coin for the trial value. Because membership is
// scanned at decision time rather than precomputed, it never needs to
// skip already-assigned entries in a static ordering.
type randomHeuristic struct {
	rng           *RNG
	variableCount int
}

func newRandomHeuristic(rng *RNG, variableCount int) *randomHeuristic {
	return &randomHeuristic{rng: rng, variableCount: variableCount}
}

func (h *randomHeuristic) chooseVariable(asg *assignment) int {
	free := make([]int, 0, h.variableCount)
	for v := 1; v < h.variableCount; v++ {
		if !asg.IsAssigned(v) {
			free = append(free, v)
		}
	}
	if len(free) == 0 {
		return 0
	}
	return free[h.rng.Intn(len(free))]
}

func (h *randomHeuristic) chooseValue(int) bool {
	return h.rng.Bool()
}

// staticPriorityHeuristic is the shared shape of TWO_CLAUSE and POLARITY:
// a fixed variable ordering computed once, walked front-to-back at every
// decision to find the first still-unassigned entry.
type staticPriorityHeuristic struct {
	priority  []int
	trueFirst []bool // per-variable initial trial value, indexed by variable id
}

func (h *staticPriorityHeuristic) chooseVariable(asg *assignment) int {
	for _, v := range h.priority {
		if !asg.IsAssigned(v) {
			return v
		}
	}
	return 0
}

func (h *staticPriorityHeuristic) chooseValue(variable int) bool {
	return h.trueFirst[variable]
}

// newTwoClauseHeuristic ranks variables by how many 2-literal clauses they
// appear in, descending — the intuition being that short clauses are the
// most likely to become unit and cause a conflict soon, so resolving them
// first cuts the search tree down early.
func newTwoClauseHeuristic(variableCount int, twoClauseOccurrences []int) *staticPriorityHeuristic {
	priority := makeVariableRange(variableCount)
	sort.SliceStable(priority, func(i, j int) bool {
		return twoClauseOccurrences[priority[i]] > twoClauseOccurrences[priority[j]]
	})
	trueFirst := make([]bool, variableCount)
	for v := range trueFirst {
		trueFirst[v] = true
	}
	return &staticPriorityHeuristic{priority: priority, trueFirst: trueFirst}
}

// newPolarityHeuristic ranks variables by their dominant literal count
// (max of positive and negative occurrences across all clauses) and
// biases the initial trial value toward whichever polarity is more
// common for that variable, on the theory that satisfying the majority
// polarity first is more likely to avoid an immediate conflict.
func newPolarityHeuristic(variableCount int, posCount, negCount []int) *staticPriorityHeuristic {
	weight := make([]int, variableCount)
	trueFirst := make([]bool, variableCount)
	for v := 0; v < variableCount; v++ {
		if posCount[v] > negCount[v] {
			weight[v] = posCount[v]
			trueFirst[v] = true
		} else {
			weight[v] = negCount[v]
			trueFirst[v] = false
		}
	}
	priority := makeVariableRange(variableCount)
	sort.SliceStable(priority, func(i, j int) bool {
		return weight[priority[i]] > weight[priority[j]]
	})
	return &staticPriorityHeuristic{priority: priority, trueFirst: trueFirst}
}

func makeVariableRange(variableCount int) []int {
	vars := make([]int, 0, variableCount-1)
	for v := 1; v < variableCount; v++ {
		vars = append(vars, v)
	}
	return vars
}
