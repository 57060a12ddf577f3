package sat

import "math/bits"

// propagateResult distinguishes a clean propagation pass from one that hit
// a falsified clause. It is separate from the public Result type: a
// conflict here means "this branch is dead", not "the whole problem is
// UNSAT" — that distinction is only made once the decision stack is empty.
type propagateResult int

const (
	noConflict propagateResult = iota
	conflict
)

// unitPropagate drains ps, following spec §4.F: for each forced variable,
// walk its watch list; a clause already satisfied by some other assigned
// literal is skipped, a clause with zero unknown literals and no
// satisfying literal is a conflict, and a clause with exactly one unknown
// literal forces that literal true, which is itself pushed onto ps.
// Literal choice within a clause ties on the lowest-numbered unassigned
// variable (bits.TrailingZeros64), matching the original's __builtin_ctzll.
func unitPropagate(cs *clauseStore, asg *assignment, wi *watchIndex, ps *propagationStack, stats *Stats) propagateResult {
	for {
		entry, ok := ps.pop()
		if !ok {
			return noConflict
		}

		for node := wi.lists[entry.variable]; node != nil; node = node.next {
			literalValue := entry.value
			if node.negated {
				literalValue = !literalValue
			}
			if literalValue {
				continue
			}

			stats.Propagations++

			clauseID := node.clauseID
			row := cs.rowStart(clauseID)

			satisfied := false
			unknownCount := 0
			unknownWord := -1
			var unknownBits uint64

			for w := 0; w < cs.wordsPerClause; w++ {
				memWord := cs.membership[row+w]
				negWord := cs.negations[row+w]
				unassignedWord := asg.unassigned[w] & memWord
				assignedWord := memWord &^ unassignedWord

				posAssignedTrue := assignedWord &^ negWord & asg.values[w]
				negAssignedTrue := assignedWord & negWord &^ asg.values[w]
				if posAssignedTrue|negAssignedTrue != 0 {
					satisfied = true
					break
				}

				if unassignedWord != 0 {
					unknownCount += bits.OnesCount64(unassignedWord)
					unknownWord = w
					unknownBits = unassignedWord
					if unknownCount > 1 {
						break
					}
				}
			}

			if satisfied {
				continue
			}

			switch unknownCount {
			case 0:
				ps.clear()
				return conflict
			case 1:
				v := unknownWord*64 + trailingZeros(unknownBits)
				value := !cs.isNegated(clauseID, v)
				asg.Assign(v, value, ps)
			default:
				// two or more unknown literals remain; nothing forced yet.
			}
		}
	}
}
