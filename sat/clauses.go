package sat

import "math/bits"

// wordsPerClause returns the number of uint64 words needed to hold one bit
// per internal variable, including the sentinel variable 0.
func wordsPerClause(variableCount int) int {
	return (variableCount + 63) / 64
}

func wordMask(variableID int) (word int, mask uint64) {
	return variableID / 64, uint64(1) << uint(variableID%64)
}

// clauseStore is the bit-packed CNF representation from spec §4.A: two
// row-major bitmaps, membership and negations, each wordsPerClause words
// per clause. negations is always a subset of membership.
type clauseStore struct {
	variableCount  int // V+1, sentinel variable 0 included
	clauseCount    int
	wordsPerClause int
	membership     []uint64
	negations      []uint64
}

func newClauseStore(variableCount, clauseCount int) *clauseStore {
	wpc := wordsPerClause(variableCount)
	return &clauseStore{
		variableCount:  variableCount,
		clauseCount:    clauseCount,
		wordsPerClause: wpc,
		membership:     make([]uint64, clauseCount*wpc),
		negations:      make([]uint64, clauseCount*wpc),
	}
}

func (cs *clauseStore) rowStart(clauseID int) int {
	return clauseID * cs.wordsPerClause
}

// addLiteral sets the membership (and, if negated, negation) bit for
// variableID in clauseID. If the variable already appears in the clause
// (duplicate literal, of either polarity), the clause is instead marked
// satisfied by adding the always-true sentinel variable 0 — this is the
// sentinel-variable handling spec.md directs in place of the original's
// unhandled tautology branch. Returns true if this call made the clause
// tautological.
func (cs *clauseStore) addLiteral(clauseID, variableID int, negated bool) bool {
	row := cs.rowStart(clauseID)
	word, mask := wordMask(variableID)
	idx := row + word

	if cs.membership[idx]&mask != 0 {
		cs.markSatisfied(clauseID)
		return true
	}

	cs.membership[idx] |= mask
	if negated {
		cs.negations[idx] |= mask
	}
	return false
}

// markSatisfied forces a clause true by asserting the sentinel variable 0
// positively. Idempotent.
func (cs *clauseStore) markSatisfied(clauseID int) {
	row := cs.rowStart(clauseID)
	cs.membership[row] |= 1
}

func (cs *clauseStore) isSatisfiedBySentinel(clauseID int) bool {
	row := cs.rowStart(clauseID)
	return cs.membership[row]&1 != 0
}

func (cs *clauseStore) membershipWord(clauseID, word int) uint64 {
	return cs.membership[cs.rowStart(clauseID)+word]
}

func (cs *clauseStore) negationWord(clauseID, word int) uint64 {
	return cs.negations[cs.rowStart(clauseID)+word]
}

func (cs *clauseStore) isNegated(clauseID, variableID int) bool {
	word, mask := wordMask(variableID)
	return cs.negationWord(clauseID, word)&mask != 0
}

func (cs *clauseStore) contains(clauseID, variableID int) bool {
	word, mask := wordMask(variableID)
	return cs.membershipWord(clauseID, word)&mask != 0
}

// literalCount counts set membership bits in clauseID; not on the hot path.
func (cs *clauseStore) literalCount(clauseID int) int {
	n := 0
	row := cs.rowStart(clauseID)
	for w := 0; w < cs.wordsPerClause; w++ {
		n += bits.OnesCount64(cs.membership[row+w])
	}
	return n
}
