package sat

// assignment holds the two aligned bitmaps from spec §4.B: unassigned
// (1 = still free) and values (meaningful only where unassigned is 0).
// Variable 0, the sentinel, is forced true at construction and never
// touched again.
type assignment struct {
	variableCount int
	words         int
	unassigned    []uint64
	values        []uint64
}

func newAssignment(variableCount int) *assignment {
	w := wordsPerClause(variableCount)
	a := &assignment{
		variableCount: variableCount,
		words:         w,
		unassigned:    make([]uint64, w),
		values:        make([]uint64, w),
	}
	for v := 0; v < variableCount; v++ {
		word, mask := wordMask(v)
		a.unassigned[word] |= mask
	}
	// sentinel variable 0 is always true and always assigned.
	a.clearUnassigned(0)
	a.setValue(0, true)
	return a
}

func (a *assignment) clearUnassigned(v int) {
	word, mask := wordMask(v)
	a.unassigned[word] &^= mask
}

func (a *assignment) setValue(v int, value bool) {
	word, mask := wordMask(v)
	if value {
		a.values[word] |= mask
	} else {
		a.values[word] &^= mask
	}
}

func (a *assignment) IsAssigned(v int) bool {
	word, mask := wordMask(v)
	return a.unassigned[word]&mask == 0
}

func (a *assignment) ValueOf(v int) bool {
	word, mask := wordMask(v)
	return a.values[word]&mask != 0
}

// Assign forces v to value and pushes the corresponding entry onto ps.
// Precondition: v must currently be unassigned — violating this is the
// internal-bug class spec §7 describes, so it panics via invariant.
func (a *assignment) Assign(v int, value bool, ps *propagationStack) {
	invariant(!a.IsAssigned(v), "Assign", "variable already assigned")
	a.clearUnassigned(v)
	a.setValue(v, value)
	ps.push(v, value)
}

// snapshot copies the unassigned bitmap only — spec.md's design notes
// observe that values never needs restoring because a freshly-unassigned
// variable's stale value bit is simply ignored until reassigned.
func (a *assignment) snapshot(buf []uint64) []uint64 {
	if cap(buf) < a.words {
		buf = make([]uint64, a.words)
	}
	buf = buf[:a.words]
	copy(buf, a.unassigned)
	return buf
}

func (a *assignment) restore(snap []uint64) {
	copy(a.unassigned, snap)
}
