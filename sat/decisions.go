package sat

// decisionFrame is one entry of the decision stack from spec §4.D. snapshot
// is the unassigned bitmap taken immediately before the decision variable
// itself was assigned, so backtracking restores every variable the
// subsequent propagation touched in one copy.
type decisionFrame struct {
	variable  int
	value     bool
	triedBoth bool
	snapshot  []uint64
}

// decisionStack is the chronological backtracking trail. Freed snapshot
// slices go back to a snapshotPool instead of the garbage collector —
// spec.md §3's Lifecycle section calls this out explicitly ("may be drawn
// from an arena of V+1 preallocated buffers").
type decisionStack struct {
	frames []decisionFrame
	pool   *snapshotPool
}

func newDecisionStack(variableCount int) *decisionStack {
	return &decisionStack{pool: newSnapshotPool(wordsPerClause(variableCount))}
}

func (ds *decisionStack) takeBuffer() []uint64 {
	return ds.pool.get()
}

func (ds *decisionStack) releaseBuffer(buf []uint64) {
	ds.pool.put(buf)
}

// push records a new decision. snapshot must be the assignment's
// unassigned bitmap taken before the decision variable was assigned.
func (ds *decisionStack) push(variable int, value bool, snapshot []uint64) {
	ds.frames = append(ds.frames, decisionFrame{variable: variable, value: value, snapshot: snapshot})
}

func (ds *decisionStack) empty() bool {
	return len(ds.frames) == 0
}

func (ds *decisionStack) len() int {
	return len(ds.frames)
}

func (ds *decisionStack) top() *decisionFrame {
	return &ds.frames[len(ds.frames)-1]
}

// pop discards the top frame and returns it; the caller hands its snapshot
// buffer back through releaseBuffer.
func (ds *decisionStack) pop() decisionFrame {
	n := len(ds.frames)
	f := ds.frames[n-1]
	ds.frames = ds.frames[:n-1]
	return f
}
