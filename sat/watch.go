package sat

// watchNode is one link of a variable's watch list: the clause it belongs
// to and whether the variable appears negated there.
type watchNode struct {
	clauseID int
	negated  bool
	next     *watchNode
}

// watchIndex is spec §4.E: one singly linked list per variable, built once
// after parse-time unit propagation and never rebuilt or pruned as
// variables get assigned during search.
type watchIndex struct {
	lists []*watchNode
}

// buildWatchIndex walks every clause once and prepends a node to each
// variable it mentions that is still unassigned at build time — variables
// already forced by parse-time unit propagation need no watch entry since
// they will never be the cause of a future propagation through this path.
func buildWatchIndex(cs *clauseStore, asg *assignment) *watchIndex {
	wi := &watchIndex{lists: make([]*watchNode, cs.variableCount)}
	for c := 0; c < cs.clauseCount; c++ {
		row := cs.rowStart(c)
		for w := 0; w < cs.wordsPerClause; w++ {
			word := cs.membership[row+w]
			negWord := cs.negations[row+w]
			for word != 0 {
				bit := word & -word
				word &^= bit
				v := w*64 + trailingZeros(bit)
				if v == 0 || asg.IsAssigned(v) {
					continue
				}
				wi.lists[v] = &watchNode{clauseID: c, negated: negWord&bit != 0, next: wi.lists[v]}
			}
		}
	}
	return wi
}
