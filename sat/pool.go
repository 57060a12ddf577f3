package sat

import "sync"

// snapshotPool recycles the []uint64 buffers the decision stack uses to
// hold a pre-decision copy of the assignment's unassigned bitmap. Spec.md's
// lifecycle notes call for exactly this: an arena of preallocated buffers
// rather than one fresh allocation per decision, since a deep search tree
// can push and pop thousands of these per second.
type snapshotPool struct {
	pool *sync.Pool
}

func newSnapshotPool(words int) *snapshotPool {
	return &snapshotPool{
		pool: &sync.Pool{
			New: func() interface{} {
				return make([]uint64, words)
			},
		},
	}
}

func (p *snapshotPool) get() []uint64 {
	return p.pool.Get().([]uint64)
}

func (p *snapshotPool) put(buf []uint64) {
	p.pool.Put(buf) //nolint:staticcheck // fixed-size buffer, safe to recycle as-is
}
