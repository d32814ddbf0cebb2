package feed

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// postLocks serializes feed operations touching the same post. Striped by
// post ID so operations on different posts proceed in parallel; cross-store
// sequences (existence check + dependent write, cascading delete) run under
// the stripe's write lock so no caller observes a half-applied state.
type postLocks struct {
	stripes [lockStripes]sync.RWMutex
}

func (l *postLocks) stripe(postID string) *sync.RWMutex {
	h := fnv.New32a()
	h.Write([]byte(postID))
	return &l.stripes[h.Sum32()%lockStripes]
}

func (l *postLocks) Lock(postID string) func() {
	mu := l.stripe(postID)
	mu.Lock()
	return mu.Unlock
}

func (l *postLocks) RLock(postID string) func() {
	mu := l.stripe(postID)
	mu.RLock()
	return mu.RUnlock
}
