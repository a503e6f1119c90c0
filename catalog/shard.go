package catalog

import (
	"sync"

	"github.com/coldb/coldb/chunk"
)

// Shard is one worker's exclusive slice of a table's chunks (spec.md
// section 3: "Table{..., shards: ThreadLocalMap<worker_id, ShardRef>};
// each shard owns its own vector of mutable chunks"). The owning worker is
// the only writer; other workers only read during a scan fan-out, so Shard
// carries its own RWMutex -- a pragmatic addition beyond spec.md's prose
// (which assumes single-writer/many-reader safety implicitly), needed
// because Go slices are not safe for concurrent append alongside range.
type Shard struct {
	mu     sync.RWMutex
	Chunks []*chunk.MutableChunk
}

// NewShard returns an empty shard.
func NewShard() *Shard { return &Shard{} }

// Append adds a newly-rolled-over chunk to the shard. Only the owning
// worker should call this.
func (s *Shard) Append(c *chunk.MutableChunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Chunks = append(s.Chunks, c)
}

// Snapshot returns the shard's current chunk list. Safe to call from any
// worker; the returned slice header is a stable snapshot even if Append
// races with it afterward.
func (s *Shard) Snapshot() []*chunk.MutableChunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*chunk.MutableChunk, len(s.Chunks))
	copy(out, s.Chunks)
	return out
}
