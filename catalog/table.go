package catalog

// Table is a named, schema-bound collection of per-worker shards (spec.md
// section 3). Tables are immutable after creation: Meta and the shard count
// never change, only each Shard's own chunk vector grows.
type Table struct {
	Name   string
	Meta   TableMeta
	shards map[int]*Shard
}

// newTable allocates a table with one empty shard per worker. Pre-allocating
// every worker's shard at creation time (rather than lazily on first write)
// avoids a concurrent map write the first time two workers touch a brand new
// table at once.
func newTable(name string, meta TableMeta, numWorkers int) *Table {
	t := &Table{Name: name, Meta: meta, shards: make(map[int]*Shard, numWorkers)}
	for w := 0; w < numWorkers; w++ {
		t.shards[w] = NewShard()
	}
	return t
}

// Shard returns the shard owned by worker w, or nil if w is out of the
// table's configured worker range.
func (t *Table) Shard(w int) *Shard { return t.shards[w] }

// NumShards reports how many per-worker shards this table has.
func (t *Table) NumShards() int { return len(t.shards) }
