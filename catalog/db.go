package catalog

import (
	"sync"

	"github.com/grailbio/base/log"

	"github.com/coldb/coldb/coldberr"
)

// DB is the table catalog: named tables plus the (supplemented, spec.md
// section 6) tag multimap, guarded by a single reader-writer lock. Table
// creation takes the write lock; scans take the read lock briefly to
// resolve a name to a *Table and then operate on that immutable handle
// without holding the lock further (spec.md section 5's shared-resource
// policy).
type DB struct {
	mu sync.RWMutex

	tables map[string]*Table
	// tagIndex is the reverse index DB.tag populates: tagKey -> tagValue ->
	// set of table names carrying that tag. This is coldb's "index" field
	// from spec.md's DB{tables, index, tags} (the original's intent for
	// this auxiliary field is not pinned down further by spec.md; a
	// tag-value reverse index is the natural read path for a catalog-level
	// tag system, so that is what it is grounded as here -- see DESIGN.md).
	tagIndex map[string]map[string]map[string]struct{}
	// tags is the forward direction: table name -> tag key -> values.
	tags map[string]map[string][]string

	numWorkers int
}

// New returns an empty catalog sized for numWorkers scan workers.
func New(numWorkers int) *DB {
	return &DB{
		tables:     make(map[string]*Table),
		tagIndex:   make(map[string]map[string]map[string]struct{}),
		tags:       make(map[string]map[string][]string),
		numWorkers: numWorkers,
	}
}

// CreateTable registers a new table, returning coldberr.TableExists if name
// is already taken.
func (db *DB) CreateTable(name string, meta TableMeta) (*Table, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.tables[name]; ok {
		return nil, &coldberr.TableExists{Name: name}
	}
	t := newTable(name, meta, db.numWorkers)
	db.tables[name] = t
	log.Debug.Printf("catalog: created table %q with %d labels, %d fields, %d shards",
		name, len(meta.Schema.Labels), len(meta.Schema.Fields), db.numWorkers)
	return t, nil
}

// Get resolves name to its Table, ok is false if no such table is
// registered.
func (db *DB) Get(name string) (*Table, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	t, ok := db.tables[name]
	return t, ok
}

// Tag adds a multi-valued tag to table (spec.md section 6's DB.tag); it is
// inert with respect to the scan path, same as in the original.
func (db *DB) Tag(table, key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.tables[table]; !ok {
		return &coldberr.ResourceNotExists{Name: table}
	}
	if db.tags[table] == nil {
		db.tags[table] = make(map[string][]string)
	}
	db.tags[table][key] = append(db.tags[table][key], value)

	if db.tagIndex[key] == nil {
		db.tagIndex[key] = make(map[string]map[string]struct{})
	}
	if db.tagIndex[key][value] == nil {
		db.tagIndex[key][value] = make(map[string]struct{})
	}
	db.tagIndex[key][value][table] = struct{}{}
	return nil
}

// TablesByTag returns every table name tagged with key=value.
func (db *DB) TablesByTag(key, value string) []string {
	db.mu.RLock()
	defer db.mu.RUnlock()
	set := db.tagIndex[key][value]
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	return out
}
