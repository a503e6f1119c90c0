// Package catalog implements the table catalog: named tables, their
// schemas, and per-worker data shards (spec.md section 3/5/6, SPEC_FULL.md
// component J).
package catalog

import (
	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/wire"
)

// LabelSchema describes one label column: its name, wire kind, and the
// secondary index kind it should be built with (IndexKind is only
// meaningful when Indexed is true).
type LabelSchema struct {
	Name      string
	Kind      wire.LabelKind
	Indexed   bool
	IndexKind index.Kind
	// SparseBlockSize is only read when IndexKind == index.KindSparse.
	SparseBlockSize uint32
}

// FieldSchema describes one field column: its name and wire kind.
type FieldSchema struct {
	Name string
	Kind wire.FieldKind
}

// Schema is a table's ordered label and field column list (spec.md
// section 3).
type Schema struct {
	Labels []LabelSchema
	Fields []FieldSchema
}

// LabelOrdinal returns the ordinal id of the label named name, or -1 if the
// schema has no such column.
func (s Schema) LabelOrdinal(name string) int {
	for i, l := range s.Labels {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// FieldOrdinal returns the ordinal id of the field named name, or -1 if the
// schema has no such column.
func (s Schema) FieldOrdinal(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// TableMeta is the argument to DB.CreateTable: a table's schema plus the
// time-grid parameters new chunks are rolled over with.
type TableMeta struct {
	Schema     Schema
	ChunkWidth int
	ChunkUnit  int64
}
