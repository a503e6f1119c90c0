package catalog

import (
	"github.com/coldb/coldb/chunk"
	"github.com/coldb/coldb/column"
	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/wire"
)

// NewChunk allocates an empty chunk matching t's schema, with startAt as
// the new chunk's grid origin -- the construction path a shard's rollover
// logic calls.
func (t *Table) NewChunk(startAt int64) *chunk.MutableChunk {
	labels := make([]*column.LabelColumn, len(t.Meta.Schema.Labels))
	for i, ls := range t.Meta.Schema.Labels {
		var idx *index.Impl
		if ls.Indexed {
			switch ls.IndexKind {
			case index.KindInverted:
				idx = index.NewInverted()
			case index.KindSparse:
				idx = index.NewSparse(ls.SparseBlockSize)
			}
		}
		switch ls.Kind {
		case wire.LabelString:
			labels[i] = column.NewStringLabelColumn(idx)
		case wire.LabelIPv4:
			labels[i] = column.NewIPv4LabelColumn(idx)
		case wire.LabelIPv6:
			labels[i] = column.NewIPv6LabelColumn(idx)
		case wire.LabelInt:
			labels[i] = column.NewIntLabelColumn(idx)
		case wire.LabelBool:
			labels[i] = column.NewBoolLabelColumn(idx)
		}
	}
	fields := make([]*column.FieldColumn, len(t.Meta.Schema.Fields))
	for i, fs := range t.Meta.Schema.Fields {
		fields[i] = column.NewFieldColumn(fs.Kind, t.Meta.ChunkWidth)
	}
	return chunk.New(labels, fields, chunk.Meta{
		StartAt: startAt,
		Unit:    t.Meta.ChunkUnit,
		Width:   t.Meta.ChunkWidth,
	})
}
