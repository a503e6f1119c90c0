package chunk

import (
	"github.com/coldb/coldb/bitmap"
	"github.com/coldb/coldb/column"
	"github.com/coldb/coldb/sched"
	"github.com/coldb/coldb/wire"
)

// MutableChunk is the append-only unit of storage a shard holds: parallel
// label and field columns plus the time-grid Meta (spec.md section 3). The
// Rust original tracks a separate indices slice parallel to labels; here
// each LabelColumn already owns its own optional index (see
// column.LabelColumn.Index), so the 1-to-1 invariant holds by construction
// rather than by a second parallel slice.
type MutableChunk struct {
	Labels []*column.LabelColumn
	Fields []*column.FieldColumn
	Meta   Meta
}

// New returns an empty chunk over the given label/field columns (already
// constructed with whatever secondary indices the schema calls for) and
// time-grid metadata.
func New(labels []*column.LabelColumn, fields []*column.FieldColumn, meta Meta) *MutableChunk {
	return &MutableChunk{Labels: labels, Fields: fields, Meta: meta}
}

// Len reports the number of rows currently pushed.
func (c *MutableChunk) Len() int {
	if len(c.Labels) == 0 {
		return 0
	}
	return c.Labels[0].Len()
}

// Intersects reports whether the chunk's absolute time range overlaps r; the
// scan executor uses this to decide whether a chunk participates in a query
// at all before calling Filter.
func (c *MutableChunk) Intersects(r wire.Range) bool {
	return !c.Meta.Range().Intersect(r).Empty()
}

// Records is the result of a scan: sub-columns restricted to a matching
// row-set and a time slice (spec.md section 3).
type Records struct {
	Labels []*column.LabelColumn
	Fields []*column.FieldColumn
}

// Push appends one row: labelValues and fieldSamples must align 1-to-1 with
// c.Labels and c.Fields.
func (c *MutableChunk) Push(labelValues []*wire.LabelValue, fieldSamples []column.Sample) {
	for i, v := range labelValues {
		c.Labels[i].Push(v)
	}
	for i, s := range fieldSamples {
		c.Fields[i].Push(s)
	}
}

// Filter implements spec.md section 4.6's MutableChunk::filter: index
// pruning, an exactness-gated verification pass, then projection + time
// slicing. matchers has length len(c.Labels); a nil entry means "no
// predicate on this column".
func (c *MutableChunk) Filter(cx *sched.Context, matchers []*wire.MatcherOp, proj Projection, timeRange wire.Range) (*Records, error) {
	rowSet := bitmap.FromRangeSet(0, uint64(c.Len()))

	type pending struct {
		idx int
		op  wire.MatcherOp
	}
	var verify []pending

	// Step 1: index prune (synchronous, no yield). Regex matchers are
	// skipped here; literal matchers whose value was never seen short-
	// circuit the whole chunk to an empty Records, per spec.md section 4.6
	// step 1.
	for i, m := range matchers {
		if m == nil {
			continue
		}
		if m.Kind.IsRegex() {
			verify = append(verify, pending{i, *m})
			continue
		}
		lbl := c.Labels[i]
		valueID, ok := lbl.LookupValueID(m.Value)
		if !ok {
			return &Records{}, nil
		}
		idx := lbl.Index()
		if idx == nil {
			verify = append(verify, pending{i, *m})
			continue
		}
		idx.Filter(m.Kind.Positive(), valueID, &rowSet)
		// Step 2 (exactness test): only an approximate index's candidates
		// need the exact-verification pass below.
		if !idx.Exactly() {
			verify = append(verify, pending{i, *m})
		}
	}

	// Step 3: exact verification. Labels[p.idx].Filter yields per row it
	// considers, not once per matcher here.
	for _, p := range verify {
		if err := c.Labels[p.idx].Filter(cx, p.op, &rowSet); err != nil {
			return nil, err
		}
	}

	return c.project(cx, rowSet, proj, timeRange)
}

// project is spec.md section 4.6 step 4: for each projected label column,
// re-push matching rows' values into a fresh column; for each projected
// field column, slice each matching row's window to the time range's
// sample-index bounds.
func (c *MutableChunk) project(cx *sched.Context, rowSet bitmap.Set, proj Projection, timeRange wire.Range) (*Records, error) {
	s, e := c.sampleRange(timeRange)

	rec := &Records{}
	for _, li := range proj.Labels {
		src := c.Labels[li]
		dst := column.NewLabelColumnLike(src.Kind())
		rowSet.Bitmap().Iterate(func(row uint32) bool {
			if cx.Take() {
				cx.YieldNow()
			}
			dst.Push(src.ValueAt(int(row)))
			return true
		})
		rec.Labels = append(rec.Labels, dst)
	}

	width := e - s
	degenerate := width <= 0
	if degenerate {
		width = 1
	}
	for _, fi := range proj.Fields {
		src := c.Fields[fi]
		dst := column.NewFieldColumn(src.Kind(), width)
		rowSet.Bitmap().Iterate(func(row uint32) bool {
			if cx.Take() {
				cx.YieldNow()
			}
			if degenerate {
				dst.PushZero()
				return true
			}
			w, _ := src.Get(int(row))
			dst.Push(w.Slice(s, e))
			return true
		})
		rec.Fields = append(rec.Fields, dst)
	}
	return rec, nil
}

// sampleRange clips timeRange to the chunk's own range and maps the result
// to a half-open sample-index range [s, e) over the chunk's Width, per
// spec.md section 4.6 step 4.
func (c *MutableChunk) sampleRange(timeRange wire.Range) (s, e int) {
	clipped := timeRange.Intersect(c.Meta.Range())
	if clipped.Empty() || c.Meta.Unit <= 0 {
		return 0, 0
	}
	s = int((clipped.Start - c.Meta.StartAt) / c.Meta.Unit)
	e = int((clipped.End - c.Meta.StartAt) / c.Meta.Unit)
	if s < 0 {
		s = 0
	}
	if e > c.Meta.Width {
		e = c.Meta.Width
	}
	if e < s {
		e = s
	}
	return s, e
}
