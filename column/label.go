// Package column implements LabelColumn and FieldColumn, the two
// dictionary/fixed-width column kinds a chunk is built from, plus the
// tagged-union Label/Field value types (spec.md section 3/4.2/4.4/4.5,
// SPEC_FULL.md components C and D).
package column

import (
	"regexp"

	"github.com/coldb/coldb/array"
	"github.com/coldb/coldb/bitmap"
	"github.com/coldb/coldb/coldberr"
	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/sched"
	"github.com/coldb/coldb/wire"
)

// LabelColumn is a dictionary-encoded column over one of the five label
// kinds, with an optional secondary index (nil means "no index; exact
// verification is the only pruning step").
//
// The Rust original models Label/LabelColumn as a single generic type
// parameterized over its backing Array; coldb instead dispatches by an
// explicit kind tag over five concrete IdArray instantiations (spec.md
// section 9's tagged-union design note), matching how index.Impl already
// dispatches Inverted vs Sparse in this module.
type LabelColumn struct {
	kind  wire.LabelKind
	strs  *array.IdArray[string]
	ip4   *array.IdArray[[4]byte]
	ip6   *array.IdArray[[16]byte]
	ints  *array.IdArray[int64]
	bools *array.IdArray[bool]
	idx   *index.Impl
}

// NewStringLabelColumn returns an empty string label column. idx may be nil.
func NewStringLabelColumn(idx *index.Impl) *LabelColumn {
	return &LabelColumn{kind: wire.LabelString, strs: array.NewIdArray[string](), idx: idx}
}

// NewIPv4LabelColumn returns an empty IPv4 label column. idx may be nil.
func NewIPv4LabelColumn(idx *index.Impl) *LabelColumn {
	return &LabelColumn{kind: wire.LabelIPv4, ip4: array.NewIdArray[[4]byte](), idx: idx}
}

// NewIPv6LabelColumn returns an empty IPv6 label column. idx may be nil.
func NewIPv6LabelColumn(idx *index.Impl) *LabelColumn {
	return &LabelColumn{kind: wire.LabelIPv6, ip6: array.NewIdArray[[16]byte](), idx: idx}
}

// NewIntLabelColumn returns an empty int64 label column. idx may be nil.
func NewIntLabelColumn(idx *index.Impl) *LabelColumn {
	return &LabelColumn{kind: wire.LabelInt, ints: array.NewIdArray[int64](), idx: idx}
}

// NewBoolLabelColumn returns an empty bool label column. idx may be nil.
func NewBoolLabelColumn(idx *index.Impl) *LabelColumn {
	return &LabelColumn{kind: wire.LabelBool, bools: array.NewIdArray[bool](), idx: idx}
}

// Kind reports the column's label variant.
func (c *LabelColumn) Kind() wire.LabelKind { return c.kind }

// Index returns the column's secondary index, or nil if it has none.
func (c *LabelColumn) Index() *index.Impl { return c.idx }

// Len reports the number of rows.
func (c *LabelColumn) Len() int {
	switch c.kind {
	case wire.LabelString:
		return c.strs.Len()
	case wire.LabelIPv4:
		return c.ip4.Len()
	case wire.LabelIPv6:
		return c.ip6.Len()
	case wire.LabelInt:
		return c.ints.Len()
	case wire.LabelBool:
		return c.bools.Len()
	default:
		return 0
	}
}

// rowValueID returns the dictionary id stored at row (0 means null).
func (c *LabelColumn) rowValueID(row int) int {
	switch c.kind {
	case wire.LabelString:
		return c.strs.GetUnchecked(row)
	case wire.LabelIPv4:
		return c.ip4.GetUnchecked(row)
	case wire.LabelIPv6:
		return c.ip6.GetUnchecked(row)
	case wire.LabelInt:
		return c.ints.GetUnchecked(row)
	case wire.LabelBool:
		return c.bools.GetUnchecked(row)
	default:
		return 0
	}
}

// stringAt returns the string form of row's value, for regex matching. Only
// meaningful on a string-kind column; callers must check Kind first.
func (c *LabelColumn) stringAt(row int) (string, bool) {
	id := c.strs.GetUnchecked(row)
	if id == 0 {
		return "", false
	}
	v, _ := c.strs.ValueByID(id)
	return v, true
}

// Push appends one row, inserting into the secondary index if present, and
// returns the resulting dictionary id (0 for a null value). v == nil pushes
// null, matching IdArray.Push's Option<value> semantics.
func (c *LabelColumn) Push(v *wire.LabelValue) int {
	row := c.Len()
	var id int
	switch c.kind {
	case wire.LabelString:
		var p *string
		if v != nil {
			s := v.Str
			p = &s
		}
		id = c.strs.Push(p)
	case wire.LabelIPv4:
		var p *[4]byte
		if v != nil {
			b := v.IPv4
			p = &b
		}
		id = c.ip4.Push(p)
	case wire.LabelIPv6:
		var p *[16]byte
		if v != nil {
			b := v.IPv6
			p = &b
		}
		id = c.ip6.Push(p)
	case wire.LabelInt:
		var p *int64
		if v != nil {
			n := v.Int
			p = &n
		}
		id = c.ints.Push(p)
	case wire.LabelBool:
		var p *bool
		if v != nil {
			b := v.Bool
			p = &b
		}
		id = c.bools.Push(p)
	}
	if c.idx != nil {
		c.idx.Insert(uint32(row), uint64(id))
	}
	return id
}

// LookupValueID resolves a literal matcher value to its dictionary id. A nil
// v (the wire "compare to null" sentinel) always resolves to id 0. ok is
// false only when a non-null value has never been inserted into this
// column's dictionary.
func (c *LabelColumn) LookupValueID(v *wire.LabelValue) (id uint64, ok bool) {
	if v == nil {
		return 0, true
	}
	switch c.kind {
	case wire.LabelString:
		i, found := c.strs.LookupID(v.Str)
		return uint64(i), found
	case wire.LabelIPv4:
		i, found := c.ip4.LookupID(v.IPv4)
		return uint64(i), found
	case wire.LabelIPv6:
		i, found := c.ip6.LookupID(v.IPv6)
		return uint64(i), found
	case wire.LabelInt:
		i, found := c.ints.LookupID(v.Int)
		return uint64(i), found
	case wire.LabelBool:
		i, found := c.bools.LookupID(v.Bool)
		return uint64(i), found
	default:
		return 0, false
	}
}

// ValueAt reconstructs row's wire-level value (nil for null), used by the
// chunk layer's projection step to re-push a row into a fresh column while
// preserving dictionary compaction (spec.md section 4.6 step 4).
func (c *LabelColumn) ValueAt(row int) *wire.LabelValue {
	id := c.rowValueID(row)
	if id == 0 {
		return nil
	}
	switch c.kind {
	case wire.LabelString:
		v, _ := c.strs.ValueByID(id)
		return &wire.LabelValue{Kind: wire.LabelString, Str: v}
	case wire.LabelIPv4:
		v, _ := c.ip4.ValueByID(id)
		return &wire.LabelValue{Kind: wire.LabelIPv4, IPv4: v}
	case wire.LabelIPv6:
		v, _ := c.ip6.ValueByID(id)
		return &wire.LabelValue{Kind: wire.LabelIPv6, IPv6: v}
	case wire.LabelInt:
		v, _ := c.ints.ValueByID(id)
		return &wire.LabelValue{Kind: wire.LabelInt, Int: v}
	case wire.LabelBool:
		v, _ := c.bools.ValueByID(id)
		return &wire.LabelValue{Kind: wire.LabelBool, Bool: v}
	default:
		return nil
	}
}

// NewLabelColumnLike returns a fresh, index-less label column of the given
// kind; used to build a projected column from scratch.
func NewLabelColumnLike(kind wire.LabelKind) *LabelColumn {
	switch kind {
	case wire.LabelString:
		return NewStringLabelColumn(nil)
	case wire.LabelIPv4:
		return NewIPv4LabelColumn(nil)
	case wire.LabelIPv6:
		return NewIPv6LabelColumn(nil)
	case wire.LabelInt:
		return NewIntLabelColumn(nil)
	case wire.LabelBool:
		return NewBoolLabelColumn(nil)
	default:
		return nil
	}
}

// Filter is LabelImpl::filter from spec.md section 4.4: the exact
// verification step run after index pruning, narrowing rowSet to precisely
// the rows that satisfy op. rowSet must already be a concrete (non-Universe)
// set; chunk.filter always binds it via bitmap.FromRangeSet before calling
// any label column's Filter.
func (c *LabelColumn) Filter(cx *sched.Context, op wire.MatcherOp, rowSet *bitmap.Set) error {
	if rowSet.IsUniverse() {
		panic("column: LabelColumn.Filter called on an unbound Universe row set")
	}
	if op.Kind.IsRegex() {
		return c.regexMatch(cx, op.Kind.Positive(), op.Pattern, rowSet)
	}
	return c.literalFilter(cx, op, rowSet)
}

func (c *LabelColumn) literalFilter(cx *sched.Context, op wire.MatcherOp, rowSet *bitmap.Set) error {
	if op.Value != nil && op.Value.Kind != c.kind {
		return coldberr.NewMismatchType(c.kind.String(), op.Value.Kind.String())
	}
	valueID, ok := c.LookupValueID(op.Value)
	positive := op.Kind.Positive()
	if !ok {
		// the literal was never inserted into this dictionary: an equality
		// match is vacuously empty, a not-equal match keeps everything
		// currently in rowSet (spec.md section 8 scenario 1: `="universe"`
		// short-circuits to {} via lookup_value_id -> None).
		if positive {
			rowSet.Clear()
		}
		return nil
	}
	var toRemove []uint32
	rowSet.Bitmap().Iterate(func(row uint32) bool {
		if cx.Take() {
			cx.YieldNow()
		}
		matches := uint64(c.rowValueID(int(row))) == valueID
		if matches != positive {
			toRemove = append(toRemove, row)
		}
		return true
	})
	if len(toRemove) > 0 {
		rowSet.AndNotInplace(bitmap.SomeSet(bitmap.FromIter(toRemove)))
	}
	return nil
}

// regexMatch is spec.md section 4.4's regex_match: only defined on string
// labels, positive ⇔ pat matches the row's string; nulls never match
// (positive or negative).
func (c *LabelColumn) regexMatch(cx *sched.Context, positive bool, pattern string, rowSet *bitmap.Set) error {
	if c.kind != wire.LabelString {
		return coldberr.NewRegexStringOnly()
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return coldberr.NewPatternError(err)
	}
	var toRemove []uint32
	rowSet.Bitmap().Iterate(func(row uint32) bool {
		if cx.Take() {
			cx.YieldNow()
		}
		s, nonNull := c.stringAt(int(row))
		keep := nonNull && (positive == re.MatchString(s))
		if !keep {
			toRemove = append(toRemove, row)
		}
		return true
	})
	if len(toRemove) > 0 {
		rowSet.AndNotInplace(bitmap.SomeSet(bitmap.FromIter(toRemove)))
	}
	return nil
}
