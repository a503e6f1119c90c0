package column

import (
	"github.com/coldb/coldb/array"
	"github.com/coldb/coldb/scalar"
	"github.com/coldb/coldb/wire"
)

// FieldColumn is a nullable fixed-width (stride W) time-series column over
// one of the eleven field kinds (spec.md section 3/4.2), dispatched the same
// way LabelColumn dispatches its five label kinds.
type FieldColumn struct {
	kind   wire.FieldKind
	stride int
	u8     *array.NullableFixedList[uint8]
	u16    *array.NullableFixedList[uint16]
	u32    *array.NullableFixedList[uint32]
	u64    *array.NullableFixedList[uint64]
	i8     *array.NullableFixedList[int8]
	i16    *array.NullableFixedList[int16]
	i32    *array.NullableFixedList[int32]
	i64    *array.NullableFixedList[int64]
	f32    *array.NullableFixedList[float32]
	f64    *array.NullableFixedList[float64]
	b      *array.NullableFixedList[bool]
}

// NewFieldColumn returns an empty field column of the given kind and window
// width (stride).
func NewFieldColumn(kind wire.FieldKind, stride int) *FieldColumn {
	c := &FieldColumn{kind: kind, stride: stride}
	switch kind {
	case wire.FieldUInt8:
		c.u8 = array.NewNullableFixedList[uint8](stride)
	case wire.FieldUInt16:
		c.u16 = array.NewNullableFixedList[uint16](stride)
	case wire.FieldUInt32:
		c.u32 = array.NewNullableFixedList[uint32](stride)
	case wire.FieldUInt64:
		c.u64 = array.NewNullableFixedList[uint64](stride)
	case wire.FieldInt8:
		c.i8 = array.NewNullableFixedList[int8](stride)
	case wire.FieldInt16:
		c.i16 = array.NewNullableFixedList[int16](stride)
	case wire.FieldInt32:
		c.i32 = array.NewNullableFixedList[int32](stride)
	case wire.FieldInt64:
		c.i64 = array.NewNullableFixedList[int64](stride)
	case wire.FieldFloat32:
		c.f32 = array.NewNullableFixedList[float32](stride)
	case wire.FieldFloat64:
		c.f64 = array.NewNullableFixedList[float64](stride)
	case wire.FieldBool:
		c.b = array.NewNullableFixedList[bool](stride)
	}
	return c
}

// Kind reports the column's field variant.
func (c *FieldColumn) Kind() wire.FieldKind { return c.kind }

// Stride reports the time-series window width W.
func (c *FieldColumn) Stride() int { return c.stride }

// Len reports the number of rows.
func (c *FieldColumn) Len() int {
	switch c.kind {
	case wire.FieldUInt8:
		return c.u8.Len()
	case wire.FieldUInt16:
		return c.u16.Len()
	case wire.FieldUInt32:
		return c.u32.Len()
	case wire.FieldUInt64:
		return c.u64.Len()
	case wire.FieldInt8:
		return c.i8.Len()
	case wire.FieldInt16:
		return c.i16.Len()
	case wire.FieldInt32:
		return c.i32.Len()
	case wire.FieldInt64:
		return c.i64.Len()
	case wire.FieldFloat32:
		return c.f32.Len()
	case wire.FieldFloat64:
		return c.f64.Len()
	case wire.FieldBool:
		return c.b.Len()
	default:
		return 0
	}
}

// Window is a tagged union over the eleven FixedRef instantiations a field
// row can carry; Kind tells the caller which field is populated.
type Window struct {
	Kind wire.FieldKind
	U8   scalar.FixedRef[uint8]
	U16  scalar.FixedRef[uint16]
	U32  scalar.FixedRef[uint32]
	U64  scalar.FixedRef[uint64]
	I8   scalar.FixedRef[int8]
	I16  scalar.FixedRef[int16]
	I32  scalar.FixedRef[int32]
	I64  scalar.FixedRef[int64]
	F32  scalar.FixedRef[float32]
	F64  scalar.FixedRef[float64]
	Bool scalar.FixedRef[bool]
}

// Get returns row's window, ok is false iff row is out of bounds.
func (c *FieldColumn) Get(row int) (Window, bool) {
	w := Window{Kind: c.kind}
	var ok bool
	switch c.kind {
	case wire.FieldUInt8:
		w.U8, ok = c.u8.Get(row)
	case wire.FieldUInt16:
		w.U16, ok = c.u16.Get(row)
	case wire.FieldUInt32:
		w.U32, ok = c.u32.Get(row)
	case wire.FieldUInt64:
		w.U64, ok = c.u64.Get(row)
	case wire.FieldInt8:
		w.I8, ok = c.i8.Get(row)
	case wire.FieldInt16:
		w.I16, ok = c.i16.Get(row)
	case wire.FieldInt32:
		w.I32, ok = c.i32.Get(row)
	case wire.FieldInt64:
		w.I64, ok = c.i64.Get(row)
	case wire.FieldFloat32:
		w.F32, ok = c.f32.Get(row)
	case wire.FieldFloat64:
		w.F64, ok = c.f64.Get(row)
	case wire.FieldBool:
		w.Bool, ok = c.b.Get(row)
	}
	return w, ok
}

// Sample is the wire-level equivalent of Window used to push one row: Valid
// == nil means every sample in the window is non-null.
type Sample struct {
	Kind  wire.FieldKind
	U8    []uint8
	U16   []uint16
	U32   []uint32
	U64   []uint64
	I8    []int8
	I16   []int16
	I32   []int32
	I64   []int64
	F32   []float32
	F64   []float64
	Bool  []bool
	Valid []bool
}

// Push appends one row; s.Kind must equal the column's kind, and the
// relevant slice must have length Stride().
func (c *FieldColumn) Push(s Sample) {
	if s.Kind != c.kind {
		panic("column: field sample kind does not match column kind")
	}
	switch c.kind {
	case wire.FieldUInt8:
		c.u8.Push(s.U8, s.Valid)
	case wire.FieldUInt16:
		c.u16.Push(s.U16, s.Valid)
	case wire.FieldUInt32:
		c.u32.Push(s.U32, s.Valid)
	case wire.FieldUInt64:
		c.u64.Push(s.U64, s.Valid)
	case wire.FieldInt8:
		c.i8.Push(s.I8, s.Valid)
	case wire.FieldInt16:
		c.i16.Push(s.I16, s.Valid)
	case wire.FieldInt32:
		c.i32.Push(s.I32, s.Valid)
	case wire.FieldInt64:
		c.i64.Push(s.I64, s.Valid)
	case wire.FieldFloat32:
		c.f32.Push(s.F32, s.Valid)
	case wire.FieldFloat64:
		c.f64.Push(s.F64, s.Valid)
	case wire.FieldBool:
		c.b.Push(s.Bool, s.Valid)
	}
}

// Slice narrows w to the half-open sample range [s, e), for the time-slicing
// step of a chunk scan's projection (spec.md section 4.6 step 4). Precondition:
// 0 <= s <= e <= w.Len(); callers computing s/e from a clipped time range must
// establish this first.
func (w Window) Slice(s, e int) Sample {
	out := Sample{Kind: w.Kind}
	switch w.Kind {
	case wire.FieldUInt8:
		out.U8 = append([]uint8(nil), w.U8.Values[s:e]...)
		out.Valid = sliceValid(w.U8.Valid, s, e)
	case wire.FieldUInt16:
		out.U16 = append([]uint16(nil), w.U16.Values[s:e]...)
		out.Valid = sliceValid(w.U16.Valid, s, e)
	case wire.FieldUInt32:
		out.U32 = append([]uint32(nil), w.U32.Values[s:e]...)
		out.Valid = sliceValid(w.U32.Valid, s, e)
	case wire.FieldUInt64:
		out.U64 = append([]uint64(nil), w.U64.Values[s:e]...)
		out.Valid = sliceValid(w.U64.Valid, s, e)
	case wire.FieldInt8:
		out.I8 = append([]int8(nil), w.I8.Values[s:e]...)
		out.Valid = sliceValid(w.I8.Valid, s, e)
	case wire.FieldInt16:
		out.I16 = append([]int16(nil), w.I16.Values[s:e]...)
		out.Valid = sliceValid(w.I16.Valid, s, e)
	case wire.FieldInt32:
		out.I32 = append([]int32(nil), w.I32.Values[s:e]...)
		out.Valid = sliceValid(w.I32.Valid, s, e)
	case wire.FieldInt64:
		out.I64 = append([]int64(nil), w.I64.Values[s:e]...)
		out.Valid = sliceValid(w.I64.Valid, s, e)
	case wire.FieldFloat32:
		out.F32 = append([]float32(nil), w.F32.Values[s:e]...)
		out.Valid = sliceValid(w.F32.Valid, s, e)
	case wire.FieldFloat64:
		out.F64 = append([]float64(nil), w.F64.Values[s:e]...)
		out.Valid = sliceValid(w.F64.Valid, s, e)
	case wire.FieldBool:
		out.Bool = append([]bool(nil), w.Bool.Values[s:e]...)
		out.Valid = sliceValid(w.Bool.Valid, s, e)
	}
	return out
}

func sliceValid(valid []bool, s, e int) []bool {
	if valid == nil {
		return nil
	}
	return append([]bool(nil), valid[s:e]...)
}

// PushZero appends an all-null window.
func (c *FieldColumn) PushZero() {
	switch c.kind {
	case wire.FieldUInt8:
		c.u8.PushZero()
	case wire.FieldUInt16:
		c.u16.PushZero()
	case wire.FieldUInt32:
		c.u32.PushZero()
	case wire.FieldUInt64:
		c.u64.PushZero()
	case wire.FieldInt8:
		c.i8.PushZero()
	case wire.FieldInt16:
		c.i16.PushZero()
	case wire.FieldInt32:
		c.i32.PushZero()
	case wire.FieldInt64:
		c.i64.PushZero()
	case wire.FieldFloat32:
		c.f32.PushZero()
	case wire.FieldFloat64:
		c.f64.PushZero()
	case wire.FieldBool:
		c.b.PushZero()
	}
}
