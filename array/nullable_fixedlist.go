package array

import "github.com/coldb/coldb/scalar"

// NullableFixedList pairs a FixedList with an element-granularity validity
// bitmap; this is the backing storage of FieldColumn (spec.md section 3):
// each row is a W-sample window where individual samples may be null.
type NullableFixedList[P Primitive] struct {
	list  FixedList[P]
	valid []bool // len == Len()*Stride()
}

// NewNullableFixedList returns an empty nullable fixed list with the given
// stride (the time-series width W).
func NewNullableFixedList[P Primitive](stride int) *NullableFixedList[P] {
	return &NullableFixedList[P]{list: *NewFixedList[P](stride)}
}

// Stride reports the window width W.
func (a *NullableFixedList[P]) Stride() int { return a.list.Stride() }

// Len reports the number of rows.
func (a *NullableFixedList[P]) Len() int { return a.list.Len() }

// Get returns an immutable view of the i'th row's window.
func (a *NullableFixedList[P]) Get(i int) (scalar.FixedRef[P], bool) {
	values, ok := a.list.Get(i)
	if !ok {
		return scalar.FixedRef[P]{}, false
	}
	stride := a.list.Stride()
	return scalar.FixedRef[P]{Values: values, Valid: a.valid[i*stride : (i+1)*stride]}, true
}

// GetUnchecked is the unchecked counterpart of Get.
func (a *NullableFixedList[P]) GetUnchecked(i int) scalar.FixedRef[P] {
	stride := a.list.Stride()
	return scalar.FixedRef[P]{Values: a.list.GetUnchecked(i), Valid: a.valid[i*stride : (i+1)*stride]}
}

// GetMut returns a mutable view of the i'th row's window.
func (a *NullableFixedList[P]) GetMut(i int) (scalar.FixedMut[P], bool) {
	values, ok := a.list.GetMut(i)
	if !ok {
		return scalar.FixedMut[P]{}, false
	}
	stride := a.list.Stride()
	return scalar.FixedMut[P]{Values: values, Valid: a.valid[i*stride : (i+1)*stride : (i+1)*stride]}, true
}

// Push appends one row. values must have length Stride(); valid may be nil
// to mean "every sample is non-null".
func (a *NullableFixedList[P]) Push(values []P, valid []bool) {
	a.list.Push(values)
	stride := a.list.Stride()
	if valid == nil {
		for i := 0; i < stride; i++ {
			a.valid = append(a.valid, true)
		}
		return
	}
	if len(valid) != stride {
		panic("array: nullable fixed list validity length must equal stride")
	}
	a.valid = append(a.valid, valid...)
}

// PushZero appends an all-null window, per spec.md section 3.
func (a *NullableFixedList[P]) PushZero() {
	a.list.PushZero()
	stride := a.list.Stride()
	for i := 0; i < stride; i++ {
		a.valid = append(a.valid, false)
	}
}
