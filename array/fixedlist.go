package array

import "fmt"

// FixedList is a fixed-width (stride) inner list array: data.Len() ==
// Len()*stride, per spec.md section 3.
type FixedList[P Primitive] struct {
	data   []P
	stride int
}

// NewFixedList returns an empty fixed-width list array with the given
// stride. ConstFixedList(N) from spec.md is the same type constructed with
// a construction-time-constant stride (4 for IPv4, 16 for IPv6); Go has no
// const-generic integer parameters, so NewConstFixedList4/16 below are thin
// convenience constructors over the same representation.
func NewFixedList[P Primitive](stride int) *FixedList[P] {
	if stride <= 0 {
		panic(fmt.Sprintf("array: fixed list stride must be positive, got %d", stride))
	}
	return &FixedList[P]{stride: stride}
}

// NewConstFixedList4 returns a fixed list with stride 4 (IPv4 octets).
func NewConstFixedList4[P Primitive]() *FixedList[P] { return NewFixedList[P](4) }

// NewConstFixedList16 returns a fixed list with stride 16 (IPv6 octets).
func NewConstFixedList16[P Primitive]() *FixedList[P] { return NewFixedList[P](16) }

// Stride reports the fixed window width.
func (a *FixedList[P]) Stride() int { return a.stride }

// Len reports the number of rows.
func (a *FixedList[P]) Len() int { return len(a.data) / a.stride }

// Get returns the i'th row's window, sharing backing storage.
func (a *FixedList[P]) Get(i int) ([]P, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	off := i * a.stride
	return a.data[off : off+a.stride], true
}

// GetUnchecked is the unchecked counterpart of Get.
func (a *FixedList[P]) GetUnchecked(i int) []P {
	off := i * a.stride
	return a.data[off : off+a.stride]
}

// GetMut returns a mutable window into the i'th row.
func (a *FixedList[P]) GetMut(i int) ([]P, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	off := i * a.stride
	return a.data[off : off+a.stride : off+a.stride], true
}

// Push appends one row; len(v) must equal Stride().
func (a *FixedList[P]) Push(v []P) {
	if len(v) != a.stride {
		panic(fmt.Sprintf("array: pushed row has length %d, want stride %d", len(v), a.stride))
	}
	a.data = append(a.data, v...)
}

// PushZero appends an all-zero window.
func (a *FixedList[P]) PushZero() {
	var zero P
	for i := 0; i < a.stride; i++ {
		a.data = append(a.data, zero)
	}
}
