// Package array implements the array family that backs label and field
// columns: dense primitive arrays, variable-length list arrays, fixed-width
// list arrays (plain, const-stride and nullable) and dictionary-encoded id
// arrays (spec.md section 3, SPEC_FULL.md component B).
package array

import "github.com/coldb/coldb/scalar"

// Primitive re-exports the scalar primitive constraint so callers only
// need to import one package for the common case.
type Primitive = scalar.Primitive

// PrimitiveArray is a dense, homogeneous array of P: the leaf representation
// every other array kind in this package is eventually built from.
type PrimitiveArray[P Primitive] struct {
	data []P
}

// NewPrimitiveArray returns an empty primitive array.
func NewPrimitiveArray[P Primitive]() *PrimitiveArray[P] { return &PrimitiveArray[P]{} }

// Len reports the number of elements.
func (a *PrimitiveArray[P]) Len() int { return len(a.data) }

// Get returns the i'th element; ok is false iff i is out of bounds.
func (a *PrimitiveArray[P]) Get(i int) (P, bool) {
	if i < 0 || i >= len(a.data) {
		var zero P
		return zero, false
	}
	return a.data[i], true
}

// GetUnchecked returns the i'th element without a bounds check; callers
// must have already established i < Len().
func (a *PrimitiveArray[P]) GetUnchecked(i int) P { return a.data[i] }

// GetMut returns a pointer to the i'th element for in-place mutation.
func (a *PrimitiveArray[P]) GetMut(i int) (*P, bool) {
	if i < 0 || i >= len(a.data) {
		return nil, false
	}
	return &a.data[i], true
}

// Push appends one element.
func (a *PrimitiveArray[P]) Push(v P) { a.data = append(a.data, v) }

// PushZero appends the type's zero value.
func (a *PrimitiveArray[P]) PushZero() {
	var zero P
	a.data = append(a.data, zero)
}
