package array

// ListArray is a variable-length list array: contiguous data plus a
// monotone, one-longer-than-Len offsets slice, per spec.md section 3.
type ListArray[P Primitive] struct {
	data    []P
	offsets []int // invariant: len(offsets) == Len()+1, non-decreasing.
}

// NewListArray returns an empty list array.
func NewListArray[P Primitive]() *ListArray[P] {
	return &ListArray[P]{offsets: []int{0}}
}

// Len reports the number of rows (lists), not the total element count.
func (a *ListArray[P]) Len() int { return len(a.offsets) - 1 }

// Get returns the i'th row's list, sharing backing storage with the array.
func (a *ListArray[P]) Get(i int) ([]P, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.data[a.offsets[i]:a.offsets[i+1]], true
}

// GetUnchecked is the unchecked counterpart of Get.
func (a *ListArray[P]) GetUnchecked(i int) []P {
	return a.data[a.offsets[i]:a.offsets[i+1]]
}

// Push appends a new row holding a copy of v.
func (a *ListArray[P]) Push(v []P) {
	a.data = append(a.data, v...)
	a.offsets = append(a.offsets, len(a.data))
}

// PushZero appends an empty list, repeating the last offset.
func (a *ListArray[P]) PushZero() {
	a.offsets = append(a.offsets, a.offsets[len(a.offsets)-1])
}
