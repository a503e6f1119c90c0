// Package scalar defines the primitive numeric type family and the
// ref/mut/owned scalar trilogy used by the array and column layers
// (spec.md section 3, SPEC_FULL.md component A).
//
// Go has no borrow checker, so Ref and Mut are plain slice-backed views
// rather than lifetime-tracked references; the trilogy still holds in
// spirit: Ref is read-only, Mut lets the caller write through the column's
// backing storage without a copy, and ToOwned always allocates a detached
// copy.
package scalar

// Primitive is the family of copyable numeric scalar kinds with a zero
// default, matching spec.md's {u8,u16,u32,u64,i8,i16,i32,i64,f32,f64,bool}.
type Primitive interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 | ~bool
}

// Numeric is Primitive minus bool: the subset of kinds arithmetic
// transforms like rate operate over.
type Numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// FixedRef is an immutable view over one row's W-sample window: Values
// holds the samples and Valid holds their per-sample validity (nil Valid
// means every sample in the window is valid).
type FixedRef[P Primitive] struct {
	Values []P
	Valid  []bool
}

// Get returns the i'th sample of the window and whether it is non-null.
func (r FixedRef[P]) Get(i int) (P, bool) {
	if r.Valid == nil {
		return r.Values[i], true
	}
	return r.Values[i], r.Valid[i]
}

// Len reports the window's stride.
func (r FixedRef[P]) Len() int { return len(r.Values) }

// ToOwned detaches a copy of the window, satisfying the round-trip law
// Scalar::as_ref().to_owned() == self.
func (r FixedRef[P]) ToOwned() ([]P, []bool) {
	values := append([]P(nil), r.Values...)
	var valid []bool
	if r.Valid != nil {
		valid = append([]bool(nil), r.Valid...)
	}
	return values, valid
}

// FixedMut is a mutable view over one row's W-sample window.
type FixedMut[P Primitive] struct {
	Values []P
	Valid  []bool
}

// Set writes the i'th sample and marks it valid.
func (m FixedMut[P]) Set(i int, v P) {
	m.Values[i] = v
	if m.Valid != nil {
		m.Valid[i] = true
	}
}

// Clear marks the i'th sample null; the stored value becomes meaningless.
func (m FixedMut[P]) Clear(i int) {
	var zero P
	m.Values[i] = zero
	if m.Valid != nil {
		m.Valid[i] = false
	}
}

// AsRef downgrades the mutable view to an immutable one over the same
// backing storage.
func (m FixedMut[P]) AsRef() FixedRef[P] { return FixedRef[P]{Values: m.Values, Valid: m.Valid} }

// AsMut recovers a mutable view from Ref's backing storage; callers are
// responsible for only doing this when they actually own the underlying
// column (the type system doesn't enforce it, unlike the Rust original).
func (r FixedRef[P]) AsMut() FixedMut[P] { return FixedMut[P]{Values: r.Values, Valid: r.Valid} }
