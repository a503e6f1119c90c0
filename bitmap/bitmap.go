// Package bitmap implements the compressed row-id bitmap and the Set
// lattice (Universe | Some(Bitmap)) that every filter refinement operates
// over (spec.md section 3/4.1, SPEC_FULL.md component E).
package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a compressed set of row ids, backed by a Roaring bitmap
// (grounded in AKJUS-bsc-erigon/go.mod, which requires
// github.com/RoaringBitmap/roaring/v2; see SPEC_FULL.md's domain stack).
type Bitmap struct {
	rb *roaring.Bitmap
}

// New returns an empty bitmap.
func New() *Bitmap { return &Bitmap{rb: roaring.New()} }

// FromRange returns a bitmap containing every row id in [lo, hi).
func FromRange(lo, hi uint64) *Bitmap {
	b := New()
	if hi > lo {
		b.rb.AddRange(lo, hi)
	}
	return b
}

// FromIter returns a bitmap containing every id yielded by ids.
func FromIter(ids []uint32) *Bitmap {
	b := New()
	for _, id := range ids {
		b.rb.Add(id)
	}
	return b
}

// Add inserts a single row id.
func (b *Bitmap) Add(row uint32) { b.rb.Add(row) }

// Clear empties the bitmap in place.
func (b *Bitmap) Clear() { b.rb.Clear() }

// Cardinality reports the number of row ids in the bitmap.
func (b *Bitmap) Cardinality() uint64 { return b.rb.GetCardinality() }

// Contains reports whether row is a member.
func (b *Bitmap) Contains(row uint32) bool { return b.rb.Contains(row) }

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap { return &Bitmap{rb: b.rb.Clone()} }

// ToArray materializes the bitmap's row ids in ascending order. Intended
// for small result sets and tests; hot paths should use Iterate.
func (b *Bitmap) ToArray() []uint32 { return b.rb.ToArray() }

// Iterate calls f once per row id, in ascending order, stopping early if f
// returns false.
func (b *Bitmap) Iterate(f func(row uint32) bool) {
	it := b.rb.Iterator()
	for it.HasNext() {
		if !f(it.Next()) {
			return
		}
	}
}

// AndInplace intersects b with other, in place.
func (b *Bitmap) AndInplace(other *Bitmap) { b.rb.And(other.rb) }

// AndNotInplace removes every row id also present in other, in place.
func (b *Bitmap) AndNotInplace(other *Bitmap) { b.rb.AndNot(other.rb) }

// Set is the lattice Universe | Some(Bitmap) from spec.md section 4.1:
// Universe represents "every row, not yet refined" without materializing
// an all-ones bitmap; it collapses to a concrete bitmap lazily, on the
// first refinement.
type Set struct {
	universe bool
	bm       *Bitmap
}

// UniverseSet returns the Universe sentinel.
func UniverseSet() Set { return Set{universe: true} }

// SomeSet wraps a concrete bitmap.
func SomeSet(b *Bitmap) Set { return Set{bm: b} }

// FromRangeSet returns Some(FromRange(lo, hi)); this is the concrete
// starting point every chunk scan uses (spec.md section 4.1: "the filter
// pipeline starts every chunk scan at Bitmap::from_range(0..chunk_len)").
func FromRangeSet(lo, hi uint64) Set { return SomeSet(FromRange(lo, hi)) }

// IsUniverse reports whether the set is still the Universe sentinel.
func (s Set) IsUniverse() bool { return s.universe }

// Bitmap returns the concrete bitmap backing a Some set; it panics on
// Universe, mirroring the Rust original's refusal to materialize an
// all-rows bitmap implicitly. Callers that might see Universe should check
// IsUniverse first, or use Clear/AndInplace/AndNotInplace, which handle
// both cases.
func (s Set) Bitmap() *Bitmap {
	if s.universe {
		panic("bitmap: Bitmap() called on the Universe set")
	}
	return s.bm
}

// Clear collapses the set to Some(empty bitmap), per the lattice law
// clear(Universe) = Some(∅).
func (s *Set) Clear() {
	if s.universe {
		s.universe = false
		s.bm = New()
		return
	}
	s.bm.Clear()
}

// AndInplace refines s to the intersection s ⊓ other, per the lattice
// Universe ⊓ X = X, Some(A) ⊓ Some(B) = Some(A ∩ B).
func (s *Set) AndInplace(other Set) {
	switch {
	case s.universe && other.universe:
		// Universe ⊓ Universe = Universe; nothing to do.
	case s.universe && !other.universe:
		s.universe = false
		s.bm = other.bm.Clone()
	case !s.universe && other.universe:
		// s ⊓ Universe = s; nothing to do.
	default:
		s.bm.AndInplace(other.bm)
	}
}

// AndNotInplace refines s by removing every row id also present in other.
func (s *Set) AndNotInplace(other Set) {
	switch {
	case other.universe:
		// s ⊓¬ Universe = ∅.
		s.Clear()
	case s.universe:
		// Universe ⊓¬ Some(B): everything not in B. We cannot materialize
		// "everything" without a concrete upper bound, so callers must not
		// ANDNOT a concrete set out of Universe without first binding it to
		// a range via FromRangeSet; this mirrors the Rust original leaving
		// this branch unimplemented (see index.rs).
		panic("bitmap: AndNotInplace(Universe, Some) requires a bound range; call FromRangeSet first")
	default:
		s.bm.AndNotInplace(other.bm)
	}
}

// Cardinality reports the number of row ids; Universe has no finite
// cardinality and this method panics if called on it.
func (s Set) Cardinality() uint64 {
	if s.universe {
		panic("bitmap: Cardinality() called on the Universe set")
	}
	return s.bm.Cardinality()
}
