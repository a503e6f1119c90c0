package index

import (
	"testing"

	"github.com/coldb/coldb/bitmap"
)

func TestInvertedExactNoFalsePositives(t *testing.T) {
	ix := NewInverted()
	ix.Insert(3, 1)
	ix.Insert(7, 1)
	ix.Insert(9, 2)

	if !ix.Exactly() {
		t.Fatalf("inverted index must report Exactly() == true")
	}

	var got *bitmap.Bitmap
	ix.Lookup(1, func(b *bitmap.Bitmap) { got = b })
	if got == nil || got.Cardinality() != 2 || !got.Contains(3) || !got.Contains(7) {
		t.Fatalf("expected exact bitmap {3,7}, got %+v", got)
	}

	var none *bitmap.Bitmap
	ix.Lookup(999, func(b *bitmap.Bitmap) { none = b })
	if none != nil {
		t.Fatalf("lookup of an absent value must not invoke visit")
	}
}

func TestInvertedFilterPositiveNegative(t *testing.T) {
	ix := NewInverted()
	ix.Insert(0, 1)
	ix.Insert(2, 1)
	ix.Insert(4, 2)

	superset := bitmap.FromRangeSet(0, 5)
	ix.Filter(true, 1, &superset)
	if superset.Cardinality() != 2 {
		t.Fatalf("positive filter should narrow to value-id 1's rows, got cardinality %d", superset.Cardinality())
	}

	superset2 := bitmap.FromRangeSet(0, 5)
	ix.Filter(false, 1, &superset2)
	if superset2.Cardinality() != 3 {
		t.Fatalf("negative filter should remove value-id 1's rows, got cardinality %d", superset2.Cardinality())
	}
}

// TestSparseIndexSuperset reproduces spec.md section 8 scenario 3: inserts at
// rows 0, 1001 and 2001 with block_size=1000; lookup(1) must return a
// superset confined to the blocks touched by value 1, containing {0, 1001}.
func TestSparseIndexSuperset(t *testing.T) {
	ix := NewSparse(1000)
	ix.Insert(0, 1)
	ix.Insert(1001, 1)
	ix.Insert(2001, 2)

	if ix.Exactly() {
		t.Fatalf("sparse index must report Exactly() == false")
	}

	var candidate *bitmap.Bitmap
	ix.Lookup(1, func(b *bitmap.Bitmap) { candidate = b })
	if candidate == nil {
		t.Fatalf("expected a non-nil candidate bitmap")
	}
	if !candidate.Contains(0) || !candidate.Contains(1001) {
		t.Fatalf("candidate superset must contain every true match, got %v", candidate.ToArray())
	}
	// The candidate must be confined to the first two blocks (rows 0..2000)
	// and must never reach into block 2 (row 2001), which only value 2 touched.
	if candidate.Contains(2001) {
		t.Fatalf("candidate superset leaked into a block value 1 never touched")
	}
	for _, row := range candidate.ToArray() {
		if row >= 2000 {
			t.Fatalf("candidate row %d escaped the expected 0..2000 block range", row)
		}
	}
}

func TestSparseIndexBloomParameters(t *testing.T) {
	// spec.md section 8: sized for 10M inserts at 1% FPR, k <= 10 and
	// (m+7)/8 <= 15_000_000 bytes.
	ix := NewSparse(10_000_000)
	ix.Insert(0, 1)
	block := ix.blocks[0]
	if block.K() > 10 {
		t.Fatalf("expected k <= 10, got %d", block.K())
	}
	if bytes := (block.Cap() + 7) / 8; bytes > 15_000_000 {
		t.Fatalf("expected bitset <= 15_000_000 bytes, got %d", bytes)
	}
}
