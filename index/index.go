// Package index implements the two auxiliary index kinds that prune a
// chunk's row-set before exact verification: an exact inverted index and an
// approximate per-block sparse (bloom-filter) index (spec.md section 3/4.3,
// SPEC_FULL.md component F).
package index

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
	"github.com/willf/bloom"

	"github.com/coldb/coldb/bitmap"
)

// Kind distinguishes the two index representations a LabelColumn can carry.
type Kind int

const (
	// KindInverted is the exact value-id -> bitmap index.
	KindInverted Kind = iota
	// KindSparse is the approximate per-block bloom index.
	KindSparse
)

// targetFalsePositiveRate is the sparse index's fixed false-positive
// budget, per spec.md section 4.3 and the testable property in section 8
// ("bloom parameters satisfy k <= 10 and (m+7)/8 <= 15_000_000 when sized
// for 10M inserts at 1% FPR").
const targetFalsePositiveRate = 0.01

// Impl is a tagged union over the two index representations (Inverted,
// Sparse), dispatched by explicit switch rather than interface-based
// virtual dispatch, per spec.md section 9's design note on tagged unions.
type Impl struct {
	kind     Kind
	inverted *inverted
	sparse   *sparse
}

// NewInverted returns an exact, value-id-keyed inverted index.
func NewInverted() *Impl {
	return &Impl{kind: KindInverted, inverted: newInverted()}
}

// NewSparse returns an approximate per-block bloom index with the given
// block size (number of rows per bloom filter).
func NewSparse(blockSize uint32) *Impl {
	return &Impl{kind: KindSparse, sparse: newSparse(blockSize)}
}

// Insert records that row carries dictionary value id valueID.
func (ix *Impl) Insert(row uint32, valueID uint64) {
	switch ix.kind {
	case KindInverted:
		ix.inverted.insert(row, valueID)
	case KindSparse:
		ix.sparse.insert(row, valueID)
	}
}

// Exactly reports whether Lookup never produces false positives.
func (ix *Impl) Exactly() bool {
	switch ix.kind {
	case KindInverted:
		return true
	default:
		return false
	}
}

// Lookup invokes visit with the candidate bitmap for valueID (a superset of
// the true matches for a sparse index, exact for an inverted index). visit
// is not called at all if an inverted index has no entry for valueID.
func (ix *Impl) Lookup(valueID uint64, visit func(*bitmap.Bitmap)) {
	switch ix.kind {
	case KindInverted:
		ix.inverted.lookup(valueID, visit)
	case KindSparse:
		ix.sparse.lookup(valueID, visit)
	}
}

// Filter implements spec.md section 4.3's IndexImpl::filter: a positive op
// (equal / regex-match) intersects superset with the candidate bitmap; a
// negative op (not-equal / regex-not-match) subtracts it.
func (ix *Impl) Filter(positive bool, valueID uint64, superset *bitmap.Set) {
	var candidate *bitmap.Bitmap
	ix.Lookup(valueID, func(b *bitmap.Bitmap) { candidate = b })
	if candidate == nil {
		candidate = bitmap.New()
	}
	candidateSet := bitmap.SomeSet(candidate)
	if positive {
		superset.AndInplace(candidateSet)
	} else {
		superset.AndNotInplace(candidateSet)
	}
}

// --- inverted ---

type inverted struct {
	data map[uint64]*bitmap.Bitmap
}

func newInverted() *inverted { return &inverted{data: make(map[uint64]*bitmap.Bitmap)} }

func (ix *inverted) insert(row uint32, valueID uint64) {
	b, ok := ix.data[valueID]
	if !ok {
		b = bitmap.New()
		ix.data[valueID] = b
	}
	b.Add(row)
}

func (ix *inverted) lookup(valueID uint64, visit func(*bitmap.Bitmap)) {
	if b, ok := ix.data[valueID]; ok {
		visit(b)
	}
}

// --- sparse ---

type sparse struct {
	blocks    []*bloom.BloomFilter
	blockSize uint32
}

func newSparse(blockSize uint32) *sparse {
	if blockSize == 0 {
		blockSize = 1
	}
	return &sparse{blockSize: blockSize}
}

// valueIDBytes digests valueID into the key a block's bloom filter is
// tested/populated with. Hashing first (rather than feeding the raw
// big-endian id straight to the filter) avoids the clustering a sequential
// dictionary id would otherwise produce across a block's k hash functions.
func valueIDBytes(valueID uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], farm.Hash64WithSeed(nil, valueID))
	return buf[:]
}

func (ix *sparse) insert(row uint32, valueID uint64) {
	block := int(row / ix.blockSize)
	for len(ix.blocks) <= block {
		ix.blocks = append(ix.blocks, bloom.NewWithEstimates(uint(ix.blockSize), targetFalsePositiveRate))
	}
	ix.blocks[block].Add(valueIDBytes(valueID))
}

// lookup OR-composes the row ranges of every block whose bloom filter
// reports "possibly present", producing a candidate superset that is never
// a sub-set of the true matches (spec.md section 4.3).
func (ix *sparse) lookup(valueID uint64, visit func(*bitmap.Bitmap)) {
	out := bitmap.New()
	key := valueIDBytes(valueID)
	for i, block := range ix.blocks {
		if block.Test(key) {
			lo := uint64(i) * uint64(ix.blockSize)
			hi := lo + uint64(ix.blockSize)
			out = merge(out, bitmap.FromRange(lo, hi))
		}
	}
	visit(out)
}

// merge ORs two bitmaps without needing an OrInplace method on the public
// bitmap.Bitmap type (which only exposes the AND-family in-place ops that
// the filter pipeline needs); sparse index block unioning is the one place
// coldb needs a union, so it is implemented locally.
func merge(a, b *bitmap.Bitmap) *bitmap.Bitmap {
	out := a.Clone()
	b.Iterate(func(row uint32) bool {
		out.Add(row)
		return true
	})
	return out
}
