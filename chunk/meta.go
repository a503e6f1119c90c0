// Package chunk implements MutableChunk, the append-only, column-oriented
// batch of rows that a scan operates over (spec.md section 3/4.6,
// SPEC_FULL.md component H).
package chunk

import "github.com/coldb/coldb/wire"

// Meta describes a chunk's time grid: Length rows, each carrying a Width-
// sample field window spaced Unit milliseconds apart, starting at StartAt
// (spec.md section 3).
type Meta struct {
	StartAt int64
	Unit    int64
	Length  int
	Width   int
}

// EndAt is start_at + unit*width, per spec.md section 4.6.
func (m Meta) EndAt() int64 { return m.StartAt + m.Unit*int64(m.Width) }

// Range returns the chunk's absolute time range [start_at, end_at].
func (m Meta) Range() wire.Range { return wire.Range{Start: m.StartAt, End: m.EndAt()} }
