// Package plan turns checked MIR into the physical scan plan the executor
// runs (spec.md section 4.9/4.10, SPEC_FULL.md component K). Aggregation
// planning is out of scope (spec.md section 9 Open Question (d)): an
// Aggregate node's children are still validated, but the aggregate itself
// always yields coldberr.ErrUnsupportedAggregate.
package plan

import (
	"github.com/coldb/coldb/catalog"
	"github.com/coldb/coldb/chunk"
	"github.com/coldb/coldb/coldberr"
	"github.com/coldb/coldb/query/mir"
	"github.com/coldb/coldb/wire"
)

// ScanPlanner is the physical plan for one table scan: the resolved table,
// its matchers and projection, the requested time range, and whether the
// scanned field windows should be rate-transformed before being returned.
type ScanPlanner struct {
	Resource   string
	Table      *catalog.Table
	Matchers   []*wire.MatcherOp
	Projection chunk.Projection
	Range      wire.Range
	// RateWrap is set when the MIR tree wrapped this scan in Call{Name:
	// "rate"}; the executor applies sample.Rate to each chunk's field
	// windows before emitting Records.
	RateWrap bool
}

// Build compiles a checked MIR tree into a ScanPlanner, or
// coldberr.ErrUnsupportedAggregate if the tree needs aggregation or a
// function other than rate.
func Build(node mir.Node) (*ScanPlanner, error) {
	switch n := node.(type) {
	case *mir.Scan:
		return &ScanPlanner{
			Resource:   n.Table.Name,
			Table:      n.Table,
			Matchers:   n.Matchers,
			Projection: n.Projection,
			Range:      n.Range,
		}, nil

	case *mir.Call:
		if len(n.Args) != 1 {
			return nil, coldberr.ErrUnsupportedAggregate
		}
		inner, err := Build(n.Args[0])
		if err != nil {
			return nil, err
		}
		if n.Name != "rate" {
			return nil, coldberr.ErrUnsupportedAggregate
		}
		inner.RateWrap = true
		return inner, nil

	case *mir.Aggregate:
		for _, a := range n.Args {
			if _, err := Build(a); err != nil {
				return nil, err
			}
		}
		return nil, coldberr.ErrUnsupportedAggregate

	default:
		return nil, coldberr.ErrUnsupportedAggregate
	}
}
