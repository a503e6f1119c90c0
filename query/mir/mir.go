// Package mir is the query pipeline's check stage: it resolves HIR's
// name-keyed nodes against the catalog, producing an ordinal-keyed MIR that
// the physical planner can turn into a scan directly (spec.md section 4.9,
// SPEC_FULL.md component K).
package mir

import (
	"time"

	"github.com/coldb/coldb/catalog"
	"github.com/coldb/coldb/chunk"
	"github.com/coldb/coldb/coldberr"
	"github.com/coldb/coldb/query/hir"
	"github.com/coldb/coldb/wire"
)

// Node is the MIR sum type: Aggregate | Call | Scan | Literal, the ordinal-
// resolved counterpart of hir.Node.
type Node interface{ isMIRNode() }

// Aggregate mirrors hir.Aggregate once its children have been checked.
// Aggregation planning itself stays out of scope (spec.md section 9 Open
// Question (d)); check still walks into it so a malformed child surfaces a
// NoColumn/TypeError before the planner ever runs.
type Aggregate struct {
	Name   string
	Action hir.Action
	By     []string
	Args   []Node
	Window time.Duration
}

func (*Aggregate) isMIRNode() {}

// Call mirrors hir.Call.
type Call struct {
	Name string
	Args []Node
}

func (*Call) isMIRNode() {}

// Scan is a checked vector selector: resource_name resolved to its *Table,
// matchers normalized to a slice of length len(schema.Labels) (a nil entry
// means "no predicate on this column"), and Projection normalized to
// chunk.Projection's ordinal ids.
type Scan struct {
	Table      *catalog.Table
	Matchers   []*wire.MatcherOp
	Range      wire.Range
	Projection chunk.Projection
}

func (*Scan) isMIRNode() {}

// Literal mirrors hir.Literal.
type Literal struct{ Value string }

func (*Literal) isMIRNode() {}

// Check resolves node against db, producing MIR or the first semantic error
// encountered (coldberr.ResourceNotExists, coldberr.NoColumn,
// coldberr.NoSupportRegex, coldberr.TypeError).
func Check(db *catalog.DB, node hir.Node) (Node, error) {
	switch n := node.(type) {
	case *hir.Aggregate:
		args := make([]Node, 0, len(n.Args))
		for _, a := range n.Args {
			checked, err := Check(db, a)
			if err != nil {
				return nil, err
			}
			args = append(args, checked)
		}
		return &Aggregate{Name: n.Name, Action: n.Action, By: n.By, Args: args, Window: n.Window}, nil

	case *hir.Call:
		args := make([]Node, 0, len(n.Args))
		for _, a := range n.Args {
			checked, err := Check(db, a)
			if err != nil {
				return nil, err
			}
			args = append(args, checked)
		}
		return &Call{Name: n.Name, Args: args}, nil

	case *hir.Scan:
		return checkScan(db, n)

	case *hir.Literal:
		return &Literal{Value: n.Value}, nil

	default:
		return nil, &coldberr.ParsingWrong{Message: "unrecognized HIR node"}
	}
}

func checkScan(db *catalog.DB, s *hir.Scan) (*Scan, error) {
	table, ok := db.Get(s.ResourceName)
	if !ok {
		return nil, &coldberr.ResourceNotExists{Name: s.ResourceName}
	}
	schema := table.Meta.Schema

	matchers := make([]*wire.MatcherOp, len(schema.Labels))
	for _, m := range s.Matchers {
		ord := schema.LabelOrdinal(m.Name)
		if ord < 0 {
			return nil, &coldberr.NoColumn{Op: "matcher", Table: s.ResourceName, Name: m.Name}
		}
		col := schema.Labels[ord]
		op := m.Op
		if op.Kind.IsRegex() {
			if col.Kind != wire.LabelString {
				return nil, &coldberr.NoSupportRegex{Name: m.Name}
			}
		} else if op.Value != nil && op.Value.Kind != col.Kind {
			return nil, &coldberr.TypeError{Place: m.Name, Expect: col.Kind.String(), Found: op.Value.Kind.String()}
		}
		opCopy := op
		matchers[ord] = &opCopy
	}

	proj, err := checkProjection(schema, s.ResourceName, s.Projection)
	if err != nil {
		return nil, err
	}

	return &Scan{Table: table, Matchers: matchers, Range: s.Range, Projection: proj}, nil
}

// checkProjection normalizes a name-keyed hir.Projection to ordinal ids. An
// empty projection (no Labels and no Fields named) means "project
// everything", matching a bare selector with no explicit column list.
func checkProjection(schema catalog.Schema, table string, p hir.Projection) (chunk.Projection, error) {
	var out chunk.Projection
	if len(p.Labels) == 0 && len(p.Fields) == 0 {
		for i := range schema.Labels {
			out.Insert(chunk.ProjectLabel, i)
		}
		for i := range schema.Fields {
			out.Insert(chunk.ProjectField, i)
		}
		return out, nil
	}
	for _, name := range p.Labels {
		ord := schema.LabelOrdinal(name)
		if ord < 0 {
			return chunk.Projection{}, &coldberr.NoColumn{Op: "projection", Table: table, Name: name}
		}
		out.Insert(chunk.ProjectLabel, ord)
	}
	for _, name := range p.Fields {
		ord := schema.FieldOrdinal(name)
		if ord < 0 {
			return chunk.Projection{}, &coldberr.NoColumn{Op: "projection", Table: table, Name: name}
		}
		out.Insert(chunk.ProjectField, ord)
	}
	return out, nil
}
