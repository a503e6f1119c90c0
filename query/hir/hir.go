// Package hir is the query pipeline's first stage: parsing a PromQL-subset
// query string (via the external prometheus/prometheus parser) into coldb's
// own high-level IR (spec.md section 4.9, SPEC_FULL.md component K).
package hir

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/coldb/coldb/coldberr"
	"github.com/coldb/coldb/wire"
)

// Action distinguishes an Aggregate's by/without grouping mode.
type Action int

const (
	With Action = iota
	Without
)

// Node is the HIR sum type: Aggregate | Call | Scan | Literal.
type Node interface{ isHIRNode() }

// MatcherEntry pairs an unresolved label name with its wire-level matcher,
// before the check (MIR) pass resolves the name to a column ordinal.
type MatcherEntry struct {
	Name string
	Op   wire.MatcherOp
}

// Projection is the pre-resolution (name-keyed) form of a projection list.
// spec.md section 9 Open Question (b): the original's Projection::insert has
// a bug where its field branch appends to self.labels; Insert below
// implements the intended behavior.
type Projection struct {
	Labels []string
	Fields []string
}

// ProjectionKind selects which list Insert appends to.
type ProjectionKind int

const (
	ProjectLabel ProjectionKind = iota
	ProjectField
)

// Insert appends name to the list selected by kind.
func (p *Projection) Insert(kind ProjectionKind, name string) {
	switch kind {
	case ProjectLabel:
		p.Labels = append(p.Labels, name)
	case ProjectField:
		p.Fields = append(p.Fields, name)
	}
}

// Aggregate is an aggregation clause wrapping one or more argument nodes
// (spec.md section 4.9). Window/aggregation planning itself is out of
// scope (spec.md section 9 Open Question (d)); HIR still represents it so
// the check pass can validate its children.
type Aggregate struct {
	Name   string
	Action Action
	By     []string
	Args   []Node
	Window time.Duration
}

func (*Aggregate) isHIRNode() {}

// Call is a function application, e.g. rate(...).
type Call struct {
	Name string
	Args []Node
}

func (*Call) isHIRNode() {}

// Scan is a vector selector: a resource name, label matchers, a time range
// and a (not yet resolved) projection.
type Scan struct {
	ResourceName string
	Matchers     []MatcherEntry
	Range        wire.Range
	Projection   Projection
}

func (*Scan) isHIRNode() {}

// Literal is a bare string literal argument (e.g. a by-clause identifier
// passed positionally in some PromQL function calls).
type Literal struct{ Value string }

func (*Literal) isHIRNode() {}

// Parse parses query text into HIR. now anchors relative range/offset
// resolution ("[5m]" ranges set start = end - 5m; offsets subtract from
// end = now"), per spec.md section 4.9; callers pass the wall-clock time
// explicitly so parsing stays deterministic and testable.
func Parse(query string, now time.Time) (Node, error) {
	expr, err := parser.ParseExpr(query)
	if err != nil {
		return nil, &coldberr.ParsingWrong{Message: errors.Wrapf(err, "parsing query %q", query).Error()}
	}
	return fromExpr(expr, now)
}

func fromExpr(expr parser.Expr, now time.Time) (Node, error) {
	switch e := expr.(type) {
	case *parser.AggregateExpr:
		inner, err := fromExpr(e.Expr, now)
		if err != nil {
			return nil, err
		}
		args := []Node{inner}
		if e.Param != nil {
			p, err := fromExpr(e.Param, now)
			if err != nil {
				return nil, err
			}
			args = append(args, p)
		}
		action := With
		if e.Without {
			action = Without
		}
		return &Aggregate{Name: e.Op.String(), Action: action, By: e.Grouping, Args: args}, nil

	case *parser.Call:
		args := make([]Node, 0, len(e.Args))
		for _, a := range e.Args {
			n, err := fromExpr(a, now)
			if err != nil {
				return nil, err
			}
			args = append(args, n)
		}
		return &Call{Name: e.Func.Name, Args: args}, nil

	case *parser.MatrixSelector:
		vs, ok := e.VectorSelector.(*parser.VectorSelector)
		if !ok {
			return nil, &coldberr.ParsingWrong{Message: "range selector over a non-vector expression"}
		}
		return fromVectorSelector(vs, e.Range, now)

	case *parser.VectorSelector:
		return fromVectorSelector(e, 0, now)

	case *parser.StringLiteral:
		return &Literal{Value: e.Val}, nil

	default:
		return nil, &coldberr.ParsingWrong{Message: "unsupported PromQL construct"}
	}
}

func fromVectorSelector(vs *parser.VectorSelector, rng time.Duration, now time.Time) (Node, error) {
	var name string
	var matchers []MatcherEntry
	for _, m := range vs.LabelMatchers {
		if m.Name == labels.MetricName {
			name = m.Value
			continue
		}
		op, err := convertMatcherOp(m)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, MatcherEntry{Name: m.Name, Op: op})
	}
	if name == "" {
		return nil, coldberr.ErrNoName
	}

	end := now.Add(-vs.OriginalOffset)
	start := end
	if rng > 0 {
		start = end.Add(-rng)
	}
	return &Scan{
		ResourceName: name,
		Matchers:     matchers,
		Range:        wire.Range{Start: start.UnixMilli(), End: end.UnixMilli()},
	}, nil
}

func convertMatcherOp(m *labels.Matcher) (wire.MatcherOp, error) {
	val := &wire.LabelValue{Kind: wire.LabelString, Str: m.Value}
	switch m.Type {
	case labels.MatchEqual:
		return wire.MatcherOp{Kind: wire.OpLiteralEqual, Value: val}, nil
	case labels.MatchNotEqual:
		return wire.MatcherOp{Kind: wire.OpLiteralNotEqual, Value: val}, nil
	case labels.MatchRegexp:
		return wire.MatcherOp{Kind: wire.OpRegexMatch, Pattern: m.Value}, nil
	case labels.MatchNotRegexp:
		return wire.MatcherOp{Kind: wire.OpRegexNotMatch, Pattern: m.Value}, nil
	default:
		return wire.MatcherOp{}, &coldberr.ParsingWrong{Message: "unknown matcher type"}
	}
}
