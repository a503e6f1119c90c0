package plan

import (
	"testing"
	"time"

	"github.com/coldb/coldb/catalog"
	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/query/hir"
	"github.com/coldb/coldb/query/mir"
	"github.com/coldb/coldb/wire"
)

func testDB() *catalog.DB {
	db := catalog.New(2)
	db.CreateTable("foo.bar.something_used", catalog.TableMeta{
		Schema: catalog.Schema{
			Labels: []catalog.LabelSchema{
				{Name: "env", Kind: wire.LabelString, Indexed: true, IndexKind: index.KindInverted},
			},
			Fields: []catalog.FieldSchema{
				{Name: "value", Kind: wire.FieldFloat64},
			},
		},
		ChunkWidth: 60,
		ChunkUnit:  1000,
	})
	return db
}

func mustCheck(t *testing.T, db *catalog.DB, query string) mir.Node {
	t.Helper()
	node, err := hir.Parse(query, time.Now())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	checked, err := mir.Check(db, node)
	if err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	return checked
}

func TestBuildBareScan(t *testing.T) {
	db := testDB()
	node := mustCheck(t, db, `{__name__="foo.bar.something_used"}`)
	p, err := Build(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Resource != "foo.bar.something_used" || p.RateWrap {
		t.Fatalf("unexpected plan: %+v", p)
	}
}

func TestBuildRateWrapsScan(t *testing.T) {
	db := testDB()
	node := mustCheck(t, db, `rate({__name__="foo.bar.something_used"}[5m])`)
	p, err := Build(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.RateWrap {
		t.Fatalf("expected RateWrap to be set for a rate() call")
	}
}

func TestBuildAggregateIsUnsupported(t *testing.T) {
	db := testDB()
	node := mustCheck(t, db, `sum(rate({__name__="foo.bar.something_used"}[5m])) by (env)`)
	if _, err := Build(node); err == nil {
		t.Fatalf("expected ErrUnsupportedAggregate for a top-level aggregate")
	}
}

func TestBuildCallWithWrongArityIsUnsupported(t *testing.T) {
	db := testDB()
	node := mustCheck(t, db, `rate({__name__="foo.bar.something_used"}[5m])`)
	call, ok := node.(*mir.Call)
	if !ok {
		t.Fatalf("expected *mir.Call, got %T", node)
	}
	call.Args = append(call.Args, call.Args[0])
	if _, err := Build(call); err == nil {
		t.Fatalf("expected ErrUnsupportedAggregate for a call with more than one argument")
	}
}
