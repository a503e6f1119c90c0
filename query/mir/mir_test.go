package mir

import (
	"testing"
	"time"

	"github.com/coldb/coldb/catalog"
	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/query/hir"
	"github.com/coldb/coldb/wire"
)

func testDB() *catalog.DB {
	db := catalog.New(2)
	db.CreateTable("foo.bar.something_used", catalog.TableMeta{
		Schema: catalog.Schema{
			Labels: []catalog.LabelSchema{
				{Name: "env", Kind: wire.LabelString, Indexed: true, IndexKind: index.KindInverted},
				{Name: "status", Kind: wire.LabelString, Indexed: true, IndexKind: index.KindInverted},
				{Name: "host", Kind: wire.LabelIPv4},
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

func TestCheckScanResolvesMatchersAndProjection(t *testing.T) {
	db := testDB()
	node, err := hir.Parse(`{__name__="foo.bar.something_used", env="production"}`, time.Now())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	checked, err := Check(db, node)
	if err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
	scan, ok := checked.(*Scan)
	if !ok {
		t.Fatalf("expected *Scan, got %T", checked)
	}
	if scan.Table.Name != "foo.bar.something_used" {
		t.Fatalf("unexpected table: %q", scan.Table.Name)
	}
	if len(scan.Matchers) != 3 {
		t.Fatalf("expected matchers slice sized to schema labels (3), got %d", len(scan.Matchers))
	}
	if scan.Matchers[0] == nil || scan.Matchers[0].Value.Str != "production" {
		t.Fatalf("expected matcher at ordinal 0 (env), got %+v", scan.Matchers[0])
	}
	if scan.Matchers[1] != nil || scan.Matchers[2] != nil {
		t.Fatalf("expected no predicate on status/host ordinals")
	}
	// No explicit projection in the query: check defaults to "project everything".
	if len(scan.Projection.Labels) != 3 || len(scan.Projection.Fields) != 1 {
		t.Fatalf("expected a full default projection, got %+v", scan.Projection)
	}
}

func TestCheckUnknownTableErrors(t *testing.T) {
	db := testDB()
	node, err := hir.Parse(`{__name__="missing.metric"}`, time.Now())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := Check(db, node); err == nil {
		t.Fatalf("expected ResourceNotExists for an unknown table")
	}
}

func TestCheckUnknownMatcherColumnErrors(t *testing.T) {
	db := testDB()
	node, err := hir.Parse(`{__name__="foo.bar.something_used", bogus="x"}`, time.Now())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := Check(db, node); err == nil {
		t.Fatalf("expected NoColumn for an unknown matcher label")
	}
}

func TestCheckRegexOnNonStringColumnErrors(t *testing.T) {
	db := testDB()
	node, err := hir.Parse(`{__name__="foo.bar.something_used", host=~"10\\..*"}`, time.Now())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := Check(db, node); err == nil {
		t.Fatalf("expected NoSupportRegex for a regex matcher on an IPv4 column")
	}
}
