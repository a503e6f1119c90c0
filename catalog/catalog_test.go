package catalog

import (
	"testing"

	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/wire"
)

func testMeta() TableMeta {
	return TableMeta{
		Schema: Schema{
			Labels: []LabelSchema{
				{Name: "env", Kind: wire.LabelString, Indexed: true, IndexKind: index.KindInverted},
			},
			Fields: []FieldSchema{
				{Name: "value", Kind: wire.FieldFloat64},
			},
		},
		ChunkWidth: 60,
		ChunkUnit:  1000,
	}
}

func TestCreateTableThenDuplicateFails(t *testing.T) {
	db := New(4)
	if _, err := db.CreateTable("foo.bar.requests", testMeta()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := db.CreateTable("foo.bar.requests", testMeta()); err == nil {
		t.Fatalf("expected TableExists on duplicate create")
	}
}

func TestGetUnknownTable(t *testing.T) {
	db := New(4)
	if _, ok := db.Get("missing"); ok {
		t.Fatalf("expected Get to report the table absent")
	}
}

func TestTableShardsPerWorker(t *testing.T) {
	db := New(4)
	tbl, err := db.CreateTable("foo.bar.requests", testMeta())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.NumShards() != 4 {
		t.Fatalf("expected 4 shards, got %d", tbl.NumShards())
	}
	c := tbl.NewChunk(0)
	tbl.Shard(0).Append(c)
	if len(tbl.Shard(0).Snapshot()) != 1 {
		t.Fatalf("expected shard 0 to have one chunk after append")
	}
	if len(tbl.Shard(1).Snapshot()) != 0 {
		t.Fatalf("expected shard 1 to remain empty")
	}
}

func TestTagAndLookup(t *testing.T) {
	db := New(2)
	if _, err := db.CreateTable("foo.bar.requests", testMeta()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := db.Tag("foo.bar.requests", "team", "payments"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := db.TablesByTag("team", "payments")
	if len(names) != 1 || names[0] != "foo.bar.requests" {
		t.Fatalf("unexpected tag lookup result: %v", names)
	}
	if err := db.Tag("missing", "team", "payments"); err == nil {
		t.Fatalf("expected ResourceNotExists tagging an unknown table")
	}
}
