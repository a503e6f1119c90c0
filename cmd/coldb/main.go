/*
coldb is a standalone driver for the query pipeline: it builds a small
in-memory table, seeds it with synthetic rows, and runs one PromQL-subset
query against it end to end (parse -> check -> plan -> scan), printing the
number of matching rows to stdout. It exists to exercise query/hir, query/mir,
query/plan and query/exec outside of their unit tests.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/coldb/coldb/catalog"
	"github.com/coldb/coldb/column"
	"github.com/coldb/coldb/index"
	"github.com/coldb/coldb/query/hir"
	"github.com/coldb/coldb/query/mir"
	"github.com/coldb/coldb/query/plan"
	"github.com/coldb/coldb/query/exec"
	"github.com/coldb/coldb/wire"
)

var (
	query      = flag.String("query", `{__name__="demo.requests", env="production"}`, "PromQL-subset query to run against the demo table")
	numWorkers = flag.Int("workers", 4, "Number of catalog shards / scan workers")
	quota      = flag.Int("quota", exec.DefaultQuota, "Cooperative-yield quota handed to each scan worker")
)

func coldbUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Runs -query against a small synthetic demo table and prints the number of matching rows.\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = coldbUsage
	shutdown := grail.Init()
	defer shutdown()

	db := catalog.New(*numWorkers)
	seedDemoTable(db)

	now := time.Now()
	node, err := hir.Parse(*query, now)
	if err != nil {
		log.Panicf("parse: %v", err)
	}
	checked, err := mir.Check(db, node)
	if err != nil {
		log.Panicf("check: %v", err)
	}
	p, err := plan.Build(checked)
	if err != nil {
		log.Panicf("plan: %v", err)
	}

	ex := exec.Run(context.Background(), p, *quota)
	defer ex.Close()

	rows := 0
	for {
		recs, err, ok := ex.Next()
		if !ok {
			break
		}
		if err != nil {
			log.Error.Printf("scan: %v", err)
			continue
		}
		if recs == nil || len(recs.Labels) == 0 {
			continue
		}
		rows += recs.Labels[0].Len()
	}
	log.Debug.Printf("query %q matched %d rows", *query, rows)
	fmt.Printf("%d matching rows\n", rows)
}

// seedDemoTable creates a "demo.requests" table (env string label, host IPv4
// label, value float64 field) and pushes a handful of synthetic rows into
// its first shard.
func seedDemoTable(db *catalog.DB) {
	tbl, err := db.CreateTable("demo.requests", catalog.TableMeta{
		Schema: catalog.Schema{
			Labels: []catalog.LabelSchema{
				{Name: "env", Kind: wire.LabelString, Indexed: true, IndexKind: index.KindInverted},
				{Name: "host", Kind: wire.LabelIPv4},
			},
			Fields: []catalog.FieldSchema{
				{Name: "value", Kind: wire.FieldFloat64},
			},
		},
		ChunkWidth: 10,
		ChunkUnit:  1000,
	})
	if err != nil {
		log.Panicf("seedDemoTable: %v", err)
	}

	c := tbl.NewChunk(0)
	rows := []struct {
		env  string
		host [4]byte
		vals []float64
	}{
		{"production", [4]byte{10, 0, 0, 1}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"production", [4]byte{10, 0, 0, 2}, []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}},
		{"staging", [4]byte{10, 0, 1, 1}, []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, r := range rows {
		c.Push(
			[]*wire.LabelValue{
				{Kind: wire.LabelString, Str: r.env},
				{Kind: wire.LabelIPv4, IPv4: r.host},
			},
			[]column.Sample{{Kind: wire.FieldFloat64, F64: r.vals}},
		)
	}
	tbl.Shard(0).Append(c)
}
