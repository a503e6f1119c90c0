package hir

import (
	"testing"
	"time"

	"github.com/coldb/coldb/wire"
)

// TestParseEndToEnd reproduces spec.md section 8 scenario 5: an aggregate
// wrapping a rate() call wrapping a range-vector scan with two matchers
// and a week-old offset.
func TestParseEndToEnd(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	query := `sum (rate({__name__="foo.bar.something_used", env="production", status!~"4.."}[5m] offset 1w)) by (test)`

	node, err := Parse(query, now)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	agg, ok := node.(*Aggregate)
	if !ok {
		t.Fatalf("expected top-level Aggregate, got %T", node)
	}
	if agg.Name != "sum" || len(agg.By) != 1 || agg.By[0] != "test" {
		t.Fatalf("unexpected aggregate: %+v", agg)
	}
	if len(agg.Args) != 1 {
		t.Fatalf("expected one aggregate argument, got %d", len(agg.Args))
	}

	call, ok := agg.Args[0].(*Call)
	if !ok || call.Name != "rate" {
		t.Fatalf("expected Call(rate), got %+v", agg.Args[0])
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected one rate() argument, got %d", len(call.Args))
	}

	scan, ok := call.Args[0].(*Scan)
	if !ok {
		t.Fatalf("expected Scan, got %T", call.Args[0])
	}
	if scan.ResourceName != "foo.bar.something_used" {
		t.Fatalf("unexpected resource name: %q", scan.ResourceName)
	}
	if len(scan.Matchers) != 2 {
		t.Fatalf("expected 2 matchers, got %d: %+v", len(scan.Matchers), scan.Matchers)
	}
	byName := map[string]MatcherEntry{}
	for _, m := range scan.Matchers {
		byName[m.Name] = m
	}
	env, ok := byName["env"]
	if !ok || env.Op.Kind != wire.OpLiteralEqual || env.Op.Value.Str != "production" {
		t.Fatalf("unexpected env matcher: %+v", env)
	}
	status, ok := byName["status"]
	if !ok || status.Op.Kind != wire.OpRegexNotMatch || status.Op.Pattern != "4.." {
		t.Fatalf("unexpected status matcher: %+v", status)
	}

	wantEnd := now.Add(-7 * 24 * time.Hour)
	wantStart := wantEnd.Add(-5 * time.Minute)
	if scan.Range.End != wantEnd.UnixMilli() || scan.Range.Start != wantStart.UnixMilli() {
		t.Fatalf("unexpected range: %+v, want [%d,%d]", scan.Range, wantStart.UnixMilli(), wantEnd.UnixMilli())
	}
}

func TestParseMissingNameErrors(t *testing.T) {
	_, err := Parse(`{env="production"}`, time.Now())
	if err == nil {
		t.Fatalf("expected an error for a selector with no __name__")
	}
}
