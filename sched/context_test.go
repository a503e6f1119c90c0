package sched

import "testing"

// TestYieldCountInvariant checks spec.md section 8: with quota q and n rows
// of work, the number of yield_now invocations during a scan is floor(n/q).
func TestYieldCountInvariant(t *testing.T) {
	cases := []struct{ quota, rows int }{
		{4, 17}, {5, 25}, {3, 10}, {1, 7}, {10, 9},
	}
	for _, c := range cases {
		cx := New(c.quota)
		yields := 0
		for i := 0; i < c.rows; i++ {
			if cx.Take() {
				cx.YieldNow()
				yields++
			}
		}
		want := c.rows / c.quota
		if yields != want {
			t.Fatalf("quota=%d rows=%d: got %d yields, want %d", c.quota, c.rows, yields, want)
		}
	}
}

func TestCopyFromSharesSessionAndQuotaButNotCounter(t *testing.T) {
	cx := New(4)
	cx.Take()
	cx.Take()
	cp := CopyFrom(cx)
	if cp.SessionID != cx.SessionID {
		t.Fatalf("CopyFrom must preserve the session id")
	}
	if cp.Quota() != cx.Quota() {
		t.Fatalf("CopyFrom must preserve the quota")
	}
	// cp's counter is freshly reset to quota, independent of cx's progress.
	for i := 0; i < cp.Quota()-1; i++ {
		if cp.Take() {
			t.Fatalf("copy's counter should not be exhausted early")
		}
	}
	if !cp.Take() {
		t.Fatalf("copy's counter should exhaust exactly at quota")
	}
}
