// Package exec is the scan executor: it fans a ScanPlanner out across a
// table's per-worker shards and streams back Records, one chunk at a time
// (spec.md section 4.11/4.12, SPEC_FULL.md component K).
package exec

import (
	"context"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/pkg/errors"

	"github.com/coldb/coldb/chunk"
	"github.com/coldb/coldb/column"
	"github.com/coldb/coldb/query/plan"
	"github.com/coldb/coldb/sample"
	"github.com/coldb/coldb/sched"
)

// DefaultQuota is the cooperative-yield budget (spec.md section 4.8) handed
// to each worker's sched.Context when a caller doesn't need a specific one.
const DefaultQuota = 1024

// result is one item on Execution's result channel: either a chunk's
// filtered Records, or the error that aborted it.
type result struct {
	Records *chunk.Records
	Err     error
}

// Execution is a running scan: Next drains its chunks one at a time in
// whatever order workers finish them in.
type Execution struct {
	ch     chan result
	cancel context.CancelFunc
}

// Run starts p's scan: one goroutine per shard (spec.md section 5's
// per-worker fan-out, via traverse.Each as the teacher's own parallelism
// idiom), each walking its shard's chunks, skipping any that don't
// intersect p.Range, filtering the rest and posting Records on a channel of
// capacity 1 shared by every worker. A per-chunk filter error is posted as
// that chunk's result and does not stop the worker from continuing on to
// its next chunk (spec.md section 4.12): the caller decides, on seeing an
// error from Next, whether to keep draining or to Close and walk away.
func Run(ctx context.Context, p *plan.ScanPlanner, quota int) *Execution {
	if quota <= 0 {
		quota = DefaultQuota
	}
	runCtx, cancel := context.WithCancel(ctx)
	ex := &Execution{ch: make(chan result, 1), cancel: cancel}

	go func() {
		defer close(ex.ch)
		numWorkers := p.Table.NumShards()
		err := traverse.Each(numWorkers, func(w int) error {
			shard := p.Table.Shard(w)
			if shard == nil {
				return nil
			}
			cx := sched.New(quota)
			for _, c := range shard.Snapshot() {
				if runCtx.Err() != nil {
					return runCtx.Err()
				}
				if !c.Intersects(p.Range) {
					continue
				}
				clipped := p.Range.Intersect(c.Meta.Range())
				recs, ferr := c.Filter(cx, p.Matchers, p.Projection, clipped)
				if ferr != nil {
					log.Error.Printf("exec: worker %d: chunk filter failed: %v", w, ferr)
					if !sendResult(runCtx, ex.ch, result{Err: ferr}) {
						return runCtx.Err()
					}
					continue
				}
				if p.RateWrap {
					recs = rateRecords(recs)
				}
				if !sendResult(runCtx, ex.ch, result{Records: recs}) {
					return runCtx.Err()
				}
			}
			return nil
		})
		if err != nil {
			sendResult(runCtx, ex.ch, result{Err: errors.Wrap(err, "scan: shard fan-out failed")})
		}
	}()

	return ex
}

// sendResult posts r on ch, returning false if ctx was cancelled first.
func sendResult(ctx context.Context, ch chan<- result, r result) bool {
	select {
	case ch <- r:
		return true
	case <-ctx.Done():
		return false
	}
}

// rateRecords replaces each field column in recs with its rate-transformed
// form (sample.Rate applied row by row), leaving label columns untouched. A
// rated column's stride is one less than its source, per sample.Rate.
func rateRecords(recs *chunk.Records) *chunk.Records {
	if recs == nil || len(recs.Fields) == 0 {
		return recs
	}
	out := &chunk.Records{Labels: recs.Labels}
	for _, fc := range recs.Fields {
		out.Fields = append(out.Fields, rateField(fc))
	}
	return out
}

// rateField builds a fresh FieldColumn holding the rate of every row in fc.
// A row whose rate is undefined (e.g. fc's stride is too small) contributes
// a zeroed, invalid sample so row alignment with the label columns holds.
func rateField(fc *column.FieldColumn) *column.FieldColumn {
	stride := fc.Stride() - 1
	if stride < 1 {
		stride = 1
	}
	dst := column.NewFieldColumn(fc.Kind(), stride)
	for row := 0; row < fc.Len(); row++ {
		w, ok := fc.Get(row)
		if !ok {
			dst.PushZero()
			continue
		}
		s, err := sample.Rate(w)
		if err != nil || fc.Stride() < 2 {
			dst.PushZero()
			continue
		}
		dst.Push(s)
	}
	return dst
}

// Next blocks until the next chunk's Records (or error) is available; ok is
// false once the scan has finished and nothing further will arrive.
func (e *Execution) Next() (*chunk.Records, error, bool) {
	r, ok := <-e.ch
	if !ok {
		return nil, nil, false
	}
	return r.Records, r.Err, true
}

// Close cancels the scan; any workers still running stop at their next
// chunk boundary.
func (e *Execution) Close() { e.cancel() }
