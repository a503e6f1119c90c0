// Package sample implements the rate function applied to a scanned field
// window (spec.md section 4.10, SPEC_FULL.md component L).
package sample

import (
	"github.com/coldb/coldb/coldberr"
	"github.com/coldb/coldb/column"
	"github.com/coldb/coldb/scalar"
	"github.com/coldb/coldb/wire"
)

// Rate computes the elementwise successive difference of w: for a window of
// n samples it produces n-1 rated samples, rated[i] = values[i+1]-values[i]
// when both sides are non-null, else null. Integer subtraction wraps at the
// variant's width (Go's native two's-complement arithmetic already does
// this); floating-point subtraction follows IEEE 754 via Go's native
// float ops. Bool input is a domain error (coldberr.ErrRateDomain).
func Rate(w column.Window) (column.Sample, error) {
	switch w.Kind {
	case wire.FieldBool:
		return column.Sample{}, coldberr.ErrRateDomain
	case wire.FieldUInt8:
		v, ok := rate(w.U8.Values, w.U8.Valid)
		return column.Sample{Kind: wire.FieldUInt8, U8: v, Valid: ok}, nil
	case wire.FieldUInt16:
		v, ok := rate(w.U16.Values, w.U16.Valid)
		return column.Sample{Kind: wire.FieldUInt16, U16: v, Valid: ok}, nil
	case wire.FieldUInt32:
		v, ok := rate(w.U32.Values, w.U32.Valid)
		return column.Sample{Kind: wire.FieldUInt32, U32: v, Valid: ok}, nil
	case wire.FieldUInt64:
		v, ok := rate(w.U64.Values, w.U64.Valid)
		return column.Sample{Kind: wire.FieldUInt64, U64: v, Valid: ok}, nil
	case wire.FieldInt8:
		v, ok := rate(w.I8.Values, w.I8.Valid)
		return column.Sample{Kind: wire.FieldInt8, I8: v, Valid: ok}, nil
	case wire.FieldInt16:
		v, ok := rate(w.I16.Values, w.I16.Valid)
		return column.Sample{Kind: wire.FieldInt16, I16: v, Valid: ok}, nil
	case wire.FieldInt32:
		v, ok := rate(w.I32.Values, w.I32.Valid)
		return column.Sample{Kind: wire.FieldInt32, I32: v, Valid: ok}, nil
	case wire.FieldInt64:
		v, ok := rate(w.I64.Values, w.I64.Valid)
		return column.Sample{Kind: wire.FieldInt64, I64: v, Valid: ok}, nil
	case wire.FieldFloat32:
		v, ok := rate(w.F32.Values, w.F32.Valid)
		return column.Sample{Kind: wire.FieldFloat32, F32: v, Valid: ok}, nil
	case wire.FieldFloat64:
		v, ok := rate(w.F64.Values, w.F64.Valid)
		return column.Sample{Kind: wire.FieldFloat64, F64: v, Valid: ok}, nil
	default:
		return column.Sample{}, coldberr.ErrRateDomain
	}
}

// rate is the shared numeric kernel behind Rate's per-variant dispatch.
func rate[P scalar.Numeric](values []P, valid []bool) ([]P, []bool) {
	n := len(values)
	if n == 0 {
		return nil, nil
	}
	outVals := make([]P, n-1)
	outValid := make([]bool, n-1)
	for i := 0; i < n-1; i++ {
		if sampleValid(valid, i) && sampleValid(valid, i+1) {
			outVals[i] = values[i+1] - values[i]
			outValid[i] = true
		}
	}
	return outVals, outValid
}

func sampleValid(valid []bool, i int) bool {
	if valid == nil {
		return true
	}
	return valid[i]
}
