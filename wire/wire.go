// Package wire defines the external-interface value types coldb accepts
// from a query: MatcherOp, LabelValue, FieldType and the time Range
// (spec.md section 6, SPEC_FULL.md's supplemented Range.Intersect note).
package wire

import "math"

// LabelKind tags a LabelValue's variant.
type LabelKind int

const (
	LabelString LabelKind = iota
	LabelIPv4
	LabelIPv6
	LabelInt
	LabelBool
)

func (k LabelKind) String() string {
	switch k {
	case LabelString:
		return "string"
	case LabelIPv4:
		return "ipv4"
	case LabelIPv6:
		return "ipv6"
	case LabelInt:
		return "int"
	case LabelBool:
		return "bool"
	default:
		return "unknown"
	}
}

// LabelValue is the wire-level label value union: String(bytes) | IPv4([4]byte)
// | IPv6([16]byte) | Int(int64) | Bool(bool).
type LabelValue struct {
	Kind LabelKind
	Str  string
	IPv4 [4]byte
	IPv6 [16]byte
	Int  int64
	Bool bool
}

// FieldKind enumerates the 11 field value variants.
type FieldKind int

const (
	FieldUInt8 FieldKind = iota
	FieldUInt16
	FieldUInt32
	FieldUInt64
	FieldInt8
	FieldInt16
	FieldInt32
	FieldInt64
	FieldFloat32
	FieldFloat64
	FieldBool
)

func (k FieldKind) String() string {
	switch k {
	case FieldUInt8:
		return "uint8"
	case FieldUInt16:
		return "uint16"
	case FieldUInt32:
		return "uint32"
	case FieldUInt64:
		return "uint64"
	case FieldInt8:
		return "int8"
	case FieldInt16:
		return "int16"
	case FieldInt32:
		return "int32"
	case FieldInt64:
		return "int64"
	case FieldFloat32:
		return "float32"
	case FieldFloat64:
		return "float64"
	case FieldBool:
		return "bool"
	default:
		return "unknown"
	}
}

// MatcherOpKind tags a MatcherOp's variant.
type MatcherOpKind int

const (
	OpLiteralEqual MatcherOpKind = iota
	OpLiteralNotEqual
	OpRegexMatch
	OpRegexNotMatch
)

// Positive reports whether this op keeps matching rows (equal / regex
// match) as opposed to removing them (not-equal / regex-not-match), per
// spec.md section 4.3's IndexImpl::filter dispatch.
func (k MatcherOpKind) Positive() bool {
	return k == OpLiteralEqual || k == OpRegexMatch
}

// IsRegex reports whether this op is one of the two regex variants.
func (k MatcherOpKind) IsRegex() bool {
	return k == OpRegexMatch || k == OpRegexNotMatch
}

// MatcherOp is the wire-level per-label predicate: LiteralEqual(Option<V>) |
// LiteralNotEqual(Option<V>) | RegexMatch(String) | RegexNotMatch(String).
// For the literal variants, Value == nil means "compare to null".
type MatcherOp struct {
	Kind    MatcherOpKind
	Value   *LabelValue
	Pattern string
}

// Unbounded sentinels for Range's optional start/end.
const (
	NoStart = math.MinInt64
	NoEnd   = math.MaxInt64
)

// Range is a millisecond-epoch time range; Start/End default to the
// Unbounded sentinels when a query doesn't specify them.
type Range struct {
	Start int64
	End   int64
}

// UnboundedRange returns a range with no constraints.
func UnboundedRange() Range { return Range{Start: NoStart, End: NoEnd} }

// Intersect returns r ∩ o, coldb's explicit-method equivalent of the
// original's Range BitAnd operator overload (Go has no operator
// overloading, so this is the intentional, documented deviation named in
// SPEC_FULL.md).
func (r Range) Intersect(o Range) Range {
	start := r.Start
	if o.Start > start {
		start = o.Start
	}
	end := r.End
	if o.End < end {
		end = o.End
	}
	return Range{Start: start, End: end}
}

// Empty reports whether the range is empty (start >= end).
func (r Range) Empty() bool { return r.Start >= r.End }
