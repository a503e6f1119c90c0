// Package coldberr is the error taxonomy shared by the storage, semantic,
// parse and catalog layers (spec.md section 7 / SPEC_FULL.md component M).
//
// The original source carried two competing lookup-error types; coldberr
// folds them into a single FilterError per Open Question (a), see
// SPEC_FULL.md.
package coldberr

import "fmt"

// FilterError is raised by the storage layer (LabelImpl.Filter, regex
// compilation) and surfaces through the scan executor unmodified.
type FilterError struct {
	Kind FilterErrorKind
	// Expect/Found are populated for MismatchType.
	Expect string
	Found  string
	// Cause is populated for PatternError (a regex compile failure).
	Cause error
}

// FilterErrorKind enumerates the ways LabelImpl.Filter can fail.
type FilterErrorKind int

const (
	// RegexStringOnly is raised when a regex matcher targets a non-string label.
	RegexStringOnly FilterErrorKind = iota
	// PatternError is raised when a regex pattern fails to compile.
	PatternError
	// MismatchType is raised when a literal matcher's value type does not
	// match the label column's type.
	MismatchType
)

func (e *FilterError) Error() string {
	switch e.Kind {
	case RegexStringOnly:
		return "regex matcher is only supported on string labels"
	case PatternError:
		return fmt.Sprintf("invalid regex pattern: %v", e.Cause)
	case MismatchType:
		return fmt.Sprintf("matcher type mismatch: expected %s, found %s", e.Expect, e.Found)
	default:
		return "filter error"
	}
}

func (e *FilterError) Unwrap() error { return e.Cause }

// NewRegexStringOnly builds the RegexStringOnly FilterError variant.
func NewRegexStringOnly() *FilterError { return &FilterError{Kind: RegexStringOnly} }

// NewPatternError builds the PatternError FilterError variant.
func NewPatternError(cause error) *FilterError {
	return &FilterError{Kind: PatternError, Cause: cause}
}

// NewMismatchType builds the MismatchType FilterError variant.
func NewMismatchType(expect, found string) *FilterError {
	return &FilterError{Kind: MismatchType, Expect: expect, Found: found}
}

// NoColumn is raised during semantic checking when a matcher, projection or
// aggregation clause references an unknown column name.
type NoColumn struct {
	Op    string
	Table string
	Name  string
}

func (e *NoColumn) Error() string {
	return fmt.Sprintf("%s: table %q has no column %q", e.Op, e.Table, e.Name)
}

// NoSupportRegex is raised during semantic checking when a regex matcher
// targets a non-string column; this is the plan-time counterpart of the
// storage-level RegexStringOnly error (caught earlier, before a scan spawns).
type NoSupportRegex struct {
	Name string
}

func (e *NoSupportRegex) Error() string {
	return fmt.Sprintf("regex matcher not supported on non-string column %q", e.Name)
}

// TypeError is raised when a literal matcher value's wire type does not
// agree with its resolved column's type.
type TypeError struct {
	Place  string
	Expect string
	Found  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Place, e.Expect, e.Found)
}

// ResourceNotExists is raised when a query names a table the catalog does
// not have.
type ResourceNotExists struct {
	Name string
}

func (e *ResourceNotExists) Error() string {
	return fmt.Sprintf("resource does not exist: %q", e.Name)
}

// ParsingWrong wraps a PromQL parser failure.
type ParsingWrong struct {
	Message string
}

func (e *ParsingWrong) Error() string { return fmt.Sprintf("parse error: %s", e.Message) }

// ErrNoName is returned when a vector selector has no __name__ label, so the
// target table cannot be resolved.
var ErrNoName = fmt.Errorf("query has no __name__ label")

// TableExists is raised by the catalog when CreateTable is called with a
// name that is already registered.
type TableExists struct {
	Name string
}

func (e *TableExists) Error() string { return fmt.Sprintf("table already exists: %q", e.Name) }

// ErrUnsupportedAggregate is returned by the physical planner for aggregation
// clauses; window/aggregation planning is out of scope (spec.md Open
// Question (d)).
var ErrUnsupportedAggregate = fmt.Errorf("aggregation planning is not supported")

// ErrRateDomain is the functional (spec.md section 7) domain error raised
// when the rate sample transform is applied to a Bool field.
var ErrRateDomain = fmt.Errorf("rate is not defined over a bool field")
