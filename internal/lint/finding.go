// Package lint defines the finding model shared by the scanner, the
// aggregator, and the renderers.
//
// A Finding is an immutable value: once produced by a detector it is never
// modified, only copied, merged, and ordered. Ordering is total and fixed
// (path, line, column, rule, message) so that any two runs over the same
// inputs place the same findings at the same offsets of the final report.
package lint

import (
	"cmp"
	"strings"
)

// Finding is one reported violation of a rule at a specific source location.
//
// Severity is intentionally absent: it belongs to the rule, not to the
// occurrence, and is resolved through the rule registry at render time.
type Finding struct {
	// Rule is the identifier of the violated rule.
	Rule string

	// Path is the file path as it was given to the scanner.
	Path string

	// Line and Col are 1-based.
	Line int
	Col  int

	// Message is the human-readable description of this occurrence.
	Message string
}

// Compare orders findings by (path, line, column, rule, message).
//
// The first four components are the report ordering contract; message is the
// final tie-break so the order is total and Compare(a, b) == 0 exactly when
// a and b are duplicates.
func (f Finding) Compare(other Finding) int {
	return cmp.Or(
		strings.Compare(f.Path, other.Path),
		cmp.Compare(f.Line, other.Line),
		cmp.Compare(f.Col, other.Col),
		strings.Compare(f.Rule, other.Rule),
		strings.Compare(f.Message, other.Message),
	)
}

// Result is an ordered sequence of findings. Per-file results produced by
// scan workers are unordered until they pass through an Aggregator, whose
// Result method establishes the final order.
type Result []Finding
