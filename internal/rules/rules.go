// Package rules defines the rule model and the registry lint checks are
// served from.
//
// A rule couples a stable identifier with the detector enforcing it. The
// registry is the single source of truth about which rules exist: every
// finding a scan produces must resolve to a registered rule, and the two
// reserved rules ([RuleParseError], [RuleDetectorFault]) exist precisely so
// that findings the scanner produces on its own behalf resolve too.
package rules

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/sirkon/lintcheck/internal/source"
)

// Issue is a single defect a check reports, positioned within the file the
// pass runs over.
type Issue struct {
	Pos     token.Pos
	Message string
}

// Issuef builds an issue with a formatted message.
func Issuef(pos token.Pos, format string, args ...any) Issue {
	return Issue{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Pass carries per-file state into checks.
type Pass struct {
	File *source.File
}

// Position resolves pos within the file under inspection.
func (p *Pass) Position(pos token.Pos) token.Position {
	return p.File.Position(pos)
}

// CheckFunc inspects one node and reports the issues found there. Checks
// only see the node types their rule subscribed to and must not retain the
// pass or the node beyond the call.
type CheckFunc func(pass *Pass, node ast.Node) []Issue

// Rule couples an identifier with the detector enforcing it.
type Rule struct {
	// ID names the rule in reports and configuration. Kebab-case.
	ID string

	// Title is a one line description for rule listings.
	Title string

	// Severity ranks the rule's findings unless configuration overrides it.
	Severity Severity

	// Nodes holds prototype values for the node types Check subscribes to,
	// (*ast.FuncDecl)(nil) and the like.
	Nodes []ast.Node

	// Check is nil for the reserved rules, which exist only to describe
	// and rank findings the scanner itself produces.
	Check CheckFunc
}
