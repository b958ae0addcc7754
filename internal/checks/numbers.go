package checks

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/lintcheck/internal/rules"
)

// MagicNumber flags numeric literals outside const declarations. Zero and
// one are too common to deserve names, test files are exempt.
func MagicNumber() rules.Rule {
	return rules.Rule{
		ID:       "magic-number",
		Title:    "numeric literals belong in const declarations",
		Severity: rules.SeverityInfo,
		Nodes:    []ast.Node{(*ast.BasicLit)(nil)},
		Check:    checkMagicNumber,
	}
}

func checkMagicNumber(pass *rules.Pass, node ast.Node) []rules.Issue {
	if pass.File.Test() {
		return nil
	}

	lit := node.(*ast.BasicLit)
	if lit.Kind != token.INT && lit.Kind != token.FLOAT {
		return nil
	}

	switch lit.Value {
	case "0", "1":
		return nil
	}

	if pass.File.Outline.InConst(lit.Pos()) {
		return nil
	}

	return []rules.Issue{
		rules.Issuef(lit.Pos(), "magic number %s belongs in a const declaration", lit.Value),
	}
}
