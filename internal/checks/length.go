package checks

import (
	"go/ast"

	"github.com/sirkon/lintcheck/internal/rules"
)

const (
	// nakedReturnLimit is the body length, in lines, up to which a naked
	// return is still readable at a glance.
	nakedReturnLimit = 15

	// funcLengthLimit is the body length, in lines, a function may reach
	// before it is worth splitting.
	funcLengthLimit = 60
)

// NakedReturn flags naked returns in longer functions with named results.
func NakedReturn() rules.Rule {
	return rules.Rule{
		ID:       "naked-return",
		Title:    "naked returns hide what longer functions produce",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)},
		Check:    checkNakedReturn,
	}
}

func checkNakedReturn(pass *rules.Pass, node ast.Node) []rules.Issue {
	var typ *ast.FuncType
	var body *ast.BlockStmt
	switch v := node.(type) {
	case *ast.FuncDecl:
		typ, body = v.Type, v.Body
	case *ast.FuncLit:
		typ, body = v.Type, v.Body
	}
	if body == nil || !namedResults(typ) {
		return nil
	}

	lines := bodyLines(pass, body)
	if lines <= nakedReturnLimit {
		return nil
	}

	var issues []rules.Issue
	ast.Inspect(body, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncLit:
			// Nested literals report for themselves.
			return false
		case *ast.ReturnStmt:
			if len(v.Results) == 0 {
				issues = append(issues, rules.Issuef(v.Pos(), "naked return in a function of %d lines with named results", lines))
			}
		}

		return true
	})

	return issues
}

func namedResults(typ *ast.FuncType) bool {
	if typ.Results == nil {
		return false
	}

	for _, field := range typ.Results.List {
		if len(field.Names) > 0 {
			return true
		}
	}

	return false
}

func bodyLines(pass *rules.Pass, body *ast.BlockStmt) int {
	return pass.Position(body.End()).Line - pass.Position(body.Pos()).Line + 1
}

// FuncLength flags function bodies beyond funcLengthLimit lines. Test files
// are exempt, table tests legitimately run long.
func FuncLength() rules.Rule {
	return rules.Rule{
		ID:       "func-length",
		Title:    "overly long functions are hard to follow",
		Severity: rules.SeverityInfo,
		Nodes:    []ast.Node{(*ast.FuncDecl)(nil)},
		Check:    checkFuncLength,
	}
}

func checkFuncLength(pass *rules.Pass, node ast.Node) []rules.Issue {
	if pass.File.Test() {
		return nil
	}

	fn := node.(*ast.FuncDecl)
	if fn.Body == nil {
		return nil
	}

	lines := bodyLines(pass, fn.Body)
	if lines <= funcLengthLimit {
		return nil
	}

	return []rules.Issue{
		rules.Issuef(fn.Pos(), "function %s is %d lines long, want %d or fewer", fn.Name.Name, lines, funcLengthLimit),
	}
}
