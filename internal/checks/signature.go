package checks

import (
	"go/ast"

	"github.com/sirkon/lintcheck/internal/rules"
)

// AnyParam flags bare any parameters of exported functions. The variadic
// tail is exempt, fmt-style APIs are legitimate.
func AnyParam() rules.Rule {
	return rules.Rule{
		ID:       "any-param",
		Title:    "exported functions should not take bare any parameters",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.FuncDecl)(nil)},
		Check:    checkAnyParam,
	}
}

func checkAnyParam(pass *rules.Pass, node ast.Node) []rules.Issue {
	fn := node.(*ast.FuncDecl)
	if !ast.IsExported(fn.Name.Name) {
		return nil
	}

	var issues []rules.Issue
	for _, field := range fn.Type.Params.List {
		if _, variadic := field.Type.(*ast.Ellipsis); variadic {
			continue
		}

		if !isBareAny(field.Type) {
			continue
		}

		if len(field.Names) == 0 {
			issues = append(issues, rules.Issuef(field.Type.Pos(), "exported function %s takes a bare any parameter", fn.Name.Name))
			continue
		}

		for _, name := range field.Names {
			issues = append(issues, rules.Issuef(name.Pos(), "parameter %q of exported function %s is a bare any", name.Name, fn.Name.Name))
		}
	}

	return issues
}

// isBareAny matches both spellings of the empty interface.
func isBareAny(expr ast.Expr) bool {
	switch v := expr.(type) {
	case *ast.Ident:
		return v.Name == "any"
	case *ast.InterfaceType:
		return v.Methods == nil || len(v.Methods.List) == 0
	default:
		return false
	}
}

// CtxFirst flags functions accepting context.Context anywhere but first.
func CtxFirst() rules.Rule {
	return rules.Rule{
		ID:       "ctx-first",
		Title:    "context.Context goes first in parameter lists",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.FuncDecl)(nil)},
		Check:    checkCtxFirst,
	}
}

func checkCtxFirst(pass *rules.Pass, node ast.Node) []rules.Issue {
	fn := node.(*ast.FuncDecl)

	flat := 0
	for _, field := range fn.Type.Params.List {
		if isContextType(field.Type) {
			if flat == 0 {
				return nil
			}

			return []rules.Issue{
				rules.Issuef(field.Type.Pos(), "context.Context should be the first parameter of %s", fn.Name.Name),
			}
		}

		flat += len(field.Names)
		if len(field.Names) == 0 {
			flat++
		}
	}

	return nil
}

func isContextType(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	base, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}

	return base.Name == "context" && sel.Sel.Name == "Context"
}
