package checks

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/sirkon/lintcheck/internal/rules"
)

// All returns the built-in catalog in its canonical registration order.
func All() []rules.Rule {
	return []rules.Rule{
		GlobalVar(),
		InitSideEffect(),
		WrapFormat(),
		ErrorString(),
		AnyParam(),
		MagicNumber(),
		NoPanic(),
		NakedReturn(),
		FuncLength(),
		CtxFirst(),
	}
}

// ref identifies a callable by the way it is spelled at the call site.
// Builtins and package-local calls carry an empty pkg.
type ref struct {
	pkg  string
	name string
}

// callee resolves the ref of a call expression. Only plain identifiers and
// pkg.Name selectors resolve; method calls and anything fancier come back
// false.
func callee(call *ast.CallExpr) (ref, bool) {
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		return ref{name: fn.Name}, true
	case *ast.SelectorExpr:
		base, ok := fn.X.(*ast.Ident)
		if !ok {
			return ref{}, false
		}

		return ref{pkg: base.Name, name: fn.Sel.Name}, true
	default:
		return ref{}, false
	}
}

// stringLit extracts the value of a string literal expression.
func stringLit(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}

	v, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	return v, true
}
