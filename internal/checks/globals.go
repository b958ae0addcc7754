package checks

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/sirkon/lintcheck/internal/rules"
)

// GlobalVar flags package-level variable declarations. Sentinel error values
// pass, test files pass entirely.
func GlobalVar() rules.Rule {
	return rules.Rule{
		ID:       "global-var",
		Title:    "package-level variables are global mutable state",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.File)(nil)},
		Check:    checkGlobalVar,
	}
}

func checkGlobalVar(pass *rules.Pass, node ast.Node) []rules.Issue {
	if pass.File.Test() {
		return nil
	}

	file := node.(*ast.File)

	var issues []rules.Issue
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}

		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for i, name := range vs.Names {
				if name.Name == "_" {
					continue
				}

				if isSentinelError(name.Name, initializerFor(vs, i)) {
					continue
				}

				issues = append(issues, rules.Issuef(name.Pos(), "package-level variable %q is mutable global state", name.Name))
			}
		}
	}

	return issues
}

// initializerFor returns the initializer matching the i-th name of a spec,
// nil when the spec has none or fills all names from one tuple expression.
func initializerFor(vs *ast.ValueSpec, i int) ast.Expr {
	if len(vs.Values) != len(vs.Names) {
		return nil
	}

	return vs.Values[i]
}

// isSentinelError reports whether a declaration looks like the conventional
// sentinel: an Err prefixed name bound to errors.New or fmt.Errorf.
func isSentinelError(name string, value ast.Expr) bool {
	if !strings.HasPrefix(name, "Err") && !strings.HasPrefix(name, "err") {
		return false
	}

	call, ok := value.(*ast.CallExpr)
	if !ok {
		return false
	}

	r, ok := callee(call)
	if !ok {
		return false
	}

	switch r {
	case ref{pkg: "errors", name: "New"}, ref{pkg: "fmt", name: "Errorf"}:
		return true
	default:
		return false
	}
}

// InitSideEffect flags assignments to package-level variables from init
// functions. Findings point at the variable's declaration, the place the
// mutable state was introduced.
func InitSideEffect() rules.Rule {
	return rules.Rule{
		ID:       "init-side-effect",
		Title:    "init functions must not assign package-level variables",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.FuncDecl)(nil)},
		Check:    checkInitSideEffect,
	}
}

func checkInitSideEffect(pass *rules.Pass, node ast.Node) []rules.Issue {
	fn := node.(*ast.FuncDecl)
	if fn.Name.Name != "init" || fn.Recv != nil || fn.Body == nil {
		return nil
	}

	locals := localNames(fn.Body)

	var issues []rules.Issue
	report := func(id *ast.Ident) {
		if _, shadowed := locals[id.Name]; shadowed {
			return
		}

		pos, ok := pass.File.Outline.PackageVar(id.Name)
		if !ok {
			return
		}

		issues = append(issues, rules.Issuef(pos, "package-level variable %q is assigned in init", id.Name))
	}

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.AssignStmt:
			if v.Tok == token.DEFINE {
				return true
			}

			for _, lhs := range v.Lhs {
				if id, ok := lhs.(*ast.Ident); ok {
					report(id)
				}
			}
		case *ast.IncDecStmt:
			if id, ok := v.X.(*ast.Ident); ok {
				report(id)
			}
		case *ast.RangeStmt:
			if v.Tok != token.ASSIGN {
				return true
			}

			for _, expr := range []ast.Expr{v.Key, v.Value} {
				if id, ok := expr.(*ast.Ident); ok {
					report(id)
				}
			}
		}

		return true
	})

	return issues
}

// localNames collects every name the block declares itself, to keep
// shadowed package variables from matching. Collection ignores declaration
// order, which errs towards silence when init reuses a package variable's
// name.
func localNames(body *ast.BlockStmt) map[string]struct{} {
	names := map[string]struct{}{}

	record := func(expr ast.Expr) {
		if id, ok := expr.(*ast.Ident); ok && id.Name != "_" {
			names[id.Name] = struct{}{}
		}
	}

	ast.Inspect(body, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.AssignStmt:
			if v.Tok != token.DEFINE {
				return true
			}

			for _, lhs := range v.Lhs {
				record(lhs)
			}
		case *ast.GenDecl:
			if v.Tok != token.VAR && v.Tok != token.CONST {
				return true
			}

			for _, spec := range v.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, name := range vs.Names {
					record(name)
				}
			}
		case *ast.RangeStmt:
			if v.Tok != token.DEFINE {
				return true
			}

			record(v.Key)
			record(v.Value)
		}

		return true
	})

	return names
}
