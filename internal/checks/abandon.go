package checks

import (
	"go/ast"

	"github.com/sirkon/lintcheck/internal/rules"
	"github.com/sirkon/lintcheck/internal/source"
)

// NoPanic flags calls known for abandoning execution instead of returning an
// error. main and init keep the right to die, tests too. Function literals
// do not, even ones spelled inside main.
func NoPanic() rules.Rule {
	abandoners := map[ref]string{
		{name: "panic"}:               "panic",
		{pkg: "os", name: "Exit"}:     "os.Exit",
		{pkg: "log", name: "Fatal"}:   "log.Fatal",
		{pkg: "log", name: "Fatalf"}:  "log.Fatalf",
		{pkg: "log", name: "Fatalln"}: "log.Fatalln",
		{pkg: "log", name: "Panic"}:   "log.Panic",
		{pkg: "log", name: "Panicf"}:  "log.Panicf",
		{pkg: "log", name: "Panicln"}: "log.Panicln",
	}

	check := func(pass *rules.Pass, node ast.Node) []rules.Issue {
		if pass.File.Test() {
			return nil
		}

		call := node.(*ast.CallExpr)

		r, ok := callee(call)
		if !ok {
			return nil
		}

		spelled, ok := abandoners[r]
		if !ok {
			return nil
		}

		sc, ok := pass.File.Outline.EnclosingFunc(call.Pos())
		if ok && sc.Kind == source.ScopeFunc && (sc.Name == "main" || sc.Name == "init") {
			return nil
		}

		return []rules.Issue{
			rules.Issuef(call.Pos(), "%s abandons execution, return an error instead", spelled),
		}
	}

	return rules.Rule{
		ID:       "no-panic",
		Title:    "abandoning execution is for main and init only",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.CallExpr)(nil)},
		Check:    check,
	}
}
