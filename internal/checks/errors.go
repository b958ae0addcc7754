package checks

import (
	"go/ast"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirkon/lintcheck/internal/rules"
)

const wrapSuffix = ": %w"

// WrapFormat flags fmt.Errorf calls wrapping errors in a shape that reads
// badly in chains: non-literal formats, several %w verbs, a %w anywhere but
// the very end behind a colon.
func WrapFormat() rules.Rule {
	return rules.Rule{
		ID:       "wrap-format",
		Title:    `error wrapping formats end with ": %w"`,
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.CallExpr)(nil)},
		Check:    checkWrapFormat,
	}
}

func checkWrapFormat(pass *rules.Pass, node ast.Node) []rules.Issue {
	call := node.(*ast.CallExpr)

	r, ok := callee(call)
	if !ok || r.pkg != "fmt" || r.name != "Errorf" || len(call.Args) == 0 {
		return nil
	}

	format, ok := stringLit(call.Args[0])
	if !ok {
		return []rules.Issue{
			rules.Issuef(call.Args[0].Pos(), "fmt.Errorf format should be a string literal"),
		}
	}

	switch wraps := countWrapVerbs(format); {
	case wraps == 0:
		return nil
	case wraps > 1:
		return []rules.Issue{
			rules.Issuef(call.Args[0].Pos(), "fmt.Errorf format wraps %d errors, want at most one", wraps),
		}
	case !strings.HasSuffix(format, wrapSuffix):
		return []rules.Issue{
			rules.Issuef(call.Args[0].Pos(), "error wrapping format should end with %q", wrapSuffix),
		}
	default:
		return nil
	}
}

// countWrapVerbs counts %w verbs, %% escapes taken into account.
func countWrapVerbs(format string) int {
	var count int
	for i := 0; i+1 < len(format); i++ {
		if format[i] != '%' {
			continue
		}

		switch format[i+1] {
		case '%':
			i++
		case 'w':
			count++
		}
	}

	return count
}

// ErrorString flags error messages that read badly once wrapped: capitalized
// openings and trailing punctuation.
func ErrorString() rules.Rule {
	return rules.Rule{
		ID:       "error-string",
		Title:    "error strings start lower-case and carry no trailing punctuation",
		Severity: rules.SeverityWarning,
		Nodes:    []ast.Node{(*ast.CallExpr)(nil)},
		Check:    checkErrorString,
	}
}

func checkErrorString(pass *rules.Pass, node ast.Node) []rules.Issue {
	call := node.(*ast.CallExpr)

	r, ok := callee(call)
	if !ok || len(call.Args) == 0 {
		return nil
	}

	switch r {
	case ref{pkg: "errors", name: "New"}, ref{pkg: "fmt", name: "Errorf"}:
	default:
		return nil
	}

	msg, ok := stringLit(call.Args[0])
	if !ok || msg == "" {
		return nil
	}

	var issues []rules.Issue

	if first, size := utf8.DecodeRuneInString(msg); unicode.IsUpper(first) {
		// An all-caps opening is likely an initialism (HTTP, SQL), leave it.
		second, _ := utf8.DecodeRuneInString(msg[size:])
		if !unicode.IsUpper(second) {
			issues = append(issues, rules.Issuef(call.Args[0].Pos(), "error string %q should not be capitalized", msg))
		}
	}

	if last, _ := utf8.DecodeLastRuneInString(msg); last == '.' || last == '!' || last == '?' {
		issues = append(issues, rules.Issuef(call.Args[0].Pos(), "error string %q should not end with punctuation", msg))
	}

	return issues
}
