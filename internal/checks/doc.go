// Package checks holds the built-in convention catalog of lintcheck.
//
// Every rule here is a verifiable convention with a stable kebab-case
// identifier, a default severity, and a detector working purely on the
// syntax tree of one file. The catalog is the single source of rules for:
//   - the scanner (for dispatching detectors over syntax nodes);
//   - the reporter (for resolving severities of findings);
//   - and the rules subcommand (for listing what the tool enforces).
//
// # Catalog
//
// Identifiers are grouped by the kind of convention they guard:
//
//	global-var, init-side-effect    package state discipline
//	wrap-format, error-string       error construction style
//	any-param, ctx-first            signature shape
//	magic-number                    literal hygiene
//	no-panic                        execution abandonment
//	naked-return, func-length       function body shape
//
// Example:
//
//	reg, err := rules.NewRegistry(checks.All()...)
//
// # Heuristics
//
// Detectors see one file at a time with no type information, so every check
// is a syntactic heuristic: a call spelled os.Exit is taken to be the
// stdlib's even if the file renamed the import, a := anywhere in an init
// body shields that name from the init-side-effect check, and so on. The
// trade is deliberate. Working without a type checker keeps scans fast and
// dependency-free, and the conventions themselves target how code reads,
// which is a property of its spelling.
//
//   - Rule identifiers are stable; never reuse one for a different meaning.
//   - Detectors must stay pure: no I/O, no state shared between calls.
//   - New rules register through All, nowhere else.
package checks
