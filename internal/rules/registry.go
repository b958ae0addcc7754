package rules

import (
	"fmt"
	"iter"
)

// Reserved rule identifiers. Every registry carries them from birth, so
// findings the scanner produces on its own behalf always resolve.
const (
	// RuleParseError marks files the parser rejected.
	RuleParseError = "parse-error"

	// RuleDetectorFault marks places where a detector failed mid-file.
	RuleDetectorFault = "detector-fault"
)

// DuplicateRuleError reports an attempt to register an identifier some
// earlier rule already took.
type DuplicateRuleError struct {
	ID string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", e.ID)
}

// UnknownRuleError reports a lookup of an identifier no rule was registered
// under.
type UnknownRuleError struct {
	ID string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.ID)
}

func reservedRules() []Rule {
	return []Rule{
		{
			ID:       RuleParseError,
			Title:    "source file could not be parsed",
			Severity: SeverityFault,
		},
		{
			ID:       RuleDetectorFault,
			Title:    "a detector failed while inspecting a file",
			Severity: SeverityFault,
		},
	}
}

// Registry holds the known rules in registration order.
type Registry struct {
	order []string
	byID  map[string]Rule
}

// NewRegistry builds a registry over the given rules with the reserved ones
// seeded up front. Construction is all or nothing: a duplicate identifier
// anywhere in rr fails the whole call and no registry is returned.
func NewRegistry(rr ...Rule) (*Registry, error) {
	r := &Registry{
		byID: map[string]Rule{},
	}

	for _, rule := range reservedRules() {
		if err := r.Register(rule); err != nil {
			return nil, err
		}
	}

	for _, rule := range rr {
		if err := r.Register(rule); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds one rule. A taken identifier leaves the registry unchanged
// and returns a *DuplicateRuleError.
func (r *Registry) Register(rule Rule) error {
	if _, ok := r.byID[rule.ID]; ok {
		return &DuplicateRuleError{ID: rule.ID}
	}

	r.byID[rule.ID] = rule
	r.order = append(r.order, rule.ID)
	return nil
}

// Get returns the rule registered under id or a *UnknownRuleError.
func (r *Registry) Get(id string) (Rule, error) {
	rule, ok := r.byID[id]
	if !ok {
		return Rule{}, &UnknownRuleError{ID: id}
	}

	return rule, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Len returns the number of registered rules, the reserved ones included.
func (r *Registry) Len() int { return len(r.order) }

// All yields rules in registration order. The sequence is lazy and
// restartable: each range over it starts from the first rule again, and
// registration between ranges is reflected in the next one.
func (r *Registry) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for _, id := range r.order {
			if !yield(r.byID[id]) {
				return
			}
		}
	}
}

// Override replaces the severity of a registered rule.
func (r *Registry) Override(id string, sev Severity) error {
	rule, ok := r.byID[id]
	if !ok {
		return &UnknownRuleError{ID: id}
	}

	rule.Severity = sev
	r.byID[id] = rule
	return nil
}

// Subset builds a registry narrowed to the named rules. The reserved rules
// are kept regardless, the rest follow this registry's registration order
// rather than the order of ids, and any unknown name fails the whole call
// with a *UnknownRuleError.
func (r *Registry) Subset(ids ...string) (*Registry, error) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !r.Has(id) {
			return nil, &UnknownRuleError{ID: id}
		}

		keep[id] = struct{}{}
	}

	sub := &Registry{
		byID: map[string]Rule{},
	}

	for _, id := range r.order {
		if _, ok := keep[id]; !ok && id != RuleParseError && id != RuleDetectorFault {
			continue
		}

		if err := sub.Register(r.byID[id]); err != nil {
			return nil, err
		}
	}

	return sub, nil
}
