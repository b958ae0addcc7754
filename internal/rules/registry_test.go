package rules

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"
)

func testRule(id string) Rule {
	return Rule{
		ID:       id,
		Title:    "test rule " + id,
		Severity: SeverityWarning,
	}
}

func TestNewRegistrySeedsReserved(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}

	if reg.Len() != 2 {
		t.Fatalf("expected 2 reserved rules, got %d", reg.Len())
	}

	for _, id := range []string{RuleParseError, RuleDetectorFault} {
		rule, err := reg.Get(id)
		if err != nil {
			t.Fatalf("expected reserved rule %q to be present: %v", id, err)
		}
		if rule.Severity != SeverityFault {
			t.Fatalf("expected reserved rule %q to rank fault, got %v", id, rule.Severity)
		}
	}
}

func TestNewRegistryDuplicateRegistersNothing(t *testing.T) {
	reg, err := NewRegistry(testRule("alpha"), testRule("beta"), testRule("alpha"))
	if err == nil {
		t.Fatal("expected a duplicate registration failure")
	}

	var dup *DuplicateRuleError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateRuleError, got %T", err)
	}
	if dup.ID != "alpha" {
		t.Fatalf("expected the duplicate to be alpha, got %q", dup.ID)
	}
	if reg != nil {
		t.Fatal("expected no registry when construction fails")
	}
}

func TestRegisterDuplicateLeavesRegistryIntact(t *testing.T) {
	reg, err := NewRegistry(testRule("alpha"))
	if err != nil {
		t.Fatal(err)
	}

	before := reg.Len()
	if err := reg.Register(testRule("alpha")); err == nil {
		t.Fatal("expected a duplicate registration failure")
	}
	if reg.Len() != before {
		t.Fatalf("expected %d rules after the failed registration, got %d", before, reg.Len())
	}
}

func TestGetUnknown(t *testing.T) {
	reg, err := NewRegistry(testRule("alpha"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = reg.Get("does-not-exist")
	if err == nil {
		t.Fatal("expected an unknown rule failure")
	}

	var unknown *UnknownRuleError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownRuleError, got %T", err)
	}
	if unknown.ID != "does-not-exist" {
		t.Fatalf("expected the unknown id to be kept, got %q", unknown.ID)
	}
}

func TestAllKeepsRegistrationOrder(t *testing.T) {
	reg, err := NewRegistry(testRule("gamma"), testRule("alpha"), testRule("beta"))
	if err != nil {
		t.Fatal(err)
	}

	ids := func() []string {
		var out []string
		for rule := range reg.All() {
			out = append(out, rule.ID)
		}
		return out
	}

	want := []string{RuleParseError, RuleDetectorFault, "gamma", "alpha", "beta"}
	got := ids()
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "rule order", want, got)
	}

	// The sequence restarts from the first rule on every range.
	again := ids()
	if !reflect.DeepEqual(got, again) {
		deepequal.SideBySide(t, "rule order on the second pass", got, again)
	}

	for range reg.All() {
		break
	}
	afterBreak := ids()
	if !reflect.DeepEqual(want, afterBreak) {
		deepequal.SideBySide(t, "rule order after an interrupted pass", want, afterBreak)
	}
}

func TestSubset(t *testing.T) {
	reg, err := NewRegistry(testRule("gamma"), testRule("alpha"), testRule("beta"))
	if err != nil {
		t.Fatal(err)
	}

	sub, err := reg.Subset("beta", "gamma")
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for rule := range sub.All() {
		got = append(got, rule.ID)
	}

	// Reserved rules stay, the rest keep registration order, not the
	// order the subset was asked in.
	want := []string{RuleParseError, RuleDetectorFault, "gamma", "beta"}
	if !reflect.DeepEqual(want, got) {
		deepequal.SideBySide(t, "subset order", want, got)
	}

	if _, err := reg.Subset("does-not-exist"); err == nil {
		t.Fatal("expected an unknown rule failure")
	}
}

func TestOverride(t *testing.T) {
	reg, err := NewRegistry(testRule("alpha"))
	if err != nil {
		t.Fatal(err)
	}

	if err := reg.Override("alpha", SeverityError); err != nil {
		t.Fatal(err)
	}

	rule, err := reg.Get("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if rule.Severity != SeverityError {
		t.Fatalf("expected the override to stick, got %v", rule.Severity)
	}

	if err := reg.Override("does-not-exist", SeverityInfo); err == nil {
		t.Fatal("expected an unknown rule failure")
	}

	// Overrides survive subsetting.
	sub, err := reg.Subset("alpha")
	if err != nil {
		t.Fatal(err)
	}
	rule, err = sub.Get("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if rule.Severity != SeverityError {
		t.Fatalf("expected the override to survive the subset, got %v", rule.Severity)
	}
}

func TestSeverityText(t *testing.T) {
	tests := []struct {
		text string
		want Severity
	}{
		{text: "info", want: SeverityInfo},
		{text: "warning", want: SeverityWarning},
		{text: "error", want: SeverityError},
		{text: "fault", want: SeverityFault},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var s Severity
			if err := s.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatal(err)
			}
			if s != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, s)
			}
			if s.String() != tt.text {
				t.Fatalf("expected text %q back, got %q", tt.text, s.String())
			}
		})
	}

	var s Severity
	if err := s.UnmarshalText([]byte("critical")); err == nil {
		t.Fatal("expected a failure on an unknown severity")
	}
}

func TestSeverityRanking(t *testing.T) {
	if !(SeverityInfo < SeverityWarning && SeverityWarning < SeverityError && SeverityError < SeverityFault) {
		t.Fatal("severity levels must rank info < warning < error < fault")
	}
}
