// Package report renders scan results for the CLI.
//
// Rendering is deterministic: the same result and registry produce byte
// identical output on every call, which is the one correctness property a
// reporter has.
package report

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirkon/lintcheck/internal/lint"
	"github.com/sirkon/lintcheck/internal/rules"
)

// Format enumerates the supported output formats.
type Format int

const (
	formatInvalid Format = iota

	// FormatHuman is one line per finding, for people.
	FormatHuman

	// FormatJSON is a single array of finding objects, for machines.
	FormatJSON
)

var (
	_ fmt.Stringer             = FormatHuman
	_ encoding.TextMarshaler   = FormatHuman
	_ encoding.TextUnmarshaler = new(Format)
)

func (f Format) String() string {
	switch f {
	case FormatHuman:
		return "human"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("unsupported format %d", int(f))
	}
}

// MarshalText to implement encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatHuman, FormatJSON:
		return []byte(f.String()), nil
	default:
		return nil, fmt.Errorf("unsupported format %d", int(f))
	}
}

// UnmarshalText to implement encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	switch string(text) {
	case "human":
		*f = FormatHuman
	case "json":
		*f = FormatJSON
	default:
		return fmt.Errorf("unknown format %q, expected human or json", string(text))
	}

	return nil
}

// Renderer formats results, resolving finding severities through the
// registry the scan ran with.
type Renderer struct {
	rules *rules.Registry
}

// NewRenderer builds a renderer over the registry.
func NewRenderer(reg *rules.Registry) *Renderer {
	return &Renderer{
		rules: reg,
	}
}

// Render writes res to w in the requested format. The result is not
// mutated. A finding referencing a rule missing from the registry fails the
// whole render: it means the scan and the registry disagree about the world.
func (r *Renderer) Render(w io.Writer, format Format, res lint.Result) error {
	switch format {
	case FormatHuman:
		return r.renderHuman(w, res)
	case FormatJSON:
		return r.renderJSON(w, res)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}

func (r *Renderer) renderHuman(w io.Writer, res lint.Result) error {
	for _, f := range res {
		rule, err := r.rules.Get(f.Rule)
		if err != nil {
			return fmt.Errorf("resolve rule of a finding: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s:%d:%d: [%s] %s (%s)\n", f.Path, f.Line, f.Col, rule.Severity, f.Message, f.Rule); err != nil {
			return fmt.Errorf("write finding: %w", err)
		}
	}

	return nil
}

// jsonFinding fixes the field order of machine output.
type jsonFinding struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
}

func (r *Renderer) renderJSON(w io.Writer, res lint.Result) error {
	out := make([]jsonFinding, 0, len(res))
	for _, f := range res {
		rule, err := r.rules.Get(f.Rule)
		if err != nil {
			return fmt.Errorf("resolve rule of a finding: %w", err)
		}

		out = append(out, jsonFinding{
			Path:     f.Path,
			Line:     f.Line,
			Column:   f.Col,
			Severity: rule.Severity.String(),
			Rule:     f.Rule,
			Message:  f.Message,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write findings: %w", err)
	}

	return nil
}

// MaxSeverity resolves the highest severity present in res, the exit code
// decision input. An empty result resolves to the zero severity, below
// every real level.
func (r *Renderer) MaxSeverity(res lint.Result) (rules.Severity, error) {
	var worst rules.Severity
	for _, f := range res {
		rule, err := r.rules.Get(f.Rule)
		if err != nil {
			return 0, fmt.Errorf("resolve rule of a finding: %w", err)
		}

		if rule.Severity > worst {
			worst = rule.Severity
		}
	}

	return worst, nil
}
