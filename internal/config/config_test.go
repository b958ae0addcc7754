package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/lintcheck/internal/report"
	"github.com/sirkon/lintcheck/internal/rules"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "lintcheck.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Format != report.FormatHuman {
		t.Fatalf("expected the human format by default, got %v", cfg.Format)
	}
	if cfg.FailOn != rules.SeverityError {
		t.Fatalf("expected the error threshold by default, got %v", cfg.FailOn)
	}
	if cfg.Jobs < 1 {
		t.Fatalf("expected at least one worker by default, got %d", cfg.Jobs)
	}
}

func TestLoadFile(t *testing.T) {
	p := writeConfig(t, `format: json
jobs: 2
fail_on: warning
rules:
  - global-var
  - no-panic
disable:
  - magic-number
severity:
  global-var: error
`)

	cfg := Default()
	if err := cfg.LoadFile(p, false); err != nil {
		t.Fatal(err)
	}

	if cfg.Format != report.FormatJSON {
		t.Fatalf("expected the json format, got %v", cfg.Format)
	}
	if cfg.Jobs != 2 {
		t.Fatalf("expected 2 workers, got %d", cfg.Jobs)
	}
	if cfg.FailOn != rules.SeverityWarning {
		t.Fatalf("expected the warning threshold, got %v", cfg.FailOn)
	}
	if want := []string{"global-var", "no-panic"}; !reflect.DeepEqual(want, cfg.Rules) {
		deepequal.SideBySide(t, "active rules", want, cfg.Rules)
	}
	if want := []string{"magic-number"}; !reflect.DeepEqual(want, cfg.Disable) {
		deepequal.SideBySide(t, "disabled rules", want, cfg.Disable)
	}
	if want := map[string]rules.Severity{"global-var": rules.SeverityError}; !reflect.DeepEqual(want, cfg.Severity) {
		deepequal.SideBySide(t, "severity overrides", want, cfg.Severity)
	}
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	p := writeConfig(t, "formatting: json\n")

	cfg := Default()
	if err := cfg.LoadFile(p, false); err == nil {
		t.Fatal("expected a failure on an unknown configuration key")
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad format",
			content: "format: xml\n",
		},
		{
			name:    "bad threshold",
			content: "fail_on: critical\n",
		},
		{
			name:    "bad severity override",
			content: "severity:\n  global-var: critical\n",
		},
		{
			name:    "zero jobs",
			content: "jobs: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.LoadFile(writeConfig(t, tt.content), false); err == nil {
				t.Fatal("expected a configuration failure")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "absent.yaml")

	cfg := Default()
	if err := cfg.LoadFile(p, true); err != nil {
		t.Fatalf("expected the optional probe to tolerate absence, got %v", err)
	}
	if !reflect.DeepEqual(Default(), cfg) {
		deepequal.SideBySide(t, "config after the missed probe", Default(), cfg)
	}

	if err := cfg.LoadFile(p, false); err == nil {
		t.Fatal("expected a failure on an explicitly named missing file")
	}
}

func TestLoadFileEmpty(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadFile(writeConfig(t, ""), false); err != nil {
		t.Fatalf("expected an empty config file to configure nothing, got %v", err)
	}
	if !reflect.DeepEqual(Default(), cfg) {
		deepequal.SideBySide(t, "config after the empty file", Default(), cfg)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvJobs, "3")
	t.Setenv(EnvFailOn, "info")

	cfg := Default()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatal(err)
	}

	if cfg.Format != report.FormatJSON {
		t.Fatalf("expected the json format, got %v", cfg.Format)
	}
	if cfg.Jobs != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Jobs)
	}
	if cfg.FailOn != rules.SeverityInfo {
		t.Fatalf("expected the info threshold, got %v", cfg.FailOn)
	}
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "bad format",
			key:   EnvFormat,
			value: "xml",
		},
		{
			name:  "unparsable workers",
			key:   EnvJobs,
			value: "three",
		},
		{
			name:  "non-positive workers",
			key:   EnvJobs,
			value: "0",
		},
		{
			name:  "bad threshold",
			key:   EnvFailOn,
			value: "severe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg := Default()
			if err := cfg.LoadEnv(); err == nil {
				t.Fatal("expected a configuration failure")
			}
		})
	}
}

func TestFileResolution(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvConfig, "from-env.yaml")

		path, optional := File("from-flag.yaml")
		if path != "from-flag.yaml" || optional {
			t.Fatalf("expected the mandatory flag path, got %q optional=%v", path, optional)
		}
	})

	t.Run("env next", func(t *testing.T) {
		t.Setenv(EnvConfig, "from-env.yaml")

		path, optional := File("")
		if path != "from-env.yaml" || optional {
			t.Fatalf("expected the mandatory env path, got %q optional=%v", path, optional)
		}
	})

	t.Run("default probe last", func(t *testing.T) {
		t.Setenv(EnvConfig, "")

		path, optional := File("")
		if path != DefaultFile || !optional {
			t.Fatalf("expected the optional default probe, got %q optional=%v", path, optional)
		}
	})
}
