// Package config resolves tool configuration from built-in defaults, a YAML
// file, environment variables, and flags, in that precedence order. The
// package owns the first three layers; the flag layer stays with the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/lintcheck/internal/report"
	"github.com/sirkon/lintcheck/internal/rules"
)

// Environment variable names and the default config file location.
const (
	EnvFormat = "LINTCHECK_FORMAT"
	EnvJobs   = "LINTCHECK_JOBS"
	EnvFailOn = "LINTCHECK_FAIL_ON"
	EnvConfig = "LINTCHECK_CONFIG"

	DefaultFile = ".lintcheck.yaml"
)

// Config is the resolved tool configuration.
type Config struct {
	Format report.Format
	Jobs   int
	FailOn rules.Severity

	// Rules is the active subset, empty meaning the whole catalog.
	Rules []string

	// Disable lists rules dropped from the catalog before registration.
	Disable []string

	// Severity holds per-rule severity overrides, applied at registration
	// time so registered rules stay immutable.
	Severity map[string]rules.Severity
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: report.FormatHuman,
		Jobs:   runtime.NumCPU(),
		FailOn: rules.SeverityError,
	}
}

// File resolves which config file to load: the explicit flag value, the
// LINTCHECK_CONFIG variable, or a probe of the default location. Only the
// probe tolerates absence.
func File(flagValue string) (path string, optional bool) {
	if flagValue != "" {
		return flagValue, false
	}

	if v, ok := os.LookupEnv(EnvConfig); ok && v != "" {
		return v, false
	}

	return DefaultFile, true
}

// fileConfig mirrors the YAML document. Enumerated values stay strings here
// and parse through the enums' TextUnmarshaler, so YAML, environment, and
// flags share one parser and one error shape.
type fileConfig struct {
	Format   string            `yaml:"format"`
	Jobs     *int              `yaml:"jobs"`
	FailOn   string            `yaml:"fail_on"`
	Rules    []string          `yaml:"rules"`
	Disable  []string          `yaml:"disable"`
	Severity map[string]string `yaml:"severity"`
}

// LoadFile overlays the YAML document at path onto c. Unknown keys are
// configuration errors. With optional set, a missing file is fine and c
// stays as it was.
func (c *Config) LoadFile(path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty config file configures nothing.
			return nil
		}

		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Format != "" {
		if err := c.Format.UnmarshalText([]byte(fc.Format)); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if fc.Jobs != nil {
		if *fc.Jobs < 1 {
			return fmt.Errorf("config file %s: jobs must be positive, got %d", path, *fc.Jobs)
		}

		c.Jobs = *fc.Jobs
	}

	if fc.FailOn != "" {
		if err := c.FailOn.UnmarshalText([]byte(fc.FailOn)); err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if len(fc.Rules) > 0 {
		c.Rules = fc.Rules
	}

	if len(fc.Disable) > 0 {
		c.Disable = fc.Disable
	}

	for id, raw := range fc.Severity {
		var sev rules.Severity
		if err := sev.UnmarshalText([]byte(raw)); err != nil {
			return fmt.Errorf("config file %s: severity of rule %s: %w", path, id, err)
		}

		if c.Severity == nil {
			c.Severity = map[string]rules.Severity{}
		}

		c.Severity[id] = sev
	}

	return nil
}

// LoadEnv overlays LINTCHECK_* environment variables onto c.
func (c *Config) LoadEnv() error {
	if v, ok := os.LookupEnv(EnvFormat); ok {
		if err := c.Format.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
	}

	if v, ok := os.LookupEnv(EnvJobs); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: parse worker count: %w", EnvJobs, err)
		}
		if n < 1 {
			return fmt.Errorf("%s: worker count must be positive, got %d", EnvJobs, n)
		}

		c.Jobs = n
	}

	if v, ok := os.LookupEnv(EnvFailOn); ok {
		if err := c.FailOn.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvFailOn, err)
		}
	}

	return nil
}
