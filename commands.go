package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sirkon/lintcheck/internal/checks"
	"github.com/sirkon/lintcheck/internal/config"
	"github.com/sirkon/lintcheck/internal/report"
	"github.com/sirkon/lintcheck/internal/rules"
	"github.com/sirkon/lintcheck/internal/scan"
)

// rootFlags carries raw flag values until configuration resolution. Values
// stay strings here for the same reason they do in the config file: the enum
// types parse them, not the flag layer.
type rootFlags struct {
	format     string
	rulesCSV   string
	configPath string
	jobs       int
	failOn     string
	debug      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "lintcheck [flags] <path>...",
		Short: "check Go sources against a registry of convention rules",
		Long: `lintcheck parses Go files into syntax trees and checks them against
a registry of convention rules. Findings come out sorted by position
and deduplicated, so repeated runs over unchanged sources produce
byte-identical reports.

Paths may name files or directories; directories are walked
recursively, skipping hidden directories, vendor, and testdata.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, flags, args, stdout, stderr)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format, human or json")
	cmd.Flags().StringVar(&flags.rulesCSV, "rules", "", "comma separated rule subset to run")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file path (default .lintcheck.yaml when present)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "parallel file workers (default the CPU count)")
	cmd.Flags().StringVar(&flags.failOn, "fail-on", "", "severity threshold for exit code 1 (default error)")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "verbose diagnostics on stderr")

	cmd.AddCommand(newRulesCmd(stdout))

	return cmd
}

func runScan(cmd *cobra.Command, flags *rootFlags, args []string, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	log := newLogger(flags.debug, stderr)
	defer func() {
		_ = log.Sync()
	}()

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	log.Debug("configuration resolved",
		zap.Stringer("format", cfg.Format),
		zap.Int("jobs", cfg.Jobs),
		zap.Stringer("fail_on", cfg.FailOn),
		zap.Int("rules", reg.Len()),
	)

	res, err := scan.New(reg, cfg.Jobs, log).Run(cmd.Context(), args)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(reg)
	if err := renderer.Render(stdout, cfg.Format, res); err != nil {
		return err
	}

	worst, err := renderer.MaxSeverity(res)
	if err != nil {
		return err
	}

	if len(res) > 0 && worst >= cfg.FailOn {
		return errFindings
	}

	return nil
}

// resolveConfig builds the effective configuration: defaults, then the
// config file, then environment, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()

	path, optional := config.File(flags.configPath)
	if err := cfg.LoadFile(path, optional); err != nil {
		return config.Config{}, err
	}

	if err := cfg.LoadEnv(); err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("format") {
		if err := cfg.Format.UnmarshalText([]byte(flags.format)); err != nil {
			return config.Config{}, fmt.Errorf("--format: %w", err)
		}
	}

	if cmd.Flags().Changed("jobs") {
		if flags.jobs < 1 {
			return config.Config{}, fmt.Errorf("--jobs: worker count must be positive, got %d", flags.jobs)
		}

		cfg.Jobs = flags.jobs
	}

	if cmd.Flags().Changed("fail-on") {
		if err := cfg.FailOn.UnmarshalText([]byte(flags.failOn)); err != nil {
			return config.Config{}, fmt.Errorf("--fail-on: %w", err)
		}
	}

	if cmd.Flags().Changed("rules") {
		cfg.Rules = splitCSV(flags.rulesCSV)
	}

	return cfg, nil
}

// buildRegistry assembles the active registry: the built-in catalog minus
// disabled rules, severity overrides applied, then the subset restriction.
// Every failure here is a configuration error surfaced before any scan.
func buildRegistry(cfg config.Config) (*rules.Registry, error) {
	catalog := checks.All()

	if len(cfg.Disable) > 0 {
		known := make(map[string]struct{}, len(catalog))
		for _, rule := range catalog {
			known[rule.ID] = struct{}{}
		}

		drop := make(map[string]struct{}, len(cfg.Disable))
		for _, id := range cfg.Disable {
			if _, ok := known[id]; !ok {
				return nil, &rules.UnknownRuleError{ID: id}
			}

			drop[id] = struct{}{}
		}

		kept := catalog[:0]
		for _, rule := range catalog {
			if _, ok := drop[rule.ID]; ok {
				continue
			}

			kept = append(kept, rule)
		}
		catalog = kept
	}

	reg, err := rules.NewRegistry(catalog...)
	if err != nil {
		return nil, err
	}

	for id, sev := range cfg.Severity {
		if err := reg.Override(id, sev); err != nil {
			return nil, err
		}
	}

	if len(cfg.Rules) > 0 {
		reg, err = reg.Subset(cfg.Rules...)
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func newRulesCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "list registered rules in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rules.NewRegistry(checks.All()...)
			if err != nil {
				return err
			}

			for rule := range reg.All() {
				if _, err := fmt.Fprintf(stdout, "%-16s %-8s %s\n", rule.ID, rule.Severity, rule.Title); err != nil {
					return fmt.Errorf("write rule listing: %w", err)
				}
			}

			return nil
		},
	}
}

// newLogger builds the diagnostic logger writing to stderr. Debug mode opens
// the debug level, otherwise only warnings and above surface.
func newLogger(debug bool, stderr io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		level,
	)

	return zap.New(core)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}
