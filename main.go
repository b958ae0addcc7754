// Command lintcheck checks Go sources against a registry of convention
// rules and reports findings deterministically, for people or for machines.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

// Exit codes of the tool.
const (
	exitClean    = 0
	exitFindings = 1
	exitUsage    = 2
)

// errFindings marks a run that completed fine but found problems at or above
// the fail-on threshold.
var errFindings = errors.New("findings at or above the fail-on threshold")

func main() {
	os.Exit(run())
}

func run() int {
	// A .env in the working directory feeds the LINTCHECK_* variables,
	// convenient for local runs. Absence is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errFindings) {
		fmt.Fprintf(os.Stderr, "lintcheck: %v\n", err)
	}

	return exitCode(err)
}

// exitCode maps an execution outcome to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitClean
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		return exitUsage
	}
}
