// Package scan drives rule detectors over batches of source files.
//
// The pipeline is one linear pass: expand roots into files, scan files on
// parallel workers, merge per-file results into one aggregator, hand the
// sorted snapshot to the caller. Per-file failures (unreadable, unparsable)
// and per-detector failures (panics) surface as findings under the reserved
// rules and never abort the batch.
package scan

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"reflect"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/lintcheck/internal/lint"
	"github.com/sirkon/lintcheck/internal/rules"
	"github.com/sirkon/lintcheck/internal/source"
)

// Scanner runs an active rule set over file batches. The registry is fixed
// at construction and read-only afterwards, which is what lets workers share
// it without coordination.
type Scanner struct {
	rules    *rules.Registry
	dispatch *dispatcher
	jobs     int
	log      *zap.Logger
}

// New builds a scanner over the given registry. Non-positive jobs means one
// worker per CPU.
func New(reg *rules.Registry, jobs int, log *zap.Logger) *Scanner {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Scanner{
		rules:    reg,
		dispatch: newDispatcher(reg),
		jobs:     jobs,
		log:      log,
	}
}

// Run expands roots into .go files and scans them on parallel workers.
// A root that does not exist fails the whole run before any scan starts.
// Cancellation is honored between files: in-flight files drain, queued ones
// are dropped, and the error reports the cut short run.
func (s *Scanner) Run(ctx context.Context, roots []string) (lint.Result, error) {
	paths, err := collectFiles(roots)
	if err != nil {
		return nil, err
	}

	s.log.Debug("scan starts", zap.Int("files", len(paths)), zap.Int("workers", s.jobs))

	agg := lint.NewAggregator()

	feed := make(chan string)
	var wg sync.WaitGroup
	for range s.jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for path := range feed {
				s.scanPath(path, agg)
			}
		}()
	}

dispatch:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break dispatch
		case feed <- path:
		}
	}
	close(feed)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}

	return agg.Result(), nil
}

// scanPath loads one file and merges whatever it yields, a result or a
// reserved-rule finding, into the shared aggregator.
func (s *Scanner) scanPath(path string, agg *lint.Aggregator) {
	file, err := source.Load(path)
	if err != nil {
		s.log.Debug("file failed to load", zap.String("path", path), zap.Error(err))
		agg.Add(loadFinding(path, err))
		return
	}

	res := s.ScanFile(file)
	s.log.Debug("file scanned", zap.String("path", path), zap.Int("findings", len(res)))
	agg.Merge(res)
}

// loadFinding turns a load failure into the reserved parse-error finding.
func loadFinding(path string, err error) lint.Finding {
	f := lint.Finding{
		Rule:    rules.RuleParseError,
		Path:    path,
		Line:    1,
		Col:     1,
		Message: err.Error(),
	}

	var pe *source.ParseError
	if errors.As(err, &pe) {
		f.Line = pe.Pos.Line
		f.Col = pe.Pos.Column
		f.Message = fmt.Sprintf("cannot parse file: %v", pe.Err)
	}

	return f
}

// ScanFile runs the active rules over one parsed file. Empty files come back
// clean without a single detector running. A detector panic turns into a
// detector-fault finding at the node being visited and the scan of the file
// continues with the remaining rules.
func (s *Scanner) ScanFile(file *source.File) lint.Result {
	if file.Empty() || s.dispatch.empty() {
		return nil
	}

	pass := &rules.Pass{File: file}

	var res lint.Result
	insp := inspector.New([]*ast.File{file.Tree})
	insp.Preorder(s.dispatch.filter, func(node ast.Node) {
		s.dispatch.visit(node, func(rule rules.Rule) {
			issues, fault := safeCheck(rule, pass, node)
			if fault != nil {
				pos := file.Position(node.Pos())
				s.log.Warn("detector fault",
					zap.String("rule", rule.ID),
					zap.String("path", file.Path),
					zap.Any("panic", fault),
				)
				res = append(res, lint.Finding{
					Rule:    rules.RuleDetectorFault,
					Path:    file.Path,
					Line:    pos.Line,
					Col:     pos.Column,
					Message: fmt.Sprintf("rule %s failed: %v", rule.ID, fault),
				})
				return
			}

			for _, issue := range issues {
				pos := file.Position(issue.Pos)
				res = append(res, lint.Finding{
					Rule:    rule.ID,
					Path:    file.Path,
					Line:    pos.Line,
					Col:     pos.Column,
					Message: issue.Message,
				})
			}
		})
	})

	return res
}

// safeCheck shields the scan from detector panics.
func safeCheck(rule rules.Rule, pass *rules.Pass, node ast.Node) (issues []rules.Issue, fault any) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			fault = r
		}
	}()

	return rule.Check(pass, node), nil
}

// dispatcher routes syntax nodes to the rules subscribed to their types.
type dispatcher struct {
	// filter is the node type union handed to the inspector. Empty means
	// every node, which only happens when some rule subscribed to all.
	filter []ast.Node

	byType map[reflect.Type][]rules.Rule
	all    []rules.Rule
}

func newDispatcher(reg *rules.Registry) *dispatcher {
	d := &dispatcher{
		byType: map[reflect.Type][]rules.Rule{},
	}

	for rule := range reg.All() {
		if rule.Check == nil {
			// Reserved rules have no detector.
			continue
		}

		if len(rule.Nodes) == 0 {
			d.all = append(d.all, rule)
			continue
		}

		for _, proto := range rule.Nodes {
			t := reflect.TypeOf(proto)
			if _, ok := d.byType[t]; !ok {
				d.filter = append(d.filter, proto)
			}

			d.byType[t] = append(d.byType[t], rule)
		}
	}

	if len(d.all) > 0 {
		d.filter = nil
	}

	return d
}

func (d *dispatcher) empty() bool {
	return len(d.byType) == 0 && len(d.all) == 0
}

func (d *dispatcher) visit(node ast.Node, f func(rules.Rule)) {
	for _, rule := range d.byType[reflect.TypeOf(node)] {
		f(rule)
	}

	for _, rule := range d.all {
		f(rule)
	}
}
