// Package source loads Go files and exposes the structural facts detectors
// need: the parsed tree, raw bytes, and an outline of the file's regions
// (functions, function literals, const blocks, package-level variables)
// indexed by position.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"strings"
)

// File is a single source file, read whole and parsed once. The file handle
// does not outlive the read; everything later stages need lives here.
type File struct {
	// Path is the file path exactly as it will appear in findings.
	Path string

	// Src is the raw file content.
	Src []byte

	Fset *token.FileSet

	// Tree is nil when the source is empty (see [File.Empty]).
	Tree *ast.File

	// Outline indexes the structural regions of the file.
	Outline *Outline
}

// ParseError reports a file the parser could not accept. Pos points at the
// first position the parser complained about.
type ParseError struct {
	Path string
	Pos  token.Position
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the file at path. Read failures come back wrapped;
// parse failures come back as [ParseError].
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}

	return Parse(path, data)
}

// Parse parses src under the given display path.
//
// Whitespace-only content yields a File with a nil Tree rather than the
// "expected 'package'" error the parser would produce: an empty source has
// nothing to report and is not treated as malformed.
func Parse(path string, src []byte) (*File, error) {
	f := &File{
		Path: path,
		Src:  src,
		Fset: token.NewFileSet(),
	}

	if len(bytes.TrimSpace(src)) == 0 {
		f.Outline = NewOutline(nil)
		return f, nil
	}

	tree, err := parser.ParseFile(f.Fset, path, src, parser.ParseComments)
	if err != nil {
		pe := &ParseError{
			Path: path,
			Pos:  token.Position{Filename: path, Line: 1, Column: 1},
			Err:  err,
		}

		// The parser reports positions through a scanner.ErrorList; keep
		// the first one when present.
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) > 0 {
			pe.Pos = list[0].Pos
			pe.Err = errors.New(list[0].Msg)
		}

		return nil, pe
	}

	f.Tree = tree
	f.Outline = NewOutline(tree)
	return f, nil
}

// Empty reports whether the file had no content to parse.
func (f *File) Empty() bool { return f.Tree == nil }

// Test reports whether the file is a test file by the _test.go convention.
func (f *File) Test() bool { return strings.HasSuffix(f.Path, "_test.go") }

// Position resolves a token position within this file.
func (f *File) Position(pos token.Pos) token.Position {
	return f.Fset.Position(pos)
}
