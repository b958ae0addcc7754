package source

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// ScopeKind classifies outline regions.
type ScopeKind int

const (
	scopeKindInvalid ScopeKind = iota

	// ScopeFunc is a function or method declaration.
	ScopeFunc

	// ScopeFuncLit is a function literal.
	ScopeFuncLit

	// ScopeConst is a const declaration, single or grouped.
	ScopeConst
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeFunc:
		return "func"
	case ScopeFuncLit:
		return "func literal"
	case ScopeConst:
		return "const"
	default:
		return fmt.Sprintf("unsupported scope kind %d", int(k))
	}
}

// Scope describes one structural region of a file.
type Scope struct {
	Kind ScopeKind

	// Name is the declared name for ScopeFunc, empty otherwise.
	Name string

	// Type is the signature for ScopeFunc and ScopeFuncLit.
	Type *ast.FuncType

	Start token.Pos
	End   token.Pos
}

// Outline indexes the structural regions of a single file. Regions either
// nest or don't touch at all, so they form a tree of spans: each level holds
// pairwise disjoint spans ordered by position, and a span's children live in
// their own tree one level down.
type Outline struct {
	spans *rbtree.Tree[*outlineSpan]

	// vars maps package-level variable names to their declaration positions.
	vars map[string]token.Pos
}

type outlineSpan struct {
	start token.Pos
	end   token.Pos

	scope    Scope
	children *rbtree.Tree[*outlineSpan]
}

// Cmp orders disjoint spans by position and treats any overlap as a match,
// which is what makes tree lookups land on the span covering a probe point.
func (s *outlineSpan) Cmp(other *outlineSpan) int {
	switch {
	case s.end <= other.start:
		return -1
	case s.start >= other.end:
		return 1
	default:
		return 0
	}
}

// NewOutline builds the outline of a parsed file. A nil tree produces an
// empty outline whose queries all come back negative.
func NewOutline(tree *ast.File) *Outline {
	o := &Outline{
		spans: rbtree.New[*outlineSpan](),
		vars:  map[string]token.Pos{},
	}
	if tree == nil {
		return o
	}

	for _, decl := range tree.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}

		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}

				o.vars[name.Name] = name.Pos()
			}
		}
	}

	ast.Inspect(tree, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncDecl:
			if v.Body == nil {
				return true
			}

			o.add(Scope{
				Kind:  ScopeFunc,
				Name:  v.Name.Name,
				Type:  v.Type,
				Start: v.Pos(),
				End:   v.End(),
			})
		case *ast.FuncLit:
			o.add(Scope{
				Kind:  ScopeFuncLit,
				Type:  v.Type,
				Start: v.Pos(),
				End:   v.End(),
			})
		case *ast.GenDecl:
			if v.Tok != token.CONST {
				return true
			}

			o.add(Scope{
				Kind:  ScopeConst,
				Start: v.Pos(),
				End:   v.End(),
			})
		}

		return true
	})

	return o
}

func (o *Outline) add(sc Scope) {
	attach(o.spans, &outlineSpan{
		start: sc.Start,
		end:   sc.End,
		scope: sc,
	})
}

// attach places s into the span tree, keeping the disjoint-or-nested shape:
// a span landing inside an existing one descends into its children, and a
// span swallowing an existing one takes its slot and pushes it down a level.
func attach(t *rbtree.Tree[*outlineSpan], s *outlineSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// No overlap with anything at this level.
		return
	}

	switch {
	case covers(s, r):
		old := *r
		*r = *s
		r.children = rbtree.New[*outlineSpan]()
		attach(r.children, &old)
	case covers(r, s):
		if r.children == nil {
			r.children = rbtree.New[*outlineSpan]()
		}

		attach(r.children, s)
	default:
		// Go syntax cannot produce regions that cross without nesting.
		panic(fmt.Sprintf("spans [%d,%d) and [%d,%d) overlap without nesting", s.start, s.end, r.start, r.end))
	}
}

func covers(outer, inner *outlineSpan) bool {
	return outer.start <= inner.start && outer.end >= inner.end
}

// Enclosing returns the scopes covering pos, outermost first. An uncovered
// position yields nil.
func (o *Outline) Enclosing(pos token.Pos) []Scope {
	probe := &outlineSpan{start: pos, end: pos}

	var chain []Scope
	node := o.spans.Search(probe)
	for node != nil {
		chain = append(chain, node.scope)
		if node.children == nil {
			break
		}

		node = node.children.Search(probe)
	}

	return chain
}

// EnclosingFunc returns the innermost function or function literal covering
// pos. The second result is false for positions outside any function body.
func (o *Outline) EnclosingFunc(pos token.Pos) (Scope, bool) {
	chain := o.Enclosing(pos)
	for i := len(chain) - 1; i >= 0; i-- {
		switch chain[i].Kind {
		case ScopeFunc, ScopeFuncLit:
			return chain[i], true
		}
	}

	return Scope{}, false
}

// InConst reports whether pos falls within a const declaration.
func (o *Outline) InConst(pos token.Pos) bool {
	for _, sc := range o.Enclosing(pos) {
		if sc.Kind == ScopeConst {
			return true
		}
	}

	return false
}

// PackageVar returns the declaration position of a package-level variable.
func (o *Outline) PackageVar(name string) (token.Pos, bool) {
	pos, ok := o.vars[name]
	return pos, ok
}
