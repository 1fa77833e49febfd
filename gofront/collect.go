// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gofront

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"strings"

	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
	"github.com/gogpu/shadergen/translate"
)

// Directive marks a function for translation. An optional argument
// overrides the generated function name:
//
//	//shadergen:func
//	//shadergen:func shade_main
const Directive = "//shadergen:func"

// Func is one lowered shader function.
type Func struct {
	// Package is the import path of the declaring package.
	Package string

	// Pos is the position of the declaration.
	Pos token.Position

	// Function is the signature descriptor.
	Function *translate.Function

	// Body is the lowered function body.
	Body syntax.Block

	// Symbols resolves the calls and composite literals of Body.
	Symbols *symbols.Table

	// Source is the gofmt-printed declaration.
	Source string
}

// Diagnostic reports a selected function the front end could not lower.
type Diagnostic struct {
	Package  string
	Function string
	Pos      token.Position
	Message  string
}

// String formats the diagnostic as "file:line:col: Function: message".
func (d Diagnostic) String() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Pos, d.Function, d.Message)
	}
	return fmt.Sprintf("%s.%s: %s", d.Package, d.Function, d.Message)
}

type collector struct {
	pkgPath string
	fset    *token.FileSet
	info    *types.Info
	all     bool

	funcs []*Func
	diags []Diagnostic
}

func (c *collector) collect(files []*ast.File) {
	for _, file := range files {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			name, marked := directiveName(fd.Doc)
			if !marked && !(c.all && isPlainFunc(fd)) {
				continue
			}
			if name == "" {
				name = fd.Name.Name
			}
			c.function(fd, name)
		}
	}
}

// directiveName reports whether doc carries the directive and returns its
// optional name argument.
func directiveName(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, comment := range doc.List {
		rest, ok := strings.CutPrefix(comment.Text, Directive)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func isPlainFunc(fd *ast.FuncDecl) bool {
	return fd.Recv == nil && fd.Type.TypeParams == nil && fd.Body != nil &&
		fd.Name.Name != "init" && fd.Name.Name != "main"
}

func (c *collector) function(fd *ast.FuncDecl, name string) {
	pos := c.fset.Position(fd.Pos())
	fail := func(format string, args ...any) {
		c.diags = append(c.diags, Diagnostic{
			Package:  c.pkgPath,
			Function: fd.Name.Name,
			Pos:      pos,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	switch {
	case fd.Recv != nil:
		fail("methods cannot be translated")
		return
	case fd.Type.TypeParams != nil:
		fail("generic functions cannot be translated")
		return
	case fd.Body == nil:
		fail("function has no body")
		return
	}

	fn, err := c.descriptor(fd, name)
	if err != nil {
		fail("%v", err)
		return
	}

	l := newLowerer(c.fset, c.info)
	body := l.block(fd.Body.List)

	var src bytes.Buffer
	if err := format.Node(&src, c.fset, fd); err != nil {
		fail("print source: %v", err)
		return
	}

	c.funcs = append(c.funcs, &Func{
		Package:  c.pkgPath,
		Pos:      pos,
		Function: fn,
		Body:     body,
		Symbols:  l.symbols,
		Source:   src.String(),
	})
}

// descriptor builds the signature of fd from its type-checked object.
func (c *collector) descriptor(fd *ast.FuncDecl, name string) (*translate.Function, error) {
	obj, ok := c.info.Defs[fd.Name].(*types.Func)
	if !ok {
		return nil, fmt.Errorf("no type information for %s", fd.Name.Name)
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return nil, fmt.Errorf("%s is not a function", fd.Name.Name)
	}
	if sig.Variadic() {
		return nil, fmt.Errorf("variadic parameters are not supported")
	}

	fn := &translate.Function{Name: name, ReturnType: syntax.Type("void")}
	switch sig.Results().Len() {
	case 0:
	case 1:
		fn.ReturnType = typeRef(sig.Results().At(0).Type())
	default:
		return nil, fmt.Errorf("functions may return at most one value, found %d", sig.Results().Len())
	}

	params := sig.Params()
	for i := range params.Len() {
		p := params.At(i)
		if p.Name() == "" || p.Name() == "_" {
			return nil, fmt.Errorf("parameter %d has no name", i+1)
		}
		fn.Parameters = append(fn.Parameters, translate.Parameter{
			Name: p.Name(),
			Type: typeRef(p.Type()),
		})
	}
	return fn, nil
}

// typeRef converts a Go type to a backend lookup key. Named types are
// qualified by their package path; anything else uses its Go spelling,
// which no backend maps.
func typeRef(t types.Type) syntax.TypeRef {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return syntax.TypeRef{Name: t.Name()}
	case *types.Named:
		obj := t.Obj()
		if obj.Pkg() == nil {
			return syntax.TypeRef{Name: obj.Name()}
		}
		return syntax.TypeRef{Name: obj.Name(), Namespace: obj.Pkg().Path()}
	default:
		return syntax.TypeRef{Name: types.TypeString(t, nil)}
	}
}
