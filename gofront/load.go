// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gofront

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Config controls package loading and function selection.
type Config struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string

	// Env overrides the environment of the underlying go command.
	Env []string

	// All selects every top-level function without a receiver or type
	// parameters, not only those carrying the directive.
	All bool
}

// Result is the outcome of loading one or more packages.
type Result struct {
	// Funcs are the selected functions in package, file and declaration
	// order.
	Funcs []*Func

	// Diagnostics describe selected functions that could not be lowered.
	Diagnostics []Diagnostic
}

const loadMode = packages.NeedName | packages.NeedFiles |
	packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo

// Load loads the packages matching patterns and collects their shader
// functions. Package load or type errors fail the whole call; problems with
// individual functions are reported as diagnostics.
func Load(ctx context.Context, cfg Config, patterns ...string) (*Result, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	pcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
		Env:     cfg.Env,
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("gofront: load %v: %w", patterns, err)
	}
	if err := packageErrors(pkgs); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, pkg := range pkgs {
		c := &collector{
			pkgPath: pkg.PkgPath,
			fset:    pkg.Fset,
			info:    pkg.TypesInfo,
			all:     cfg.All,
		}
		c.collect(pkg.Syntax)
		result.Funcs = append(result.Funcs, c.funcs...)
		result.Diagnostics = append(result.Diagnostics, c.diags...)
	}
	return result, nil
}

// Collect selects and lowers the shader functions of already type-checked
// files. info must carry Types, Defs and Uses.
func Collect(pkg *types.Package, fset *token.FileSet, files []*ast.File, info *types.Info, all bool) *Result {
	c := &collector{
		pkgPath: pkg.Path(),
		fset:    fset,
		info:    info,
		all:     all,
	}
	c.collect(files)
	return &Result{Funcs: c.funcs, Diagnostics: c.diags}
}

func packageErrors(pkgs []*packages.Package) error {
	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			if e.Pos != "" {
				errs = append(errs, fmt.Errorf("%s: %s", e.Pos, e.Msg))
			} else {
				errs = append(errs, errors.New(e.Msg))
			}
		}
	})
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("gofront: %w", errors.Join(errs...))
}
