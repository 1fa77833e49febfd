// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gofront turns shader functions written in Go into translator
// input.
//
// Packages are loaded and type-checked with golang.org/x/tools/go/packages.
// Top-level functions marked with the directive
//
//	//shadergen:func
//
// are selected, or every plain function when Config.All is set. For each one
// the front end builds a translate.Function descriptor, lowers the body to
// syntax nodes and records the resolved symbols of calls and composite
// literals in a symbols.Table.
//
// Lowering never rejects a construct itself. Go constructs without a
// counterpart in the translator become the closest syntax variant (or
// ExprUnknown / StmtUnknown), so the translator reports them by name.
// Problems that prevent building a descriptor at all, such as multiple
// results, are returned as Diagnostics.
package gofront
