// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package symbols describes the resolved symbol information the translator
// consults for invocations and object constructions.
//
// The translator depends only on the Resolver interface. Front ends that
// resolve eagerly fill a Table; tests use the same Table as a stub.
package symbols

import (
	"fmt"

	"github.com/gogpu/shadergen/syntax"
)

// Kind categorizes a symbol.
type Kind uint8

const (
	// KindMethod is a method or free function.
	KindMethod Kind = iota + 1

	// KindType is a named type.
	KindType

	// KindVariable is a local, parameter, field or global.
	KindVariable
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindType:
		return "type"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Symbol is what a node resolves to.
type Symbol struct {
	Kind Kind

	// Name is the simple member or type name, e.g. "Max" or "Vector4".
	Name string

	// ContainingType is the display name of the declaring type for methods,
	// e.g. "System.Math". Free functions use their package path.
	ContainingType string

	// Namespace is the containing namespace for types, e.g. "System.Numerics".
	Namespace string
}

// QualifiedName returns Namespace.Name, or Name when there is no namespace.
func (s Symbol) QualifiedName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "." + s.Name
}

// String implements fmt.Stringer.
func (s Symbol) String() string {
	if s.Kind == KindMethod && s.ContainingType != "" {
		return fmt.Sprintf("%s %s.%s", s.Kind, s.ContainingType, s.Name)
	}
	return fmt.Sprintf("%s %s", s.Kind, s.QualifiedName())
}

// Resolver resolves syntax nodes to symbols.
// Implementations must be safe for concurrent reads when functions are
// translated in parallel.
type Resolver interface {
	Resolve(node *syntax.Expr) (Symbol, bool)
}

// Table is a map-backed Resolver keyed by node identity.
// Populate it before translation; it is not safe for concurrent writes.
type Table struct {
	entries map[*syntax.Expr]Symbol
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[*syntax.Expr]Symbol)}
}

// Bind records the symbol for node.
func (t *Table) Bind(node *syntax.Expr, sym Symbol) {
	t.entries[node] = sym
}

// Resolve implements Resolver.
func (t *Table) Resolve(node *syntax.Expr) (Symbol, bool) {
	if t == nil || node == nil {
		return Symbol{}, false
	}
	sym, ok := t.entries[node]
	return sym, ok
}

// Len returns the number of bound nodes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Method returns a method symbol.
func Method(containingType, name string) Symbol {
	return Symbol{Kind: KindMethod, Name: name, ContainingType: containingType}
}

// Type returns a type symbol.
func Type(namespace, name string) Symbol {
	return Symbol{Kind: KindType, Name: name, Namespace: namespace}
}
