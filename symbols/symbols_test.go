// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package symbols

import (
	"testing"

	"github.com/gogpu/shadergen/syntax"
)

func TestTableResolve(t *testing.T) {
	table := NewTable()
	callee := syntax.Ident("Max")
	other := syntax.Ident("Max")
	table.Bind(callee, Method("System.Math", "Max"))

	sym, ok := table.Resolve(callee)
	if !ok {
		t.Fatal("bound node should resolve")
	}
	if sym.ContainingType != "System.Math" || sym.Name != "Max" {
		t.Errorf("Resolve() = %+v", sym)
	}

	// Resolution is by node identity, not by spelling.
	if _, ok := table.Resolve(other); ok {
		t.Error("unbound node with the same spelling should not resolve")
	}
	if _, ok := table.Resolve(nil); ok {
		t.Error("nil node should not resolve")
	}

	var nilTable *Table
	if _, ok := nilTable.Resolve(callee); ok {
		t.Error("nil table should not resolve")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestSymbolNames(t *testing.T) {
	tests := []struct {
		sym       Symbol
		qualified string
		str       string
	}{
		{Type("System.Numerics", "Vector4"), "System.Numerics.Vector4", "type System.Numerics.Vector4"},
		{Type("", "float"), "float", "type float"},
		{Method("System.Math", "Max"), "Max", "method System.Math.Max"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.sym.QualifiedName(); got != tt.qualified {
				t.Errorf("QualifiedName() = %q, want %q", got, tt.qualified)
			}
			if got := tt.sym.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindMethod.String() != "method" || KindType.String() != "type" || Kind(0).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}
