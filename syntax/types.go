// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package syntax

import "fmt"

// TypeRef identifies a source-language type.
// It is only ever used as a lookup key into a backend's type table.
type TypeRef struct {
	// Name is the simple type name, e.g. "float32" or "Vector4".
	Name string

	// Namespace qualifies Name when non-empty, e.g. a Go package path.
	Namespace string
}

// Key returns the backend lookup key for the type: the namespace-qualified
// name when a namespace is present, otherwise the simple name.
func (t TypeRef) Key() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// String implements fmt.Stringer.
func (t TypeRef) String() string {
	return t.Key()
}

// Span is the source location of a node.
// Offsets are byte offsets into the source file; Line and Column are 1-based
// and zero when unknown.
type Span struct {
	Start  uint32
	End    uint32
	Line   uint32
	Column uint32
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool {
	return s == Span{}
}

// String formats the span as "line:column" when known, else "[start:end]".
func (s Span) String() string {
	if s.Line > 0 {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}
