// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"fmt"

	"github.com/gogpu/shadergen/syntax"
)

// ErrorKind categorizes translation errors.
type ErrorKind uint8

const (
	// ErrUnsupportedConstruct indicates a statement or expression kind the
	// translator does not handle.
	ErrUnsupportedConstruct ErrorKind = iota

	// ErrUnresolvedSymbol indicates the resolver could not identify the
	// method or type behind an invocation or construction.
	ErrUnresolvedSymbol

	// ErrUnmappedName indicates the backend has no entry for a type or
	// (type, method) pair.
	ErrUnmappedName

	// ErrShapeViolation indicates a declaration that does not declare
	// exactly one variable.
	ErrShapeViolation

	// ErrReservedIdentifier indicates an identifier colliding with a target
	// reserved word under IdentifiersReject.
	ErrReservedIdentifier

	// ErrInvalidInput indicates a missing function descriptor or name.
	ErrInvalidInput
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedConstruct:
		return "UnsupportedConstruct"
	case ErrUnresolvedSymbol:
		return "UnresolvedSymbol"
	case ErrUnmappedName:
		return "UnmappedName"
	case ErrShapeViolation:
		return "ShapeViolation"
	case ErrReservedIdentifier:
		return "ReservedIdentifier"
	case ErrInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// Error represents a translation failure.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Construct names the offending node kind, symbol or identifier.
	Construct string

	// Message provides details about the error.
	Message string

	// Span optionally identifies the source location.
	Span *syntax.Span

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Span != nil && !e.Span.IsZero() {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Span, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnsupported returns true if the error is ErrUnsupportedConstruct.
func (e *Error) IsUnsupported() bool {
	return e.Kind == ErrUnsupportedConstruct
}

func newError(kind ErrorKind, construct string, span syntax.Span, format string, args ...any) *Error {
	err := &Error{
		Kind:      kind,
		Construct: construct,
		Message:   fmt.Sprintf(format, args...),
	}
	if !span.IsZero() {
		err.Span = &span
	}
	return err
}

func unsupportedStatement(stmt *syntax.Statement) *Error {
	name := syntax.StatementName(stmt.Kind)
	return newError(ErrUnsupportedConstruct, name, stmt.Span, "%s statements are not supported", name)
}

func unsupportedExpression(expr *syntax.Expr) *Error {
	name := syntax.ExpressionName(expr.Kind)
	return newError(ErrUnsupportedConstruct, name, expr.Span, "%s expressions are not supported", name)
}
