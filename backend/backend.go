// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package backend defines the per-dialect lookup policy used by the
// translator: source type names to target type tokens, and
// (containing type, method) pairs to target function names.
//
// Each shading dialect is a value implementing Backend, not a subtype.
// Table is the map-backed implementation shared by the hlsl, glsl and msl
// packages.
package backend

import (
	"errors"
	"fmt"
)

// ErrUnmapped is wrapped by every lookup failure.
var ErrUnmapped = errors.New("unmapped name")

// Backend maps source names to target dialect names.
// Implementations must be immutable and safe for concurrent use.
type Backend interface {
	// Name returns the dialect name, e.g. "hlsl".
	Name() string

	// MapType returns the target type token for a source type name.
	MapType(sourceType string) (string, error)

	// MapFunction returns the target function name for a method.
	MapFunction(containingType, method string) (string, error)
}

// KeywordChecker is implemented by backends that know their dialect's
// reserved words.
type KeywordChecker interface {
	IsReserved(name string) bool
}

// ConstructorChecker is implemented by backends that cannot construct
// some types from their component list in source order, e.g. row-major
// source matrices in a column-major dialect.
type ConstructorChecker interface {
	CanConstruct(sourceType string) bool
}

// FunctionKey identifies a source method.
type FunctionKey struct {
	Type   string
	Method string
}

// String formats the key as Type.Method.
func (k FunctionKey) String() string {
	return k.Type + "." + k.Method
}

// UnmappedTypeError returns the error for a type missing from a dialect.
func UnmappedTypeError(dialect, sourceType string) error {
	return fmt.Errorf("%w: type %q has no %s equivalent", ErrUnmapped, sourceType, dialect)
}

// UnmappedFunctionError returns the error for a method missing from a dialect.
func UnmappedFunctionError(dialect string, key FunctionKey) error {
	return fmt.Errorf("%w: function %q has no %s equivalent", ErrUnmapped, key.String(), dialect)
}
