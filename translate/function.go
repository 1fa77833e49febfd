// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import "github.com/gogpu/shadergen/syntax"

// Function describes one method to translate. It is read-only during
// translation and produces exactly one target function.
type Function struct {
	// Name is the generated function name.
	Name string

	// ReturnType is the declared return type; use "void" for none.
	ReturnType syntax.TypeRef

	// Parameters are the declared parameters in order.
	Parameters []Parameter
}

// Parameter is a named, typed function parameter.
type Parameter struct {
	Name string
	Type syntax.TypeRef
}
