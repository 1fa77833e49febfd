// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package msl provides the MSL (Metal Shading Language) backend.
//
// Types and intrinsics are emitted fully qualified with the metal::
// namespace, so the generated code does not rely on a using-directive.
// Metal has no double type and no mul intrinsic; both are left unmapped.
package msl

import "github.com/gogpu/shadergen/backend"

// Name is the dialect name.
const Name = "msl"

// namespace prefixes every Metal library type and function.
const namespace = "metal::"

var scalarTypes = map[string]string{
	"void":    "void",
	"bool":    "bool",
	"int32":   "int",
	"uint32":  "uint",
	"float32": "float",
}

var vectorTypes = map[string]string{
	"Vector2":   "float2",
	"Vector3":   "float3",
	"Vector4":   "float4",
	"Int2":      "int2",
	"Int3":      "int3",
	"Int4":      "int4",
	"UInt2":     "uint2",
	"UInt3":     "uint3",
	"UInt4":     "uint4",
	"Matrix3x3": "float3x3",
	"Matrix4x4": "float4x4",
}

var intrinsics = map[string]string{
	"Abs":        "abs",
	"Min":        "min",
	"Max":        "max",
	"Clamp":      "clamp",
	"Saturate":   "saturate",
	"Lerp":       "mix",
	"Sqrt":       "sqrt",
	"Pow":        "pow",
	"Sin":        "sin",
	"Cos":        "cos",
	"Tan":        "tan",
	"Floor":      "floor",
	"Ceil":       "ceil",
	"Frac":       "fract",
	"Step":       "step",
	"SmoothStep": "smoothstep",
	"Dot":        "dot",
	"Cross":      "cross",
	"Length":     "length",
	"Distance":   "distance",
	"Normalize":  "normalize",
	"Reflect":    "reflect",
}

var defaultBackend = build()

// New returns the shared MSL backend.
func New() *backend.Table {
	return defaultBackend
}

func build() *backend.Table {
	types := backend.ExpandTypes(scalarTypes)
	for src, dst := range backend.ExpandTypes(vectorTypes) {
		types[src] = namespace + dst
	}
	fns := make(map[string]string, len(intrinsics))
	for name, fn := range intrinsics {
		fns[name] = namespace + fn
	}
	// Metal matrices are column-major, see glsl.
	return backend.NewTable(Name, types, backend.ExpandFunctions(fns)).
		WithKeywords(keywords, false).
		WithoutConstructors("Matrix3x3", "Matrix4x4")
}

// keywords are C++14 keywords plus Metal address-space and stage qualifiers.
var keywords = []string{
	"alignas", "alignof", "and", "asm", "auto", "bool", "break", "case",
	"catch", "char", "class", "const", "constexpr", "const_cast", "continue",
	"decltype", "default", "delete", "do", "double", "dynamic_cast", "else",
	"enum", "explicit", "export", "extern", "false", "float", "for", "friend",
	"goto", "if", "inline", "int", "long", "mutable", "namespace", "new",
	"noexcept", "not", "nullptr", "operator", "or", "private", "protected",
	"public", "register", "reinterpret_cast", "return", "short", "signed",
	"sizeof", "static", "static_assert", "static_cast", "struct", "switch",
	"template", "this", "thread_local", "throw", "true", "try", "typedef",
	"typeid", "typename", "union", "unsigned", "using", "virtual", "void",
	"volatile", "while",
	// Metal
	"device", "constant", "thread", "threadgroup", "threadgroup_imageblock",
	"ray_data", "object_data", "kernel", "vertex", "fragment", "half", "uint",
	"metal", "main",
}
