// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl provides the GLSL (OpenGL Shading Language) backend.
//
// Vectors and matrices map to vecN/ivecN/uvecN/matN. GLSL has no saturate
// or mul built-in: calls to them fail as unmapped rather than being
// rewritten into different expressions.
package glsl

import "github.com/gogpu/shadergen/backend"

// Name is the dialect name.
const Name = "glsl"

var types = map[string]string{
	"void":    "void",
	"bool":    "bool",
	"int32":   "int",
	"uint32":  "uint",
	"float32": "float",
	"float64": "double",

	"Vector2":   "vec2",
	"Vector3":   "vec3",
	"Vector4":   "vec4",
	"Int2":      "ivec2",
	"Int3":      "ivec3",
	"Int4":      "ivec4",
	"UInt2":     "uvec2",
	"UInt3":     "uvec3",
	"UInt4":     "uvec4",
	"Matrix3x3": "mat3",
	"Matrix4x4": "mat4",
}

var intrinsics = map[string]string{
	"Abs":        "abs",
	"Min":        "min",
	"Max":        "max",
	"Clamp":      "clamp",
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

// GLSL matrix constructors fill column by column, so a row-major source
// matrix cannot be built from its components in source order.
var defaultBackend = backend.NewTable(Name, backend.ExpandTypes(types), backend.ExpandFunctions(intrinsics)).
	WithKeywords(keywords, false).
	WithoutConstructors("Matrix3x3", "Matrix4x4")

// New returns the shared GLSL backend.
func New() *backend.Table {
	return defaultBackend
}
