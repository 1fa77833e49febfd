// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "github.com/gogpu/shadergen/backend"

// Name is the dialect name.
const Name = "hlsl"

// HLSL type name constants.
const (
	hlslTypeVoid   = "void"
	hlslTypeBool   = "bool"
	hlslTypeInt    = "int"
	hlslTypeUint   = "uint"
	hlslTypeFloat  = "float"
	hlslTypeDouble = "double"
)

// scalarTypes maps canonical scalar names to HLSL.
var scalarTypes = map[string]string{
	"void":    hlslTypeVoid,
	"bool":    hlslTypeBool,
	"int32":   hlslTypeInt,
	"uint32":  hlslTypeUint,
	"float32": hlslTypeFloat,
	"float64": hlslTypeDouble,
}

// compositeTypes maps canonical vector and matrix names to HLSL.
var compositeTypes = map[string]string{
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

// intrinsics maps canonical intrinsic names to HLSL built-in functions.
var intrinsics = map[string]string{
	"Abs":        "abs",
	"Min":        "min",
	"Max":        "max",
	"Clamp":      "clamp",
	"Saturate":   "saturate",
	"Lerp":       "lerp",
	"Sqrt":       "sqrt",
	"Pow":        "pow",
	"Sin":        "sin",
	"Cos":        "cos",
	"Tan":        "tan",
	"Floor":      "floor",
	"Ceil":       "ceil",
	"Frac":       "frac",
	"Step":       "step",
	"SmoothStep": "smoothstep",
	"Dot":        "dot",
	"Cross":      "cross",
	"Length":     "length",
	"Distance":   "distance",
	"Normalize":  "normalize",
	"Reflect":    "reflect",
	"Mul":        "mul",
}

var defaultBackend = build()

// New returns the HLSL backend. The value is shared and immutable; derive
// project-specific tables with With.
func New() *backend.Table {
	return defaultBackend
}

func build() *backend.Table {
	types := backend.ExpandTypes(scalarTypes)
	for src, dst := range backend.ExpandTypes(compositeTypes) {
		types[src] = dst
	}
	return backend.NewTable(Name, types, backend.ExpandFunctions(intrinsics)).
		WithKeywords(reservedWords(), false).
		WithKeywords(caseInsensitiveKeywords, true)
}
