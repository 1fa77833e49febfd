// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package backend

import "github.com/gogpu/shadergen/shaderlib"

// Dialect tables are written against canonical names; the alias tables
// below expand each canonical name to every source spelling that denotes
// it: Go built-ins, shaderlib declarations and the C#-style names of
// System and System.Numerics.

// TypeAliases maps a canonical type name to its source spellings.
var TypeAliases = map[string][]string{
	"void":    {"void", "System.Void"},
	"bool":    {"bool", "System.Boolean"},
	// Go int is 64 bits wide; it maps to the 32-bit target int, like the
	// C# int spelling. Shader integers never exceed 32 bits.
	"int32":   {"int32", "int", "System.Int32"},
	"uint32":  {"uint32", "uint", "System.UInt32"},
	"float32": {"float32", "float", "System.Single"},
	"float64": {"float64", "double", "System.Double"},

	"Vector2":   {shaderlib.PackagePath + ".Vector2", "System.Numerics.Vector2"},
	"Vector3":   {shaderlib.PackagePath + ".Vector3", "System.Numerics.Vector3"},
	"Vector4":   {shaderlib.PackagePath + ".Vector4", "System.Numerics.Vector4"},
	"Int2":      {shaderlib.PackagePath + ".Int2"},
	"Int3":      {shaderlib.PackagePath + ".Int3"},
	"Int4":      {shaderlib.PackagePath + ".Int4"},
	"UInt2":     {shaderlib.PackagePath + ".UInt2"},
	"UInt3":     {shaderlib.PackagePath + ".UInt3"},
	"UInt4":     {shaderlib.PackagePath + ".UInt4"},
	// Source matrices are row-major.
	"Matrix3x3": {shaderlib.PackagePath + ".Matrix3x3"},
	"Matrix4x4": {shaderlib.PackagePath + ".Matrix4x4", "System.Numerics.Matrix4x4"},
}

// FunctionAliases maps a canonical intrinsic name to its source methods.
var FunctionAliases = map[string][]FunctionKey{
	"Abs":        {lib("Abs"), sys("Abs")},
	"Min":        {lib("Min"), sys("Min")},
	"Max":        {lib("Max"), sys("Max")},
	"Clamp":      {lib("Clamp"), sys("Clamp")},
	"Saturate":   {lib("Saturate")},
	"Lerp":       {lib("Lerp"), {Type: "System.Numerics.Vector4", Method: "Lerp"}},
	"Sqrt":       {lib("Sqrt"), sys("Sqrt")},
	"Pow":        {lib("Pow"), sys("Pow")},
	"Sin":        {lib("Sin"), sys("Sin")},
	"Cos":        {lib("Cos"), sys("Cos")},
	"Tan":        {lib("Tan"), sys("Tan")},
	"Floor":      {lib("Floor"), sys("Floor")},
	"Ceil":       {lib("Ceil"), sys("Ceiling")},
	"Frac":       {lib("Frac")},
	"Step":       {lib("Step")},
	"SmoothStep": {lib("SmoothStep")},
	"Dot":        {lib("Dot"), {Type: "System.Numerics.Vector3", Method: "Dot"}},
	"Cross":      {lib("Cross"), {Type: "System.Numerics.Vector3", Method: "Cross"}},
	"Length":     {lib("Length")},
	"Distance":   {lib("Distance"), {Type: "System.Numerics.Vector3", Method: "Distance"}},
	"Normalize":  {lib("Normalize"), {Type: "System.Numerics.Vector3", Method: "Normalize"}},
	"Reflect":    {lib("Reflect"), {Type: "System.Numerics.Vector3", Method: "Reflect"}},
	"Mul":        {lib("Mul")},
}

// ExpandTypes expands a canonical type table into a source-keyed table.
// Canonical names without aliases are used as source keys directly.
func ExpandTypes(canonical map[string]string) map[string]string {
	out := make(map[string]string)
	for name, target := range canonical {
		aliases, ok := TypeAliases[name]
		if !ok {
			out[name] = target
			continue
		}
		for _, a := range aliases {
			out[a] = target
		}
	}
	return out
}

// ExpandFunctions expands a canonical intrinsic table into a source-keyed
// function table. Canonical names without aliases are dropped.
func ExpandFunctions(canonical map[string]string) map[FunctionKey]string {
	out := make(map[FunctionKey]string)
	for name, target := range canonical {
		for _, key := range FunctionAliases[name] {
			out[key] = target
		}
	}
	return out
}

func lib(method string) FunctionKey {
	return FunctionKey{Type: shaderlib.PackagePath, Method: method}
}

func sys(method string) FunctionKey {
	return FunctionKey{Type: "System.Math", Method: method}
}
