// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// keywords contains GLSL reserved words: types, qualifiers, control flow,
// words reserved for future use, and built-in functions commonly chosen as
// local names. Based on GLSL 4.60 and GLSL ES 3.20.
var keywords = []string{
	// Basic types
	"void", "bool", "int", "uint", "float", "double",
	"vec2", "vec3", "vec4", "ivec2", "ivec3", "ivec4",
	"uvec2", "uvec3", "uvec4", "bvec2", "bvec3", "bvec4",
	"dvec2", "dvec3", "dvec4",
	"mat2", "mat3", "mat4",
	"mat2x2", "mat2x3", "mat2x4", "mat3x2", "mat3x3", "mat3x4",
	"mat4x2", "mat4x3", "mat4x4",
	"sampler", "sampler1D", "sampler2D", "sampler3D", "samplerCube",
	"atomic_uint",

	// Qualifiers and control flow
	"attribute", "const", "uniform", "varying", "buffer", "shared",
	"coherent", "volatile", "restrict", "readonly", "writeonly",
	"layout", "centroid", "flat", "smooth", "noperspective", "patch", "sample",
	"break", "continue", "do", "for", "while", "switch", "case", "default",
	"if", "else", "subroutine", "in", "out", "inout", "true", "false",
	"invariant", "precise", "discard", "return", "struct",
	"lowp", "mediump", "highp", "precision",

	// Reserved for future use
	"common", "partition", "active", "asm", "class", "union", "enum",
	"typedef", "template", "this", "resource", "goto", "inline", "noinline",
	"public", "static", "extern", "external", "interface", "long", "short",
	"half", "fixed", "unsigned", "superp", "input", "output",
	"hvec2", "hvec3", "hvec4", "fvec2", "fvec3", "fvec4",
	"filter", "sizeof", "cast", "namespace", "using",

	// Built-in functions
	"main", "radians", "degrees", "sin", "cos", "tan", "asin", "acos", "atan",
	"pow", "exp", "log", "exp2", "log2", "sqrt", "inversesqrt",
	"abs", "sign", "floor", "trunc", "round", "ceil", "fract", "mod",
	"min", "max", "clamp", "mix", "step", "smoothstep",
	"length", "distance", "dot", "cross", "normalize", "reflect", "refract",
	"texture", "textureLod", "texelFetch",
}
