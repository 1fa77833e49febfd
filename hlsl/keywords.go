// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

// keywords are the HLSL language keywords shared by FXC and DXC.
var keywords = []string{
	"AppendStructuredBuffer", "asm", "asm_fragment", "BlendState", "bool", "break",
	"Buffer", "ByteAddressBuffer", "case", "cbuffer", "centroid", "class",
	"column_major", "compile", "compile_fragment", "CompileShader", "const",
	"continue", "ComputeShader", "ConsumeStructuredBuffer", "default",
	"DepthStencilState", "DepthStencilView", "discard", "do", "double",
	"DomainShader", "dword", "else", "export", "extern", "false", "float", "for",
	"fxgroup", "GeometryShader", "groupshared", "half", "Hullshader", "if", "in",
	"inline", "inout", "InputPatch", "int", "interface", "line", "lineadj",
	"linear", "LineStream", "matrix", "min16float", "min10float", "min16int",
	"min12int", "min16uint", "namespace", "nointerpolation", "noperspective",
	"NULL", "out", "OutputPatch", "packoffset", "pass", "pixelfragment",
	"PixelShader", "point", "PointStream", "precise", "RasterizerState",
	"RenderTargetView", "return", "register", "row_major", "RWBuffer",
	"RWByteAddressBuffer", "RWStructuredBuffer", "RWTexture1D",
	"RWTexture1DArray", "RWTexture2D", "RWTexture2DArray", "RWTexture3D",
	"sample", "sampler", "SamplerState", "SamplerComparisonState", "shared",
	"snorm", "stateblock", "stateblock_state", "static", "string", "struct",
	"switch", "StructuredBuffer", "tbuffer", "technique", "technique10",
	"technique11", "texture", "Texture1D", "Texture1DArray", "Texture2D",
	"Texture2DArray", "Texture2DMS", "Texture2DMSArray", "Texture3D",
	"TextureCube", "TextureCubeArray", "true", "typedef", "triangle",
	"triangleadj", "TriangleStream", "uint", "uniform", "unorm", "unsigned",
	"vector", "vertexfragment", "VertexShader", "void", "volatile", "while",
}

// reserved are words FXC reserves for future use.
var reserved = []string{
	"auto", "catch", "char", "const_cast", "delete", "dynamic_cast", "enum",
	"explicit", "friend", "goto", "long", "mutable", "new", "operator",
	"private", "protected", "public", "reinterpret_cast", "short", "signed",
	"sizeof", "static_cast", "template", "this", "throw", "try", "typename",
	"union", "using", "virtual",
	// DXC additions
	"alignas", "alignof", "constexpr", "decltype", "noexcept", "nullptr",
	"static_assert", "thread_local",
}

// intrinsicNames are HLSL built-in functions. A local named like one of
// these shadows the intrinsic in the generated code.
var intrinsicNames = []string{
	"abort", "abs", "acos", "all", "any", "asdouble", "asfloat", "asin",
	"asint", "asuint", "atan", "atan2", "ceil", "clamp", "clip", "cos", "cosh",
	"countbits", "cross", "ddx", "ddx_coarse", "ddx_fine", "ddy", "ddy_coarse",
	"ddy_fine", "degrees", "determinant", "distance", "dot", "dst", "errorf",
	"exp", "exp2", "f16tof32", "f32tof16", "faceforward", "firstbithigh",
	"firstbitlow", "floor", "fma", "fmod", "frac", "frexp", "fwidth",
	"isfinite", "isinf", "isnan", "ldexp", "length", "lerp", "lit", "log",
	"log10", "log2", "mad", "max", "min", "modf", "msad4", "mul", "noise",
	"normalize", "pow", "printf", "radians", "rcp", "reflect", "refract",
	"reversebits", "round", "rsqrt", "saturate", "sign", "sin", "sincos",
	"sinh", "smoothstep", "sqrt", "step", "tan", "tanh", "transpose", "trunc",
}

// caseInsensitiveKeywords are legacy effect-framework keywords FXC matches
// regardless of case.
var caseInsensitiveKeywords = []string{
	"asm", "decl", "pass", "technique", "Texture1D", "Texture2D", "Texture3D",
	"TextureCube",
}

// reservedWords returns the case-sensitive reserved set: keywords, reserved
// words, intrinsics, and the generated scalar/vector/matrix shorthands.
func reservedWords() []string {
	words := make([]string, 0, len(keywords)+len(reserved)+len(intrinsicNames)+256)
	words = append(words, keywords...)
	words = append(words, reserved...)
	words = append(words, intrinsicNames...)
	return append(words, typeShorthands()...)
}

// typeShorthands generates baseN and baseRxC for every numeric base type.
func typeShorthands() []string {
	bases := []string{
		"bool", "int", "uint", "half", "float", "double",
		"min16float", "min10float", "min16int", "min12int", "min16uint",
		"int16_t", "int32_t", "int64_t", "uint16_t", "uint32_t", "uint64_t",
		"float16_t", "float32_t", "float64_t",
	}

	var out []string
	for _, base := range bases {
		out = append(out, base)
		for r := 1; r <= 4; r++ {
			out = append(out, base+string(rune('0'+r)))
			for c := 1; c <= 4; c++ {
				out = append(out, base+string(rune('0'+r))+"x"+string(rune('0'+c)))
			}
		}
	}
	return out
}
