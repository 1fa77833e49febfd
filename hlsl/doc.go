// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl provides the HLSL (High-Level Shading Language) backend, the
// reference dialect of shadergen.
//
// HLSL is Microsoft's shader language for DirectX. Value types map to the
// scalar/vector/matrix shorthands (float4, int2, float4x4) and intrinsics map
// to their lowercase built-ins (max, saturate, lerp, mul).
//
// # Usage
//
//	be := hlsl.New()
//	src, err := translate.Translate(fn, body, resolver, be, nil)
//
// The returned backend also reports HLSL reserved words, including the
// legacy keywords FXC matches case-insensitively, so the translator can
// reject or escape colliding identifiers.
package hlsl
