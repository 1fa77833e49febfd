// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package lighting is a front-end fixture: shader functions written against
// shaderlib.
package lighting

import "github.com/gogpu/shadergen/shaderlib"

// Ambient is folded into the generated code.
const Ambient = 0.25

//shadergen:func
func Lambert(n shaderlib.Vector3, l shaderlib.Vector3) float32 {
	d := shaderlib.Dot(n, l)
	return shaderlib.Max(d, Ambient)
}

//shadergen:func tint_color
func Tint(c shaderlib.Vector4, k float32) shaderlib.Vector4 {
	var s float32 = shaderlib.Saturate(k)
	return shaderlib.Vector4{c.X, c.Y, c.Z, s}
}

//shadergen:func
func Scale(x float32, k float32) float32 {
	return x * k
}

//shadergen:func
func Split(x float32) (float32, float32) {
	return x, x
}

// Helper is not marked and only selected with Config.All.
func Helper(x float32) float32 {
	return shaderlib.Frac(x)
}
