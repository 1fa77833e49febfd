// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shaderlib provides the value types and intrinsics available to
// shader functions written in Go.
//
// The functions are real Go implementations, so shader code can run and be
// unit-tested on the CPU. When such code is translated, the backends map the
// types and functions of this package to their dialect built-ins:
//
//	//shadergen:func
//	func Brighten(c shaderlib.Vector4, k float32) shaderlib.Vector4 {
//		s := shaderlib.Saturate(k)
//		return shaderlib.Vector4{c.X, c.Y, c.Z, s}
//	}
package shaderlib

import "math"

// PackagePath is the import path backends use as the namespace of the types
// and the containing type of the functions declared here.
const PackagePath = "github.com/gogpu/shadergen/shaderlib"

// Vector2 is a two-component float vector.
type Vector2 struct{ X, Y float32 }

// Vector3 is a three-component float vector.
type Vector3 struct{ X, Y, Z float32 }

// Vector4 is a four-component float vector.
type Vector4 struct{ X, Y, Z, W float32 }

// Int2 is a two-component signed integer vector.
type Int2 struct{ X, Y int32 }

// Int3 is a three-component signed integer vector.
type Int3 struct{ X, Y, Z int32 }

// Int4 is a four-component signed integer vector.
type Int4 struct{ X, Y, Z, W int32 }

// UInt2 is a two-component unsigned integer vector.
type UInt2 struct{ X, Y uint32 }

// UInt3 is a three-component unsigned integer vector.
type UInt3 struct{ X, Y, Z uint32 }

// UInt4 is a four-component unsigned integer vector.
type UInt4 struct{ X, Y, Z, W uint32 }

// Matrix3x3 is a row-major 3x3 float matrix.
type Matrix3x3 struct {
	M11, M12, M13 float32
	M21, M22, M23 float32
	M31, M32, M33 float32
}

// Matrix4x4 is a row-major 4x4 float matrix.
type Matrix4x4 struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Abs returns |x|.
func Abs(x float32) float32 { return float32(math.Abs(float64(x))) }

// Min returns the smaller of a and b.
func Min(a, b float32) float32 { return min(a, b) }

// Max returns the larger of a and b.
func Max(a, b float32) float32 { return max(a, b) }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 { return min(max(x, lo), hi) }

// Saturate clamps x to [0, 1].
func Saturate(x float32) float32 { return Clamp(x, 0, 1) }

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Pow returns x raised to y.
func Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

// Sin returns the sine of x radians.
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Cos returns the cosine of x radians.
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Tan returns the tangent of x radians.
func Tan(x float32) float32 { return float32(math.Tan(float64(x))) }

// Floor rounds x down.
func Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

// Ceil rounds x up.
func Ceil(x float32) float32 { return float32(math.Ceil(float64(x))) }

// Frac returns the fractional part of x, x - Floor(x).
func Frac(x float32) float32 { return x - Floor(x) }

// Step returns 0 when x < edge and 1 otherwise.
func Step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// SmoothStep performs Hermite interpolation between 0 and 1 for x in [e0, e1].
func SmoothStep(e0, e1, x float32) float32 {
	t := Saturate((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the cross product of a and b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length of v.
func Length(v Vector3) float32 { return Sqrt(Dot(v, v)) }

// Distance returns the distance between a and b.
func Distance(a, b Vector3) float32 {
	return Length(Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z})
}

// Normalize returns v scaled to unit length. The zero vector is returned as is.
func Normalize(v Vector3) Vector3 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// Reflect reflects incident vector i about normal n.
func Reflect(i, n Vector3) Vector3 {
	d := 2 * Dot(n, i)
	return Vector3{i.X - d*n.X, i.Y - d*n.Y, i.Z - d*n.Z}
}

// Mul multiplies row vector v by matrix m.
func Mul(v Vector4, m Matrix4x4) Vector4 {
	return Vector4{
		v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31 + v.W*m.M41,
		v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32 + v.W*m.M42,
		v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33 + v.W*m.M43,
		v.X*m.M14 + v.Y*m.M24 + v.Z*m.M34 + v.W*m.M44,
	}
}

// Types lists the value types declared by this package.
var Types = []string{
	"Vector2", "Vector3", "Vector4",
	"Int2", "Int3", "Int4",
	"UInt2", "UInt3", "UInt4",
	"Matrix3x3", "Matrix4x4",
}

// Functions lists the intrinsics declared by this package.
var Functions = []string{
	"Abs", "Min", "Max", "Clamp", "Saturate", "Lerp",
	"Sqrt", "Pow", "Sin", "Cos", "Tan", "Floor", "Ceil", "Frac",
	"Step", "SmoothStep",
	"Dot", "Cross", "Length", "Distance", "Normalize", "Reflect", "Mul",
}
