// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package msl

import (
	"errors"
	"testing"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/shaderlib"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"float32", "float"},
		{"void", "void"},
		{"System.Numerics.Vector4", "metal::float4"},
		{shaderlib.PackagePath + ".Matrix4x4", "metal::float4x4"},
		{shaderlib.PackagePath + ".Int3", "metal::int3"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := New().MapType(tt.source)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("MapType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNoDouble(t *testing.T) {
	if _, err := New().MapType("float64"); !errors.Is(err, backend.ErrUnmapped) {
		t.Errorf("expected ErrUnmapped for float64, got %v", err)
	}
}

func TestMapFunction(t *testing.T) {
	tests := []struct {
		typ    string
		method string
		want   string
	}{
		{"System.Math", "Max", "metal::max"},
		{shaderlib.PackagePath, "Saturate", "metal::saturate"},
		{shaderlib.PackagePath, "Lerp", "metal::mix"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := New().MapFunction(tt.typ, tt.method)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("MapFunction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsReserved(t *testing.T) {
	reserved := []string{"float", "int", "void", "struct", "class", "return", "if", "else", "kernel", "device"}
	for _, word := range reserved {
		if !New().IsReserved(word) {
			t.Errorf("Expected %q to be reserved", word)
		}
	}

	notReserved := []string{"myVar", "foo", "color_output", "x123"}
	for _, word := range notReserved {
		if New().IsReserved(word) {
			t.Errorf("Expected %q to NOT be reserved", word)
		}
	}
}

func TestMatrixConstruction(t *testing.T) {
	be := New()
	for _, m := range []string{"Matrix3x3", "Matrix4x4"} {
		if got := be.CanConstruct(shaderlib.PackagePath + "." + m); got != false {
			t.Errorf("CanConstruct(%s) = %v", m, got)
		}
	}
	if !be.CanConstruct(shaderlib.PackagePath + ".Vector4") {
		t.Error("vectors must stay constructible")
	}
}
