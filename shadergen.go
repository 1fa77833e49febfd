// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shadergen translates method bodies into shading-language source.
//
// The translator core lives in the translate package and works on syntax
// trees plus a symbol resolver. This package wires the core to the built-in
// backends, runs batches of functions concurrently and drives the Go front
// end for shader functions written in Go:
//
//	//shadergen:func
//	func Lambert(n, l shaderlib.Vector3) float32 {
//		d := shaderlib.Dot(n, l)
//		return shaderlib.Saturate(d)
//	}
//
// translated for HLSL becomes
//
//	float Lambert(float3 n, float3 l)
//	{
//	float d = dot(n, l);
//	return saturate(d);
//	}
//
// Example usage:
//
//	be, _ := shadergen.Backend("hlsl")
//	results, err := shadergen.TranslateAll(ctx, jobs, be, nil)
//
// For a whole Go package, with project configuration and caching:
//
//	cfg, _ := config.Discover(".")
//	report, err := shadergen.TranslatePackages(ctx, cfg, nil, "./shaders")
package shadergen

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/hlsl"
	"github.com/gogpu/shadergen/msl"
	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
	"github.com/gogpu/shadergen/translate"
)

// Version is the shadergen release.
const Version = "0.3.0"

var backends = map[string]func() *backend.Table{
	hlsl.Name: hlsl.New,
	glsl.Name: glsl.New,
	msl.Name:  msl.New,
}

// Backend returns the built-in backend for dialect.
func Backend(dialect string) (*backend.Table, error) {
	newBackend, ok := backends[strings.ToLower(dialect)]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (expected: %s)", dialect, strings.Join(Dialects(), "|"))
	}
	return newBackend(), nil
}

// Dialects returns the names of the built-in backends in sorted order.
func Dialects() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Translate translates a single function with default options.
//
// This is the simplest entry point. For batches use TranslateAll.
func Translate(fn *translate.Function, body syntax.Block, resolver symbols.Resolver, be backend.Backend) (string, error) {
	return translate.Translate(fn, body, resolver, be, nil)
}
