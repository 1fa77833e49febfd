// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/hlsl"
	"github.com/gogpu/shadergen/translate"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[target]
dialect = "glsl"
identifiers = "escape"
indent = "  "

[build]
jobs = 4
cache_dir = ".cache"

[types]
"example.com/shaders.Light" = "Light"

[[function]]
type = "example.com/shaders"
method = "Shade"
target = "shade"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Target.Dialect != "glsl" || cfg.Target.Identifiers != "escape" || cfg.Target.Indent != "  " {
		t.Errorf("Target = %+v", cfg.Target)
	}
	if cfg.Build.Jobs != 4 {
		t.Errorf("Jobs = %d", cfg.Build.Jobs)
	}
	if want := filepath.Join(dir, ".cache"); cfg.Build.CacheDir != want {
		t.Errorf("CacheDir = %q, want %q", cfg.Build.CacheDir, want)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Identifiers != translate.IdentifiersEscape || opts.Indent != "  " {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[build]\nall_functions = true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Target.Dialect != hlsl.Name {
		t.Errorf("Dialect = %q, want default %q", cfg.Target.Dialect, hlsl.Name)
	}
	if !cfg.Build.AllFunctions {
		t.Error("AllFunctions not decoded")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[target\n", "failed to parse TOML"},
		{"unknown_key", "[target]\nlanguage = \"hlsl\"\n", "unknown keys: target.language"},
		{"empty_dialect", "[target]\ndialect = \"\"\n", "[target].dialect must not be empty"},
		{"unknown_dialect", "[target]\ndialect = \"wgsl\"\n", "unknown dialect \"wgsl\""},
		{"bad_policy", "[target]\nidentifiers = \"mangle\"\n", "[target].identifiers"},
		{"bad_indent", "[target]\nindent = \"--\"\n", "[target].indent"},
		{"negative_jobs", "[build]\njobs = -1\n", "[build].jobs"},
		{"empty_type", "[types]\n\"example.com/x.T\" = \"\"\n", "[types]"},
		{"function_missing_target", "[[function]]\ntype = \"T\"\nmethod = \"M\"\n", "missing target"},
		{"duplicate_function", `
[[function]]
type = "T"
method = "M"
target = "a"

[[function]]
type = "T"
method = "M"
target = "b"
`, "T.M already mapped by #1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), path) {
				t.Errorf("error should name the file, got %q", err)
			}
		})
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := Find(nested); err != nil || ok {
		t.Fatalf("Find() without a file = %v, %v", ok, err)
	}

	want := writeConfig(t, root, "")
	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find() = %v, %v", ok, err)
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestDiscoverDefault(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" || cfg.Target.Dialect != hlsl.Name {
		t.Errorf("Discover() = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	base := hlsl.New()
	if cfg.Apply(base) != base {
		t.Error("Apply without overrides should return base")
	}

	cfg.Types = map[string]string{"example.com/shaders.Light": "Light"}
	cfg.Functions = []Function{{Type: "example.com/shaders", Method: "Shade", Target: "shade"}}
	table := cfg.Apply(base)

	if got, err := table.MapType("example.com/shaders.Light"); err != nil || got != "Light" {
		t.Errorf("MapType() = %q, %v", got, err)
	}
	if got, err := table.MapFunction("example.com/shaders", "Shade"); err != nil || got != "shade" {
		t.Errorf("MapFunction() = %q, %v", got, err)
	}
	if got, err := table.MapType("float32"); err != nil || got != "float" {
		t.Errorf("built-in entries lost: %q, %v", got, err)
	}
	if _, err := base.MapType("example.com/shaders.Light"); err == nil {
		t.Error("Apply must not modify the base table")
	}

	_, fns := cfg.Overrides()
	if fns[backend.FunctionKey{Type: "example.com/shaders", Method: "Shade"}] != "shade" {
		t.Errorf("Overrides() = %v", fns)
	}
}
