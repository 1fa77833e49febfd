// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package config loads shadergen.toml project files.
//
// A project file selects the target dialect and translation options and may
// extend the backend tables with project types and functions:
//
//	[target]
//	dialect = "hlsl"
//	identifiers = "escape"
//
//	[types]
//	"example.com/shaders.Light" = "Light"
//
//	[[function]]
//	type = "example.com/shaders"
//	method = "Shade"
//	target = "shade"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/hlsl"
	"github.com/gogpu/shadergen/msl"
	"github.com/gogpu/shadergen/translate"
)

// FileName is the project file looked up by Find.
const FileName = "shadergen.toml"

// Dialects lists the accepted target.dialect values.
var Dialects = []string{hlsl.Name, glsl.Name, msl.Name}

// Config is a decoded project file.
type Config struct {
	// Path is the file the configuration was loaded from, empty for
	// defaults.
	Path string `toml:"-"`

	Target    Target            `toml:"target"`
	Build     Build             `toml:"build"`
	Types     map[string]string `toml:"types"`
	Functions []Function        `toml:"function"`
}

// Target selects the dialect and output options.
type Target struct {
	Dialect     string `toml:"dialect"`
	Identifiers string `toml:"identifiers"`
	Indent      string `toml:"indent"`
}

// Build controls the batch driver.
type Build struct {
	// Jobs limits concurrent translations; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`

	// CacheDir enables the output cache when non-empty. Relative paths are
	// resolved against the directory of the project file.
	CacheDir string `toml:"cache_dir"`

	// AllFunctions selects every plain function, not only marked ones.
	AllFunctions bool `toml:"all_functions"`
}

// Function maps one source function to a target function name.
type Function struct {
	Type   string `toml:"type"`
	Method string `toml:"method"`
	Target string `toml:"target"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Target: Target{
			Dialect:     hlsl.Name,
			Identifiers: translate.IdentifiersVerbatim.String(),
		},
	}
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the project file found from startDir, or returns Default
// when there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Load decodes and validates a project file. Keys missing from the file keep
// their defaults; unknown keys are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("target", "dialect") && strings.TrimSpace(cfg.Target.Dialect) == "" {
		return nil, fmt.Errorf("%s: [target].dialect must not be empty", path)
	}

	cfg.Path = path
	if cfg.Build.CacheDir != "" && !filepath.IsAbs(cfg.Build.CacheDir) {
		cfg.Build.CacheDir = filepath.Join(filepath.Dir(path), cfg.Build.CacheDir)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports the first offending key.
func (c *Config) Validate() error {
	if !slices.Contains(Dialects, c.Target.Dialect) {
		return fmt.Errorf("[target].dialect: unknown dialect %q (expected: %s)",
			c.Target.Dialect, strings.Join(Dialects, "|"))
	}
	if _, err := translate.ParseIdentifierPolicy(c.Target.Identifiers); err != nil {
		return fmt.Errorf("[target].identifiers: %w", err)
	}
	if strings.TrimLeft(c.Target.Indent, " \t") != "" {
		return fmt.Errorf("[target].indent: only spaces and tabs are allowed, got %q", c.Target.Indent)
	}
	if c.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs: must not be negative, got %d", c.Build.Jobs)
	}
	for src, dst := range c.Types {
		if strings.TrimSpace(src) == "" || strings.TrimSpace(dst) == "" {
			return fmt.Errorf("[types]: empty type name in %q = %q", src, dst)
		}
	}

	seen := make(map[backend.FunctionKey]int, len(c.Functions))
	for i, f := range c.Functions {
		switch {
		case f.Type == "":
			return fmt.Errorf("[[function]] #%d: missing type", i+1)
		case f.Method == "":
			return fmt.Errorf("[[function]] #%d: missing method", i+1)
		case f.Target == "":
			return fmt.Errorf("[[function]] #%d: missing target", i+1)
		}
		key := backend.FunctionKey{Type: f.Type, Method: f.Method}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("[[function]] #%d: %s already mapped by #%d", i+1, key, prev)
		}
		seen[key] = i + 1
	}
	return nil
}

// Options returns the translation options selected by [target].
func (c *Config) Options() (*translate.Options, error) {
	policy, err := translate.ParseIdentifierPolicy(c.Target.Identifiers)
	if err != nil {
		return nil, err
	}
	return &translate.Options{Identifiers: policy, Indent: c.Target.Indent}, nil
}

// Overrides returns the [types] and [[function]] entries as backend tables.
func (c *Config) Overrides() (map[string]string, map[backend.FunctionKey]string) {
	types := make(map[string]string, len(c.Types))
	for src, dst := range c.Types {
		types[src] = dst
	}
	functions := make(map[backend.FunctionKey]string, len(c.Functions))
	for _, f := range c.Functions {
		functions[backend.FunctionKey{Type: f.Type, Method: f.Method}] = f.Target
	}
	return types, functions
}

// Apply returns base extended with the project overrides. base is not
// modified.
func (c *Config) Apply(base *backend.Table) *backend.Table {
	if len(c.Types) == 0 && len(c.Functions) == 0 {
		return base
	}
	return base.With(c.Overrides())
}
