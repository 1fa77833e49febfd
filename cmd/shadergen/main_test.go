// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/gogpu/shadergen"
)

const lightingPkg = "../../gofront/testdata/lighting"

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--color", "off"}, args...))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shadergen.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "shadergen "+shadergen.Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestTargets(t *testing.T) {
	out, _, err := run(t, "targets")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1+len(shadergen.Dialects()) {
		t.Fatalf("targets output:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "DIALECT") {
		t.Errorf("header = %q", lines[0])
	}
	for i, dialect := range shadergen.Dialects() {
		if fields := strings.Fields(lines[i+1]); len(fields) != 4 || fields[0] != dialect {
			t.Errorf("line %d = %q", i+1, lines[i+1])
		}
	}
}

func TestTargetsColorAligned(t *testing.T) {
	defer func(saved bool) { color.NoColor = saved }(color.NoColor)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"--color", "on", "targets"})
	root.SetOut(&out)
	root.SetErr(&out)
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("no color with --color on:\n%q", out.String())
	}

	plain := regexp.MustCompile("\x1b\\[[0-9;]*m").ReplaceAllString(out.String(), "")
	lines := strings.Split(strings.TrimSpace(plain), "\n")
	col := strings.Index(lines[0], "TYPES")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if strings.Index(line, fields[1]) != col {
			t.Errorf("misaligned row %q, TYPES column at %d", line, col)
		}
	}
}

func TestTranslate(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}
	cfg := writeConfig(t, "[target]\ndialect = \"glsl\"\n")

	out, errOut, err := run(t, "--config", cfg, "translate", lightingPkg)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed", err)
	}

	lambert := "float Lambert(vec3 n, vec3 l)\n{\nfloat d = dot(n, l);\nreturn max(d, 0.25);\n}\n"
	if !strings.HasPrefix(out, lambert+"\nvec4 tint_color(") {
		t.Errorf("stdout =\n%s", out)
	}
	if strings.Contains(out, "Scale") {
		t.Errorf("failed function written to stdout:\n%s", out)
	}

	for _, want := range []string{"Scale", "BinaryExpression", "Split", "2 of 4 functions failed (glsl)"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut)
		}
	}
}

func TestTranslateFlags(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages through the go command")
	}
	cfg := writeConfig(t, "[target]\ndialect = \"glsl\"\n")
	dest := filepath.Join(t.TempDir(), "out.metal")

	out, _, err := run(t, "--config", cfg, "--quiet", "translate",
		"--target", "msl", "--indent", "  ", "-o", dest, lightingPkg)
	if !errors.Is(err, errFailed) {
		t.Fatalf("err = %v, want errFailed", err)
	}
	if out != "" {
		t.Errorf("stdout should be empty with -o, got %q", out)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "float Lambert(metal::float3 n, metal::float3 l)\n{\n  float d = metal::dot(n, l);") {
		t.Errorf("output file =\n%s", data)
	}
}

func TestTranslateErrors(t *testing.T) {
	cfg := writeConfig(t, "")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad_target", []string{"--config", cfg, "translate", "--target", "wgsl"}, "unknown dialect"},
		{"bad_policy", []string{"--config", cfg, "translate", "--identifiers", "mangle"}, "[target].identifiers"},
		{"missing_config", []string{"--config", filepath.Join(t.TempDir(), "none.toml"), "translate"}, "none.toml"},
		{"bad_color", []string{"--color", "sometimes", "version"}, "invalid --color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("command should fail")
			}
			if errors.Is(err, errFailed) || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errFailed)
	if buf.Len() != 0 {
		t.Errorf("errFailed printed %q", buf.String())
	}
	printError(&buf, errors.New("boom"))
	if got := buf.String(); got != "error: boom\n" {
		t.Errorf("printError() = %q", got)
	}
}
