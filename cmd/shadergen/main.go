// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command shadergen translates shader functions written in Go to HLSL, GLSL
// or MSL source.
//
// Usage:
//
//	shadergen translate [flags] [packages]
//	shadergen targets
//	shadergen version
//
// Examples:
//
//	shadergen translate ./shaders                  # HLSL to stdout
//	shadergen translate --target glsl ./shaders    # GLSL
//	shadergen translate -o out.hlsl ./shaders      # write to a file
//
// Settings not given on the command line come from the nearest
// shadergen.toml.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shadergen",
		Short:         "Translate Go shader functions to shading languages",
		Long:          `shadergen translates //shadergen:func functions to HLSL, GLSL and MSL`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupColor(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "path to shadergen.toml (default: search upward from the working directory)")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "only report errors")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every translated function")

	root.AddCommand(newTranslateCmd())
	root.AddCommand(newTargetsCmd())
	root.AddCommand(newVersionCmd())

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())
	})
	return root
}

// setupColor applies the --color flag to fatih/color.
func setupColor(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color %q (expected: auto|on|off)", colorFlag)
	}
	return nil
}

// newLogger builds the driver logger from --quiet and --verbose.
func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		level = slog.LevelError
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
