// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/config"
)

// errFailed signals that diagnostics were already printed.
var errFailed = errors.New("translation failed")

func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [flags] [packages]",
		Short: "Translate shader functions of Go packages",
		Long: `Translate loads the Go packages matching the patterns (default ".")
and translates every //shadergen:func function to the target dialect.
Outputs are written in source order, separated by blank lines.`,
		RunE: runTranslate,
	}

	cmd.Flags().StringP("target", "t", "", "target dialect (hlsl|glsl|msl)")
	cmd.Flags().String("identifiers", "", "reserved identifier policy (verbatim|reject|escape)")
	cmd.Flags().String("indent", "", "statement indent, spaces or tabs")
	cmd.Flags().IntP("jobs", "j", 0, "concurrent translations (0 = GOMAXPROCS)")
	cmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	cmd.Flags().Bool("all", false, "translate every plain function, not only marked ones")
	cmd.Flags().Bool("no-cache", false, "bypass the output cache")

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	opts := &shadergen.Options{
		Jobs:    jobs,
		Logger:  newLogger(cmd, cmd.ErrOrStderr()),
		NoCache: noCache,
	}

	if len(args) == 0 {
		args = []string{"."}
	}
	report, err := shadergen.TranslatePackages(cmd.Context(), cfg, opts, args...)
	if err != nil {
		return err
	}

	if err := writeOutputs(cmd, report); err != nil {
		return err
	}
	printReport(cmd.ErrOrStderr(), report)
	if report.Failed() > 0 {
		return errFailed
	}
	return nil
}

// loadConfig reads --config, or the nearest project file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Target.Dialect, _ = flags.GetString("target")
	}
	if flags.Changed("identifiers") {
		cfg.Target.Identifiers, _ = flags.GetString("identifiers")
	}
	if flags.Changed("indent") {
		cfg.Target.Indent, _ = flags.GetString("indent")
	}
	if flags.Changed("all") {
		cfg.Build.AllFunctions, _ = flags.GetBool("all")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func writeOutputs(cmd *cobra.Command, report *shadergen.Report) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	first := true
	for _, r := range report.Results {
		if r.Err != nil {
			continue
		}
		if !first {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		first = false
		if _, err := bw.WriteString(r.Output); err != nil {
			return err
		}
	}
	return bw.Flush()
}
