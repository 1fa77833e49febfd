// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/shadergen"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			highlight := color.New(color.FgYellow, color.Bold)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "shadergen %s (%s, %s/%s)\n",
				highlight.Sprint(shadergen.Version), runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return err
		},
	}
}
