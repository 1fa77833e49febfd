// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/shadergen"
)

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List target dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dialects := shadergen.Dialects()

			// Align plain text first; escape sequences would count as width.
			var buf bytes.Buffer
			tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DIALECT\tTYPES\tFUNCTIONS\tKEYWORDS")
			for _, dialect := range dialects {
				be, err := shadergen.Backend(dialect)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n",
					be.Name(), len(be.Types()), len(be.Functions()), be.KeywordCount())
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			name := color.New(color.Bold)
			lines := strings.SplitAfter(buf.String(), "\n")
			out := cmd.OutOrStdout()
			for i, line := range lines {
				if i >= 1 && i <= len(dialects) {
					d := dialects[i-1]
					line = name.Sprint(d) + strings.TrimPrefix(line, d)
				}
				if _, err := fmt.Fprint(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
