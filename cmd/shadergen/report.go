// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/gogpu/shadergen"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	posStyle   = color.New(color.Bold)
	noteStyle  = color.New(color.FgYellow)
)

// printReport writes every front-end diagnostic and translation failure of
// report to w, followed by a summary when something failed.
func printReport(w io.Writer, report *shadergen.Report) {
	for _, d := range report.Diagnostics {
		printDiagnostic(w, d.Pos.String(), d.Function, d.Message)
	}
	for i, r := range report.Results {
		if r.Err == nil {
			continue
		}
		pos := ""
		if i < len(report.Funcs) {
			pos = report.Funcs[i].Pos.String()
		}
		printDiagnostic(w, pos, r.Name, r.Err.Error())
	}

	if failed := report.Failed(); failed > 0 {
		total := len(report.Results) + len(report.Diagnostics)
		noteStyle.Fprintf(w, "%d of %d functions failed (%s)\n", failed, total, report.Dialect)
	}
}

func printDiagnostic(w io.Writer, pos, function, msg string) {
	if pos != "" {
		posStyle.Fprintf(w, "%s: ", pos)
	}
	errorLabel.Fprint(w, "error")
	fmt.Fprintf(w, ": %s: %s\n", function, msg)
}

// printError reports a command failure. errFailed carries no message of
// its own since printReport already described it.
func printError(w io.Writer, err error) {
	if errors.Is(err, errFailed) {
		return
	}
	errorLabel.Fprint(w, "error")
	fmt.Fprintf(w, ": %v\n", err)
}
