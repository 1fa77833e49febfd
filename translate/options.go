// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"fmt"
	"strings"
)

// IdentifierPolicy controls how identifiers that collide with target
// reserved words are handled. It applies to the function name, parameter
// names, declared locals and identifier expressions. Collisions are only
// detected when the backend implements backend.KeywordChecker.
type IdentifierPolicy uint8

const (
	// IdentifiersVerbatim passes every identifier through unchanged.
	IdentifiersVerbatim IdentifierPolicy = iota

	// IdentifiersReject fails translation on a reserved identifier.
	IdentifiersReject

	// IdentifiersEscape prefixes reserved identifiers with an underscore.
	// Parameters and locals whose escaped name is already declared get
	// more underscores until the name is unique.
	IdentifiersEscape
)

// String returns the policy name used in configuration files.
func (p IdentifierPolicy) String() string {
	switch p {
	case IdentifiersVerbatim:
		return "verbatim"
	case IdentifiersReject:
		return "reject"
	case IdentifiersEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// ParseIdentifierPolicy converts a configuration string to a policy.
func ParseIdentifierPolicy(s string) (IdentifierPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "verbatim":
		return IdentifiersVerbatim, nil
	case "reject":
		return IdentifiersReject, nil
	case "escape":
		return IdentifiersEscape, nil
	default:
		return IdentifiersVerbatim, fmt.Errorf("invalid identifier policy: %q (expected: verbatim|reject|escape)", s)
	}
}

// Options configures translation.
type Options struct {
	// Identifiers selects the reserved-word policy.
	Identifiers IdentifierPolicy

	// Indent is written before every body statement. Empty by default.
	Indent string
}

// DefaultOptions returns the default options: identifiers verbatim, no
// indentation.
func DefaultOptions() *Options {
	return &Options{
		Identifiers: IdentifiersVerbatim,
		Indent:      "",
	}
}
