// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package syntax defines the resolved method-body tree consumed by the
// translator.
//
// The tree is produced by a front end (see package gofront) and is never
// mutated by the translator. Statements and expressions are closed sets of
// tagged variants: StatementKind and ExpressionKind are interfaces with an
// unexported marker method, so only this package can add new variants.
//
// The set deliberately contains variants the translator does not support
// (StmtIf, ExprBinary, ...). A front end lowers every construct it sees into
// some variant, and the translator rejects unsupported ones by name instead
// of silently dropping them.
//
// # Structure
//
//	Block      []Statement
//	Statement  {Kind StatementKind, Span}
//	Expr       {Kind ExpressionKind, Span}
//	TypeRef    {Name, Namespace}
package syntax
