// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package translate converts a resolved method body into shading-language
// source text.
//
// Translation is a single recursive walk:
//
//	Translate → writeFunction → writeBlock → writeStatement → writeExpression
//
// Type and function names are looked up through a backend.Backend; the
// targets of invocations and object constructions are looked up through a
// symbols.Resolver. Neither is mutated, so one backend and resolver can serve
// many concurrent translations.
//
// # Supported subset
//
// Statements: single-variable local declarations, expression statements and
// returns. Expressions: assignment, member access, invocation through an
// identifier, object construction, identifiers and literals. Everything else
// fails with an *Error naming the construct; nothing is skipped and no
// partial output is returned.
//
// # Example
//
//	fn := &translate.Function{
//		Name:       "Foo",
//		ReturnType: syntax.Type("float"),
//		Parameters: []translate.Parameter{{Name: "a", Type: syntax.Type("float")}},
//	}
//	body := syntax.Block{
//		syntax.Decl(syntax.Type("float"), "b", syntax.Ident("a")),
//		syntax.Return(syntax.Ident("b")),
//	}
//	src, err := translate.Translate(fn, body, symbols.NewTable(), hlsl.New(), nil)
//	// src == "float Foo(float a)\n{\nfloat b = a;\nreturn b;\n}\n"
package translate
