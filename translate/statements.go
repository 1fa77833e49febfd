// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/gogpu/shadergen/syntax"
)

// =============================================================================
// Block and Statement Dispatch
// =============================================================================

// writeBlock writes each statement in source order, one per line.
func (w *Writer) writeBlock(block syntax.Block) error {
	for i := range block {
		if err := w.writeStatement(&block[i]); err != nil {
			return err
		}
	}
	return nil
}

// writeStatement dispatches to the appropriate statement writer.
// The statement terminator and line break are written here, once, for
// every statement kind.
func (w *Writer) writeStatement(stmt *syntax.Statement) error {
	w.writeIndent()
	start := w.out.Len()

	var err error
	switch s := stmt.Kind.(type) {
	case syntax.StmtLocalDecl:
		err = w.writeLocalDeclaration(s, stmt)
	case syntax.StmtExpr:
		err = w.writeExpressionStatement(s, stmt)
	case syntax.StmtReturn:
		err = w.writeReturnStatement(s)
	case syntax.StmtBlock, syntax.StmtIf, syntax.StmtFor, syntax.StmtWhile,
		syntax.StmtSwitch, syntax.StmtBreak, syntax.StmtContinue,
		syntax.StmtIncDec, syntax.StmtUnknown:
		return unsupportedStatement(stmt)
	default:
		return unsupportedStatement(stmt)
	}
	if err != nil {
		return err
	}
	if w.out.Len() == start {
		return unsupportedStatement(stmt)
	}

	w.out.WriteString(";\n")
	return nil
}

// =============================================================================
// Supported Statements
// =============================================================================

// writeLocalDeclaration writes "<type> <name>" or "<type> <name> = <init>".
func (w *Writer) writeLocalDeclaration(s syntax.StmtLocalDecl, stmt *syntax.Statement) error {
	if len(s.Declarators) != 1 {
		return newError(ErrShapeViolation, syntax.StatementName(s), stmt.Span,
			"a declaration must declare exactly one variable, found %d", len(s.Declarators))
	}
	decl := &s.Declarators[0]
	span := decl.Span
	if span.IsZero() {
		span = stmt.Span
	}

	typeName, err := w.mapType(s.Type, span)
	if err != nil {
		return err
	}
	name, err := w.declare(decl.Name, span)
	if err != nil {
		return err
	}
	if name == "" {
		return newError(ErrUnsupportedConstruct, syntax.StatementName(s), span, "declaration has no variable name")
	}

	w.out.WriteString(typeName)
	w.out.WriteByte(' ')
	w.out.WriteString(name)

	if decl.Init == nil {
		return nil
	}
	w.out.WriteString(" = ")
	return w.writeExpression(decl.Init)
}

// writeExpressionStatement writes the expression; the caller terminates it.
func (w *Writer) writeExpressionStatement(s syntax.StmtExpr, stmt *syntax.Statement) error {
	if s.Expr == nil {
		return unsupportedStatement(stmt)
	}
	return w.writeExpression(s.Expr)
}

// writeReturnStatement writes "return <value>" or a bare "return".
func (w *Writer) writeReturnStatement(s syntax.StmtReturn) error {
	if s.Value == nil {
		w.out.WriteString("return")
		return nil
	}
	w.out.WriteString("return ")
	return w.writeExpression(s.Value)
}
