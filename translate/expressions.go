// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
)

// =============================================================================
// Expression Dispatch
// =============================================================================

// writeExpression writes an expression.
func (w *Writer) writeExpression(expr *syntax.Expr) error {
	if expr == nil {
		return newError(ErrUnsupportedConstruct, syntax.ExpressionName(nil), syntax.Span{}, "missing expression")
	}

	switch e := expr.Kind.(type) {
	case syntax.ExprAssign:
		return w.writeAssignment(e)
	case syntax.ExprMemberAccess:
		return w.writeMemberAccess(e)
	case syntax.ExprInvocation:
		return w.writeInvocation(e, expr)
	case syntax.ExprObjectCreation:
		return w.writeObjectCreation(e, expr)
	case syntax.ExprIdent:
		return w.writeIdentifier(e, expr)
	case syntax.ExprLiteral:
		return w.writeLiteral(e, expr)
	case syntax.ExprBinary, syntax.ExprUnary, syntax.ExprConditional,
		syntax.ExprIndex, syntax.ExprCast, syntax.ExprLambda,
		syntax.ExprParen, syntax.ExprUnknown:
		return unsupportedExpression(expr)
	default:
		return unsupportedExpression(expr)
	}
}

// =============================================================================
// Assignment and Member Access
// =============================================================================

// writeAssignment writes "<left> <op> <right>". The operator token passes
// through unchanged.
func (w *Writer) writeAssignment(e syntax.ExprAssign) error {
	if err := w.writeExpression(e.Left); err != nil {
		return err
	}
	op := e.Operator
	if op == "" {
		op = "="
	}
	w.out.WriteByte(' ')
	w.out.WriteString(op)
	w.out.WriteByte(' ')
	return w.writeExpression(e.Right)
}

// writeMemberAccess writes "<target><op><member>" without renaming.
func (w *Writer) writeMemberAccess(e syntax.ExprMemberAccess) error {
	if err := w.writeExpression(e.Target); err != nil {
		return err
	}
	op := e.Operator
	if op == "" {
		op = "."
	}
	w.out.WriteString(op)
	w.out.WriteString(e.Member)
	return nil
}

// =============================================================================
// Calls and Construction
// =============================================================================

// writeInvocation writes "<mapped name>(<args>)". Only calls whose callee is
// a bare identifier are supported.
func (w *Writer) writeInvocation(e syntax.ExprInvocation, expr *syntax.Expr) error {
	callee := e.Callee
	if callee == nil {
		return newError(ErrUnsupportedConstruct, syntax.ExpressionName(e), expr.Span, "invocation has no callee")
	}
	ident, ok := callee.Kind.(syntax.ExprIdent)
	if !ok {
		name := syntax.ExpressionName(callee.Kind)
		return newError(ErrUnsupportedConstruct, name, spanOr(callee.Span, expr.Span),
			"function calls must be made through an identifier, not a %s", name)
	}

	sym, err := w.resolve(callee, ident.Name, symbols.KindMethod)
	if err != nil {
		return err
	}

	fnName, err := w.backend.MapFunction(sym.ContainingType, sym.Name)
	if err != nil {
		unmapped := newError(ErrUnmappedName, sym.ContainingType+"."+sym.Name, spanOr(callee.Span, expr.Span),
			"function %s.%s is not available in %s", sym.ContainingType, sym.Name, w.backend.Name())
		unmapped.Err = err
		return unmapped
	}

	w.out.WriteString(fnName)
	w.out.WriteByte('(')
	if err := w.writeArguments(e.Args); err != nil {
		return err
	}
	w.out.WriteByte(')')
	return nil
}

// writeObjectCreation writes "<mapped type>(<args>)": constructions become
// value-constructor calls.
func (w *Writer) writeObjectCreation(e syntax.ExprObjectCreation, expr *syntax.Expr) error {
	sym, err := w.resolve(expr, e.Type.Key(), symbols.KindType)
	if err != nil {
		return err
	}

	typeName, err := w.mapTypeName(sym.QualifiedName(), expr.Span)
	if err != nil {
		return err
	}
	if cc, ok := w.backend.(backend.ConstructorChecker); ok && !cc.CanConstruct(sym.QualifiedName()) {
		return newError(ErrUnsupportedConstruct, syntax.ExpressionName(e), expr.Span,
			"%s cannot be constructed from its components in %s", sym.QualifiedName(), w.backend.Name())
	}

	w.out.WriteString(typeName)
	w.out.WriteByte('(')
	if err := w.writeArguments(e.Args); err != nil {
		return err
	}
	w.out.WriteByte(')')
	return nil
}

// writeArguments writes the arguments joined by ", ". An argument that
// renders to nothing is rejected.
func (w *Writer) writeArguments(args []*syntax.Expr) error {
	for i, arg := range args {
		if i > 0 {
			w.out.WriteString(", ")
		}
		start := w.out.Len()
		if err := w.writeExpression(arg); err != nil {
			return err
		}
		if w.out.Len() == start {
			name := syntax.ExpressionName(arg.Kind)
			return newError(ErrUnsupportedConstruct, name, arg.Span, "%s arguments are not supported", name)
		}
	}
	return nil
}

// resolve looks up the symbol for node and checks its kind.
func (w *Writer) resolve(node *syntax.Expr, display string, want symbols.Kind) (symbols.Symbol, error) {
	if w.resolver == nil {
		return symbols.Symbol{}, newError(ErrUnresolvedSymbol, display, node.Span,
			"cannot resolve %q: no symbol information", display)
	}
	sym, ok := w.resolver.Resolve(node)
	if !ok {
		return symbols.Symbol{}, newError(ErrUnresolvedSymbol, display, node.Span,
			"cannot resolve %q", display)
	}
	if sym.Kind != want {
		return symbols.Symbol{}, newError(ErrUnresolvedSymbol, display, node.Span,
			"%q resolves to a %s, expected a %s", display, sym.Kind, want)
	}
	return sym, nil
}

// =============================================================================
// Leaves
// =============================================================================

// writeIdentifier writes the identifier, subject to the identifier policy.
func (w *Writer) writeIdentifier(e syntax.ExprIdent, expr *syntax.Expr) error {
	if e.Name == "" {
		return newError(ErrUnsupportedConstruct, syntax.ExpressionName(e), expr.Span, "empty identifier")
	}
	name, err := w.identifier(e.Name, expr.Span)
	if err != nil {
		return err
	}
	w.out.WriteString(name)
	return nil
}

// writeLiteral writes the literal in its source spelling.
func (w *Writer) writeLiteral(e syntax.ExprLiteral, expr *syntax.Expr) error {
	if e.Text == "" {
		return newError(ErrUnsupportedConstruct, syntax.ExpressionName(e), expr.Span, "empty literal")
	}
	w.out.WriteString(e.Text)
	return nil
}

func spanOr(span, fallback syntax.Span) syntax.Span {
	if span.IsZero() {
		return fallback
	}
	return span
}
