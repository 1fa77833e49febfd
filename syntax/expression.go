// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package syntax

// Expr is an expression node.
// Resolvers key symbol information by *Expr identity.
type Expr struct {
	Kind ExpressionKind
	Span Span
}

// ExpressionKind represents the different kinds of expressions.
type ExpressionKind interface {
	expressionKind()
}

// ExprAssign assigns Right to Left. Operator is the source token: "=", "+=", ...
type ExprAssign struct {
	Left     *Expr
	Operator string
	Right    *Expr
}

func (ExprAssign) expressionKind() {}

// ExprMemberAccess selects Member from Target. Operator is usually ".".
type ExprMemberAccess struct {
	Target   *Expr
	Operator string
	Member   string
}

func (ExprMemberAccess) expressionKind() {}

// ExprInvocation calls Callee with Args.
type ExprInvocation struct {
	Callee *Expr
	Args   []*Expr
}

func (ExprInvocation) expressionKind() {}

// ExprObjectCreation constructs a value of Type from Args.
type ExprObjectCreation struct {
	Type TypeRef
	Args []*Expr
}

func (ExprObjectCreation) expressionKind() {}

// ExprIdent is a bare identifier.
type ExprIdent struct {
	Name string
}

func (ExprIdent) expressionKind() {}

// ExprLiteral is a literal in its source spelling, e.g. "1.0f" or "true".
type ExprLiteral struct {
	Text string
}

func (ExprLiteral) expressionKind() {}

// ExprBinary is a binary operation.
type ExprBinary struct {
	Left     *Expr
	Operator string
	Right    *Expr
}

func (ExprBinary) expressionKind() {}

// ExprUnary is a prefix or postfix unary operation.
type ExprUnary struct {
	Operator string
	Operand  *Expr
	Postfix  bool
}

func (ExprUnary) expressionKind() {}

// ExprConditional is a ternary select.
type ExprConditional struct {
	Condition *Expr
	Then      *Expr
	Else      *Expr
}

func (ExprConditional) expressionKind() {}

// ExprIndex indexes Target.
type ExprIndex struct {
	Target  *Expr
	Indices []*Expr
}

func (ExprIndex) expressionKind() {}

// ExprCast converts Operand to Type.
type ExprCast struct {
	Type    TypeRef
	Operand *Expr
}

func (ExprCast) expressionKind() {}

// ExprLambda is an anonymous function.
type ExprLambda struct {
	Params []string
	Body   Block
}

func (ExprLambda) expressionKind() {}

// ExprParen is a parenthesized expression.
type ExprParen struct {
	Inner *Expr
}

func (ExprParen) expressionKind() {}

// ExprUnknown stands for a source expression with no dedicated variant.
type ExprUnknown struct {
	Name string
}

func (ExprUnknown) expressionKind() {}
