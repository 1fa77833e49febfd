// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package syntax

// Shorthand constructors for hand-built trees. Front ends that track spans
// set Expr.Span / Statement.Span directly.

// Ident returns an identifier expression.
func Ident(name string) *Expr {
	return &Expr{Kind: ExprIdent{Name: name}}
}

// Literal returns a literal expression with the given source spelling.
func Literal(text string) *Expr {
	return &Expr{Kind: ExprLiteral{Text: text}}
}

// Call returns an invocation of callee with args.
func Call(callee *Expr, args ...*Expr) *Expr {
	return &Expr{Kind: ExprInvocation{Callee: callee, Args: args}}
}

// New returns an object creation of typ with args.
func New(typ TypeRef, args ...*Expr) *Expr {
	return &Expr{Kind: ExprObjectCreation{Type: typ, Args: args}}
}

// Member returns target.member.
func Member(target *Expr, member string) *Expr {
	return &Expr{Kind: ExprMemberAccess{Target: target, Operator: ".", Member: member}}
}

// Assign returns left op right.
func Assign(left *Expr, op string, right *Expr) *Expr {
	return &Expr{Kind: ExprAssign{Left: left, Operator: op, Right: right}}
}

// Binary returns left op right.
func Binary(left *Expr, op string, right *Expr) *Expr {
	return &Expr{Kind: ExprBinary{Left: left, Operator: op, Right: right}}
}

// Decl returns a single-variable declaration statement. init may be nil.
func Decl(typ TypeRef, name string, init *Expr) Statement {
	return Statement{Kind: StmtLocalDecl{
		Type:        typ,
		Declarators: []Declarator{{Name: name, Init: init}},
	}}
}

// ExprStatement wraps e in an expression statement.
func ExprStatement(e *Expr) Statement {
	return Statement{Kind: StmtExpr{Expr: e}}
}

// Return returns a return statement. value may be nil.
func Return(value *Expr) Statement {
	return Statement{Kind: StmtReturn{Value: value}}
}

// Type returns an unqualified type reference.
func Type(name string) TypeRef {
	return TypeRef{Name: name}
}
