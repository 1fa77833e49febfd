// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package syntax

// Block is a sequence of statements executed in order.
type Block []Statement

// Statement is a statement node of a method body.
type Statement struct {
	Kind StatementKind
	Span Span
}

// StatementKind represents the different kinds of statements.
type StatementKind interface {
	statementKind()
}

// StmtLocalDecl declares local variables of a single type.
// The translator accepts exactly one declarator.
type StmtLocalDecl struct {
	Type        TypeRef
	Declarators []Declarator
}

func (StmtLocalDecl) statementKind() {}

// Declarator is one variable of a local declaration.
type Declarator struct {
	Name string
	Init *Expr // nil when the variable has no initializer
	Span Span
}

// StmtExpr evaluates an expression for its side effects.
type StmtExpr struct {
	Expr *Expr
}

func (StmtExpr) statementKind() {}

// StmtReturn returns from the function, possibly with a value.
type StmtReturn struct {
	Value *Expr // nil for a bare return
}

func (StmtReturn) statementKind() {}

// StmtBlock is a nested block.
type StmtBlock struct {
	Block Block
}

func (StmtBlock) statementKind() {}

// StmtIf conditionally executes one of two blocks.
type StmtIf struct {
	Condition *Expr
	Then      Block
	Else      Block
}

func (StmtIf) statementKind() {}

// StmtFor is a three-clause loop. Any clause may be nil.
type StmtFor struct {
	Init      *Statement
	Condition *Expr
	Post      *Statement
	Body      Block
}

func (StmtFor) statementKind() {}

// StmtWhile is a condition-only loop. DoWhile marks a post-tested loop.
type StmtWhile struct {
	Condition *Expr
	Body      Block
	DoWhile   bool
}

func (StmtWhile) statementKind() {}

// StmtSwitch selects a case block by value.
type StmtSwitch struct {
	Selector *Expr
	Cases    []SwitchCase
}

func (StmtSwitch) statementKind() {}

// SwitchCase is one arm of a switch. An empty Values list is the default arm.
type SwitchCase struct {
	Values []*Expr
	Body   Block
}

// StmtBreak exits the innermost loop or switch.
type StmtBreak struct{}

func (StmtBreak) statementKind() {}

// StmtContinue skips to the next loop iteration.
type StmtContinue struct{}

func (StmtContinue) statementKind() {}

// StmtIncDec increments or decrements Target. Operator is "++" or "--".
type StmtIncDec struct {
	Target   *Expr
	Operator string
}

func (StmtIncDec) statementKind() {}

// StmtUnknown stands for a source statement with no dedicated variant.
// Name describes the source construct for diagnostics.
type StmtUnknown struct {
	Name string
}

func (StmtUnknown) statementKind() {}
