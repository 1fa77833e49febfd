// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package syntax

import "fmt"

// StatementName returns the diagnostic name of a statement kind.
func StatementName(kind StatementKind) string {
	switch s := kind.(type) {
	case StmtLocalDecl:
		return "LocalDeclarationStatement"
	case StmtExpr:
		return "ExpressionStatement"
	case StmtReturn:
		return "ReturnStatement"
	case StmtBlock:
		return "BlockStatement"
	case StmtIf:
		return "IfStatement"
	case StmtFor:
		return "ForStatement"
	case StmtWhile:
		if s.DoWhile {
			return "DoStatement"
		}
		return "WhileStatement"
	case StmtSwitch:
		return "SwitchStatement"
	case StmtBreak:
		return "BreakStatement"
	case StmtContinue:
		return "ContinueStatement"
	case StmtIncDec:
		return "IncDecStatement"
	case StmtUnknown:
		if s.Name != "" {
			return s.Name
		}
		return "UnknownStatement"
	case nil:
		return "EmptyStatement"
	default:
		return fmt.Sprintf("%T", kind)
	}
}

// ExpressionName returns the diagnostic name of an expression kind.
//
//nolint:cyclop // one arm per variant
func ExpressionName(kind ExpressionKind) string {
	switch e := kind.(type) {
	case ExprAssign:
		return "AssignmentExpression"
	case ExprMemberAccess:
		return "MemberAccessExpression"
	case ExprInvocation:
		return "InvocationExpression"
	case ExprObjectCreation:
		return "ObjectCreationExpression"
	case ExprIdent:
		return "IdentifierName"
	case ExprLiteral:
		return "LiteralExpression"
	case ExprBinary:
		return "BinaryExpression"
	case ExprUnary:
		if e.Postfix {
			return "PostfixUnaryExpression"
		}
		return "PrefixUnaryExpression"
	case ExprConditional:
		return "ConditionalExpression"
	case ExprIndex:
		return "ElementAccessExpression"
	case ExprCast:
		return "CastExpression"
	case ExprLambda:
		return "LambdaExpression"
	case ExprParen:
		return "ParenthesizedExpression"
	case ExprUnknown:
		if e.Name != "" {
			return e.Name
		}
		return "UnknownExpression"
	case nil:
		return "EmptyExpression"
	default:
		return fmt.Sprintf("%T", kind)
	}
}
