// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package syntax

import "testing"

func TestStatementName(t *testing.T) {
	tests := []struct {
		kind StatementKind
		want string
	}{
		{StmtLocalDecl{}, "LocalDeclarationStatement"},
		{StmtExpr{}, "ExpressionStatement"},
		{StmtReturn{}, "ReturnStatement"},
		{StmtIf{}, "IfStatement"},
		{StmtWhile{}, "WhileStatement"},
		{StmtWhile{DoWhile: true}, "DoStatement"},
		{StmtUnknown{Name: "GoStatement"}, "GoStatement"},
		{StmtUnknown{}, "UnknownStatement"},
		{nil, "EmptyStatement"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := StatementName(tt.kind); got != tt.want {
				t.Errorf("StatementName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpressionName(t *testing.T) {
	tests := []struct {
		kind ExpressionKind
		want string
	}{
		{ExprAssign{}, "AssignmentExpression"},
		{ExprBinary{}, "BinaryExpression"},
		{ExprUnary{}, "PrefixUnaryExpression"},
		{ExprUnary{Postfix: true}, "PostfixUnaryExpression"},
		{ExprIndex{}, "ElementAccessExpression"},
		{ExprUnknown{Name: "FuncLit"}, "FuncLit"},
		{nil, "EmptyExpression"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ExpressionName(tt.kind); got != tt.want {
				t.Errorf("ExpressionName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeRefKey(t *testing.T) {
	tests := []struct {
		ref  TypeRef
		want string
	}{
		{TypeRef{Name: "float"}, "float"},
		{TypeRef{Name: "Vector4", Namespace: "System.Numerics"}, "System.Numerics.Vector4"},
	}
	for _, tt := range tests {
		if got := tt.ref.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
	}
}

func TestSpanString(t *testing.T) {
	if got := (Span{Start: 4, End: 9, Line: 3, Column: 7}).String(); got != "3:7" {
		t.Errorf("String() = %q, want %q", got, "3:7")
	}
	if got := (Span{Start: 4, End: 9}).String(); got != "[4:9]" {
		t.Errorf("String() = %q, want %q", got, "[4:9]")
	}
	if !(Span{}).IsZero() {
		t.Error("zero span should report IsZero")
	}
}
