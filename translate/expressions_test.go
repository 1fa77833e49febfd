// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
)

// translateReturn translates "float F(float a, float b) { return <expr>; }"
// and returns the rendered return line.
func translateReturn(t *testing.T, expr *syntax.Expr, res symbols.Resolver) (string, error) {
	t.Helper()
	out, err := Translate(floatFunc("F", "a", "b"), syntax.Block{syntax.Return(expr)}, res, testBackend(), nil)
	if err != nil {
		return "", err
	}
	lines := strings.Split(out, "\n")
	// signature, "{", return line, "}", ""
	if len(lines) != 5 {
		t.Fatalf("unexpected output shape: %q", out)
	}
	return lines[2], nil
}

func TestExpressionLeaves(t *testing.T) {
	tests := []struct {
		name string
		expr *syntax.Expr
		want string
	}{
		{"identifier", syntax.Ident("x"), "return x;"},
		{"float_literal", syntax.Literal("1.0f"), "return 1.0f;"},
		{"int_literal", syntax.Literal("42"), "return 42;"},
		{"bool_literal", syntax.Literal("true"), "return true;"},
		{"member_access", syntax.Member(syntax.Ident("v"), "X"), "return v.X;"},
		{"nested_member_access", syntax.Member(syntax.Member(syntax.Ident("p"), "Color"), "W"), "return p.Color.W;"},
		{"assignment", syntax.Assign(syntax.Ident("a"), "=", syntax.Ident("b")), "return a = b;"},
		{"compound_assignment", syntax.Assign(syntax.Ident("a"), "*=", syntax.Literal("2")), "return a *= 2;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translateReturn(t, tt.expr, nil)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvocation(t *testing.T) {
	res := symbols.NewTable()
	maxCallee := syntax.Ident("Max")
	res.Bind(maxCallee, symbols.Method("System.Math", "Max"))
	minCallee := syntax.Ident("Min")
	res.Bind(minCallee, symbols.Method("System.Math", "Min"))

	got, err := translateReturn(t, syntax.Call(maxCallee, syntax.Ident("a"), syntax.Ident("b")), res)
	if err != nil {
		t.Fatal(err)
	}
	if got != "return max(a, b);" {
		t.Errorf("got %q", got)
	}

	nested := syntax.Call(minCallee, syntax.Call(maxCallee, syntax.Ident("a"), syntax.Literal("0.0f")), syntax.Literal("1.0f"))
	got, err = translateReturn(t, nested, res)
	if err != nil {
		t.Fatal(err)
	}
	if got != "return min(max(a, 0.0f), 1.0f);" {
		t.Errorf("got %q", got)
	}
}

func TestInvocationWithoutArguments(t *testing.T) {
	res := symbols.NewTable()
	callee := syntax.Ident("Max")
	res.Bind(callee, symbols.Method("System.Math", "Max"))

	got, err := translateReturn(t, syntax.Call(callee), res)
	if err != nil {
		t.Fatal(err)
	}
	if got != "return max();" {
		t.Errorf("got %q", got)
	}
}

func TestInvocationThroughMemberAccess(t *testing.T) {
	// Math.Max(a, b) spelled as a member access callee is not a bare name.
	callee := syntax.Member(syntax.Ident("Math"), "Max")
	res := symbols.NewTable()
	res.Bind(callee, symbols.Method("System.Math", "Max"))

	_, err := translateReturn(t, syntax.Call(callee, syntax.Ident("a"), syntax.Ident("b")), res)
	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if terr.Kind != ErrUnsupportedConstruct {
		t.Errorf("Kind = %v, want UnsupportedConstruct", terr.Kind)
	}
	if !strings.Contains(terr.Message, "MemberAccessExpression") {
		t.Errorf("message should name the callee kind, got %q", terr.Message)
	}
}

func TestInvocationResolution(t *testing.T) {
	known := syntax.Ident("Max")
	unmapped := syntax.Ident("Atan2")
	wrongKind := syntax.Ident("Vector4")

	res := symbols.NewTable()
	res.Bind(known, symbols.Method("System.Math", "Max"))
	res.Bind(unmapped, symbols.Method("System.Math", "Atan2"))
	res.Bind(wrongKind, symbols.Type("System.Numerics", "Vector4"))

	tests := []struct {
		name     string
		callee   *syntax.Expr
		resolver symbols.Resolver
		kind     ErrorKind
	}{
		{"no_resolver", syntax.Ident("Max"), nil, ErrUnresolvedSymbol},
		{"unbound_node", syntax.Ident("Max"), res, ErrUnresolvedSymbol},
		{"type_symbol", wrongKind, res, ErrUnresolvedSymbol},
		{"unmapped_method", unmapped, res, ErrUnmappedName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := translateReturn(t, syntax.Call(tt.callee, syntax.Ident("a")), tt.resolver)
			var terr *Error
			if !errors.As(err, &terr) {
				t.Fatalf("want *Error, got %v", err)
			}
			if terr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", terr.Kind, tt.kind)
			}
			if tt.kind == ErrUnmappedName && !errors.Is(err, backend.ErrUnmapped) {
				t.Error("unmapped-name error should wrap backend.ErrUnmapped")
			}
		})
	}
}

func TestObjectCreation(t *testing.T) {
	vec := syntax.TypeRef{Name: "Vector4", Namespace: "System.Numerics"}
	creation := syntax.New(vec, syntax.Ident("a"), syntax.Ident("b"), syntax.Literal("0.0f"), syntax.Literal("1.0f"))
	res := symbols.NewTable()
	res.Bind(creation, symbols.Type("System.Numerics", "Vector4"))

	got, err := translateReturn(t, creation, res)
	if err != nil {
		t.Fatal(err)
	}
	if got != "return float4(a, b, 0.0f, 1.0f);" {
		t.Errorf("got %q", got)
	}
}

func TestObjectCreationErrors(t *testing.T) {
	matrix := syntax.New(syntax.TypeRef{Name: "Matrix4x4", Namespace: "System.Numerics"})
	res := symbols.NewTable()
	res.Bind(matrix, symbols.Type("System.Numerics", "Matrix4x4"))

	_, err := translateReturn(t, matrix, res)
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != ErrUnmappedName {
		t.Fatalf("want UnmappedName, got %v", err)
	}
	if terr.Construct != "System.Numerics.Matrix4x4" {
		t.Errorf("Construct = %q", terr.Construct)
	}

	unbound := syntax.New(syntax.TypeRef{Name: "Vector4", Namespace: "System.Numerics"})
	_, err = translateReturn(t, unbound, res)
	if !errors.As(err, &terr) || terr.Kind != ErrUnresolvedSymbol {
		t.Fatalf("want UnresolvedSymbol, got %v", err)
	}
}

func TestObjectCreationWithoutConstructor(t *testing.T) {
	vec := syntax.TypeRef{Name: "Vector4", Namespace: "System.Numerics"}
	creation := syntax.New(vec, syntax.Ident("a"), syntax.Ident("b"))
	res := symbols.NewTable()
	res.Bind(creation, symbols.Type("System.Numerics", "Vector4"))

	be := testBackend().WithoutConstructors("System.Numerics.Vector4")
	out, err := Translate(floatFunc("F", "a", "b"), syntax.Block{syntax.Return(creation)}, res, be, nil)
	if out != "" {
		t.Errorf("partial output %q", out)
	}
	var terr *Error
	if !errors.As(err, &terr) || terr.Kind != ErrUnsupportedConstruct {
		t.Fatalf("want UnsupportedConstruct, got %v", err)
	}
	if terr.Construct != "ObjectCreationExpression" || !strings.Contains(terr.Message, "System.Numerics.Vector4") {
		t.Errorf("error = %+v", terr)
	}

	// The type itself stays usable in signatures and declarations.
	body := syntax.Block{
		syntax.Decl(vec, "v", syntax.Ident("a")),
		syntax.Return(syntax.Ident("b")),
	}
	if _, err := Translate(floatFunc("F", "a", "b"), body, nil, be, nil); err != nil {
		t.Errorf("declaration of the type failed: %v", err)
	}
}

func TestUnsupportedExpressions(t *testing.T) {
	a, b := syntax.Ident("a"), syntax.Ident("b")
	tests := []struct {
		name string
		expr *syntax.Expr
		want string
	}{
		{"binary", syntax.Binary(a, "+", b), "BinaryExpression"},
		{"prefix_unary", &syntax.Expr{Kind: syntax.ExprUnary{Operator: "-", Operand: a}}, "PrefixUnaryExpression"},
		{"postfix_unary", &syntax.Expr{Kind: syntax.ExprUnary{Operator: "++", Operand: a, Postfix: true}}, "PostfixUnaryExpression"},
		{"conditional", &syntax.Expr{Kind: syntax.ExprConditional{Condition: a, Then: a, Else: b}}, "ConditionalExpression"},
		{"index", &syntax.Expr{Kind: syntax.ExprIndex{Target: a, Indices: []*syntax.Expr{b}}}, "ElementAccessExpression"},
		{"cast", &syntax.Expr{Kind: syntax.ExprCast{Type: syntax.Type("int"), Operand: a}}, "CastExpression"},
		{"paren", &syntax.Expr{Kind: syntax.ExprParen{Inner: a}}, "ParenthesizedExpression"},
		{"unknown", &syntax.Expr{Kind: syntax.ExprUnknown{Name: "InterpolatedStringExpression"}}, "InterpolatedStringExpression"},
		{"nested_in_assignment", syntax.Assign(a, "=", syntax.Binary(a, "*", b)), "BinaryExpression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := translateReturn(t, tt.expr, nil)
			var terr *Error
			if !errors.As(err, &terr) {
				t.Fatalf("want *Error, got %v", err)
			}
			if !terr.IsUnsupported() {
				t.Errorf("Kind = %v, want UnsupportedConstruct", terr.Kind)
			}
			if terr.Construct != tt.want {
				t.Errorf("Construct = %q, want %q", terr.Construct, tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should name %s", err, tt.want)
			}
		})
	}
}

func TestEmptyLeavesRejected(t *testing.T) {
	for _, expr := range []*syntax.Expr{syntax.Ident(""), syntax.Literal(""), {}} {
		_, err := translateReturn(t, expr, nil)
		var terr *Error
		if !errors.As(err, &terr) || !terr.IsUnsupported() {
			t.Errorf("%s: want UnsupportedConstruct, got %v", syntax.ExpressionName(expr.Kind), err)
		}
	}
}

func TestIdentifierPolicy(t *testing.T) {
	// "sample" and "line" are reserved in testBackend.
	fn := &Function{
		Name:       "F",
		ReturnType: syntax.Type("float"),
		Parameters: []Parameter{{Name: "sample", Type: syntax.Type("float")}},
	}
	body := syntax.Block{
		syntax.Decl(syntax.Type("float"), "line", syntax.Ident("sample")),
		syntax.Return(syntax.Ident("line")),
	}

	t.Run("verbatim", func(t *testing.T) {
		got := mustTranslate(t, fn, body, nil, nil)
		want := "float F(float sample)\n{\nfloat line = sample;\nreturn line;\n}\n"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("escape", func(t *testing.T) {
		got := mustTranslate(t, fn, body, nil, &Options{Identifiers: IdentifiersEscape})
		want := "float F(float _sample)\n{\nfloat _line = _sample;\nreturn _line;\n}\n"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("escape_keeps_names_unique", func(t *testing.T) {
		// "_float" is already declared when the reserved "float" is escaped.
		fn := floatFunc("F", "_float", "float")
		callee := syntax.Ident("Max")
		res := symbols.NewTable()
		res.Bind(callee, symbols.Method("System.Math", "Max"))
		body := syntax.Block{
			syntax.Decl(syntax.Type("float"), "__float", syntax.Ident("float")),
			syntax.Return(syntax.Call(callee, syntax.Ident("_float"), syntax.Ident("__float"))),
		}

		got := mustTranslate(t, fn, body, res, &Options{Identifiers: IdentifiersEscape})
		want := "float F(float _float, float __float)\n{\nfloat ___float = __float;\nreturn max(_float, ___float);\n}\n"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("reject", func(t *testing.T) {
		err := mustFail(t, fn, body, nil, &Options{Identifiers: IdentifiersReject}, ErrReservedIdentifier)
		if err.Construct != "sample" {
			t.Errorf("Construct = %q, want sample", err.Construct)
		}
	})

	t.Run("member_names_untouched", func(t *testing.T) {
		member := syntax.Block{syntax.Return(syntax.Member(syntax.Ident("v"), "line"))}
		got := mustTranslate(t, floatFunc("F"), member, nil, &Options{Identifiers: IdentifiersReject})
		if !strings.Contains(got, "return v.line;") {
			t.Errorf("got %q", got)
		}
	})
}
