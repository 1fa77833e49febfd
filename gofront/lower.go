// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gofront

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/gogpu/shadergen/shaderlib"
	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
)

// builtinScope is the containing type recorded for calls to Go built-ins.
// No backend maps it, so such calls fail as unmapped names.
const builtinScope = "builtin"

// lowerer converts one function body. Every call and composite literal it
// emits is bound in symbols.
type lowerer struct {
	fset    *token.FileSet
	info    *types.Info
	symbols *symbols.Table
}

func newLowerer(fset *token.FileSet, info *types.Info) *lowerer {
	return &lowerer{
		fset:    fset,
		info:    info,
		symbols: symbols.NewTable(),
	}
}

// span converts a node position to a syntax span. Offsets that do not fit
// in 32 bits are dropped.
func (l *lowerer) span(n ast.Node) syntax.Span {
	if n == nil || !n.Pos().IsValid() {
		return syntax.Span{}
	}
	start := l.fset.Position(n.Pos())
	end := l.fset.Position(n.End())

	var s syntax.Span
	if v, err := safecast.Conv[uint32](start.Offset); err == nil {
		s.Start = v
	}
	if v, err := safecast.Conv[uint32](end.Offset); err == nil {
		s.End = v
	}
	if v, err := safecast.Conv[uint32](start.Line); err == nil {
		s.Line = v
	}
	if v, err := safecast.Conv[uint32](start.Column); err == nil {
		s.Column = v
	}
	return s
}

// nodeName names an AST node type for diagnostics, e.g. "GoStmt".
func nodeName(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

// =============================================================================
// Statements
// =============================================================================

func (l *lowerer) block(list []ast.Stmt) syntax.Block {
	var out syntax.Block
	for _, s := range list {
		out = append(out, l.stmts(s)...)
	}
	return out
}

// stmts lowers one Go statement. Only grouped var declarations produce more
// than one statement.
func (l *lowerer) stmts(s ast.Stmt) []syntax.Statement {
	if ds, ok := s.(*ast.DeclStmt); ok {
		return l.declStmt(ds)
	}
	return []syntax.Statement{l.stmt(s)}
}

func (l *lowerer) stmt(s ast.Stmt) syntax.Statement {
	span := l.span(s)
	wrap := func(kind syntax.StatementKind) syntax.Statement {
		return syntax.Statement{Kind: kind, Span: span}
	}

	switch s := s.(type) {
	case *ast.AssignStmt:
		return wrap(l.assign(s))
	case *ast.ExprStmt:
		return wrap(syntax.StmtExpr{Expr: l.expr(s.X)})
	case *ast.ReturnStmt:
		switch len(s.Results) {
		case 0:
			return wrap(syntax.StmtReturn{})
		case 1:
			return wrap(syntax.StmtReturn{Value: l.expr(s.Results[0])})
		default:
			return wrap(syntax.StmtUnknown{Name: "MultiValueReturnStatement"})
		}
	case *ast.BlockStmt:
		return wrap(syntax.StmtBlock{Block: l.block(s.List)})
	case *ast.IfStmt:
		if s.Init != nil {
			return wrap(syntax.StmtUnknown{Name: "IfStatementWithInit"})
		}
		kind := syntax.StmtIf{Condition: l.expr(s.Cond), Then: l.block(s.Body.List)}
		switch e := s.Else.(type) {
		case *ast.BlockStmt:
			kind.Else = l.block(e.List)
		case *ast.IfStmt:
			kind.Else = syntax.Block{l.stmt(e)}
		}
		return wrap(kind)
	case *ast.ForStmt:
		if s.Init == nil && s.Post == nil {
			return wrap(syntax.StmtWhile{Condition: l.optExpr(s.Cond), Body: l.block(s.Body.List)})
		}
		kind := syntax.StmtFor{Condition: l.optExpr(s.Cond), Body: l.block(s.Body.List)}
		if s.Init != nil {
			init := l.stmt(s.Init)
			kind.Init = &init
		}
		if s.Post != nil {
			post := l.stmt(s.Post)
			kind.Post = &post
		}
		return wrap(kind)
	case *ast.RangeStmt:
		return wrap(syntax.StmtUnknown{Name: "RangeStatement"})
	case *ast.SwitchStmt:
		if s.Init != nil || s.Tag == nil {
			return wrap(syntax.StmtUnknown{Name: "ExpressionlessSwitchStatement"})
		}
		kind := syntax.StmtSwitch{Selector: l.expr(s.Tag)}
		for _, cc := range s.Body.List {
			clause, ok := cc.(*ast.CaseClause)
			if !ok {
				continue
			}
			sc := syntax.SwitchCase{Body: l.block(clause.Body)}
			for _, v := range clause.List {
				sc.Values = append(sc.Values, l.expr(v))
			}
			kind.Cases = append(kind.Cases, sc)
		}
		return wrap(kind)
	case *ast.BranchStmt:
		if s.Label != nil {
			return wrap(syntax.StmtUnknown{Name: "LabeledBranchStatement"})
		}
		switch s.Tok {
		case token.BREAK:
			return wrap(syntax.StmtBreak{})
		case token.CONTINUE:
			return wrap(syntax.StmtContinue{})
		case token.GOTO:
			return wrap(syntax.StmtUnknown{Name: "GotoStatement"})
		default:
			return wrap(syntax.StmtUnknown{Name: "FallthroughStatement"})
		}
	case *ast.IncDecStmt:
		return wrap(syntax.StmtIncDec{Target: l.expr(s.X), Operator: s.Tok.String()})
	case *ast.DeclStmt:
		// Only reached for nested positions such as a for-loop init.
		stmts := l.declStmt(s)
		if len(stmts) == 1 {
			return stmts[0]
		}
		return wrap(syntax.StmtUnknown{Name: "GroupedDeclaration"})
	case *ast.EmptyStmt:
		return wrap(nil)
	default:
		return wrap(syntax.StmtUnknown{Name: nodeName(s)})
	}
}

// declStmt lowers a var declaration, one statement per ValueSpec. Constant and
// type declarations have no counterpart.
func (l *lowerer) declStmt(ds *ast.DeclStmt) []syntax.Statement {
	gd, ok := ds.Decl.(*ast.GenDecl)
	if !ok || gd.Tok != token.VAR {
		name := "LocalDeclaration"
		if ok {
			switch gd.Tok {
			case token.CONST:
				name = "LocalConstantDeclaration"
			case token.TYPE:
				name = "LocalTypeDeclaration"
			}
		}
		return []syntax.Statement{{Kind: syntax.StmtUnknown{Name: name}, Span: l.span(ds)}}
	}

	var out []syntax.Statement
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok || len(vs.Names) == 0 {
			continue
		}
		decl := syntax.StmtLocalDecl{Type: l.typeOf(vs.Names[0])}
		for i, name := range vs.Names {
			d := syntax.Declarator{Name: name.Name, Span: l.span(name)}
			if i < len(vs.Values) {
				d.Init = l.expr(vs.Values[i])
			}
			decl.Declarators = append(decl.Declarators, d)
		}
		span := l.span(vs)
		if len(gd.Specs) == 1 {
			span = l.span(ds)
		}
		out = append(out, syntax.Statement{Kind: decl, Span: span})
	}
	return out
}

// assign lowers := to a declaration and every other assignment operator to
// an assignment expression.
func (l *lowerer) assign(s *ast.AssignStmt) syntax.StatementKind {
	if s.Tok == token.DEFINE {
		decl := syntax.StmtLocalDecl{Type: l.typeOf(s.Lhs[0])}
		for i, lhs := range s.Lhs {
			d := syntax.Declarator{Span: l.span(lhs)}
			if id, ok := lhs.(*ast.Ident); ok {
				d.Name = id.Name
			}
			if len(s.Lhs) == len(s.Rhs) {
				d.Init = l.expr(s.Rhs[i])
			}
			decl.Declarators = append(decl.Declarators, d)
		}
		return decl
	}

	if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
		return syntax.StmtUnknown{Name: "TupleAssignmentStatement"}
	}
	return syntax.StmtExpr{Expr: &syntax.Expr{
		Kind: syntax.ExprAssign{
			Left:     l.expr(s.Lhs[0]),
			Operator: s.Tok.String(),
			Right:    l.expr(s.Rhs[0]),
		},
		Span: l.span(s),
	}}
}

// typeOf returns the declared type of a defining identifier.
func (l *lowerer) typeOf(e ast.Expr) syntax.TypeRef {
	if id, ok := e.(*ast.Ident); ok {
		if obj := l.info.Defs[id]; obj != nil {
			return typeRef(obj.Type())
		}
		if obj := l.info.Uses[id]; obj != nil {
			return typeRef(obj.Type())
		}
	}
	if t := l.info.TypeOf(e); t != nil {
		return typeRef(t)
	}
	return syntax.TypeRef{Name: "invalid type"}
}

// =============================================================================
// Expressions
// =============================================================================

func (l *lowerer) optExpr(e ast.Expr) *syntax.Expr {
	if e == nil {
		return nil
	}
	return l.expr(e)
}

func (l *lowerer) exprs(list []ast.Expr) []*syntax.Expr {
	out := make([]*syntax.Expr, 0, len(list))
	for _, e := range list {
		out = append(out, l.expr(e))
	}
	return out
}

func (l *lowerer) expr(e ast.Expr) *syntax.Expr {
	out := &syntax.Expr{Span: l.span(e)}

	switch e := e.(type) {
	case *ast.Ident:
		out.Kind = l.ident(e)
	case *ast.BasicLit:
		out.Kind = syntax.ExprLiteral{Text: e.Value}
	case *ast.CallExpr:
		return l.call(e, out)
	case *ast.CompositeLit:
		return l.compositeLit(e, out)
	case *ast.SelectorExpr:
		out.Kind = l.selector(e)
	case *ast.BinaryExpr:
		out.Kind = syntax.ExprBinary{Left: l.expr(e.X), Operator: e.Op.String(), Right: l.expr(e.Y)}
	case *ast.UnaryExpr:
		out.Kind = syntax.ExprUnary{Operator: e.Op.String(), Operand: l.expr(e.X)}
	case *ast.ParenExpr:
		out.Kind = syntax.ExprParen{Inner: l.expr(e.X)}
	case *ast.IndexExpr:
		out.Kind = syntax.ExprIndex{Target: l.expr(e.X), Indices: []*syntax.Expr{l.expr(e.Index)}}
	case *ast.IndexListExpr:
		out.Kind = syntax.ExprIndex{Target: l.expr(e.X), Indices: l.exprs(e.Indices)}
	case *ast.FuncLit:
		out.Kind = l.funcLit(e)
	case *ast.StarExpr:
		out.Kind = syntax.ExprUnknown{Name: "PointerIndirectionExpression"}
	case *ast.TypeAssertExpr:
		out.Kind = syntax.ExprUnknown{Name: "TypeAssertionExpression"}
	case *ast.SliceExpr:
		out.Kind = syntax.ExprUnknown{Name: "SliceExpression"}
	default:
		out.Kind = syntax.ExprUnknown{Name: nodeName(e)}
	}
	return out
}

// ident lowers an identifier. The predeclared constants true, false and nil
// are literals, so no identifier policy ever renames them; declared
// constants fold to their value.
func (l *lowerer) ident(id *ast.Ident) syntax.ExpressionKind {
	switch obj := l.info.Uses[id].(type) {
	case *types.Nil:
		return syntax.ExprLiteral{Text: id.Name}
	case *types.Const:
		if obj.Parent() == types.Universe {
			return syntax.ExprLiteral{Text: id.Name}
		}
		if text, ok := constantText(obj.Val()); ok {
			return syntax.ExprLiteral{Text: text}
		}
	}
	return syntax.ExprIdent{Name: id.Name}
}

// selector lowers x.f. Package-qualified constants fold to their value;
// other package-qualified names have no counterpart.
func (l *lowerer) selector(sel *ast.SelectorExpr) syntax.ExpressionKind {
	if l.isPackageName(sel.X) {
		if tv, ok := l.info.Types[sel]; ok && tv.Value != nil {
			if text, ok := constantText(tv.Value); ok {
				return syntax.ExprLiteral{Text: text}
			}
		}
		return syntax.ExprUnknown{Name: "QualifiedIdentifier"}
	}
	member := sel.Sel.Name
	if recv, ok := l.shaderlibReceiver(sel); ok {
		swizzle, ok := vectorComponents[member]
		if !ok || strings.HasPrefix(recv, "Matrix") {
			return syntax.ExprUnknown{Name: "MatrixElementAccess"}
		}
		member = swizzle
	}
	return syntax.ExprMemberAccess{Target: l.expr(sel.X), Operator: ".", Member: member}
}

// vectorComponents maps shaderlib vector fields to dialect swizzles.
var vectorComponents = map[string]string{"X": "x", "Y": "y", "Z": "z", "W": "w"}

// shaderlibReceiver returns the shaderlib type name when sel reads a field
// of a shaderlib value.
func (l *lowerer) shaderlibReceiver(sel *ast.SelectorExpr) (string, bool) {
	s, ok := l.info.Selections[sel]
	if !ok || s.Kind() != types.FieldVal {
		return "", false
	}
	recv := s.Recv()
	if p, ok := recv.(*types.Pointer); ok {
		recv = p.Elem()
	}
	named, ok := types.Unalias(recv).(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != shaderlib.PackagePath {
		return "", false
	}
	return named.Obj().Name(), true
}

func (l *lowerer) isPackageName(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	if !ok {
		return false
	}
	_, ok = l.info.Uses[id].(*types.PkgName)
	return ok
}

// constantText renders a constant in a spelling every target dialect
// accepts.
func constantText(v constant.Value) (string, bool) {
	switch v.Kind() {
	case constant.Bool:
		return v.String(), true
	case constant.Int:
		return v.ExactString(), true
	case constant.Float:
		f, _ := constant.Float64Val(v)
		text := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(text, ".eE") {
			text += ".0"
		}
		return text, true
	default:
		return "", false
	}
}

// call lowers a call expression. Conversions become casts; calls through a
// plain or package-qualified function name become invocations of an
// identifier bound to the function's package path.
func (l *lowerer) call(call *ast.CallExpr, out *syntax.Expr) *syntax.Expr {
	if tv, ok := l.info.Types[call.Fun]; ok && tv.IsType() {
		var operand *syntax.Expr
		if len(call.Args) == 1 {
			operand = l.expr(call.Args[0])
		}
		out.Kind = syntax.ExprCast{Type: typeRef(tv.Type), Operand: operand}
		return out
	}

	inv := syntax.ExprInvocation{Args: l.exprs(call.Args)}

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		inv.Callee = l.calleeIdent(fun, fun)
	case *ast.SelectorExpr:
		if l.isPackageName(fun.X) {
			inv.Callee = l.calleeIdent(fun.Sel, fun)
		} else {
			inv.Callee = l.expr(fun)
		}
	default:
		inv.Callee = l.expr(fun)
	}

	out.Kind = inv
	return out
}

// calleeIdent builds the identifier callee for name and binds its symbol.
// at is the node whose span the callee covers.
func (l *lowerer) calleeIdent(name *ast.Ident, at ast.Node) *syntax.Expr {
	callee := &syntax.Expr{Kind: syntax.ExprIdent{Name: name.Name}, Span: l.span(at)}
	switch obj := l.info.Uses[name].(type) {
	case *types.Func:
		if obj.Pkg() != nil {
			l.symbols.Bind(callee, symbols.Method(obj.Pkg().Path(), obj.Name()))
		}
	case *types.Builtin:
		l.symbols.Bind(callee, symbols.Method(builtinScope, obj.Name()))
	}
	return callee
}

// compositeLit lowers T{a, b, ...} of a named type to an object creation.
// Keyed and unnamed literals have no counterpart.
func (l *lowerer) compositeLit(lit *ast.CompositeLit, out *syntax.Expr) *syntax.Expr {
	for _, elt := range lit.Elts {
		if _, keyed := elt.(*ast.KeyValueExpr); keyed {
			out.Kind = syntax.ExprUnknown{Name: "KeyedCompositeLiteral"}
			return out
		}
	}

	named, ok := types.Unalias(l.info.TypeOf(lit)).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		out.Kind = syntax.ExprUnknown{Name: "CompositeLiteral"}
		return out
	}

	ref := typeRef(named)
	out.Kind = syntax.ExprObjectCreation{Type: ref, Args: l.exprs(lit.Elts)}
	l.symbols.Bind(out, symbols.Type(ref.Namespace, ref.Name))
	return out
}

func (l *lowerer) funcLit(fl *ast.FuncLit) syntax.ExpressionKind {
	lambda := syntax.ExprLambda{Body: l.block(fl.Body.List)}
	for _, field := range fl.Type.Params.List {
		for _, name := range field.Names {
			lambda.Params = append(lambda.Params, name.Name)
		}
	}
	return lambda
}
