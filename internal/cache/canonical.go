// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"
	"reflect"

	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
)

var (
	exprPtrType = reflect.TypeFor[*syntax.Expr]()
	spanType    = reflect.TypeFor[syntax.Span]()
)

// Canonical converts a function descriptor or a lowered body into a
// msgpack-encodable tree for Input. Every struct becomes a list headed by
// its type name, so variants with equal fields stay distinct. Spans are
// dropped since they never reach the output. When res is non-nil, the
// symbol bound to each expression is appended to its node.
func Canonical(v any, res symbols.Resolver) any {
	return canonical(reflect.ValueOf(v), res)
}

func canonical(v reflect.Value, res symbols.Resolver) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		node := canonical(v.Elem(), res)
		if v.Type() == exprPtrType && res != nil && v.CanInterface() {
			if sym, ok := res.Resolve(v.Interface().(*syntax.Expr)); ok {
				node = []any{node, uint8(sym.Kind), sym.Name, sym.ContainingType, sym.Namespace}
			}
		}
		return node
	case reflect.Struct:
		out := []any{v.Type().String()}
		for i := range v.NumField() {
			f := v.Field(i)
			if f.Type() == spanType {
				continue
			}
			out = append(out, canonical(f, res))
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = canonical(v.Index(i), res)
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key())] = canonical(iter.Value(), res)
		}
		return out
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		return v.Type().String()
	}
}
