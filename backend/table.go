// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package backend

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Table is an immutable, map-backed Backend.
// Every constructor copies its inputs, so callers may reuse their maps.
type Table struct {
	name      string
	types     map[string]string
	functions map[FunctionKey]string
	keywords  map[string]struct{}

	// folded holds reserved words matched case-insensitively, lowercased.
	folded map[string]struct{}

	// noConstruct holds source types without a component-wise constructor.
	noConstruct map[string]struct{}
}

// NewTable creates a table backend for the named dialect.
func NewTable(name string, types map[string]string, functions map[FunctionKey]string) *Table {
	t := &Table{
		name:        name,
		types:       make(map[string]string, len(types)),
		functions:   make(map[FunctionKey]string, len(functions)),
		keywords:    make(map[string]struct{}),
		folded:      make(map[string]struct{}),
		noConstruct: make(map[string]struct{}),
	}
	maps.Copy(t.types, types)
	maps.Copy(t.functions, functions)
	return t
}

// Name implements Backend.
func (t *Table) Name() string {
	return t.name
}

// MapType implements Backend.
func (t *Table) MapType(sourceType string) (string, error) {
	if target, ok := t.types[sourceType]; ok {
		return target, nil
	}
	return "", UnmappedTypeError(t.name, sourceType)
}

// MapFunction implements Backend.
func (t *Table) MapFunction(containingType, method string) (string, error) {
	key := FunctionKey{Type: containingType, Method: method}
	if target, ok := t.functions[key]; ok {
		return target, nil
	}
	return "", UnmappedFunctionError(t.name, key)
}

// IsReserved implements KeywordChecker.
func (t *Table) IsReserved(name string) bool {
	if _, ok := t.keywords[name]; ok {
		return true
	}
	_, ok := t.folded[strings.ToLower(name)]
	return ok
}

// CanConstruct implements ConstructorChecker.
func (t *Table) CanConstruct(sourceType string) bool {
	_, blocked := t.noConstruct[sourceType]
	return !blocked
}

// WithoutConstructors returns a copy of t that refuses component-wise
// construction of the given types. Canonical names are expanded through
// TypeAliases.
func (t *Table) WithoutConstructors(typeNames ...string) *Table {
	c := t.clone()
	for _, name := range typeNames {
		aliases, ok := TypeAliases[name]
		if !ok {
			aliases = []string{name}
		}
		for _, a := range aliases {
			c.noConstruct[a] = struct{}{}
		}
	}
	return c
}

// With returns a copy of t with additional or overriding entries.
func (t *Table) With(types map[string]string, functions map[FunctionKey]string) *Table {
	c := t.clone()
	maps.Copy(c.types, types)
	maps.Copy(c.functions, functions)
	return c
}

// WithKeywords returns a copy of t that reports the given words as reserved.
// With foldCase set, the words match regardless of ASCII case.
func (t *Table) WithKeywords(words []string, foldCase bool) *Table {
	c := t.clone()
	for _, w := range words {
		if foldCase {
			c.folded[strings.ToLower(w)] = struct{}{}
		} else {
			c.keywords[w] = struct{}{}
		}
	}
	return c
}

// Types returns the mapped source type names in sorted order.
func (t *Table) Types() []string {
	return slices.Sorted(maps.Keys(t.types))
}

// Functions returns the mapped function keys in sorted order.
func (t *Table) Functions() []FunctionKey {
	keys := slices.Collect(maps.Keys(t.functions))
	slices.SortFunc(keys, func(a, b FunctionKey) int {
		if c := cmp.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})
	return keys
}

// KeywordCount returns the number of reserved words.
func (t *Table) KeywordCount() int {
	return len(t.keywords) + len(t.folded)
}

func (t *Table) clone() *Table {
	return &Table{
		name:        t.name,
		types:       maps.Clone(t.types),
		functions:   maps.Clone(t.functions),
		keywords:    maps.Clone(t.keywords),
		folded:      maps.Clone(t.folded),
		noConstruct: maps.Clone(t.noConstruct),
	}
}
