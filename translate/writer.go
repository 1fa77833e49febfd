// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"fmt"
	"strings"

	"github.com/gogpu/shadergen/backend"
	"github.com/gogpu/shadergen/symbols"
	"github.com/gogpu/shadergen/syntax"
)

// Writer renders one function. It is created per translation and discarded
// afterwards; nothing in it outlives the call to Translate.
type Writer struct {
	out      strings.Builder
	fn       *Function
	resolver symbols.Resolver
	backend  backend.Backend
	options  *Options

	// keywords is nil unless the policy needs it and the backend provides it.
	keywords backend.KeywordChecker

	// Under IdentifiersEscape, names maps declared source names to emitted
	// names and taken maps emitted names back to their owner.
	names map[string]string
	taken map[string]string
}

// Translate renders fn with the given body as target source text:
//
//	<return type> <name>(<type> <param>, ...)
//	{
//	<statement>
//	...
//	}
//
// Every line ends in "\n". On failure the returned string is empty and the
// error wraps an *Error describing the offending construct.
func Translate(fn *Function, body syntax.Block, resolver symbols.Resolver, be backend.Backend, options *Options) (string, error) {
	if fn == nil {
		return "", &Error{Kind: ErrInvalidInput, Message: "function descriptor is nil"}
	}
	if fn.Name == "" {
		return "", &Error{Kind: ErrInvalidInput, Message: "function descriptor has no name"}
	}
	if be == nil {
		return "", &Error{Kind: ErrInvalidInput, Construct: fn.Name, Message: "backend is nil"}
	}

	// Apply defaults for nil options
	if options == nil {
		options = DefaultOptions()
	}

	w := newWriter(fn, resolver, be, options)
	if err := w.writeFunction(body); err != nil {
		return "", fmt.Errorf("%s: %w", fn.Name, err)
	}
	return w.String(), nil
}

func newWriter(fn *Function, resolver symbols.Resolver, be backend.Backend, options *Options) *Writer {
	w := &Writer{
		fn:       fn,
		resolver: resolver,
		backend:  be,
		options:  options,
	}
	if options.Identifiers != IdentifiersVerbatim {
		if kc, ok := be.(backend.KeywordChecker); ok {
			w.keywords = kc
		}
	}
	if options.Identifiers == IdentifiersEscape {
		w.names = make(map[string]string)
		w.taken = make(map[string]string)
	}
	return w
}

// String returns the generated source.
func (w *Writer) String() string {
	return w.out.String()
}

// writeFunction writes the signature and the braced body.
func (w *Writer) writeFunction(body syntax.Block) error {
	if err := w.writeSignature(); err != nil {
		return err
	}
	w.out.WriteString("{\n")
	if err := w.writeBlock(body); err != nil {
		return err
	}
	w.out.WriteString("}\n")
	return nil
}

// writeSignature writes "<return type> <name>(<params>)\n".
func (w *Writer) writeSignature() error {
	returnType, err := w.mapType(w.fn.ReturnType, syntax.Span{})
	if err != nil {
		return fmt.Errorf("return type: %w", err)
	}
	name, err := w.identifier(w.fn.Name, syntax.Span{})
	if err != nil {
		return err
	}

	fmt.Fprintf(&w.out, "%s %s(", returnType, name)
	for i, param := range w.fn.Parameters {
		if i > 0 {
			w.out.WriteString(", ")
		}
		paramType, err := w.mapType(param.Type, syntax.Span{})
		if err != nil {
			return fmt.Errorf("parameter %q: %w", param.Name, err)
		}
		paramName, err := w.declare(param.Name, syntax.Span{})
		if err != nil {
			return err
		}
		fmt.Fprintf(&w.out, "%s %s", paramType, paramName)
	}
	w.out.WriteString(")\n")
	return nil
}

// mapType maps a source type through the backend.
func (w *Writer) mapType(t syntax.TypeRef, span syntax.Span) (string, error) {
	return w.mapTypeName(t.Key(), span)
}

func (w *Writer) mapTypeName(name string, span syntax.Span) (string, error) {
	mapped, err := w.backend.MapType(name)
	if err != nil {
		e := newError(ErrUnmappedName, name, span, "type %q is not available in %s", name, w.backend.Name())
		e.Err = err
		return "", e
	}
	return mapped, nil
}

// declare applies the identifier policy to a parameter or local name. An
// escaped name that collides with another declaration gets further
// underscores until it is unique within the function.
func (w *Writer) declare(name string, span syntax.Span) (string, error) {
	emitted, err := w.identifier(name, span)
	if err != nil || w.taken == nil || name == "" {
		return emitted, err
	}
	for {
		owner, ok := w.taken[emitted]
		if !ok || owner == name {
			break
		}
		emitted = "_" + emitted
	}
	w.taken[emitted] = name
	w.names[name] = emitted
	return emitted, nil
}

// identifier applies the identifier policy to a referenced name.
func (w *Writer) identifier(name string, span syntax.Span) (string, error) {
	if emitted, ok := w.names[name]; ok {
		return emitted, nil
	}
	if w.keywords == nil || !w.keywords.IsReserved(name) {
		return name, nil
	}
	switch w.options.Identifiers {
	case IdentifiersReject:
		return "", newError(ErrReservedIdentifier, name, span,
			"identifier %q is a reserved word in %s", name, w.backend.Name())
	case IdentifiersEscape:
		return "_" + name, nil
	default:
		return name, nil
	}
}

// writeIndent writes the configured statement indentation.
func (w *Writer) writeIndent() {
	w.out.WriteString(w.options.Indent)
}
