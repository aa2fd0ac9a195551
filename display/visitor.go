// Package display renders canonical display names for symbols of a bound
// symbol graph in C-family and Basic-family syntax.
//
// A render call selects a projection and an option set, obtains the cached
// Config for that pair, and walks one root symbol with a fresh Writer:
//
//	name, err := display.Render(method, display.CSharp, display.WithType|display.WithParameter)
//
// Rendering is a pure function of (symbol, projection, options).
package display

import (
	"strings"

	"github.com/broady/apiname/symbol"
)

// Visitor renders each symbol kind for one target syntax. Implementations are
// stateless: all per-call state lives in the Writer, and recursion into
// constituent symbols goes through Writer.Visit so that a projection's
// overrides apply at every depth.
//
// A new projection implements Visitor, usually by embedding NopVisitor and
// overriding the kinds it supports.
type Visitor interface {
	VisitNamespace(w *Writer, ns *symbol.Namespace)
	VisitNamedType(w *Writer, t *symbol.NamedType)
	VisitTypeParameter(w *Writer, p *symbol.TypeParameter)
	VisitArrayType(w *Writer, a *symbol.ArrayType)
	VisitPointerType(w *Writer, p *symbol.PointerType)
	VisitFunctionPointerType(w *Writer, f *symbol.FunctionPointerType)
	VisitMethod(w *Writer, m *symbol.Method)
	VisitProperty(w *Writer, p *symbol.Property)
	VisitEvent(w *Writer, e *symbol.Event)
	VisitField(w *Writer, f *symbol.Field)
	VisitParameter(w *Writer, p *symbol.Parameter)
	VisitDynamicType(w *Writer, d *symbol.DynamicType)
}

// Writer accumulates the output of one render call.
type Writer struct {
	visitor Visitor
	opts    Options
	buf     strings.Builder
}

// NewWriter returns a writer that renders with v under opts.
// Options are not validated; use Lookup or NewConfig for checked construction.
func NewWriter(v Visitor, opts Options) *Writer {
	return &Writer{visitor: v, opts: opts}
}

// Options returns the options of this render call.
func (w *Writer) Options() Options { return w.opts }

// Has reports whether every bit of flag is enabled for this call.
func (w *Writer) Has(flag Options) bool { return w.opts.Has(flag) }

// WriteString appends s to the output.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// String returns the accumulated output.
func (w *Writer) String() string { return w.buf.String() }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return w.buf.Len() }

// Visit dispatches s to the visitor method for its kind. Nil symbols and
// kinds without a visit method write nothing.
func (w *Writer) Visit(s symbol.Symbol) {
	switch s := s.(type) {
	case *symbol.Namespace:
		if s != nil {
			w.visitor.VisitNamespace(w, s)
		}
	case *symbol.NamedType:
		if s != nil {
			w.visitor.VisitNamedType(w, s)
		}
	case *symbol.TypeParameter:
		if s != nil {
			w.visitor.VisitTypeParameter(w, s)
		}
	case *symbol.ArrayType:
		if s != nil {
			w.visitor.VisitArrayType(w, s)
		}
	case *symbol.PointerType:
		if s != nil {
			w.visitor.VisitPointerType(w, s)
		}
	case *symbol.FunctionPointerType:
		if s != nil {
			w.visitor.VisitFunctionPointerType(w, s)
		}
	case *symbol.Method:
		if s != nil {
			w.visitor.VisitMethod(w, s)
		}
	case *symbol.Property:
		if s != nil {
			w.visitor.VisitProperty(w, s)
		}
	case *symbol.Event:
		if s != nil {
			w.visitor.VisitEvent(w, s)
		}
	case *symbol.Field:
		if s != nil {
			w.visitor.VisitField(w, s)
		}
	case *symbol.Parameter:
		if s != nil {
			w.visitor.VisitParameter(w, s)
		}
	case *symbol.DynamicType:
		if s != nil {
			w.visitor.VisitDynamicType(w, s)
		}
	}
}

// NullableSuffix writes ? for an annotated usage of t when nullable
// annotations are enabled. Nullable<T> only takes the suffix when UseAlias
// unwraps it to T, so T? never becomes T?? or Nullable<T>?.
func (w *Writer) NullableSuffix(t symbol.Type, n symbol.Nullability) {
	if n != symbol.NullableAnnotated || !w.Has(WithNullableAnnotations) {
		return
	}
	if nt, ok := t.(*symbol.NamedType); ok && nt != nil && nt.IsNullableValueType() && !w.Has(UseAlias) {
		return
	}
	w.WriteString("?")
}

// NopVisitor writes nothing for every kind.
type NopVisitor struct{}

func (NopVisitor) VisitNamespace(*Writer, *symbol.Namespace)                     {}
func (NopVisitor) VisitNamedType(*Writer, *symbol.NamedType)                     {}
func (NopVisitor) VisitTypeParameter(*Writer, *symbol.TypeParameter)             {}
func (NopVisitor) VisitArrayType(*Writer, *symbol.ArrayType)                     {}
func (NopVisitor) VisitPointerType(*Writer, *symbol.PointerType)                 {}
func (NopVisitor) VisitFunctionPointerType(*Writer, *symbol.FunctionPointerType) {}
func (NopVisitor) VisitMethod(*Writer, *symbol.Method)                           {}
func (NopVisitor) VisitProperty(*Writer, *symbol.Property)                       {}
func (NopVisitor) VisitEvent(*Writer, *symbol.Event)                             {}
func (NopVisitor) VisitField(*Writer, *symbol.Field)                             {}
func (NopVisitor) VisitParameter(*Writer, *symbol.Parameter)                     {}
func (NopVisitor) VisitDynamicType(*Writer, *symbol.DynamicType)                 {}
