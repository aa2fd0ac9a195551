package display

import (
	"strings"

	"github.com/broady/apiname/symbol"
)

// syntax holds the spellings that differ between projections.
type syntax struct {
	separator string

	genericOpen  string
	genericClose string

	arrayOpen  string
	arrayClose string

	indexerOpen  string
	indexerClose string

	// indexerKeyword replaces the indexer name under UseAlias. Empty means the
	// projection has no keyword and always uses the metadata name.
	indexerKeyword string

	// tupleLabelFirst writes "label<sep>Type" instead of "Type<sep>label".
	tupleLabelFirst bool
	tupleLabelSep   string

	refKeywords [4]string

	keywords       map[symbol.SpecialType]string
	nativeKeywords map[symbol.SpecialType]string

	dynamicKeyword string

	explicitConversion string
	implicitConversion string
}

// base implements the rules both projections share. Projections embed it
// and override the kinds whose rendering differs.
type base struct {
	syn *syntax
}

// VisitNamespace writes the dotted namespace chain and nothing for the
// global namespace.
func (b base) VisitNamespace(w *Writer, ns *symbol.Namespace) {
	if ns.IsGlobal() {
		return
	}
	if ns.Parent != nil && !ns.Parent.IsGlobal() {
		w.Visit(ns.Parent)
		w.WriteString(".")
	}
	w.WriteString(ns.Name)
}

func (b base) VisitNamedType(w *Writer, t *symbol.NamedType) {
	if b.writeAlias(w, t) {
		return
	}

	// Parenthesized tuples are syntax, not a type in the System namespace.
	tupleSyntax := t.IsTuple && !w.Has(Qualified)

	if t.ContainingType != nil {
		w.Visit(t.ContainingType)
		w.WriteString(b.syn.separator)
	} else if w.Has(WithNamespace) && !InGlobalNamespace(t) && !tupleSyntax {
		w.Visit(t.Namespace)
		w.WriteString(b.syn.separator)
	}

	switch {
	case tupleSyntax:
		b.writeTuple(w, t)
		return
	case t.IsTuple:
		w.WriteString(valueTupleName)
	default:
		w.WriteString(t.Name)
	}

	if !w.Has(WithTypeGenericParameter) || t.Arity() == 0 {
		return
	}
	switch {
	case t.IsUnboundGeneric:
		b.writeArity(w, t.Arity())
	case len(t.TypeArguments) > 0:
		b.writeTypeArguments(w, t.TypeArguments)
	default:
		b.writeTypeParameters(w, t.TypeParameters)
	}
}

// writeAlias writes the keyword form of a special type, or T? for an
// instantiated Nullable<T>. It reports whether anything was written.
func (b base) writeAlias(w *Writer, t *symbol.NamedType) bool {
	if !w.Has(UseAlias) {
		return false
	}
	if t.IsNullableValueType() {
		w.Visit(t.TypeArguments[0])
		if !w.Has(WithNullableAnnotations) {
			w.WriteString("?")
		}
		return true
	}
	if t.IsNativeInteger {
		if kw, ok := b.syn.nativeKeywords[t.Special]; ok {
			w.WriteString(kw)
			return true
		}
		return false
	}
	if kw, ok := b.syn.keywords[t.Special]; ok {
		w.WriteString(kw)
		return true
	}
	return false
}

func (b base) writeTuple(w *Writer, t *symbol.NamedType) {
	w.WriteString("(")
	for i, e := range t.TupleElements {
		if i > 0 {
			w.WriteString(", ")
		}
		labeled := !e.IsImplicitlyDeclared && e.Name != ""
		if labeled && b.syn.tupleLabelFirst {
			w.WriteString(e.Name)
			w.WriteString(b.syn.tupleLabelSep)
		}
		w.Visit(e.Type)
		w.NullableSuffix(e.Type, nullableOf(e.Type))
		if labeled && !b.syn.tupleLabelFirst {
			w.WriteString(b.syn.tupleLabelSep)
			w.WriteString(e.Name)
		}
	}
	w.WriteString(")")
}

// writeArity writes the placeholder list of an unbound generic: <,> for arity 2.
func (b base) writeArity(w *Writer, arity int) {
	w.WriteString(b.syn.genericOpen)
	w.WriteString(strings.Repeat(",", arity-1))
	w.WriteString(b.syn.genericClose)
}

func (b base) writeTypeArguments(w *Writer, args []symbol.Type) {
	w.WriteString(b.syn.genericOpen)
	for i, a := range args {
		if i > 0 {
			w.WriteString(", ")
		}
		w.Visit(a)
		w.NullableSuffix(a, nullableOf(a))
	}
	w.WriteString(b.syn.genericClose)
}

func (b base) writeTypeParameters(w *Writer, params []*symbol.TypeParameter) {
	w.WriteString(b.syn.genericOpen)
	for i, p := range params {
		if i > 0 {
			w.WriteString(", ")
		}
		if p == nil {
			continue
		}
		w.Visit(p)
		w.NullableSuffix(p, p.Nullable)
	}
	w.WriteString(b.syn.genericClose)
}

func (b base) VisitTypeParameter(w *Writer, p *symbol.TypeParameter) {
	w.WriteString(p.Name)
}

func (b base) VisitArrayType(w *Writer, a *symbol.ArrayType) {
	w.Visit(a.ElementType)
	w.NullableSuffix(a.ElementType, a.ElementNullable)
	w.WriteString(b.syn.arrayOpen)
	if a.Rank > 1 {
		w.WriteString(strings.Repeat(",", a.Rank-1))
	}
	w.WriteString(b.syn.arrayClose)
}

func (b base) VisitPointerType(w *Writer, p *symbol.PointerType) {
	w.Visit(p.PointedAtType)
	w.WriteString("*")
}

// VisitFunctionPointerType writes delegate* [unmanaged[...]]<params, return>.
// Function pointers only exist in C-family syntax, so keywords use that
// spelling in every projection; the types inside follow the projection.
func (b base) VisitFunctionPointerType(w *Writer, f *symbol.FunctionPointerType) {
	w.WriteString("delegate*")
	sig := f.Signature
	if sig == nil {
		return
	}
	if sig.CallingConvention != symbol.CallDefault {
		w.WriteString(" unmanaged")
		if sig.CallingConvention != symbol.CallUnmanaged || len(sig.UnmanagedCallingConventionTypes) > 0 {
			w.WriteString("[")
			w.WriteString(strings.Join(CallingConventionNames(sig), ", "))
			w.WriteString("]")
		}
	}
	w.WriteString("<")
	for _, p := range sig.Parameters {
		if p == nil {
			continue
		}
		w.WriteString(keyword(signatureRefKeywords[:], p.RefKind))
		w.Visit(p.Type)
		w.NullableSuffix(p.Type, p.Nullable)
		w.WriteString(", ")
	}
	w.WriteString(keyword(returnRefKeywords[:], sig.RefKind))
	w.Visit(sig.ReturnType)
	w.NullableSuffix(sig.ReturnType, nullableOf(sig.ReturnType))
	w.WriteString(">")
}

// writeContainingType writes the containing-type prefix under WithType.
func (b base) writeContainingType(w *Writer, containing *symbol.NamedType) {
	if w.Has(WithType) && containing != nil {
		w.Visit(containing)
		w.WriteString(b.syn.separator)
	}
}

// writeImplementedContainer writes the interface prefix of an explicitly
// implemented member. Under WithType the delegated render writes it itself.
func (b base) writeImplementedContainer(w *Writer, iface *symbol.NamedType) {
	if !w.Has(WithType) && iface != nil {
		w.Visit(iface)
		w.WriteString(b.syn.separator)
	}
}

func (b base) VisitMethod(w *Writer, m *symbol.Method) {
	b.writeContainingType(w, m.ContainingType)

	switch m.MethodKind {
	case symbol.MethodConstructor:
		if m.ContainingType != nil {
			w.WriteString(m.ContainingType.Name)
		} else {
			invariant(false, "constructor %s has no containing type", m.Name)
			w.WriteString(m.Name)
		}
	case symbol.MethodConversion:
		w.WriteString(b.conversionName(m.Name))
	case symbol.MethodUserDefinedOperator:
		w.WriteString(operatorName(m.Name))
	default:
		if impl := firstMethod(m.ExplicitInterfaceImplementations); impl != nil {
			b.writeImplementedContainer(w, impl.ContainingType)
			w.Visit(impl)
			return
		}
		w.WriteString(m.Name)
	}

	if m.IsGeneric() && w.Has(WithMethodGenericParameter) {
		switch {
		case len(m.TypeArguments) > 0:
			b.writeTypeArguments(w, m.TypeArguments)
		case len(m.TypeParameters) > 0:
			b.writeTypeParameters(w, m.TypeParameters)
		case m.OriginalDefinition != nil:
			b.writeTypeParameters(w, m.OriginalDefinition.TypeParameters)
		}
	}

	if w.Has(WithParameter) {
		w.WriteString("(")
		for i, p := range m.Parameters {
			if i > 0 {
				w.WriteString(", ")
			}
			w.Visit(p)
			if m.MethodKind == symbol.MethodConversion && !m.ReturnsVoid {
				w.WriteString(" to ")
				w.Visit(m.ReturnType)
			}
		}
		w.WriteString(")")
	}
}

// conversionName maps op_Explicit and op_Implicit to the projection's words.
func (b base) conversionName(name string) string {
	switch name {
	case symbol.ExplicitOperator:
		return b.syn.explicitConversion
	case symbol.ImplicitOperator:
		return b.syn.implicitConversion
	default:
		invariant(false, "conversion %q is neither %s nor %s", name, symbol.ExplicitOperator, symbol.ImplicitOperator)
		return name
	}
}

// operatorName strips the op_ prefix: op_Addition renders as Addition.
func operatorName(name string) string {
	rest, ok := strings.CutPrefix(name, symbol.OperatorPrefix)
	if !ok {
		invariant(false, "operator %q lacks the %s prefix", name, symbol.OperatorPrefix)
		return name
	}
	return rest
}

func (b base) VisitProperty(w *Writer, p *symbol.Property) {
	b.writeContainingType(w, p.ContainingType)

	if impl := firstProperty(p.ExplicitInterfaceImplementations); impl != nil {
		b.writeImplementedContainer(w, impl.ContainingType)
		w.Visit(impl)
		return
	}

	if !p.IsIndexer() {
		w.WriteString(p.Name)
		return
	}

	if w.Has(UseAlias) && b.syn.indexerKeyword != "" {
		w.WriteString(b.syn.indexerKeyword)
	} else {
		w.WriteString(metadataName(p))
	}
	if w.Has(WithParameter) {
		w.WriteString(b.syn.indexerOpen)
		for i, param := range p.Parameters {
			if i > 0 {
				w.WriteString(", ")
			}
			w.Visit(param)
		}
		w.WriteString(b.syn.indexerClose)
	}
}

func metadataName(p *symbol.Property) string {
	if p.MetadataName != "" {
		return p.MetadataName
	}
	return p.Name
}

func (b base) VisitEvent(w *Writer, e *symbol.Event) {
	b.writeContainingType(w, e.ContainingType)

	if impl := firstEvent(e.ExplicitInterfaceImplementations); impl != nil {
		b.writeImplementedContainer(w, impl.ContainingType)
		w.Visit(impl)
		return
	}
	w.WriteString(e.Name)
}

func (b base) VisitField(w *Writer, f *symbol.Field) {
	b.writeContainingType(w, f.ContainingType)
	w.WriteString(f.Name)
}

func (b base) VisitParameter(w *Writer, p *symbol.Parameter) {
	w.WriteString(keyword(b.syn.refKeywords[:], p.RefKind))
	w.Visit(p.Type)
	w.NullableSuffix(p.Type, p.Nullable)
}

// VisitDynamicType writes the projection's dynamic keyword under UseAlias,
// otherwise the name of its runtime type, System.Object.
func (b base) VisitDynamicType(w *Writer, d *symbol.DynamicType) {
	switch {
	case w.Has(UseAlias):
		w.WriteString(b.syn.dynamicKeyword)
	case w.Has(WithNamespace):
		w.WriteString(symbol.SystemNamespace + "." + symbol.SpecialObject.String())
	default:
		w.WriteString(symbol.SpecialObject.String())
	}
}

// Explicit implementations render through the first implemented member only.

func firstMethod(impls []*symbol.Method) *symbol.Method {
	if len(impls) == 0 {
		return nil
	}
	return impls[0]
}

func firstProperty(impls []*symbol.Property) *symbol.Property {
	if len(impls) == 0 {
		return nil
	}
	return impls[0]
}

func firstEvent(impls []*symbol.Event) *symbol.Event {
	if len(impls) == 0 {
		return nil
	}
	return impls[0]
}
