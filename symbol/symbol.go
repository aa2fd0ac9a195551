// Package symbol defines the bound symbol graph that the display package renders.
// The graph is produced by a semantic-analysis front end (see the provider
// package for Go-based ones) and is treated as immutable once built: renderers
// only read it.
package symbol

// Kind identifies the category of a symbol.
type Kind int

const (
	KindNamespace Kind = iota
	KindNamedType
	KindTypeParameter
	KindArrayType
	KindPointerType
	KindFunctionPointerType
	KindMethod
	KindProperty
	KindEvent
	KindField
	KindParameter
	KindDynamicType
)

// String returns the string representation of the symbol kind.
func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "Namespace"
	case KindNamedType:
		return "NamedType"
	case KindTypeParameter:
		return "TypeParameter"
	case KindArrayType:
		return "ArrayType"
	case KindPointerType:
		return "PointerType"
	case KindFunctionPointerType:
		return "FunctionPointerType"
	case KindMethod:
		return "Method"
	case KindProperty:
		return "Property"
	case KindEvent:
		return "Event"
	case KindField:
		return "Field"
	case KindParameter:
		return "Parameter"
	case KindDynamicType:
		return "DynamicType"
	default:
		return "Unknown"
	}
}

// Symbol is the base interface for every node of the graph.
type Symbol interface {
	// Kind returns the symbol kind for type switching.
	Kind() Kind

	// Container returns the containing symbol, or nil at the root.
	Container() Symbol

	// Ensure only types in this package can implement Symbol.
	sealed()
}

// Type is a symbol that can appear in a type position: a parameter type,
// an array element, a generic argument or a tuple element.
type Type interface {
	Symbol

	// NullableAnnotation reports how this particular usage of the type is annotated.
	NullableAnnotation() Nullability
}

// Nullability is the nullable-reference annotation carried by a type usage.
type Nullability int

const (
	NullableNone Nullability = iota
	NullableNotAnnotated
	NullableAnnotated
	NullableOblivious
)

// String returns the string representation of the annotation.
func (n Nullability) String() string {
	switch n {
	case NullableNone:
		return "None"
	case NullableNotAnnotated:
		return "NotAnnotated"
	case NullableAnnotated:
		return "Annotated"
	case NullableOblivious:
		return "Oblivious"
	default:
		return "Unknown"
	}
}

// RefKind describes how a parameter or return value is passed.
type RefKind int

const (
	RefNone RefKind = iota
	RefRef
	RefOut
	RefIn
)

// String returns the string representation of the ref kind.
func (r RefKind) String() string {
	switch r {
	case RefNone:
		return "None"
	case RefRef:
		return "Ref"
	case RefOut:
		return "Out"
	case RefIn:
		return "In"
	default:
		return "Unknown"
	}
}

// MethodKind distinguishes methods whose display name is derived rather than declared.
type MethodKind int

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodConversion
	MethodUserDefinedOperator
)

// String returns the string representation of the method kind.
func (k MethodKind) String() string {
	switch k {
	case MethodOrdinary:
		return "Ordinary"
	case MethodConstructor:
		return "Constructor"
	case MethodConversion:
		return "Conversion"
	case MethodUserDefinedOperator:
		return "UserDefinedOperator"
	default:
		return "Unknown"
	}
}

// Operator and conversion method names as they appear in metadata.
const (
	OperatorPrefix   = "op_"
	ExplicitOperator = "op_Explicit"
	ImplicitOperator = "op_Implicit"
)

// namespaceOrNil and namedTypeOrNil convert possibly-nil pointers into a Symbol
// without producing a non-nil interface holding a nil pointer.
func namespaceOrNil(ns *Namespace) Symbol {
	if ns == nil {
		return nil
	}
	return ns
}

func namedTypeOrNil(t *NamedType) Symbol {
	if t == nil {
		return nil
	}
	return t
}
