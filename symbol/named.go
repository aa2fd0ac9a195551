package symbol

import "strconv"

// NamedType is a class, struct, interface, enum, delegate or tuple type.
//
// A generic definition carries TypeParameters and no TypeArguments. An
// instantiation carries both: the formal parameters of its definition and the
// actual arguments. An unbound generic (Foo<,>) carries only TypeParameters
// and sets IsUnboundGeneric.
type NamedType struct {
	// Name is the simple metadata name without arity suffix ("Dictionary").
	Name string `validate:"required"`

	// Namespace is the containing namespace. Ignored when ContainingType is set.
	Namespace *Namespace `validate:"-"`

	// ContainingType is the enclosing type of a nested type.
	ContainingType *NamedType `validate:"-"`

	TypeParameters []*TypeParameter `validate:"-"`
	TypeArguments  []Type           `validate:"-"`

	// IsUnboundGeneric marks a generic reference with no arguments (typeof(Foo<,>)).
	IsUnboundGeneric bool

	// Special tags well-known types.
	Special SpecialType

	// IsNativeInteger marks IntPtr/UIntPtr used as nint/nuint.
	IsNativeInteger bool

	// IsTuple marks a value tuple; TupleElements then lists its elements in order.
	IsTuple       bool
	TupleElements []TupleElement `validate:"-"`

	// Nullable is the annotation of this usage of the type.
	Nullable Nullability `validate:"gte=0,lte=3"`
}

// Kind returns KindNamedType.
func (t *NamedType) Kind() Kind { return KindNamedType }

// Container returns the containing type if any, else the namespace.
func (t *NamedType) Container() Symbol {
	if t.ContainingType != nil {
		return t.ContainingType
	}
	return namespaceOrNil(t.Namespace)
}

// NullableAnnotation returns the annotation of this type usage.
func (t *NamedType) NullableAnnotation() Nullability { return t.Nullable }

func (t *NamedType) sealed() {}

// Arity returns the number of generic arguments or parameters.
func (t *NamedType) Arity() int {
	if len(t.TypeArguments) > 0 {
		return len(t.TypeArguments)
	}
	return len(t.TypeParameters)
}

// IsDefinition reports whether t is a generic definition or a non-generic type,
// that is, carries no type arguments.
func (t *NamedType) IsDefinition() bool {
	return len(t.TypeArguments) == 0
}

// IsNullableValueType reports whether t is an instantiation of System.Nullable<T>.
func (t *NamedType) IsNullableValueType() bool {
	return t.Special == SpecialNullableT && !t.IsDefinition() && !t.IsUnboundGeneric
}

// TupleElement is one positional element of a tuple type.
type TupleElement struct {
	// Name is the element label. For unlabeled elements this is the
	// positional name (Item1, Item2, ...) and IsImplicitlyDeclared is set.
	Name string

	Type Type `validate:"-"`

	// IsImplicitlyDeclared marks elements that have no explicit label.
	IsImplicitlyDeclared bool
}

// TypeParameter is a formal generic parameter of a type or method.
type TypeParameter struct {
	Name string `validate:"required"`

	// Owner is the declaring *NamedType or *Method.
	Owner Symbol `validate:"-"`

	Nullable Nullability `validate:"gte=0,lte=3"`
}

// Kind returns KindTypeParameter.
func (p *TypeParameter) Kind() Kind { return KindTypeParameter }

// Container returns the declaring type or method.
func (p *TypeParameter) Container() Symbol { return p.Owner }

// NullableAnnotation returns the annotation of this usage.
func (p *TypeParameter) NullableAnnotation() Nullability { return p.Nullable }

func (p *TypeParameter) sealed() {}

// Constructors for common shapes.

// NewType returns a non-generic named type in the given dotted namespace.
func NewType(namespace, name string) *NamedType {
	return &NamedType{Name: name, Namespace: NewNamespace(Global(), namespace)}
}

// Nested returns a named type declared inside outer.
func Nested(outer *NamedType, name string) *NamedType {
	return &NamedType{Name: name, ContainingType: outer}
}

// GenericDefinition returns a generic type definition with the given
// type-parameter names.
func GenericDefinition(namespace, name string, params ...string) *NamedType {
	t := NewType(namespace, name)
	t.TypeParameters = make([]*TypeParameter, len(params))
	for i, p := range params {
		t.TypeParameters[i] = &TypeParameter{Name: p, Owner: t}
	}
	return t
}

// Construct returns an instantiation of def with the given arguments.
// The result shares def's containing symbols and formal parameters.
func Construct(def *NamedType, args ...Type) *NamedType {
	c := *def
	c.TypeArguments = args
	c.IsUnboundGeneric = false
	c.Nullable = NullableNone
	return &c
}

// Unbound returns the unbound form of a generic definition (Foo<,>).
func Unbound(def *NamedType) *NamedType {
	c := *def
	c.TypeArguments = nil
	c.IsUnboundGeneric = true
	return &c
}

// Annotated returns a copy of t with its nullable annotation set.
func Annotated(t *NamedType, n Nullability) *NamedType {
	c := *t
	c.Nullable = n
	return &c
}

// NewTypeParameter returns an unowned type parameter, suitable as a type
// argument that refers back to an enclosing declaration.
func NewTypeParameter(name string) *TypeParameter {
	return &TypeParameter{Name: name}
}

// Tuple returns a System.ValueTuple instantiation over the given elements.
func Tuple(elems ...TupleElement) *NamedType {
	args := make([]Type, len(elems))
	for i, e := range elems {
		args[i] = e.Type
	}
	return &NamedType{
		Name:          "ValueTuple",
		Namespace:     NewNamespace(Global(), SystemNamespace),
		TypeArguments: args,
		IsTuple:       true,
		TupleElements: elems,
	}
}

// Elem returns a labeled tuple element.
func Elem(name string, t Type) TupleElement {
	return TupleElement{Name: name, Type: t}
}

// ImplicitElem returns an unlabeled tuple element at the given zero-based position.
func ImplicitElem(pos int, t Type) TupleElement {
	return TupleElement{Name: itemName(pos), Type: t, IsImplicitlyDeclared: true}
}

func itemName(pos int) string {
	return "Item" + strconv.Itoa(pos+1)
}
