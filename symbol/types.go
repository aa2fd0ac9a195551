package symbol

import "strconv"

// ArrayType is a single- or multi-dimensional array.
type ArrayType struct {
	ElementType Type `validate:"-"`

	// ElementNullable is the annotation on the element type (string?[]).
	ElementNullable Nullability `validate:"gte=0,lte=3"`

	// Rank is the number of dimensions. Must be at least 1.
	Rank int `validate:"min=1"`

	Nullable Nullability `validate:"gte=0,lte=3"`
}

// Kind returns KindArrayType.
func (a *ArrayType) Kind() Kind { return KindArrayType }

// Container returns nil; constructed types have no container.
func (a *ArrayType) Container() Symbol { return nil }

// NullableAnnotation returns the annotation of this usage.
func (a *ArrayType) NullableAnnotation() Nullability { return a.Nullable }

func (a *ArrayType) sealed() {}

// Array returns a single-dimensional array of elem.
func Array(elem Type) *ArrayType {
	return &ArrayType{ElementType: elem, ElementNullable: elem.NullableAnnotation(), Rank: 1}
}

// MultiArray returns an array of elem with the given rank.
func MultiArray(elem Type, rank int) *ArrayType {
	return &ArrayType{ElementType: elem, ElementNullable: elem.NullableAnnotation(), Rank: rank}
}

// PointerType is an unmanaged pointer (T*).
type PointerType struct {
	PointedAtType Type `validate:"-"`
}

// Kind returns KindPointerType.
func (p *PointerType) Kind() Kind { return KindPointerType }

// Container returns nil; constructed types have no container.
func (p *PointerType) Container() Symbol { return nil }

// NullableAnnotation returns NullableNone; pointers are never annotated.
func (p *PointerType) NullableAnnotation() Nullability { return NullableNone }

func (p *PointerType) sealed() {}

// Pointer returns a pointer to elem.
func Pointer(elem Type) *PointerType {
	return &PointerType{PointedAtType: elem}
}

// CallingConvention is the calling convention of a function pointer signature.
type CallingConvention int

const (
	CallDefault CallingConvention = iota
	CallUnmanaged
	CallCDecl
	CallStdCall
	CallThisCall
	CallFastCall
	CallVarArgs
)

// String returns the string representation of the calling convention.
func (c CallingConvention) String() string {
	switch c {
	case CallDefault:
		return "Default"
	case CallUnmanaged:
		return "Unmanaged"
	case CallCDecl:
		return "CDecl"
	case CallStdCall:
		return "StdCall"
	case CallThisCall:
		return "ThisCall"
	case CallFastCall:
		return "FastCall"
	case CallVarArgs:
		return "VarArgs"
	default:
		return "Unknown"
	}
}

// Signature is the invoke signature of a function pointer.
type Signature struct {
	CallingConvention CallingConvention `validate:"gte=0,lte=6"`

	// UnmanagedCallingConventionTypes are the modifier types of the
	// unmanaged[A, B] form (CallConvSuppressGCTransition, ...).
	UnmanagedCallingConventionTypes []*NamedType `validate:"-"`

	// RefKind is how the return value is passed. RefIn means ref readonly.
	RefKind RefKind `validate:"gte=0,lte=3"`

	Parameters  []*Parameter `validate:"-"`
	ReturnType  Type         `validate:"-"`
	ReturnsVoid bool
}

// FunctionPointerType is a delegate* type.
type FunctionPointerType struct {
	Signature *Signature  `validate:"-"`
	Nullable  Nullability `validate:"gte=0,lte=3"`
}

// Kind returns KindFunctionPointerType.
func (f *FunctionPointerType) Kind() Kind { return KindFunctionPointerType }

// Container returns nil; constructed types have no container.
func (f *FunctionPointerType) Container() Symbol { return nil }

// NullableAnnotation returns the annotation of this usage.
func (f *FunctionPointerType) NullableAnnotation() Nullability { return f.Nullable }

func (f *FunctionPointerType) sealed() {}

// FunctionPointer returns a function pointer type with the given convention,
// return type and parameters. Parameters are given as types and passed by value.
func FunctionPointer(conv CallingConvention, ret Type, params ...Type) *FunctionPointerType {
	sig := &Signature{CallingConvention: conv, ReturnType: ret}
	if nt, ok := ret.(*NamedType); ok && nt.Special == SpecialVoid {
		sig.ReturnsVoid = true
	}
	for i, p := range params {
		sig.Parameters = append(sig.Parameters, &Parameter{Name: "arg" + strconv.Itoa(i+1), Type: p})
	}
	return &FunctionPointerType{Signature: sig}
}

// DynamicType is the late-bound type (dynamic). Its underlying runtime type is System.Object.
type DynamicType struct {
	Nullable Nullability `validate:"gte=0,lte=3"`
}

// Kind returns KindDynamicType.
func (d *DynamicType) Kind() Kind { return KindDynamicType }

// Container returns nil.
func (d *DynamicType) Container() Symbol { return nil }

// NullableAnnotation returns the annotation of this usage.
func (d *DynamicType) NullableAnnotation() Nullability { return d.Nullable }

func (d *DynamicType) sealed() {}

// Dynamic returns the dynamic type.
func Dynamic() *DynamicType {
	return &DynamicType{}
}
