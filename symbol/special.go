package symbol

// SpecialType tags the primitive and well-known types that projections may
// render with a language keyword.
type SpecialType int

const (
	SpecialNone SpecialType = iota
	SpecialObject
	SpecialVoid
	SpecialBoolean
	SpecialChar
	SpecialSByte
	SpecialByte
	SpecialInt16
	SpecialUInt16
	SpecialInt32
	SpecialUInt32
	SpecialInt64
	SpecialUInt64
	SpecialDecimal
	SpecialSingle
	SpecialDouble
	SpecialString
	SpecialIntPtr
	SpecialUIntPtr
	SpecialDateTime
	SpecialNullableT

	specialTypeCount
)

// specialTypeNames holds the metadata name of each special type. All of them
// live in the System namespace.
var specialTypeNames = [specialTypeCount]string{
	SpecialNone:      "",
	SpecialObject:    "Object",
	SpecialVoid:      "Void",
	SpecialBoolean:   "Boolean",
	SpecialChar:      "Char",
	SpecialSByte:     "SByte",
	SpecialByte:      "Byte",
	SpecialInt16:     "Int16",
	SpecialUInt16:    "UInt16",
	SpecialInt32:     "Int32",
	SpecialUInt32:    "UInt32",
	SpecialInt64:     "Int64",
	SpecialUInt64:    "UInt64",
	SpecialDecimal:   "Decimal",
	SpecialSingle:    "Single",
	SpecialDouble:    "Double",
	SpecialString:    "String",
	SpecialIntPtr:    "IntPtr",
	SpecialUIntPtr:   "UIntPtr",
	SpecialDateTime:  "DateTime",
	SpecialNullableT: "Nullable",
}

// String returns the metadata name of the special type ("Int32", "Nullable", ...).
func (s SpecialType) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	if s == SpecialNone {
		return "None"
	}
	return specialTypeNames[s]
}

// Valid reports whether s is a known special type.
func (s SpecialType) Valid() bool {
	return s >= SpecialNone && s < specialTypeCount
}

// SystemNamespace is the namespace that holds every special type.
const SystemNamespace = "System"

// Special returns the named type for a well-known type in the System
// namespace. NullableT yields the open definition Nullable<T>; use
// NullableOf for an instantiation.
func Special(s SpecialType) *NamedType {
	t := &NamedType{
		Name:      s.String(),
		Namespace: NewNamespace(Global(), SystemNamespace),
		Special:   s,
	}
	if s == SpecialNullableT {
		t.TypeParameters = []*TypeParameter{{Name: "T"}}
		t.TypeParameters[0].Owner = t
	}
	return t
}

// NativeInt returns System.IntPtr flagged as a native integer (nint).
func NativeInt() *NamedType {
	t := Special(SpecialIntPtr)
	t.IsNativeInteger = true
	return t
}

// NativeUInt returns System.UIntPtr flagged as a native integer (nuint).
func NativeUInt() *NamedType {
	t := Special(SpecialUIntPtr)
	t.IsNativeInteger = true
	return t
}

// NullableOf returns System.Nullable<T> instantiated with a value type.
func NullableOf(arg Type) *NamedType {
	def := Special(SpecialNullableT)
	return &NamedType{
		Name:           def.Name,
		Namespace:      def.Namespace,
		Special:        SpecialNullableT,
		TypeParameters: def.TypeParameters,
		TypeArguments:  []Type{arg},
	}
}
