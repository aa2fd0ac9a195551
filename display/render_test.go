package display

import (
	"testing"

	"github.com/broady/apiname/symbol"
)

func render(t *testing.T, s symbol.Symbol, p Projection, opts Options) string {
	t.Helper()
	out, err := Render(s, p, opts)
	if err != nil {
		t.Fatalf("Render(%v, %v) error = %v", p, opts, err)
	}
	return out
}

type renderCase struct {
	name   string
	sym    symbol.Symbol
	opts   Options
	csharp string
	vb     string
}

func runRenderCases(t *testing.T, tests []renderCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.sym, CSharp, tt.opts); got != tt.csharp {
				t.Errorf("csharp: got %q, want %q", got, tt.csharp)
			}
			if got := render(t, tt.sym, VisualBasic, tt.opts); got != tt.vb {
				t.Errorf("vb: got %q, want %q", got, tt.vb)
			}
		})
	}
}

func TestRender_NamedTypes(t *testing.T) {
	f := newFixtures()
	outer := symbol.NewType("Demo", "Outer")

	runRenderCases(t, []renderCase{
		{
			name:   "generic instantiation qualified",
			sym:    f.dictStringT,
			opts:   Qualified | WithTypeGenericParameter,
			csharp: "System.Collections.Generic.Dictionary<System.String, T>",
			vb:     "System.Collections.Generic.Dictionary(Of System.String, T)",
		},
		{
			name:   "generic instantiation aliased",
			sym:    f.dictStringT,
			opts:   UseAlias | WithTypeGenericParameter,
			csharp: "Dictionary<string, T>",
			vb:     "Dictionary(Of String, T)",
		},
		{
			name:   "generic without generic parameters",
			sym:    f.dictStringT,
			opts:   UseAlias,
			csharp: "Dictionary",
			vb:     "Dictionary",
		},
		{
			name:   "generic definition",
			sym:    f.dict,
			opts:   WithTypeGenericParameter,
			csharp: "Dictionary<TKey, TValue>",
			vb:     "Dictionary(Of TKey, TValue)",
		},
		{
			name:   "unbound generic",
			sym:    symbol.Unbound(f.dict),
			opts:   WithTypeGenericParameter,
			csharp: "Dictionary<,>",
			vb:     "Dictionary(Of ,)",
		},
		{
			name:   "alias wins over namespace",
			sym:    f.int32Type,
			opts:   UseAlias | WithNamespace,
			csharp: "int",
			vb:     "Integer",
		},
		{
			name:   "special type unaliased",
			sym:    f.int32Type,
			opts:   WithNamespace,
			csharp: "System.Int32",
			vb:     "System.Int32",
		},
		{
			name:   "void has no Basic keyword",
			sym:    f.voidType,
			opts:   UseAlias,
			csharp: "void",
			vb:     "Void",
		},
		{
			name:   "date time keyword",
			sym:    symbol.Special(symbol.SpecialDateTime),
			opts:   UseAlias,
			csharp: "DateTime",
			vb:     "Date",
		},
		{
			name:   "native integer",
			sym:    symbol.NativeInt(),
			opts:   UseAlias | WithNamespace,
			csharp: "nint",
			vb:     "System.IntPtr",
		},
		{
			name:   "plain IntPtr keeps its name",
			sym:    symbol.Special(symbol.SpecialIntPtr),
			opts:   UseAlias,
			csharp: "IntPtr",
			vb:     "IntPtr",
		},
		{
			name:   "nested type always has its container",
			sym:    symbol.Nested(outer, "Inner"),
			opts:   None,
			csharp: "Outer.Inner",
			vb:     "Outer.Inner",
		},
		{
			name:   "nested type with namespace",
			sym:    symbol.Nested(outer, "Inner"),
			opts:   WithNamespace,
			csharp: "Demo.Outer.Inner",
			vb:     "Demo.Outer.Inner",
		},
		{
			name:   "nested in generic",
			sym:    symbol.Nested(f.dictStringT, "Enumerator"),
			opts:   UseAlias | WithTypeGenericParameter,
			csharp: "Dictionary<string, T>.Enumerator",
			vb:     "Dictionary(Of String, T).Enumerator",
		},
		{
			name:   "type in global namespace",
			sym:    &symbol.NamedType{Name: "Program", Namespace: symbol.Global()},
			opts:   WithNamespace,
			csharp: "Program",
			vb:     "Program",
		},
	})
}

func TestRender_Namespaces(t *testing.T) {
	runRenderCases(t, []renderCase{
		{
			name:   "global namespace",
			sym:    symbol.Global(),
			opts:   All,
			csharp: GlobalNamespaceToken,
			vb:     "",
		},
		{
			name:   "nested namespace",
			sym:    symbol.NewNamespace(symbol.Global(), "System.Collections"),
			opts:   None,
			csharp: "System.Collections",
			vb:     "System.Collections",
		},
	})
}

func TestRender_Nullable(t *testing.T) {
	f := newFixtures()
	nullableInt := symbol.NullableOf(f.int32Type)
	annotatedNullableInt := symbol.Annotated(nullableInt, symbol.NullableAnnotated)
	annotatedString := symbol.Annotated(f.stringType, symbol.NullableAnnotated)

	runRenderCases(t, []renderCase{
		{
			name:   "nullable value type sugar",
			sym:    nullableInt,
			opts:   UseAlias,
			csharp: "int?",
			vb:     "Integer?",
		},
		{
			name:   "nullable value type without alias",
			sym:    nullableInt,
			opts:   WithNamespace | WithTypeGenericParameter,
			csharp: "System.Nullable<System.Int32>",
			vb:     "System.Nullable(Of System.Int32)",
		},
		{
			name:   "annotation path owns the suffix",
			sym:    symbol.NewMethod(f.foo, "Run", nil, symbol.Param("n", annotatedNullableInt)),
			opts:   UseAlias | WithParameter | WithNullableAnnotations,
			csharp: "Run(int?)",
			vb:     "Run(Integer?)",
		},
		{
			name:   "annotation without alias keeps the wrapper",
			sym:    symbol.NewMethod(f.foo, "Run", nil, symbol.Param("n", annotatedNullableInt)),
			opts:   WithParameter | WithTypeGenericParameter | WithNullableAnnotations,
			csharp: "Run(Nullable<Int32>)",
			vb:     "Run(Nullable(Of Int32))",
		},
		{
			name:   "annotated reference type",
			sym:    symbol.NewMethod(f.foo, "Run", nil, symbol.Param("s", annotatedString)),
			opts:   UseAlias | WithParameter | WithNullableAnnotations,
			csharp: "Run(string?)",
			vb:     "Run(String?)",
		},
		{
			name:   "annotations disabled",
			sym:    symbol.NewMethod(f.foo, "Run", nil, symbol.Param("s", annotatedString)),
			opts:   UseAlias | WithParameter,
			csharp: "Run(string)",
			vb:     "Run(String)",
		},
		{
			name:   "annotated type argument",
			sym:    symbol.Construct(f.list, annotatedString),
			opts:   UseAlias | WithTypeGenericParameter | WithNullableAnnotations,
			csharp: "List<string?>",
			vb:     "List(Of String?)",
		},
		{
			name:   "annotated array element",
			sym:    symbol.Array(annotatedString),
			opts:   UseAlias | WithNullableAnnotations,
			csharp: "string?[]",
			vb:     "String?()",
		},
	})
}

func TestRender_ConstructedTypes(t *testing.T) {
	f := newFixtures()

	runRenderCases(t, []renderCase{
		{
			name:   "single dimensional array",
			sym:    symbol.Array(f.int32Type),
			opts:   UseAlias,
			csharp: "int[]",
			vb:     "Integer()",
		},
		{
			name:   "multi dimensional array",
			sym:    symbol.MultiArray(f.int32Type, 3),
			opts:   UseAlias,
			csharp: "int[,,]",
			vb:     "Integer(,,)",
		},
		{
			name:   "pointer",
			sym:    symbol.Pointer(f.int32Type),
			opts:   UseAlias,
			csharp: "int*",
			vb:     "Integer*",
		},
		{
			name:   "dynamic aliased",
			sym:    symbol.Dynamic(),
			opts:   UseAlias,
			csharp: "dynamic",
			vb:     "Object",
		},
		{
			name:   "dynamic qualified",
			sym:    symbol.Dynamic(),
			opts:   WithNamespace,
			csharp: "System.Object",
			vb:     "System.Object",
		},
		{
			name:   "tuple syntax",
			sym:    f.tuple,
			opts:   UseAlias,
			csharp: "(int a, string)",
			vb:     "(a As Integer, String)",
		},
		{
			name:   "qualified tuple",
			sym:    f.tuple,
			opts:   Qualified | WithTypeGenericParameter,
			csharp: "System.ValueTuple<System.Int32, System.String>",
			vb:     "System.ValueTuple(Of System.Int32, System.String)",
		},
		{
			name:   "tuple ignores namespace",
			sym:    f.tuple,
			opts:   UseAlias | WithNamespace,
			csharp: "(int a, string)",
			vb:     "(a As Integer, String)",
		},
	})
}

func TestRender_FunctionPointers(t *testing.T) {
	f := newFixtures()
	suppress := symbol.NewType("System.Runtime.CompilerServices", "CallConvSuppressGCTransition")

	refReadonly := symbol.FunctionPointer(symbol.CallDefault, f.int32Type)
	refReadonly.Signature.RefKind = symbol.RefIn

	unmanaged := symbol.FunctionPointer(symbol.CallUnmanaged, f.voidType)
	custom := symbol.FunctionPointer(symbol.CallUnmanaged, f.voidType, f.int32Type)
	custom.Signature.UnmanagedCallingConventionTypes = []*symbol.NamedType{suppress}

	byRef := symbol.FunctionPointer(symbol.CallDefault, f.voidType, f.int32Type)
	byRef.Signature.Parameters[0].RefKind = symbol.RefOut

	runRenderCases(t, []renderCase{
		{
			name:   "well-known convention",
			sym:    f.fnPtr,
			opts:   UseAlias,
			csharp: "delegate* unmanaged[Stdcall]<int, void>",
			vb:     "delegate* unmanaged[Stdcall]<Integer, Void>",
		},
		{
			name:   "unaliased",
			sym:    f.fnPtr,
			opts:   None,
			csharp: "delegate* unmanaged[Stdcall]<Int32, Void>",
			vb:     "delegate* unmanaged[Stdcall]<Int32, Void>",
		},
		{
			name:   "managed ref readonly return",
			sym:    refReadonly,
			opts:   UseAlias,
			csharp: "delegate*<ref readonly int>",
			vb:     "delegate*<ref readonly Integer>",
		},
		{
			name:   "bare unmanaged",
			sym:    unmanaged,
			opts:   UseAlias,
			csharp: "delegate* unmanaged<void>",
			vb:     "delegate* unmanaged<Void>",
		},
		{
			name:   "custom convention type",
			sym:    custom,
			opts:   UseAlias,
			csharp: "delegate* unmanaged[SuppressGCTransition]<int, void>",
			vb:     "delegate* unmanaged[SuppressGCTransition]<Integer, Void>",
		},
		{
			name:   "out parameter",
			sym:    byRef,
			opts:   UseAlias,
			csharp: "delegate*<out int, void>",
			vb:     "delegate*<out Integer, Void>",
		},
	})
}

func TestRender_Methods(t *testing.T) {
	f := newFixtures()

	mapDef := symbol.NewMethod(f.foo, "Map", nil, symbol.Param("x", f.int32Type))
	mapDef.TypeParameters = []*symbol.TypeParameter{{Name: "TResult", Owner: mapDef}}

	mapInt := symbol.NewMethod(f.foo, "Map", nil, symbol.Param("x", f.int32Type))
	mapInt.OriginalDefinition = mapDef
	mapInt.TypeArguments = []symbol.Type{f.int32Type}

	mapFromDef := symbol.NewMethod(f.foo, "Map", nil, symbol.Param("x", f.int32Type))
	mapFromDef.OriginalDefinition = mapDef

	tryParse := symbol.NewMethod(f.foo, "TryParse", f.int32Type,
		symbol.Param("s", f.stringType),
		symbol.RefParam("result", symbol.RefOut, f.int32Type),
	)

	runRenderCases(t, []renderCase{
		{
			name:   "implicit conversion",
			sym:    f.implicit,
			opts:   WithParameter,
			csharp: "Implicit(Int32 to Foo)",
			vb:     "Widening(Int32 to Foo)",
		},
		{
			name:   "implicit conversion aliased",
			sym:    f.implicit,
			opts:   UseAlias | WithParameter,
			csharp: "Implicit(int to Foo)",
			vb:     "Widening(Integer to Foo)",
		},
		{
			name:   "conversion without parameters",
			sym:    f.implicit,
			opts:   UseAlias,
			csharp: "Implicit",
			vb:     "Widening",
		},
		{
			name:   "explicit interface implementation",
			sym:    f.explicitBar,
			opts:   WithParameter,
			csharp: "IFoo.Bar(Int32)",
			vb:     "IFoo.Bar(Int32)",
		},
		{
			name:   "explicit interface implementation with type",
			sym:    f.explicitBar,
			opts:   WithType | WithParameter,
			csharp: "Foo.IFoo.Bar(Int32)",
			vb:     "Foo.IFoo.Bar(Int32)",
		},
		{
			name:   "constructor",
			sym:    f.ctor,
			opts:   UseAlias | WithType | WithParameter,
			csharp: "Foo.Foo(int)",
			vb:     "Foo.Foo(Integer)",
		},
		{
			name:   "operator",
			sym:    f.operator,
			opts:   WithParameter,
			csharp: "Addition(Foo, Foo)",
			vb:     "Addition(Foo, Foo)",
		},
		{
			name:   "ref kinds",
			sym:    tryParse,
			opts:   UseAlias | WithParameter,
			csharp: "TryParse(string, out int)",
			vb:     "TryParse(String, ByRef Integer)",
		},
		{
			name:   "member of generic type",
			sym:    f.listAdd,
			opts:   UseAlias | Qualified | WithGenericParameter | WithParameter,
			csharp: "System.Collections.Generic.List<T>.Add(T)",
			vb:     "System.Collections.Generic.List(Of T).Add(T)",
		},
		{
			name:   "generic method definition",
			sym:    mapDef,
			opts:   UseAlias | WithMethodGenericParameter | WithParameter,
			csharp: "Map<TResult>(int)",
			vb:     "Map(Of TResult)(Integer)",
		},
		{
			name:   "generic method instantiation",
			sym:    mapInt,
			opts:   UseAlias | WithMethodGenericParameter | WithParameter,
			csharp: "Map<int>(int)",
			vb:     "Map(Of Integer)(Integer)",
		},
		{
			name:   "parameters from original definition",
			sym:    mapFromDef,
			opts:   WithMethodGenericParameter,
			csharp: "Map<TResult>",
			vb:     "Map(Of TResult)",
		},
		{
			name:   "method generics disabled",
			sym:    mapInt,
			opts:   UseAlias | WithTypeGenericParameter | WithParameter,
			csharp: "Map(int)",
			vb:     "Map(Integer)",
		},
	})
}

func TestRender_PropertiesEventsFields(t *testing.T) {
	f := newFixtures()

	iface := symbol.NewType("Demo", "IBag")
	ifaceCount := symbol.NewProperty(iface, "Count", f.int32Type)
	explicitCount := symbol.NewProperty(f.foo, "Demo.IBag.Count", f.int32Type)
	explicitCount.ExplicitInterfaceImplementations = []*symbol.Property{ifaceCount}

	renamed := symbol.NewProperty(f.foo, "this[]", f.stringType, symbol.Param("key", f.stringType))
	renamed.MetadataName = "Chars"

	runRenderCases(t, []renderCase{
		{
			name:   "indexer aliased",
			sym:    f.indexer,
			opts:   UseAlias | WithParameter,
			csharp: "this[int]",
			vb:     "Item(Integer)",
		},
		{
			name:   "indexer unaliased",
			sym:    f.indexer,
			opts:   WithParameter,
			csharp: "Item[Int32]",
			vb:     "Item(Int32)",
		},
		{
			name:   "indexer without parameters",
			sym:    f.indexer,
			opts:   UseAlias | WithType,
			csharp: "Foo.this",
			vb:     "Foo.Item",
		},
		{
			name:   "renamed indexer",
			sym:    renamed,
			opts:   WithParameter,
			csharp: "Chars[String]",
			vb:     "Chars(String)",
		},
		{
			name:   "explicit property",
			sym:    explicitCount,
			opts:   None,
			csharp: "IBag.Count",
			vb:     "IBag.Count",
		},
		{
			name:   "event",
			sym:    f.event,
			opts:   Qualified,
			csharp: "Demo.Foo.Changed",
			vb:     "Demo.Foo.Changed",
		},
		{
			name:   "field",
			sym:    f.field,
			opts:   WithType,
			csharp: "Foo.value",
			vb:     "Foo.value",
		},
		{
			name:   "field without type",
			sym:    f.field,
			opts:   All &^ WithType,
			csharp: "value",
			vb:     "value",
		},
	})
}

func TestRender_Parameter(t *testing.T) {
	f := newFixtures()

	runRenderCases(t, []renderCase{
		{
			name:   "by value",
			sym:    symbol.Param("x", f.int32Type),
			opts:   UseAlias,
			csharp: "int",
			vb:     "Integer",
		},
		{
			name:   "in",
			sym:    symbol.RefParam("x", symbol.RefIn, f.int32Type),
			opts:   UseAlias,
			csharp: "in int",
			vb:     "ByRef Integer",
		},
		{
			name:   "ref array",
			sym:    symbol.RefParam("x", symbol.RefRef, symbol.Array(f.stringType)),
			opts:   UseAlias,
			csharp: "ref string[]",
			vb:     "ByRef String()",
		},
	})
}

func TestRender_Errors(t *testing.T) {
	f := newFixtures()

	tests := []struct {
		name string
		p    Projection
		opts Options
	}{
		{"negative options", CSharp, -1},
		{"options above all", CSharp, All + 1},
		{"unknown projection", Projection(2), None},
		{"negative projection", Projection(-1), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(f.foo, tt.p, tt.opts)
			if err == nil {
				t.Errorf("Render() = %q, want error", out)
			}
		})
	}
}

func TestRender_NilSymbol(t *testing.T) {
	if got := render(t, nil, CSharp, All); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
	if got := render(t, (*symbol.NamedType)(nil), VisualBasic, All); got != "" {
		t.Errorf("Render(typed nil) = %q, want empty", got)
	}
}

func TestRender_InvalidOperatorName(t *testing.T) {
	f := newFixtures()
	bad := symbol.NewMethod(f.foo, "Addition", f.foo)
	bad.MethodKind = symbol.MethodUserDefinedOperator

	if got := render(t, bad, CSharp, None); got != "Addition" {
		t.Errorf("Render() = %q, want raw name", got)
	}

	debugInvariants.Store(true)
	defer debugInvariants.Store(false)

	defer func() {
		if recover() == nil {
			t.Error("expected panic with invariants enabled")
		}
	}()
	Render(bad, CSharp, None)
}

func TestRender_InvalidConversionName(t *testing.T) {
	f := newFixtures()
	bad := symbol.NewMethod(f.foo, "op_Sideways", f.foo, symbol.Param("x", f.int32Type))
	bad.MethodKind = symbol.MethodConversion

	if got := render(t, bad, VisualBasic, WithParameter); got != "op_Sideways(Int32 to Foo)" {
		t.Errorf("Render() = %q, want raw name", got)
	}
}
