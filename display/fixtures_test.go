package display

import "github.com/broady/apiname/symbol"

// fixtures is a small graph covering every symbol shape.
type fixtures struct {
	int32Type   *symbol.NamedType
	stringType  *symbol.NamedType
	voidType    *symbol.NamedType
	foo         *symbol.NamedType
	iface       *symbol.NamedType
	dict        *symbol.NamedType
	dictStringT *symbol.NamedType
	list        *symbol.NamedType
	listAdd     *symbol.Method
	implicit    *symbol.Method
	indexer     *symbol.Property
	explicitBar *symbol.Method
	fnPtr       *symbol.FunctionPointerType
	tuple       *symbol.NamedType
	ctor        *symbol.Method
	operator    *symbol.Method
	event       *symbol.Event
	field       *symbol.Field
}

func newFixtures() *fixtures {
	f := &fixtures{
		int32Type:  symbol.Special(symbol.SpecialInt32),
		stringType: symbol.Special(symbol.SpecialString),
		voidType:   symbol.Special(symbol.SpecialVoid),
		foo:        symbol.NewType("Demo", "Foo"),
		iface:      symbol.NewType("Demo", "IFoo"),
		dict:       symbol.GenericDefinition("System.Collections.Generic", "Dictionary", "TKey", "TValue"),
		list:       symbol.GenericDefinition("System.Collections.Generic", "List", "T"),
	}
	f.dictStringT = symbol.Construct(f.dict, f.stringType, symbol.NewTypeParameter("T"))
	f.listAdd = symbol.NewMethod(f.list, "Add", nil, symbol.Param("item", f.list.TypeParameters[0]))

	f.implicit = symbol.NewMethod(f.foo, symbol.ImplicitOperator, f.foo, symbol.Param("value", f.int32Type))
	f.implicit.MethodKind = symbol.MethodConversion

	f.indexer = symbol.NewProperty(f.foo, "this[]", f.stringType, symbol.Param("index", f.int32Type))

	ifaceBar := symbol.NewMethod(f.iface, "Bar", nil, symbol.Param("x", f.int32Type))
	f.explicitBar = symbol.NewMethod(f.foo, "Demo.IFoo.Bar", nil, symbol.Param("x", f.int32Type))
	f.explicitBar.ExplicitInterfaceImplementations = []*symbol.Method{ifaceBar}

	f.fnPtr = symbol.FunctionPointer(symbol.CallStdCall, f.voidType, f.int32Type)

	f.tuple = symbol.Tuple(symbol.Elem("a", f.int32Type), symbol.ImplicitElem(1, f.stringType))

	f.ctor = symbol.NewMethod(f.foo, ".ctor", nil, symbol.Param("seed", f.int32Type))
	f.ctor.MethodKind = symbol.MethodConstructor

	f.operator = symbol.NewMethod(f.foo, "op_Addition", f.foo, symbol.Param("a", f.foo), symbol.Param("b", f.foo))
	f.operator.MethodKind = symbol.MethodUserDefinedOperator

	f.event = &symbol.Event{Name: "Changed", ContainingType: f.foo, Type: symbol.NewType("System", "EventHandler")}
	f.field = &symbol.Field{Name: "value", ContainingType: f.foo, Type: f.int32Type}
	return f
}

// corpus returns every fixture plus shapes built for edge cases.
func (f *fixtures) corpus() []symbol.Symbol {
	annotatedString := symbol.Annotated(f.stringType, symbol.NullableAnnotated)
	nullableInt := symbol.Annotated(symbol.NullableOf(f.int32Type), symbol.NullableAnnotated)

	run := symbol.NewMethod(f.foo, "Run", nullableInt,
		symbol.Param("s", annotatedString),
		symbol.Param("n", nullableInt),
		symbol.RefParam("ok", symbol.RefOut, f.int32Type),
	)

	mapDef := symbol.NewMethod(f.foo, "Map", nil)
	mapDef.TypeParameters = []*symbol.TypeParameter{{Name: "TResult", Owner: mapDef}}

	return []symbol.Symbol{
		symbol.Global(),
		symbol.NewNamespace(symbol.Global(), "System.Collections"),
		f.int32Type, f.stringType, f.voidType, f.foo, f.dict, f.dictStringT,
		symbol.Unbound(f.dict),
		symbol.Nested(f.dictStringT, "Enumerator"),
		symbol.NativeInt(),
		symbol.NullableOf(f.int32Type),
		nullableInt,
		symbol.Construct(f.list, nullableInt),
		symbol.Construct(f.list, annotatedString),
		symbol.MultiArray(annotatedString, 2),
		symbol.Array(nullableInt),
		symbol.Pointer(f.int32Type),
		symbol.Dynamic(),
		f.fnPtr,
		f.tuple,
		symbol.Tuple(symbol.ImplicitElem(0, nullableInt), symbol.ImplicitElem(1, annotatedString)),
		f.listAdd, f.implicit, f.indexer, f.explicitBar, f.ctor, f.operator, f.event, f.field,
		run, mapDef,
		symbol.NewTypeParameter("T"),
		symbol.Param("p", annotatedString),
	}
}
