// Package provider implements input providers that extract API surface from Go
// code and convert it to a symbol graph the display package can render.
//
// Go concepts map onto the graph as follows: package paths become namespace
// chains, basic types become special types (int and uint become native-sized
// integers), maps become Dictionary<TKey, TValue>, channels become Channel<T>,
// func types become function pointers, multiple results become tuples, and
// NewX functions returning X become constructors of X.
package provider

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/broady/apiname/symbol"
)

// Warning codes added to the module for shapes without a faithful mapping.
const (
	WarnUnsupportedType      = "UNSUPPORTED_TYPE"
	WarnInterfaceType        = "INTERFACE_TYPE"
	WarnEmptyStruct          = "EMPTY_STRUCT"
	WarnGenericInstantiation = "GENERIC_INSTANTIATION"
)

// Namespaces of the well-known types that Go collections map to.
const (
	collectionsNamespace = "System.Collections.Generic"
	channelsNamespace    = "System.Threading.Channels"
)

// ConstructorName is the metadata name given to NewX constructors.
const ConstructorName = ".ctor"

// basicTypes maps Go basic type names (as reported by both go/types and
// reflect.Kind) to special types.
var basicTypes = map[string]symbol.SpecialType{
	"bool":    symbol.SpecialBoolean,
	"int8":    symbol.SpecialSByte,
	"uint8":   symbol.SpecialByte,
	"byte":    symbol.SpecialByte,
	"int16":   symbol.SpecialInt16,
	"uint16":  symbol.SpecialUInt16,
	"int32":   symbol.SpecialInt32,
	"rune":    symbol.SpecialInt32,
	"uint32":  symbol.SpecialUInt32,
	"int64":   symbol.SpecialInt64,
	"uint64":  symbol.SpecialUInt64,
	"float32": symbol.SpecialSingle,
	"float64": symbol.SpecialDouble,
	"string":  symbol.SpecialString,
	"uintptr": symbol.SpecialUIntPtr,
}

// wellKnown describes a Go named type rendered as a fixed target type.
type wellKnown struct {
	special   symbol.SpecialType
	namespace string
	name      string
}

// wellKnownTypes maps "pkgpath.Name" to its target type.
var wellKnownTypes = map[string]wellKnown{
	"time.Time":     {special: symbol.SpecialDateTime},
	"time.Duration": {namespace: symbol.SystemNamespace, name: "TimeSpan"},
	"error":         {namespace: symbol.SystemNamespace, name: "Exception"},
}

// builder accumulates a module. It is shared by the source and reflection
// providers; each provider converts its own type representation and calls
// into builder for the common shapes.
type builder struct {
	module *symbol.Module
	logger *slog.Logger

	// namespaces is keyed by dotted namespace path.
	namespaces map[string]*symbol.Namespace

	// types holds every named type reference created so far, keyed by
	// "pkgpath.Name". Declared types are also appended to module.Types.
	types map[string]*symbol.NamedType

	specials map[symbol.SpecialType]*symbol.NamedType
	generics map[string]*symbol.NamedType
}

func newBuilder(name string, logger *slog.Logger) *builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &builder{
		module:     symbol.NewModule(name),
		logger:     logger,
		namespaces: make(map[string]*symbol.Namespace),
		types:      make(map[string]*symbol.NamedType),
		specials:   make(map[symbol.SpecialType]*symbol.NamedType),
		generics:   make(map[string]*symbol.NamedType),
	}
}

// typeKey generates a unique key for a named type.
func typeKey(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}
	return pkgPath + "." + name
}

// namespacePath turns an import path into a dotted namespace path:
// "github.com/acme/api" becomes "github.com.acme.api".
func namespacePath(pkgPath string) string {
	return strings.ReplaceAll(pkgPath, "/", ".")
}

// namespace returns the shared namespace node for a dotted path, creating the
// chain under the module's global namespace as needed.
func (b *builder) namespace(dotted string) *symbol.Namespace {
	if dotted == "" {
		return b.module.Global
	}
	if ns, ok := b.namespaces[dotted]; ok {
		return ns
	}
	parent := b.module.Global
	if i := strings.LastIndexByte(dotted, '.'); i >= 0 {
		parent = b.namespace(dotted[:i])
	}
	ns := &symbol.Namespace{Name: dotted[strings.LastIndexByte(dotted, '.')+1:], Parent: parent}
	b.namespaces[dotted] = ns
	return ns
}

// special returns the shared node for a special type.
func (b *builder) special(s symbol.SpecialType) *symbol.NamedType {
	if t, ok := b.specials[s]; ok {
		return t
	}
	t := &symbol.NamedType{
		Name:      s.String(),
		Namespace: b.namespace(symbol.SystemNamespace),
		Special:   s,
	}
	b.specials[s] = t
	return t
}

func (b *builder) void() *symbol.NamedType   { return b.special(symbol.SpecialVoid) }
func (b *builder) object() *symbol.NamedType { return b.special(symbol.SpecialObject) }

// basic maps a Go basic type name. int and uint are native-sized.
func (b *builder) basic(name string) (symbol.Type, bool) {
	switch name {
	case "int":
		t := *b.special(symbol.SpecialIntPtr)
		t.IsNativeInteger = true
		return &t, true
	case "uint":
		t := *b.special(symbol.SpecialUIntPtr)
		t.IsNativeInteger = true
		return &t, true
	case "unsafe.Pointer", "Pointer":
		return symbol.Pointer(b.void()), true
	}
	s, ok := basicTypes[name]
	if !ok {
		return nil, false
	}
	return b.special(s), true
}

// wellKnown returns the target type of a Go named type with a fixed mapping.
func (b *builder) wellKnown(pkgPath, name string) (*symbol.NamedType, bool) {
	wk, ok := wellKnownTypes[typeKey(pkgPath, name)]
	if !ok {
		return nil, false
	}
	if wk.special != symbol.SpecialNone {
		return b.special(wk.special), true
	}
	key := typeKey(wk.namespace, wk.name)
	if t, ok := b.types[key]; ok {
		return t, true
	}
	t := &symbol.NamedType{Name: wk.name, Namespace: b.namespace(wk.namespace)}
	b.types[key] = t
	return t, true
}

// genericDefinition returns a shared well-known generic definition.
func (b *builder) genericDefinition(namespace, name string, params ...string) *symbol.NamedType {
	key := typeKey(namespace, name)
	if t, ok := b.generics[key]; ok {
		return t
	}
	t := &symbol.NamedType{Name: name, Namespace: b.namespace(namespace)}
	for _, p := range params {
		t.TypeParameters = append(t.TypeParameters, &symbol.TypeParameter{Name: p, Owner: t})
	}
	b.generics[key] = t
	return t
}

func (b *builder) dictionary(key, value symbol.Type) *symbol.NamedType {
	return symbol.Construct(b.genericDefinition(collectionsNamespace, "Dictionary", "TKey", "TValue"), key, value)
}

func (b *builder) channel(elem symbol.Type) *symbol.NamedType {
	return symbol.Construct(b.genericDefinition(channelsNamespace, "Channel", "T"), elem)
}

// result is one Go function result.
type result struct {
	name string
	typ  symbol.Type
}

// results maps a Go result list: none is void, one is its type, and several
// form a tuple labeled by the result names.
func (b *builder) results(rs []result) (symbol.Type, bool) {
	switch len(rs) {
	case 0:
		return b.void(), true
	case 1:
		return rs[0].typ, false
	}
	elems := make([]symbol.TupleElement, len(rs))
	for i, r := range rs {
		if r.name == "" || r.name == "_" {
			elems[i] = symbol.ImplicitElem(i, r.typ)
		} else {
			elems[i] = symbol.Elem(r.name, r.typ)
		}
	}
	t := symbol.Tuple(elems...)
	t.Namespace = b.namespace(symbol.SystemNamespace)
	return t, false
}

// tuple maps an anonymous struct to a tuple labeled by its field names.
func (b *builder) tuple(fields []result) symbol.Type {
	if len(fields) == 0 {
		b.warn(WarnEmptyStruct, "empty struct mapped to Object", "")
		return b.object()
	}
	elems := make([]symbol.TupleElement, len(fields))
	for i, f := range fields {
		elems[i] = symbol.Elem(f.name, f.typ)
	}
	t := symbol.Tuple(elems...)
	t.Namespace = b.namespace(symbol.SystemNamespace)
	return t
}

// functionPointer maps a Go func type.
func (b *builder) functionPointer(params []symbol.Type, rs []result) *symbol.FunctionPointerType {
	ret, _ := b.results(rs)
	return symbol.FunctionPointer(symbol.CallDefault, ret, params...)
}

// method builds a method on containing (nil for package functions).
func (b *builder) method(containing *symbol.NamedType, name string, params []*symbol.Parameter, rs []result) *symbol.Method {
	ret, void := b.results(rs)
	m := &symbol.Method{
		Name:           name,
		ContainingType: containing,
		Parameters:     params,
		ReturnType:     ret,
		ReturnsVoid:    void,
	}
	for _, p := range params {
		p.Owner = m
	}
	return m
}

// constructorTarget reports whether a package function named NewX returning
// X or *X (optionally followed by an error) constructs the declared type X.
func constructorTarget(name string, resultNames []string) (string, bool) {
	target, ok := strings.CutPrefix(name, "New")
	if !ok || target == "" || len(resultNames) == 0 || len(resultNames) > 2 {
		return "", false
	}
	if len(resultNames) == 2 && resultNames[1] != "error" {
		return "", false
	}
	if strings.TrimPrefix(resultNames[0], "*") != target {
		return "", false
	}
	return target, true
}

// asConstructor converts m into a constructor of t.
func asConstructor(m *symbol.Method, t *symbol.NamedType) {
	m.Name = ConstructorName
	m.MethodKind = symbol.MethodConstructor
	m.ContainingType = t
}

func (b *builder) warn(code, message, name string) {
	b.logger.Warn(message, slog.String("code", code), slog.String("symbol", name))
	b.module.AddWarning(symbol.Warning{Code: code, Message: message, Symbol: name})
}

func (b *builder) unsupported(what fmt.Stringer, where string) symbol.Type {
	b.warn(WarnUnsupportedType, fmt.Sprintf("unsupported type %s mapped to Object", what), where)
	return b.object()
}
