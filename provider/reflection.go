package provider

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/broady/apiname/symbol"
)

// ReflectionProvider extracts API surface using runtime reflection.
// Reflection cannot see parameter names, unexported methods, constants or
// the type arguments of generic instantiations; prefer SourceProvider when
// source is available.
type ReflectionProvider struct{}

// ReflectionInputOptions configures reflection-based extraction.
type ReflectionInputOptions struct {
	// RootTypes are the types to extract. Named types reachable from them in
	// the same packages are extracted too.
	RootTypes []reflect.Type

	// Name is the module name. Empty means the package path of the first root.
	Name string

	// Logger receives progress and warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// BuildModule extracts the root types and returns a Module.
func (p *ReflectionProvider) BuildModule(ctx context.Context, opts ReflectionInputOptions) (*symbol.Module, error) {
	if len(opts.RootTypes) == 0 {
		return nil, fmt.Errorf("no root types provided")
	}

	roots := make([]reflect.Type, len(opts.RootTypes))
	for i, t := range opts.RootTypes {
		if t == nil {
			return nil, fmt.Errorf("root type %d is nil", i)
		}
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Name() == "" || t.PkgPath() == "" {
			return nil, fmt.Errorf("root type %s is not a named type", t)
		}
		roots[i] = t
	}

	name := opts.Name
	if name == "" {
		name = roots[0].PkgPath()
	}
	b := &reflectionBuilder{
		builder:  newBuilder(name, opts.Logger),
		declared: make(map[reflect.Type]*symbol.NamedType),
		rootPkgs: make(map[string]bool),
	}
	for _, t := range roots {
		b.rootPkgs[t.PkgPath()] = true
	}
	for _, t := range roots {
		b.declare(t)
	}

	// Members may reach further named types, which are queued as they are declared.
	for len(b.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := b.queue[0]
		b.queue = b.queue[1:]
		b.extractMembers(t, b.declared[t])
	}

	b.logger.Debug("built module",
		slog.String("module", b.module.Name),
		slog.Int("types", len(b.module.Types)),
		slog.Int("warnings", len(b.module.Warnings)))
	return b.module, nil
}

var errorType = reflect.TypeFor[error]()

// reflectionBuilder converts reflect.Type values.
type reflectionBuilder struct {
	*builder
	declared map[reflect.Type]*symbol.NamedType
	rootPkgs map[string]bool
	queue    []reflect.Type
}

// declare adds a node for a named type and queues its members.
func (b *reflectionBuilder) declare(t reflect.Type) *symbol.NamedType {
	if n, ok := b.declared[t]; ok {
		return n
	}
	n := &symbol.NamedType{
		Name:      b.typeName(t),
		Namespace: b.namespace(namespacePath(t.PkgPath())),
	}
	b.declared[t] = n
	b.types[typeKey(t.PkgPath(), t.Name())] = n
	b.module.AddType(n)
	b.queue = append(b.queue, t)
	b.logger.Debug("declared type", slog.String("type", typeKey(t.PkgPath(), t.Name())))
	return n
}

// typeName strips the type arguments reflection appends to generic
// instantiations ("Box[int]"), which cannot be recovered as types.
func (b *reflectionBuilder) typeName(t reflect.Type) string {
	name, _, generic := strings.Cut(t.Name(), "[")
	if generic {
		b.warn(WarnGenericInstantiation, fmt.Sprintf("type arguments of %s are not available through reflection", t.Name()), typeKey(t.PkgPath(), t.Name()))
	}
	return name
}

func (b *reflectionBuilder) extractMembers(t reflect.Type, n *symbol.NamedType) {
	where := symbol.QualifiedTypeName(n)

	if t.Kind() == reflect.Interface {
		for i := 0; i < t.NumMethod(); i++ {
			m := t.Method(i)
			b.module.AddMember(n, b.convertFunc(n, m.Name, m.Type, 0, where))
		}
		return
	}

	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			b.module.AddMember(n, &symbol.Field{
				Name:           f.Name,
				ContainingType: n,
				Type:           b.convertType(f.Type, where+"."+f.Name),
			})
		}
	}

	// The pointer method set includes value-receiver methods.
	ptr := reflect.PointerTo(t)
	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)
		b.module.AddMember(n, b.convertFunc(n, m.Name, m.Type, 1, where))
	}
}

// convertFunc converts a method whose func type starts with skip receiver inputs.
func (b *reflectionBuilder) convertFunc(containing *symbol.NamedType, name string, fn reflect.Type, skip int, where string) *symbol.Method {
	where = where + "." + name
	var params []*symbol.Parameter
	for i := skip; i < fn.NumIn(); i++ {
		params = append(params, symbol.Param("arg"+strconv.Itoa(i-skip+1), b.convertType(fn.In(i), where)))
	}
	return b.method(containing, name, params, b.convertResults(fn, where))
}

func (b *reflectionBuilder) convertResults(fn reflect.Type, where string) []result {
	rs := make([]result, fn.NumOut())
	for i := range rs {
		rs[i] = result{typ: b.convertType(fn.Out(i), where)}
	}
	return rs
}

// convertType converts a reflect.Type to a symbol type.
func (b *reflectionBuilder) convertType(t reflect.Type, where string) symbol.Type {
	if t == errorType {
		n, _ := b.wellKnown("", "error")
		return n
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return b.namedRef(t)
	}

	switch t.Kind() {
	case reflect.Pointer:
		return symbol.Pointer(b.convertType(t.Elem(), where))

	case reflect.Slice, reflect.Array:
		return symbol.Array(b.convertType(t.Elem(), where))

	case reflect.Map:
		return b.dictionary(b.convertType(t.Key(), where), b.convertType(t.Elem(), where))

	case reflect.Chan:
		return b.channel(b.convertType(t.Elem(), where))

	case reflect.Func:
		params := make([]symbol.Type, t.NumIn())
		for i := range params {
			params[i] = b.convertType(t.In(i), where)
		}
		return b.functionPointer(params, b.convertResults(t, where))

	case reflect.Interface:
		if t.NumMethod() > 0 {
			b.warn(WarnInterfaceType, fmt.Sprintf("interface type %s mapped to Object", t), where)
		}
		return b.object()

	case reflect.Struct:
		var fields []result
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fields = append(fields, result{name: f.Name, typ: b.convertType(f.Type, where)})
		}
		return b.tuple(fields)
	}

	if s, ok := b.basic(t.Kind().String()); ok {
		return s
	}
	return b.unsupported(t, where)
}

// namedRef returns the node of a named type. Types from the root packages
// are declared; others become reference nodes.
func (b *reflectionBuilder) namedRef(t reflect.Type) symbol.Type {
	if n, ok := b.wellKnown(t.PkgPath(), t.Name()); ok {
		return n
	}
	if n, ok := b.declared[t]; ok {
		return n
	}
	if b.rootPkgs[t.PkgPath()] {
		return b.declare(t)
	}

	key := typeKey(t.PkgPath(), t.Name())
	if n, ok := b.types[key]; ok {
		return n
	}
	n := &symbol.NamedType{Name: b.typeName(t), Namespace: b.namespace(namespacePath(t.PkgPath()))}
	b.types[key] = n
	return n
}
