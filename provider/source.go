package provider

import (
	"context"
	"fmt"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/packages"

	"github.com/broady/apiname/symbol"
)

// SourceProvider extracts API surface by analyzing Go source code.
type SourceProvider struct{}

// SourceInputOptions configures source-based extraction.
type SourceInputOptions struct {
	// Packages are the Go package patterns to analyze.
	Packages []string

	// Dir is the directory packages are resolved from. Empty means the
	// current directory.
	Dir string

	// RootTypes restricts extraction to the named types (e.g., "Client").
	// If empty, all types and package functions are extracted.
	RootTypes []string

	// IncludeUnexported also extracts unexported types and members.
	IncludeUnexported bool

	// Logger receives progress and warnings. Nil means slog.Default().
	Logger *slog.Logger
}

// BuildModule analyzes source code and returns a Module named after the first
// input package.
func (p *SourceProvider) BuildModule(ctx context.Context, opts SourceInputOptions) (*symbol.Module, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	b := &sourceBuilder{
		builder:    newBuilder(pkgs[0].PkgPath, opts.Logger),
		opts:       opts,
		declared:   make(map[*types.TypeName]*symbol.NamedType),
		typeParams: make(map[*types.TypeParam]*symbol.TypeParameter),
	}
	if len(opts.RootTypes) > 0 {
		b.roots = make(map[string]bool, len(opts.RootTypes))
		for _, name := range opts.RootTypes {
			b.roots[name] = true
		}
	}

	// Declare every type first so references within the packages resolve to
	// the declared nodes regardless of order.
	for _, pkg := range pkgs {
		b.declareTypes(pkg.Types)
	}
	for _, name := range opts.RootTypes {
		if !b.hasDeclared(name) {
			return nil, fmt.Errorf("type %s not found in any package", name)
		}
	}

	for _, pkg := range pkgs {
		if err := b.extractPackage(ctx, pkg.Types); err != nil {
			return nil, err
		}
	}

	b.logger.Debug("built module",
		slog.String("module", b.module.Name),
		slog.Int("types", len(b.module.Types)),
		slog.Int("functions", len(b.module.Functions)),
		slog.Int("warnings", len(b.module.Warnings)))
	return b.module, nil
}

// sourceBuilder converts go/types objects.
type sourceBuilder struct {
	*builder
	opts       SourceInputOptions
	roots      map[string]bool
	declared   map[*types.TypeName]*symbol.NamedType
	typeParams map[*types.TypeParam]*symbol.TypeParameter
}

func (b *sourceBuilder) include(obj types.Object) bool {
	return obj.Exported() || b.opts.IncludeUnexported
}

func (b *sourceBuilder) hasDeclared(name string) bool {
	for tn := range b.declared {
		if tn.Name() == name {
			return true
		}
	}
	return false
}

// declareTypes adds a node for every type declared at package scope.
func (b *sourceBuilder) declareTypes(pkg *types.Package) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() || !b.include(tn) {
			continue
		}
		if b.roots != nil && !b.roots[name] {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		t := &symbol.NamedType{
			Name:      name,
			Namespace: b.namespace(namespacePath(pkg.Path())),
		}
		for i := 0; i < named.TypeParams().Len(); i++ {
			tp := named.TypeParams().At(i)
			param := &symbol.TypeParameter{Name: tp.Obj().Name(), Owner: t}
			t.TypeParameters = append(t.TypeParameters, param)
			b.typeParams[tp] = param
		}

		b.declared[tn] = t
		b.types[typeKey(pkg.Path(), name)] = t
		b.module.AddType(t)
		b.logger.Debug("declared type", slog.String("type", typeKey(pkg.Path(), name)))
	}
}

// extractPackage adds members, enum constants and functions of one package.
func (b *sourceBuilder) extractPackage(ctx context.Context, pkg *types.Package) error {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch obj := scope.Lookup(name).(type) {
		case *types.TypeName:
			if t, ok := b.declared[obj]; ok {
				b.extractMembers(t, obj.Type().(*types.Named))
			}
		case *types.Const:
			b.extractConstant(obj)
		case *types.Func:
			if b.include(obj) {
				b.extractFunction(pkg, obj)
			}
		}
	}
	return nil
}

func (b *sourceBuilder) extractMembers(t *symbol.NamedType, named *types.Named) {
	where := symbol.QualifiedTypeName(t)

	switch u := named.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !b.include(f) {
				continue
			}
			b.module.AddMember(t, &symbol.Field{
				Name:           f.Name(),
				ContainingType: t,
				Type:           b.convertType(f.Type(), where+"."+f.Name()),
			})
		}
	case *types.Interface:
		for i := 0; i < u.NumExplicitMethods(); i++ {
			fn := u.ExplicitMethod(i)
			if !b.include(fn) {
				continue
			}
			b.module.AddMember(t, b.convertFunc(t, fn))
		}
	}

	for i := 0; i < named.NumMethods(); i++ {
		fn := named.Method(i)
		if !b.include(fn) {
			continue
		}
		sig := fn.Type().(*types.Signature)
		for j := 0; j < sig.RecvTypeParams().Len() && j < len(t.TypeParameters); j++ {
			b.typeParams[sig.RecvTypeParams().At(j)] = t.TypeParameters[j]
		}
		b.module.AddMember(t, b.convertFunc(t, fn))
	}
}

// extractConstant adds a typed constant of a declared type as an enum member.
func (b *sourceBuilder) extractConstant(c *types.Const) {
	named, ok := c.Type().(*types.Named)
	if !ok || !b.include(c) {
		return
	}
	t, ok := b.declared[named.Obj()]
	if !ok {
		return
	}
	b.module.AddMember(t, &symbol.Field{Name: c.Name(), ContainingType: t, Type: t})
}

// extractFunction adds a package function, or a constructor when it is a
// NewX function for a declared type X.
func (b *sourceBuilder) extractFunction(pkg *types.Package, fn *types.Func) {
	sig := fn.Type().(*types.Signature)
	if target, ok := constructorTarget(fn.Name(), resultTypeNames(sig, pkg)); ok {
		if tn, ok := pkg.Scope().Lookup(target).(*types.TypeName); ok {
			if t, ok := b.declared[tn]; ok {
				m := b.convertFunc(nil, fn)
				asConstructor(m, t)
				b.module.AddMember(t, m)
				return
			}
		}
	}
	if b.roots != nil {
		return
	}
	b.module.AddFunction(b.convertFunc(nil, fn))
}

// resultTypeNames names each result relative to pkg: "T", "*T", "error", or
// "" for anything else.
func resultTypeNames(sig *types.Signature, pkg *types.Package) []string {
	names := make([]string, sig.Results().Len())
	for i := range names {
		t := sig.Results().At(i).Type()
		prefix := ""
		if ptr, ok := t.(*types.Pointer); ok {
			prefix = "*"
			t = ptr.Elem()
		}
		named, ok := t.(*types.Named)
		if !ok {
			continue
		}
		if obj := named.Obj(); obj.Pkg() == nil || obj.Pkg() == pkg {
			names[i] = prefix + obj.Name()
		}
	}
	return names
}

// convertFunc converts a function or method. Generic functions get their own
// type parameters.
func (b *sourceBuilder) convertFunc(containing *symbol.NamedType, fn *types.Func) *symbol.Method {
	sig := fn.Type().(*types.Signature)
	where := fn.FullName()

	var typeParams []*symbol.TypeParameter
	for i := 0; i < sig.TypeParams().Len(); i++ {
		tp := sig.TypeParams().At(i)
		param := &symbol.TypeParameter{Name: tp.Obj().Name()}
		b.typeParams[tp] = param
		typeParams = append(typeParams, param)
	}

	params := make([]*symbol.Parameter, sig.Params().Len())
	for i := range params {
		v := sig.Params().At(i)
		params[i] = symbol.Param(v.Name(), b.convertType(v.Type(), where))
	}

	m := b.method(containing, fn.Name(), params, b.convertResults(sig.Results(), where))
	m.TypeParameters = typeParams
	for _, tp := range typeParams {
		tp.Owner = m
	}
	return m
}

func (b *sourceBuilder) convertResults(tuple *types.Tuple, where string) []result {
	rs := make([]result, tuple.Len())
	for i := range rs {
		v := tuple.At(i)
		rs[i] = result{name: v.Name(), typ: b.convertType(v.Type(), where)}
	}
	return rs
}

// convertType converts a Go type to a symbol type.
func (b *sourceBuilder) convertType(t types.Type, where string) symbol.Type {
	switch typ := t.(type) {
	case *types.Basic:
		if s, ok := b.basic(typ.Name()); ok {
			return s
		}
		return b.unsupported(typ, where)

	case *types.Alias:
		return b.convertType(types.Unalias(typ), where)

	case *types.Named:
		return b.namedRef(typ, where)

	case *types.Pointer:
		return symbol.Pointer(b.convertType(typ.Elem(), where))

	case *types.Slice:
		return symbol.Array(b.convertType(typ.Elem(), where))

	case *types.Array:
		return symbol.Array(b.convertType(typ.Elem(), where))

	case *types.Map:
		return b.dictionary(b.convertType(typ.Key(), where), b.convertType(typ.Elem(), where))

	case *types.Chan:
		return b.channel(b.convertType(typ.Elem(), where))

	case *types.Signature:
		params := make([]symbol.Type, typ.Params().Len())
		for i := range params {
			params[i] = b.convertType(typ.Params().At(i).Type(), where)
		}
		return b.functionPointer(params, b.convertResults(typ.Results(), where))

	case *types.Interface:
		if !typ.Empty() {
			b.warn(WarnInterfaceType, fmt.Sprintf("interface type %s mapped to Object", typ), where)
		}
		return b.object()

	case *types.Struct:
		fields := make([]result, typ.NumFields())
		for i := range fields {
			f := typ.Field(i)
			fields[i] = result{name: f.Name(), typ: b.convertType(f.Type(), where)}
		}
		return b.tuple(fields)

	case *types.TypeParam:
		if p, ok := b.typeParams[typ]; ok {
			return p
		}
		return symbol.NewTypeParameter(typ.Obj().Name())

	default:
		return b.unsupported(t, where)
	}
}

// namedRef returns the node of a named type, instantiated when it carries
// type arguments. Types outside the analyzed packages get reference nodes.
func (b *sourceBuilder) namedRef(named *types.Named, where string) symbol.Type {
	obj := named.Obj()
	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}
	if t, ok := b.wellKnown(pkgPath, obj.Name()); ok {
		return t
	}

	origin := named.Origin()
	def, ok := b.declared[origin.Obj()]
	if !ok {
		def = b.reference(origin)
	}

	args := named.TypeArgs()
	if args.Len() == 0 {
		return def
	}
	converted := make([]symbol.Type, args.Len())
	for i := range converted {
		converted[i] = b.convertType(args.At(i), where)
	}
	return symbol.Construct(def, converted...)
}

// reference returns a node for a named type declared outside the module.
func (b *sourceBuilder) reference(named *types.Named) *symbol.NamedType {
	obj := named.Obj()
	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}
	key := typeKey(pkgPath, obj.Name())
	if t, ok := b.types[key]; ok {
		return t
	}

	t := &symbol.NamedType{Name: obj.Name(), Namespace: b.namespace(namespacePath(pkgPath))}
	for i := 0; i < named.TypeParams().Len(); i++ {
		tp := named.TypeParams().At(i)
		param := &symbol.TypeParameter{Name: tp.Obj().Name(), Owner: t}
		t.TypeParameters = append(t.TypeParameters, param)
		b.typeParams[tp] = param
	}
	b.types[key] = t
	return t
}
