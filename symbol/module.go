package symbol

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Module is a unit of symbols handed over by a front end: the namespace tree,
// the declared types with their members, and free functions.
type Module struct {
	// Name identifies the module (an assembly name or Go package path).
	Name string

	// Global is the root of the namespace tree.
	Global *Namespace

	// Types are the declared types in declaration order.
	Types []*NamedType

	// Members maps each declared type to its members in declaration order.
	Members map[*NamedType][]Symbol

	// Functions are members without a containing type.
	Functions []*Method

	// Warnings contains non-fatal issues encountered while building the module.
	Warnings []Warning
}

// Warning represents a non-fatal issue encountered while building a module.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Symbol is the name of the symbol that triggered the warning, if applicable.
	Symbol string
}

// NewModule returns an empty module rooted at a fresh global namespace.
func NewModule(name string) *Module {
	return &Module{
		Name:    name,
		Global:  Global(),
		Members: make(map[*NamedType][]Symbol),
	}
}

// AddType adds a declared type to the module.
func (m *Module) AddType(t *NamedType) {
	m.Types = append(m.Types, t)
}

// AddMember adds a member to a declared type.
func (m *Module) AddMember(t *NamedType, member Symbol) {
	if m.Members == nil {
		m.Members = make(map[*NamedType][]Symbol)
	}
	m.Members[t] = append(m.Members[t], member)
}

// AddFunction adds a free function to the module.
func (m *Module) AddFunction(fn *Method) {
	m.Functions = append(m.Functions, fn)
}

// AddWarning adds a warning to the module.
func (m *Module) AddWarning(w Warning) {
	m.Warnings = append(m.Warnings, w)
}

// FindType looks up a declared type by qualified name ("System.Collections.Generic.List").
// Returns nil if not found.
func (m *Module) FindType(qualified string) *NamedType {
	for _, t := range m.Types {
		if QualifiedTypeName(t) == qualified {
			return t
		}
	}
	return nil
}

// FindMember looks up a member of t by name. Returns nil if not found.
func (m *Module) FindMember(t *NamedType, name string) Symbol {
	for _, member := range m.Members[t] {
		if memberName(member) == name {
			return member
		}
	}
	return nil
}

// Walk calls fn for every declared type, then each of its members, then every
// free function. Walk stops at the first non-nil error and returns it.
func (m *Module) Walk(fn func(Symbol) error) error {
	for _, t := range m.Types {
		if err := fn(t); err != nil {
			return err
		}
		for _, member := range m.Members[t] {
			if err := fn(member); err != nil {
				return err
			}
		}
	}
	for _, f := range m.Functions {
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// QualifiedTypeName returns the dotted metadata path of t, including
// containing types ("System.Collections.Generic.Dictionary.Enumerator").
func QualifiedTypeName(t *NamedType) string {
	if t.ContainingType != nil {
		return QualifiedTypeName(t.ContainingType) + "." + t.Name
	}
	if ns := t.Namespace.QualifiedName(); ns != "" {
		return ns + "." + t.Name
	}
	return t.Name
}

func memberName(s Symbol) string {
	switch s := s.(type) {
	case *Method:
		return s.Name
	case *Property:
		return s.Name
	case *Event:
		return s.Name
	case *Field:
		return s.Name
	case *NamedType:
		return s.Name
	default:
		return ""
	}
}

// ValidationError represents a contract violation in a symbol graph.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every symbol reachable from the module for shapes that a
// well-behaved front end never produces. It returns all errors found.
// Renderers do not call Validate; they degrade to raw names instead.
func (m *Module) Validate() []error {
	c := &checker{seen: make(map[Symbol]bool)}
	for _, t := range m.Types {
		c.check(t, QualifiedTypeName(t))
		for _, member := range m.Members[t] {
			c.check(member, QualifiedTypeName(t)+"."+memberName(member))
		}
	}
	for _, f := range m.Functions {
		c.check(f, f.Name)
	}

	var result []error
	for _, e := range c.errors {
		result = append(result, e)
	}
	return result
}

// ValidateSymbol checks a single symbol graph rooted at s.
func ValidateSymbol(s Symbol) []error {
	c := &checker{seen: make(map[Symbol]bool)}
	c.check(s, memberName(s))
	var result []error
	for _, e := range c.errors {
		result = append(result, e)
	}
	return result
}

// checker walks a graph once, collecting validation errors.
type checker struct {
	seen   map[Symbol]bool
	errors []*ValidationError
}

func (c *checker) fail(code, context, format string, args ...any) {
	c.errors = append(c.errors, &ValidationError{
		Code:    code,
		Message: context + ": " + fmt.Sprintf(format, args...),
	})
}

// fields runs the struct-tag rules of a node.
func (c *checker) fields(context string, v any) {
	err := structValidator().Struct(v)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		c.fail("invalid_field", context, "%v", err)
		return
	}
	for _, fe := range verrs {
		c.fail("invalid_field", context, "field %s failed %q rule (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
}

func (c *checker) checkType(t Type, context string) {
	if t == nil || reflect.ValueOf(t).IsNil() {
		c.fail("missing_type", context, "type is nil")
		return
	}
	c.check(t, context)
}

func (c *checker) check(s Symbol, context string) {
	if s == nil || reflect.ValueOf(s).IsNil() || c.seen[s] {
		return
	}
	c.seen[s] = true

	switch s := s.(type) {
	case *Namespace:
		if !s.IsGlobal() && s.Name == "" {
			c.fail("empty_name", context, "non-global namespace has no name")
		}
		c.check(s.Container(), context)

	case *NamedType:
		c.fields(context, s)
		if !s.Special.Valid() {
			c.fail("invalid_special_type", context, "unknown special type %d", s.Special)
		}
		if s.IsNativeInteger && s.Special != SpecialIntPtr && s.Special != SpecialUIntPtr {
			c.fail("invalid_native_integer", context, "native integer flag on %s", s.Special)
		}
		if s.IsTuple && len(s.TupleElements) == 0 {
			c.fail("empty_tuple", context, "tuple type has no elements")
		}
		if s.IsNullableValueType() {
			if inner, ok := s.TypeArguments[0].(*NamedType); ok && inner != nil && inner.IsNullableValueType() {
				c.fail("nested_nullable", context, "nullable value type wraps another nullable value type")
			}
		}
		if s.IsUnboundGeneric && len(s.TypeParameters) == 0 {
			c.fail("unbound_without_parameters", context, "unbound generic %s has no type parameters", s.Name)
		}
		if s.ContainingType == nil && s.Namespace == nil {
			c.fail("missing_container", context, "type %s has neither namespace nor containing type", s.Name)
		}
		if s.ContainingType != nil {
			c.check(s.ContainingType, context)
		} else {
			c.check(s.Container(), context)
		}
		for _, p := range s.TypeParameters {
			c.check(p, context)
		}
		for i, a := range s.TypeArguments {
			c.checkType(a, fmt.Sprintf("%s type argument %d", context, i))
		}
		for i, e := range s.TupleElements {
			if !e.IsImplicitlyDeclared && e.Name == "" {
				c.fail("empty_name", context, "tuple element %d is explicit but has no label", i)
			}
			c.checkType(e.Type, fmt.Sprintf("%s tuple element %d", context, i))
		}

	case *TypeParameter:
		c.fields(context, s)

	case *ArrayType:
		c.fields(context, s)
		c.checkType(s.ElementType, context+" element")

	case *PointerType:
		c.checkType(s.PointedAtType, context+" pointee")

	case *FunctionPointerType:
		c.fields(context, s)
		if s.Signature == nil {
			c.fail("missing_signature", context, "function pointer has no signature")
			return
		}
		c.fields(context, s.Signature)
		for _, t := range s.Signature.UnmanagedCallingConventionTypes {
			if t == nil {
				c.fail("missing_type", context, "nil calling convention type")
			}
		}
		if len(s.Signature.UnmanagedCallingConventionTypes) > 0 && s.Signature.CallingConvention != CallUnmanaged {
			c.fail("invalid_calling_convention", context, "calling convention types require Unmanaged, got %s", s.Signature.CallingConvention)
		}
		c.params(s.Signature.Parameters, context)
		c.checkType(s.Signature.ReturnType, context+" return")

	case *DynamicType:
		c.fields(context, s)

	case *Method:
		c.fields(context, s)
		switch s.MethodKind {
		case MethodConversion:
			if s.Name != ExplicitOperator && s.Name != ImplicitOperator {
				c.fail("invalid_conversion_name", context, "conversion %q is neither %s nor %s", s.Name, ExplicitOperator, ImplicitOperator)
			}
			if len(s.Parameters) != 1 {
				c.fail("invalid_conversion_arity", context, "conversion takes %d parameters, want 1", len(s.Parameters))
			}
		case MethodUserDefinedOperator:
			if !strings.HasPrefix(s.Name, OperatorPrefix) {
				c.fail("invalid_operator_name", context, "operator %q lacks the %s prefix", s.Name, OperatorPrefix)
			}
		case MethodConstructor:
			if s.ContainingType == nil {
				c.fail("missing_container", context, "constructor has no containing type")
			}
		}
		if !s.ReturnsVoid {
			c.checkType(s.ReturnType, context+" return")
		}
		c.check(namedTypeOrNil(s.ContainingType), context)
		for _, p := range s.TypeParameters {
			c.check(p, context)
		}
		for i, a := range s.TypeArguments {
			c.checkType(a, fmt.Sprintf("%s type argument %d", context, i))
		}
		c.params(s.Parameters, context)
		for _, impl := range s.ExplicitInterfaceImplementations {
			if impl == nil {
				c.fail("missing_implementation", context, "nil explicit interface implementation")
				continue
			}
			if impl.ContainingType == nil {
				c.fail("missing_container", context, "interface method %s has no containing type", impl.Name)
			}
			c.check(impl, context+" implements "+impl.Name)
		}

	case *Property:
		c.fields(context, s)
		if s.IsIndexer() && s.MetadataName == "" {
			c.fail("missing_metadata_name", context, "indexer has no metadata name")
		}
		c.check(namedTypeOrNil(s.ContainingType), context)
		c.params(s.Parameters, context)
		for _, impl := range s.ExplicitInterfaceImplementations {
			if impl == nil {
				c.fail("missing_implementation", context, "nil explicit interface implementation")
				continue
			}
			c.check(impl, context+" implements "+impl.Name)
		}

	case *Event:
		c.fields(context, s)
		c.check(namedTypeOrNil(s.ContainingType), context)
		for _, impl := range s.ExplicitInterfaceImplementations {
			if impl == nil {
				c.fail("missing_implementation", context, "nil explicit interface implementation")
				continue
			}
			c.check(impl, context+" implements "+impl.Name)
		}

	case *Field:
		c.fields(context, s)
		c.check(namedTypeOrNil(s.ContainingType), context)

	case *Parameter:
		c.fields(context, s)
		c.checkType(s.Type, context+" parameter "+s.Name)
	}
}

func (c *checker) params(params []*Parameter, context string) {
	for i, p := range params {
		if p == nil {
			c.fail("missing_parameter", context, "parameter %d is nil", i)
			continue
		}
		c.check(p, context)
	}
}
