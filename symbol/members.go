package symbol

// Method is an ordinary method, constructor, conversion or user-defined operator.
type Method struct {
	// Name is the raw metadata name: "Add", ".ctor", "op_Addition", "op_Explicit".
	Name string `validate:"required"`

	MethodKind MethodKind `validate:"gte=0,lte=3"`

	// ContainingType is the declaring type; nil for free functions.
	ContainingType *NamedType `validate:"-"`

	TypeParameters []*TypeParameter `validate:"-"`
	TypeArguments  []Type           `validate:"-"`

	// OriginalDefinition is the generic definition this method was constructed
	// from, if any.
	OriginalDefinition *Method `validate:"-"`

	Parameters  []*Parameter `validate:"-"`
	ReturnType  Type         `validate:"-"`
	ReturnsVoid bool

	// ExplicitInterfaceImplementations lists the interface methods this method
	// implements explicitly. Display names only use the first entry.
	ExplicitInterfaceImplementations []*Method `validate:"-"`
}

// Kind returns KindMethod.
func (m *Method) Kind() Kind { return KindMethod }

// Container returns the declaring type.
func (m *Method) Container() Symbol { return namedTypeOrNil(m.ContainingType) }

func (m *Method) sealed() {}

// IsGeneric reports whether the method declares or is constructed from type parameters.
func (m *Method) IsGeneric() bool {
	if len(m.TypeParameters) > 0 || len(m.TypeArguments) > 0 {
		return true
	}
	return m.OriginalDefinition != nil && m.OriginalDefinition != m && len(m.OriginalDefinition.TypeParameters) > 0
}

// Property is a property or an indexer.
type Property struct {
	Name string `validate:"required"`

	// MetadataName is the emitted name, which differs from Name for indexers
	// renamed with IndexerName ("Item" by default).
	MetadataName string

	ContainingType *NamedType `validate:"-"`
	Type           Type       `validate:"-"`

	// Parameters is non-empty for indexers.
	Parameters []*Parameter `validate:"-"`

	ExplicitInterfaceImplementations []*Property `validate:"-"`
}

// Kind returns KindProperty.
func (p *Property) Kind() Kind { return KindProperty }

// Container returns the declaring type.
func (p *Property) Container() Symbol { return namedTypeOrNil(p.ContainingType) }

func (p *Property) sealed() {}

// IsIndexer reports whether the property takes parameters.
func (p *Property) IsIndexer() bool { return len(p.Parameters) > 0 }

// Event is an event member.
type Event struct {
	Name string `validate:"required"`

	ContainingType *NamedType `validate:"-"`
	Type           Type       `validate:"-"`

	ExplicitInterfaceImplementations []*Event `validate:"-"`
}

// Kind returns KindEvent.
func (e *Event) Kind() Kind { return KindEvent }

// Container returns the declaring type.
func (e *Event) Container() Symbol { return namedTypeOrNil(e.ContainingType) }

func (e *Event) sealed() {}

// Field is a field or enum member.
type Field struct {
	Name string `validate:"required"`

	ContainingType *NamedType `validate:"-"`
	Type           Type       `validate:"-"`
}

// Kind returns KindField.
func (f *Field) Kind() Kind { return KindField }

// Container returns the declaring type.
func (f *Field) Container() Symbol { return namedTypeOrNil(f.ContainingType) }

func (f *Field) sealed() {}

// Parameter is a formal parameter of a method, indexer or function pointer.
type Parameter struct {
	Name    string
	RefKind RefKind `validate:"gte=0,lte=3"`
	Type    Type    `validate:"-"`

	// Nullable is the annotation of the parameter's declared type.
	Nullable Nullability `validate:"gte=0,lte=3"`

	// Owner is the declaring method or property; nil inside function pointer signatures.
	Owner Symbol `validate:"-"`
}

// Kind returns KindParameter.
func (p *Parameter) Kind() Kind { return KindParameter }

// Container returns the declaring member.
func (p *Parameter) Container() Symbol { return p.Owner }

func (p *Parameter) sealed() {}

// Param returns a by-value parameter whose annotation follows its type.
func Param(name string, t Type) *Parameter {
	p := &Parameter{Name: name, Type: t}
	if t != nil {
		p.Nullable = t.NullableAnnotation()
	}
	return p
}

// RefParam returns a parameter passed with the given ref kind.
func RefParam(name string, kind RefKind, t Type) *Parameter {
	p := Param(name, t)
	p.RefKind = kind
	return p
}

// NewMethod returns an ordinary method on containing with the given parameters.
// A nil return type yields a void method. Parameter owners are set to the method.
func NewMethod(containing *NamedType, name string, ret Type, params ...*Parameter) *Method {
	m := &Method{
		Name:           name,
		ContainingType: containing,
		ReturnType:     ret,
		Parameters:     params,
	}
	if ret == nil {
		m.ReturnType = Special(SpecialVoid)
		m.ReturnsVoid = true
	}
	for _, p := range params {
		p.Owner = m
	}
	return m
}

// NewProperty returns a property; supplying parameters makes it an indexer
// with metadata name "Item".
func NewProperty(containing *NamedType, name string, t Type, params ...*Parameter) *Property {
	p := &Property{
		Name:           name,
		MetadataName:   name,
		ContainingType: containing,
		Type:           t,
		Parameters:     params,
	}
	if len(params) > 0 {
		p.MetadataName = "Item"
	}
	for _, param := range params {
		param.Owner = p
	}
	return p
}
