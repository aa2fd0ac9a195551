package symbol

import "strings"

// Namespace is a node of the namespace tree. The root of every tree is the
// unnamed global namespace.
type Namespace struct {
	// Name is the simple name. Empty for the global namespace.
	Name string

	// Parent is the enclosing namespace; nil for the global namespace.
	Parent *Namespace `validate:"-"`
}

// Kind returns KindNamespace.
func (n *Namespace) Kind() Kind { return KindNamespace }

// Container returns the parent namespace.
func (n *Namespace) Container() Symbol { return namespaceOrNil(n.Parent) }

func (n *Namespace) sealed() {}

// IsGlobal reports whether n is the root of its namespace tree.
func (n *Namespace) IsGlobal() bool {
	return n != nil && n.Parent == nil
}

// QualifiedName returns the dotted path from the global namespace ("System.Collections").
// The global namespace has an empty qualified name.
func (n *Namespace) QualifiedName() string {
	if n == nil || n.IsGlobal() {
		return ""
	}
	if n.Parent.IsGlobal() {
		return n.Name
	}
	return n.Parent.QualifiedName() + "." + n.Name
}

// Global returns a new global namespace.
func Global() *Namespace {
	return &Namespace{}
}

// NewNamespace returns the namespace chain for a dotted name under parent.
// NewNamespace(Global(), "System.Collections") returns Collections whose parent is System.
// An empty dotted name returns parent.
func NewNamespace(parent *Namespace, dotted string) *Namespace {
	if parent == nil {
		parent = Global()
	}
	ns := parent
	if dotted == "" {
		return ns
	}
	for _, part := range strings.Split(dotted, ".") {
		ns = &Namespace{Name: part, Parent: ns}
	}
	return ns
}
