package display

import (
	"strings"

	"github.com/broady/apiname/symbol"
)

// GlobalNamespaceToken is what the C-family projection writes for the global
// namespace itself. Types inside the global namespace get no prefix at all.
const GlobalNamespaceToken = "Global"

// callConvPrefix is stripped from custom calling-convention marker types
// (CallConvSuppressGCTransition renders as SuppressGCTransition).
const callConvPrefix = "CallConv"

// valueTupleName is the metadata name tuples render as when fully qualified.
const valueTupleName = "ValueTuple"

// IsGlobalNamespace reports whether s is the unnamed root namespace.
func IsGlobalNamespace(s symbol.Symbol) bool {
	ns, ok := s.(*symbol.Namespace)
	return ok && ns.IsGlobal()
}

// InGlobalNamespace reports whether t is declared directly in the global
// namespace (or has no namespace at all).
func InGlobalNamespace(t *symbol.NamedType) bool {
	return t.Namespace == nil || t.Namespace.IsGlobal()
}

// wellKnownCallingConventions maps conventions with a fixed unmanaged[...] spelling.
var wellKnownCallingConventions = map[symbol.CallingConvention]string{
	symbol.CallCDecl:    "Cdecl",
	symbol.CallStdCall:  "Stdcall",
	symbol.CallThisCall: "Thiscall",
	symbol.CallFastCall: "Fastcall",
	symbol.CallVarArgs:  "Varargs",
}

// CallingConventionNames returns the names listed inside unmanaged[...] for a
// signature: the well-known convention, if any, followed by each marker type
// with its CallConv prefix removed.
func CallingConventionNames(sig *symbol.Signature) []string {
	var names []string
	if name, ok := wellKnownCallingConventions[sig.CallingConvention]; ok {
		names = append(names, name)
	}
	for _, t := range sig.UnmanagedCallingConventionTypes {
		if t == nil {
			continue
		}
		names = append(names, strings.TrimPrefix(t.Name, callConvPrefix))
	}
	return names
}

// returnRefKeywords are the ref keywords of a function pointer return
// position, where In means ref readonly.
var returnRefKeywords = [...]string{
	symbol.RefNone: "",
	symbol.RefRef:  "ref ",
	symbol.RefOut:  "out ",
	symbol.RefIn:   "ref readonly ",
}

// signatureRefKeywords are the parameter ref keywords inside delegate*<...>,
// which has only one spelling.
var signatureRefKeywords = [...]string{
	symbol.RefNone: "",
	symbol.RefRef:  "ref ",
	symbol.RefOut:  "out ",
	symbol.RefIn:   "in ",
}

func keyword(table []string, k symbol.RefKind) string {
	if int(k) < 0 || int(k) >= len(table) {
		return ""
	}
	return table[k]
}

// nullableOf returns the annotation of a possibly nil type.
func nullableOf(t symbol.Type) symbol.Nullability {
	if t == nil {
		return symbol.NullableNone
	}
	return t.NullableAnnotation()
}
