package display

import "github.com/broady/apiname/symbol"

var csharpSyntax = &syntax{
	separator:      ".",
	genericOpen:    "<",
	genericClose:   ">",
	arrayOpen:      "[",
	arrayClose:     "]",
	indexerOpen:    "[",
	indexerClose:   "]",
	indexerKeyword: "this",
	tupleLabelSep:  " ",
	refKeywords: [4]string{
		symbol.RefNone: "",
		symbol.RefRef:  "ref ",
		symbol.RefOut:  "out ",
		symbol.RefIn:   "in ",
	},
	keywords: map[symbol.SpecialType]string{
		symbol.SpecialObject:  "object",
		symbol.SpecialVoid:    "void",
		symbol.SpecialBoolean: "bool",
		symbol.SpecialChar:    "char",
		symbol.SpecialSByte:   "sbyte",
		symbol.SpecialByte:    "byte",
		symbol.SpecialInt16:   "short",
		symbol.SpecialUInt16:  "ushort",
		symbol.SpecialInt32:   "int",
		symbol.SpecialUInt32:  "uint",
		symbol.SpecialInt64:   "long",
		symbol.SpecialUInt64:  "ulong",
		symbol.SpecialDecimal: "decimal",
		symbol.SpecialSingle:  "float",
		symbol.SpecialDouble:  "double",
		symbol.SpecialString:  "string",
	},
	nativeKeywords: map[symbol.SpecialType]string{
		symbol.SpecialIntPtr:  "nint",
		symbol.SpecialUIntPtr: "nuint",
	},
	dynamicKeyword:     "dynamic",
	explicitConversion: "Explicit",
	implicitConversion: "Implicit",
}

// csharpVisitor renders C-family syntax: List<int>, int[,], (int a, string),
// this[int], delegate* unmanaged[Cdecl]<int, void>.
type csharpVisitor struct {
	base
}

func newCSharpVisitor() *csharpVisitor {
	return &csharpVisitor{base: base{syn: csharpSyntax}}
}

// VisitNamespace writes GlobalNamespaceToken for the global namespace.
func (v *csharpVisitor) VisitNamespace(w *Writer, ns *symbol.Namespace) {
	if ns.IsGlobal() {
		w.WriteString(GlobalNamespaceToken)
		return
	}
	v.base.VisitNamespace(w, ns)
}
