package display

import "github.com/broady/apiname/symbol"

var vbSyntax = &syntax{
	separator:       ".",
	genericOpen:     "(Of ",
	genericClose:    ")",
	arrayOpen:       "(",
	arrayClose:      ")",
	indexerOpen:     "(",
	indexerClose:    ")",
	tupleLabelFirst: true,
	tupleLabelSep:   " As ",
	refKeywords: [4]string{
		symbol.RefNone: "",
		symbol.RefRef:  "ByRef ",
		symbol.RefOut:  "ByRef ",
		symbol.RefIn:   "ByRef ",
	},
	keywords: map[symbol.SpecialType]string{
		symbol.SpecialObject:   "Object",
		symbol.SpecialBoolean:  "Boolean",
		symbol.SpecialChar:     "Char",
		symbol.SpecialSByte:    "SByte",
		symbol.SpecialByte:     "Byte",
		symbol.SpecialInt16:    "Short",
		symbol.SpecialUInt16:   "UShort",
		symbol.SpecialInt32:    "Integer",
		symbol.SpecialUInt32:   "UInteger",
		symbol.SpecialInt64:    "Long",
		symbol.SpecialUInt64:   "ULong",
		symbol.SpecialDecimal:  "Decimal",
		symbol.SpecialSingle:   "Single",
		symbol.SpecialDouble:   "Double",
		symbol.SpecialString:   "String",
		symbol.SpecialDateTime: "Date",
	},
	dynamicKeyword:     "Object",
	explicitConversion: "Narrowing",
	implicitConversion: "Widening",
}

// vbVisitor renders Basic-family syntax: List(Of Integer), Integer(,),
// (a As Integer, String), Item(Integer).
//
// Void has no keyword and native integers have none either, so both fall
// through to their metadata names. Indexers always use the metadata name.
type vbVisitor struct {
	base
}

func newVBVisitor() *vbVisitor {
	return &vbVisitor{base: base{syn: vbSyntax}}
}

// VisitNamespace writes nothing for the global namespace, which Basic-family
// syntax cannot address.
func (v *vbVisitor) VisitNamespace(w *Writer, ns *symbol.Namespace) {
	if ns.IsGlobal() {
		return
	}
	v.base.VisitNamespace(w, ns)
}
