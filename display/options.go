package display

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// Options is a set of independent rendering toggles combined with bitwise OR.
type Options int

const (
	// UseAlias substitutes language keywords for well-known types (int vs Int32),
	// the indexer keyword for indexer names, and T? for Nullable<T>.
	UseAlias Options = 1 << iota

	// WithNamespace prefixes top-level types with their namespace.
	WithNamespace

	// WithTypeGenericParameter appends type-level generic arguments or parameters.
	WithTypeGenericParameter

	// WithParameter appends the parameter list of methods and indexers.
	WithParameter

	// WithType prefixes members with their containing type.
	WithType

	// WithMethodGenericParameter appends method-level generic arguments or parameters.
	WithMethodGenericParameter

	// WithNullableAnnotations appends ? to annotated type usages. It also
	// suppresses the ? that UseAlias adds when unwrapping Nullable<T>.
	WithNullableAnnotations
)

const (
	None                 Options = 0
	WithGenericParameter         = WithTypeGenericParameter | WithMethodGenericParameter
	Qualified                    = WithNamespace | WithType
	All                          = UseAlias | WithNamespace | WithTypeGenericParameter | WithParameter |
		WithType | WithMethodGenericParameter | WithNullableAnnotations
)

// Presets used when building documentation metadata.
const (
	NameOptions         = UseAlias | WithGenericParameter | WithParameter
	NameWithTypeOptions = NameOptions | WithType
	FullNameOptions     = NameOptions | Qualified
)

// ErrOptionsOutOfRange is returned for option values outside [None, All].
var ErrOptionsOutOfRange = errors.New("display: options out of range")

// OptionsError reports a rejected option value.
type OptionsError struct {
	Value  Options
	Reason string
}

func (e *OptionsError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("display: invalid options %d: %s", int(e.Value), e.Reason)
	}
	return fmt.Sprintf("display: options %d out of range [%d, %d]", int(e.Value), int(None), int(All))
}

func (e *OptionsError) Unwrap() error { return ErrOptionsOutOfRange }

// flagNames lists the single-bit options in bit order.
var flagNames = []struct {
	flag  Options
	name  string
	short string
}{
	{UseAlias, "UseAlias", "alias"},
	{WithNamespace, "WithNamespace", "namespace"},
	{WithTypeGenericParameter, "WithTypeGenericParameter", "type_generic"},
	{WithParameter, "WithParameter", "parameter"},
	{WithType, "WithType", "type"},
	{WithMethodGenericParameter, "WithMethodGenericParameter", "method_generic"},
	{WithNullableAnnotations, "WithNullableAnnotations", "nullable"},
}

// namedCombinations are accepted by ParseOptions in addition to single flags.
var namedCombinations = map[string]Options{
	"none":                 None,
	"all":                  All,
	"qualified":            Qualified,
	"generic":              WithGenericParameter,
	"withgenericparameter": WithGenericParameter,
	"name":                 NameOptions,
	"namewithtype":         NameWithTypeOptions,
	"fullname":             FullNameOptions,
}

// Has reports whether every bit of flag is set in o.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// Valid reports whether o lies in [None, All].
func (o Options) Valid() bool {
	return o >= None && o <= All
}

// Validate returns an *OptionsError when o lies outside [None, All].
func (o Options) Validate() error {
	if !o.Valid() {
		return &OptionsError{Value: o}
	}
	return nil
}

// String returns the set flags joined by "|", "None" for the empty set.
func (o Options) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Options(%d)", int(o))
	}
	if o == None {
		return "None"
	}
	var parts []string
	for _, f := range flagNames {
		if o.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseOptions parses a list of flag names separated by "," or "|".
// Both full names ("WithNamespace") and short names ("namespace") are accepted,
// case-insensitively, along with the combinations none, all, qualified,
// generic, name, namewithtype and fullname.
func ParseOptions(s string) (Options, error) {
	var o Options
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	for _, field := range fields {
		flag, ok := lookupFlag(field)
		if !ok {
			return None, fmt.Errorf("display: unknown option %q", field)
		}
		o |= flag
	}
	return o, nil
}

func lookupFlag(name string) (Options, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	if o, ok := namedCombinations[key]; ok {
		return o, true
	}
	for _, f := range flagNames {
		if key == strings.ToLower(f.name) || key == f.short {
			return f.flag, true
		}
	}
	return None, false
}

// optionForm is the form/query representation decoded by DecodeOptions.
type optionForm struct {
	UseAlias                   bool     `schema:"alias"`
	WithNamespace              bool     `schema:"namespace"`
	WithTypeGenericParameter   bool     `schema:"type_generic"`
	WithParameter              bool     `schema:"parameter"`
	WithType                   bool     `schema:"type"`
	WithMethodGenericParameter bool     `schema:"method_generic"`
	WithNullableAnnotations    bool     `schema:"nullable"`
	With                       []string `schema:"with"`
}

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	d.ZeroEmpty(true)
	return d
}

// DecodeOptions decodes options from form values, as in
// "alias=true&namespace=true" or "with=qualified&with=parameter".
// Unknown keys are rejected.
func DecodeOptions(values url.Values) (Options, error) {
	var form optionForm
	if err := formDecoder.Decode(&form, values); err != nil {
		return None, fmt.Errorf("display: decoding options: %w", err)
	}

	set := []struct {
		on   bool
		flag Options
	}{
		{form.UseAlias, UseAlias},
		{form.WithNamespace, WithNamespace},
		{form.WithTypeGenericParameter, WithTypeGenericParameter},
		{form.WithParameter, WithParameter},
		{form.WithType, WithType},
		{form.WithMethodGenericParameter, WithMethodGenericParameter},
		{form.WithNullableAnnotations, WithNullableAnnotations},
	}
	var o Options
	for _, s := range set {
		if s.on {
			o |= s.flag
		}
	}
	for _, w := range form.With {
		parsed, err := ParseOptions(w)
		if err != nil {
			return None, err
		}
		o |= parsed
	}
	return o, nil
}

// Values encodes o in the form accepted by DecodeOptions.
func (o Options) Values() url.Values {
	v := url.Values{}
	for _, f := range flagNames {
		if o.Has(f.flag) {
			v.Set(f.short, "true")
		}
	}
	return v
}
