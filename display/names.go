package display

import "github.com/broady/apiname/symbol"

// Names are the display strings a documentation metadata builder records for
// one symbol in one projection.
type Names struct {
	// Name is the short display name: List<T>, Add(T), this[int].
	Name string

	// NameWithType prefixes members with their containing type: List<T>.Add(T).
	NameWithType string

	// FullName is additionally namespace-qualified: System.Collections.Generic.List<T>.Add(T).
	FullName string
}

// Describe renders the three metadata names of s in projection p.
func Describe(s symbol.Symbol, p Projection) (Names, error) {
	var names Names
	targets := []struct {
		dst  *string
		opts Options
	}{
		{&names.Name, NameOptions},
		{&names.NameWithType, NameWithTypeOptions},
		{&names.FullName, FullNameOptions},
	}
	for _, t := range targets {
		out, err := Render(s, p, t.opts)
		if err != nil {
			return Names{}, err
		}
		*t.dst = out
	}
	return names, nil
}

// DescribeAll renders the metadata names of s in every projection.
func DescribeAll(s symbol.Symbol) (map[Projection]Names, error) {
	result := make(map[Projection]Names, projectionCount)
	for _, p := range Projections() {
		names, err := Describe(s, p)
		if err != nil {
			return nil, err
		}
		result[p] = names
	}
	return result, nil
}
