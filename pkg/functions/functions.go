// Package functions holds the catalog of built-in DAX function signatures.
//
// The catalog is populated at package init from the per-family tables in
// this directory and is never mutated afterward, so it is safe for
// unbounded concurrent read access. Lookup is case-insensitive. A later
// registration for the same name overwrites the earlier one; this is used
// for doc-string refinement, not duplicate functions.
package functions

import (
	"sort"
	"strings"
)

// Family classifies DAX functions by their documented grouping.
type Family string

// Function families.
const (
	FamilyAggregation      Family = "aggregation"
	FamilyDateTime         Family = "date/time"
	FamilyFilter           Family = "filter"
	FamilyFinancial        Family = "financial"
	FamilyInformation      Family = "information"
	FamilyLogical          Family = "logical"
	FamilyMath             Family = "math/trig"
	FamilyRelationship     Family = "relationship"
	FamilyStatistical      Family = "statistical"
	FamilyTable            Family = "table"
	FamilyText             Family = "text"
	FamilyTimeIntelligence Family = "time-intelligence"
	FamilyVisual           Family = "visual-calculation"
)

// ParamType tags a parameter or return value.
type ParamType string

// Parameter and return types.
const (
	TypeExpression ParamType = "expression"
	TypeTable      ParamType = "table"
	TypeColumn     ParamType = "column"
	TypeNumber     ParamType = "number"
	TypeInteger    ParamType = "integer"
	TypeText       ParamType = "text"
	TypeBoolean    ParamType = "boolean"
	TypeDateTime   ParamType = "datetime"
	TypeVariant    ParamType = "variant"
)

// Parameter describes one ordered parameter of a function signature.
type Parameter struct {
	Name     string
	Type     ParamType
	Optional bool
}

// Signature describes a built-in DAX function.
type Signature struct {
	Name        string
	Description string
	Returns     ParamType
	Family      Family
	Parameters  []Parameter
}

// RequiredParameters returns the number of non-optional parameters.
// The grammar assumes that once a parameter is optional all following
// parameters are too; that invariant is not validated at registration.
func (s *Signature) RequiredParameters() int {
	n := 0
	for _, p := range s.Parameters {
		if !p.Optional {
			n++
		}
	}
	return n
}

// String renders the signature for display, e.g.
// "SUMX(table, expression) -> number".
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		if p.Optional {
			b.WriteByte('[')
			b.WriteString(p.Name)
			b.WriteByte(']')
		} else {
			b.WriteString(p.Name)
		}
	}
	b.WriteString(") -> ")
	b.WriteString(string(s.Returns))
	return b.String()
}

// registry maps lowercase function names to signatures.
var registry = make(map[string]*Signature)

// register adds a family table to the registry. Called from init only.
func register(sigs []Signature) {
	for i := range sigs {
		registry[strings.ToLower(sigs[i].Name)] = &sigs[i]
	}
}

// Lookup returns the signature for a function name (case-insensitive).
func Lookup(name string) (*Signature, bool) {
	s, ok := registry[strings.ToLower(name)]
	return s, ok
}

// All returns every registered signature sorted by name.
func All() []*Signature {
	result := make([]*Signature, 0, len(registry))
	for _, s := range registry {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Search returns signatures whose name starts with prefix
// (case-insensitive), sorted by name. An empty prefix returns everything.
func Search(prefix string) []*Signature {
	if prefix == "" {
		return All()
	}
	lower := strings.ToLower(prefix)
	var result []*Signature
	for name, s := range registry {
		if strings.HasPrefix(name, lower) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Count returns the number of registered functions.
func Count() int {
	return len(registry)
}

// sig builds a Signature; used by the family tables to keep entries short.
func sig(name string, fam Family, ret ParamType, desc string, ps ...Parameter) Signature {
	return Signature{Name: name, Family: fam, Returns: ret, Description: desc, Parameters: ps}
}

// req builds a required parameter.
func req(name string, t ParamType) Parameter {
	return Parameter{Name: name, Type: t}
}

// opt builds an optional parameter.
func opt(name string, t ParamType) Parameter {
	return Parameter{Name: name, Type: t, Optional: true}
}
