// Package query assembles request URLs from an ordered set of named
// parameters. Values are written as given, without percent-encoding, so
// callers that need an API-specific encoding (spaces as '+', pipe separated
// lists) express it through list separators and replacements.
package query

import "strings"

// Value is either a Scalar or a List.
type Value interface {
	encode() string
}

// Scalar is a single parameter value.
type Scalar string

func (s Scalar) encode() string {
	return string(s)
}

// List is a parameter value made of several elements joined with Separator.
type List struct {
	Separator string
	Elements  []string
}

// NewList builds a List joining elems with sep.
func NewList(sep string, elems ...string) List {
	return List{Separator: sep, Elements: elems}
}

func (l List) encode() string {
	return strings.Join(l.Elements, l.Separator)
}

type Param struct {
	Name  string
	Value Value
}

// Params keeps parameters in insertion order, which is the order they are
// written to the URL.
type Params []Param

func (p Params) Add(name string, v Value) Params {
	return append(p, Param{Name: name, Value: v})
}

// Replacement swaps every occurrence of Pattern with With in the assembled
// URL.
type Replacement struct {
	Pattern string
	With    string
}

// SpaceToPlus encodes spaces the way form-style query strings expect.
var SpaceToPlus = Replacement{Pattern: " ", With: "+"}

const separator = "&"

// Build concatenates baseURL with every parameter as name=value&, applies
// the replacements in order and drops the trailing separator. With no params
// the base URL is returned untouched.
func Build(baseURL string, params Params, replacements ...Replacement) string {
	var sb strings.Builder
	sb.WriteString(baseURL)

	for _, p := range params {
		sb.WriteString(p.Name)
		sb.WriteString("=")
		if p.Value != nil {
			sb.WriteString(p.Value.encode())
		}
		sb.WriteString(separator)
	}

	full := sb.String()
	for _, r := range replacements {
		// An empty pattern matches between every rune.
		if r.Pattern == "" {
			continue
		}

		full = strings.ReplaceAll(full, r.Pattern, r.With)
	}

	if len(params) == 0 {
		return full
	}

	return strings.TrimSuffix(full, separator)
}
