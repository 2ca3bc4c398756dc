package symbols

import "strings"

// Kind describes what declared a symbol
type Kind string

const (
	KindFunction Kind = "function"
	KindMethod   Kind = "method"
	KindType     Kind = "type"
	KindField    Kind = "field"
	KindConst    Kind = "const"
	KindVar      Kind = "var"
	KindSymbol   Kind = "symbol" // listed in a symbol file without a kind
)

// Symbol is one search candidate: a name plus its container chain,
// outermost container first.
type Symbol struct {
	Name       string   `json:"name" toml:"name"`
	Containers []string `json:"containers,omitempty" toml:"containers"`
	Kind       Kind     `json:"kind" toml:"kind"`
	Path       string   `json:"path,omitempty" toml:"-"`
	Line       int      `json:"line,omitempty" toml:"line"`
}

// Qualified returns the dotted name, e.g. "Foo.Bar.Baz.Quux"
func (s Symbol) Qualified() string {
	if len(s.Containers) == 0 {
		return s.Name
	}
	return strings.Join(s.Containers, ".") + "." + s.Name
}

// ParseQualified splits a dotted name into a symbol. The last element is the
// name, the rest are containers.
func ParseQualified(qualified string) Symbol {
	parts := strings.Split(qualified, ".")
	return Symbol{
		Name:       parts[len(parts)-1],
		Containers: parts[:len(parts)-1],
		Kind:       KindSymbol,
	}
}
