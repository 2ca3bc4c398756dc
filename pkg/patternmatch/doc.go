// Package patternmatch implements the fuzzy identifier matcher behind
// "navigate to symbol" search.
//
// A query is compiled once into an immutable Pattern and then matched against
// any number of candidates, concurrently if desired. Each match is classified
// by MatchKind (Exact, Prefix, CamelCase or Substring, strongest first) and
// tagged with whether it held case-sensitively.
//
// # Query Syntax
//
//	Foo           one sub-pattern matched against the name
//	add meta      both words must match the name (also "add*meta")
//	Baz.Quux      "Quux" against the name, "Baz" against a container
//	`a.b`         backquotes match the text literally
//
// # Identifier Spans
//
// Two tokenizers are exported for callers that need identifier decomposition
// on their own, for example to highlight matched humps:
//
//	CharacterSpans("UIElement") // U, I, Element
//	WordSpans("UIElement")      // UI, Element
//
// # Usage Example
//
//	p, err := patternmatch.Compile("B.Q")
//	if errors.Is(err, patternmatch.ErrEmptyPattern) {
//		// decide: show nothing or show everything
//	}
//	m, ok := p.MatchQualified([]string{"Foo", "Bar", "Baz"}, "Quux")
//	// m.Kind == patternmatch.Prefix, m.IsCaseSensitive == true
//
// Alignment of camel-case chunks and of qualifier segments is greedy and never
// backtracks, so a match costs time linear in the candidate length.
package patternmatch
