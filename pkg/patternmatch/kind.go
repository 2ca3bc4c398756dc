package patternmatch

import "fmt"

// MatchKind classifies how a pattern matched a candidate. Lower values are
// stronger: Exact > Prefix > CamelCase > Substring.
type MatchKind int

const (
	Exact MatchKind = iota
	Prefix
	CamelCase
	Substring
)

func (k MatchKind) String() string {
	switch k {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case CamelCase:
		return "camel_case"
	case Substring:
		return "substring"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
}

// Stronger reports whether k ranks above other
func (k MatchKind) Stronger(other MatchKind) bool {
	return k < other
}

// MatchInfo is the outcome of a successful match. A failed match is reported
// through the accompanying bool, never as a MatchInfo value.
type MatchInfo struct {
	Kind            MatchKind
	IsCaseSensitive bool
}

// Better reports whether m should be preferred over other: a stronger kind
// wins, and within one kind a case-sensitive match wins.
func (m MatchInfo) Better(other MatchInfo) bool {
	if m.Kind != other.Kind {
		return m.Kind.Stronger(other.Kind)
	}
	return m.IsCaseSensitive && !other.IsCaseSensitive
}

func (m MatchInfo) String() string {
	if m.IsCaseSensitive {
		return m.Kind.String()
	}
	return m.Kind.String() + " (ignore case)"
}

// strongest merges the results of conjunctive sub-patterns
func (m MatchInfo) strongest(other MatchInfo) MatchInfo {
	kind := m.Kind
	if other.Kind.Stronger(kind) {
		kind = other.Kind
	}
	return MatchInfo{Kind: kind, IsCaseSensitive: m.IsCaseSensitive && other.IsCaseSensitive}
}

// weakest merges a name match with its qualifier matches; a qualified match
// is only as good as its loosest part.
func (m MatchInfo) weakest(other MatchInfo) MatchInfo {
	kind := m.Kind
	if kind.Stronger(other.Kind) {
		kind = other.Kind
	}
	return MatchInfo{Kind: kind, IsCaseSensitive: m.IsCaseSensitive && other.IsCaseSensitive}
}
