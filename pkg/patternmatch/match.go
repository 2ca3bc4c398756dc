package patternmatch

import "strings"

// Match classifies how the sub-pattern matches candidate. Exact and prefix
// come first. A mixed-case pattern then takes a case-sensitive substring hit
// over camel-case, and falls back to camel-case for any casing.
func (sp SubPattern) Match(candidate string) (MatchInfo, bool) {
	lowerCandidate := lowerASCII(candidate)
	index := strings.Index(lowerCandidate, sp.lower)
	if index == 0 {
		kind := Prefix
		if len(sp.text) == len(candidate) {
			kind = Exact
		}
		return MatchInfo{Kind: kind, IsCaseSensitive: strings.HasPrefix(candidate, sp.text)}, true
	}

	if sp.lowerCase {
		if index < 0 {
			return MatchInfo{}, false
		}
		return sp.matchLowerCaseSubstring(candidate, index)
	}

	// A pattern with uppercase letters states its casing; no insensitive
	// substring retry.
	if index > 0 && strings.Contains(candidate, sp.text) {
		return MatchInfo{Kind: Substring, IsCaseSensitive: true}, true
	}

	if !sp.verbatim && len(sp.chunks) > 0 {
		humps := WordSpans(candidate)
		if sp.matchCamelCase(candidate, humps, false) {
			return MatchInfo{Kind: CamelCase, IsCaseSensitive: true}, true
		}
		if sp.matchCamelCase(candidate, humps, true) {
			return MatchInfo{Kind: CamelCase, IsCaseSensitive: false}, true
		}
	}
	return MatchInfo{}, false
}

// matchLowerCaseSubstring accepts an all-lowercase pattern only where it reads
// as the start of a word: as a prefix of one of the candidate's humps, or at
// its first insensitive occurrence when that lands on an uppercase letter.
// "a" matches FooAttribute but not Operator.
func (sp SubPattern) matchLowerCaseSubstring(candidate string, firstIndex int) (MatchInfo, bool) {
	found := false
	for _, hump := range WordSpans(candidate) {
		if !partStartsWith(candidate, hump, sp.text, true) {
			continue
		}
		if partStartsWith(candidate, hump, sp.text, false) {
			return MatchInfo{Kind: Substring, IsCaseSensitive: true}, true
		}
		found = true
	}
	if found {
		return MatchInfo{Kind: Substring, IsCaseSensitive: false}, true
	}

	if len(sp.text) < len(candidate) && isUpper(candidate[firstIndex]) {
		return MatchInfo{Kind: Substring, IsCaseSensitive: strings.Contains(candidate, sp.text)}, true
	}
	return MatchInfo{}, false
}

// matchCamelCase aligns the pattern chunks with the candidate humps in one
// forward pass. Each hump is visited once; humps that match nothing are
// skipped. A hump may absorb several chunks only while consecutive chunks
// both start uppercase, which lets "SiUI" consume the "UI" of SimpleUIElement.
func (sp SubPattern) matchCamelCase(candidate string, humps []TextSpan, ignoreCase bool) bool {
	chunk := 0
	for _, hump := range humps {
		if chunk == len(sp.chunks) {
			return true
		}

		rest := hump
		matchedHere := false
		for ; chunk < len(sp.chunks); chunk++ {
			part := sp.chunks[chunk]
			if matchedHere {
				prev := sp.chunks[chunk-1]
				if !isUpper(sp.text[prev.Start]) || !isUpper(sp.text[part.Start]) {
					break
				}
			}
			if !partStartsWith(candidate, rest, part.In(sp.text), ignoreCase) {
				break
			}
			matchedHere = true
			rest = TextSpan{Start: rest.Start + part.Length, Length: rest.Length - part.Length}
		}
	}
	return chunk == len(sp.chunks)
}

// partStartsWith reports whether the span of candidate begins with pattern.
// A pattern longer than the span never matches.
func partStartsWith(candidate string, span TextSpan, pattern string, ignoreCase bool) bool {
	if len(pattern) > span.Length {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		a, b := pattern[i], candidate[span.Start+i]
		if ignoreCase {
			a, b = toLower(a), toLower(b)
		}
		if a != b {
			return false
		}
	}
	return true
}

// Match requires every sub-pattern to match candidate. The result carries
// the strongest kind seen and is case-sensitive only if all parts were.
func (s Segment) Match(candidate string) (MatchInfo, bool) {
	var result MatchInfo
	for i, sp := range s.subPatterns {
		m, ok := sp.Match(candidate)
		if !ok {
			return MatchInfo{}, false
		}
		if i == 0 {
			result = m
			continue
		}
		result = result.strongest(m)
	}
	return result, len(s.subPatterns) > 0
}

// MatchName matches only the last segment against a bare candidate name
func (p *Pattern) MatchName(name string) (MatchInfo, bool) {
	return p.NameSegment().Match(name)
}

// MatchQualified matches the last segment against name and the remaining
// segments against containers, ordered outermost to innermost.
//
// Qualifier segments are aligned in a single backward pass: each one claims
// the nearest unclaimed container, innermost first, that it matches;
// containers in between are skipped and never revisited.
func (p *Pattern) MatchQualified(containers []string, name string) (MatchInfo, bool) {
	result, ok := p.MatchName(name)
	if !ok {
		return MatchInfo{}, false
	}

	qualifiers := p.segments[:len(p.segments)-1]
	if len(qualifiers) > len(containers) {
		return MatchInfo{}, false
	}

	j := len(containers) - 1
	for i := len(qualifiers) - 1; i >= 0; i-- {
		matched := false
		for ; j >= i; j-- {
			if m, ok := qualifiers[i].Match(containers[j]); ok {
				result = result.weakest(m)
				matched = true
				j--
				break
			}
		}
		if !matched {
			return MatchInfo{}, false
		}
	}
	return result, true
}
