package patternmatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPattern is returned by Compile when the query holds nothing to
// match. Callers pick the policy: match nothing or match everything.
var ErrEmptyPattern = errors.New("empty pattern")

// verbatimMarker wraps text that must be matched literally, e.g. `a.b c`
const verbatimMarker = '`'

// SubPattern is one whitespace- or '*'-delimited token of a segment
type SubPattern struct {
	text      string
	lower     string
	chunks    []TextSpan
	lowerCase bool
	verbatim  bool
}

func newSubPattern(text string, verbatim bool) SubPattern {
	lower := lowerASCII(text)
	return SubPattern{
		text:      text,
		lower:     lower,
		chunks:    CharacterSpans(text),
		lowerCase: text == lower,
		verbatim:  verbatim,
	}
}

// Text returns the token as typed, without verbatim markers
func (sp SubPattern) Text() string { return sp.text }

// Verbatim reports whether the token came from a `...` run
func (sp SubPattern) Verbatim() bool { return sp.verbatim }

// IsLowerCase reports whether the token has no uppercase letters. Such tokens
// are matched case-insensitively and never as camel case.
func (sp SubPattern) IsLowerCase() bool { return sp.lowerCase }

// Chunks returns the camel-case pieces of the token
func (sp SubPattern) Chunks() []string {
	out := make([]string, len(sp.chunks))
	for i, c := range sp.chunks {
		out[i] = c.In(sp.text)
	}
	return out
}

// Segment is the conjunction of the sub-patterns between two dots
type Segment struct {
	subPatterns []SubPattern
}

// SubPatterns returns a copy of the segment's tokens
func (s Segment) SubPatterns() []SubPattern {
	return append([]SubPattern(nil), s.subPatterns...)
}

func (s Segment) String() string {
	parts := make([]string, len(s.subPatterns))
	for i, sp := range s.subPatterns {
		if sp.verbatim {
			parts[i] = string(verbatimMarker) + sp.text + string(verbatimMarker)
		} else {
			parts[i] = sp.text
		}
	}
	return strings.Join(parts, " ")
}

// Pattern is a compiled query. It is immutable after Compile and safe for
// concurrent use against any number of candidates.
type Pattern struct {
	raw      string
	segments []Segment
}

// Compile parses a raw query. The text is split on '.' into segments and each
// segment on whitespace and '*' into sub-patterns. Backquoted runs are kept
// literally; an unterminated backquote is an ordinary character.
func Compile(raw string) (*Pattern, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyPattern
	}

	tokens := tokenize(trimmed)
	segments := make([]Segment, len(tokens))
	for i, segTokens := range tokens {
		if len(segTokens) == 0 {
			return nil, fmt.Errorf("%w: segment %d of %q has no text", ErrEmptyPattern, i+1, trimmed)
		}
		subs := make([]SubPattern, len(segTokens))
		for j, tok := range segTokens {
			subs[j] = newSubPattern(tok.text, tok.verbatim)
		}
		segments[i] = Segment{subPatterns: subs}
	}

	return &Pattern{raw: trimmed, segments: segments}, nil
}

// MustCompile is like Compile but panics on an empty pattern
func MustCompile(raw string) *Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the trimmed query the pattern was compiled from
func (p *Pattern) String() string { return p.raw }

// Segments returns a copy of the dot-separated segments, outermost first
func (p *Pattern) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// NameSegment returns the last segment, matched against candidate names
func (p *Pattern) NameSegment() Segment {
	return p.segments[len(p.segments)-1]
}

// IsQualified reports whether the pattern has container segments
func (p *Pattern) IsQualified() bool {
	return len(p.segments) > 1
}

type token struct {
	text     string
	verbatim bool
}

// tokenize splits the query into segments of tokens. Empty tokens are
// dropped; empty segments are kept so Compile can reject them.
func tokenize(query string) [][]token {
	var (
		segments [][]token
		current  []token
		buf      strings.Builder
		verbatim bool
	)

	flushToken := func() {
		if buf.Len() > 0 {
			current = append(current, token{text: buf.String(), verbatim: verbatim})
		}
		buf.Reset()
		verbatim = false
	}
	flushSegment := func() {
		flushToken()
		segments = append(segments, current)
		current = nil
	}

	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == verbatimMarker:
			end := strings.IndexByte(query[i+1:], verbatimMarker)
			if end < 0 {
				buf.WriteByte(ch)
				continue
			}
			buf.WriteString(query[i+1 : i+1+end])
			verbatim = true
			i += end + 1
		case ch == '.':
			flushSegment()
		case ch == '*' || isSpace(ch):
			flushToken()
		default:
			buf.WriteByte(ch)
		}
	}
	flushSegment()

	return segments
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
