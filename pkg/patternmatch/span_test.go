package patternmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func spanTexts(identifier string, spans []TextSpan) []string {
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.In(identifier))
	}
	return out
}

func TestCharacterSpans(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   []string
	}{
		{"empty identifier", "", []string{}},
		{"simple", "foo", []string{"foo"}},
		{"prefix underscore", "_foo", []string{"_", "foo"}},
		{"middle underscore", "f_oo", []string{"f", "_", "oo"}},
		{"postfix underscore", "foo_", []string{"foo", "_"}},
		{"prefix underscore with capital", "_Foo", []string{"_", "Foo"}},
		{"m underscore prefix", "m_foo", []string{"m", "_", "foo"}},
		{"camel case", "FogBar", []string{"Fog", "Bar"}},
		{"mixed case", "fogBar", []string{"fog", "Bar"}},
		{"two capitals", "UIElement", []string{"U", "I", "Element"}},
		{"number suffix", "Foo42", []string{"Foo", "42"}},
		{"number inside", "Fog42Bar", []string{"Fog", "42", "Bar"}},
		{"number prefix", "42Bar", []string{"42", "Bar"}},
		{"double underscore", "__", []string{"_", "_"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, spanTexts(tt.identifier, CharacterSpans(tt.identifier)))
		})
	}
}

func TestWordSpans(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   []string
	}{
		{"empty identifier", "", []string{}},
		{"punctuation dropped", "@int:", []string{"int"}},
		{"all caps constant", "C_STYLE_CONSTANT", []string{"C", "_", "STYLE", "_", "CONSTANT"}},
		{"single letter prefix U", "UInteger", []string{"U", "Integer"}},
		{"single letter prefix I", "IDisposable", []string{"I", "Disposable"}},
		{"two capitals", "UIElement", []string{"UI", "Element"}},
		{"one letter acronym", "XDocument", []string{"X", "Document"}},
		{"acronym", "XMLDocument", []string{"XML", "Document"}},
		{"capitalised acronym", "XmlDocument", []string{"Xml", "Document"}},
		{"acronym in the middle", "SimpleUIElement", []string{"Simple", "UI", "Element"}},
		{"acronym before digits", "HTTP2Server", []string{"HTTP", "2", "Server"}},
		{"trailing acronym", "parseJSON", []string{"parse", "JSON"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, spanTexts(tt.identifier, WordSpans(tt.identifier)))
		})
	}
}

func TestSpansCoverIdentifier(t *testing.T) {
	identifiers := []string{
		"", "a", "_", "foo_bar", "FogBar", "UIElement", "XMLHttpRequest",
		"C_STYLE_CONSTANT", "getUserByID_v2", "Fog42Bar42", "__init__",
		"AbstractHTTPSConnectionPoolManager", "x1y2z3", "ÜberType",
	}

	for _, id := range identifiers {
		t.Run(id, func(t *testing.T) {
			chars := CharacterSpans(id)
			words := WordSpans(id)

			assert.Equal(t, id, strings.Join(spanTexts(id, chars), ""), "character spans must rebuild the identifier")
			assert.Equal(t, id, strings.Join(spanTexts(id, words), ""), "word spans must rebuild the identifier")
			assert.LessOrEqual(t, len(words), len(chars), "word spans only coarsen")

			for i := 1; i < len(words); i++ {
				assert.Equal(t, words[i-1].End(), words[i].Start, "spans must be contiguous")
			}
		})
	}
}
