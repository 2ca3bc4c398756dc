package patternmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentTexts(p *Pattern) [][]string {
	var out [][]string
	for _, seg := range p.Segments() {
		var words []string
		for _, sp := range seg.SubPatterns() {
			words = append(words, sp.Text())
		}
		out = append(out, words)
	}
	return out
}

func TestCompile(t *testing.T) {
	tests := []struct {
		query    string
		expected [][]string
	}{
		{"Foo", [][]string{{"Foo"}}},
		{"  Foo  ", [][]string{{"Foo"}}},
		{"add metadata", [][]string{{"add", "metadata"}}},
		{"K*W", [][]string{{"K", "W"}}},
		{"a * b\tc", [][]string{{"a", "b", "c"}}},
		{"B.Q", [][]string{{"B"}, {"Q"}}},
		{"F.B.B.Quux", [][]string{{"F"}, {"B"}, {"B"}, {"Quux"}}},
		{"Foo Bar.baz", [][]string{{"Foo", "Bar"}, {"baz"}}},
		{"`a.b c`", [][]string{{"a.b c"}}},
		{"Outer.`in.ner`", [][]string{{"Outer"}, {"in.ner"}}},
		{"`unterminated", [][]string{{"`unterminated"}}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p, err := Compile(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, segmentTexts(p))
		})
	}
}

func TestCompileEmpty(t *testing.T) {
	for _, query := range []string{"", " ", "\t\n", "*", " * ", "Foo.", ".Foo", "a..b", "``"} {
		t.Run(query, func(t *testing.T) {
			p, err := Compile(query)
			assert.ErrorIs(t, err, ErrEmptyPattern)
			assert.Nil(t, p)
		})
	}
}

func TestCompileChunks(t *testing.T) {
	tests := []struct {
		query    string
		expected []string
	}{
		{"FB", []string{"F", "B"}},
		{"SiUI", []string{"Si", "U", "I"}},
		{"fB", []string{"f", "B"}},
		{"_fB", []string{"_", "f", "B"}},
		{"AMRe", []string{"A", "M", "Re"}},
		{"foo", []string{"foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := MustCompile(tt.query)
			subs := p.NameSegment().SubPatterns()
			require.Len(t, subs, 1)
			assert.Equal(t, tt.expected, subs[0].Chunks())
		})
	}
}

func TestCompileFlags(t *testing.T) {
	p := MustCompile("`Foo.Bar` baz")
	subs := p.NameSegment().SubPatterns()
	require.Len(t, subs, 2)

	assert.True(t, subs[0].Verbatim())
	assert.False(t, subs[0].IsLowerCase())
	assert.False(t, subs[1].Verbatim())
	assert.True(t, subs[1].IsLowerCase())
	assert.False(t, p.IsQualified())
	assert.Equal(t, "`Foo.Bar` baz", p.NameSegment().String())

	assert.True(t, MustCompile("A.B").IsQualified())
	assert.Panics(t, func() { MustCompile(" ") })
}
