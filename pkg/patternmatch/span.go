package patternmatch

// TextSpan is a half-open byte range into an identifier or pattern string
type TextSpan struct {
	Start  int
	Length int
}

// End returns the offset one past the last byte of the span
func (s TextSpan) End() int {
	return s.Start + s.Length
}

// In returns the substring of text covered by the span
func (s TextSpan) In(text string) string {
	return text[s.Start:s.End()]
}

// CharacterSpans breaks an identifier at the finest grain: every uppercase
// letter starts a new span, so "UIElement" becomes U, I, Element.
// Query text is chunked this way before camel-case alignment.
func CharacterSpans(identifier string) []TextSpan {
	return breakIntoSpans(identifier, false)
}

// WordSpans breaks an identifier into humps, keeping acronyms together:
// "UIElement" becomes UI, Element and "XDocument" becomes X, Document.
// Candidate names are split this way for camel-case alignment.
func WordSpans(identifier string) []TextSpan {
	return breakIntoSpans(identifier, true)
}

// breakIntoSpans scans left to right and cuts on punctuation, digit runs and
// case transitions. Underscores survive as one-byte spans; every other
// punctuation character only acts as a boundary.
func breakIntoSpans(identifier string, word bool) []TextSpan {
	var spans []TextSpan

	wordStart := 0
	for i := 1; i < len(identifier); i++ {
		lastIsDigit := isDigit(identifier[i-1])
		currentIsDigit := isDigit(identifier[i])

		lowerToUpper := transitionFromLowerToUpper(identifier, word, i)
		upperToLower := word && transitionFromUpperToLower(identifier, i, wordStart)

		if isPunctuation(identifier[i-1]) ||
			isPunctuation(identifier[i]) ||
			lastIsDigit != currentIsDigit ||
			lowerToUpper ||
			upperToLower {
			if !isAllPunctuation(identifier, wordStart, i) {
				spans = append(spans, TextSpan{Start: wordStart, Length: i - wordStart})
			}
			wordStart = i
		}
	}

	if !isAllPunctuation(identifier, wordStart, len(identifier)) {
		spans = append(spans, TextSpan{Start: wordStart, Length: len(identifier) - wordStart})
	}

	return spans
}

// transitionFromLowerToUpper reports whether index starts a new hump because
// of its case. Breaking on characters any uppercase letter counts; breaking on
// words the previous character must not be uppercase too.
func transitionFromLowerToUpper(identifier string, word bool, index int) bool {
	lastIsUpper := isUpper(identifier[index-1])
	currentIsUpper := isUpper(identifier[index])

	if word {
		return currentIsUpper && !lastIsUpper
	}
	return currentIsUpper
}

// transitionFromUpperToLower detects the last letter of an acronym that
// begins the next word: in "XMLDocument" the D starts "Document". Only fires
// when everything since wordStart is uppercase, so "Foo" stays whole.
func transitionFromUpperToLower(identifier string, index, wordStart int) bool {
	if index == wordStart || index+1 >= len(identifier) {
		return false
	}
	if !isUpper(identifier[index]) || !isLower(identifier[index+1]) {
		return false
	}
	for i := wordStart; i < index; i++ {
		if !isUpper(identifier[i]) {
			return false
		}
	}
	return true
}

func isAllPunctuation(identifier string, start, end int) bool {
	for i := start; i < end; i++ {
		if !isPunctuation(identifier[i]) || identifier[i] == '_' {
			return false
		}
	}
	return true
}

func isPunctuation(ch byte) bool {
	switch ch {
	case '!', '"', '#', '%', '&', '\'', '(', ')', '*', ',', '-', '.', '/',
		':', ';', '?', '@', '[', '\\', ']', '_', '{', '}':
		return true
	}
	return false
}

func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func toLower(ch byte) byte {
	if isUpper(ch) {
		return ch + ('a' - 'A')
	}
	return ch
}

// lowerASCII folds A-Z only. Byte offsets stay aligned with the input, which
// strings.ToLower does not promise for every rune.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if isUpper(s[i]) {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = toLower(b[j])
			}
			return string(b)
		}
	}
	return s
}
