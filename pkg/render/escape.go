package render

import "strings"

// EscapeText escapes s for use as HTML character data.
// Only &, < and > are replaced; every other byte is kept as is.
func EscapeText(s string) string {
	if strings.IndexAny(s, "&<>") < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	escapeText(&b, s)
	return b.String()
}

// EscapeAttr escapes s for use inside a double-quoted attribute value.
// &, ", < and > are replaced; every other byte is kept as is.
func EscapeAttr(s string) string {
	if strings.IndexAny(s, "&\"<>") < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	escapeAttr(&b, s)
	return b.String()
}

// escapeText writes s to w with text escaping applied.
// The input is scanned bytewise: the metacharacters are ASCII and never
// appear inside a multi-byte UTF-8 sequence, so invalid UTF-8 and NUL
// bytes pass through unchanged.
func escapeText(w sink, s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		default:
			continue
		}
		w.WriteString(s[last:i])
		w.WriteString(esc)
		last = i + 1
	}
	w.WriteString(s[last:])
}

// escapeAttr writes s to w with attribute-value escaping applied.
func escapeAttr(w sink, s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '"':
			esc = "&quot;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		default:
			continue
		}
		w.WriteString(s[last:i])
		w.WriteString(esc)
		last = i + 1
	}
	w.WriteString(s[last:])
}
