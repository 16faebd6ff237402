package markdown

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the chroma style used by StyleSheet for an empty name.
const DefaultStyle = "github"

// StyleSheet returns the CSS for code blocks rendered without
// WithHighlighting, using the named chroma style.
func StyleSheet(style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}
	s := styles.Get(style)
	if s == nil || (s == styles.Fallback && style != styles.Fallback.Name) {
		return "", fmt.Errorf("unknown highlighting style %q", style)
	}

	var b strings.Builder
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}
