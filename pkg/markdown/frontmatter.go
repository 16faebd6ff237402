package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrFrontMatter indicates a malformed front matter block.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds the page settings a Markdown file may declare in a
// leading YAML block:
//
//	---
//	title: Getting Started
//	lang: de
//	---
type FrontMatter struct {
	Title       string `yaml:"title"`
	Lang        string `yaml:"lang"`
	Description string `yaml:"description"`
}

var fence = []byte("---")

// SplitFrontMatter separates a leading front matter block from the
// Markdown body. Sources without a block are returned unchanged with a
// zero FrontMatter. Unknown keys are rejected.
func SplitFrontMatter(src []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter

	first, rest, ok := cutLine(src)
	if !ok || !bytes.Equal(first, fence) {
		return fm, src, nil
	}

	var block []byte
	remaining := rest
	for {
		line, after, more := cutLine(remaining)
		if bytes.Equal(line, fence) {
			block = rest[:len(rest)-len(remaining)]
			remaining = after
			break
		}
		if !more {
			return fm, src, fmt.Errorf("%w: missing closing ---", ErrFrontMatter)
		}
		remaining = after
	}

	if len(bytes.TrimSpace(block)) > 0 {
		if err := yaml.UnmarshalWithOptions(block, &fm, yaml.Strict()); err != nil {
			return FrontMatter{}, src, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}
	return fm, remaining, nil
}

// cutLine splits off the first line, without its line ending. more is
// false when s held no line terminator.
func cutLine(s []byte) (line, rest []byte, more bool) {
	i := bytes.IndexByte(s, '\n')
	if i < 0 {
		return bytes.TrimSuffix(s, []byte("\r")), nil, false
	}
	return bytes.TrimSuffix(s[:i], []byte("\r")), s[i+1:], true
}
