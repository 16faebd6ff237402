// Package markdown converts Markdown source into nodes that can be placed
// anywhere in a document tree.
//
// Conversion uses goldmark with GitHub Flavored Markdown, footnotes,
// heading IDs and chroma syntax highlighting. Raw HTML in the source is
// not passed through: goldmark replaces it with a comment, so the output
// is safe to embed with node.RawUnsafe.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/funhtml-go/funhtml/pkg/node"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrConversion indicates goldmark failed to render the source.
var ErrConversion = errors.New("markdown conversion failed")

type config struct {
	style     string
	hardWraps bool
}

// Option configures a Converter.
type Option func(*config)

// WithHighlighting renders code blocks with inline colors from the named
// chroma style (for example "github" or "monokai"). Without it code
// blocks carry chroma CSS classes and need an external stylesheet.
func WithHighlighting(style string) Option {
	return func(c *config) {
		c.style = style
	}
}

// WithHardWraps renders newlines inside paragraphs as <br>.
func WithHardWraps() Option {
	return func(c *config) {
		c.hardWraps = true
	}
}

// Converter converts Markdown to nodes. It is safe for concurrent use.
type Converter struct {
	md goldmark.Markdown
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	hl := []highlighting.Option{
		highlighting.WithFormatOptions(chromahtml.WithClasses(cfg.style == "")),
	}
	if cfg.style != "" {
		hl = append(hl, highlighting.WithStyle(cfg.style))
	}

	var rendererOpts []goldmark.Option
	if cfg.hardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(hl...),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, rendererOpts...)...)

	return &Converter{md: md}
}

// Convert renders src to a raw node holding the generated HTML.
func (c *Converter) Convert(src []byte) (node.Node, error) {
	var buf bytes.Buffer
	buf.Grow(len(src) + len(src)/2)
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return node.RawUnsafe(buf.String()), nil
}

// ConvertContext is Convert with cancellation. goldmark has no context
// support, so the conversion keeps running in the background after ctx
// is done.
func (c *Converter) ConvertContext(ctx context.Context, src []byte) (node.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		n   node.Node
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := c.Convert(src)
		done <- result{n, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.n, r.err
	}
}

// Title returns the text of the first level-one heading in src, or ""
// when there is none.
func Title(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return strings.TrimSpace(string(h.Text(src)))
		}
	}
	return ""
}
