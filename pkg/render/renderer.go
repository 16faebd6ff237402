package render

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/funhtml-go/funhtml/pkg/node"
)

// Config configures a Renderer.
type Config struct {
	// Pretty enables indented output.
	// Should only be used in development as it adds whitespace.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes node trees. It holds no state besides its
// configuration and is safe for concurrent use.
type Renderer struct {
	config Config
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

var compact = NewRenderer(Config{})

// Render renders n to a string in compact form.
func Render(n node.Node) string {
	return compact.Render(n)
}

// Write streams n to w in compact form.
// The only possible error is one returned by w.
func Write(w io.Writer, n node.Node) error {
	return compact.Write(w, n)
}

// Append appends the compact rendering of n to dst and returns the
// extended buffer.
func Append(dst []byte, n node.Node) []byte {
	s := appendSink{buf: dst}
	compact.renderNode(&s, n, 0)
	return s.buf
}

// Render renders n to a string.
func (r *Renderer) Render(n node.Node) string {
	var b strings.Builder
	b.Grow(estimateSize(n))
	r.renderNode(&b, n, 0)
	return b.String()
}

// Write streams n to w.
func (r *Renderer) Write(w io.Writer, n node.Node) error {
	bw := bufio.NewWriterSize(w, min(max(estimateSize(n), 512), 64<<10))
	r.renderNode(bw, n, 0)
	return bw.Flush()
}

// sink is the subset of strings.Builder and bufio.Writer the renderer
// needs. bufio.Writer keeps the first write error and ignores later
// writes, so render functions don't check errors.
type sink interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

type appendSink struct {
	buf []byte
}

func (s *appendSink) WriteString(v string) (int, error) {
	s.buf = append(s.buf, v...)
	return len(v), nil
}

func (s *appendSink) WriteByte(c byte) error {
	s.buf = append(s.buf, c)
	return nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w sink, n node.Node, depth int) {
	switch v := n.(type) {
	case nil, node.EmptyNode:
	case node.TextNode:
		if r.config.Pretty {
			r.writeIndent(w, depth)
			escapeText(w, v.Value())
			w.WriteByte('\n')
			return
		}
		escapeText(w, v.Value())
	case node.RawNode:
		if r.config.Pretty {
			r.writeIndent(w, depth)
			w.WriteString(v.HTML())
			w.WriteByte('\n')
			return
		}
		w.WriteString(v.HTML())
	case node.VoidElement:
		if r.config.Pretty {
			r.writeIndent(w, depth)
		}
		w.WriteByte('<')
		w.WriteString(v.Tag())
		renderAttrs(w, v.Attrs())
		w.WriteByte('>')
		if r.config.Pretty {
			w.WriteByte('\n')
		}
	case node.Element:
		r.renderElement(w, v, depth)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w sink, el node.Element, depth int) {
	tag := el.Tag()

	if r.config.Pretty {
		r.writeIndent(w, depth)
	}

	w.WriteByte('<')
	w.WriteString(tag)
	renderAttrs(w, el.Attrs())
	w.WriteByte('>')

	if r.config.Pretty && isBlock(el) {
		w.WriteByte('\n')
		for child := range el.Children() {
			r.renderNode(w, child, depth+1)
		}
		r.writeIndent(w, depth)
	} else {
		for child := range el.Children() {
			compact.renderNode(w, child, 0)
		}
	}

	w.WriteString("</")
	w.WriteString(tag)
	w.WriteByte('>')
	if r.config.Pretty {
		w.WriteByte('\n')
	}
}

// renderAttrs renders attributes in order, each with a leading space.
func renderAttrs(w sink, attrs iter.Seq[node.Attribute]) {
	for a := range attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name())
		if value, ok := a.Value(); ok {
			w.WriteString(`="`)
			escapeAttr(w, value)
			w.WriteByte('"')
		}
	}
}

// isBlock reports whether a pretty-printed element puts each child on
// its own line. Inline elements, whitespace-sensitive elements and
// elements holding only text stay on one line.
func isBlock(el node.Element) bool {
	if el.NumChildren() == 0 || layoutOf(el.Tag()) != layoutBlock {
		return false
	}
	for child := range el.Children() {
		switch v := child.(type) {
		case node.Element:
			if layoutOf(v.Tag()) != layoutInline {
				return true
			}
		case node.VoidElement:
			if layoutOf(v.Tag()) != layoutInline {
				return true
			}
		}
	}
	return false
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w sink, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}

// estimateSize returns a rough size of the rendered output, used to
// pre-size buffers.
func estimateSize(n node.Node) int {
	switch v := n.(type) {
	case node.TextNode:
		return len(v.Value()) + len(v.Value())/8
	case node.RawNode:
		return len(v.HTML())
	case node.VoidElement:
		return len(v.Tag()) + 2 + attrsSize(v.Attrs())
	case node.Element:
		size := 2*len(v.Tag()) + 5 + attrsSize(v.Attrs())
		for child := range v.Children() {
			size += estimateSize(child)
		}
		return size
	default:
		return 0
	}
}

func attrsSize(attrs iter.Seq[node.Attribute]) int {
	size := 0
	for a := range attrs {
		value, _ := a.Value()
		size += len(a.Name()) + len(value) + 4
	}
	return size
}
