package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/funhtml-go/funhtml/pkg/node"
)

// Doctype is written before the root of a full document.
const Doctype = "<!DOCTYPE html>\n"

// Document is a complete renderable unit: one root node, optionally
// preceded by the HTML doctype. Documents are immutable.
type Document struct {
	root    node.Node
	doctype bool
}

// NewDocument creates a full document. It renders as Doctype followed
// by root.
func NewDocument(root node.Node) Document {
	return Document{root: root, doctype: true}
}

// NewFragment creates a document without a doctype, for partial
// responses.
func NewFragment(root node.Node) Document {
	return Document{root: root}
}

// Root returns the document's root node.
func (d Document) Root() node.Node {
	if d.root == nil {
		return node.None()
	}
	return d.root
}

// HasDoctype reports whether the document is rendered with a doctype.
func (d Document) HasDoctype() bool { return d.doctype }

// String renders the document in compact form.
func (d Document) String() string {
	return compact.RenderDocument(d)
}

// WriteTo streams the document to w. It implements io.WriterTo.
func (d Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := compact.WriteDocument(cw, d)
	return cw.n, err
}

// RenderDocument renders d to a string.
func (r *Renderer) RenderDocument(d Document) string {
	var b strings.Builder
	b.Grow(estimateSize(d.root) + len(Doctype))
	if d.doctype {
		b.WriteString(Doctype)
	}
	r.renderNode(&b, d.root, 0)
	return b.String()
}

// WriteDocument streams d to w.
func (r *Renderer) WriteDocument(w io.Writer, d Document) error {
	bw := bufio.NewWriterSize(w, min(max(estimateSize(d.root)+len(Doctype), 512), 64<<10))
	if d.doctype {
		bw.WriteString(Doctype)
	}
	r.renderNode(bw, d.root, 0)
	return bw.Flush()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
