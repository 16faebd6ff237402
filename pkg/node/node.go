package node

import "iter"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindEmpty       Kind = iota // Renders nothing
	KindText                    // Escaped character data
	KindRaw                     // Trusted markup (dangerous)
	KindElement                 // <div>...</div>
	KindVoidElement             // <br>, <img>, ...
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindElement:
		return "Element"
	case KindVoidElement:
		return "VoidElement"
	default:
		return "Unknown"
	}
}

// Node is a node of the document tree.
//
// The interface is sealed: the only implementations are EmptyNode,
// TextNode, RawNode, Element and VoidElement. A nil Node behaves
// like EmptyNode.
type Node interface {
	Kind() Kind
	sealed()
}

// EmptyNode renders nothing.
type EmptyNode struct{}

// Kind implements Node.
func (EmptyNode) Kind() Kind { return KindEmpty }
func (EmptyNode) sealed()    {}

// TextNode is character data that is escaped when rendered.
type TextNode struct {
	value string
}

// Kind implements Node.
func (TextNode) Kind() Kind { return KindText }
func (TextNode) sealed()    {}

// Value returns the unescaped text.
func (t TextNode) Value() string { return t.value }

// RawNode is markup that is rendered without escaping.
type RawNode struct {
	html string
}

// Kind implements Node.
func (RawNode) Kind() Kind { return KindRaw }
func (RawNode) sealed()    {}

// HTML returns the markup exactly as it was supplied to RawUnsafe.
func (r RawNode) HTML() string { return r.html }

// Element is a standard element with attributes, children and a closing tag.
type Element struct {
	tag      string
	attrs    []Attribute
	children []Node
}

// Kind implements Node.
func (Element) Kind() Kind { return KindElement }
func (Element) sealed()    {}

// Tag returns the element's tag name.
func (e Element) Tag() string { return e.tag }

// Attrs yields the attributes in the order they were supplied.
func (e Element) Attrs() iter.Seq[Attribute] { return seq(e.attrs) }

// NumAttrs returns the number of attributes.
func (e Element) NumAttrs() int { return len(e.attrs) }

// Children yields the child nodes in the order they were supplied.
func (e Element) Children() iter.Seq[Node] { return seq(e.children) }

// NumChildren returns the number of children.
func (e Element) NumChildren() int { return len(e.children) }

// VoidElement is an element that cannot have children or a closing tag.
type VoidElement struct {
	tag   string
	attrs []Attribute
}

// Kind implements Node.
func (VoidElement) Kind() Kind { return KindVoidElement }
func (VoidElement) sealed()    {}

// Tag returns the element's tag name.
func (v VoidElement) Tag() string { return v.tag }

// Attrs yields the attributes in the order they were supplied.
func (v VoidElement) Attrs() iter.Seq[Attribute] { return seq(v.attrs) }

// NumAttrs returns the number of attributes.
func (v VoidElement) NumAttrs() int { return len(v.attrs) }

// Attribute is a single name/value pair on an element.
// An attribute without a value renders as a boolean attribute.
type Attribute struct {
	name     string
	value    string
	hasValue bool
}

// Name returns the attribute name.
func (a Attribute) Name() string { return a.name }

// Value returns the attribute value and whether one is present.
// Boolean attributes report false.
func (a Attribute) Value() (string, bool) { return a.value, a.hasValue }

// IsBool reports whether the attribute renders as a bare name.
func (a Attribute) IsBool() bool { return !a.hasValue }

// IsZero reports whether the attribute is the zero value.
// Zero attributes are skipped by the el catalogue.
func (a Attribute) IsZero() bool { return a == Attribute{} }

// Attr creates an attribute rendered as name="value".
// An empty value still renders as name="".
func Attr(name, value string) Attribute {
	return Attribute{name: name, value: value, hasValue: true}
}

// BoolAttr creates an attribute rendered as its bare name.
func BoolAttr(name string) Attribute {
	return Attribute{name: name}
}

// None returns a node that renders nothing.
func None() Node {
	return EmptyNode{}
}

// Text creates a text node. Its content is escaped when rendered.
func Text(value string) Node {
	return TextNode{value: value}
}

// RawUnsafe creates a node whose content is written to the output
// verbatim, without any escaping.
//
// The caller guarantees that html is valid, trusted markup. Passing
// user-controlled data here is a cross-site scripting vulnerability.
func RawUnsafe(html string) Node {
	return RawNode{html: html}
}

// New creates an element with the given tag, attributes and children.
//
// The tag is not validated. Both slices are copied, so the caller may
// reuse them afterwards. Nil children are stored as EmptyNode.
func New(tag string, attrs []Attribute, children []Node) Node {
	return Element{
		tag:      tag,
		attrs:    cloneAttrs(attrs),
		children: cloneChildren(children),
	}
}

// NewVoid creates a void element. Void elements never have children
// and render without a closing tag.
func NewVoid(tag string, attrs []Attribute) Node {
	return VoidElement{
		tag:   tag,
		attrs: cloneAttrs(attrs),
	}
}

func cloneAttrs(attrs []Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, len(attrs))
	copy(out, attrs)
	return out
}

func cloneChildren(children []Node) []Node {
	if len(children) == 0 {
		return nil
	}
	out := make([]Node, len(children))
	for i, child := range children {
		if child == nil {
			child = EmptyNode{}
		}
		out[i] = child
	}
	return out
}

func seq[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
