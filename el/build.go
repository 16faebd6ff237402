package el

import (
	"fmt"

	"github.com/funhtml-go/funhtml/pkg/node"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates an element with the given tag and arguments.
// Arguments can be: nil, Attribute, []Attribute, Node, []Node, string.
func createElement(tag string, args []any) Node {
	var attrs []Attribute
	var children []Node

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attribute:
			if !v.IsZero() {
				attrs = append(attrs, v)
			}

		case []Attribute:
			for _, a := range v {
				if !a.IsZero() {
					attrs = append(attrs, a)
				}
			}

		case Node:
			children = append(children, v)

		case []Node:
			children = append(children, v...)

		case string:
			// Shorthand for text node
			children = append(children, node.Text(v))

		default:
			children = append(children, node.Text(fmt.Sprint(v)))
		}
	}

	return node.New(tag, attrs, children)
}

// createVoid creates a void element. Zero attributes are skipped.
func createVoid(tag string, attrs []Attribute) Node {
	var kept []Attribute
	for _, a := range attrs {
		if !a.IsZero() {
			kept = append(kept, a)
		}
	}
	return node.NewVoid(tag, kept)
}

// Element creates an element with a custom tag name. If the tag is a
// known void element, children are dropped and a void element is built.
func Element(tag string, args ...any) Node {
	if IsVoidElement(tag) {
		var attrs []Attribute
		for _, arg := range args {
			switch v := arg.(type) {
			case Attribute:
				attrs = append(attrs, v)
			case []Attribute:
				attrs = append(attrs, v...)
			}
		}
		return createVoid(tag, attrs)
	}
	return createElement(tag, args)
}
