// Package el provides the HTML DSL for funhtml.
//
// It wraps the generic constructors of github.com/funhtml-go/funhtml/pkg/node
// with one function per tag and per common attribute.
//
// Typical usage:
//
//	import . "github.com/funhtml-go/funhtml/el"
//
//	Div(Class("card"),
//	    H1("Title"),
//	    P("Content with ", Strong("emphasis")),
//	    If(loggedIn, A(Href("/logout"), "Log out")),
//	)
//
// Element constructors accept, in any order: nil (ignored), Attribute,
// []Attribute, Node, []Node and string (escaped text). Other values are
// formatted with fmt.Sprint and added as text. Attributes and children
// keep their relative order.
//
// Void element constructors (Br, Img, Input, Meta, ...) accept attributes
// only, so a void element can never be given children.
package el
