// Package node provides the document tree that funhtml renders.
//
// A Node is one point in the tree. The set of node kinds is closed:
//
//   - EmptyNode renders nothing. Use it for conditional omission.
//   - TextNode renders its content with markup escaping.
//   - RawNode renders its content verbatim.
//   - Element renders an opening tag, its children and a closing tag.
//   - VoidElement renders a single tag and has no children at all.
//
// Every node is immutable once constructed. Trees are built bottom-up:
//
//	page := node.New("div", []node.Attribute{node.Attr("class", "card")}, []node.Node{
//	    node.New("h1", nil, []node.Node{node.Text("Title")}),
//	    node.NewVoid("br", nil),
//	    node.If(showFooter, footer),
//	})
//
// # Trust Boundary
//
// Tag names and attribute names are emitted exactly as given. They are
// expected to come from the el catalogue or other trusted code, never from
// user input. Attribute values and text content are always escaped.
//
// RawUnsafe is the only way to bypass escaping. Whatever string is passed
// to it ends up in the output unchanged, so it must never receive
// untrusted input.
package node
