// Package render serializes node trees to HTML.
//
// Rendering is a pure, single-pass, depth-first walk of the tree:
//
//   - Text content is escaped (&, <, >).
//   - Attribute values are escaped (&, ", <, >) and always double-quoted.
//   - Void elements are written as a single tag with no trailing slash.
//   - Raw nodes are written verbatim.
//   - Empty nodes write nothing.
//
// Tag and attribute names are written as given. Validating them is the
// job of whoever builds the tree.
//
// # Basic Usage
//
// To render a node to a string:
//
//	html := render.Render(node)
//
// To stream to a writer:
//
//	err := render.Write(w, node)
//
// # Documents
//
// A Document wraps a root node and optionally prefixes it with a doctype:
//
//	doc := render.Page(nil,
//	    []node.Node{node.New("title", nil, []node.Node{node.Text("Hi")})},
//	    []node.Node{node.New("h1", nil, []node.Node{node.Text("Hello")})},
//	)
//	fmt.Println(doc) // <!DOCTYPE html>\n<html><head>...
//
// Rendering never mutates the tree, so a Document may be rendered any
// number of times, from any number of goroutines.
//
// # Pretty Printing
//
// A Renderer configured with Pretty writes indented output. Indentation
// adds whitespace between elements, so it should only be used while
// developing.
package render
