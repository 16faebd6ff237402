package el

import "github.com/funhtml-go/funhtml/pkg/node"

// Text creates an escaped text node.
func Text(content string) Node { return node.Text(content) }

// Textf creates a formatted, escaped text node.
func Textf(format string, args ...any) Node { return node.Textf(format, args...) }

// RawUnsafe inserts html without escaping. Never pass user input.
func RawUnsafe(html string) Node { return node.RawUnsafe(html) }

// None renders nothing.
func None() Node { return node.None() }

// If returns n if condition is true, None otherwise.
func If(condition bool, n Node) Node { return node.If(condition, n) }

// IfElse returns ifTrue if condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse Node) Node {
	return node.IfElse(condition, ifTrue, ifFalse)
}

// When is like If but only calls fn when condition is true.
func When(condition bool, fn func() Node) Node { return node.When(condition, fn) }

// Range builds one node per item, in order.
func Range[T any](items []T, fn func(item T, index int) Node) []Node {
	return node.Map(items, fn)
}

// Shortcuts for common head elements

// MetaCharsetUTF8 renders <meta charset="UTF-8">.
func MetaCharsetUTF8() Node { return Meta(Charset("UTF-8")) }

// MetaViewport renders the standard responsive viewport meta tag.
func MetaViewport() Node {
	return Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0"))
}

// MetaColorScheme renders <meta name="color-scheme" content="{scheme}">.
func MetaColorScheme(scheme string) Node {
	return Meta(Name("color-scheme"), Content(scheme))
}

// LinkStylesheet renders <link rel="stylesheet" href="{url}">.
func LinkStylesheet(url string) Node {
	return Link(Rel("stylesheet"), Href(url))
}

// ScriptSrc renders <script src="{url}"></script>.
func ScriptSrc(url string, attrs ...Attribute) Node {
	return Script(Src(url), attrs)
}
