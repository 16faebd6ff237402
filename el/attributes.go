package el

import (
	"strconv"
	"strings"

	"github.com/funhtml-go/funhtml/pkg/node"
)

// Attr creates an attribute with an arbitrary name. The name is written
// verbatim and must not come from user input.
func Attr(name, value string) Attribute { return node.Attr(name, value) }

// BoolAttr creates a boolean attribute with an arbitrary name.
func BoolAttr(name string) Attribute { return node.BoolAttr(name) }

// AttrIf returns a if condition is true and the zero Attribute otherwise.
// Zero attributes are skipped by every element constructor.
func AttrIf(condition bool, a Attribute) Attribute {
	if condition {
		return a
	}
	return Attribute{}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attribute { return node.Attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// Empty class names are dropped.
func Class(classes ...string) Attribute {
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return node.Attr("class", strings.Join(kept, " "))
}

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attribute { return node.Attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attribute { return node.Attr("data-"+key, value) }

// Aria creates an aria-* attribute.
// Example: Aria("label", "Close") → aria-label="Close"
func Aria(key, value string) Attribute { return node.Attr("aria-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attribute { return node.Attr("role", role) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attribute { return node.Attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attribute { return node.Attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attribute { return node.Attr("dir", dir) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attribute { return node.Attr("tabindex", strconv.Itoa(index)) }

// Hidden sets the hidden boolean attribute.
func Hidden() Attribute { return node.BoolAttr("hidden") }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attribute { return node.Attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attribute { return node.Attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attribute { return node.Attr("rel", rel) }

// Metadata attributes

// Name sets the name attribute.
func Name(name string) Attribute { return node.Attr("name", name) }

// Content sets the content attribute.
func Content(content string) Attribute { return node.Attr("content", content) }

// Charset sets the charset attribute.
func Charset(charset string) Attribute { return node.Attr("charset", charset) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attribute { return node.Attr("type", t) }

// Value sets the value attribute.
func Value(value string) Attribute { return node.Attr("value", value) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attribute { return node.Attr("placeholder", text) }

// Action sets the action attribute.
func Action(url string) Attribute { return node.Attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attribute { return node.Attr("method", method) }

// For sets the for attribute.
func For(id string) Attribute { return node.Attr("for", id) }

// Rows sets the rows attribute.
func Rows(n int) Attribute { return node.Attr("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) Attribute { return node.Attr("cols", strconv.Itoa(n)) }

// Disabled sets the disabled boolean attribute.
func Disabled() Attribute { return node.BoolAttr("disabled") }

// Readonly sets the readonly boolean attribute.
func Readonly() Attribute { return node.BoolAttr("readonly") }

// Required sets the required boolean attribute.
func Required() Attribute { return node.BoolAttr("required") }

// Checked sets the checked boolean attribute.
func Checked() Attribute { return node.BoolAttr("checked") }

// Selected sets the selected boolean attribute.
func Selected() Attribute { return node.BoolAttr("selected") }

// Multiple sets the multiple boolean attribute.
func Multiple() Attribute { return node.BoolAttr("multiple") }

// Autofocus sets the autofocus boolean attribute.
func Autofocus() Attribute { return node.BoolAttr("autofocus") }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attribute { return node.Attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attribute { return node.Attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attribute { return node.Attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attribute { return node.Attr("height", strconv.Itoa(h)) }

// Script attributes

// Defer sets the defer boolean attribute.
func Defer() Attribute { return node.BoolAttr("defer") }

// Async sets the async boolean attribute.
func Async() Attribute { return node.BoolAttr("async") }

// Interactive attributes

// Open sets the open boolean attribute.
func Open() Attribute { return node.BoolAttr("open") }
