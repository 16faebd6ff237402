package render

import "github.com/funhtml-go/funhtml/pkg/node"

// Page creates a full document whose root is an <html> element with
// the given attributes, a <head> holding head and a <body> holding body.
func Page(attrs []node.Attribute, head, body []node.Node) Document {
	return NewDocument(node.New("html", attrs, []node.Node{
		node.New("head", nil, head),
		node.New("body", nil, body),
	}))
}

// PageData describes a complete HTML page.
type PageData struct {
	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (favicon, preload, etc.).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS. Content is trusted and written verbatim.
	Styles []string

	// Scripts contains script tags. Deferred and async scripts go into
	// the head, all others at the end of the body.
	Scripts []ScriptTag

	// Head holds extra nodes appended to the head.
	Head []node.Node

	// Body holds the page content.
	Body []node.Node
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content, trusted
}

// Build assembles the page into a full document.
func (p PageData) Build() Document {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := []node.Node{
		node.NewVoid("meta", []node.Attribute{node.Attr("charset", "utf-8")}),
		node.NewVoid("meta", []node.Attribute{
			node.Attr("name", "viewport"),
			node.Attr("content", "width=device-width, initial-scale=1"),
		}),
	}
	if p.Title != "" {
		head = append(head, node.New("title", nil, []node.Node{node.Text(p.Title)}))
	}
	for _, m := range p.Meta {
		head = append(head, metaNode(m))
	}
	for _, l := range p.Links {
		head = append(head, linkNode(l))
	}
	for _, href := range p.StyleSheets {
		head = append(head, node.NewVoid("link", []node.Attribute{
			node.Attr("rel", "stylesheet"),
			node.Attr("href", href),
		}))
	}
	for _, css := range p.Styles {
		head = append(head, node.New("style", nil, []node.Node{node.RawUnsafe(css)}))
	}

	body := append([]node.Node(nil), p.Body...)
	for _, s := range p.Scripts {
		if s.Defer || s.Async {
			head = append(head, scriptNode(s))
		} else {
			body = append(body, scriptNode(s))
		}
	}
	head = append(head, p.Head...)

	return Page([]node.Attribute{node.Attr("lang", lang)}, head, body)
}

func metaNode(m MetaTag) node.Node {
	var attrs []node.Attribute
	attrs = appendIfSet(attrs, "name", m.Name)
	attrs = appendIfSet(attrs, "property", m.Property)
	attrs = appendIfSet(attrs, "http-equiv", m.HTTPEquiv)
	attrs = appendIfSet(attrs, "content", m.Content)
	return node.NewVoid("meta", attrs)
}

func linkNode(l LinkTag) node.Node {
	var attrs []node.Attribute
	attrs = appendIfSet(attrs, "rel", l.Rel)
	attrs = appendIfSet(attrs, "href", l.Href)
	attrs = appendIfSet(attrs, "type", l.Type)
	attrs = appendIfSet(attrs, "sizes", l.Sizes)
	attrs = appendIfSet(attrs, "crossorigin", l.CrossOrigin)
	attrs = appendIfSet(attrs, "media", l.Media)
	return node.NewVoid("link", attrs)
}

func scriptNode(s ScriptTag) node.Node {
	var attrs []node.Attribute
	attrs = appendIfSet(attrs, "src", s.Src)
	if s.Module {
		attrs = append(attrs, node.Attr("type", "module"))
	} else {
		attrs = appendIfSet(attrs, "type", s.Type)
	}
	if s.Defer {
		attrs = append(attrs, node.BoolAttr("defer"))
	}
	if s.Async {
		attrs = append(attrs, node.BoolAttr("async"))
	}
	var children []node.Node
	if s.Inline != "" {
		children = []node.Node{node.RawUnsafe(s.Inline)}
	}
	return node.New("script", attrs, children)
}

func appendIfSet(attrs []node.Attribute, name, value string) []node.Attribute {
	if value == "" {
		return attrs
	}
	return append(attrs, node.Attr(name, value))
}
