package el

// Document structure elements

func Html(args ...any) Node  { return createElement("html", args) }
func Head(args ...any) Node  { return createElement("head", args) }
func Body(args ...any) Node  { return createElement("body", args) }
func Title(args ...any) Node { return createElement("title", args) }

// Content sectioning elements

func Header(args ...any) Node  { return createElement("header", args) }
func Footer(args ...any) Node  { return createElement("footer", args) }
func Main(args ...any) Node    { return createElement("main", args) }
func Nav(args ...any) Node     { return createElement("nav", args) }
func Section(args ...any) Node { return createElement("section", args) }
func Article(args ...any) Node { return createElement("article", args) }
func Aside(args ...any) Node   { return createElement("aside", args) }
func Address(args ...any) Node { return createElement("address", args) }
func H1(args ...any) Node      { return createElement("h1", args) }
func H2(args ...any) Node      { return createElement("h2", args) }
func H3(args ...any) Node      { return createElement("h3", args) }
func H4(args ...any) Node      { return createElement("h4", args) }
func H5(args ...any) Node      { return createElement("h5", args) }
func H6(args ...any) Node      { return createElement("h6", args) }
func Hgroup(args ...any) Node  { return createElement("hgroup", args) }

// Text content elements

func Div(args ...any) Node        { return createElement("div", args) }
func P(args ...any) Node          { return createElement("p", args) }
func Span(args ...any) Node       { return createElement("span", args) }
func Pre(args ...any) Node        { return createElement("pre", args) }
func Blockquote(args ...any) Node { return createElement("blockquote", args) }
func Ul(args ...any) Node         { return createElement("ul", args) }
func Ol(args ...any) Node         { return createElement("ol", args) }
func Li(args ...any) Node         { return createElement("li", args) }
func Dl(args ...any) Node         { return createElement("dl", args) }
func Dt(args ...any) Node         { return createElement("dt", args) }
func Dd(args ...any) Node         { return createElement("dd", args) }
func Figure(args ...any) Node     { return createElement("figure", args) }
func Figcaption(args ...any) Node { return createElement("figcaption", args) }

// Inline text semantics

func A(args ...any) Node      { return createElement("a", args) }
func Strong(args ...any) Node { return createElement("strong", args) }
func Em(args ...any) Node     { return createElement("em", args) }
func B(args ...any) Node      { return createElement("b", args) }
func I(args ...any) Node      { return createElement("i", args) }
func U(args ...any) Node      { return createElement("u", args) }
func S(args ...any) Node      { return createElement("s", args) }
func Small(args ...any) Node  { return createElement("small", args) }
func Mark(args ...any) Node   { return createElement("mark", args) }
func Sub(args ...any) Node    { return createElement("sub", args) }
func Sup(args ...any) Node    { return createElement("sup", args) }
func Code(args ...any) Node   { return createElement("code", args) }
func Kbd(args ...any) Node    { return createElement("kbd", args) }
func Samp(args ...any) Node   { return createElement("samp", args) }
func Var(args ...any) Node    { return createElement("var", args) }
func Abbr(args ...any) Node   { return createElement("abbr", args) }
func Time_(args ...any) Node  { return createElement("time", args) }
func Cite(args ...any) Node   { return createElement("cite", args) }
func Q(args ...any) Node      { return createElement("q", args) }

// DataElement creates a <data> element.
// Note: For data-* attributes, use Data(key, value) instead.
func DataElement(args ...any) Node { return createElement("data", args) }

// Form elements

func Form(args ...any) Node     { return createElement("form", args) }
func Textarea(args ...any) Node { return createElement("textarea", args) }
func Select(args ...any) Node   { return createElement("select", args) }
func Option(args ...any) Node   { return createElement("option", args) }
func Optgroup(args ...any) Node { return createElement("optgroup", args) }
func Button(args ...any) Node   { return createElement("button", args) }
func Label(args ...any) Node    { return createElement("label", args) }
func Fieldset(args ...any) Node { return createElement("fieldset", args) }
func Legend(args ...any) Node   { return createElement("legend", args) }
func Progress(args ...any) Node { return createElement("progress", args) }

// Table elements

func Table(args ...any) Node    { return createElement("table", args) }
func Caption(args ...any) Node  { return createElement("caption", args) }
func Thead(args ...any) Node    { return createElement("thead", args) }
func Tbody(args ...any) Node    { return createElement("tbody", args) }
func Tfoot(args ...any) Node    { return createElement("tfoot", args) }
func Tr(args ...any) Node       { return createElement("tr", args) }
func Th(args ...any) Node       { return createElement("th", args) }
func Td(args ...any) Node       { return createElement("td", args) }
func Colgroup(args ...any) Node { return createElement("colgroup", args) }

// Media elements

func Picture(args ...any) Node { return createElement("picture", args) }
func Video(args ...any) Node   { return createElement("video", args) }
func Audio(args ...any) Node   { return createElement("audio", args) }
func Iframe(args ...any) Node  { return createElement("iframe", args) }
func Canvas(args ...any) Node  { return createElement("canvas", args) }

// Interactive elements

func Details(args ...any) Node { return createElement("details", args) }
func Summary(args ...any) Node { return createElement("summary", args) }
func Dialog(args ...any) Node  { return createElement("dialog", args) }

// Scripting elements

func Script(args ...any) Node   { return createElement("script", args) }
func Noscript(args ...any) Node { return createElement("noscript", args) }
func Template(args ...any) Node { return createElement("template", args) }
func Style(args ...any) Node    { return createElement("style", args) }

// Void elements

func Area(attrs ...Attribute) Node   { return createVoid("area", attrs) }
func Base(attrs ...Attribute) Node   { return createVoid("base", attrs) }
func Br(attrs ...Attribute) Node     { return createVoid("br", attrs) }
func Col(attrs ...Attribute) Node    { return createVoid("col", attrs) }
func Embed(attrs ...Attribute) Node  { return createVoid("embed", attrs) }
func Hr(attrs ...Attribute) Node     { return createVoid("hr", attrs) }
func Img(attrs ...Attribute) Node    { return createVoid("img", attrs) }
func Input(attrs ...Attribute) Node  { return createVoid("input", attrs) }
func Link(attrs ...Attribute) Node   { return createVoid("link", attrs) }
func Meta(attrs ...Attribute) Node   { return createVoid("meta", attrs) }
func Source(attrs ...Attribute) Node { return createVoid("source", attrs) }
func Track(attrs ...Attribute) Node  { return createVoid("track", attrs) }
func Wbr(attrs ...Attribute) Node    { return createVoid("wbr", attrs) }
