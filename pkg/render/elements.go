package render

// layout says how pretty mode lays out an element's children.
type layout uint8

const (
	layoutBlock    layout = iota // children on their own lines when any child is a block
	layoutInline                 // phrasing content, kept on the parent's line
	layoutVerbatim               // content written exactly as built
)

// layoutOf classifies tag for pretty printing. Compact output ignores it.
func layoutOf(tag string) layout {
	switch tag {
	case "a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn",
		"em", "i", "kbd", "label", "mark", "q", "s", "samp", "small", "span",
		"strong", "sub", "sup", "time", "u", "var", "wbr":
		return layoutInline
	case "pre", "textarea", "script", "style":
		return layoutVerbatim
	default:
		return layoutBlock
	}
}
