package render

import (
	"strings"
	"testing"

	"github.com/funhtml-go/funhtml/pkg/node"
	"golang.org/x/net/html"
)

// collect parses markup and returns every text node and attribute value
// the parser saw, in document order.
func collect(t *testing.T, markup string) (texts []string, attrs map[string]string) {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}

	attrs = make(map[string]string)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			texts = append(texts, n.Data)
		case html.ElementNode:
			for _, a := range n.Attr {
				attrs[a.Key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return texts, attrs
}

func TestRenderedTextParsesBackUnchanged(t *testing.T) {
	inputs := []string{
		"<script>alert(1)</script>",
		"Tom & Jerry",
		"&amp; is already an entity",
		"</p><p>",
		"<!-- not a comment -->",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			doc := Page(nil, nil, []node.Node{node.New("p", nil, []node.Node{node.Text(in)})})

			texts, _ := collect(t, doc.String())
			if len(texts) != 1 || texts[0] != in {
				t.Errorf("parsed text = %q, want [%q]", texts, in)
			}
		})
	}
}

func TestRenderedAttrParsesBackUnchanged(t *testing.T) {
	value := `x" onmouseover="alert(1)" data-y='<&>'`
	doc := Page(nil, nil, []node.Node{
		node.New("a", []node.Attribute{node.Attr("title", value)}, []node.Node{node.Text("go")}),
	})

	_, attrs := collect(t, doc.String())
	if attrs["title"] != value {
		t.Errorf("title = %q, want %q", attrs["title"], value)
	}
	if _, ok := attrs["onmouseover"]; ok {
		t.Error("attribute value escaped into a new attribute")
	}
}
