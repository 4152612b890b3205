package format

import (
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PreviewLength is the maxLength the list view passes to TruncateText.
const PreviewLength = 150

// previewCut is where long previews are cut. It does not follow maxLength.
const previewCut = 700

const ellipsis = "..."

// TruncateText strips markup from raw and shortens the result. When the plain
// text is longer than maxLength runes it returns the first 700 runes plus an
// ellipsis, whatever maxLength is.
func TruncateText(raw string, maxLength int) string {
	text := PlainText(raw)
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	cut := previewCut
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + ellipsis
}

// PlainText returns the text content of an HTML fragment parsed in a div
// context: every descendant text node in document order, entities decoded.
func PlainText(raw string) string {
	if raw == "" {
		return ""
	}
	host := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := nethtml.ParseFragment(strings.NewReader(raw), host)
	if err != nil {
		return raw
	}
	var b strings.Builder
	for _, node := range nodes {
		writeText(&b, node)
	}
	return b.String()
}

func writeText(b *strings.Builder, node *nethtml.Node) {
	if node.Type == nethtml.TextNode {
		b.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(b, child)
	}
}
