package article

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	nethtml "golang.org/x/net/html"
)

// blockTags are laid out as paragraphs of their own.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"header": true, "footer": true, "aside": true, "nav": true,
	"blockquote": true, "ul": true, "ol": true, "li": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true, "tr": true, "td": true, "th": true,
	"dl": true, "dt": true, "dd": true, "pre": true, "hr": true, "img": true,
	"figure": true, "figcaption": true, "caption": true, "details": true, "summary": true,
}

func isBlockElement(tag string) bool {
	return blockTags[strings.ToLower(tag)]
}

func hasBlockChild(node *nethtml.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && isBlockElement(child.Data) {
			return true
		}
	}
	return false
}

// appendBlock adds block to lines with a single blank line between them.
func appendBlock(lines, block []string) []string {
	if len(block) == 0 {
		return lines
	}
	if len(lines) > 0 && lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return append(lines, block...)
}

func (r htmlArticleRenderer) renderNodes(nodes []*nethtml.Node, depth int) []string {
	var lines, pending []string
	flush := func() {
		text := normalizeInlineText(strings.Join(pending, " "))
		pending = pending[:0]
		if text != "" {
			lines = appendBlock(lines, wrapText(text, r.width))
		}
	}

	for _, node := range nodes {
		switch {
		case node.Type == nethtml.TextNode:
			pending = append(pending, sanitizeText(node.Data))
		case node.Type != nethtml.ElementNode || isActiveContent(node.Data):
		case isBlockElement(node.Data):
			flush()
			lines = appendBlock(lines, r.renderBlock(node, depth))
		default:
			pending = append(pending, r.renderInlineNode(node))
		}
	}
	flush()
	return trimBlankLines(lines)
}

func (r htmlArticleRenderer) renderBlock(node *nethtml.Node, depth int) []string {
	tag := strings.ToLower(node.Data)
	if isActiveContent(tag) {
		return nil
	}
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		prefix := headingPrefix(int(tag[1] - '0'))
		lines := wrapPrefixedText(r.inlineText(node), r.width, prefix, strings.Repeat(" ", visibleLen(prefix)))
		return styleNonBlankLines(lines, blocks.heading)
	case "blockquote":
		return r.renderQuote(node, depth)
	case "ul", "ol":
		return r.renderList(node, tag == "ol", depth+1)
	case "li":
		return r.renderListItem(node, depth, unorderedListMarker(max(depth, 1)))
	case "dl":
		return r.renderDefinitionList(node, depth)
	case "table":
		return r.renderTable(node)
	case "pre":
		return renderPreformatted(node, r.width)
	case "hr":
		return []string{blocks.rule.Render(strings.Repeat("─", min(max(r.width, 3), 24)))}
	case "img":
		return renderImageLabel(node, r.width)
	case "figcaption", "caption":
		return styleNonBlankLines(wrapPrefixedText(r.inlineText(node), r.width, "~ ", "  "), blocks.cite)
	case "summary":
		return styleNonBlankLines(wrapPrefixedText(r.inlineText(node), r.width, "▸ ", "  "), blocks.summary)
	default:
		return r.renderContainer(node, depth)
	}
}

// renderContainer lays out p, div, figure, details and friends: inline-only
// content is one wrapped paragraph, anything else recurses.
func (r htmlArticleRenderer) renderContainer(node *nethtml.Node, depth int) []string {
	if !hasBlockChild(node) {
		if text := r.inlineText(node); text != "" {
			return wrapText(text, r.width)
		}
	}
	return r.renderNodes(elementChildren(node), depth)
}

func (r htmlArticleRenderer) renderQuote(node *nethtml.Node, depth int) []string {
	narrow := htmlArticleRenderer{width: max(1, r.width-visibleLen(blocks.quoteBar)), opts: r.opts}
	inner := narrow.renderNodes(elementChildren(node), depth)
	if len(inner) == 0 {
		text := r.inlineText(node)
		if text == "" {
			return nil
		}
		inner = wrapText(text, narrow.width)
	}
	out := make([]string, len(inner))
	for i, line := range inner {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out[i] = blocks.quoteBar + blocks.quote.Render(line)
	}
	return out
}

func (r htmlArticleRenderer) renderList(node *nethtml.Node, ordered bool, depth int) []string {
	var lines []string
	n := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode || strings.ToLower(child.Data) != "li" {
			continue
		}
		n++
		marker := unorderedListMarker(depth)
		if ordered {
			marker = strconv.Itoa(n) + ". "
		}
		lines = appendBlock(lines, r.renderListItem(child, depth, marker))
	}
	return trimBlankLines(lines)
}

// renderListItem renders the item text after marker and nested lists below
// it. A leading checkbox turns the marker into a task box.
func (r htmlArticleRenderer) renderListItem(node *nethtml.Node, depth int, marker string) []string {
	if box, ok := taskMarker(node); ok {
		marker = box
	}
	indent := strings.Repeat("  ", max(0, depth-1))

	var parts []string
	var nested []*nethtml.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode {
			if tag := strings.ToLower(child.Data); tag == "ul" || tag == "ol" {
				nested = append(nested, child)
				continue
			}
		}
		parts = append(parts, r.renderInlineNode(child))
	}

	lines := wrapPrefixedText(strings.Join(parts, " "), r.width, indent+marker, indent+strings.Repeat(" ", visibleLen(marker)))
	for _, list := range nested {
		lines = appendBlock(lines, r.renderList(list, strings.EqualFold(list.Data, "ol"), depth+1))
	}
	return trimBlankLines(lines)
}

func taskMarker(li *nethtml.Node) (string, bool) {
	for child := li.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		if child.Type != nethtml.ElementNode || !strings.EqualFold(child.Data, "input") || !strings.EqualFold(nodeAttr(child, "type"), "checkbox") {
			return "", false
		}
		for _, attr := range child.Attr {
			if strings.EqualFold(attr.Key, "checked") {
				return blocks.taskDone.Render("[x]") + " ", true
			}
		}
		return blocks.taskOpen.Render("[ ]") + " ", true
	}
	return "", false
}

func (r htmlArticleRenderer) renderDefinitionList(node *nethtml.Node, depth int) []string {
	indent := strings.Repeat("  ", max(0, depth-1))
	var lines []string
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != nethtml.ElementNode {
			continue
		}
		first := indent + "  "
		if strings.EqualFold(child.Data, "dt") {
			first = indent + "• "
		} else if !strings.EqualFold(child.Data, "dd") {
			continue
		}
		lines = append(lines, wrapPrefixedText(r.inlineText(child), r.width, first, indent+"  ")...)
	}
	return trimBlankLines(lines)
}

// renderPreformatted keeps line breaks and indents the block, hard-wrapping
// lines that do not fit.
func renderPreformatted(node *nethtml.Node, width int) []string {
	const indent = "    "
	room := max(1, width-len(indent))
	var out []string
	for _, line := range strings.Split(collectRawText(node), "\n") {
		runes := []rune(strings.TrimRight(line, " "))
		if len(runes) == 0 {
			out = append(out, "")
			continue
		}
		for len(runes) > room {
			out = append(out, indent+string(runes[:room]))
			runes = runes[room:]
		}
		out = append(out, indent+string(runes))
	}
	return trimBlankLines(out)
}

func renderImageLabel(img *nethtml.Node, width int) []string {
	line := blocks.imageLabel.Render("◌◌◌ Image")
	text := normalizeInlineText(nodeAttr(img, "alt"))
	if text == "" {
		text = normalizeInlineText(nodeAttr(img, "title"))
	}
	if text != "" {
		line += " " + blocks.imageText.Render(text)
	}
	return wrapText(line, max(1, width))
}

func (r htmlArticleRenderer) inlineText(node *nethtml.Node) string {
	return normalizeInlineText(r.renderInlineChildren(node))
}

// wrapPrefixedText wraps text so that the first line starts with firstPrefix
// and the following ones with restPrefix.
func wrapPrefixedText(text string, width int, firstPrefix, restPrefix string) []string {
	text = normalizeInlineText(text)
	if text == "" {
		return nil
	}
	if width < 1 {
		return []string{firstPrefix + text}
	}
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		prefix := restPrefix
		if len(out) == 0 {
			prefix = firstPrefix
		}
		for _, line := range wrapText(paragraph, max(1, width-visibleLen(prefix))) {
			out = append(out, prefix+line)
			prefix = restPrefix
		}
	}
	return out
}

func headingPrefix(level int) string {
	level = min(max(level, 1), len(blocks.headingBars))
	return blocks.headingBars[level-1].Render("▌") + strings.Repeat(" ", max(1, level-1))
}

func unorderedListMarker(depth int) string {
	markers := []string{"• ", "◦ ", "▪ "}
	if depth >= 1 && depth <= len(markers) {
		return markers[depth-1]
	}
	return "▫ "
}

func styleNonBlankLines(lines []string, style lipgloss.Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			line = style.Render(line)
		}
		out[i] = line
	}
	return out
}
