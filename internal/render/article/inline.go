package article

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	nethtml "golang.org/x/net/html"
)

func (r htmlArticleRenderer) renderInlineChildren(node *nethtml.Node) string {
	parts := make([]string, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		parts = append(parts, r.renderInlineNode(child))
	}
	return strings.Join(parts, " ")
}

// inlineStyleFor maps phrasing elements to the style applied to their words.
func inlineStyleFor(tag string) (lipgloss.Style, bool) {
	switch tag {
	case "strong", "b":
		return inlines.strong, true
	case "em", "i", "cite", "dfn", "var":
		return inlines.emphasis, true
	case "u", "ins":
		return inlines.underline, true
	case "s", "del", "strike":
		return inlines.strike, true
	case "mark":
		return inlines.mark, true
	}
	return lipgloss.Style{}, false
}

func (r htmlArticleRenderer) renderInlineNode(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == nethtml.TextNode {
		return sanitizeText(node.Data)
	}
	if node.Type != nethtml.ElementNode {
		return ""
	}

	tag := strings.ToLower(node.Data)
	if style, ok := inlineStyleFor(tag); ok {
		return styleInline(r.renderInlineChildren(node), style)
	}
	switch {
	case isActiveContent(tag), tag == "img", tag == "input":
		return ""
	case tag == "br":
		return "\n"
	case tag == "a":
		return r.renderLink(node)
	case tag == "q":
		if text := r.inlineText(node); text != "" {
			return `"` + text + `"`
		}
		return ""
	case tag == "code" || tag == "kbd" || tag == "samp":
		if text := r.inlineText(node); text != "" {
			return blocks.code.Render("`" + text + "`")
		}
		return ""
	}
	return r.renderInlineChildren(node)
}

// renderLink shows the link text followed by its target in parentheses. The
// target is omitted for script and data URLs and when it equals the text.
func (r htmlArticleRenderer) renderLink(node *nethtml.Node) string {
	text := r.inlineText(node)
	href := nodeAttr(node, "href")
	switch {
	case !isDisplayableHref(href):
		return text
	case text == "" || strings.EqualFold(text, href):
		return href
	}
	return text + " (" + href + ")"
}

// styleInline styles each word separately so wrapping never splits a styled
// run across lines.
func styleInline(s string, style lipgloss.Style) string {
	text := normalizeInlineText(s)
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		words := strings.Fields(line)
		for j, word := range words {
			words[j] = style.Render(word)
		}
		lines[i] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n")
}

// isDisplayableHref hides script and data URLs from link suffixes.
func isDisplayableHref(href string) bool {
	if href == "" {
		return false
	}
	lower := strings.ToLower(href)
	return !strings.HasPrefix(lower, "javascript:") && !strings.HasPrefix(lower, "data:") && !strings.HasPrefix(lower, "vbscript:")
}

// normalizeInlineText collapses runs of whitespace within each line and tidies
// the spaces the inline joiner leaves before punctuation.
func normalizeInlineText(s string) string {
	parts := strings.Split(s, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.Join(strings.Fields(part), " ")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	normalized := strings.Join(out, "\n")
	replacer := strings.NewReplacer(
		" .", ".",
		" ,", ",",
		" ;", ";",
		" :", ":",
		" !", "!",
		" ?", "?",
		" )", ")",
		"( ", "(",
	)
	return replacer.Replace(normalized)
}
