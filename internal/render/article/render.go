// Package article renders journal descriptions (HTML fragments) as wrapped,
// styled terminal lines.
package article

import (
	"regexp"
	"strings"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)
var reHTTPURL = regexp.MustCompile(`https?://[^\s)]+`)

type Options struct {
	StyleLinks bool
}

var DefaultOptions = Options{StyleLinks: true}

// PlainOptions renders without any styling, for clipboard and non-TTY output.
var PlainOptions = Options{StyleLinks: false}

const plainTextWidth = 80

type htmlArticleRenderer struct {
	width int
	opts  Options
}

func ContentLines(description string, width int) []string {
	return ContentLinesWithOptions(description, width, DefaultOptions)
}

// ContentLinesWithOptions renders description to display lines of at most
// width visible runes. Active content (script, style, frames, embeds) is
// dropped and control characters from the payload never reach the output.
func ContentLinesWithOptions(description string, width int, opts Options) []string {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil
	}
	lines := renderHTMLFragmentLines(description, width, opts)
	if len(lines) > 0 {
		return lines
	}
	return nil
}

// Text returns the description as unstyled, wrapped plain text.
func Text(description string) string {
	lines := ContentLinesWithOptions(description, plainTextWidth, PlainOptions)
	for i := range lines {
		lines[i] = stripANSI(lines[i])
	}
	return strings.Join(lines, "\n")
}

func renderHTMLFragmentLines(raw string, width int, opts Options) []string {
	context := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := nethtml.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return wrapText(sanitizeText(raw), width)
	}
	root := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, node := range nodes {
		root.AppendChild(node)
	}
	renderer := htmlArticleRenderer{width: max(1, width), opts: opts}
	lines := trimBlankLines(renderer.renderNodes(elementChildren(root), 0))
	if opts.StyleLinks {
		lines = styleDetailLinks(lines)
	}
	return lines
}

func trimBlankLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines) - 1
	for end >= start && strings.TrimSpace(lines[end]) == "" {
		end--
	}
	if end < start {
		return nil
	}
	out := make([]string, 0, end-start+1)
	prevBlank := false
	for i := start; i <= end; i++ {
		blank := strings.TrimSpace(lines[i]) == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, lines[i])
		prevBlank = blank
	}
	return out
}

func wrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		if p == "" {
			out = append(out, "")
			continue
		}
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			if visibleLen(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				pieces := splitStyled(word, width)
				out = append(out, pieces[:len(pieces)-1]...)
				word = pieces[len(pieces)-1]
			}

			if line == "" {
				line = word
				continue
			}
			if visibleLen(line)+1+visibleLen(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// splitStyled cuts word into pieces of at most width visible runes. Escape
// sequences are never cut; styles still open at a cut are closed there and
// reopened at the start of the next piece.
func splitStyled(word string, width int) []string {
	const reset = "\x1b[0m"
	var (
		pieces []string
		cur    strings.Builder
		open   []string
		n      int
	)
	codes := reANSICodes.FindAllStringIndex(word, -1)
	for i := 0; i < len(word); {
		if len(codes) > 0 && codes[0][0] == i {
			seq := word[i:codes[0][1]]
			codes = codes[1:]
			cur.WriteString(seq)
			if seq == reset || seq == "\x1b[m" {
				open = open[:0]
			} else {
				open = append(open, seq)
			}
			i += len(seq)
			continue
		}
		if n == width {
			if len(open) > 0 {
				cur.WriteString(reset)
			}
			pieces = append(pieces, cur.String())
			cur.Reset()
			for _, seq := range open {
				cur.WriteString(seq)
			}
			n = 0
		}
		_, size := utf8.DecodeRuneInString(word[i:])
		cur.WriteString(word[i : i+size])
		n++
		i += size
	}
	return append(pieces, cur.String())
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSI(s))
}

func stripANSI(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}

func elementChildren(node *nethtml.Node) []*nethtml.Node {
	children := make([]*nethtml.Node, 0, 4)
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		children = append(children, child)
	}
	return children
}

func nodeAttr(node *nethtml.Node, name string) string {
	for _, attr := range node.Attr {
		if strings.EqualFold(attr.Key, name) {
			return sanitizeText(strings.TrimSpace(attr.Val))
		}
	}
	return ""
}

func collectRawText(node *nethtml.Node) string {
	if node == nil {
		return ""
	}
	if node.Type == nethtml.TextNode {
		return sanitizeText(node.Data)
	}
	if node.Type == nethtml.ElementNode && isActiveContent(node.Data) {
		return ""
	}
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(collectRawText(child))
	}
	return b.String()
}

// WrapText wraps plain or styled text to width visible runes per line.
func WrapText(text string, width int) []string {
	return wrapText(text, width)
}
