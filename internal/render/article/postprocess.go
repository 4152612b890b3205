package article

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isActiveContent reports elements whose content is never shown.
func isActiveContent(tag string) bool {
	switch strings.ToLower(tag) {
	case "script", "style", "noscript", "template", "iframe", "frame", "frameset",
		"object", "embed", "applet", "svg", "math":
		return true
	default:
		return false
	}
}

// sanitizeText removes control characters so payload text cannot move the
// cursor, change colors or otherwise drive the terminal. Tabs become spaces;
// newlines and carriage returns become newlines.
func sanitizeText(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune('\n')
		case r == '\r':
			b.WriteRune('\n')
		case r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		case unicode.Is(unicode.Bidi_Control, r):
		case r == utf8.RuneError:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func styleDetailLinks(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = reHTTPURL.ReplaceAllStringFunc(line, func(m string) string {
			return blocks.link.Render(m)
		})
	}
	return out
}
