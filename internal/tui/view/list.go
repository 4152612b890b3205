package view

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/journal-cli/internal/journal"
	article "github.com/glabrego/journal-cli/internal/render/article"
	tuitheme "github.com/glabrego/journal-cli/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const untitled = "(untitled)"

type CardParams struct {
	Entry   journal.Entry
	Date    string
	Time    string
	Preview string
	Active  bool
	Width   int
}

// Stamp joins a formatted date and time the way cards and the detail header
// show them.
func Stamp(date, clock string) string {
	return date + " - " + clock
}

// RenderCard returns the lines of one preview card: the stamp, the title and
// the wrapped preview text.
func RenderCard(p CardParams, th tuitheme.Theme) []string {
	gutter := th.CardGutter(p.Active)
	inner := p.Width - visibleLen(gutter)
	if inner < 1 {
		inner = 1
	}

	lines := make([]string, 0, 4)
	lines = append(lines, gutter+th.CardDate.Render(truncateRunes(Stamp(p.Date, p.Time), inner)))

	title := strings.TrimSpace(p.Entry.Title)
	if title == "" {
		title = untitled
	}
	for _, line := range article.WrapText(title, inner) {
		lines = append(lines, gutter+th.CardTitle.Render(line))
	}

	preview := strings.Join(strings.Fields(p.Preview), " ")
	if preview != "" {
		for _, line := range article.WrapText(preview, inner) {
			lines = append(lines, gutter+th.CardPreview.Render(line))
		}
	}
	return lines
}

// RenderCards joins cards with a blank separator line.
func RenderCards(cards [][]string) string {
	var b strings.Builder
	for i, card := range cards {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, line := range card {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CardHeight is the number of screen lines a card occupies, separator included.
func CardHeight(card []string) int {
	return len(card) + 1
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
