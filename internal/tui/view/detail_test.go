package view

import (
	"strings"
	"testing"

	"github.com/glabrego/journal-cli/internal/journal"
	article "github.com/glabrego/journal-cli/internal/render/article"
	tuitheme "github.com/glabrego/journal-cli/internal/tui/theme"
)

func TestDetailLines(t *testing.T) {
	entry := journal.Entry{
		Title:       "Long day",
		Description: "<p>First paragraph.</p><p>Second paragraph.</p>",
	}
	lines := DetailLines(entry, 40, article.PlainOptions, tuitheme.Default())
	got := stripANSI(strings.Join(lines, "\n"))
	want := "Long day\n========\n\nFirst paragraph.\n\nSecond paragraph."
	if got != want {
		t.Fatalf("unexpected detail lines:\n%s\nwant:\n%s", got, want)
	}
}

func TestDetailLines_EmptyDescription(t *testing.T) {
	lines := DetailLines(journal.Entry{Title: "Only title"}, 40, article.PlainOptions, tuitheme.Default())
	if len(lines) != 2 {
		t.Fatalf("expected title and rule only, got %q", lines)
	}
}

func TestCopyText(t *testing.T) {
	got := CopyText(journal.Entry{Title: "Title", Description: "<p>Body <b>bold</b></p><script>x()</script>"})
	if got != "Title\n\nBody bold" {
		t.Fatalf("unexpected copy text: %q", got)
	}
	if got := CopyText(journal.Entry{Description: "<p>Body</p>"}); got != "Body" {
		t.Fatalf("unexpected copy text without title: %q", got)
	}
}
