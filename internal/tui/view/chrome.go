package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	tuitheme "github.com/glabrego/journal-cli/internal/tui/theme"
)

const ListTitle = "Journals"

const (
	LoadingText = "Loading journals..."
	EmptyText   = "No journals yet."
)

type HeaderParams struct {
	InDetail bool
	Stamp    string
	Loading  bool
	Spinner  string
}

// Header is the top line: the list title, or the selection's stamp with a
// back hint in detail mode.
func Header(p HeaderParams, th tuitheme.Theme) string {
	title := th.Title.Render(ListTitle)
	if p.InDetail {
		title = th.Title.Render(p.Stamp) + "  " + th.ModePill.Render("esc Back")
	}
	if p.Loading && p.Spinner != "" {
		title += " " + th.StateLoad.Render(p.Spinner)
	}
	return title
}

func Placeholder(text string, th tuitheme.Theme) string {
	return th.Placeholder.Render(text)
}

func StatusLine(loading bool, count int, status string, th tuitheme.Theme) string {
	state := "idle"
	stateLabel := th.StateIdle.Render("state")
	if loading {
		state = "loading"
		stateLabel = th.StateLoad.Render("state")
	}
	noun := "journals"
	if count == 1 {
		noun = "journal"
	}
	parts := []string{
		fmt.Sprintf("%s: %s", stateLabel, state),
		th.MetaValue.Render(fmt.Sprintf("%d %s", count, noun)),
	}
	if status != "" {
		parts = append(parts, th.MetaValue.Render(status))
	}
	return strings.Join(parts, th.MetaLabel.Render(" | "))
}

// Alert renders a modal notification centered in a width x height area.
// pending counts alerts queued behind this one.
func Alert(message string, pending, width, height int, th tuitheme.Theme) string {
	hint := "enter/esc to dismiss"
	if pending > 0 {
		hint = fmt.Sprintf("%s (%d more)", hint, pending)
	}
	box := th.AlertBox.Render(th.AlertText.Render(message) + "\n\n" + th.AlertHint.Render(hint))
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
