package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title     lipgloss.Style
	ModePill  lipgloss.Style
	MetaLabel lipgloss.Style
	MetaValue lipgloss.Style
	StateIdle lipgloss.Style
	StateLoad lipgloss.Style

	CardDate    lipgloss.Style
	CardTitle   lipgloss.Style
	CardPreview lipgloss.Style
	CardMarker  lipgloss.Style
	Placeholder lipgloss.Style

	DetailTitle lipgloss.Style
	AlertBox    lipgloss.Style
	AlertText   lipgloss.Style
	AlertHint   lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:  lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		MetaLabel: lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue: lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle: lipgloss.NewStyle().Foreground(cpGreen),
		StateLoad: lipgloss.NewStyle().Foreground(cpPeach),

		CardDate:    lipgloss.NewStyle().Foreground(cpTeal),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(cpText),
		CardPreview: lipgloss.NewStyle().Foreground(cpSubtext0),
		CardMarker:  lipgloss.NewStyle().Foreground(cpMauve).Bold(true),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),

		DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(cpLavender),
		AlertBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpRed).
			Padding(1, 3),
		AlertText: lipgloss.NewStyle().Bold(true).Foreground(cpText),
		AlertHint: lipgloss.NewStyle().Foreground(cpOverlay1),
	}
}

// CardGutter is the left marker column of a preview card.
func (t Theme) CardGutter(active bool) string {
	if active {
		return t.CardMarker.Render("▌") + " "
	}
	return "  "
}
