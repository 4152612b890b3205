package article

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, matching the TUI theme.
var (
	cpMauve    = lipgloss.Color("#cba6f7")
	cpPeach    = lipgloss.Color("#fab387")
	cpYellow   = lipgloss.Color("#f9e2af")
	cpGreen    = lipgloss.Color("#a6e3a1")
	cpTeal     = lipgloss.Color("#94e2d5")
	cpBlue     = lipgloss.Color("#89b4fa")
	cpLavender = lipgloss.Color("#b4befe")
	cpSubtext0 = lipgloss.Color("#a6adc8")
	cpSubtext1 = lipgloss.Color("#bac2de")
	cpOverlay0 = lipgloss.Color("#6c7086")
	cpOverlay1 = lipgloss.Color("#7f849c")
	cpSurface2 = lipgloss.Color("#585b70")
)

type blockStyles struct {
	heading     lipgloss.Style
	headingBars []lipgloss.Style
	link        lipgloss.Style
	quoteBar    string
	quote       lipgloss.Style
	cite        lipgloss.Style
	code        lipgloss.Style
	tableBorder lipgloss.Style
	tableHeader lipgloss.Style
	imageLabel  lipgloss.Style
	imageText   lipgloss.Style
	rule        lipgloss.Style
	taskDone    lipgloss.Style
	taskOpen    lipgloss.Style
	summary     lipgloss.Style
}

type inlineStyles struct {
	strong    lipgloss.Style
	emphasis  lipgloss.Style
	underline lipgloss.Style
	strike    lipgloss.Style
	mark      lipgloss.Style
}

var blocks = blockStyles{
	heading: lipgloss.NewStyle().Bold(true).Foreground(cpLavender),
	headingBars: []lipgloss.Style{
		lipgloss.NewStyle().Bold(true).Foreground(cpBlue),
		lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		lipgloss.NewStyle().Bold(true).Foreground(cpGreen),
		lipgloss.NewStyle().Bold(true).Foreground(cpYellow),
		lipgloss.NewStyle().Bold(true).Foreground(cpPeach),
	},
	link:        lipgloss.NewStyle().Foreground(cpBlue).Faint(true),
	quoteBar:    lipgloss.NewStyle().Foreground(cpOverlay1).Render("│ "),
	quote:       lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0),
	cite:        lipgloss.NewStyle().Italic(true).Foreground(cpOverlay0).Faint(true),
	code:        lipgloss.NewStyle().Foreground(cpPeach),
	tableBorder: lipgloss.NewStyle().Foreground(cpSurface2),
	tableHeader: lipgloss.NewStyle().Bold(true).Foreground(cpYellow),
	imageLabel:  lipgloss.NewStyle().Foreground(cpMauve).Faint(true).Italic(true),
	imageText:   lipgloss.NewStyle().Foreground(cpSubtext1).Italic(true),
	rule:        lipgloss.NewStyle().Foreground(cpSurface2),
	taskDone:    lipgloss.NewStyle().Foreground(cpGreen),
	taskOpen:    lipgloss.NewStyle().Foreground(cpOverlay1),
	summary:     lipgloss.NewStyle().Bold(true).Foreground(cpSubtext1),
}

var inlines = inlineStyles{
	strong:    lipgloss.NewStyle().Bold(true),
	emphasis:  lipgloss.NewStyle().Italic(true),
	underline: lipgloss.NewStyle().Underline(true),
	strike:    lipgloss.NewStyle().Strikethrough(true).Foreground(cpOverlay0),
	mark:      lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
}
