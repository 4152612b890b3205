package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/journal-cli/internal/format"
	"github.com/glabrego/journal-cli/internal/journal"
	article "github.com/glabrego/journal-cli/internal/render/article"
	"github.com/glabrego/journal-cli/internal/tui/actions"
	"github.com/glabrego/journal-cli/internal/tui/platform"
	"github.com/glabrego/journal-cli/internal/tui/state"
	tuitheme "github.com/glabrego/journal-cli/internal/tui/theme"
	"github.com/glabrego/journal-cli/internal/tui/view"
)

const (
	AlertMissingCredential = "You must be logged in to view journals."
	AlertFetchFailed       = "Failed to fetch journals."
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	statusTTL     = 3 * time.Second
)

type Options struct {
	Formatter format.Formatter
	// Refresh asks the fetch loop for an immediate run.
	Refresh func()
	Copy    func(string) error
	Theme   *tuitheme.Theme
}

type Model struct {
	entries  []journal.Entry
	previews []string
	cursor   int
	// selected is a snapshot of the entry shown in the detail view; nil in
	// list mode.
	selected *journal.Entry

	loading bool
	loaded  bool
	alerts  []string

	status   string
	statusID int

	width    int
	height   int
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model

	formatter format.Formatter
	theme     tuitheme.Theme
	refreshFn func()
	copyFn    func(string) error
}

func NewModel(opts Options) Model {
	th := tuitheme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = platform.CopyText
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	m := Model{
		width:     defaultWidth,
		height:    defaultHeight,
		viewport:  viewport.New(defaultWidth, defaultHeight),
		spinner:   sp,
		help:      help.New(),
		formatter: opts.Formatter,
		theme:     th,
		refreshFn: opts.Refresh,
		copyFn:    copyFn,
	}
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if m.selected != nil {
			m.viewport.SetContent(m.detailContent())
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case actions.FetchStartedMsg:
		m.loading = true
		return m, m.spinner.Tick
	case actions.FetchSucceededMsg:
		m.loading = false
		m.loaded = true
		m.setEntries(msg.Entries)
		return m, nil
	case actions.FetchFailedMsg:
		m.loading = false
		m.loaded = true
		if errors.Is(msg.Err, journal.ErrMissingCredential) {
			m.pushAlert(AlertMissingCredential)
		} else {
			m.pushAlert(AlertFetchFailed)
		}
		return m, nil
	case actions.CopySuccessMsg:
		return m.withStatus(msg.Status)
	case actions.CopyErrorMsg:
		return m.withStatus(msg.Err.Error())
	case actions.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// An alert is modal until dismissed.
	if len(m.alerts) > 0 {
		if key.Matches(msg, keys.Dismiss) {
			m.alerts = m.alerts[1:]
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, keys.Refresh):
		if m.refreshFn == nil {
			return m, nil
		}
		m.refreshFn()
		return m.withStatus("Refreshing...")
	}

	if m.selected != nil {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.moveCursorBy(-1)
	case key.Matches(msg, keys.Down):
		m.moveCursorBy(1)
	case key.Matches(msg, keys.Top):
		m.cursor = 0
	case key.Matches(msg, keys.Bottom):
		m.cursor = state.ClampCursor(len(m.entries)-1, len(m.entries))
	case key.Matches(msg, keys.PageUp):
		m.moveCursorBy(-m.pageStep())
	case key.Matches(msg, keys.PageDown):
		m.moveCursorBy(m.pageStep())
	case key.Matches(msg, keys.Open):
		if len(m.entries) == 0 {
			return m, nil
		}
		m.openDetail(m.entries[m.cursor])
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.selected = nil
		m.viewport.SetContent("")
		return m, nil
	case key.Matches(msg, keys.Copy):
		return m, actions.CopyCmd(view.CopyText(*m.selected), m.copyFn)
	case key.Matches(msg, keys.Top):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) openDetail(entry journal.Entry) {
	m.selected = &entry
	m.viewport.SetContent(m.detailContent())
	m.viewport.GotoTop()
}

// setEntries replaces the list wholesale. A selection whose id is present in
// the new list follows the new version; otherwise its snapshot is kept.
func (m *Model) setEntries(entries []journal.Entry) {
	m.entries = entries
	m.previews = make([]string, len(entries))
	for i, entry := range entries {
		m.previews[i] = format.TruncateText(entry.Description, format.PreviewLength)
	}
	m.cursor = state.ClampCursor(m.cursor, len(m.entries))

	if m.selected == nil || !m.selected.HasID() {
		return
	}
	idx := journal.IndexByID(m.entries, m.selected.ID)
	if idx < 0 {
		return
	}
	entry := m.entries[idx]
	m.selected = &entry
	m.cursor = idx
	m.viewport.SetContent(m.detailContent())
}

func (m *Model) pushAlert(text string) {
	for _, queued := range m.alerts {
		if queued == text {
			return
		}
	}
	m.alerts = append(m.alerts, text)
}

func (m Model) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	m.layout()
	return m, actions.ClearStatusCmd(m.statusID, statusTTL)
}

func (m *Model) moveCursorBy(delta int) {
	m.cursor = state.ClampCursor(m.cursor+delta, len(m.entries))
}

func (m Model) pageStep() int {
	start, end := state.CardWindow(m.cardHeights(m.cards()), m.cursor, m.bodyHeight())
	if end-start > 1 {
		return end - start
	}
	return 1
}

func (m *Model) layout() {
	m.help.Width = m.width
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.bodyHeight()
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width - 1
	}
	return defaultWidth
}

func (m Model) bodyHeight() int {
	height := m.height
	if height <= 0 {
		height = defaultHeight
	}
	if h := height - 4 - lipgloss.Height(m.footer()); h > 3 {
		return h
	}
	return 3
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.body())
	b.WriteString("\n\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) header() string {
	p := view.HeaderParams{Loading: m.loading, Spinner: m.spinner.View()}
	if m.selected != nil {
		p.InDetail = true
		p.Stamp = view.Stamp(m.formatter.FormatDate(m.selected.EntryDate), m.formatter.FormatTime(m.selected.EntryTime))
	}
	return view.Header(p, m.theme)
}

func (m Model) body() string {
	if len(m.alerts) > 0 {
		return view.Alert(m.alerts[0], len(m.alerts)-1, m.contentWidth(), m.bodyHeight(), m.theme)
	}
	if m.selected != nil {
		return m.viewport.View()
	}
	return m.listView()
}

func (m Model) listView() string {
	if !m.loaded && len(m.entries) == 0 {
		return view.Placeholder(view.LoadingText, m.theme)
	}
	if len(m.entries) == 0 {
		return view.Placeholder(view.EmptyText, m.theme)
	}
	cards := m.cards()
	start, end := state.CardWindow(m.cardHeights(cards), m.cursor, m.bodyHeight())
	return strings.TrimRight(view.RenderCards(cards[start:end]), "\n")
}

func (m Model) cards() [][]string {
	cards := make([][]string, len(m.entries))
	for i, entry := range m.entries {
		preview := ""
		if i < len(m.previews) {
			preview = m.previews[i]
		}
		cards[i] = view.RenderCard(view.CardParams{
			Entry:   entry,
			Date:    m.formatter.FormatDate(entry.EntryDate),
			Time:    m.formatter.FormatTime(entry.EntryTime),
			Preview: preview,
			Active:  i == m.cursor,
			Width:   m.contentWidth(),
		}, m.theme)
	}
	return cards
}

func (m Model) cardHeights(cards [][]string) []int {
	heights := make([]int, len(cards))
	for i, card := range cards {
		heights[i] = view.CardHeight(card)
	}
	return heights
}

func (m Model) detailContent() string {
	if m.selected == nil {
		return ""
	}
	return strings.Join(view.DetailLines(*m.selected, m.contentWidth(), article.DefaultOptions, m.theme), "\n")
}

func (m Model) footer() string {
	status := view.StatusLine(m.loading, len(m.entries), m.status, m.theme)
	var bindings help.KeyMap = listKeys{keys}
	if m.selected != nil {
		bindings = detailKeys{keys}
	}
	return status + "\n" + m.help.View(bindings)
}
