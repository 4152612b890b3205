package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/journal-cli/internal/journal"
)

const FetchTimeout = 10 * time.Second

type Fetcher interface {
	Fetch(ctx context.Context) ([]journal.Entry, error)
}

type FetchStartedMsg struct{}

type FetchSucceededMsg struct {
	Entries  []journal.Entry
	Duration time.Duration
}

type FetchFailedMsg struct {
	Err      error
	Duration time.Duration
}

type CopySuccessMsg struct {
	Status string
}

type CopyErrorMsg struct {
	Err error
}

type ClearStatusMsg struct {
	ID int
}

// Fetch runs one fetch and reports the outcome as a message.
func Fetch(ctx context.Context, fetcher Fetcher) tea.Msg {
	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()
	start := time.Now()

	entries, err := fetcher.Fetch(ctx)
	if err != nil {
		return FetchFailedMsg{Err: err, Duration: time.Since(start)}
	}
	return FetchSucceededMsg{Entries: entries, Duration: time.Since(start)}
}

// PollFunc adapts fetcher to a poller callback that reports progress through
// send, typically (*tea.Program).Send. Results of a fetch cancelled by the
// poller stopping are dropped.
func PollFunc(fetcher Fetcher, send func(tea.Msg)) func(context.Context) {
	return func(ctx context.Context) {
		send(FetchStartedMsg{})
		msg := Fetch(ctx, fetcher)
		if ctx.Err() != nil {
			return
		}
		send(msg)
	}
}

func CopyCmd(text string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn == nil {
			return CopyErrorMsg{Err: fmt.Errorf("clipboard is not available")}
		}
		if err := copyFn(text); err != nil {
			return CopyErrorMsg{Err: fmt.Errorf("could not copy entry to clipboard: %w", err)}
		}
		return CopySuccessMsg{Status: "Entry copied to clipboard"}
	}
}

func ClearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
