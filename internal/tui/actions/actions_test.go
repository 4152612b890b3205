package actions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/journal-cli/internal/journal"
)

type fakeFetcher struct {
	entries []journal.Entry
	err     error

	lastDeadline time.Time
	block        bool
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]journal.Entry, error) {
	if dl, ok := ctx.Deadline(); ok {
		f.lastDeadline = dl
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestFetch_SuccessUsesTimeout(t *testing.T) {
	f := &fakeFetcher{entries: []journal.Entry{{ID: "1", Title: "One"}}}
	msg := Fetch(context.Background(), f)

	got, ok := msg.(FetchSucceededMsg)
	if !ok {
		t.Fatalf("expected FetchSucceededMsg, got %T", msg)
	}
	if len(got.Entries) != 1 || got.Entries[0].Title != "One" {
		t.Fatalf("unexpected entries: %+v", got.Entries)
	}
	if f.lastDeadline.IsZero() || time.Until(f.lastDeadline) > FetchTimeout {
		t.Fatalf("expected fetch deadline within %s, got %v", FetchTimeout, f.lastDeadline)
	}
}

func TestFetch_Failure(t *testing.T) {
	msg := Fetch(context.Background(), &fakeFetcher{err: journal.ErrFetchFailed})
	got, ok := msg.(FetchFailedMsg)
	if !ok {
		t.Fatalf("expected FetchFailedMsg, got %T", msg)
	}
	if !errors.Is(got.Err, journal.ErrFetchFailed) {
		t.Fatalf("unexpected error: %v", got.Err)
	}
}

func TestPollFunc_SendsStartedThenResult(t *testing.T) {
	rec := &recorder{}
	fn := PollFunc(&fakeFetcher{entries: []journal.Entry{}}, rec.send)
	fn(context.Background())

	if len(rec.msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d (%+v)", len(rec.msgs), rec.msgs)
	}
	if _, ok := rec.msgs[0].(FetchStartedMsg); !ok {
		t.Fatalf("expected FetchStartedMsg first, got %T", rec.msgs[0])
	}
	if _, ok := rec.msgs[1].(FetchSucceededMsg); !ok {
		t.Fatalf("expected FetchSucceededMsg second, got %T", rec.msgs[1])
	}
}

func TestPollFunc_DropsResultWhenCancelled(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	fn := PollFunc(&fakeFetcher{block: true}, rec.send)

	done := make(chan struct{})
	go func() {
		fn(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll func did not return after cancel")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, msg := range rec.msgs {
		if _, ok := msg.(FetchFailedMsg); ok {
			t.Fatalf("expected cancelled fetch to be dropped, got %+v", rec.msgs)
		}
	}
}

func TestCopyCmd(t *testing.T) {
	var copied string
	msg := CopyCmd("hello", func(s string) error {
		copied = s
		return nil
	})()
	if _, ok := msg.(CopySuccessMsg); !ok || copied != "hello" {
		t.Fatalf("unexpected copy result: %T %q", msg, copied)
	}

	msg = CopyCmd("hello", func(string) error { return errors.New("no xclip") })()
	if _, ok := msg.(CopyErrorMsg); !ok {
		t.Fatalf("expected CopyErrorMsg, got %T", msg)
	}

	msg = CopyCmd("hello", nil)()
	if _, ok := msg.(CopyErrorMsg); !ok {
		t.Fatalf("expected CopyErrorMsg for nil copy func, got %T", msg)
	}
}
