package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestPoller_RunsImmediatelyThenOnTicks(t *testing.T) {
	calls := make(chan struct{}, 16)
	p := New(10*time.Millisecond, func(context.Context) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer p.Stop()

	waitFor(t, calls, "initial call")
	waitFor(t, calls, "first tick")
	waitFor(t, calls, "second tick")
}

func TestPoller_NoCallsAfterStop(t *testing.T) {
	var count atomic.Int64
	p := New(5*time.Millisecond, func(context.Context) { count.Add(1) })
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	p.Stop()

	after := count.Load()
	time.Sleep(30 * time.Millisecond)
	if got := count.Load(); got != after {
		t.Fatalf("fn called after Stop: before=%d after=%d", after, got)
	}
	select {
	case <-p.done:
	default:
		t.Fatal("expected loop goroutine to have exited after Stop")
	}
}

func TestPoller_StopCancelsInFlightCall(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})
	p := New(time.Hour, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	})
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	waitFor(t, started, "call start")
	p.Stop()
	waitFor(t, cancelled, "context cancellation")
}

func TestPoller_TriggerRunsEarly(t *testing.T) {
	calls := make(chan struct{}, 4)
	p := New(time.Hour, func(context.Context) { calls <- struct{}{} })
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer p.Stop()

	waitFor(t, calls, "initial call")
	p.Trigger()
	waitFor(t, calls, "triggered call")
}

func TestPoller_CallsNeverOverlap(t *testing.T) {
	var active, overlaps atomic.Int64
	p := New(time.Millisecond, func(context.Context) {
		if active.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
	})
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	p.Stop()

	if overlaps.Load() != 0 {
		t.Fatalf("expected no overlapping calls, got %d", overlaps.Load())
	}
}

func TestPoller_TickAndTriggerDuringRunCoalesce(t *testing.T) {
	const interval = 100 * time.Millisecond
	var count atomic.Int64
	release := make(chan struct{})
	started := make(chan struct{})
	p := New(interval, func(context.Context) {
		if count.Add(1) == 1 {
			close(started)
			<-release
		}
	})
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer p.Stop()

	waitFor(t, started, "initial call")
	// Let a tick land while the first call is still running, then ask for a
	// refresh on top of it.
	time.Sleep(interval + 20*time.Millisecond)
	p.Trigger()
	close(release)

	time.Sleep(40 * time.Millisecond)
	if got := count.Load(); got != 2 {
		t.Fatalf("expected exactly one follow-up call, got %d calls", got)
	}
}

func TestPoller_StartTwiceAndAfterStop(t *testing.T) {
	p := New(time.Hour, func(context.Context) {})
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := p.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Fatalf("expected ErrRunning, got %v", err)
	}
	p.Stop()
	p.Stop()
	if err := p.Start(context.Background()); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func TestPoller_ParentContextEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := New(time.Millisecond, func(context.Context) {})
	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	cancel()

	waitFor(t, p.done, "loop exit after parent context cancelled")
	p.Stop()
}

func TestPoller_StopBeforeStart(t *testing.T) {
	p := New(0, func(context.Context) {})
	p.Stop()
	if p.interval != DefaultInterval {
		t.Fatalf("expected default interval, got %v", p.interval)
	}
}
