// Package poll runs a function on a fixed cadence for as long as its owner is
// active.
package poll

import (
	"context"
	"errors"
	"sync"
	"time"
)

const DefaultInterval = 5 * time.Second

var (
	ErrRunning = errors.New("poller already running")
	ErrStopped = errors.New("poller stopped")
)

// Poller calls fn once on Start and then on every tick. Calls never overlap:
// ticks and triggers that arrive while fn runs collapse into a single
// follow-up call.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context)
	trigger  chan struct{}

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool
}

func New(interval time.Duration, fn func(ctx context.Context)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		interval: interval,
		fn:       fn,
		trigger:  make(chan struct{}, 1),
	}
}

// Start launches the loop and returns immediately. The context passed to fn is
// cancelled by Stop, which aborts any in-flight work.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return ErrStopped
	}
	if p.done != nil {
		return ErrRunning
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			if loopCtx.Err() != nil {
				return
			}
			p.fn(loopCtx)
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				select {
				case <-p.trigger:
				default:
				}
			case <-p.trigger:
				ticker.Reset(p.interval)
				select {
				case <-ticker.C:
				default:
				}
			}
		}
	}()
	return nil
}

// Trigger asks for an immediate run. It never blocks and is a no-op when a
// request is already pending.
func (p *Poller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Stop cancels the loop and waits for it to exit. After Stop returns fn is
// never called again. Stop is safe to call more than once.
func (p *Poller) Stop() {
	p.mu.Lock()
	p.stopped = true
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
