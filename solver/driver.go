// Package solver is the concurrent front door of the exact-cover solver: a
// Driver owns one dedicated worker goroutine per instance, running the
// search engine against a Matrix built from a Problem, and exposes progress
// as a channel of Events.
package solver

import (
	"sync"

	"github.com/corwin-vance/xcover/problem"
)

// Driver runs one Problem's search on a dedicated goroutine. The zero value
// is not usable; construct with New. A Driver must not be reused across
// goroutines without external synchronization beyond what its own methods
// provide -- Run/Pause/Abort/RequestProgress/Close are all safe to call
// concurrently with each other.
type Driver[E, N comparable] struct {
	problem *problem.Problem[E, N]

	mu      sync.Mutex
	started bool
	sigCh   chan signal
	eventCh chan Event[N]
	done    chan struct{}
}

// New captures problem but does not start a worker.
func New[E, N comparable](p *problem.Problem[E, N]) *Driver[E, N] {
	return &Driver[E, N]{problem: p}
}

// Run starts the worker on first call, building the Matrix from the
// Problem; construction errors from Problem.Build (e.g. InvalidItemRef) are
// returned synchronously and no worker is spawned. On subsequent calls
// (e.g. after Pause) it sends the Run signal to resume.
func (d *Driver[E, N]) Run() error {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		d.sendSignal(signalRun)
		return nil
	}

	m, names, err := d.problem.Build()
	if err != nil {
		d.mu.Unlock()
		return err
	}

	// The signal channel is buffered so that a controller goroutine that is
	// also the event consumer can send a signal while the worker is blocked
	// mid-send on the event channel, without the two deadlocking against
	// each other.
	sigCh := make(chan signal, 8)
	eventCh := make(chan Event[N])
	done := make(chan struct{})
	d.sigCh, d.eventCh, d.done = sigCh, eventCh, done
	d.started = true
	d.mu.Unlock()

	cb := &threadCallback[E, N]{names: names, sigCh: sigCh, eventCh: eventCh}
	go func() {
		defer close(done)
		defer close(eventCh)
		m.Solve(cb)
	}()
	return nil
}

// RequestProgress asks the worker to emit a ProgressUpdated event at its
// next cooperation point. A no-op if no worker is running.
func (d *Driver[E, N]) RequestProgress() { d.sendSignal(signalRequestProgress) }

// Pause asks the worker to block at its next cooperation point until Run or
// Abort arrives. A no-op if no worker is running.
func (d *Driver[E, N]) Pause() { d.sendSignal(signalPause) }

// Abort asks the worker to stop trying further branches and unwind. A
// no-op if no worker is running.
func (d *Driver[E, N]) Abort() { d.sendSignal(signalAbort) }

// sendSignal is idempotent: signals sent after the worker has exited are
// silently dropped, per spec's ChannelClosed handling policy.
func (d *Driver[E, N]) sendSignal(s signal) {
	d.mu.Lock()
	started := d.started
	sigCh, done := d.sigCh, d.done
	d.mu.Unlock()
	if !started {
		return
	}
	select {
	case sigCh <- s:
	case <-done:
	}
}

// Events returns the channel of Events for this Driver. It yields values
// until the worker emits Finished or Aborted and closes it. Calling Events
// before the first Run returns a nil channel, which blocks forever on
// receive -- callers should call Run first.
func (d *Driver[E, N]) Events() <-chan Event[N] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.eventCh
}

// Close requests an abort (if a worker is running) and blocks until the
// worker has exited, draining the event channel so the worker never blocks
// on a send it has no reader for. Safe to call even if Run was never
// called, or more than once.
func (d *Driver[E, N]) Close() {
	d.mu.Lock()
	started := d.started
	eventCh := d.eventCh
	d.mu.Unlock()
	if !started {
		return
	}
	d.Abort()
	for range eventCh {
	}
}
