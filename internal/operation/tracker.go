// Package operation tracks a single superseding asynchronous operation, such
// as a draft generation or a PDF export, with a cancellation token per run.
package operation

import (
	"context"
	"sync"
	"time"
)

// Token identifies one run started by Begin.
type Token struct {
	seq uint64
}

// Seq returns the run's sequence number.
func (t Token) Seq() uint64 {
	return t.seq
}

// Tracker hands out tokens so that only the most recent run may publish its
// result. Starting a run cancels the previous one.
type Tracker struct {
	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	pending bool
	timeout time.Duration
}

// NewTracker creates a tracker. A positive timeout bounds every run.
func NewTracker(timeout time.Duration) *Tracker {
	return &Tracker{timeout: timeout}
}

// Begin starts a run derived from parent and cancels any run still in flight.
// The returned cancel func must be called when the run ends.
func (t *Tracker) Begin(parent context.Context) (context.Context, Token, context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if t.timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, t.timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	t.seq++
	t.cancel = cancel
	t.pending = true
	return ctx, Token{seq: t.seq}, cancel
}

// Finish marks the run as done. It reports false for a superseded or
// cancelled run, whose result must be discarded.
func (t *Tracker) Finish(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok.seq != t.seq {
		return false
	}
	t.pending = false
	t.cancel = nil
	return true
}

// Cancel aborts the run in flight, if any, and invalidates its token.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.seq++
	t.pending = false
}

// Pending reports whether a run is in flight.
func (t *Tracker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}
