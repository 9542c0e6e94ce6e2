package views

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/platform/live"
)

// ErrSuperseded is returned to a caller whose load was overtaken by a newer one.
var ErrSuperseded = errors.New("superseded by a newer request")

// Loader runs fetches debounced and sequence-guarded: a burst of loads only
// fetches once, for the last caller, and a result that resolves after a
// newer load started is discarded.
type Loader[T any] struct {
	debouncer *live.Debouncer
	seq       live.Sequence

	mu      sync.Mutex
	pending chan struct{}
}

// NewLoader returns a loader that waits delay after the last load before fetching.
func NewLoader[T any](delay time.Duration) *Loader[T] {
	return &Loader[T]{debouncer: live.NewDebouncer(delay)}
}

// Load waits out the debounce delay and runs fetch. Earlier callers still
// waiting get ErrSuperseded immediately.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	token := l.seq.Next()
	ready := make(chan struct{})
	superseded := make(chan struct{})

	l.mu.Lock()
	if l.pending != nil {
		close(l.pending)
	}
	l.pending = superseded
	l.debouncer.Call(func() { close(ready) })
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-superseded:
		return zero, ErrSuperseded
	case <-ready:
	}

	val, err := fetch(ctx)
	if !l.seq.IsCurrent(token) {
		return zero, ErrSuperseded
	}
	return val, err
}

// Stop drops any pending load.
func (l *Loader[T]) Stop() {
	l.debouncer.Cancel()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending != nil {
		close(l.pending)
		l.pending = nil
	}
}
