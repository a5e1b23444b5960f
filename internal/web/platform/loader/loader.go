// Package loader coordinates identity-keyed background fetches.
//
// Pages that refresh cached lists share three rules: duplicate concurrent
// fetches for the same identity are suppressed, a newer fetch supersedes and
// cancels any older in-flight one, and rapid successive requests are
// debounced before any network work starts. A superseded fetch must never
// apply its result: navigating from topic A to topic B must not let A's
// late response clobber B's state.
package loader

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce coalesces rapid parameter changes (tab switch, sort
// change) before issuing a fetch.
const DefaultDebounce = 200 * time.Millisecond

// FetchFunc performs the fetch and returns an apply function that commits
// the result. The loader only invokes apply when the fetch is still current.
type FetchFunc func(ctx context.Context) (apply func(), err error)

type flight struct {
	key    string
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

type pending struct {
	timer *time.Timer
	done  chan struct{}
}

// Loader serializes fetches per owner (typically one per page module).
type Loader struct {
	mu       sync.Mutex
	debounce time.Duration
	pending  *pending
	flight   *flight
}

// New builds a loader with the given debounce window. Zero disables
// debouncing, which tests rely on.
func New(debounce time.Duration) *Loader {
	return &Loader{debounce: debounce}
}

// Load schedules a fetch for the given identity key. Any older in-flight
// fetch is cancelled before Load returns. The returned channel closes when
// the scheduled work finishes, or immediately when the request was coalesced
// into an already-running fetch for the same key.
func (l *Loader) Load(key string, fetch FetchFunc) <-chan struct{} {
	done := make(chan struct{})
	if l == nil || fetch == nil {
		close(done)
		return done
	}

	l.mu.Lock()
	if p := l.pending; p != nil {
		l.pending = nil
		if p.timer.Stop() {
			// The coalesced request never ran; release its waiters here.
			// When Stop loses the race the fired callback closes it.
			close(p.done)
		}
	}
	if fl := l.flight; fl != nil && fl.key == key && !isClosed(fl.done) {
		// In-flight guard: same identity, nothing new to do.
		l.mu.Unlock()
		close(done)
		return done
	}
	if l.debounce > 0 {
		p := &pending{done: done}
		p.timer = time.AfterFunc(l.debounce, func() { l.fire(p, key, fetch) })
		l.pending = p
		l.mu.Unlock()
		return done
	}
	fl := l.beginLocked(key, done)
	l.mu.Unlock()

	go l.run(fl, fetch)
	return done
}

// beginLocked registers the new flight and cancels the one it supersedes.
// Callers hold l.mu, so the older fetch is already cancelled by the time
// Load returns and can no longer apply.
func (l *Loader) beginLocked(key string, done chan struct{}) *flight {
	ctx, cancel := context.WithCancel(context.Background())
	fl := &flight{key: key, ctx: ctx, cancel: cancel, done: done}
	if prev := l.flight; prev != nil {
		// Last-issued request wins.
		prev.cancel()
	}
	l.flight = fl
	return fl
}

// fire runs a debounced request once its timer expires.
func (l *Loader) fire(p *pending, key string, fetch FetchFunc) {
	l.mu.Lock()
	if l.pending != p {
		// A newer request superseded this one between the timer firing and
		// the lock being acquired.
		l.mu.Unlock()
		close(p.done)
		return
	}
	l.pending = nil
	fl := l.beginLocked(key, p.done)
	l.mu.Unlock()
	l.run(fl, fetch)
}

func (l *Loader) run(fl *flight, fetch FetchFunc) {
	defer close(fl.done)
	defer fl.cancel()

	apply, err := fetch(fl.ctx)
	superseded := fl.ctx.Err() != nil

	l.mu.Lock()
	current := l.flight == fl
	if current {
		l.flight = nil
	}
	l.mu.Unlock()

	if err != nil || apply == nil || !current || superseded {
		return
	}
	apply()
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
