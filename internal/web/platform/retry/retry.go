// Package retry runs fallible operations with capped exponential backoff.
package retry

import (
	"context"
	"time"
)

// DefaultRetries is the number of retries after the initial attempt.
const DefaultRetries = 3

// Sleeper waits between attempts. Production code uses TimerSleeper; tests
// inject Immediate so retries run without real sleep.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper waits on a real timer, aborting early when ctx ends.
type TimerSleeper struct{}

// Sleep blocks for d or until ctx is done.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Immediate is a zero-delay sleeper for tests.
type Immediate struct{}

// Sleep returns immediately unless ctx is already done.
func (Immediate) Sleep(ctx context.Context, _ time.Duration) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

// Backoff returns the wait before retry attempt n (1-based): 2^n seconds.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}

// Do runs fn up to 1+retries times, sleeping Backoff(n) before retry n.
// The last failure is returned when all attempts are exhausted. A context
// cancellation during the wait returns ctx.Err() so callers can distinguish
// superseded requests from real failures.
func Do(ctx context.Context, retries int, sleeper Sleeper, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if retries < 0 {
		retries = DefaultRetries
	}
	if sleeper == nil {
		sleeper = TimerSleeper{}
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			if err := sleeper.Sleep(ctx, Backoff(attempt)); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}
