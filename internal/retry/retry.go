// Package retry implements the bounded, cancellable retry loop shared by every polling component.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/clock"
)

// Policy bounds a retry loop.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Backoff computes the wait after a failed attempt. Nil means no wait.
	Backoff Backoff
	// Retryable decides whether an attempt error allows another attempt. Nil retries nothing.
	Retryable func(error) bool
}

// WithRetryable returns a copy of p that also retries every error fn accepts.
// A Retryable already set on p can widen the retried set but never narrow it.
func (p Policy) WithRetryable(fn func(error) bool) Policy {
	own := p.Retryable
	if own == nil {
		p.Retryable = fn
		return p
	}
	p.Retryable = func(err error) bool {
		return fn(err) || own(err)
	}
	return p
}

// ExhaustedError is returned when every attempt failed with a retryable error.
type ExhaustedError struct {
	Attempts int
	// Err is the error of the last attempt.
	Err error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry budget exhausted after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Do calls fn until it succeeds, returns a non-retryable error, the context ends or the budget is spent.
// Non-retryable errors and context errors are returned as is.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context, attempt int) error) error {
	return do(ctx, clock.SleepWithContext, p, fn)
}

func do(ctx context.Context, sleep clock.SleepFunc, p Policy, fn func(ctx context.Context, attempt int) error) error {
	if p.MaxAttempts <= 0 {
		return errors.New("retry policy requires at least one attempt")
	}

	var prevDelay time.Duration
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx, attempt)
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return err
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if attempt >= p.MaxAttempts {
			return &ExhaustedError{Attempts: attempt, Err: err}
		}

		var delay time.Duration
		if p.Backoff != nil {
			delay = p.Backoff(attempt)
		}
		// never back off less than before
		if delay < prevDelay {
			delay = prevDelay
		}
		prevDelay = delay

		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
}
