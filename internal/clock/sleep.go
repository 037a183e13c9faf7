// Package clock provides cancellable waiting used by polling loops.
package clock

import (
	"context"
	"time"
)

// SleepFunc waits for d or until ctx is done. Polling components take one so tests can skip real waits.
type SleepFunc func(ctx context.Context, d time.Duration) error

var _ SleepFunc = SleepWithContext

// SleepWithContext waits for the duration or returns early if the context is canceled.
// A non-positive duration only checks the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
