package tracker

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
)

var (
	errNotYetAvailable = errors.New("operation id not yet available")
	errStillPending    = errors.New("operation still pending")
)

// classify turns a raw status service failure into a tracking error.
func classify(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return trackerr.Canceled(op, ctxErr)
	}
	if trackerr.KindOf(err) != trackerr.KindUnknown {
		return err
	}
	return trackerr.Fetch(op, err)
}

// finish maps the outcome of a retry loop; only terminal failures escape to callers.
func finish(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		return trackerr.Timeout(op, exhausted.Attempts, exhausted.Err)
	}
	if trackerr.KindOf(err) != trackerr.KindUnknown {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return trackerr.Canceled(op, err)
	}
	return classify(ctx, op, err)
}

func checkPolicy(op string, p retry.Policy) error {
	if p.MaxAttempts <= 0 {
		return trackerr.Validationf(op, "poll policy needs at least one attempt, got %d", p.MaxAttempts)
	}
	return nil
}

func retryableLookup(err error) bool {
	return errors.Is(err, errNotYetAvailable) || trackerr.Retryable(err)
}

func retryableWait(err error) bool {
	return errors.Is(err, errStillPending) || trackerr.Retryable(err)
}
