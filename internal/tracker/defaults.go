package tracker

import (
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
)

const (
	defaultResolveAttempts = 10
	defaultResolveDelay    = 5 * time.Second

	defaultWaitAttempts = 60
	defaultWaitDelay    = 10 * time.Second

	defaultMaxBatchSize     = 100
	defaultBatchConcurrency = 4
)

// DefaultResolvePolicy polls for an operation id ten times, five seconds apart.
func DefaultResolvePolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: defaultResolveAttempts,
		Backoff:     retry.Fixed(defaultResolveDelay),
	}
}

// DefaultWaitPolicy polls an operation's status for up to ten minutes.
func DefaultWaitPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts: defaultWaitAttempts,
		Backoff:     retry.Fixed(defaultWaitDelay),
	}
}
