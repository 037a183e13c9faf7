package cli

import (
	"time"

	"github.com/goodnatureofminers/tac-operation-tracker/internal/retry"
	"github.com/goodnatureofminers/tac-operation-tracker/internal/trackerr"
	"github.com/spf13/cobra"
)

// policyFlags configures a polling command.
type policyFlags struct {
	attempts int
	interval time.Duration
	backoff  string
	limit    time.Duration
}

func (p *policyFlags) register(cmd *cobra.Command, attempts int, interval time.Duration) {
	cmd.Flags().IntVar(&p.attempts, "attempts", attempts, "maximum number of attempts")
	cmd.Flags().DurationVar(&p.interval, "interval", interval, "delay after the first failed attempt")
	cmd.Flags().StringVar(&p.backoff, "backoff", "fixed", "delay growth (fixed|linear|exponential)")
	cmd.Flags().DurationVar(&p.limit, "max-interval", 0, "upper bound of the delay, 0 means unbounded")
}

func (p *policyFlags) policy() (retry.Policy, error) {
	if p.attempts <= 0 {
		return retry.Policy{}, trackerr.Validationf("policy", "attempts must be positive")
	}
	if p.interval < 0 {
		return retry.Policy{}, trackerr.Validationf("policy", "interval must not be negative")
	}

	var backoff retry.Backoff
	switch p.backoff {
	case "fixed":
		backoff = retry.Fixed(p.interval)
	case "linear":
		backoff = retry.Linear(p.interval, p.interval, p.limit)
	case "exponential":
		backoff = retry.Exponential(p.interval, 2, p.limit)
	default:
		return retry.Policy{}, trackerr.Validationf("policy", "unknown backoff %q", p.backoff)
	}
	return retry.Policy{MaxAttempts: p.attempts, Backoff: backoff}, nil
}
