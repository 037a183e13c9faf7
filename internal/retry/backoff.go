package retry

import "time"

// Backoff returns the delay to wait after the given failed attempt (1-based).
// Implementations must not return a shorter delay for a later attempt.
type Backoff func(attempt int) time.Duration

// Fixed waits the same delay after every attempt.
func Fixed(d time.Duration) Backoff {
	return func(int) time.Duration { return d }
}

// Linear grows the delay by step after every attempt, capped at limit when limit > 0.
func Linear(initial, step, limit time.Duration) Backoff {
	return func(attempt int) time.Duration {
		d := initial + time.Duration(attempt-1)*step
		if limit > 0 && d > limit {
			return limit
		}
		return d
	}
}

// Exponential multiplies the delay by factor after every attempt, capped at limit when limit > 0.
// Factors below 1 are treated as 1.
func Exponential(initial time.Duration, factor float64, limit time.Duration) Backoff {
	if factor < 1 {
		factor = 1
	}
	return func(attempt int) time.Duration {
		d := float64(initial)
		for i := 1; i < attempt; i++ {
			d *= factor
			if limit > 0 && d >= float64(limit) {
				return limit
			}
		}
		return time.Duration(d)
	}
}
