package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultMaxAttempts bounds how often a single operation is tried.
	DefaultMaxAttempts = 3

	// DefaultInitialDelay is the backoff before the first retry. It doubles
	// on every subsequent attempt.
	DefaultInitialDelay = time.Second
)

// Policy describes a bounded retry with exponential backoff.
// The zero value is not usable; construct with Default or set all fields.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first one.
	MaxAttempts int

	// InitialDelay is the sleep before the first retry.
	InitialDelay time.Duration

	// Retryable decides whether an error is transient. A nil predicate
	// treats every error as retryable.
	Retryable func(error) bool

	// OnRetry, if set, is called before each backoff sleep. Used for retry
	// metrics and logging; attempt starts at 1 for the first failed try.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Default returns the policy used by both provider writers: 3 attempts,
// 1 second initial delay, doubling per attempt.
func Default(retryable func(error) bool) Policy {
	return Policy{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		Retryable:    retryable,
	}
}

// Do runs op until it succeeds, a non-retryable error occurs, all attempts
// are used up, or ctx is cancelled. The error of the last attempt is
// returned.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.InitialDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = p.InitialDelay * time.Duration(1<<uint(attempts))
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	attempt := 0
	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		attempt++
		return err
	}

	notify := func(err error, delay time.Duration) {
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, delay)
		}
	}

	capped := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(attempts-1)), ctx)
	return backoff.RetryNotify(wrapped, capped, notify)
}
