// Package retry provides the bounded retry policy shared by the provider
// writers.
//
// A Policy is a small value object: maximum attempts, initial delay, and a
// predicate deciding which errors are worth retrying. The delay doubles on
// each attempt (exponential backoff, via cenkalti/backoff), and the sleep
// between attempts respects context cancellation.
//
//	policy := retry.Policy{
//	    MaxAttempts:  3,
//	    InitialDelay: time.Second,
//	    Retryable:    isTransientStatus,
//	}
//	err := policy.Do(ctx, func() error { return upsertBatch(ctx, batch) })
//
// Errors rejected by the predicate propagate immediately; only transient
// classes (rate limiting, server-side failures, transport errors) consume
// attempts.
package retry
