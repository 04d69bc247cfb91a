package pinecone

import (
	"errors"
	"fmt"
)

var (
	// ErrHostResolution is returned when the control plane cannot resolve
	// a data-plane host for the index. No vectors were written.
	ErrHostResolution = errors.New("pinecone: could not resolve index host")

	// ErrUnauthorized is returned for a rejected API key. Non-retryable.
	ErrUnauthorized = errors.New("pinecone: api key is invalid or expired")

	// ErrUpsertRejected is returned when the provider rejects a request
	// with a non-retryable status.
	ErrUpsertRejected = errors.New("pinecone: upsert rejected")
)

// BatchError reports a batch that still failed after exhausting retries.
// The wrapped error text has already been sanitized.
type BatchError struct {
	// Batch is the zero-based index of the failed batch.
	Batch int

	// Err is the sanitized error of the final attempt.
	Err error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("pinecone: batch %d failed after retries: %v", e.Batch, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// statusError carries an HTTP status with its sanitized body.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("pinecone: http %d: %s", e.status, e.body)
}

// retryableStatus reports whether an HTTP status is a transient failure
// worth retrying: rate limiting and server-side errors.
func retryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}

// isRetryable classifies errors for the retry policy: transient statuses
// and transport errors retry; everything else propagates immediately.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return retryableStatus(se.status)
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUpsertRejected) {
		return false
	}
	// Transport-level failure (connection reset, DNS, timeout).
	return true
}
