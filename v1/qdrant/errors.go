package qdrant

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrInvalidEndpoint is returned when no usable gRPC endpoint can be
	// derived from the configuration.
	ErrInvalidEndpoint = errors.New("qdrant: invalid cluster endpoint")

	// ErrCollectionCreate is returned when the target collection is
	// missing and could not be created. No vectors were written.
	ErrCollectionCreate = errors.New("qdrant: could not create collection")

	// ErrUpsertRejected is returned when the cluster rejects a request
	// with a non-retryable gRPC code.
	ErrUpsertRejected = errors.New("qdrant: upsert rejected")
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
	return fmt.Sprintf("qdrant: batch %d failed after retries: %v", e.Batch, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// retryableCode reports whether a gRPC code is a transient failure worth
// retrying. Mirrors the HTTP classification used by the Pinecone writer:
// rate limiting and server-side errors retry, client errors do not.
func retryableCode(code codes.Code) bool {
	switch code {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.Aborted,
		codes.Internal,
		codes.DeadlineExceeded:
		return true
	}
	return false
}

// isRetryable classifies errors for the retry policy. Errors without a gRPC
// status are transport-level failures and retry.
func isRetryable(err error) bool {
	if errors.Is(err, ErrUpsertRejected) || errors.Is(err, ErrCollectionCreate) {
		return false
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		return retryableCode(s.Code())
	}
	return true
}
