package vectorstore

import "context"

// Writer is the common interface for all vector database writers.
// It provides a database-agnostic abstraction for batched upserts, allowing
// the orchestrator to dispatch to either provider without branching.
//
// Implementations batch sequentially (one batch in flight), apply the shared
// bounded-retry policy per batch, and sanitize any credential material out
// of error text before returning it.
type Writer interface {
	// Upsert writes all records in input order as sequential batches and
	// returns aggregate counts. A batch that still fails after retries is
	// surfaced as an error carrying the batch index; no further batches are
	// attempted.
	Upsert(ctx context.Context, records []Record) (*UpsertResult, error)

	// Provider returns the provider identifier ("pinecone" or "qdrant").
	Provider() string
}
