// Package qdrant implements the vectorstore.Writer for Qdrant Cloud
// collections over the official Go client (gRPC).
//
// # Security model
//
//   - The cluster URL has already passed the strict *.cloud.qdrant.io
//     pattern check before it reaches this package; the gRPC endpoint is
//     derived from it, never taken verbatim from free-form input.
//   - The API key travels only in the client's auth metadata; error text
//     that might echo it back is sanitized before being logged or returned.
//
// # Endpoint derivation
//
// Qdrant Cloud URLs name the REST port (6333). The gRPC client speaks to
// port 6334, so the REST port is rewritten and a missing port defaults to
// 6334. TLS is always on for cloud endpoints; plain connections exist only
// for tests against local containers.
//
// # Collection bootstrap
//
// Before the first batch the target collection is checked and created if
// missing, sized to the dimension of the first record and configured with
// the requested distance metric (Cosine, Dot or Euclid). An existing
// collection is used as-is; its parameters are not reconciled.
//
// # Retries
//
// Each batch is retried up to 3 times with exponential backoff on the gRPC
// codes that map to transient failures (ResourceExhausted, Unavailable,
// Aborted, Internal, DeadlineExceeded) and on transport errors. Invalid
// requests and auth failures fail the run immediately.
//
// # Usage
//
//	client, err := qdrant.NewClient(qdrant.Config{
//	    ClusterURL:     "https://xyz.us-east-1.aws.cloud.qdrant.io:6333",
//	    APIKey:         apiKey,
//	    CollectionName: "documents",
//	    Distance:       "Cosine",
//	    BatchSize:      200,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//	result, err := client.Upsert(ctx, records)
package qdrant
