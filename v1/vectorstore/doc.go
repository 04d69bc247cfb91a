// Package vectorstore defines the database-agnostic data model for vector
// upserts and the Writer interface implemented by the provider packages.
//
// The package is intentionally free of provider SDK types so that the
// orchestration layer can switch between vector databases (Pinecone, Qdrant)
// without changing application code:
//
//	func NewRunner(w vectorstore.Writer) *Runner {
//	    return &Runner{writer: w}
//	}
//
//	// Works with any implementation:
//	// - pinecone.NewClient(cfg)
//	// - qdrant.NewWriter(cfg)
//
// # Data Model
//
// A [Record] is one embedding plus its pass-through metadata. Records are
// constructed once per run, consumed by exactly one batch, and never
// persisted locally. An [UpsertResult] aggregates what a writer actually
// sent; a [Summary] is the single immutable record a run emits.
package vectorstore
