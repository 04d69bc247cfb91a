package vectorstore

import "github.com/vecsink/vecsink/v1/pricing"

// Record represents a single embedding ready for upsert.
type Record struct {
	// ID is the vector identifier. Resubmitting the same ID overwrites the
	// stored vector (provider upsert semantics); duplicates within a run are
	// passed through unchanged.
	ID string `json:"id"`

	// Values is the dense embedding. Always non-empty with finite floats.
	Values []float32 `json:"values"`

	// Metadata is every non-embedding input field, passed through to the
	// provider. Providers apply their own type and size limits.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Dimension returns the dimensionality of the record's embedding.
func (r Record) Dimension() int {
	return len(r.Values)
}

// UpsertResult aggregates the outcome of a writer's upsert run.
type UpsertResult struct {
	// BatchesSent is the number of batches issued against the provider.
	BatchesSent int `json:"batches_sent"`

	// VectorsWritten is the number of vectors the provider acknowledged.
	VectorsWritten int `json:"vectors_written"`

	// ProviderMetadata carries provider-specific result details
	// (namespace, collection_created, ...) for the run summary.
	ProviderMetadata map[string]any `json:"provider_metadata,omitempty"`
}

// Summary is the single record a successful run emits. It is assembled once
// by the orchestrator and never mutated afterwards. A failed run emits no
// summary.
type Summary struct {
	// IsSummary marks the record so downstream consumers can skip it when
	// chaining runs.
	IsSummary bool `json:"_summary"`

	Provider             string          `json:"provider"`
	TotalVectorsUpserted int             `json:"total_vectors_upserted"`
	TotalBatches         int             `json:"total_batches"`
	ProcessingTime       float64         `json:"processing_time"`
	Billing              pricing.Billing `json:"billing"`

	// Pinecone-specific fields.
	IndexName string `json:"index_name,omitempty"`
	Namespace string `json:"namespace,omitempty"`

	// Qdrant-specific fields.
	CollectionName    string `json:"collection_name,omitempty"`
	ClusterURL        string `json:"cluster_url,omitempty"`
	DistanceMetric    string `json:"distance_metric,omitempty"`
	CollectionCreated *bool  `json:"collection_created,omitempty"`
}
