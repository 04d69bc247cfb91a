package runconfig

// Provider identifiers accepted by the whitelist.
const (
	ProviderPinecone = "pinecone"
	ProviderQdrant   = "qdrant"
)

// Hard limits shared across the pipeline.
const (
	// MaxRunVectors is the ceiling on vectors processed in a single run,
	// whether they come from a dataset or a literal array.
	MaxRunVectors = 50_000

	// MaxBatchSizePinecone is the Pinecone API limit per upsert call.
	MaxBatchSizePinecone = 1000

	// MaxBatchSizeQdrant is the practical per-call limit for Qdrant.
	MaxBatchSizeQdrant = 500

	// MaxMetadataBytes is the Pinecone per-record metadata limit (40KB).
	MaxMetadataBytes = 40_000

	// DefaultBatchSize is used when the input does not specify one.
	DefaultBatchSize = 100

	// DefaultIDField is the input field used as the vector ID when the
	// input does not name one.
	DefaultIDField = "chunk_id"

	// DefaultDistance is the Qdrant distance metric used when the input
	// does not name one.
	DefaultDistance = "Cosine"
)

// Input is the raw, untrusted run request as decoded from JSON.
type Input struct {
	// APIKey is the provider credential. Presence-only validated; never
	// logged or echoed.
	APIKey string `json:"api_key"`

	// Provider selects the target vector database ("pinecone" or "qdrant").
	Provider string `json:"provider"`

	// IndexName is the Pinecone index or Qdrant collection name.
	IndexName string `json:"index_name"`

	// Environment is the Qdrant Cloud cluster URL
	// (e.g. "https://xyz.us-east-1.aws.cloud.qdrant.io:6333").
	Environment string `json:"environment"`

	// Namespace is the optional Pinecone namespace (empty = default).
	Namespace string `json:"namespace"`

	// DistanceMetric is the Qdrant distance metric used if the collection
	// has to be created (Cosine, Dot, Euclid).
	DistanceMetric string `json:"distance_metric"`

	// DatasetID references a dataset object produced by the upstream
	// embedding stage. Takes priority over Vectors when both are set.
	DatasetID string `json:"dataset_id"`

	// Vectors is a literal array of embedding rows.
	Vectors []map[string]any `json:"vectors"`

	// BatchSize is the requested vectors-per-upsert-call. Clamped to
	// [1, provider max].
	BatchSize int `json:"batch_size"`

	// IDField names the input field whose value becomes the vector ID.
	IDField string `json:"id_field"`
}

// Config is the validated, normalized run configuration. It is immutable
// once returned by Validate and is threaded explicitly through all
// components; nothing reads ambient run state.
type Config struct {
	APIKey         string
	Provider       string
	IndexName      string
	ClusterURL     string // qdrant only, validated pattern
	Namespace      string // pinecone only
	DistanceMetric string // qdrant only
	DatasetID      string
	Vectors        []map[string]any
	BatchSize      int
	IDField        string
}

// MaxBatchSize returns the provider-specific upper bound for batch sizes.
func (c *Config) MaxBatchSize() int {
	if c.Provider == ProviderQdrant {
		return MaxBatchSizeQdrant
	}
	return MaxBatchSizePinecone
}
