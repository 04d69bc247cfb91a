package runconfig

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	// Index/collection names: alphanumeric plus hyphen/underscore, 1-64
	// chars, starting with a letter or digit.
	indexNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,63}$`)

	// Qdrant Cloud URL. The fixed suffix is the SSRF guard: the writer will
	// only ever connect to hosts under cloud.qdrant.io.
	qdrantURLPattern = regexp.MustCompile(`^https://[a-zA-Z0-9._-]+\.cloud\.qdrant\.io(:\d+)?$`)

	datasetIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_~-]{0,63}$`)

	fieldNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]{0,63}$`)

	namespacePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{0,64}$`)

	controlChars = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
)

// sanitizeText strips dangerous control characters and surrounding
// whitespace from a string input.
func sanitizeText(s string) string {
	return strings.TrimSpace(controlChars.ReplaceAllString(s, ""))
}

// Validate checks and normalizes a raw Input. It returns a classified error
// (see errors.go) on the first rule violated. No network calls are made.
func Validate(in Input) (*Config, error) {
	provider := strings.ToLower(sanitizeText(in.Provider))
	if provider == "" {
		provider = ProviderPinecone
	}
	if provider != ProviderPinecone && provider != ProviderQdrant {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidProvider, provider)
	}

	apiKey := strings.TrimSpace(in.APIKey)
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	indexName := sanitizeText(in.IndexName)
	if indexName == "" || !indexNamePattern.MatchString(indexName) {
		return nil, fmt.Errorf("%w: %q (alphanumeric with hyphens/underscores, 1-64 chars)", ErrInvalidName, indexName)
	}

	clusterURL := ""
	if provider == ProviderQdrant {
		clusterURL = strings.TrimRight(sanitizeText(in.Environment), "/")
		if !qdrantURLPattern.MatchString(clusterURL) {
			return nil, fmt.Errorf("%w: must match https://{cluster}.cloud.qdrant.io[:port]", ErrInvalidClusterURL)
		}
	}

	namespace := sanitizeText(in.Namespace)
	if namespace != "" && !namespacePattern.MatchString(namespace) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}

	distance := sanitizeText(in.DistanceMetric)
	if distance == "" {
		distance = DefaultDistance
	}
	switch distance {
	case "Cosine", "Dot", "Euclid":
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDistance, distance)
	}

	datasetID := sanitizeText(in.DatasetID)
	hasDataset := datasetID != ""
	hasVectors := len(in.Vectors) > 0

	if !hasDataset && !hasVectors {
		return nil, ErrNoInput
	}

	if hasDataset {
		if !datasetIDPattern.MatchString(datasetID) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDatasetID, datasetID)
		}
	}

	// Dataset mode takes priority; literal vectors are only validated (and
	// kept) when they are the active source.
	var vectors []map[string]any
	if hasVectors && !hasDataset {
		if len(in.Vectors) > MaxRunVectors {
			return nil, fmt.Errorf("%w: %d provided, maximum is %d", ErrTooManyVectors, len(in.Vectors), MaxRunVectors)
		}
		for i, v := range in.Vectors {
			if err := validateEmbedding(v); err != nil {
				return nil, fmt.Errorf("%w: vectors[%d]: %v", ErrInvalidVector, i, err)
			}
		}
		vectors = in.Vectors
	}

	batchSize := in.BatchSize
	if batchSize == 0 {
		batchSize = DefaultBatchSize
	}
	maxBatch := MaxBatchSizePinecone
	if provider == ProviderQdrant {
		maxBatch = MaxBatchSizeQdrant
	}
	if batchSize < 1 {
		batchSize = 1
	}
	if batchSize > maxBatch {
		batchSize = maxBatch
	}

	idField := sanitizeText(in.IDField)
	if idField == "" {
		idField = DefaultIDField
	}
	if !fieldNamePattern.MatchString(idField) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidField, idField)
	}

	return &Config{
		APIKey:         apiKey,
		Provider:       provider,
		IndexName:      indexName,
		ClusterURL:     clusterURL,
		Namespace:      namespace,
		DistanceMetric: distance,
		DatasetID:      datasetID,
		Vectors:        vectors,
		BatchSize:      batchSize,
		IDField:        idField,
	}, nil
}

// validateEmbedding checks that a row carries a non-empty embedding array of
// finite numbers.
func validateEmbedding(row map[string]any) error {
	raw, ok := row["embedding"]
	if !ok {
		return fmt.Errorf("missing 'embedding' field")
	}

	switch emb := raw.(type) {
	case []any:
		if len(emb) == 0 {
			return fmt.Errorf("'embedding' must be a non-empty array of numbers")
		}
		for _, e := range emb {
			f, ok := e.(float64)
			if !ok {
				return fmt.Errorf("'embedding' contains a non-numeric value")
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("'embedding' contains a non-finite value")
			}
		}
	case []float64:
		if len(emb) == 0 {
			return fmt.Errorf("'embedding' must be a non-empty array of numbers")
		}
		for _, f := range emb {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("'embedding' contains a non-finite value")
			}
		}
	case []float32:
		if len(emb) == 0 {
			return fmt.Errorf("'embedding' must be a non-empty array of numbers")
		}
	default:
		return fmt.Errorf("'embedding' must be an array of numbers")
	}

	return nil
}
