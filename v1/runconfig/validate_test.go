package runconfig

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func validPineconeInput() Input {
	return Input{
		APIKey:    "pc-test-key-12345",
		Provider:  "pinecone",
		IndexName: "my-index",
		Vectors: []map[string]any{
			{"chunk_id": "a", "embedding": []any{0.1, 0.2}},
		},
		BatchSize: 100,
	}
}

func validQdrantInput() Input {
	in := validPineconeInput()
	in.Provider = "qdrant"
	in.Environment = "https://xyz-example.eu-central-1.aws.cloud.qdrant.io:6333"
	return in
}

func TestValidate_Pinecone(t *testing.T) {
	cfg, err := Validate(validPineconeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderPinecone {
		t.Errorf("expected pinecone, got %s", cfg.Provider)
	}
	if cfg.BatchSize != 100 {
		t.Errorf("expected batch size 100, got %d", cfg.BatchSize)
	}
	if cfg.IDField != DefaultIDField {
		t.Errorf("expected default id field, got %s", cfg.IDField)
	}
}

func TestValidate_Qdrant(t *testing.T) {
	cfg, err := Validate(validQdrantInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClusterURL != "https://xyz-example.eu-central-1.aws.cloud.qdrant.io:6333" {
		t.Errorf("unexpected cluster url: %s", cfg.ClusterURL)
	}
	if cfg.DistanceMetric != "Cosine" {
		t.Errorf("expected default Cosine, got %s", cfg.DistanceMetric)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	in := validPineconeInput()
	in.APIKey = "   "
	_, err := Validate(in)
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if !IsValidationError(err) {
		t.Error("expected a classified validation error")
	}
}

func TestValidate_ProviderWhitelist(t *testing.T) {
	in := validPineconeInput()
	in.Provider = "weaviate"
	if _, err := Validate(in); !errors.Is(err, ErrInvalidProvider) {
		t.Fatalf("expected ErrInvalidProvider, got %v", err)
	}
}

func TestValidate_ProviderNormalized(t *testing.T) {
	in := validPineconeInput()
	in.Provider = "  Pinecone "
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderPinecone {
		t.Errorf("expected normalized provider, got %q", cfg.Provider)
	}
}

func TestValidate_DefaultProvider(t *testing.T) {
	in := validPineconeInput()
	in.Provider = ""
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderPinecone {
		t.Errorf("expected pinecone default, got %q", cfg.Provider)
	}
}

func TestValidate_IndexName(t *testing.T) {
	bad := []string{"", "-leading-hyphen", "has spaces", "sem;colon", strings.Repeat("x", 65)}
	for _, name := range bad {
		in := validPineconeInput()
		in.IndexName = name
		if _, err := Validate(in); !errors.Is(err, ErrInvalidName) {
			t.Errorf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestValidate_QdrantClusterURLGuard(t *testing.T) {
	bad := []string{
		"",
		"http://xyz.cloud.qdrant.io:6333",            // not https
		"https://attacker.example.com:6333",          // arbitrary host
		"https://xyz.cloud.qdrant.io.evil.com:6333",  // suffix spoof
		"https://xyz.cloud.qdrant.io:6333/some/path", // path not allowed
	}
	for _, u := range bad {
		in := validQdrantInput()
		in.Environment = u
		if _, err := Validate(in); !errors.Is(err, ErrInvalidClusterURL) {
			t.Errorf("url %q: expected ErrInvalidClusterURL, got %v", u, err)
		}
	}
}

func TestValidate_QdrantURLTrailingSlashOK(t *testing.T) {
	in := validQdrantInput()
	in.Environment = "https://xyz.cloud.qdrant.io:6333/"
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClusterURL != "https://xyz.cloud.qdrant.io:6333" {
		t.Errorf("expected trimmed url, got %s", cfg.ClusterURL)
	}
}

func TestValidate_ClusterURLIgnoredForPinecone(t *testing.T) {
	in := validPineconeInput()
	in.Environment = "https://whatever.example.com"
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClusterURL != "" {
		t.Errorf("expected empty cluster url for pinecone, got %s", cfg.ClusterURL)
	}
}

func TestValidate_DistanceMetric(t *testing.T) {
	in := validQdrantInput()
	in.DistanceMetric = "Manhattan"
	if _, err := Validate(in); !errors.Is(err, ErrInvalidDistance) {
		t.Fatalf("expected ErrInvalidDistance, got %v", err)
	}

	for _, d := range []string{"Cosine", "Dot", "Euclid"} {
		in.DistanceMetric = d
		cfg, err := Validate(in)
		if err != nil {
			t.Fatalf("distance %q: unexpected error: %v", d, err)
		}
		if cfg.DistanceMetric != d {
			t.Errorf("expected %q, got %q", d, cfg.DistanceMetric)
		}
	}
}

func TestValidate_NoInput(t *testing.T) {
	in := validPineconeInput()
	in.Vectors = nil
	in.DatasetID = ""
	if _, err := Validate(in); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestValidate_DatasetTakesPriority(t *testing.T) {
	in := validPineconeInput()
	in.DatasetID = "abc123"
	// Invalid literal vectors must not matter in dataset mode.
	in.Vectors = []map[string]any{{"no_embedding": true}}
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatasetID != "abc123" {
		t.Errorf("expected dataset id kept, got %q", cfg.DatasetID)
	}
	if cfg.Vectors != nil {
		t.Error("expected literal vectors dropped in dataset mode")
	}
}

func TestValidate_TooManyVectors(t *testing.T) {
	in := validPineconeInput()
	in.Vectors = make([]map[string]any, MaxRunVectors+1)
	for i := range in.Vectors {
		in.Vectors[i] = map[string]any{"embedding": []any{0.1}}
	}
	if _, err := Validate(in); !errors.Is(err, ErrTooManyVectors) {
		t.Fatalf("expected ErrTooManyVectors, got %v", err)
	}
}

func TestValidate_VectorShape(t *testing.T) {
	cases := []map[string]any{
		{"chunk_id": "a"},                        // missing embedding
		{"embedding": []any{}},                   // empty
		{"embedding": "not-an-array"},            // wrong type
		{"embedding": []any{0.1, "x"}},           // non-numeric element
		{"embedding": []any{0.1, math.Inf(1)}},   // non-finite
		{"embedding": []float64{0.1, math.NaN()}}, // non-finite typed
	}
	for i, row := range cases {
		in := validPineconeInput()
		in.Vectors = []map[string]any{row}
		if _, err := Validate(in); !errors.Is(err, ErrInvalidVector) {
			t.Errorf("case %d: expected ErrInvalidVector, got %v", i, err)
		}
	}
}

func TestValidate_BatchSizeClamped(t *testing.T) {
	in := validPineconeInput()
	in.BatchSize = 5000
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != MaxBatchSizePinecone {
		t.Errorf("expected clamp to %d, got %d", MaxBatchSizePinecone, cfg.BatchSize)
	}

	qin := validQdrantInput()
	qin.BatchSize = 5000
	qcfg, err := Validate(qin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qcfg.BatchSize != MaxBatchSizeQdrant {
		t.Errorf("expected clamp to %d, got %d", MaxBatchSizeQdrant, qcfg.BatchSize)
	}

	in.BatchSize = -3
	cfg, err = Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BatchSize != 1 {
		t.Errorf("expected clamp to 1, got %d", cfg.BatchSize)
	}
}

func TestValidate_IDField(t *testing.T) {
	in := validPineconeInput()
	in.IDField = "9starts-with-digit"
	if _, err := Validate(in); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}

	in.IDField = "metadata.doc_id"
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IDField != "metadata.doc_id" {
		t.Errorf("unexpected id field %q", cfg.IDField)
	}
}

func TestValidate_ControlCharsStripped(t *testing.T) {
	in := validPineconeInput()
	in.IndexName = "my-\x00index"
	cfg, err := Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IndexName != "my-index" {
		t.Errorf("expected control chars stripped, got %q", cfg.IndexName)
	}
}
