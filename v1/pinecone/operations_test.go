package pinecone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vecsink/vecsink/v1/retry"
	"github.com/vecsink/vecsink/v1/vectorstore"
)

const testKey = "pc-test-key-0123456789"

func fastPolicy() retry.Policy {
	p := retry.Default(isRetryable)
	p.InitialDelay = time.Millisecond
	return p
}

func records(n int) []vectorstore.Record {
	out := make([]vectorstore.Record, n)
	for i := range out {
		out[i] = vectorstore.Record{
			ID:     fmt.Sprintf("rec-%d", i),
			Values: []float32{0.1, 0.2},
		}
	}
	return out
}

// controlPlaneClient builds a client against a fake control plane that
// resolves test-index to the given data-plane host.
func controlPlaneClient(t *testing.T, dataHost string) *Client {
	t.Helper()

	control := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Api-Key") != testKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/indexes/test-index" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"index not found"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"host": dataHost})
	}))
	t.Cleanup(control.Close)

	client, err := NewClient(Config{
		APIKey:       testKey,
		IndexName:    "test-index",
		ControlPlane: control.URL,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.policy = fastPolicy()
	return client
}

func TestResolveHost(t *testing.T) {
	client := controlPlaneClient(t, "test-index-abc123.svc.pinecone.io")

	host, err := client.ResolveHost(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host != "test-index-abc123.svc.pinecone.io" {
		t.Fatalf("unexpected host %q", host)
	}

	// Second call hits the cache.
	again, err := client.ResolveHost(context.Background())
	if err != nil || again != host {
		t.Errorf("expected cached host %q, got %q (%v)", host, again, err)
	}
}

func TestResolveHost_UnknownIndex(t *testing.T) {
	client := controlPlaneClient(t, "unused")
	client.cfg.IndexName = "missing"

	_, err := client.ResolveHost(context.Background())
	if !errors.Is(err, ErrHostResolution) {
		t.Fatalf("expected ErrHostResolution, got %v", err)
	}
}

func TestResolveHost_BlankHost(t *testing.T) {
	client := controlPlaneClient(t, "")
	if _, err := client.ResolveHost(context.Background()); !errors.Is(err, ErrHostResolution) {
		t.Fatalf("expected ErrHostResolution, got %v", err)
	}
}

// upsertClient builds a client whose resolved host is the given fake data
// plane. The upsert URL is always https; a rewriting transport downgrades
// it so the request reaches the plain-HTTP httptest server.
func upsertClient(t *testing.T, batchSize int, dataPlane http.Handler) *Client {
	t.Helper()

	data := httptest.NewServer(dataPlane)
	t.Cleanup(data.Close)

	client, err := NewClient(Config{
		APIKey:    testKey,
		IndexName: "test-index",
		BatchSize: batchSize,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.policy = fastPolicy()
	client.host = strings.TrimPrefix(data.URL, "http://")
	client.http.Transport = downgradeTLS{base: http.DefaultTransport}
	return client
}

// downgradeTLS rewrites https requests to http so the client can talk to an
// httptest server.
type downgradeTLS struct{ base http.RoundTripper }

func (rt downgradeTLS) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme == "https" {
		clone := req.Clone(req.Context())
		clone.URL.Scheme = "http"
		return rt.base.RoundTrip(clone)
	}
	return rt.base.RoundTrip(req)
}

func TestUpsert_Batching(t *testing.T) {
	var batches []int
	client := upsertClient(t, 1000, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req upsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad body: %v", err)
		}
		batches = append(batches, len(req.Vectors))
		json.NewEncoder(w).Encode(upsertResponse{UpsertedCount: len(req.Vectors)})
	}))

	result, err := client.Upsert(context.Background(), records(1500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BatchesSent != 2 {
		t.Errorf("expected 2 batches, got %d", result.BatchesSent)
	}
	if result.VectorsWritten != 1500 {
		t.Errorf("expected 1500 vectors, got %d", result.VectorsWritten)
	}
	if len(batches) != 2 || batches[0] != 1000 || batches[1] != 500 {
		t.Errorf("unexpected batch sizes: %v", batches)
	}
	if result.ProviderMetadata["namespace"] != "(default)" {
		t.Errorf("unexpected namespace metadata: %v", result.ProviderMetadata["namespace"])
	}
}

func TestUpsert_RetriesOn429ThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	client := upsertClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(upsertResponse{UpsertedCount: 1})
	}))

	result, err := client.Upsert(context.Background(), records(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.VectorsWritten != 1 {
		t.Errorf("expected 1 vector, got %d", result.VectorsWritten)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestUpsert_ExhaustedRetriesBecomeBatchError(t *testing.T) {
	var calls atomic.Int32
	client := upsertClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.Upsert(context.Background(), records(1))

	var be *BatchError
	if !errors.As(err, &be) {
		t.Fatalf("expected BatchError, got %v", err)
	}
	if be.Batch != 0 {
		t.Errorf("expected batch 0, got %d", be.Batch)
	}
	if calls.Load() != 3 {
		t.Errorf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestUpsert_BadRequestFailsImmediately(t *testing.T) {
	var calls atomic.Int32
	client := upsertClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"dimension mismatch"}`)
	}))

	_, err := client.Upsert(context.Background(), records(1))
	if !errors.Is(err, ErrUpsertRejected) {
		t.Fatalf("expected ErrUpsertRejected, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", calls.Load())
	}
}

func TestUpsert_UnauthorizedFailsImmediately(t *testing.T) {
	var calls atomic.Int32
	client := upsertClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Upsert(context.Background(), records(1))
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 attempt, got %d", calls.Load())
	}
}

func TestUpsert_ErrorTextIsSanitized(t *testing.T) {
	client := upsertClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		// Provider echoes the key back in the error body.
		fmt.Fprintf(w, `{"error":"key %s rejected"}`, r.Header.Get("Api-Key"))
	}))

	_, err := client.Upsert(context.Background(), records(1))
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), testKey) {
		t.Errorf("api key leaked in error: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "[REDACTED]") {
		t.Errorf("expected redaction marker in error: %q", err.Error())
	}
}

func TestUpsert_NamespaceOmittedWhenEmpty(t *testing.T) {
	var sawNamespaceKey bool
	client := upsertClient(t, 100, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		json.NewDecoder(r.Body).Decode(&raw)
		_, sawNamespaceKey = raw["namespace"]
		json.NewEncoder(w).Encode(upsertResponse{UpsertedCount: 1})
	}))

	if _, err := client.Upsert(context.Background(), records(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sawNamespaceKey {
		t.Error("expected namespace field omitted for default namespace")
	}
}

func TestFilterMetadata(t *testing.T) {
	meta := map[string]any{
		"title":  "doc",
		"page":   float64(3),
		"flag":   true,
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"drop": "me"},
		"mixed":  []any{"a", 1},
	}
	got := filterMetadata(meta)

	if _, ok := got["nested"]; ok {
		t.Error("expected nested map dropped")
	}
	if _, ok := got["mixed"]; ok {
		t.Error("expected mixed list dropped")
	}
	if got["title"] != "doc" || got["page"] != float64(3) || got["flag"] != true {
		t.Errorf("expected scalars kept, got %v", got)
	}
	tags, ok := got["tags"].([]string)
	if !ok || len(tags) != 2 {
		t.Errorf("expected string list kept, got %v", got["tags"])
	}
}

func TestFilterMetadata_SizeLimit(t *testing.T) {
	meta := map[string]any{
		"small": "kept",
		"huge":  strings.Repeat("x", MaxMetadataBytes+1),
	}
	got := filterMetadata(meta)
	if _, ok := got["huge"]; ok {
		t.Error("expected oversized value dropped")
	}
	if got["small"] != "kept" {
		t.Error("expected small value kept")
	}
}

func TestFilterMetadata_Empty(t *testing.T) {
	if filterMetadata(nil) != nil {
		t.Error("expected nil for empty metadata")
	}
}
