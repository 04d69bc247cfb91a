package pinecone

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vecsink/vecsink/v1/redact"
	"github.com/vecsink/vecsink/v1/runconfig"
	"github.com/vecsink/vecsink/v1/vectorstore"
)

// upsertVector is the wire shape of one vector in an upsert call.
type upsertVector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// upsertRequest is the wire shape of one upsert call. Namespace is omitted
// when empty, which targets the default namespace.
type upsertRequest struct {
	Vectors   []upsertVector `json:"vectors"`
	Namespace string         `json:"namespace,omitempty"`
}

type upsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}

// Upsert resolves the index host, then writes all records in input order as
// sequential batches. Each batch is retried per the shared policy; a batch
// that still fails surfaces as a *BatchError and aborts the run.
func (c *Client) Upsert(ctx context.Context, records []vectorstore.Record) (*vectorstore.UpsertResult, error) {
	host, err := c.ResolveHost(ctx)
	if err != nil {
		return nil, err
	}
	upsertURL := fmt.Sprintf("https://%s/vectors/upsert", host)

	vectors := make([]upsertVector, len(records))
	for i, rec := range records {
		vectors[i] = upsertVector{
			ID:       rec.ID,
			Values:   rec.Values,
			Metadata: filterMetadata(rec.Metadata),
		}
	}

	result := &vectorstore.UpsertResult{
		ProviderMetadata: map[string]any{
			"index_name": c.cfg.IndexName,
			"namespace":  displayNamespace(c.cfg.Namespace),
		},
	}

	for start := 0; start < len(vectors); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(vectors) {
			end = len(vectors)
		}
		batchIndex := start / c.cfg.BatchSize

		c.cfg.Logger.Info("pinecone upsert batch", nil, map[string]any{
			"batch": batchIndex,
			"from":  start,
			"to":    end,
			"total": len(vectors),
		})

		payload := upsertRequest{
			Vectors:   vectors[start:end],
			Namespace: c.cfg.Namespace,
		}

		var parsed upsertResponse
		began := time.Now()
		err := c.policy.Do(ctx, func() error {
			return c.doJSON(ctx, http.MethodPost, upsertURL, payload, &parsed)
		})
		c.cfg.Metrics.ObserveBatchDuration(runconfig.ProviderPinecone, began)
		if err != nil {
			return nil, &BatchError{Batch: batchIndex, Err: redact.Error(err, c.cfg.APIKey)}
		}

		result.VectorsWritten += parsed.UpsertedCount
		result.BatchesSent++
		c.cfg.Metrics.AddVectorsUpserted(runconfig.ProviderPinecone, parsed.UpsertedCount)
		c.cfg.Metrics.IncBatches(runconfig.ProviderPinecone)
	}

	return result, nil
}

// displayNamespace is what the summary shows for the namespace field.
func displayNamespace(ns string) string {
	if ns == "" {
		return "(default)"
	}
	return ns
}
