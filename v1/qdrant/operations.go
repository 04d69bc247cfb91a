package qdrant

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/qdrant/go-client/qdrant"

	"github.com/vecsink/vecsink/v1/redact"
	"github.com/vecsink/vecsink/v1/runconfig"
	"github.com/vecsink/vecsink/v1/vectorstore"
)

// distanceFromName maps the validated metric name to the wire enum.
func distanceFromName(name string) sdk.Distance {
	switch name {
	case "Dot":
		return sdk.Distance_Dot
	case "Euclid":
		return sdk.Distance_Euclid
	default:
		return sdk.Distance_Cosine
	}
}

// EnsureCollection checks for the target collection and creates it when
// missing, sized to the given vector dimension. It reports whether a new
// collection was created. Safe to call repeatedly.
func (c *Client) EnsureCollection(ctx context.Context, dimension uint64) (bool, error) {
	var exists bool
	err := c.policy.Do(ctx, func() error {
		var err error
		exists, err = c.api.CollectionExists(ctx, c.cfg.CollectionName)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("qdrant: check collection: %w", redact.Error(err, c.cfg.APIKey))
	}
	if exists {
		return false, nil
	}

	c.cfg.Logger.Info("creating qdrant collection", nil, map[string]any{
		"collection": c.cfg.CollectionName,
		"dimension":  dimension,
		"distance":   c.cfg.Distance,
	})

	req := &sdk.CreateCollection{
		CollectionName: c.cfg.CollectionName,
		VectorsConfig: sdk.NewVectorsConfig(&sdk.VectorParams{
			Size:     dimension,
			Distance: distanceFromName(c.cfg.Distance),
		}),
	}
	err = c.policy.Do(ctx, func() error {
		return c.api.CreateCollection(ctx, req)
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCollectionCreate, redact.Error(err, c.cfg.APIKey))
	}
	return true, nil
}

// Upsert writes all records in input order as sequential batches, creating
// the collection first if it does not exist. Each batch is retried per the
// shared policy; a batch that still fails surfaces as a *BatchError and
// aborts the run.
func (c *Client) Upsert(ctx context.Context, records []vectorstore.Record) (*vectorstore.UpsertResult, error) {
	result := &vectorstore.UpsertResult{
		ProviderMetadata: map[string]any{
			"collection_name":    c.cfg.CollectionName,
			"cluster_url":        c.cfg.ClusterURL,
			"distance_metric":    c.cfg.Distance,
			"collection_created": false,
		},
	}
	if len(records) == 0 {
		return result, nil
	}

	created, err := c.EnsureCollection(ctx, uint64(records[0].Dimension()))
	if err != nil {
		return nil, err
	}
	result.ProviderMetadata["collection_created"] = created

	points := make([]*sdk.PointStruct, len(records))
	for i, rec := range records {
		points[i] = toPoint(rec)
	}

	for start := 0; start < len(points); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(points) {
			end = len(points)
		}
		batchIndex := start / c.cfg.BatchSize

		c.cfg.Logger.Info("qdrant upsert batch", nil, map[string]any{
			"batch": batchIndex,
			"from":  start,
			"to":    end,
			"total": len(points),
		})

		req := &sdk.UpsertPoints{
			CollectionName: c.cfg.CollectionName,
			Points:         points[start:end],
			Wait:           sdk.PtrOf(true),
		}

		began := time.Now()
		err := c.policy.Do(ctx, func() error {
			callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
			defer cancel()
			if _, err := c.api.Upsert(callCtx, req); err != nil {
				if !isRetryable(err) {
					return fmt.Errorf("%w: %v", ErrUpsertRejected, err)
				}
				return err
			}
			return nil
		})
		c.cfg.Metrics.ObserveBatchDuration(runconfig.ProviderQdrant, began)
		if err != nil {
			return nil, &BatchError{Batch: batchIndex, Err: redact.Error(err, c.cfg.APIKey)}
		}

		result.VectorsWritten += end - start
		result.BatchesSent++
		c.cfg.Metrics.AddVectorsUpserted(runconfig.ProviderQdrant, end-start)
		c.cfg.Metrics.IncBatches(runconfig.ProviderQdrant)
	}

	return result, nil
}
