package writer

import (
	"context"
	"math"
	"time"

	"github.com/vecsink/vecsink/v1/dataset"
	"github.com/vecsink/vecsink/v1/logger"
	"github.com/vecsink/vecsink/v1/pricing"
	"github.com/vecsink/vecsink/v1/redact"
	"github.com/vecsink/vecsink/v1/runconfig"
	"github.com/vecsink/vecsink/v1/vectorstore"
)

// Runner executes one run against one provider writer. It is single-use:
// construct, Run once, discard.
type Runner struct {
	cfg    *runconfig.Config
	writer vectorstore.Writer
	loader *dataset.Loader
	log    *logger.Logger
	state  State
}

// NewRunner wires a runner. The loader may be nil when no dataset backend
// is configured; runs referencing a dataset then fail in Loading.
func NewRunner(cfg *runconfig.Config, w vectorstore.Writer, loader *dataset.Loader, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		cfg:    cfg,
		writer: w,
		loader: loader,
		log:    log,
		state:  StateIdle,
	}
}

// Run drives the state machine to completion and returns the run summary.
// On any error the run is Failed, no summary exists, and the returned error
// text has been sanitized.
func (r *Runner) Run(ctx context.Context) (*vectorstore.Summary, error) {
	started := time.Now()

	r.transition(StateLoading)
	rows, err := r.loadRows(ctx)
	if err != nil {
		return nil, r.fail(err)
	}

	r.transition(StateValidating)
	records, err := buildRecords(r.cfg, rows)
	if err != nil {
		return nil, r.fail(err)
	}

	r.transition(StateWriting)
	result, err := r.writer.Upsert(ctx, records)
	if err != nil {
		return nil, r.fail(err)
	}
	if result.VectorsWritten == 0 {
		return nil, r.fail(ErrNothingUpserted)
	}

	r.transition(StateSummarizing)
	summary := r.buildSummary(result, time.Since(started))

	r.transition(StateDone)
	r.log.Info("run complete", nil, map[string]any{
		"provider":       summary.Provider,
		"vectors":        summary.TotalVectorsUpserted,
		"batches":        summary.TotalBatches,
		"amount_usd":     summary.Billing.Amount,
		"processing_sec": summary.ProcessingTime,
	})
	return summary, nil
}

// fail marks the run Failed and sanitizes the error before it can escape.
func (r *Runner) fail(err error) error {
	safe := redact.Error(err, r.cfg.APIKey)
	r.log.Error("run failed", safe, map[string]any{
		"state": string(r.state),
	})
	r.transition(StateFailed)
	return safe
}

// loadRows fetches input rows: the referenced dataset wins over literal
// vectors when both are present.
func (r *Runner) loadRows(ctx context.Context) ([]map[string]any, error) {
	if r.cfg.DatasetID != "" {
		if r.loader == nil {
			return nil, dataset.ErrDatasetNotFound
		}
		return r.loader.Load(ctx, r.cfg.DatasetID)
	}
	if len(r.cfg.Vectors) > 0 {
		return r.cfg.Vectors, nil
	}
	return nil, runconfig.ErrNoInput
}

// buildSummary assembles the single immutable summary for a successful run.
// Provider fields come from the writer's result metadata, not from the
// input, so the summary reflects what actually happened.
func (r *Runner) buildSummary(result *vectorstore.UpsertResult, elapsed time.Duration) *vectorstore.Summary {
	s := &vectorstore.Summary{
		IsSummary:            true,
		Provider:             r.writer.Provider(),
		TotalVectorsUpserted: result.VectorsWritten,
		TotalBatches:         result.BatchesSent,
		ProcessingTime:       math.Round(elapsed.Seconds()*100) / 100,
		Billing:              pricing.Calculate(result.VectorsWritten),
	}

	meta := result.ProviderMetadata
	switch s.Provider {
	case runconfig.ProviderPinecone:
		s.IndexName, _ = meta["index_name"].(string)
		s.Namespace, _ = meta["namespace"].(string)
	case runconfig.ProviderQdrant:
		s.CollectionName, _ = meta["collection_name"].(string)
		s.ClusterURL, _ = meta["cluster_url"].(string)
		s.DistanceMetric, _ = meta["distance_metric"].(string)
		if created, ok := meta["collection_created"].(bool); ok {
			s.CollectionCreated = &created
		}
	}
	return s
}
