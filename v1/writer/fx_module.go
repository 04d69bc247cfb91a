package writer

import (
	"fmt"

	"go.uber.org/fx"

	"github.com/vecsink/vecsink/v1/dataset"
	"github.com/vecsink/vecsink/v1/logger"
	"github.com/vecsink/vecsink/v1/metrics"
	"github.com/vecsink/vecsink/v1/pinecone"
	"github.com/vecsink/vecsink/v1/qdrant"
	"github.com/vecsink/vecsink/v1/runconfig"
	"github.com/vecsink/vecsink/v1/vectorstore"
)

// FXModule integrates the orchestrator into an fx application. It selects
// and provides the provider writer for the validated run configuration and
// the Runner on top of it.
//
// Dependencies: a *runconfig.Config must be available in the container.
// Logger, metrics and the dataset loader are picked up when present.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    writer.FXModule,
//	    fx.Provide(func() (*runconfig.Config, error) {
//	        return runconfig.Validate(input)
//	    }),
//	)
var FXModule = fx.Module("writer",
	fx.Provide(
		NewWriter,
		newRunnerFromParams,
	),
)

// WriterParams groups the dependencies for writer selection.
type WriterParams struct {
	fx.In

	Config  *runconfig.Config
	Logger  *logger.Logger    `optional:"true"`
	Metrics metrics.Collector `optional:"true"`
}

// NewWriter builds the provider writer the run configuration selects. The
// provider has already passed the whitelist; an unknown value here means a
// programming error, not bad input.
func NewWriter(p WriterParams) (vectorstore.Writer, error) {
	cfg := p.Config
	switch cfg.Provider {
	case runconfig.ProviderPinecone:
		return pinecone.NewClient(pinecone.Config{
			APIKey:    cfg.APIKey,
			IndexName: cfg.IndexName,
			Namespace: cfg.Namespace,
			BatchSize: cfg.BatchSize,
			Logger:    p.Logger,
			Metrics:   p.Metrics,
		})
	case runconfig.ProviderQdrant:
		return qdrant.NewClient(qdrant.Config{
			ClusterURL:     cfg.ClusterURL,
			APIKey:         cfg.APIKey,
			CollectionName: cfg.IndexName,
			Distance:       cfg.DistanceMetric,
			BatchSize:      cfg.BatchSize,
			Logger:         p.Logger,
			Metrics:        p.Metrics,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrNoWriter, cfg.Provider)
	}
}

// RunnerParams groups the dependencies for runner construction.
type RunnerParams struct {
	fx.In

	Config *runconfig.Config
	Writer vectorstore.Writer
	Loader *dataset.Loader `optional:"true"`
	Logger *logger.Logger  `optional:"true"`
}

func newRunnerFromParams(p RunnerParams) *Runner {
	return NewRunner(p.Config, p.Writer, p.Loader, p.Logger)
}
