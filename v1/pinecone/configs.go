package pinecone

import (
	"time"

	"github.com/vecsink/vecsink/v1/logger"
	"github.com/vecsink/vecsink/v1/metrics"
)

// ControlPlaneURL is the only URL ever used to resolve index hosts.
const ControlPlaneURL = "https://api.pinecone.io"

// apiVersion is sent with every request.
const apiVersion = "2024-07"

const (
	// MaxBatchSize is the Pinecone API limit per upsert call.
	MaxBatchSize = 1000

	// MaxMetadataBytes is the per-record metadata limit (40KB).
	MaxMetadataBytes = 40_000

	defaultTimeout = 60 * time.Second
)

// Config holds connection and behavior settings for the Pinecone writer.
type Config struct {
	// APIKey authenticates against both control and data plane.
	APIKey string

	// IndexName is the target index. The data-plane host is resolved from
	// it via the control plane.
	IndexName string

	// Namespace is the target namespace; empty targets the default one.
	Namespace string

	// BatchSize is the number of vectors per upsert call, clamped to
	// [1, MaxBatchSize].
	BatchSize int

	// Timeout bounds each HTTP request. Defaults to 60s.
	Timeout time.Duration

	// ControlPlane overrides the control-plane base URL. Only tests set
	// this; production always uses ControlPlaneURL.
	ControlPlane string

	// Logger is optional; nil discards log output.
	Logger *logger.Logger

	// Metrics is optional; nil discards observations.
	Metrics metrics.Collector
}

// withDefaults returns a copy of the config with defaults applied.
func (c Config) withDefaults() Config {
	if c.BatchSize < 1 {
		c.BatchSize = 1
	}
	if c.BatchSize > MaxBatchSize {
		c.BatchSize = MaxBatchSize
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.ControlPlane == "" {
		c.ControlPlane = ControlPlaneURL
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Nop()
	}
	return c
}
