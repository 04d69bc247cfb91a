package qdrant

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/qdrant/go-client/qdrant"

	"github.com/vecsink/vecsink/v1/redact"
	"github.com/vecsink/vecsink/v1/retry"
	"github.com/vecsink/vecsink/v1/runconfig"
)

// Client writes records to one Qdrant collection. It implements
// vectorstore.Writer.
type Client struct {
	cfg    Config
	api    *sdk.Client
	policy retry.Policy
}

// NewClient validates the config, derives the gRPC endpoint and opens the
// connection. The cluster is not contacted here; use Health to fail fast.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("qdrant: api key is required")
	}
	if cfg.CollectionName == "" {
		return nil, fmt.Errorf("qdrant: collection name is required")
	}

	ep, err := cfg.resolveEndpoint()
	if err != nil {
		return nil, err
	}

	api, err := sdk.NewClient(&sdk.Config{
		Host:                   ep.host,
		Port:                   ep.port,
		APIKey:                 cfg.APIKey,
		UseTLS:                 ep.useTLS,
		SkipCompatibilityCheck: true,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: initialize client: %w", err)
	}

	c := &Client{
		cfg: cfg,
		api: api,
	}
	c.policy = retry.Default(isRetryable)
	c.policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		cfg.Metrics.IncRetries(runconfig.ProviderQdrant)
		cfg.Logger.Warn("qdrant call failed, retrying", redact.Error(err, cfg.APIKey), map[string]any{
			"attempt": attempt,
			"delay":   delay.String(),
		})
	}

	cfg.Logger.Info("qdrant client ready", nil, map[string]any{
		"host":       ep.host,
		"port":       ep.port,
		"collection": cfg.CollectionName,
	})
	return c, nil
}

// Provider identifies this writer in summaries and metrics.
func (c *Client) Provider() string { return runconfig.ProviderQdrant }

// Health verifies the cluster is reachable and the key is accepted.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return fmt.Errorf("qdrant: health check: %w", redact.Error(err, c.cfg.APIKey))
	}
	return nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.api.Close()
}
