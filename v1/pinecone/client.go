package pinecone

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vecsink/vecsink/v1/retry"
	"github.com/vecsink/vecsink/v1/runconfig"
)

// Client writes embedding records to a Pinecone index.
// It implements vectorstore.Writer.
type Client struct {
	cfg    Config
	http   *http.Client
	policy retry.Policy

	// host is the resolved data-plane host, cached after the first
	// resolution. Only ever set from the control-plane response.
	host string
}

// NewClient constructs a Pinecone writer from Config. No network call is
// made here; host resolution happens on the first Upsert.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone: missing api key")
	}
	if cfg.IndexName == "" {
		return nil, fmt.Errorf("pinecone: missing index name")
	}
	cfg = cfg.withDefaults()

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	c.policy = retry.Default(isRetryable)
	c.policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		cfg.Metrics.IncRetries(runconfig.ProviderPinecone)
		cfg.Logger.Warn("pinecone request failed, retrying", err, map[string]any{
			"attempt": attempt,
			"delay":   delay.String(),
		})
	}
	return c, nil
}

// Provider returns the provider identifier.
func (c *Client) Provider() string { return runconfig.ProviderPinecone }

// ResolveHost resolves and caches the data-plane host for the configured
// index via the control plane. Safe to call repeatedly.
func (c *Client) ResolveHost(ctx context.Context) (string, error) {
	if c.host != "" {
		return c.host, nil
	}

	url := fmt.Sprintf("%s/indexes/%s", c.cfg.ControlPlane, c.cfg.IndexName)

	var parsed struct {
		Host string `json:"host"`
	}
	err := c.policy.Do(ctx, func() error {
		return c.doJSON(ctx, http.MethodGet, url, nil, &parsed)
	})
	if err != nil {
		return "", fmt.Errorf("%w: index %q: %v", ErrHostResolution, c.cfg.IndexName, err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: index %q unknown to control plane", ErrHostResolution, c.cfg.IndexName)
	}

	c.cfg.Logger.Info("resolved pinecone index host", nil, map[string]any{
		"index": c.cfg.IndexName,
		"host":  parsed.Host,
	})

	c.host = parsed.Host
	return c.host, nil
}
