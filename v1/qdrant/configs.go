package qdrant

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/vecsink/vecsink/v1/logger"
	"github.com/vecsink/vecsink/v1/metrics"
)

const (
	// MaxBatchSize is the practical per-call limit for Qdrant upserts.
	MaxBatchSize = 500

	// restPort is the Qdrant Cloud REST port named in cluster URLs.
	restPort = 6333

	// grpcPort is the port this client actually speaks to.
	grpcPort = 6334

	defaultTimeout = 60 * time.Second
)

// Config holds connection and behavior settings for the Qdrant writer.
type Config struct {
	// ClusterURL is the validated Qdrant Cloud URL, e.g.
	// "https://xyz.us-east-1.aws.cloud.qdrant.io:6333". The gRPC endpoint
	// is derived from it.
	ClusterURL string

	// APIKey authenticates against the cluster.
	APIKey string

	// CollectionName is the target collection, created on first use when
	// missing.
	CollectionName string

	// Distance is the metric used if the collection has to be created
	// (Cosine, Dot, Euclid). Defaults to Cosine.
	Distance string

	// BatchSize is the number of points per upsert call, clamped to
	// [1, MaxBatchSize].
	BatchSize int

	// Timeout bounds each gRPC call. Defaults to 60s.
	Timeout time.Duration

	// Host and Port override the endpoint derived from ClusterURL and
	// disable TLS. Only tests against local containers set these.
	Host string
	Port int

	// Logger is optional; nil discards log output.
	Logger *logger.Logger

	// Metrics is optional; nil discards observations.
	Metrics metrics.Collector
}

// endpoint is the resolved gRPC target.
type endpoint struct {
	host   string
	port   int
	useTLS bool
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
	if c.Distance == "" {
		c.Distance = "Cosine"
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	if c.Metrics == nil {
		c.Metrics = metrics.Nop()
	}
	return c
}

// resolveEndpoint turns the cluster URL into a gRPC target. Cloud URLs name
// the REST port, which is rewritten to the gRPC one; a missing port also
// means gRPC default. The Host/Port override wins and is plaintext.
func (c Config) resolveEndpoint() (endpoint, error) {
	if c.Host != "" {
		port := c.Port
		if port == 0 {
			port = grpcPort
		}
		return endpoint{host: c.Host, port: port, useTLS: false}, nil
	}

	raw := strings.TrimPrefix(c.ClusterURL, "https://")
	if raw == "" || raw == c.ClusterURL {
		return endpoint{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.ClusterURL)
	}

	host, portStr, err := net.SplitHostPort(raw)
	if err != nil {
		// No port in the URL.
		host, portStr = raw, ""
	}

	port := grpcPort
	if portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil || parsed < 1 || parsed > 65535 {
			return endpoint{}, fmt.Errorf("%w: bad port in %q", ErrInvalidEndpoint, c.ClusterURL)
		}
		if parsed != restPort {
			port = parsed
		}
	}

	return endpoint{host: host, port: port, useTLS: true}, nil
}
