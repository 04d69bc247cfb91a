package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds settings for the metrics server.
type Config struct {
	// Address is the listen address of the /metrics endpoint (e.g. ":9090").
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is applied as a constant "service" label to all metrics.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go/process/build-info
	// collectors alongside the pipeline metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_DEFAULT_COLLECTORS"`
}

// Metrics encapsulates the Prometheus registry and the HTTP server exposing
// it. Each service maintains its own isolated registry to prevent metric
// name collisions.
type Metrics struct {
	// Server exposes the /metrics endpoint for Prometheus scraping.
	Server *http.Server

	// Registry is the Prometheus registry all collectors are registered in.
	Registry *prometheus.Registry

	vectorsUpserted *prometheus.CounterVec
	batchesSent     *prometheus.CounterVec
	retries         *prometheus.CounterVec
	batchDuration   *prometheus.HistogramVec
}

// NewMetrics initializes a Metrics instance: a dedicated registry wrapped
// with a constant service label, the pipeline collectors, optional default
// system collectors, and an HTTP server for the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "vecsink",
//	})
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically carry
	// service="<cfg.ServiceName>".
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.vectorsUpserted = createCounterVec("vectors_upserted_total",
		"Total number of vectors acknowledged by the provider", []string{"provider"})
	m.batchesSent = createCounterVec("batches_total",
		"Total number of upsert batches issued", []string{"provider"})
	m.retries = createCounterVec("retries_total",
		"Total number of retried upsert attempts", []string{"provider"})
	m.batchDuration = createHistogramVec("batch_duration_seconds",
		"Duration of a single upsert batch in seconds", []string{"provider"}, prometheus.DefBuckets)

	wrapped.MustRegister(
		m.vectorsUpserted,
		m.batchesSent,
		m.retries,
		m.batchDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}

// AddVectorsUpserted adds n to the vectors-upserted counter.
func (m *Metrics) AddVectorsUpserted(provider string, n int) {
	m.vectorsUpserted.WithLabelValues(provider).Add(float64(n))
}

// IncBatches increments the batches-sent counter.
func (m *Metrics) IncBatches(provider string) {
	m.batchesSent.WithLabelValues(provider).Inc()
}

// IncRetries increments the retry-attempts counter.
func (m *Metrics) IncRetries(provider string) {
	m.retries.WithLabelValues(provider).Inc()
}

// ObserveBatchDuration records the latency of one upsert batch.
func (m *Metrics) ObserveBatchDuration(provider string, start time.Time) {
	m.batchDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}
