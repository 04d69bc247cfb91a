package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/vecsink/vecsink/v1/logger"
)

// FXModule integrates the Prometheus metrics server into an fx application.
// It provides both the concrete *Metrics and the Collector interface, and
// manages server startup/shutdown through the fx lifecycle.
//
// Dependencies: a metrics.Config must be available in the container.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090", ServiceName: "vecsink"}
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) Collector { return m },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies for lifecycle registration.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    *logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the metrics HTTP server in the background
// on application start and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(p MetricsLifecycleParams) {
	log := p.Logger
	if log == nil {
		log = logger.Nop()
	}

	lc, m := p.Lifecycle, p.Metrics
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting metrics server", nil, map[string]any{
					"address": m.Server.Addr,
				})
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.Server.Shutdown(ctx)
		},
	})
}
