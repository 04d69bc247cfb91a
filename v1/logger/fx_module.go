package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the logger into an fx application. It provides the
// NewLoggerClient factory and registers a shutdown hook that flushes
// buffered entries.
//
// Dependencies: a logger.Config must be available in the container.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the Zap logger on application shutdown so
// no buffered entries are lost.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync can fail on stderr; treat it as best effort.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
