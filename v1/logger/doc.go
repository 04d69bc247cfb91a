// Package logger provides structured logging for the upsert pipeline.
//
// It wraps Uber's Zap with a small interface: leveled methods taking a
// message, an optional error, and a map of structured fields, plus
// *WithContext variants that extract OpenTelemetry trace and span IDs from
// the context when tracing is enabled.
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vecsink",
//	})
//	log.Info("run started", nil, map[string]any{"provider": "pinecone"})
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule, // provides *logger.Logger, flushes on shutdown
//	    fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	)
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package logger
