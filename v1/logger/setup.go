package logger

import (
	"context"
	"log"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects the minimum severity emitted by the logger.
type Level string

// Supported log levels.
const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config holds logger settings.
type Config struct {
	// Level is the minimum severity emitted ("debug", "info", "warning",
	// "error"). Defaults to info.
	Level Level `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// EnableTracing extracts OpenTelemetry trace/span IDs from context in
	// the *WithContext methods.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`
}

// Logger is a wrapper around Uber's Zap logger.
// The underlying zap.Logger is exposed for direct access when needed, but
// most logging should go through the wrapper methods.
type Logger struct {
	Zap *zap.Logger

	tracingEnabled bool
}

// NewLoggerClient initializes a logger from configuration: JSON encoding,
// ISO8601 timestamps, output to stderr, with pid and service name as
// initial fields. If building the zap core fails the process exits, since
// nothing downstream can run unlogged.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(logLevel),
		Encoding:      "json",
		EncoderConfig: encoderCfg,
		OutputPaths:   []string{"stderr"},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:            zl,
		tracingEnabled: cfg.EnableTracing,
	}
}

// Nop returns a logger that discards everything. Useful as a nil-safe
// default in components where the logger is optional.
func Nop() *Logger {
	return &Logger{Zap: zap.NewNop()}
}

// Debug logs a message at debug level with optional error and fields.
func (l *Logger) Debug(msg string, err error, fields map[string]any) {
	l.Zap.Debug(msg, l.zapFields(nil, err, fields)...)
}

// Info logs a message at info level with optional error and fields.
func (l *Logger) Info(msg string, err error, fields map[string]any) {
	l.Zap.Info(msg, l.zapFields(nil, err, fields)...)
}

// Warn logs a message at warning level with optional error and fields.
func (l *Logger) Warn(msg string, err error, fields map[string]any) {
	l.Zap.Warn(msg, l.zapFields(nil, err, fields)...)
}

// Error logs a message at error level with optional error and fields.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	l.Zap.Error(msg, l.zapFields(nil, err, fields)...)
}

// InfoWithContext logs at info level, including trace/span IDs from ctx
// when tracing is enabled.
func (l *Logger) InfoWithContext(ctx context.Context, msg string, err error, fields map[string]any) {
	l.Zap.Info(msg, l.zapFields(ctx, err, fields)...)
}

// WarnWithContext logs at warning level, including trace/span IDs from ctx
// when tracing is enabled.
func (l *Logger) WarnWithContext(ctx context.Context, msg string, err error, fields map[string]any) {
	l.Zap.Warn(msg, l.zapFields(ctx, err, fields)...)
}

// ErrorWithContext logs at error level, including trace/span IDs from ctx
// when tracing is enabled.
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]any) {
	l.Zap.Error(msg, l.zapFields(ctx, err, fields)...)
}

// zapFields assembles the structured fields for one entry.
func (l *Logger) zapFields(ctx context.Context, err error, fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+3)

	if l.tracingEnabled && ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			out = append(out,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	if err != nil {
		out = append(out, zap.Error(err))
	}

	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}

	return out
}
