// Command vecsink runs one vector upsert: it reads a run request as JSON,
// validates it, writes the vectors to the selected provider and prints the
// run summary to stdout.
//
// The run request comes from a file (-input path) or stdin (-input -).
// Service-level settings (logging, metrics, dataset store) come from the
// environment; see the per-package Config types for variable names.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/vecsink/vecsink/v1/dataset"
	"github.com/vecsink/vecsink/v1/logger"
	"github.com/vecsink/vecsink/v1/metrics"
	"github.com/vecsink/vecsink/v1/runconfig"
	"github.com/vecsink/vecsink/v1/writer"
)

// serviceConfig groups the ambient settings read from the environment.
// The run request itself always arrives as explicit JSON input.
type serviceConfig struct {
	Logger  logger.Config
	Metrics metrics.Config
	Dataset dataset.Config
}

func main() {
	inputPath := flag.String("input", "-", "path to the run request JSON, or - for stdin")
	flag.Parse()

	input, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecsink: %v\n", err)
		os.Exit(2)
	}

	cfg, err := runconfig.Validate(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecsink: %v\n", err)
		os.Exit(2)
	}

	var svc serviceConfig
	if err := envconfig.Process("", &svc); err != nil {
		fmt.Fprintf(os.Stderr, "vecsink: environment: %v\n", err)
		os.Exit(2)
	}
	if svc.Logger.ServiceName == "" {
		svc.Logger.ServiceName = "vecsink"
	}
	if svc.Metrics.ServiceName == "" {
		svc.Metrics.ServiceName = "vecsink"
	}
	if svc.Metrics.Address == "" {
		svc.Metrics.Address = ":9090"
	}

	app := fx.New(
		fx.Supply(cfg, svc.Logger, svc.Metrics),
		logger.FXModule,
		metrics.FXModule,
		writer.FXModule,
		fx.Provide(newLoader(svc.Dataset)),
		fx.Invoke(registerRun),
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Zap.WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "vecsink: %v\n", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()
	_ = app.Stop(stopCtx)

	os.Exit(sig.ExitCode)
}

// newLoader builds the dataset loader constructor. An unconfigured store
// yields a nil loader; runs referencing a dataset then fail cleanly.
func newLoader(cfg dataset.Config) func(log *logger.Logger) (*dataset.Loader, error) {
	return func(log *logger.Logger) (*dataset.Loader, error) {
		if cfg.Endpoint == "" {
			return nil, nil
		}
		store, err := dataset.NewObjectStore(cfg)
		if err != nil {
			return nil, err
		}
		return dataset.NewLoader(store, log), nil
	}
}

// registerRun starts the run once the container is up and shuts the app
// down when it finishes. The summary goes to stdout as a single JSON line;
// everything else goes to the structured log on stderr.
func registerRun(lc fx.Lifecycle, runner *writer.Runner, log *logger.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				summary, err := runner.Run(context.Background())
				if err != nil {
					// Already sanitized and logged by the runner.
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				if err := json.NewEncoder(os.Stdout).Encode(summary); err != nil {
					log.Error("write summary", err, nil)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown(fx.ExitCode(0))
			}()
			return nil
		},
	})
}

// readInput decodes the run request from the given path or stdin.
func readInput(path string) (runconfig.Input, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return runconfig.Input{}, err
		}
		defer f.Close()
		reader = f
	}

	var input runconfig.Input
	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return runconfig.Input{}, fmt.Errorf("decode run request: %w", err)
	}
	return input, nil
}
