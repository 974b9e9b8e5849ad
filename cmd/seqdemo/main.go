// Command seqdemo walks through the seqkit sequence pipeline: laziness,
// adapters, consumers, the step capture model and fallible transforms.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kbukum/seqkit/bootstrap"
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/version"
)

const serviceName = "seqdemo"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(out)
	showVersion := fs.Bool("version", false, "print build information and exit")
	configFile := fs.String("config", "", "path to config.yml")
	only := fs.String("run", "", "comma-separated scenarios to run instead of demo.scenarios")
	list := fs.Bool("list", false, "list scenarios and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(out, version.Get().String("github.com/rs/", "github.com/spf13/", "go.opentelemetry.io/otel"))
		return nil
	}
	if *list {
		for _, s := range scenarios {
			fmt.Fprintf(out, "%-14s %s\n", s.name, s.desc)
		}
		return nil
	}

	var cfg Config
	opts := []config.LoaderOption{config.WithDefaults(loaderDefaults)}
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return err
	}
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}

	names := cfg.Demo.Scenarios
	if *only != "" {
		names = strings.Split(*only, ",")
	}
	selected, err := lookupScenarios(names)
	if err != nil {
		return err
	}

	r := &runner{
		out:   out,
		limit: cfg.Demo.Limit,
		mws:   []pipeline.Middleware{pipeline.WithRecovery(app.Logger), pipeline.WithLogging(app.Logger)},
	}
	if cfg.Tracing.Enabled {
		app.OnStart(func(ctx context.Context) error {
			mws, err := setupTelemetry(ctx, app, &cfg)
			if err != nil {
				return err
			}
			r.mws = append(r.mws, mws...)
			return nil
		})
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		for _, s := range selected {
			fmt.Fprintf(out, "=== %s: %s\n", s.name, s.desc)
			if err := s.run(ctx, r); err != nil {
				return fmt.Errorf("scenario %s: %w", s.name, err)
			}
			app.Logger.Debug("scenario done", logger.Fields(logger.FieldScenario, s.name))
		}
		return nil
	})
}

// setupTelemetry installs OTLP tracer and meter providers, registers their
// shutdown, and returns the tracing and metrics middlewares.
func setupTelemetry(ctx context.Context, app *bootstrap.App[*Config], cfg *Config) ([]pipeline.Middleware, error) {
	tcfg := observability.DefaultTracerConfig(cfg.Name)
	tcfg.ServiceVersion = cfg.Version
	tcfg.Environment = cfg.Environment
	tcfg.Endpoint = cfg.Tracing.Endpoint
	tcfg.Insecure = cfg.Tracing.Insecure
	tcfg.SampleRate = cfg.Tracing.SampleRate

	tp, err := observability.InitTracer(ctx, tcfg)
	if err != nil {
		return nil, err
	}
	app.OnStop(tp.Shutdown)

	mcfg := observability.DefaultMeterConfig(cfg.Name)
	mcfg.ServiceVersion = cfg.Version
	mcfg.Environment = cfg.Environment
	mcfg.Endpoint = cfg.Tracing.Endpoint
	mcfg.Insecure = cfg.Tracing.Insecure

	mp, err := observability.InitMeter(ctx, mcfg)
	if err != nil {
		return nil, err
	}
	app.OnStop(mp.Shutdown)

	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		return nil, err
	}
	return []pipeline.Middleware{pipeline.WithTracing(cfg.Name), pipeline.WithMetrics(metrics)}, nil
}
