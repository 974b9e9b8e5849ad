package bootstrap

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// App owns the lifecycle of one task run. C is the config type.
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	onStart         []Hook
	onStop          []Hook
}

// NewApp applies defaults, validates cfg, and sets up logging.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		if _, ok := errors.AsAppError(err); ok {
			return nil, err
		}
		return nil, errors.Validation("config validation failed").WithCause(err)
	}

	base := cfg.GetServiceConfig()
	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		app.Logger = logger.New(&base.Logging, base.Name)
		logger.SetGlobalLogger(app.Logger)
	}
	return app, nil
}

// RunTask runs OnStart hooks, then task, then OnStop hooks. SIGINT and
// SIGTERM cancel the task's context. The task error wins over a shutdown
// error.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	start := time.Now()
	a.Logger.Info("starting task", logger.Fields("name", a.Name, "version", a.Version))

	taskCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	taskErr := runHooks(taskCtx, a.onStart)
	if taskErr != nil {
		taskErr = fmt.Errorf("onStart hook failed: %w", taskErr)
	} else {
		taskErr = task(taskCtx)
	}
	if taskCtx.Err() != nil && ctx.Err() == nil {
		a.Logger.Info("task interrupted by signal")
	}

	stopErr := a.shutdown()

	fields := logger.Fields(logger.FieldDuration, time.Since(start).Milliseconds())
	if taskErr != nil {
		fields[logger.FieldError] = taskErr.Error()
		a.Logger.Error("task failed", fields)
		return taskErr
	}
	a.Logger.Info("task finished", fields)
	return stopErr
}

// shutdown runs OnStop hooks, last registered first, within the graceful
// timeout. Every hook runs; their errors are joined.
func (a *App[C]) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	var errs []error
	for _, h := range slices.Backward(a.onStop) {
		if err := h(ctx); err != nil {
			a.Logger.Error("onStop hook error", logger.Fields(logger.FieldError, err.Error()))
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
