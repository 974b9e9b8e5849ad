package pipeline

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// WithLogging logs the start and the outcome of each run.
func WithLogging(log *logger.Logger) Middleware {
	log = log.WithComponent("pipeline")
	return func(inner RunFunc) RunFunc {
		return func(ctx context.Context, stats *Stats) error {
			log.Debug("pipeline run started", logger.Fields(
				logger.FieldPipeline, stats.Pipeline,
				logger.FieldRunID, stats.RunID,
			))

			err := inner(ctx, stats)

			fields := logger.Fields(
				logger.FieldPipeline, stats.Pipeline,
				logger.FieldRunID, stats.RunID,
				logger.FieldElements, stats.Pulled,
				logger.FieldDuration, stats.Duration.Milliseconds(),
			)
			if err != nil {
				fields[logger.FieldError] = err.Error()
				fields[logger.FieldStatus] = statusOf(err)
				log.Error("pipeline run failed", fields)
				return err
			}
			fields[logger.FieldStatus] = "ok"
			log.Info("pipeline run finished", fields)
			return nil
		}
	}
}

// WithTracing wraps each run in a span named "{serviceName}.{pipeline}".
func WithTracing(serviceName string) Middleware {
	return func(inner RunFunc) RunFunc {
		return func(ctx context.Context, stats *Stats) error {
			ctx, span := observability.StartSpan(ctx, serviceName+"."+stats.Pipeline)
			defer span.End()

			observability.SetSpanAttribute(ctx, observability.AttrServiceName, serviceName)
			observability.SetSpanAttribute(ctx, observability.AttrPipeline, stats.Pipeline)
			observability.SetSpanAttribute(ctx, observability.AttrRunID, stats.RunID)

			err := inner(ctx, stats)

			observability.SetSpanAttribute(ctx, observability.AttrElements, stats.Pulled)
			observability.SetSpanAttribute(ctx, observability.AttrStatus, statusOf(err))
			if err != nil {
				observability.SetSpanAttribute(ctx, observability.AttrErrorCode, string(codeOf(err)))
				observability.SetSpanError(ctx, err)
			}
			return err
		}
	}
}

// WithMetrics records run count, pulled elements, duration and errors.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner RunFunc) RunFunc {
		return func(ctx context.Context, stats *Stats) error {
			err := inner(ctx, stats)
			if err != nil {
				metrics.RecordError(ctx, stats.Pipeline, string(codeOf(err)))
			}
			metrics.RecordRun(ctx, stats.Pipeline, statusOf(err), stats.Pulled, stats.Duration)
			return err
		}
	}
}

// WithRecovery turns a panic inside the run into a returned error. Panics
// carrying an *errors.AppError, such as EXCLUSIVE_ACCESS from a reentered
// step.Mut, are returned as is; anything else becomes INTERNAL_ERROR.
func WithRecovery(log *logger.Logger) Middleware {
	log = log.WithComponent("pipeline")
	return func(inner RunFunc) RunFunc {
		return func(ctx context.Context, stats *Stats) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if appErr, ok := r.(*errors.AppError); ok {
					err = appErr
				} else {
					err = errors.Internal(fmt.Errorf("panic: %v", r))
				}
				log.Error("pipeline run panicked", logger.Fields(
					logger.FieldPipeline, stats.Pipeline,
					logger.FieldRunID, stats.RunID,
					logger.FieldError, err.Error(),
					"stack", string(debug.Stack()),
				))
			}()
			return inner(ctx, stats)
		}
	}
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.IsCode(err, errors.ErrCodeCancelled):
		return "cancelled"
	default:
		return "error"
	}
}

func codeOf(err error) errors.ErrorCode {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.Code
	}
	return errors.ErrCodeInternal
}
