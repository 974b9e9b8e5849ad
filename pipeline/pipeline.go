package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/step"
)

const defaultName = "pipeline"

// Pipeline is a named, lazily built sequence. No element is produced until
// the pipeline is run through Drain, Collect, or ForEach.
type Pipeline[T any] struct {
	name   string
	create func(rs *runState) (seq.Sequence[T], error)
}

// runState carries failures raised while a run's sequence is already being
// pulled, such as a later Concat input that can no longer be created. The
// sequence reporting one ends, and Drain returns the failure.
type runState struct {
	err error
}

func (rs *runState) fail(err error) {
	if rs.err == nil {
		rs.err = err
	}
}

// Of wraps an existing sequence. The sequence can be handed out once; a
// second Iter or Run reports PIPELINE_CONSUMED.
func Of[T any](s seq.Sequence[T]) *Pipeline[T] {
	take := step.NewOnce(s, func(s seq.Sequence[T]) seq.Sequence[T] { return s }).Named(defaultName)
	return &Pipeline[T]{
		name: defaultName,
		create: func(*runState) (seq.Sequence[T], error) {
			s, err := take.Call()
			if err != nil {
				return nil, errors.PipelineConsumed().WithCause(err)
			}
			return s, nil
		},
	}
}

// New creates a restartable pipeline; factory is called once per run.
func New[T any](factory func() seq.Sequence[T]) *Pipeline[T] {
	return &Pipeline[T]{
		name: defaultName,
		create: func(*runState) (seq.Sequence[T], error) {
			return factory(), nil
		},
	}
}

// FromSlice creates a restartable pipeline over items.
func FromSlice[T any](items []T) *Pipeline[T] {
	return New(func() seq.Sequence[T] { return seq.FromSlice(items) })
}

// Then appends a stage built from the seq adapters. The stage runs each time
// the upstream sequence is created.
func Then[T, U any](p *Pipeline[T], stage func(seq.Sequence[T]) seq.Sequence[U]) *Pipeline[U] {
	return &Pipeline[U]{
		name: p.name,
		create: func(rs *runState) (seq.Sequence[U], error) {
			s, err := p.create(rs)
			if err != nil {
				return nil, err
			}
			return stage(s), nil
		},
	}
}

// Named returns a copy of p reported under name by middlewares.
func (p *Pipeline[T]) Named(name string) *Pipeline[T] {
	return &Pipeline[T]{name: name, create: p.create}
}

// Name returns the pipeline name.
func (p *Pipeline[T]) Name() string { return p.name }

// Iter builds and returns the underlying sequence. A failure raised after
// the sequence was handed out, such as a Concat input that is already
// consumed, only ends the sequence early; run the pipeline through Drain to
// observe it.
func (p *Pipeline[T]) Iter() (seq.Sequence[T], error) {
	return p.create(&runState{})
}

// Stats describes a single run. Middlewares read it after the inner RunFunc
// returns.
type Stats struct {
	RunID    string
	Pipeline string
	// Pulled is the number of elements taken from the sequence.
	Pulled   int
	Duration time.Duration
}

// RunFunc executes one run, filling stats as it goes.
type RunFunc func(ctx context.Context, stats *Stats) error

// Middleware wraps a RunFunc with cross-cutting behavior.
type Middleware func(RunFunc) RunFunc

// Chain composes middlewares. The first middleware is outermost.
//
// Chain(a, b, c)(run) is equivalent to a(b(c(run))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner RunFunc) RunFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// Runnable is a fully configured pipeline ready to execute.
type Runnable struct {
	name string
	run  RunFunc
}

// Run executes the pipeline until exhaustion, a sink error, or
// cancellation of ctx.
func (r *Runnable) Run(ctx context.Context) error {
	_, err := r.RunWithStats(ctx)
	return err
}

// RunWithStats is Run that also reports the run's Stats.
func (r *Runnable) RunWithStats(ctx context.Context) (Stats, error) {
	stats := Stats{RunID: uuid.NewString(), Pipeline: r.name}
	err := r.run(ctx, &stats)
	return stats, err
}

// Drain creates a Runnable that pulls every element and hands it to sink.
// The context is checked before each pull; a cancelled run stops pulling and
// returns CANCELLED. A sink error stops the run and is returned as
// SINK_FAILED.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error, mws ...Middleware) *Runnable {
	run := func(ctx context.Context, stats *Stats) error {
		start := time.Now()
		defer func() { stats.Duration = time.Since(start) }()

		rs := &runState{}
		s, err := p.create(rs)
		if err != nil {
			return err
		}
		for {
			if err := ctx.Err(); err != nil {
				return errors.Cancelled(err, stats.Pulled)
			}
			v, ok := s.Next()
			if !ok {
				return rs.err
			}
			stats.Pulled++
			if err := sink(ctx, v); err != nil {
				return errors.SinkFailed(err, stats.Pulled-1)
			}
		}
	}
	return &Runnable{name: p.name, run: Chain(mws...)(run)}
}

// Collect runs the pipeline and returns every element. On error the
// elements gathered so far are returned with it.
func Collect[T any](ctx context.Context, p *Pipeline[T], mws ...Middleware) ([]T, error) {
	out := []T{}
	err := Drain(p, func(_ context.Context, v T) error {
		out = append(out, v)
		return nil
	}, mws...).Run(ctx)
	return out, err
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error, mws ...Middleware) error {
	return Drain(p, fn, mws...).Run(ctx)
}
