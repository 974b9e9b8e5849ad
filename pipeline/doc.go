// Package pipeline runs seq sequences to completion under a context.
//
// A Pipeline is a named, lazily built sequence. Stages are added with Then
// (or the Map, Filter, Tap, Take and Concat shorthands); nothing is pulled
// until Drain(...).Run, Collect, or ForEach drives it. The context is
// checked before every pull, so cancellation stops the run between
// elements.
//
// Pipelines built with Of wrap one existing sequence and can run once.
// Pipelines built with New or FromSlice rebuild their sequence on every run.
//
// # Middleware
//
// Runs can be wrapped with WithLogging, WithTracing, WithMetrics and
// WithRecovery. Each run gets a fresh run id and reports Stats.
//
//	p := pipeline.Map(pipeline.FromSlice([]int{1, 2, 3}), func(n int) int { return n * n }).Named("squares")
//	squares, err := pipeline.Collect(ctx, p,
//	    pipeline.WithRecovery(log),
//	    pipeline.WithLogging(log),
//	    pipeline.WithTracing("seqdemo"),
//	)
package pipeline
