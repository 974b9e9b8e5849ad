package pipeline

import (
	"github.com/kbukum/seqkit/seq"
)

// Map transforms each value using fn.
func Map[I, O any](p *Pipeline[I], fn func(I) O) *Pipeline[O] {
	return Then(p, func(s seq.Sequence[I]) seq.Sequence[O] { return seq.Map(s, fn) })
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](p *Pipeline[T], fn func(T) bool) *Pipeline[T] {
	return Then(p, func(s seq.Sequence[T]) seq.Sequence[T] { return seq.Filter(s, fn) })
}

// Tap calls fn for each value as it is pulled and passes the value through.
func Tap[T any](p *Pipeline[T], fn func(T)) *Pipeline[T] {
	return Then(p, func(s seq.Sequence[T]) seq.Sequence[T] { return seq.Inspect(s, fn) })
}

// Take limits the pipeline to its first n values.
func Take[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return Then(p, func(s seq.Sequence[T]) seq.Sequence[T] { return seq.Take(s, n) })
}

// Concat joins pipelines sequentially. The result is named after the first
// pipeline. Each input is created only when the run reaches it, so a run that
// stops early leaves the remaining inputs untouched. An input that fails to
// create ends the run with its error.
func Concat[T any](pipelines ...*Pipeline[T]) *Pipeline[T] {
	name := defaultName
	if len(pipelines) > 0 {
		name = pipelines[0].name
	}
	return &Pipeline[T]{
		name: name,
		create: func(rs *runState) (seq.Sequence[T], error) {
			var current seq.Sequence[T]
			next := 0
			return seq.FromFunc(func() (T, bool) {
				for {
					if current != nil {
						if v, ok := current.Next(); ok {
							return v, true
						}
						current = nil
					}
					if next == len(pipelines) {
						var zero T
						return zero, false
					}
					s, err := pipelines[next].create(rs)
					next++
					if err != nil {
						rs.fail(err)
						next = len(pipelines)
						var zero T
						return zero, false
					}
					current = s
				}
			}), nil
		},
	}
}
