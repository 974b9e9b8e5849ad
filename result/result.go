// Package result models a "failed computation" as an ordinary value so that
// fallible steps can flow through a lazy sequence like any other element.
package result

import (
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/opt"
)

// Result is either a value or the error that prevented computing it.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced with an INTERNAL_ERROR so a
// failed Result can never read as success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New(errors.ErrCodeInternal, "result: nil error")
	}
	return Result[T]{err: err}
}

// Of converts a (value, error) pair.
func Of[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports failure.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the pair form.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// Error returns the failure, or nil.
func (r Result[T]) Error() error { return r.err }

// Ok discards the error, keeping only a successful value.
func (r Result[T]) Ok() opt.Option[T] {
	if r.err != nil {
		return opt.None[T]()
	}
	return opt.Some(r.value)
}

// OrElse returns the value or fallback on failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map applies fn to a successful value; failures pass through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// Then chains a fallible step onto a successful value.
func Then[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Of(fn(r.value))
}
