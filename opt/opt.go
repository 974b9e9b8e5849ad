// Package opt provides Option, the "value or nothing" result of the
// short-circuiting consumers in package seq.
package opt

import "fmt"

// Option holds either one value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from the comma-ok idiom, e.g. a Sequence pull or a
// map lookup.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// MustGet returns the value or panics on None.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("opt: MustGet on None")
	}
	return o.value
}

// OrElse returns the value, or fallback when empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElseFunc is OrElse with a lazily computed fallback; fn is not called when
// a value is present.
func (o Option[T]) OrElseFunc(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to a present value.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap chains an Option-returning step onto a present value.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}
