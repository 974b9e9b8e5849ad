package seq

import (
	"math"

	"github.com/kbukum/seqkit/step"
)

// --- bounded ---

// FromSlice yields the elements of items in order without copying them.
func FromSlice[T any](items []T) Sequence[T] {
	return &sliceSeq[T]{items: items}
}

// FromSliceMut yields a pointer to each element of items, so a consumer can
// update the slice in place.
func FromSliceMut[T any](items []T) Sequence[*T] {
	return &sliceMutSeq[T]{items: items}
}

// Drain takes ownership of the slice in *p: *p is set to nil before the
// sequence is returned, leaving the sequence as the sole owner of the
// elements.
func Drain[T any](p *[]T) Sequence[T] {
	if p == nil {
		return Empty[T]()
	}
	items := *p
	*p = nil
	return &sliceSeq[T]{items: items}
}

// Range yields start, start+1, ..., end-1. It is empty when end <= start.
func Range[T Integer](start, end T) Sequence[T] {
	return &rangeSeq[T]{next: start, end: end}
}

// RangeInclusive yields start through end, both included. It is empty when
// end < start and is safe when end is the maximum value of T.
func RangeInclusive[T Integer](start, end T) Sequence[T] {
	return &rangeInclusiveSeq[T]{next: start, end: end, done: end < start}
}

// Empty yields nothing.
func Empty[T any]() Sequence[T] {
	return &sliceSeq[T]{}
}

// Once yields v a single time.
func Once[T any](v T) Sequence[T] {
	return &sliceSeq[T]{items: []T{v}}
}

// OnceWith yields the value of a consuming step a single time. The step runs
// on the first pull, not at construction; if it was already consumed
// elsewhere the sequence is empty.
func OnceWith[T any](fn step.FuncOnce[T]) Sequence[T] {
	return &onceWithSeq[T]{fn: fn}
}

// FromFunc wraps a generator. The result is fused, so fn is never called
// again after it first reports false.
func FromFunc[T any](fn func() (T, bool)) Sequence[T] {
	return &funcSeq[T]{fn: fn}
}

// --- unbounded ---

// From yields start, start+1, start+2, ... without end. Values wrap around
// on overflow of T.
func From[T Integer](start T) Sequence[T] {
	return &countSeq[T]{next: start}
}

// Iterate yields seed, fn(seed), fn(fn(seed)), ... without end. fn runs only
// when the following value is pulled.
func Iterate[T any](seed T, fn func(T) T) Sequence[T] {
	return &iterateSeq[T]{current: seed, fn: fn}
}

// Repeat yields v forever.
func Repeat[T any](v T) Sequence[T] {
	return &repeatSeq[T]{value: v}
}

// Generate yields fn() forever, calling fn once per pull.
func Generate[T any](fn func() T) Sequence[T] {
	return &generateSeq[T]{fn: fn}
}

// --- implementations ---

type sliceSeq[T any] struct {
	items []T
	index int
}

func (s *sliceSeq[T]) Next() (T, bool) {
	if s.index >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.index]
	s.index++
	return v, true
}

func (s *sliceSeq[T]) Remaining() (int, bool) { return len(s.items) - s.index, true }

type sliceMutSeq[T any] struct {
	items []T
	index int
}

func (s *sliceMutSeq[T]) Next() (*T, bool) {
	if s.index >= len(s.items) {
		return nil, false
	}
	p := &s.items[s.index]
	s.index++
	return p, true
}

func (s *sliceMutSeq[T]) Remaining() (int, bool) { return len(s.items) - s.index, true }

type rangeSeq[T Integer] struct {
	next, end T
}

func (s *rangeSeq[T]) Next() (T, bool) {
	if s.next >= s.end {
		var zero T
		return zero, false
	}
	v := s.next
	s.next++
	return v, true
}

func (s *rangeSeq[T]) Remaining() (int, bool) {
	if s.next >= s.end {
		return 0, true
	}
	return distance(s.next, s.end, 0)
}

type rangeInclusiveSeq[T Integer] struct {
	next, end T
	done      bool
}

func (s *rangeInclusiveSeq[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v := s.next
	if s.next == s.end {
		s.done = true
	} else {
		s.next++
	}
	return v, true
}

func (s *rangeInclusiveSeq[T]) Remaining() (int, bool) {
	if s.done {
		return 0, true
	}
	return distance(s.next, s.end, 1)
}

// distance reports to-from+extra as an int, or false when it does not fit.
// Both operands are widened to uint64 before subtracting, which yields the
// exact gap for every Integer type as long as from <= to.
func distance[T Integer](from, to T, extra uint64) (int, bool) {
	d := uint64(to) - uint64(from)
	if d > math.MaxInt-extra {
		return 0, false
	}
	return int(d + extra), true
}

type onceWithSeq[T any] struct {
	fn step.FuncOnce[T]
}

func (s *onceWithSeq[T]) Next() (T, bool) {
	if s.fn == nil {
		var zero T
		return zero, false
	}
	fn := s.fn
	s.fn = nil
	v, err := fn.Call()
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

type funcSeq[T any] struct {
	fn func() (T, bool)
}

func (s *funcSeq[T]) Next() (T, bool) {
	if s.fn == nil {
		var zero T
		return zero, false
	}
	v, ok := s.fn()
	if !ok {
		s.fn = nil
		var zero T
		return zero, false
	}
	return v, true
}

type countSeq[T Integer] struct {
	next T
}

func (s *countSeq[T]) Next() (T, bool) {
	v := s.next
	s.next++
	return v, true
}

func (s *countSeq[T]) endless() {}

type iterateSeq[T any] struct {
	current T
	fn      func(T) T
	started bool
}

func (s *iterateSeq[T]) Next() (T, bool) {
	if !s.started {
		s.started = true
		return s.current, true
	}
	s.current = s.fn(s.current)
	return s.current, true
}

func (s *iterateSeq[T]) endless() {}

type repeatSeq[T any] struct {
	value T
}

func (s *repeatSeq[T]) Next() (T, bool) { return s.value, true }

func (s *repeatSeq[T]) endless() {}

type generateSeq[T any] struct {
	fn func() T
}

func (s *generateSeq[T]) Next() (T, bool) { return s.fn(), true }

func (s *generateSeq[T]) endless() {}
