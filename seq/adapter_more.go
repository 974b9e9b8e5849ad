package seq

import (
	"math"

	"github.com/kbukum/seqkit/opt"
)

// Skip drops the first n values. The dropping happens on the first pull.
func Skip[T any](s Sequence[T], n int) Sequence[T] {
	if n <= 0 {
		return s
	}
	return &skipSeq[T]{source: s, skip: n}
}

// StepBy yields the first value and then every step-th value after it.
// A step below 1 is treated as 1.
func StepBy[T any](s Sequence[T], step int) Sequence[T] {
	if step < 1 {
		step = 1
	}
	return &stepBySeq[T]{source: s, step: step, first: true}
}

// TakeWhile yields values while pred holds. The first failing value is
// consumed and dropped, and upstream is not pulled again afterwards.
func TakeWhile[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return &takeWhileSeq[T]{source: s, pred: pred}
}

// SkipWhile drops values while pred holds, then yields everything after.
func SkipWhile[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return &skipWhileSeq[T]{source: s, pred: pred}
}

// Chain yields all of a, then all of b. a is not pulled after it is
// exhausted.
func Chain[T any](a, b Sequence[T]) Sequence[T] {
	return &chainSeq[T]{first: a, second: b}
}

// FilterMap applies fn and keeps only present results.
func FilterMap[T, U any](s Sequence[T], fn func(T) opt.Option[U]) Sequence[U] {
	return &filterMapSeq[T, U]{source: s, fn: fn}
}

// FlatMap maps each value to a sequence and yields their values in order.
func FlatMap[T, U any](s Sequence[T], fn func(T) Sequence[U]) Sequence[U] {
	return &flatMapSeq[T, U]{source: s, fn: fn}
}

// Scan threads state through fn, yielding what fn returns and stopping at
// the first None. The state is owned by the adapter.
func Scan[T, S, U any](s Sequence[T], init S, fn func(*S, T) opt.Option[U]) Sequence[U] {
	return &scanSeq[T, S, U]{source: s, state: init, fn: fn}
}

// Chunks groups values into slices of size; the last chunk may be shorter.
// A size below 1 is treated as 1.
func Chunks[T any](s Sequence[T], size int) Sequence[[]T] {
	if size < 1 {
		size = 1
	}
	return &chunkSeq[T]{source: s, size: size}
}

// --- implementations ---

type skipSeq[T any] struct {
	source Sequence[T]
	skip   int
}

func (s *skipSeq[T]) Next() (T, bool) {
	for s.skip > 0 {
		s.skip--
		if v, ok := s.source.Next(); !ok {
			s.skip = 0
			return v, false
		}
	}
	return s.source.Next()
}

func (s *skipSeq[T]) Remaining() (int, bool) {
	n, ok := SizeHint(s.source)
	if !ok {
		return 0, false
	}
	return max(n-s.skip, 0), true
}

type stepBySeq[T any] struct {
	source Sequence[T]
	step   int
	first  bool
}

func (s *stepBySeq[T]) Next() (T, bool) {
	if s.first {
		s.first = false
		return s.source.Next()
	}
	for range s.step - 1 {
		if v, ok := s.source.Next(); !ok {
			return v, false
		}
	}
	return s.source.Next()
}

type takeWhileSeq[T any] struct {
	source Sequence[T]
	pred   func(T) bool
	done   bool
}

func (s *takeWhileSeq[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.source.Next()
	if !ok || !s.pred(v) {
		s.done = true
		var zero T
		return zero, false
	}
	return v, true
}

type skipWhileSeq[T any] struct {
	source  Sequence[T]
	pred    func(T) bool
	skipped bool
}

func (s *skipWhileSeq[T]) Next() (T, bool) {
	if s.skipped {
		return s.source.Next()
	}
	for {
		v, ok := s.source.Next()
		if !ok {
			return v, false
		}
		if !s.pred(v) {
			s.skipped = true
			return v, true
		}
	}
}

type chainSeq[T any] struct {
	first, second Sequence[T]
}

func (s *chainSeq[T]) Next() (T, bool) {
	if s.first != nil {
		if v, ok := s.first.Next(); ok {
			return v, true
		}
		s.first = nil
	}
	return s.second.Next()
}

func (s *chainSeq[T]) Remaining() (int, bool) {
	n2, ok := SizeHint(s.second)
	if !ok {
		return 0, false
	}
	if s.first == nil {
		return n2, true
	}
	n1, ok := SizeHint(s.first)
	if !ok || n1 > math.MaxInt-n2 {
		return 0, false
	}
	return n1 + n2, true
}

type filterMapSeq[T, U any] struct {
	source Sequence[T]
	fn     func(T) opt.Option[U]
}

func (s *filterMapSeq[T, U]) Next() (U, bool) {
	for {
		v, ok := s.source.Next()
		if !ok {
			var zero U
			return zero, false
		}
		if out, ok := s.fn(v).Get(); ok {
			return out, true
		}
	}
}

type flatMapSeq[T, U any] struct {
	source  Sequence[T]
	fn      func(T) Sequence[U]
	current Sequence[U]
}

func (s *flatMapSeq[T, U]) Next() (U, bool) {
	for {
		if s.current != nil {
			if v, ok := s.current.Next(); ok {
				return v, true
			}
			s.current = nil
		}
		in, ok := s.source.Next()
		if !ok {
			var zero U
			return zero, false
		}
		s.current = s.fn(in)
	}
}

type scanSeq[T, S, U any] struct {
	source Sequence[T]
	state  S
	fn     func(*S, T) opt.Option[U]
	done   bool
}

func (s *scanSeq[T, S, U]) Next() (U, bool) {
	if s.done {
		var zero U
		return zero, false
	}
	v, ok := s.source.Next()
	if !ok {
		s.done = true
		var zero U
		return zero, false
	}
	out, ok := s.fn(&s.state, v).Get()
	if !ok {
		s.done = true
	}
	return out, ok
}

type chunkSeq[T any] struct {
	source Sequence[T]
	size   int
	done   bool
}

func (s *chunkSeq[T]) Next() ([]T, bool) {
	if s.done {
		return nil, false
	}
	chunk := make([]T, 0, s.size)
	for len(chunk) < s.size {
		v, ok := s.source.Next()
		if !ok {
			s.done = true
			break
		}
		chunk = append(chunk, v)
	}
	if len(chunk) == 0 {
		return nil, false
	}
	return chunk, true
}
