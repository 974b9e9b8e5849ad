package seq

// Map transforms each value with fn. Each pull pulls upstream exactly once;
// fn runs once per produced value and never on exhaustion.
func Map[T, U any](s Sequence[T], fn func(T) U) Sequence[U] {
	return &mapSeq[T, U]{source: s, fn: fn}
}

// Filter keeps the values for which pred is true. A single pull may drain
// many upstream values; over an unbounded source with no match it never
// returns.
func Filter[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return &filterSeq[T]{source: s, pred: pred}
}

// Enumerate pairs each value with its zero-based position.
func Enumerate[T any](s Sequence[T]) Sequence[Indexed[T]] {
	return &enumerateSeq[T]{source: s}
}

// Zip pairs values from a and b and ends with the shorter of the two. Each
// pull takes a then b; if either is exhausted the zip is exhausted for good
// and the value already taken from a is dropped.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	return &zipSeq[A, B]{a: a, b: b}
}

// Take yields at most n values and pulls upstream at most n times. When
// n <= 0 upstream is never pulled.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	if n < 0 {
		n = 0
	}
	return &takeSeq[T]{source: s, remaining: n}
}

// Inspect calls fn with each value as it passes through, unchanged.
func Inspect[T any](s Sequence[T], fn func(T)) Sequence[T] {
	return &inspectSeq[T]{source: s, fn: fn}
}

// --- implementations ---

type mapSeq[T, U any] struct {
	source Sequence[T]
	fn     func(T) U
}

func (s *mapSeq[T, U]) Next() (U, bool) {
	v, ok := s.source.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return s.fn(v), true
}

func (s *mapSeq[T, U]) Remaining() (int, bool) { return SizeHint(s.source) }

type filterSeq[T any] struct {
	source Sequence[T]
	pred   func(T) bool
}

func (s *filterSeq[T]) Next() (T, bool) {
	for {
		v, ok := s.source.Next()
		if !ok {
			return v, false
		}
		if s.pred(v) {
			return v, true
		}
	}
}

type enumerateSeq[T any] struct {
	source Sequence[T]
	index  int
}

func (s *enumerateSeq[T]) Next() (Indexed[T], bool) {
	v, ok := s.source.Next()
	if !ok {
		return Indexed[T]{}, false
	}
	out := Indexed[T]{Index: s.index, Value: v}
	s.index++
	return out, true
}

func (s *enumerateSeq[T]) Remaining() (int, bool) { return SizeHint(s.source) }

type zipSeq[A, B any] struct {
	a    Sequence[A]
	b    Sequence[B]
	done bool
}

func (s *zipSeq[A, B]) Next() (Pair[A, B], bool) {
	if s.done {
		return Pair[A, B]{}, false
	}
	first, ok := s.a.Next()
	if !ok {
		s.finish()
		return Pair[A, B]{}, false
	}
	second, ok := s.b.Next()
	if !ok {
		s.finish()
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: first, Second: second}, true
}

func (s *zipSeq[A, B]) finish() {
	s.done = true
	s.a, s.b = nil, nil
}

func (s *zipSeq[A, B]) Remaining() (int, bool) {
	if s.done {
		return 0, true
	}
	na, okA := SizeHint(s.a)
	nb, okB := SizeHint(s.b)
	switch {
	case okA && okB:
		return min(na, nb), true
	case okA && isEndless(s.b):
		return na, true
	case okB && isEndless(s.a):
		return nb, true
	}
	return 0, false
}

type takeSeq[T any] struct {
	source    Sequence[T]
	remaining int
}

func (s *takeSeq[T]) Next() (T, bool) {
	if s.remaining == 0 {
		var zero T
		return zero, false
	}
	v, ok := s.source.Next()
	if !ok {
		s.remaining = 0
		return v, false
	}
	s.remaining--
	return v, true
}

func (s *takeSeq[T]) Remaining() (int, bool) {
	if s.remaining == 0 {
		return 0, true
	}
	if isEndless(s.source) {
		return s.remaining, true
	}
	if n, ok := SizeHint(s.source); ok {
		return min(n, s.remaining), true
	}
	return 0, false
}

type inspectSeq[T any] struct {
	source Sequence[T]
	fn     func(T)
}

func (s *inspectSeq[T]) Next() (T, bool) {
	v, ok := s.source.Next()
	if !ok {
		return v, false
	}
	s.fn(v)
	return v, true
}

func (s *inspectSeq[T]) Remaining() (int, bool) { return SizeHint(s.source) }

func isEndless[T any](s Sequence[T]) bool {
	_, ok := s.(endless)
	return ok
}
