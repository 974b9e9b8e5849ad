package seq

import (
	"cmp"
	"iter"

	"github.com/kbukum/seqkit/opt"
)

// Collect pulls s to exhaustion and returns its values in order. The result
// is never nil.
func Collect[T any](s Sequence[T]) []T {
	n, _ := SizeHint(s)
	out := make([]T, 0, max(n, 0))
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Fold threads an accumulator through combine, in order, and returns it.
func Fold[T, A any](s Sequence[T], init A, combine func(A, T) A) A {
	acc := init
	for {
		v, ok := s.Next()
		if !ok {
			return acc
		}
		acc = combine(acc, v)
	}
}

// Reduce folds s using its first value as the initial accumulator. It is
// None when s is empty.
func Reduce[T any](s Sequence[T], combine func(T, T) T) opt.Option[T] {
	first, ok := s.Next()
	if !ok {
		return opt.None[T]()
	}
	return opt.Some(Fold(s, first, combine))
}

// Sum adds all values; the sum of nothing is 0.
func Sum[T Number](s Sequence[T]) T {
	return Fold(s, T(0), func(acc, v T) T { return acc + v })
}

// Product multiplies all values; the product of nothing is 1.
func Product[T Number](s Sequence[T]) T {
	return Fold(s, T(1), func(acc, v T) T { return acc * v })
}

// Count pulls s to exhaustion and returns how many values it produced.
func Count[T any](s Sequence[T]) int {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// ForEach calls fn with every value.
func ForEach[T any](s Sequence[T], fn func(T)) {
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// Last returns the final value of s.
func Last[T any](s Sequence[T]) opt.Option[T] {
	var last T
	found := false
	for {
		v, ok := s.Next()
		if !ok {
			return opt.FromOk(last, found)
		}
		last, found = v, true
	}
}

// Nth returns the value at zero-based position n, pulling at most n+1
// values. Negative n is None without pulling.
func Nth[T any](s Sequence[T], n int) opt.Option[T] {
	if n < 0 {
		return opt.None[T]()
	}
	for i := 0; ; i++ {
		v, ok := s.Next()
		if !ok {
			return opt.None[T]()
		}
		if i == n {
			return opt.Some(v)
		}
	}
}

// Min returns the smallest value; ties keep the first.
func Min[T cmp.Ordered](s Sequence[T]) opt.Option[T] {
	return Reduce(s, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// Max returns the largest value; ties keep the last.
func Max[T cmp.Ordered](s Sequence[T]) opt.Option[T] {
	return Reduce(s, func(a, b T) T {
		if b >= a {
			return b
		}
		return a
	})
}

// --- short-circuiting ---

// Find returns the first value satisfying pred and stops pulling there.
func Find[T any](s Sequence[T], pred func(T) bool) opt.Option[T] {
	for {
		v, ok := s.Next()
		if !ok {
			return opt.None[T]()
		}
		if pred(v) {
			return opt.Some(v)
		}
	}
}

// FindMap returns the first present result of fn and stops pulling there.
func FindMap[T, U any](s Sequence[T], fn func(T) opt.Option[U]) opt.Option[U] {
	for {
		v, ok := s.Next()
		if !ok {
			return opt.None[U]()
		}
		if out := fn(v); out.IsSome() {
			return out
		}
	}
}

// Any reports whether some value satisfies pred, stopping at the first one.
func Any[T any](s Sequence[T], pred func(T) bool) bool {
	return Find(s, pred).IsSome()
}

// All reports whether every value satisfies pred, stopping at the first
// failure. All of an empty sequence is true.
func All[T any](s Sequence[T], pred func(T) bool) bool {
	return Find(s, func(v T) bool { return !pred(v) }).IsNone()
}

// Position returns the zero-based index of the first value satisfying pred.
func Position[T any](s Sequence[T], pred func(T) bool) opt.Option[int] {
	for i := 0; ; i++ {
		v, ok := s.Next()
		if !ok {
			return opt.None[int]()
		}
		if pred(v) {
			return opt.Some(i)
		}
	}
}

// Iter adapts s for range-over-func loops. Breaking out of the loop stops
// pulling; the remainder of s stays unconsumed.
func Iter[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
