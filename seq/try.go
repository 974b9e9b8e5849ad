package seq

import "github.com/kbukum/seqkit/result"

// TryMap applies a fallible step. Failures become result.Err values and keep
// flowing; nothing is dropped or retried.
func TryMap[T, U any](s Sequence[T], fn func(T) (U, error)) Sequence[result.Result[U]] {
	return Map(s, func(v T) result.Result[U] {
		return result.Of(fn(v))
	})
}

// Oks keeps the successful values and drops the failures.
func Oks[T any](s Sequence[result.Result[T]]) Sequence[T] {
	return FilterMap(s, result.Result[T].Ok)
}

// TryCollect collects successful values and stops pulling at the first
// failure, returning the values collected so far with its error.
func TryCollect[T any](s Sequence[result.Result[T]]) ([]T, error) {
	out := []T{}
	for {
		r, ok := s.Next()
		if !ok {
			return out, nil
		}
		v, err := r.Unwrap()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}
