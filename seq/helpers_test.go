package seq

// pullCounter records how many times Next was called on the wrapped source.
type pullCounter[T any] struct {
	source Sequence[T]
	pulls  int
}

func counted[T any](s Sequence[T]) *pullCounter[T] {
	return &pullCounter[T]{source: s}
}

func (c *pullCounter[T]) Next() (T, bool) {
	c.pulls++
	return c.source.Next()
}

// flaky reports exhaustion at the listed pull numbers and a value otherwise.
// It deliberately breaks the fused contract.
type flaky struct {
	gaps  map[int]bool
	pulls int
}

func (f *flaky) Next() (int, bool) {
	f.pulls++
	if f.gaps[f.pulls] {
		return 0, false
	}
	return f.pulls, true
}

func assertExhausted[T any](t interface {
	Helper()
	Errorf(string, ...any)
}, s Sequence[T], times int) {
	t.Helper()
	for i := range times {
		if v, ok := s.Next(); ok {
			t.Errorf("pull %d after exhaustion returned %v", i, v)
		}
	}
}
