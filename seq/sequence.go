package seq

// Sequence is a pull-based producer of values.
type Sequence[T any] interface {
	// Next returns the next value, or (zero, false) once exhausted.
	Next() (T, bool)
}

// Sized is implemented by sequences that know how many values remain.
type Sized interface {
	// Remaining reports the number of values left, if known.
	Remaining() (int, bool)
}

// SizeHint reports how many values s will still produce, when known.
func SizeHint[T any](s Sequence[T]) (int, bool) {
	if sz, ok := s.(Sized); ok {
		return sz.Remaining()
	}
	return 0, false
}

// endless marks sources with no end.
type endless interface {
	endless()
}

// Pair is the element type of Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Indexed is the element type of Enumerate.
type Indexed[T any] struct {
	Index int
	Value T
}

// Integer is the element constraint of the integer sources.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is the element constraint of Sum and Product.
type Number interface {
	Integer | ~float32 | ~float64
}

// Fuse guarantees that s stays exhausted after its first false.
func Fuse[T any](s Sequence[T]) Sequence[T] {
	if f, ok := s.(*fuseSeq[T]); ok {
		return f
	}
	return &fuseSeq[T]{source: s}
}

type fuseSeq[T any] struct {
	source Sequence[T]
	done   bool
}

func (s *fuseSeq[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.source.Next()
	if !ok {
		s.done = true
		s.source = nil
		var zero T
		return zero, false
	}
	return v, true
}

func (s *fuseSeq[T]) Remaining() (int, bool) {
	if s.done {
		return 0, true
	}
	return SizeHint(s.source)
}
