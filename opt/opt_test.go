package opt

import "testing"

func TestSomeNone(t *testing.T) {
	s := Some(3)
	if !s.IsSome() || s.IsNone() {
		t.Fatal("expected Some")
	}
	if v, ok := s.Get(); !ok || v != 3 {
		t.Errorf("got %v %v", v, ok)
	}

	n := None[int]()
	if n.IsSome() {
		t.Fatal("expected None")
	}
	var zero Option[int]
	if zero.IsSome() {
		t.Error("zero value must be None")
	}
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if !FromOk(v, ok).IsSome() {
		t.Error("expected Some for present key")
	}
	v, ok = m["b"]
	if FromOk(v, ok).IsSome() {
		t.Error("expected None for missing key")
	}
}

func TestOrElse(t *testing.T) {
	if got := Some(1).OrElse(9); got != 1 {
		t.Errorf("got %d", got)
	}
	if got := None[int]().OrElse(9); got != 9 {
		t.Errorf("got %d", got)
	}

	calls := 0
	fallback := func() int { calls++; return 7 }
	if got := Some(1).OrElseFunc(fallback); got != 1 || calls != 0 {
		t.Errorf("fallback must not run for Some (got %d, calls %d)", got, calls)
	}
	if got := None[int]().OrElseFunc(fallback); got != 7 || calls != 1 {
		t.Errorf("got %d, calls %d", got, calls)
	}
}

func TestMustGetPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	None[string]().MustGet()
}

func TestString(t *testing.T) {
	if got := Some(2).String(); got != "Some(2)" {
		t.Errorf("got %q", got)
	}
	if got := None[int]().String(); got != "None" {
		t.Errorf("got %q", got)
	}
}

func TestMapFlatMap(t *testing.T) {
	double := func(v int) int { return v * 2 }
	if got := Map(Some(4), double); got.MustGet() != 8 {
		t.Errorf("got %v", got)
	}
	if Map(None[int](), double).IsSome() {
		t.Error("expected None")
	}
	half := func(v int) Option[int] {
		if v%2 != 0 {
			return None[int]()
		}
		return Some(v / 2)
	}
	if got := FlatMap(Some(4), half); got.MustGet() != 2 {
		t.Errorf("got %v", got)
	}
	if FlatMap(Some(3), half).IsSome() {
		t.Error("expected None for odd input")
	}
}
