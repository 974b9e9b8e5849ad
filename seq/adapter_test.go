package seq

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/kbukum/seqkit/opt"
	"github.com/kbukum/seqkit/step"
)

func TestMap(t *testing.T) {
	got := Collect(Map(FromSlice([]int{1, 2, 3}), func(x int) string { return fmt.Sprintf("#%d", x) }))
	if !slices.Equal(got, []string{"#1", "#2", "#3"}) {
		t.Errorf("got %v", got)
	}
}

func TestMap_StepNotCalledOnExhaustion(t *testing.T) {
	calls := 0
	s := Map(FromSlice([]int{1, 2}), func(x int) int { calls++; return x })
	Collect(s)
	assertExhausted(t, s, 3)
	if calls != 2 {
		t.Errorf("step ran %d times, want 2", calls)
	}
}

func TestLaziness_NothingRunsUntilPulled(t *testing.T) {
	src := counted(FromSlice([]int{1, 2, 3, 4, 5}))
	mapCalls, filterCalls, inspectCalls := 0, 0, 0
	chain := Inspect(
		Filter(
			Map[int](src, func(x int) int { mapCalls++; return x * 2 }),
			func(x int) bool { filterCalls++; return x > 4 },
		),
		func(int) { inspectCalls++ },
	)
	if src.pulls+mapCalls+filterCalls+inspectCalls != 0 {
		t.Fatalf("work done before pulling: pulls=%d map=%d filter=%d inspect=%d",
			src.pulls, mapCalls, filterCalls, inspectCalls)
	}

	if got := Collect(chain); !slices.Equal(got, []int{6, 8, 10}) {
		t.Errorf("got %v", got)
	}
	if mapCalls != 5 || filterCalls != 5 || inspectCalls != 3 {
		t.Errorf("map=%d filter=%d inspect=%d", mapCalls, filterCalls, inspectCalls)
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"mixed", []int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6}},
		{"none", []int{1, 3, 5}, []int{}},
		{"empty", nil, []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Filter(FromSlice(tc.in), func(x int) bool { return x%2 == 0 })
			if got := Collect(s); !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			assertExhausted(t, s, 2)
		})
	}
}

func TestFilter_NeverRevisitsDiscarded(t *testing.T) {
	src := counted(FromSlice([]int{1, 3, 4, 5, 6}))
	s := Filter[int](src, func(x int) bool { return x%2 == 0 })
	if v, _ := s.Next(); v != 4 || src.pulls != 3 {
		t.Errorf("got %d after %d pulls", v, src.pulls)
	}
	if v, _ := s.Next(); v != 6 || src.pulls != 5 {
		t.Errorf("got %d after %d pulls", v, src.pulls)
	}
}

func TestEnumerate(t *testing.T) {
	got := Collect(Enumerate(FromSlice([]string{"a", "b", "c"})))
	want := []Indexed[string]{{0, "a"}, {1, "b"}, {2, "c"}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEnumerate_IndexCountsProducedOnly(t *testing.T) {
	raw := &flaky{gaps: map[int]bool{2: true}}
	s := Enumerate[int](raw)
	first, _ := s.Next()
	if _, ok := s.Next(); ok {
		t.Fatal("expected the gap")
	}
	third, _ := s.Next()
	if first.Index != 0 || third.Index != 1 {
		t.Errorf("indexes %d, %d; exhausted pulls must not advance the counter", first.Index, third.Index)
	}
}

func TestZip(t *testing.T) {
	got := Collect(Zip(FromSlice([]int{1, 2, 3}), FromSlice([]int{10, 20})))
	want := []Pair[int, int]{{1, 10}, {2, 20}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestZip_ShortCircuitsAndStaysExhausted(t *testing.T) {
	a := counted(FromSlice([]int{1, 2, 3}))
	b := counted(FromSlice([]string{"x"}))
	s := Zip[int, string](a, b)
	Collect(s)
	assertExhausted(t, s, 3)
	if a.pulls != 2 || b.pulls != 2 {
		t.Errorf("a pulled %d, b pulled %d; want 2 and 2", a.pulls, b.pulls)
	}

	// left side exhausted first: right side is not pulled for that round
	a = counted(Empty[int]())
	b = counted(Repeat("y"))
	Collect(Zip[int, string](a, b))
	if b.pulls != 0 {
		t.Errorf("right side pulled %d times", b.pulls)
	}
}

func TestZip_SizeHint(t *testing.T) {
	if n, ok := SizeHint(Zip(FromSlice([]int{1, 2, 3}), From(0))); !ok || n != 3 {
		t.Errorf("got %d %v", n, ok)
	}
	if n, ok := SizeHint(Zip(FromSlice([]int{1, 2, 3}), FromSlice([]int{1}))); !ok || n != 1 {
		t.Errorf("got %d %v", n, ok)
	}
}

func TestTake_BoundsUpstreamPulls(t *testing.T) {
	for _, n := range []int{0, 1, 5, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := counted(From(1))
			s := Take[int](src, n)
			got := Collect(s)
			assertExhausted(t, s, 3)
			if len(got) != n || src.pulls != n {
				t.Errorf("collected %d, pulled %d; want %d", len(got), src.pulls, n)
			}
		})
	}
}

func TestTake_ShortUpstream(t *testing.T) {
	src := counted(FromSlice([]int{1, 2}))
	s := Take[int](src, 5)
	if got := Collect(s); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}
	assertExhausted(t, s, 2)
	if src.pulls != 3 {
		t.Errorf("pulled %d, want 3 (two values and one exhaustion)", src.pulls)
	}
	if got := Collect(Take(FromSlice([]int{1}), -1)); len(got) != 0 {
		t.Errorf("negative take got %v", got)
	}
}

func TestSquaresOfNaturals(t *testing.T) {
	got := Collect(Take(Map(From(1), func(x int) int { return x * x }), 5))
	if !slices.Equal(got, []int{1, 4, 9, 16, 25}) {
		t.Errorf("got %v", got)
	}
}

func TestInspect(t *testing.T) {
	var seen []int
	s := Inspect(FromSlice([]int{1, 2}), func(x int) { seen = append(seen, x) })
	got := Collect(s)
	assertExhausted(t, s, 2)
	if !slices.Equal(got, []int{1, 2}) || !slices.Equal(seen, []int{1, 2}) {
		t.Errorf("got %v, seen %v", got, seen)
	}
}

func TestInspect_WithMutStep(t *testing.T) {
	count := 0
	counter := step.NewMut(&count, func(n *int, _ string) struct{} {
		*n++
		return struct{}{}
	})
	s := Inspect(FromSlice([]string{"a", "b", "c"}), func(v string) { counter.Call(v) })
	Collect(s)
	if count != 3 {
		t.Errorf("count %d", count)
	}
}

func TestShortCircuitChain(t *testing.T) {
	var trail []string
	got := Find(
		Inspect(
			Filter(
				Inspect(
					Map(Inspect(From(1), func(x int) { trail = append(trail, fmt.Sprintf("gen %d", x)) }),
						func(x int) int { return x * x }),
					func(x int) { trail = append(trail, fmt.Sprintf("sq %d", x)) }),
				func(x int) bool { return x%2 == 0 }),
			func(x int) { trail = append(trail, fmt.Sprintf("even %d", x)) }),
		func(x int) bool { return x > 10 },
	)
	if v, ok := got.Get(); !ok || v != 16 {
		t.Fatalf("got %v", got)
	}
	want := []string{"gen 1", "sq 1", "gen 2", "sq 4", "even 4", "gen 3", "sq 9", "gen 4", "sq 16", "even 16"}
	if !slices.Equal(trail, want) {
		t.Errorf("trail %v\nwant  %v", trail, want)
	}
}

func TestSkipAndStepBy(t *testing.T) {
	if got := Collect(Skip(FromSlice([]int{1, 2, 3, 4}), 1)); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("skip got %v", got)
	}
	if got := Collect(Skip(FromSlice([]int{1, 2}), 5)); len(got) != 0 {
		t.Errorf("over-skip got %v", got)
	}
	if n, _ := SizeHint(Skip(FromSlice([]int{1, 2, 3}), 2)); n != 1 {
		t.Errorf("skip size hint %d", n)
	}
	if got := Collect(StepBy(Range(0, 10), 3)); !slices.Equal(got, []int{0, 3, 6, 9}) {
		t.Errorf("step by got %v", got)
	}
	if got := Collect(StepBy(Range(0, 3), 0)); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("step 0 got %v", got)
	}
}

func TestTakeWhileSkipWhile(t *testing.T) {
	src := counted(From(1))
	got := Collect(TakeWhile[int](src, func(x int) bool { return x < 4 }))
	if !slices.Equal(got, []int{1, 2, 3}) || src.pulls != 4 {
		t.Errorf("got %v after %d pulls", got, src.pulls)
	}

	got = Collect(SkipWhile(FromSlice([]int{0, 0, 3, 0, 4}), func(x int) bool { return x == 0 }))
	if !slices.Equal(got, []int{3, 0, 4}) {
		t.Errorf("skip while got %v", got)
	}
}

func TestChain(t *testing.T) {
	s := Chain(FromSlice([]int{1, 2}), FromSlice([]int{3}))
	if n, _ := SizeHint(s); n != 3 {
		t.Errorf("size hint %d", n)
	}
	if got := Collect(s); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	assertExhausted(t, s, 2)
}

func TestChain_SizeHintOverflow(t *testing.T) {
	s := Chain(Range(0, math.MaxInt), Range(0, math.MaxInt))
	if n, ok := SizeHint(s); ok {
		t.Errorf("expected unknown size, got %d", n)
	}
	if got := Collect(Take(s, 2)); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("got %v", got)
	}
}

func TestAdapters_PassThroughUnfusedUpstream(t *testing.T) {
	double := func(x int) int { return x * 2 }

	// Map forwards whatever its upstream reports, gaps included.
	got := Map[int](&flaky{gaps: map[int]bool{2: true}}, double)
	if v, ok := got.Next(); !ok || v != 2 {
		t.Fatalf("first pull = (%d, %t)", v, ok)
	}
	if _, ok := got.Next(); ok {
		t.Fatal("expected the upstream gap")
	}
	if v, ok := got.Next(); !ok || v != 6 {
		t.Errorf("pull after gap = (%d, %t), want (6, true)", v, ok)
	}

	// Fuse in front of a foreign sequence restores the contract.
	fused := Map(Fuse[int](&flaky{gaps: map[int]bool{2: true}}), double)
	if c := Collect(fused); !slices.Equal(c, []int{2}) {
		t.Errorf("got %v", c)
	}
	assertExhausted(t, fused, 3)
}

func TestFilterMapFlatMap(t *testing.T) {
	halves := FilterMap(FromSlice([]int{1, 2, 3, 4}), func(x int) opt.Option[int] {
		if x%2 != 0 {
			return opt.None[int]()
		}
		return opt.Some(x / 2)
	})
	if got := Collect(halves); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("filter map got %v", got)
	}

	expanded := FlatMap(FromSlice([]int{1, 2, 3}), func(x int) Sequence[int] {
		if x == 2 {
			return Empty[int]()
		}
		return FromSlice([]int{x, x * 10})
	})
	if got := Collect(expanded); !slices.Equal(got, []int{1, 10, 3, 30}) {
		t.Errorf("flat map got %v", got)
	}
}

func TestScan(t *testing.T) {
	running := Scan(FromSlice([]int{1, 2, 3, 4, 5}), 0, func(acc *int, x int) opt.Option[int] {
		*acc += x
		if *acc > 6 {
			return opt.None[int]()
		}
		return opt.Some(*acc)
	})
	if got := Collect(running); !slices.Equal(got, []int{1, 3, 6}) {
		t.Errorf("got %v", got)
	}
	assertExhausted(t, running, 2)
}

func TestChunks(t *testing.T) {
	got := Collect(Chunks(FromSlice([]int{1, 2, 3, 4, 5}), 2))
	if len(got) != 3 || !slices.Equal(got[0], []int{1, 2}) || !slices.Equal(got[2], []int{5}) {
		t.Errorf("got %v", got)
	}
	if got := Collect(Chunks(Empty[int](), 3)); len(got) != 0 {
		t.Errorf("expected no chunks, got %v", got)
	}
	if got := Collect(Chunks(FromSlice([]int{1, 2}), 0)); len(got) != 2 {
		t.Errorf("size 0 should chunk by 1, got %v", got)
	}
}
