package seq

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/kbukum/seqkit/opt"
	"github.com/kbukum/seqkit/result"
)

func TestFold(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	if got := Fold(FromSlice(nums), 0, func(acc, x int) int { return acc + x }); got != 15 {
		t.Errorf("sum fold %d", got)
	}
	if got := Fold(FromSlice(nums), 1, func(acc, x int) int { return acc * x }); got != 120 {
		t.Errorf("product fold %d", got)
	}
	sentence := Fold(FromSlice([]string{"hello", "world"}), "", func(acc, w string) string {
		return acc + w + " "
	})
	if strings.TrimSpace(sentence) != "hello world" {
		t.Errorf("got %q", sentence)
	}
}

func TestSumProductCount(t *testing.T) {
	if got := Sum(FromSlice([]int{1, 2, 3, 4, 5})); got != 15 {
		t.Errorf("sum %d", got)
	}
	if got := Product(FromSlice([]int{1, 2, 3, 4, 5})); got != 120 {
		t.Errorf("product %d", got)
	}
	if got := Sum(Empty[float64]()); got != 0 {
		t.Errorf("empty sum %v", got)
	}
	if got := Product(Empty[int]()); got != 1 {
		t.Errorf("empty product %d", got)
	}
	if got := Sum(FromSlice([]float64{0.5, 0.25})); got != 0.75 {
		t.Errorf("float sum %v", got)
	}
	if got := Count(Filter(Range(0, 10), func(x int) bool { return x%3 == 0 })); got != 4 {
		t.Errorf("count %d", got)
	}
}

func TestReduceMinMaxLastNth(t *testing.T) {
	if got := Reduce(FromSlice([]int{3, 4}), func(a, b int) int { return a * b }); got.MustGet() != 12 {
		t.Errorf("reduce %v", got)
	}
	if Reduce(Empty[int](), func(a, b int) int { return a }).IsSome() {
		t.Error("reduce of empty must be None")
	}
	if got := Min(FromSlice([]int{4, 1, 3})); got.MustGet() != 1 {
		t.Errorf("min %v", got)
	}
	if got := Max(FromSlice([]string{"b", "c", "a"})); got.MustGet() != "c" {
		t.Errorf("max %v", got)
	}
	if got := Last(FromSlice([]int{1, 2, 3})); got.MustGet() != 3 {
		t.Errorf("last %v", got)
	}
	if Last(Empty[int]()).IsSome() {
		t.Error("last of empty must be None")
	}

	src := counted(From(0))
	if got := Nth[int](src, 3); got.MustGet() != 3 || src.pulls != 4 {
		t.Errorf("nth %v after %d pulls", got, src.pulls)
	}
	if Nth(FromSlice([]int{1}), 2).IsSome() || Nth(FromSlice([]int{1}), -1).IsSome() {
		t.Error("out of range nth must be None")
	}
}

func TestFind(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	if got := Find(FromSlice([]int{1, 2, 3, 4, 5}), even); got != opt.Some(2) {
		t.Errorf("got %v", got)
	}
	if got := Find(FromSlice([]int{1, 3, 5}), even); got.IsSome() {
		t.Errorf("got %v, want None", got)
	}
}

func TestFind_StopsAtFirstMatch(t *testing.T) {
	src := counted(FromSlice([]int{1, 2, 3, 4}))
	Find[int](src, func(x int) bool { return x == 2 })
	if src.pulls != 2 {
		t.Errorf("pulled %d, want 2", src.pulls)
	}
	if v, _ := src.Next(); v != 3 {
		t.Errorf("remaining source should resume at 3, got %d", v)
	}
}

func TestFindMap_ParsesFirstNumber(t *testing.T) {
	words := FromSlice([]string{"lol", "NaN", "2", "5"})
	got := FindMap(words, func(s string) opt.Option[int] {
		return result.Of(strconv.Atoi(s)).Ok()
	})
	if got != opt.Some(2) {
		t.Errorf("got %v", got)
	}
	if FindMap(FromSlice([]string{"a"}), func(s string) opt.Option[int] { return opt.None[int]() }).IsSome() {
		t.Error("expected None")
	}
}

func TestAnyAll(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	if !Any(FromSlice(nums), func(x int) bool { return x%2 == 0 }) {
		t.Error("expected an even number")
	}
	if !All(FromSlice(nums), func(x int) bool { return x > 0 }) {
		t.Error("expected all positive")
	}
	if Any(Empty[int](), func(int) bool { return true }) {
		t.Error("any of empty must be false")
	}
	if !All(Empty[int](), func(int) bool { return false }) {
		t.Error("all of empty must be true")
	}
}

func TestAnyAll_ShortCircuit(t *testing.T) {
	src := counted(From(1))
	if !Any[int](src, func(x int) bool { return x == 3 }) || src.pulls != 3 {
		t.Errorf("any pulled %d", src.pulls)
	}
	src = counted(From(1))
	if All[int](src, func(x int) bool { return x < 3 }) || src.pulls != 3 {
		t.Errorf("all pulled %d", src.pulls)
	}
}

func TestPosition(t *testing.T) {
	if got := Position(FromSlice([]int{1, 2, 3}), func(x int) bool { return x == 3 }); got != opt.Some(2) {
		t.Errorf("got %v", got)
	}
	if Position(FromSlice([]int{1, 2, 3}), func(x int) bool { return x == 9 }).IsSome() {
		t.Error("expected None")
	}
}

func TestIter_RangeOverFunc(t *testing.T) {
	var got []int
	for v := range Iter(From(1)) {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestCollect_NeverNil(t *testing.T) {
	if got := Collect(Empty[int]()); got == nil {
		t.Error("expected non-nil empty slice")
	}
}

func TestTryMapOks(t *testing.T) {
	parsed := TryMap(FromSlice([]string{"1", "x", "3"}), strconv.Atoi)
	rs := Collect(parsed)
	if len(rs) != 3 || !rs[0].IsOk() || rs[1].IsOk() || !rs[2].IsOk() {
		t.Fatalf("failure must flow as a value: %v", rs)
	}

	oks := Collect(Oks(TryMap(FromSlice([]string{"1", "x", "3"}), strconv.Atoi)))
	if !slices.Equal(oks, []int{1, 3}) {
		t.Errorf("oks %v", oks)
	}
}

func TestTryCollect(t *testing.T) {
	got, err := TryCollect(TryMap(FromSlice([]string{"1", "2"}), strconv.Atoi))
	if err != nil || !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, %v", got, err)
	}

	src := counted(FromSlice([]string{"1", "bad", "3"}))
	got, err = TryCollect(TryMap[string](src, strconv.Atoi))
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if !slices.Equal(got, []int{1}) || src.pulls != 2 {
		t.Errorf("got %v after %d pulls", got, src.pulls)
	}
}
