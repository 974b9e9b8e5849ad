package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/opt"
	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/result"
	"github.com/kbukum/seqkit/seq"
	"github.com/kbukum/seqkit/step"
)

// runner carries what every scenario needs.
type runner struct {
	out   io.Writer
	limit int
	mws   []pipeline.Middleware
}

func (r *runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// drain runs p through the configured middlewares, printing each element.
func drain[T any](ctx context.Context, r *runner, p *pipeline.Pipeline[T], format string) error {
	return pipeline.Drain(p, func(_ context.Context, v T) error {
		r.printf(format, v)
		return nil
	}, r.mws...).Run(ctx)
}

// collect runs p through the configured middlewares.
func collect[T any](ctx context.Context, r *runner, p *pipeline.Pipeline[T]) ([]T, error) {
	return pipeline.Collect(ctx, p, r.mws...)
}

type scenario struct {
	name string
	desc string
	run  func(ctx context.Context, r *runner) error
}

var scenarios = []scenario{
	{"lazy", "adapters do no work until a consumer pulls", runLazy},
	{"squares", "map, filter and sum", runSquares},
	{"fold", "folding into sums, products and strings", runFold},
	{"find", "short-circuiting find, any and all", runFind},
	{"enumerate-zip", "indexing and pairing sequences", runEnumerateZip},
	{"closures", "read-only, mutable and consuming steps", runClosures},
	{"iterators", "borrowing, mutating and draining slices", runIterators},
	{"parse", "fallible element transforms", runParse},
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

// lookupScenarios resolves names in order. An unknown name is INVALID_INPUT.
func lookupScenarios(names []string) ([]scenario, error) {
	out := make([]scenario, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(scenarios, func(s scenario) bool { return s.name == name })
		if i < 0 {
			return nil, errors.InvalidInput("scenario",
				fmt.Sprintf("unknown scenario %q (known: %s)", name, strings.Join(scenarioNames(), ", ")))
		}
		out = append(out, scenarios[i])
	}
	return out, nil
}

func runLazy(ctx context.Context, r *runner) error {
	numbers := []int{1, 2, 3, 4, 5}
	p := pipeline.Filter(
		pipeline.Map(pipeline.FromSlice(numbers), func(n int) int {
			r.printf("  [map] processing %d", n)
			return n * 2
		}),
		func(n int) bool {
			r.printf("  [filter] checking %d", n)
			return n > 4
		},
	).Named("lazy-chain")
	r.printf("pipeline built; nothing has run yet")

	got, err := collect(ctx, r, p)
	if err != nil {
		return err
	}
	r.printf("result: %v", got)

	squares := seq.Collect(seq.Take(seq.Map(seq.From(1), func(n int) int { return n * n }), r.limit))
	r.printf("first %d squares of an unbounded range: %v", r.limit, squares)

	var trace []string
	found := seq.Find(
		seq.Inspect(
			seq.Filter(
				seq.Inspect(seq.Map(
					seq.Inspect(seq.From(1), func(n int) { trace = append(trace, "gen "+strconv.Itoa(n)) }),
					func(n int) int { return n * n }),
					func(n int) { trace = append(trace, "square "+strconv.Itoa(n)) }),
				func(n int) bool { return n%2 == 0 }),
			func(n int) { trace = append(trace, "even "+strconv.Itoa(n)) }),
		func(n int) bool { return n > 10 })
	r.printf("first even square > 10: %v", found)
	r.printf("pulls: %s", strings.Join(trace, " -> "))

	evens := seq.Sum(seq.Filter(seq.RangeInclusive(1, 100), func(n int) bool { return n%2 == 0 }))
	r.printf("sum of evens 1..=100: %d", evens)
	return nil
}

func runSquares(ctx context.Context, r *runner) error {
	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})

	doubled, err := collect(ctx, r, pipeline.Map(src, func(n int) int { return n * 2 }).Named("doubled"))
	if err != nil {
		return err
	}
	r.printf("doubled: %v", doubled)

	evens, err := collect(ctx, r, pipeline.Filter(src, func(n int) bool { return n%2 == 0 }).Named("evens"))
	if err != nil {
		return err
	}
	r.printf("evens: %v", evens)

	squaredEvens := pipeline.Map(pipeline.Filter(src, func(n int) bool { return n%2 == 0 }),
		func(n int) int { return n * n }).Named("squared-evens")
	s, err := squaredEvens.Iter()
	if err != nil {
		return err
	}
	r.printf("sum of squared evens: %d", seq.Sum(s))
	return nil
}

func runFold(_ context.Context, r *runner) error {
	numbers := []int{1, 2, 3, 4, 5}
	r.printf("sum: %d", seq.Fold(seq.FromSlice(numbers), 0, func(acc, n int) int { return acc + n }))
	r.printf("product: %d", seq.Fold(seq.FromSlice(numbers), 1, func(acc, n int) int { return acc * n }))

	sentence := seq.Fold(seq.FromSlice([]string{"hello", "world"}), "", func(acc, w string) string {
		return acc + w + " "
	})
	r.printf("sentence: %s", strings.TrimSpace(sentence))

	longest := seq.Reduce(seq.FromSlice([]string{"fold", "reduce", "scan"}), func(a, b string) string {
		if len(b) > len(a) {
			return b
		}
		return a
	})
	r.printf("longest word: %v", longest)

	running := seq.Collect(seq.Scan(seq.FromSlice(numbers), 0, func(total *int, n int) opt.Option[int] {
		*total += n
		return opt.Some(*total)
	}))
	r.printf("running totals: %v", running)
	return nil
}

func runFind(_ context.Context, r *runner) error {
	numbers := []int{1, 2, 3, 4, 5}
	isEven := func(n int) bool { return n%2 == 0 }

	r.printf("first even: %v", seq.Find(seq.FromSlice(numbers), isEven))
	r.printf("has even: %t", seq.Any(seq.FromSlice(numbers), isEven))
	r.printf("all positive: %t", seq.All(seq.FromSlice(numbers), func(n int) bool { return n > 0 }))
	r.printf("position of 4: %v", seq.Position(seq.FromSlice(numbers), func(n int) bool { return n == 4 }))
	r.printf("first above 9: %v", seq.Find(seq.FromSlice(numbers), func(n int) bool { return n > 9 }))
	return nil
}

func runEnumerateZip(ctx context.Context, r *runner) error {
	letters := pipeline.Then(pipeline.FromSlice([]string{"a", "b", "c"}),
		seq.Enumerate[string]).Named("enumerate")
	if err := pipeline.ForEach(ctx, letters, func(_ context.Context, iv seq.Indexed[string]) error {
		r.printf("%d: %s", iv.Index, iv.Value)
		return nil
	}, r.mws...); err != nil {
		return err
	}

	people := pipeline.New(func() seq.Sequence[seq.Pair[string, int]] {
		return seq.Zip(seq.FromSlice([]string{"Alice", "Bob"}), seq.FromSlice([]int{30, 25}))
	}).Named("zip")
	return pipeline.ForEach(ctx, people, func(_ context.Context, p seq.Pair[string, int]) error {
		r.printf("%s is %d", p.First, p.Second)
		return nil
	}, r.mws...)
}

func runClosures(_ context.Context, r *runner) error {
	factor := 10
	scale := step.Fn[int, int](func(n int) int { return n * factor })
	r.printf("scale(5) = %d", scale.Call(5))

	double := step.Fn[int, int](func(n int) int { return n * 2 })
	addTen := step.Fn[int, int](func(n int) int { return n + 10 })
	r.printf("apply(double, 5) = %d", apply(double, 5))
	r.printf("apply(addTen, 5) = %d", apply(addTen, 5))

	counter := step.NewMut(new(int), func(count *int, _ struct{}) int {
		*count++
		return *count
	}).Named("counter")
	counter.Call(struct{}{})
	counter.Call(struct{}{})
	counter.Inspect(func(count *int) { r.printf("counter after two calls: %d", *count) })

	consume := step.NewOnce([]int{1, 2, 3}, func(data []int) int {
		return seq.Sum(seq.FromSlice(data))
	}).Named("consume")
	total, err := consume.Call()
	if err != nil {
		return err
	}
	r.printf("consumed data, sum = %d", total)
	if _, err := consume.Call(); errors.IsCode(err, errors.ErrCodeStepConsumed) {
		r.printf("second call rejected: %v", err)
	} else {
		return errors.Internal(fmt.Errorf("consuming step ran twice"))
	}
	return nil
}

// apply accepts any read-only step.
func apply(f step.Func[int, int], v int) int {
	return f.Call(v)
}

func runIterators(ctx context.Context, r *runner) error {
	v := []int{1, 2, 3}
	if err := drain(ctx, r, pipeline.FromSlice(v).Named("borrow"), "%d"); err != nil {
		return err
	}

	v2 := []int{1, 2, 3}
	seq.ForEach(seq.FromSliceMut(v2), func(p *int) { *p *= 2 })
	r.printf("doubled in place: %v", v2)

	owned := seq.Drain(&v)
	if err := drain(ctx, r, pipeline.Of(owned).Named("drain"), "%d"); err != nil {
		return err
	}
	r.printf("source after drain: %v (nil=%t)", v, v == nil)
	return nil
}

func runParse(ctx context.Context, r *runner) error {
	inputs := []string{"1", "2", "x", "4"}
	parsed := pipeline.Then(pipeline.FromSlice(inputs), func(s seq.Sequence[string]) seq.Sequence[result.Result[int]] {
		return seq.TryMap(s, strconv.Atoi)
	}).Named("parse")

	if err := pipeline.ForEach(ctx, parsed, func(_ context.Context, res result.Result[int]) error {
		if n, err := res.Unwrap(); err != nil {
			r.printf("  error: %v", err)
		} else {
			r.printf("  ok: %d", n)
		}
		return nil
	}, r.mws...); err != nil {
		return err
	}

	s, err := parsed.Iter()
	if err != nil {
		return err
	}
	r.printf("sum of valid numbers: %d", seq.Sum(seq.Oks(s)))

	s, _ = parsed.Iter()
	if _, err := seq.TryCollect(s); err != nil {
		r.printf("collecting all: %v", err)
	}
	return nil
}
