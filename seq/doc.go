// Package seq provides lazy, pull-based sequences and the adapters and
// consumers that compose them.
//
// A Sequence produces values one at a time through Next. Exhaustion is
// terminal: once Next reports false, every later call reports false again.
// All sources in this package keep that guarantee, and adapters keep it as
// long as their upstream does. Wrap a hand-written Sequence with Fuse when it
// cannot promise it.
//
// Nothing runs until a consumer pulls. Building Map(Filter(src, p), f) calls
// neither p nor f; Collect, Fold, Find and the other consumers drive the chain
// element by element, and the short-circuiting ones (Find, FindMap, Any, All,
// Position) stop pulling as soon as the answer is known.
//
// # Sources
//
// Bounded:
//
//   - FromSlice, FromSliceMut, Drain: slice-backed (borrowed, mutable, owned)
//   - Range, RangeInclusive: integer intervals
//   - Empty, Once, OnceWith, FromFunc
//
// Unbounded:
//
//   - From: successive integers from a start value
//   - Iterate, Repeat, Generate
//
// Bound unbounded sources with Take (or TakeWhile) before using a consumer
// that needs exhaustion. Filter, Find and friends over an unbounded source
// whose predicate never matches do not return; that is inherent to infinite
// sources and is left to the caller to bound.
//
// # Adapters
//
//   - Map, Filter, Enumerate, Zip, Take, Inspect
//   - Skip, StepBy, TakeWhile, SkipWhile, Chain, FilterMap, FlatMap, Scan,
//     Chunks, Fuse
//   - TryMap, Oks: fallible steps whose failures travel as result.Result values
//
// # Usage
//
//	squares := seq.Map(seq.From(1), func(x int) int { return x * x })
//	first := seq.Collect(seq.Take(squares, 5)) // [1 4 9 16 25]
//
//	evens := seq.Filter(seq.FromSlice(nums), func(x int) bool { return x%2 == 0 })
//	total := seq.Sum(evens)
package seq
