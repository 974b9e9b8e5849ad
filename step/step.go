package step

import (
	"sync"
	"sync/atomic"

	"github.com/kbukum/seqkit/errors"
)

// Func is a step invocable any number of times.
type Func[A, B any] interface {
	Call(A) B
}

// FuncOnce is a step invocable at most once.
type FuncOnce[B any] interface {
	Call() (B, error)
}

// --- read-only ---

// Fn is a read-only step.
type Fn[A, B any] func(A) B

// Call invokes the step.
func (f Fn[A, B]) Call(a A) B { return f(a) }

// Pred is a read-only predicate.
type Pred[T any] = Fn[T, bool]

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

// --- mutable ---

// Mut is a step with exclusive mutable access to bound state S.
type Mut[S, A, B any] struct {
	name  string
	mu    sync.Mutex
	state *S
	fn    func(*S, A) B
}

// NewMut binds fn to state. A nil state allocates a fresh S.
func NewMut[S, A, B any](state *S, fn func(*S, A) B) *Mut[S, A, B] {
	if state == nil {
		state = new(S)
	}
	return &Mut[S, A, B]{state: state, fn: fn}
}

// Named labels the step in EXCLUSIVE_ACCESS errors.
func (m *Mut[S, A, B]) Named(name string) *Mut[S, A, B] {
	m.name = name
	return m
}

// Call invokes the step while holding its state exclusively.
func (m *Mut[S, A, B]) Call(a A) B {
	m.acquire()
	defer m.mu.Unlock()
	return m.fn(m.state, a)
}

// Inspect hands the bound state to fn under the same exclusivity rule as Call.
func (m *Mut[S, A, B]) Inspect(fn func(*S)) {
	m.acquire()
	defer m.mu.Unlock()
	fn(m.state)
}

func (m *Mut[S, A, B]) acquire() {
	if !m.mu.TryLock() {
		panic(errors.ExclusiveAccess(m.name))
	}
}

// --- consuming ---

// Once is a consuming step. Its state is moved in at construction and handed
// to fn on the single permitted call.
type Once[S, B any] struct {
	name  string
	used  atomic.Bool
	state S
	fn    func(S) B
}

// NewOnce moves state into a single-use step.
func NewOnce[S, B any](state S, fn func(S) B) *Once[S, B] {
	return &Once[S, B]{state: state, fn: fn}
}

// Thunk is a consuming step without bound state.
func Thunk[B any](fn func() B) *Once[struct{}, B] {
	return NewOnce(struct{}{}, func(struct{}) B { return fn() })
}

// Named labels the step in STEP_CONSUMED errors.
func (o *Once[S, B]) Named(name string) *Once[S, B] {
	o.name = name
	return o
}

// Call runs the step if it has not run yet. The guard is a single
// compare-and-swap, so exactly one caller wins even under contention.
func (o *Once[S, B]) Call() (B, error) {
	if !o.used.CompareAndSwap(false, true) {
		var zero B
		return zero, errors.StepConsumed(o.name)
	}
	state, fn := o.state, o.fn
	var released S
	o.state, o.fn = released, nil
	return fn(state), nil
}

// Consumed reports whether Call already ran.
func (o *Once[S, B]) Consumed() bool {
	return o.used.Load()
}
