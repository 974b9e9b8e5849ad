// Package step provides capability-tagged step functions for sequence
// adapters.
//
// A step's capture mode decides how often and under what access discipline an
// adapter may invoke it:
//
//   - Fn: read-only capture. Callable any number of times; observes no
//     mutation of outer state.
//   - Mut: mutable capture. Callable any number of times, but each call needs
//     exclusive access to the bound state. Overlapping calls (reentrant or
//     concurrent) panic with an EXCLUSIVE_ACCESS error.
//   - Once: consuming capture. State is moved in at construction and the step
//     runs at most once; later calls return a STEP_CONSUMED error.
//
// Adapters in package seq accept plain funcs, so a step plugs in through its
// method value:
//
//	var seen int
//	count := step.NewMut(&seen, func(n *int, _ string) { *n++ })
//	words := seq.Inspect(seq.FromSlice(names), count.Call)
package step
