// Package reactive provides Cell[T], a boxed mutable value with
// subscriber-based change notification.
//
// A Cell notifies subscribers if and only if a write actually changes
// the value under same-value identity: NaN is identical to itself, and
// +0 and -0 are distinct. Repeated writes of an unchanged value are
// no-ops for every observer.
//
//	count := reactive.NewCell(0)
//	unsub := count.Subscribe(func() { ... })
//	count.Set(5)                                // notifies
//	count.Set(5)                                // no-op
//	count.Update(func(n int) int { return n+1 })
//	unsub()
package reactive
