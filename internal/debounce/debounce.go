// Package debounce holds a value whose changes take effect only after input has
// been quiet for a delay.
package debounce

import (
	"sync"
	"time"

	"github.com/bep/debounce"
)

// Value tracks a raw value, updated on every edit, and an effective value that
// follows it once edits pause. Comparison is by value.
type Value[T comparable] struct {
	mu        sync.Mutex
	raw       T
	effective T
	debounced func(func())
	onSettle  func(T)
}

// New creates a Value. onSettle runs on its own goroutine whenever the
// effective value changes. A delay of zero or less settles synchronously.
func New[T comparable](initial T, delay time.Duration, onSettle func(T)) *Value[T] {
	v := &Value[T]{
		raw:       initial,
		effective: initial,
		onSettle:  onSettle,
	}
	if delay > 0 {
		v.debounced = debounce.New(delay)
	}
	return v
}

// Set records an edit and restarts the delay.
func (v *Value[T]) Set(x T) {
	v.mu.Lock()
	v.raw = x
	v.mu.Unlock()

	if v.debounced == nil {
		v.settle()
		return
	}
	v.debounced(func() { v.settle() })
}

// Reset sets the raw and effective value at once without calling onSettle.
// A pending settle then finds nothing to do.
func (v *Value[T]) Reset(x T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.raw = x
	v.effective = x
}

// Flush applies a pending edit now. It reports whether the effective value
// changed; onSettle is called synchronously in that case.
func (v *Value[T]) Flush() bool {
	return v.settle()
}

// Raw returns the latest edit.
func (v *Value[T]) Raw() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.raw
}

// Effective returns the settled value.
func (v *Value[T]) Effective() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.effective
}

// Pending reports whether an edit has not settled yet.
func (v *Value[T]) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.raw != v.effective
}

func (v *Value[T]) settle() bool {
	v.mu.Lock()
	if v.raw == v.effective {
		v.mu.Unlock()
		return false
	}
	v.effective = v.raw
	x := v.effective
	v.mu.Unlock()

	if v.onSettle != nil {
		v.onSettle(x)
	}
	return true
}
