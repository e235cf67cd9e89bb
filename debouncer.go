package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Debouncer delays invoking a function until wait time has elapsed since the
// last call to Call, passing along the argument of that last call.
//
// Each Debouncer owns exactly one pending invocation at a time. Calling Call
// while an invocation is pending cancels it and schedules a new one, so a
// steady stream of calls faster than wait postpones the function indefinitely.
type Debouncer[T any] struct {
	// Configuration
	wait  time.Duration
	fn    func(T)
	clock clock.Clock

	// State
	mux     sync.Mutex
	pending pendingTimer

	// run serializes invocations of fn. It is never held together with mux.
	run sync.Mutex
}

// NewDebouncer creates a new Debouncer instance with the given wait duration,
// function, and options.
//
// A nil f is allowed, and turns Call into a no-op. A negative wait behaves
// like zero.
func NewDebouncer[T any](
	wait time.Duration,
	f func(T),
	opts ...Option,
) *Debouncer[T] {
	conf := newConfig(opts)

	if wait < 0 {
		wait = 0
	}

	return &Debouncer[T]{
		wait:  wait,
		fn:    f,
		clock: conf.clock,
	}
}

// Call cancels any pending invocation and schedules f to be invoked with arg
// once wait has elapsed without another call. It returns immediately and does
// not wait for f. This method is safe for concurrent use.
//
// f runs on the timer's goroutine. Invocations of f never overlap: if f is
// still running when the next wait expires, the next invocation waits for it
// to return. f may call Call on its own Debouncer. A panic in f is not
// recovered.
func (d *Debouncer[T]) Call(arg T) {
	if d.fn == nil {
		return
	}

	d.mux.Lock()
	gen := d.pending.next()
	d.mux.Unlock()

	// AfterFunc is called without holding mux, as some clocks may run the
	// callback before returning.
	t := d.clock.AfterFunc(d.wait, func() {
		d.fire(gen, arg)
	})

	d.mux.Lock()
	defer d.mux.Unlock()

	if !d.pending.arm(gen, t) {
		t.Stop()
	}
}

// fire is called when the timer armed with gen expires.
func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mux.Lock()
	current := d.pending.fire(gen)
	d.mux.Unlock()

	if !current {
		return
	}

	d.run.Lock()
	defer d.run.Unlock()

	d.fn(arg)
}
