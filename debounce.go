// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Unlike a plain func() debouncer, the debounced functions returned here keep
// the signature of the wrapped function. When the wait expires, the wrapped
// function is invoked exactly once with the arguments of the most recent call;
// arguments of earlier calls in the same burst are discarded.
//
// Debouncing can be useful in scenarios where function calls may be triggered
// rapidly, such as in response to user input, but the underlying operation is
// expensive and only needs to be performed once per batch of calls.
package debounce

import (
	"time"
)

// DefaultWait is a general purpose wait duration of roughly one frame at 30
// frames per second. There is nothing special about the value.
const DefaultWait = 33340 * time.Microsecond

// New returns a debounced function that delays invoking f until after wait time
// has elapsed since the last time the debounced function was invoked.
//
// The debounced function is safe for concurrent use in goroutines, and does
// not wait for f to complete. There is no way to cancel a pending invocation.
func New(wait time.Duration, f func(), opts ...Option) func() {
	var g func(struct{})
	if f != nil {
		g = func(struct{}) { f() }
	}

	d := NewDebouncer(wait, g, opts...)

	return func() {
		d.Call(struct{}{})
	}
}

// New1 is like New, but for functions taking a single argument. When f is
// invoked, it receives the argument of the last call to the debounced function.
func New1[A any](wait time.Duration, f func(A), opts ...Option) func(A) {
	return NewDebouncer(wait, f, opts...).Call
}

type args2[A, B any] struct {
	a A
	b B
}

// New2 is like New1, but for functions taking two arguments.
func New2[A, B any](
	wait time.Duration,
	f func(A, B),
	opts ...Option,
) func(A, B) {
	var g func(args2[A, B])
	if f != nil {
		g = func(x args2[A, B]) { f(x.a, x.b) }
	}

	d := NewDebouncer(wait, g, opts...)

	return func(a A, b B) {
		d.Call(args2[A, B]{a: a, b: b})
	}
}

type args3[A, B, C any] struct {
	a A
	b B
	c C
}

// New3 is like New1, but for functions taking three arguments.
func New3[A, B, C any](
	wait time.Duration,
	f func(A, B, C),
	opts ...Option,
) func(A, B, C) {
	var g func(args3[A, B, C])
	if f != nil {
		g = func(x args3[A, B, C]) { f(x.a, x.b, x.c) }
	}

	d := NewDebouncer(wait, g, opts...)

	return func(a A, b B, c C) {
		d.Call(args3[A, B, C]{a: a, b: b, c: c})
	}
}

// NewVariadic is like New1, but for variadic functions.
//
// The arguments are copied when the debounced function is called, so the
// caller may reuse the slice it passed in.
func NewVariadic[T any](
	wait time.Duration,
	f func(...T),
	opts ...Option,
) func(...T) {
	var g func([]T)
	if f != nil {
		g = func(args []T) { f(args...) }
	}

	d := NewDebouncer(wait, g, opts...)

	return func(args ...T) {
		d.Call(append([]T(nil), args...))
	}
}
