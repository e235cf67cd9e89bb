package debounce

import (
	"github.com/benbjohnson/clock"
)

// Option is a function that can be used to configure the debounced function.
type Option func(*config)

// WithClock returns an option that schedules and cancels invocations using the
// given clock instead of the wall clock.
//
// This is mostly useful in tests, where a *clock.Mock allows time to be
// advanced deterministically. A nil clock is ignored.
func WithClock(c clock.Clock) Option {
	return func(conf *config) {
		if c != nil {
			conf.clock = c
		}
	}
}
