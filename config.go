package debounce

import (
	"github.com/benbjohnson/clock"
)

type config struct {
	clock clock.Clock
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.clock == nil {
		c.clock = clock.New()
	}

	return c
}
