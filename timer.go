package debounce

import (
	"github.com/benbjohnson/clock"
)

// pendingTimer tracks the single outstanding scheduled invocation of a
// Debouncer. Every scheduling attempt gets a new generation, and only the
// current generation is allowed to fire.
//
// It is not safe for concurrent use; callers must hold their own lock.
type pendingTimer struct {
	timer *clock.Timer
	gen   uint64
}

// next stops the outstanding timer, if any, and returns the generation the
// replacement timer must be armed with.
func (p *pendingTimer) next() uint64 {
	p.stop()
	p.gen++

	return p.gen
}

// arm records t as the outstanding timer. It returns false if gen has been
// superseded or has already fired, in which case the caller owns t and should
// stop it.
func (p *pendingTimer) arm(gen uint64, t *clock.Timer) bool {
	if gen != p.gen {
		return false
	}
	p.timer = t

	return true
}

// fire reports whether the timer armed with gen is still the current one. If
// it is, the pending state is cleared and no replacement is scheduled.
func (p *pendingTimer) fire(gen uint64) bool {
	if gen != p.gen {
		return false
	}
	p.timer = nil
	p.gen++

	return true
}

// stop cancels the outstanding timer. Stopping an absent or already fired
// timer is a no-op.
func (p *pendingTimer) stop() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
