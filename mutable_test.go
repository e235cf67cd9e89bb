package debounce

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestNewMutable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		wait time.Duration
		// funcs maps millisecond offsets to the index of the function passed
		// to the debounced function at that time. An index of -1 passes nil.
		funcs map[int64]int
		// wantFuncs maps millisecond offsets to the index of the function
		// expected to be called when the clock reaches that time.
		wantFuncs map[int64]int
	}{
		{
			name:      "one trigger",
			wait:      200 * time.Millisecond,
			funcs:     map[int64]int{100: 0},
			wantFuncs: map[int64]int{300: 0},
		},
		{
			name:      "two separate triggers",
			wait:      200 * time.Millisecond,
			funcs:     map[int64]int{100: 0, 400: 1},
			wantFuncs: map[int64]int{300: 0, 600: 1},
		},
		{
			name: "many calls, last function wins",
			wait: 200 * time.Millisecond,
			funcs: map[int64]int{
				50:  0,
				100: 1,
				150: 2,
				400: 3,
				500: 4,
			},
			wantFuncs: map[int64]int{350: 2, 700: 4},
		},
		{
			name:      "nil last function postpones and skips",
			wait:      200 * time.Millisecond,
			funcs:     map[int64]int{100: 0, 200: -1},
			wantFuncs: map[int64]int{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := clock.NewMock()
			rec := newRecorder[int]()
			debounced := NewMutable(tt.wait, WithClock(mock))

			// Step through time in 10ms increments, so every call and
			// expected invocation happens at its exact offset.
			for ms := int64(0); ms <= 1000; ms += 10 {
				if i, ok := tt.funcs[ms]; ok {
					if i < 0 {
						debounced(nil)
					} else {
						i := i
						debounced(func() { rec.record(i) })
					}
				}

				if want, ok := tt.wantFuncs[ms]; ok {
					assert.Equal(t, want, rec.next(t), "at %d ms", ms)
				}

				mock.Add(10 * time.Millisecond)
			}

			rec.none(t)
		})
	}
}
