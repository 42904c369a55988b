package domain

import (
	"fmt"
	"time"
)

// TimeUpMessage is shown when a reflection timer reaches zero.
const TimeUpMessage = "Time is up! Take a deep breath and notice how you feel."

// Timer is a countdown for a reflection session. It holds no goroutines;
// the caller advances it with Tick.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	running   bool
}

// NewTimer returns a stopped timer set to d.
func NewTimer(d time.Duration) *Timer {
	return &Timer{duration: d, remaining: d}
}

// Start resumes the countdown. It is a no-op once the timer reached zero.
func (t *Timer) Start() {
	if t.remaining > 0 {
		t.running = true
	}
}

// Stop pauses the countdown.
func (t *Timer) Stop() {
	t.running = false
}

// Reset stops the timer and restores the full duration.
func (t *Timer) Reset() {
	t.running = false
	t.remaining = t.duration
}

// Tick subtracts elapsed time from a running timer and reports whether this
// tick took it to zero. The timer stops itself at zero.
func (t *Timer) Tick(elapsed time.Duration) bool {
	if !t.running {
		return false
	}

	t.remaining -= elapsed
	if t.remaining > 0 {
		return false
	}

	t.remaining = 0
	t.running = false

	return true
}

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.running }

// Done reports whether the countdown reached zero.
func (t *Timer) Done() bool { return t.remaining == 0 }

// Remaining returns the time left.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// String renders the remaining time as MM:SS, rounding partial seconds up.
func (t *Timer) String() string {
	secs := int((t.remaining + time.Second - 1) / time.Second)

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
