package ui

import (
	"sync"
	"time"
)

// queryDebounceDelay is how long typing must pause before a pending action
// (like refreshing search suggestions) fires.
const queryDebounceDelay = 300 * time.Millisecond

// Debouncer coalesces rapid events into one trailing call. The search box
// uses it so keystrokes don't each trigger work; the window-size handler uses
// it so drag-resizes settle before a relayout.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer returns a debouncer with the given trailing delay.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Trigger schedules fn after the delay, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels any pending call and runs fn immediately. Used when the user
// presses enter before the trailing delay elapses.
func (d *Debouncer) Flush(fn func()) {
	d.Cancel()
	fn()
}
