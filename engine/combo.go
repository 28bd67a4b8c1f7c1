package engine

import (
	"time"
)

// ComboUpdate is the result of registering one qualifying edit
type ComboUpdate struct {
	Count            int
	PowerMode        bool
	PowerModeEntered bool
	PowerModeStart   int
}

// Combo tracks consecutive qualifying edits within a rolling timeout window
//
// Invariant: count == 0 <=> no decay timer armed <=> power mode inactive.
// The decay timer is single-shot and rearmed on every event; when it fires
// with no intervening event the combo stops and the stop callback reports
// the final count exactly once
type Combo struct {
	clock Clock
	slot  *timerSlot

	timeout   time.Duration
	threshold int

	count          int
	deadline       time.Time
	powerMode      bool
	powerModeStart int

	onStop func(finalCount int)
}

// NewCombo creates an idle combo counter
// onStop may be nil; it is invoked on decay expiry and explicit Stop
func NewCombo(clock Clock, sched Scheduler, timeout time.Duration, threshold int, onStop func(int)) *Combo {
	if threshold < 1 {
		threshold = 1
	}
	return &Combo{
		clock:     clock,
		slot:      newTimerSlot(sched),
		timeout:   timeout,
		threshold: threshold,
		onStop:    onStop,
	}
}

// RegisterEvent counts one qualifying edit and rearms the decay timer
func (c *Combo) RegisterEvent() ComboUpdate {
	c.count++

	entered := false
	if !c.powerMode && c.count >= c.threshold {
		c.powerMode = true
		c.powerModeStart = c.count
		entered = true
	}

	c.deadline = c.clock.Now().Add(c.timeout)
	c.slot.Rearm(c.timeout, c.expire)

	return ComboUpdate{
		Count:            c.count,
		PowerMode:        c.powerMode,
		PowerModeEntered: entered,
		PowerModeStart:   c.powerModeStart,
	}
}

// expire is the decay timer callback
func (c *Combo) expire() {
	c.Stop()
}

// Stop resets the combo and reports the final count
// Idempotent: stopping an idle combo returns 0 and emits nothing
func (c *Combo) Stop() int {
	if c.count == 0 {
		return 0
	}
	final := c.count
	c.count = 0
	c.deadline = time.Time{}
	c.powerMode = false
	c.powerModeStart = 0
	c.slot.Clear()
	if c.onStop != nil {
		c.onStop(final)
	}
	return final
}

// Configure applies new tuning. An active combo keeps its current deadline;
// the new timeout takes effect on the next event
func (c *Combo) Configure(timeout time.Duration, threshold int) {
	if threshold < 1 {
		threshold = 1
	}
	c.timeout = timeout
	c.threshold = threshold
}

// Count returns the current combo length
func (c *Combo) Count() int {
	return c.count
}

// PowerModeActive reports whether power mode is on
func (c *Combo) PowerModeActive() bool {
	return c.powerMode
}

// PowerModeStartCount returns the count at power-mode activation (0 if off)
func (c *Combo) PowerModeStartCount() int {
	return c.powerModeStart
}

// Deadline returns the pending decay deadline; ok is false when idle
func (c *Combo) Deadline() (time.Time, bool) {
	return c.deadline, c.count > 0
}
