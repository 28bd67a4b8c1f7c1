package engine

import (
	"math"
	"time"
)

// Pitch accumulator tuning. The accumulator maps typing speed onto 21
// discrete blip variants spanning pitch 1.0 to 2.0
const (
	PitchStep         = 0.05
	PitchAccumulatorMax = 20
	PitchResetTimeout = 180 * time.Millisecond
)

// PitchTracker converts typing cadence into a blip pitch
//
// Each insert bumps a counter (capped at PitchAccumulatorMax); a single-shot
// timer rearmed per keystroke zeroes it after PitchResetTimeout of
// inactivity. Deliberately separate from the combo counter: combo survives
// pauses up to the combo timeout, pitch falls back to base almost instantly
type PitchTracker struct {
	slot *timerSlot
	acc  int
}

// NewPitchTracker creates a tracker at base pitch
func NewPitchTracker(sched Scheduler) *PitchTracker {
	return &PitchTracker{slot: newTimerSlot(sched)}
}

// RegisterInsert counts one insert and returns the pitch for its blip
// variant = round((pitch-1)/PitchStep): 0 selects the base sound, 20 the max
func (p *PitchTracker) RegisterInsert() (pitch float64, variant int) {
	if p.acc < PitchAccumulatorMax {
		p.acc++
	}
	p.slot.Rearm(PitchResetTimeout, p.reset)

	pitch = 1.0 + float64(p.acc)*PitchStep
	variant = int(math.Round((pitch - 1.0) / PitchStep))
	return pitch, variant
}

func (p *PitchTracker) reset() {
	p.acc = 0
}

// Accumulator returns the current counter value
func (p *PitchTracker) Accumulator() int {
	return p.acc
}
