package render

import (
	"math/rand"
	"time"
)

// Shaker produces a jittering screen offset that decays after a trigger
// Not safe for concurrent use
type Shaker struct {
	amplitude int
	decay     time.Duration
	until     time.Time
	rng       *rand.Rand
}

// NewShaker creates a shaker with the given peak amplitude in cells
// and decay window
func NewShaker(amplitude int, decay time.Duration, seed int64) *Shaker {
	if amplitude < 0 {
		amplitude = 0
	}
	if decay <= 0 {
		decay = time.Second
	}
	return &Shaker{
		amplitude: amplitude,
		decay:     decay,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Configure replaces amplitude and decay for subsequent triggers
func (s *Shaker) Configure(amplitude int, decay time.Duration) {
	if amplitude < 0 {
		amplitude = 0
	}
	if decay > 0 {
		s.decay = decay
	}
	s.amplitude = amplitude
}

// Trigger starts (or extends) a shake ending decay from now
func (s *Shaker) Trigger(now time.Time) {
	s.until = now.Add(s.decay)
}

// Active reports whether the shake window is still open at now
func (s *Shaker) Active(now time.Time) bool {
	return now.Before(s.until)
}

// Offset returns the jitter to apply to the document layer at now.
// The magnitude falls off linearly over the decay window.
func (s *Shaker) Offset(now time.Time) (int, int) {
	remaining := s.until.Sub(now)
	if remaining <= 0 || s.amplitude == 0 {
		return 0, 0
	}
	frac := float64(remaining) / float64(s.decay)
	if frac > 1 {
		frac = 1
	}
	mag := int(float64(s.amplitude)*frac + 0.5)
	if mag == 0 {
		return 0, 0
	}
	return s.rng.Intn(2*mag+1) - mag, s.rng.Intn(2*mag+1) - mag
}
