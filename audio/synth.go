package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator wave shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// Blip tuning: variant v plays at blipBaseFreq * (1 + v*0.05), so variant 20
// sounds an octave above the base
const (
	blipBaseFreq = 440.0
	blipDuration = 60 * time.Millisecond
	blipAttack   = 3 * time.Millisecond
	blipRelease  = 30 * time.Millisecond
)

const (
	boomDuration = 160 * time.Millisecond
	boomAttack   = 2 * time.Millisecond
	boomRelease  = 140 * time.Millisecond
)

const (
	newlineFreq     = 220.0
	newlineDuration = 90 * time.Millisecond
	newlineAttack   = 3 * time.Millisecond
	newlineRelease  = 60 * time.Millisecond
)

// Fireworks is a coin-style two-note arpeggio
const (
	fireworksNote1     = 988.0  // B5
	fireworksNote2     = 1319.0 // E6
	fireworksNote1Dur  = 80 * time.Millisecond
	fireworksNote2Dur  = 260 * time.Millisecond
	fireworksAttack    = 4 * time.Millisecond
	fireworksRelease1  = 40 * time.Millisecond
	fireworksRelease2  = 200 * time.Millisecond
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps
type envelope struct {
	inner    beep.Streamer
	total    int
	attack   int
	release  int
	position int
}

func newEnvelope(inner beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		inner:   inner,
		total:   rate.N(total),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.inner.Stream(samples)
	for i := 0; i < n; i++ {
		pos := e.position + i
		gain := 1.0
		if e.attack > 0 && pos < e.attack {
			gain = float64(pos) / float64(e.attack)
		}
		if e.release > 0 && pos >= e.total-e.release {
			rel := float64(e.total-pos) / float64(e.release)
			if rel < gain {
				gain = rel
			}
		}
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	e.position += n
	return n, ok
}

func (e *envelope) Err() error { return e.inner.Err() }

// BlipStreamer builds the keystroke sound for one pitch variant (0..20)
func BlipStreamer(variant int) beep.Streamer {
	if variant < 0 {
		variant = 0
	}
	if variant >= BlipVariants {
		variant = BlipVariants - 1
	}
	freq := blipBaseFreq * (1.0 + float64(variant)*0.05)
	osc := newOscillator(freq, blipDuration, WaveSine, SampleRate)
	return newEnvelope(osc, blipDuration, blipAttack, blipRelease, SampleRate)
}

// BoomStreamer builds the deletion explosion sound
func BoomStreamer() beep.Streamer {
	osc := newOscillator(0, boomDuration, WaveNoise, SampleRate)
	return newEnvelope(osc, boomDuration, boomAttack, boomRelease, SampleRate)
}

// NewlineStreamer builds the line-break sound
func NewlineStreamer() beep.Streamer {
	osc := newOscillator(newlineFreq, newlineDuration, WaveSquare, SampleRate)
	return newEnvelope(osc, newlineDuration, newlineAttack, newlineRelease, SampleRate)
}

// FireworksStreamer builds the level-up arpeggio
func FireworksStreamer() beep.Streamer {
	note1 := newEnvelope(
		newOscillator(fireworksNote1, fireworksNote1Dur, WaveSine, SampleRate),
		fireworksNote1Dur, fireworksAttack, fireworksRelease1, SampleRate)
	note2 := newEnvelope(
		newOscillator(fireworksNote2, fireworksNote2Dur, WaveSine, SampleRate),
		fireworksNote2Dur, fireworksAttack, fireworksRelease2, SampleRate)
	return beep.Seq(note1, note2)
}

// Render drains a streamer into interleaved s16le stereo bytes
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, sampleToS16(buf[i][0])...)
			out = append(out, sampleToS16(buf[i][1])...)
		}
		if !ok {
			return out
		}
	}
}

func sampleToS16(v float64) []byte {
	if v > 1.0 {
		v = 1.0
	}
	if v < -1.0 {
		v = -1.0
	}
	s := int16(v * 32767)
	return []byte{byte(s), byte(s >> 8)}
}
