// Package audio synthesizes the effect sounds and plays them by piping raw
// PCM to whatever playback tool the platform offers. No sound files ship
// with the binary; every effect is generated.
package audio

import (
	"errors"

	"github.com/gopxl/beep"
)

// Playback format: s16le stereo, matching every probed backend's arguments
const (
	SampleRate    beep.SampleRate = 44100
	channels                      = 2
	bytesPerFrame                 = channels * 2
)

// BlipVariants is the number of pitched keystroke sounds (variant 0 = base)
const BlipVariants = 21

// BackendType identifies the playback path
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a detected playback backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// ErrNoAudioBackend is returned when no playback tool exists on the system
var ErrNoAudioBackend = errors.New("no audio backend available")
