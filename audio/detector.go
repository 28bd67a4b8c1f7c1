package audio

import (
	"os"
	"os/exec"
	"runtime"
)

// backendProbes lists playback tools in preference order. Every entry
// consumes s16le 44.1kHz stereo on stdin
var backendProbes = []BackendConfig{
	{
		Type: BackendPulse,
		Name: "pacat",
		Args: []string{
			"--raw",
			"--format=s16le",
			"--rate=44100",
			"--channels=2",
			"--latency-msec=50",
			"--playback",
		},
	},
	{
		Type: BackendPipeWire,
		Name: "pw-cat",
		Args: []string{
			"--playback",
			"--format=s16",
			"--rate=44100",
			"--channels=2",
			"--latency=50ms",
			"-",
		},
	},
	{
		Type: BackendALSA,
		Name: "aplay",
		Args: []string{
			"-t", "raw",
			"-f", "S16_LE",
			"-r", "44100",
			"-c", "2",
			"-q",
		},
	},
	{
		Type: BackendSoX,
		Name: "play",
		Args: []string{
			"-t", "raw",
			"-e", "signed",
			"-b", "16",
			"-c", "2",
			"-r", "44100",
			"-",
			"-d",
			"-q",
		},
	},
	{
		Type: BackendFFplay,
		Name: "ffplay",
		Args: []string{
			"-nodisp",
			"-autoexit",
			"-f", "s16le",
			"-ac", "2",
			"-ar", "44100",
			"-probesize", "32",
			"-analyzeduration", "0",
			"-i", "pipe:0",
			"-loglevel", "quiet",
		},
	},
}

// DetectBackend searches PATH for a playback tool
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay > OSS device
func DetectBackend() (*BackendConfig, error) {
	for _, probe := range backendProbes {
		if path, err := exec.LookPath(probe.Name); err == nil {
			found := probe
			found.Path = path
			return &found, nil
		}
	}

	// Direct device write, no exec needed
	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{Type: BackendOSS, Name: "oss", Path: "/dev/dsp"}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
