package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
)

const playQueueSize = 32

// Engine plays rendered PCM chunks via a pipe to the detected system tool
//
// Playback is fire-and-forget: Play enqueues and returns; a writer goroutine
// feeds the backend. When no backend exists the engine runs in silent mode
// and Play is a no-op
type Engine struct {
	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File // direct device write for OSS

	queue chan []byte

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.Mutex // protects Start/Stop transitions
	wg sync.WaitGroup
}

// NewEngine creates a stopped engine
func NewEngine() *Engine {
	return &Engine{
		queue: make(chan []byte, playQueueSize),
	}
}

// Start detects a backend and launches the writer goroutine
// A missing backend is not an error: the engine enters silent mode
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	backend, err := DetectBackend()
	if err != nil {
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			e.silentMode.Store(true)
			e.running.Store(true)
			return nil
		}
		e.ossFile = f
		writer = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			e.silentMode.Store(true)
			e.running.Store(true)
			return nil
		}
		if err := cmd.Start(); err != nil {
			e.silentMode.Store(true)
			e.running.Store(true)
			return nil
		}
		e.cmd = cmd
		e.stdin = stdin
		writer = stdin
	}

	e.running.Store(true)
	e.wg.Add(1)
	go e.writeLoop(writer)
	return nil
}

func (e *Engine) writeLoop(w io.Writer) {
	defer e.wg.Done()
	for chunk := range e.queue {
		if _, err := w.Write(chunk); err != nil {
			// Backend died mid-session; degrade to silent
			e.silentMode.Store(true)
			for range e.queue {
				// drain until Stop closes the queue
			}
			return
		}
	}
}

// Play enqueues a rendered PCM chunk
// Returns false when muted, silent, stopped, or the queue is full
func (e *Engine) Play(pcm []byte) bool {
	if !e.running.Load() || e.silentMode.Load() || e.muted.Load() || len(pcm) == 0 {
		return false
	}
	select {
	case e.queue <- pcm:
		return true
	default:
		return false
	}
}

// SetMuted flips the mute flag; queued audio still drains
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// IsRunning reports whether Start succeeded
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// IsSilent reports whether the engine runs without a backend
func (e *Engine) IsSilent() bool {
	return e.silentMode.Load()
}

// Stop closes the queue, waits for the writer and releases the backend
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running.CompareAndSwap(true, false) {
		return
	}
	close(e.queue)
	e.wg.Wait()

	if e.stdin != nil {
		_ = e.stdin.Close()
		e.stdin = nil
	}
	if e.cmd != nil {
		_ = e.cmd.Wait()
		e.cmd = nil
	}
	if e.ossFile != nil {
		_ = e.ossFile.Close()
		e.ossFile = nil
	}
}
