package audio

import (
	"sync/atomic"

	"github.com/lowrez/powertype/events"
)

// Service exposes the audio engine behind the service lifecycle and consumes
// sound-bearing intents. Degrades to a no-op when no backend is available
type Service struct {
	engine   *Engine
	cache    *soundCache
	disabled atomic.Bool
}

// NewService creates the audio service
func NewService() *Service {
	return &Service{
		engine: NewEngine(),
		cache:  newSoundCache(),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool - initial mute state (default unmuted)
func (s *Service) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			s.engine.SetMuted(muted)
		}
	}
	s.cache.preload()
	return nil
}

// Start implements service.Service
// A failed backend sets the disabled flag instead of returning an error
func (s *Service) Start() error {
	if err := s.engine.Start(); err != nil {
		s.disabled.Store(true)
		return nil
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.engine.IsRunning() {
		s.engine.Stop()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *Service) IsDisabled() bool {
	return s.disabled.Load() || s.engine.IsSilent()
}

// IntentKinds implements events.IntentHandler
func (s *Service) IntentKinds() []events.IntentKind {
	return []events.IntentKind{
		events.IntentBlip,
		events.IntentBoom,
		events.IntentFireworks,
		events.IntentNewline,
	}
}

// HandleIntent implements events.IntentHandler
// Intents carry the sound toggle state at emit time; a false flag drops the
// sound here while the visual consumers still run
func (s *Service) HandleIntent(intent events.Intent) {
	if s.disabled.Load() {
		return
	}
	switch intent.Kind {
	case events.IntentBlip:
		if p, ok := intent.Payload.(*events.BlipPayload); ok && p.Sound {
			s.engine.Play(s.cache.blip(p.Variant))
		}
	case events.IntentBoom:
		if p, ok := intent.Payload.(*events.BoomPayload); ok && p.Sound {
			s.engine.Play(s.cache.boom())
		}
	case events.IntentFireworks:
		if p, ok := intent.Payload.(*events.FireworksPayload); ok && p.Sound {
			s.engine.Play(s.cache.fireworks())
		}
	case events.IntentNewline:
		if p, ok := intent.Payload.(*events.NewlinePayload); ok && p.Sound {
			s.engine.Play(s.cache.newline())
		}
	}
}

// SetMuted forwards to the engine
func (s *Service) SetMuted(muted bool) {
	s.engine.SetMuted(muted)
}
