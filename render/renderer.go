package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/powertype/config"
	"github.com/lowrez/powertype/events"
	"github.com/lowrez/powertype/status"
)

// Renderer consumes effect intents and paints them on a tcell screen.
// It implements service.Service for lifecycle and events.IntentHandler
// for dispatch.
//
// All HandleIntent and Frame calls happen on the engine loop goroutine,
// so the renderer keeps no locks.
type Renderer struct {
	screen    tcell.Screen
	settings  config.Settings
	particles *ParticleSystem
	shaker    *Shaker
	bar       *StatusBar
	panel     *Panel

	cursorX   int
	cursorY   int
	powerMode bool
	powerBase int
	lastFrame time.Time
}

// NewRenderer creates a renderer drawing to screen with the given settings
func NewRenderer(screen tcell.Screen, registry *status.Registry, settings config.Settings, seed int64) *Renderer {
	return &Renderer{
		screen:    screen,
		settings:  settings,
		particles: NewParticleSystem(seed),
		shaker:    NewShaker(settings.ShakeAmplitude, settings.ShakeDecay, seed+1),
		bar:       &StatusBar{},
		panel:     NewPanel(registry),
	}
}

// Name implements service.Service
func (r *Renderer) Name() string { return "render" }

// Dependencies implements service.Service
func (r *Renderer) Dependencies() []string { return nil }

// Init implements service.Service
func (r *Renderer) Init(args ...any) error {
	if r.screen == nil {
		return fmt.Errorf("render: no screen attached")
	}
	return nil
}

// Start implements service.Service
func (r *Renderer) Start() error { return nil }

// Stop implements service.Service
func (r *Renderer) Stop() error { return nil }

// IntentKinds implements events.IntentHandler
func (r *Renderer) IntentKinds() []events.IntentKind {
	return []events.IntentKind{
		events.IntentBlip,
		events.IntentBoom,
		events.IntentFireworks,
		events.IntentNewline,
		events.IntentCombo,
		events.IntentComboStop,
		events.IntentStatus,
		events.IntentCursor,
		events.IntentSettings,
		events.IntentPanelToggle,
	}
}

// HandleIntent implements events.IntentHandler
func (r *Renderer) HandleIntent(intent events.Intent) {
	switch intent.Kind {
	case events.IntentBlip:
		p, ok := intent.Payload.(*events.BlipPayload)
		if !ok {
			return
		}
		r.cursorX, r.cursorY = p.X, p.Y
		if r.settings.Chars {
			r.particles.SpawnChar(p.X, p.Y, p.Char)
		}

	case events.IntentBoom:
		p, ok := intent.Payload.(*events.BoomPayload)
		if !ok {
			return
		}
		r.cursorX, r.cursorY = p.X, p.Y
		r.particles.SpawnExplosion(p.X, p.Y, r.intensity())

	case events.IntentFireworks:
		p, ok := intent.Payload.(*events.FireworksPayload)
		if !ok {
			return
		}
		r.particles.SpawnFirework(p.X, p.Y)

	case events.IntentNewline:
		p, ok := intent.Payload.(*events.NewlinePayload)
		if !ok {
			return
		}
		r.particles.SpawnNewline(p.X, p.Y)

	case events.IntentCombo:
		p, ok := intent.Payload.(*events.ComboPayload)
		if !ok {
			return
		}
		r.powerMode = p.PowerMode
		r.powerBase = p.PowerModeStart
		r.bar.SetCombo(p.Count, p.PowerMode)
		if p.PowerMode && r.settings.Shake && !r.settings.ReducedEffects {
			r.shaker.Trigger(time.Now())
		}

	case events.IntentComboStop:
		r.powerMode = false
		r.powerBase = 0
		r.bar.SetCombo(0, false)

	case events.IntentStatus:
		p, ok := intent.Payload.(*events.StatusPayload)
		if !ok {
			return
		}
		r.bar.SetProgress(p.Text, p.Level, p.Current, p.Max)

	case events.IntentCursor:
		p, ok := intent.Payload.(*events.CursorPayload)
		if !ok {
			return
		}
		r.cursorX, r.cursorY = p.X, p.Y

	case events.IntentSettings:
		p, ok := intent.Payload.(*events.SettingsPayload)
		if !ok {
			return
		}
		r.settings = p.Settings
		r.shaker.Configure(p.Settings.ShakeAmplitude, p.Settings.ShakeDecay)

	case events.IntentPanelToggle:
		r.panel.Toggle()
	}
}

// intensity scales explosions by how deep into power mode the combo is
func (r *Renderer) intensity() float64 {
	if !r.powerMode || r.settings.ReducedEffects {
		return 1
	}
	depth := r.bar.combo - r.powerBase
	if depth < 0 {
		depth = 0
	}
	scale := 1 + float64(depth)/10
	if scale > 3 {
		scale = 3
	}
	return scale
}

// Offset returns the shake offset for the document layer at now
func (r *Renderer) Offset(now time.Time) (int, int) {
	return r.shaker.Offset(now)
}

// Frame advances animations to now and paints all overlay layers.
// The host draws the document first, then calls Frame, then Show
func (r *Renderer) Frame(now time.Time) {
	dt := 0.0
	if !r.lastFrame.IsZero() {
		dt = now.Sub(r.lastFrame).Seconds()
	}
	r.lastFrame = now
	if dt > 0.1 {
		dt = 0.1 // clamp after pauses so particles stay on screen
	}
	r.particles.Step(dt)

	ox, oy := 0, 0
	if r.shaker.Active(now) {
		ox, oy = r.shaker.Offset(now)
	}
	if !r.settings.ReducedEffects {
		r.particles.Draw(r.screen, ox, oy)
	}
	if r.settings.EnableStatusBar {
		r.bar.Draw(r.screen)
	}
	r.panel.Draw(r.screen)
}

// Particles exposes the live particle count, used by the host for debugging
func (r *Renderer) Particles() int {
	return r.particles.Count()
}

// PanelVisible reports whether the progression panel is shown
func (r *Renderer) PanelVisible() bool {
	return r.panel.Visible()
}
