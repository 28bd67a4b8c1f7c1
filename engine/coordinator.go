package engine

import (
	"fmt"
	"strings"

	"github.com/lowrez/powertype/config"
	"github.com/lowrez/powertype/events"
	"github.com/lowrez/powertype/status"
	"github.com/lowrez/powertype/storage"
)

// Gauge names published to the status registry
const (
	GaugeCombo     = "combo.count"
	GaugeComboBest = "combo.best"
	GaugeLevel     = "level"
	GaugeXP        = "xp"
	FlagPowerMode  = "power_mode"
	TextStatusLine = "status_line"
)

type editKind int

const (
	editNone editKind = iota
	editInsert
	editDelete
)

// readOnlyPrefixes marks host surfaces whose edits never count: output,
// debug and other system panels. Matched case-insensitively by prefix
var readOnlyPrefixes = []string{"output", "debug", "log", "search"}

// ReadOnlySurface reports whether edits on the given surface kind are ignored
func ReadOnlySurface(kind string) bool {
	k := strings.ToLower(kind)
	for _, p := range readOnlyPrefixes {
		if strings.HasPrefix(k, p) {
			return true
		}
	}
	return false
}

// classify determines the edit kind of a document change
// A change carrying both inserted text and a removed range counts as insert
func classify(p *events.DocChangePayload) editKind {
	if len(p.InsertedText) > 0 {
		return editInsert
	}
	if p.RemovedLength > 0 {
		return editDelete
	}
	return editNone
}

// Coordinator converts inbound host events into engine mutations and
// side-effect intents
//
// All methods run on the engine loop goroutine; nothing here locks
type Coordinator struct {
	combo    *Combo
	leveling *Leveling
	pitch    *PitchTracker
	settings config.Settings
	sink     events.IntentSink
	registry *status.Registry

	cursorX int
	cursorY int
}

// NewCoordinator wires the engines to an intent sink
// registry may be nil when no panel/status consumer exists
func NewCoordinator(clock Clock, sched Scheduler, store storage.Store, settings config.Settings, sink events.IntentSink, registry *status.Registry) *Coordinator {
	settings = settings.Normalize()
	c := &Coordinator{
		settings: settings,
		sink:     sink,
		registry: registry,
	}
	c.combo = NewCombo(clock, sched, settings.ComboTimeout, settings.PowerModeThreshold, c.onComboStop)
	c.leveling = NewLeveling(store, settings.BaseXP)
	c.pitch = NewPitchTracker(sched)
	c.publishStatus()
	c.publishGauges()
	return c
}

// HandleEvent processes one inbound host event
// Unknown event shapes are ignored silently
func (c *Coordinator) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.EventDocChange:
		if p, ok := ev.Payload.(*events.DocChangePayload); ok {
			c.handleDocChange(p)
		}
	case events.EventSelectionChange:
		if p, ok := ev.Payload.(*events.SelectionChangePayload); ok {
			c.cursorX, c.cursorY = p.X, p.Y
			c.emit(events.Intent{Kind: events.IntentCursor, Payload: &events.CursorPayload{X: p.X, Y: p.Y}})
		}
	case events.EventConfigChange:
		if p, ok := ev.Payload.(*events.ConfigChangePayload); ok {
			c.applySettings(p.Settings)
		}
	case events.EventCommand:
		if p, ok := ev.Payload.(*events.CommandPayload); ok {
			c.handleCommand(p.Command)
		}
	}
}

func (c *Coordinator) handleDocChange(p *events.DocChangePayload) {
	kind := classify(p)
	if kind == editNone || ReadOnlySurface(p.SurfaceKind) {
		return
	}
	c.cursorX, c.cursorY = p.X, p.Y

	switch kind {
	case editInsert:
		c.handleInsert(p)
	case editDelete:
		c.handleDelete(p)
	}

	// Combo is a separate concern: every qualifying edit counts regardless
	// of the effect toggles
	update := c.combo.RegisterEvent()
	c.emit(events.Intent{Kind: events.IntentCombo, Payload: &events.ComboPayload{
		Count:            update.Count,
		PowerMode:        update.PowerMode,
		PowerModeEntered: update.PowerModeEntered,
		PowerModeStart:   update.PowerModeStart,
	}})
	c.publishGauges()
}

func (c *Coordinator) handleInsert(p *events.DocChangePayload) {
	// XP accrual is unconditional for inserts
	leveledUp := c.leveling.AddXP(1)

	// Pitch cadence tracks every insert, even while blips are toggled off,
	// so re-enabling mid-burst resumes at the right pitch
	pitch, variant := c.pitch.RegisterInsert()

	if c.settings.Blips && !c.settings.ReducedEffects {
		ch := firstRune(p.InsertedText)
		c.emit(events.Intent{Kind: events.IntentBlip, Payload: &events.BlipPayload{
			Pitch:   pitch,
			Variant: variant,
			Char:    ch,
			Sound:   c.settings.Sound,
			X:       p.X,
			Y:       p.Y,
		}})
	}

	if strings.ContainsAny(p.InsertedText, "\n\r") && c.settings.Blips {
		c.emit(events.Intent{Kind: events.IntentNewline, Payload: &events.NewlinePayload{
			Sound: c.settings.Sound,
			X:     p.X,
			Y:     p.Y,
		}})
	}

	if leveledUp && c.settings.Fireworks && !c.settings.ReducedEffects {
		c.emit(events.Intent{Kind: events.IntentFireworks, Payload: &events.FireworksPayload{
			Level: c.leveling.Level(),
			Sound: c.settings.Sound,
			X:     p.X,
			Y:     p.Y,
		}})
	}

	c.publishStatus()
}

func (c *Coordinator) handleDelete(p *events.DocChangePayload) {
	// Deletions earn no XP
	if c.settings.Explosions && !c.settings.ReducedEffects {
		c.emit(events.Intent{Kind: events.IntentBoom, Payload: &events.BoomPayload{
			Sound: c.settings.Sound,
			X:     p.X,
			Y:     p.Y,
		}})
	}
}

func (c *Coordinator) handleCommand(cmd events.Command) {
	switch cmd {
	case events.CommandResetProgress:
		c.combo.Stop()
		c.leveling.Reset()
		c.publishStatus()
		c.publishGauges()
	case events.CommandShowPanel:
		c.emit(events.Intent{Kind: events.IntentPanelToggle})
	case events.CommandToggleExplosions:
		c.settings.Explosions = !c.settings.Explosions
		c.broadcastSettings()
	case events.CommandToggleBlips:
		c.settings.Blips = !c.settings.Blips
		c.broadcastSettings()
	case events.CommandToggleChars:
		c.settings.Chars = !c.settings.Chars
		c.broadcastSettings()
	case events.CommandToggleShake:
		c.settings.Shake = !c.settings.Shake
		c.broadcastSettings()
	case events.CommandToggleSound:
		c.settings.Sound = !c.settings.Sound
		c.broadcastSettings()
	case events.CommandToggleFireworks:
		c.settings.Fireworks = !c.settings.Fireworks
		c.broadcastSettings()
	case events.CommandToggleReducedEffects:
		c.settings.ReducedEffects = !c.settings.ReducedEffects
		c.broadcastSettings()
	}
}

// applySettings installs a fresh snapshot from the host
func (c *Coordinator) applySettings(s config.Settings) {
	s = s.Normalize()
	oldBase := c.settings.BaseXP
	c.settings = s
	c.combo.Configure(s.ComboTimeout, s.PowerModeThreshold)
	if s.BaseXP != oldBase {
		c.leveling.SetBaseXP(s.BaseXP)
	}
	c.broadcastSettings()
	c.publishStatus()
}

func (c *Coordinator) broadcastSettings() {
	c.emit(events.Intent{Kind: events.IntentSettings, Payload: &events.SettingsPayload{Settings: c.settings}})
}

func (c *Coordinator) onComboStop(finalCount int) {
	c.emit(events.Intent{Kind: events.IntentComboStop, Payload: &events.ComboStopPayload{FinalCount: finalCount}})
	if c.registry != nil {
		c.registry.Int(GaugeCombo).Store(0)
		c.registry.Bool(FlagPowerMode).Store(false)
		best := c.registry.Int(GaugeComboBest)
		if int64(finalCount) > best.Load() {
			best.Store(int64(finalCount))
		}
	}
}

func (c *Coordinator) publishStatus() {
	if !c.settings.EnableStatusBar {
		return
	}
	current, max := c.leveling.Progress()
	text := fmt.Sprintf("Lv %d — %d/%d XP", c.leveling.Level(), current, max)
	c.emit(events.Intent{Kind: events.IntentStatus, Payload: &events.StatusPayload{
		Text:    text,
		Level:   c.leveling.Level(),
		Current: current,
		Max:     max,
	}})
	if c.registry != nil {
		c.registry.Text(TextStatusLine).Set(text)
	}
}

func (c *Coordinator) publishGauges() {
	if c.registry == nil {
		return
	}
	c.registry.Int(GaugeCombo).Store(int64(c.combo.Count()))
	c.registry.Bool(FlagPowerMode).Store(c.combo.PowerModeActive())
	c.registry.Int(GaugeLevel).Store(int64(c.leveling.Level()))
	c.registry.Int(GaugeXP).Store(int64(c.leveling.XP()))
}

func (c *Coordinator) emit(intent events.Intent) {
	if c.sink != nil {
		c.sink.Emit(intent)
	}
}

// Settings returns the active snapshot (for the demo host's HUD)
func (c *Coordinator) Settings() config.Settings {
	return c.settings
}

// Combo exposes the combo engine for inspection
func (c *Coordinator) Combo() *Combo {
	return c.combo
}

// Leveling exposes the leveling engine for inspection
func (c *Coordinator) Leveling() *Leveling {
	return c.leveling
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
