package events

import (
	"github.com/lowrez/powertype/config"
)

// IntentKind identifies an outbound side-effect request
type IntentKind int

const (
	// IntentBlip requests the per-keystroke visual/audio blip
	// Trigger: insert edit with blips enabled
	// Consumers: renderer (char sprite), audio (pitched tone) | Payload: *BlipPayload
	IntentBlip IntentKind = iota

	// IntentBoom requests the deletion explosion
	// Trigger: delete edit with explosions enabled
	// Consumers: renderer, audio | Payload: *BoomPayload
	IntentBoom

	// IntentFireworks requests the level-up celebration
	// Trigger: AddXP crossing the threshold with fireworks enabled
	// Consumers: renderer, audio | Payload: *FireworksPayload
	IntentFireworks

	// IntentNewline requests the line-break streak effect
	// Trigger: insert containing a line separator with blips enabled
	// Consumers: renderer, audio | Payload: *NewlinePayload
	IntentNewline

	// IntentCombo reports a combo counter change
	// Trigger: any qualifying edit
	// Consumers: renderer (HUD, shake while in power mode) | Payload: *ComboPayload
	IntentCombo

	// IntentComboStop reports combo decay or explicit stop
	// Trigger: decay timer expiry, game reset
	// Consumers: renderer | Payload: *ComboStopPayload
	IntentComboStop

	// IntentStatus carries the formatted progression line
	// Trigger: XP change, reset, config change
	// Consumers: status bar | Payload: *StatusPayload
	IntentStatus

	// IntentCursor forwards the latest cursor position for effect placement
	// Trigger: selection change | Payload: *CursorPayload
	IntentCursor

	// IntentSettings propagates the active settings snapshot to consumers
	// Trigger: config change, toggle command | Payload: *SettingsPayload
	IntentSettings

	// IntentPanelToggle shows/hides the progression panel
	// Trigger: show-panel command | Payload: nil
	IntentPanelToggle
)

// Intent is a single outbound side-effect request
type Intent struct {
	Kind    IntentKind
	Payload any
}

// BlipPayload parameterizes the keystroke blip
// Variant indexes the 21 pitched sound variants (0 = base, 20 = max)
type BlipPayload struct {
	Pitch   float64
	Variant int
	Char    rune
	Sound   bool // audio enabled at emit time
	X       int
	Y       int
}

// BoomPayload parameterizes the deletion explosion
type BoomPayload struct {
	Sound bool
	X     int
	Y     int
}

// FireworksPayload parameterizes the level-up burst
type FireworksPayload struct {
	Level int
	Sound bool
	X     int
	Y     int
}

// NewlinePayload parameterizes the line-break streak
type NewlinePayload struct {
	Sound bool
	X     int
	Y     int
}

// ComboPayload reports the counter state after a qualifying edit
type ComboPayload struct {
	Count            int
	PowerMode        bool
	PowerModeEntered bool
	PowerModeStart   int
}

// ComboStopPayload reports the final count of a decayed combo
type ComboStopPayload struct {
	FinalCount int
}

// StatusPayload carries the progression status line and its raw parts
type StatusPayload struct {
	Text    string
	Level   int
	Current int
	Max     int
}

// CursorPayload carries the latest cursor position
type CursorPayload struct {
	X int
	Y int
}

// SettingsPayload carries the active settings snapshot
type SettingsPayload struct {
	Settings config.Settings
}

// IntentHandler consumes routed intents
// Handlers are invoked synchronously during dispatch, in registration order
type IntentHandler interface {
	// HandleIntent processes a single intent
	HandleIntent(intent Intent)

	// IntentKinds returns the kinds this handler consumes
	IntentKinds() []IntentKind
}

// IntentSink accepts emitted intents; the Coordinator writes to one sink
type IntentSink interface {
	Emit(intent Intent)
}

// Dispatcher fans intents out to registered handlers
//
// Dispatch is single-threaded: the engine loop emits and routes in the same
// goroutine, so handlers never run concurrently
type Dispatcher struct {
	handlers map[IntentKind][]IntentHandler
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[IntentKind][]IntentHandler)}
}

// Register adds a handler for its declared intent kinds
func (d *Dispatcher) Register(handler IntentHandler) {
	for _, k := range handler.IntentKinds() {
		d.handlers[k] = append(d.handlers[k], handler)
	}
}

// Emit routes one intent to all handlers registered for its kind
func (d *Dispatcher) Emit(intent Intent) {
	for _, h := range d.handlers[intent.Kind] {
		h.HandleIntent(intent)
	}
}

// HandlerCount returns the number of handlers registered for a kind
func (d *Dispatcher) HandlerCount(k IntentKind) int {
	return len(d.handlers[k])
}
