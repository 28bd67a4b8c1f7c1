package events

import (
	"time"
)

// EventType identifies an inbound host event
type EventType int

const (
	// EventDocChange signals a document edit in the host editor
	// Trigger: host text-change notification
	// Consumer: Coordinator | Payload: *DocChangePayload
	EventDocChange EventType = iota

	// EventSelectionChange signals cursor/selection movement
	// Trigger: host selection-change notification
	// Consumer: Coordinator (forwards cursor position to renderer) | Payload: *SelectionChangePayload
	EventSelectionChange

	// EventConfigChange delivers a fresh settings snapshot
	// Trigger: host configuration-change notification
	// Consumer: Coordinator | Payload: *ConfigChangePayload
	EventConfigChange

	// EventCommand signals a host-invoked command (reset, toggles, panel)
	// Trigger: host command palette / keybinding
	// Consumer: Coordinator | Payload: *CommandPayload
	EventCommand
)

// Event is a single inbound host notification
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// Command identifies a host-invocable command (no parameters)
type Command int

const (
	CommandResetProgress Command = iota
	CommandToggleExplosions
	CommandToggleBlips
	CommandToggleChars
	CommandToggleShake
	CommandToggleSound
	CommandToggleFireworks
	CommandToggleReducedEffects
	CommandShowPanel
)

// String returns the command identifier as exposed to the host
func (c Command) String() string {
	switch c {
	case CommandResetProgress:
		return "reset-progress"
	case CommandToggleExplosions:
		return "toggle-explosions"
	case CommandToggleBlips:
		return "toggle-blips"
	case CommandToggleChars:
		return "toggle-chars"
	case CommandToggleShake:
		return "toggle-shake"
	case CommandToggleSound:
		return "toggle-sound"
	case CommandToggleFireworks:
		return "toggle-fireworks"
	case CommandToggleReducedEffects:
		return "toggle-reduced-effects"
	case CommandShowPanel:
		return "show-panel"
	}
	return "unknown"
}
