package events

import (
	"github.com/lowrez/powertype/config"
)

// DocChangePayload captures a single document edit
// InsertedText non-empty classifies the edit as an insert; otherwise a
// positive RemovedLength classifies it as a delete
type DocChangePayload struct {
	InsertedText  string
	RemovedLength int
	SurfaceKind   string // host surface identifier ("" = regular document)
	X             int    // cursor column at edit time
	Y             int    // cursor row at edit time
}

// SelectionChangePayload carries the new cursor position
type SelectionChangePayload struct {
	X int
	Y int
}

// ConfigChangePayload carries a full settings snapshot
// The core never mutates a snapshot it received
type ConfigChangePayload struct {
	Settings config.Settings
}

// CommandPayload identifies the invoked command
type CommandPayload struct {
	Command Command
}
