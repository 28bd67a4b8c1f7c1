package main

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/powertype/events"
)

var surfaces = []string{"file", "output:log", "debug:console"}

// editor is the demo text buffer driving the effects engine.
// It is not a real editor: just enough buffer to generate the
// document-change and selection events a host would send.
//
// The input goroutine mutates it while the loop goroutine draws it,
// so both entry points take the mutex
type editor struct {
	mu      sync.Mutex
	lines   []string
	x, y    int
	surface int // index into surfaces
}

func newEditor() *editor {
	return &editor{lines: []string{""}}
}

func (e *editor) surfaceKind() string {
	return surfaces[e.surface]
}

func (e *editor) cycleSurface() {
	e.surface = (e.surface + 1) % len(surfaces)
}

func (e *editor) docEvent(inserted string, removed int) events.Event {
	return events.Event{
		Type: events.EventDocChange,
		Payload: &events.DocChangePayload{
			InsertedText:  inserted,
			RemovedLength: removed,
			SurfaceKind:   e.surfaceKind(),
			X:             e.x,
			Y:             e.y,
		},
		Timestamp: time.Now(),
	}
}

func (e *editor) selectionEvent() events.Event {
	return events.Event{
		Type:      events.EventSelectionChange,
		Payload:   &events.SelectionChangePayload{X: e.x, Y: e.y},
		Timestamp: time.Now(),
	}
}

func commandEvent(cmd events.Command) events.Event {
	return events.Event{
		Type:      events.EventCommand,
		Payload:   &events.CommandPayload{Command: cmd},
		Timestamp: time.Now(),
	}
}

// insertRune types one character at the cursor and returns the engine event
func (e *editor) insertRune(ch rune) events.Event {
	line := e.lines[e.y]
	if e.x > len(line) {
		e.x = len(line)
	}
	e.lines[e.y] = line[:e.x] + string(ch) + line[e.x:]
	ev := e.docEvent(string(ch), 0)
	e.x++
	return ev
}

// insertNewline splits the current line at the cursor
func (e *editor) insertNewline() events.Event {
	line := e.lines[e.y]
	if e.x > len(line) {
		e.x = len(line)
	}
	rest := line[e.x:]
	e.lines[e.y] = line[:e.x]
	e.lines = append(e.lines[:e.y+1], append([]string{rest}, e.lines[e.y+1:]...)...)
	ev := e.docEvent("\n", 0)
	e.y++
	e.x = 0
	return ev
}

// deleteBack removes the character before the cursor, joining lines at col 0.
// Returns the engine event and whether anything was removed
func (e *editor) deleteBack() (events.Event, bool) {
	if e.x > 0 {
		line := e.lines[e.y]
		e.lines[e.y] = line[:e.x-1] + line[e.x:]
		e.x--
		return e.docEvent("", 1), true
	}
	if e.y > 0 {
		prev := e.lines[e.y-1]
		e.x = len(prev)
		e.lines[e.y-1] = prev + e.lines[e.y]
		e.lines = append(e.lines[:e.y], e.lines[e.y+1:]...)
		e.y--
		return e.docEvent("", 1), true
	}
	return events.Event{}, false
}

// moveCursor clamps the cursor into the buffer and reports a selection change
func (e *editor) moveCursor(dx, dy int) events.Event {
	e.y += dy
	if e.y < 0 {
		e.y = 0
	}
	if e.y >= len(e.lines) {
		e.y = len(e.lines) - 1
	}
	e.x += dx
	if e.x < 0 {
		e.x = 0
	}
	if e.x > len(e.lines[e.y]) {
		e.x = len(e.lines[e.y])
	}
	return e.selectionEvent()
}

// handleKey translates one tcell key event into engine events.
// Returns nil for keys the demo does not map
func (e *editor) handleKey(ev *tcell.EventKey) []events.Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch ev.Key() {
	case tcell.KeyRune:
		return []events.Event{e.insertRune(ev.Rune())}
	case tcell.KeyEnter:
		return []events.Event{e.insertNewline()}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if event, ok := e.deleteBack(); ok {
			return []events.Event{event}
		}
		return nil
	case tcell.KeyLeft:
		return []events.Event{e.moveCursor(-1, 0)}
	case tcell.KeyRight:
		return []events.Event{e.moveCursor(1, 0)}
	case tcell.KeyUp:
		return []events.Event{e.moveCursor(0, -1)}
	case tcell.KeyDown:
		return []events.Event{e.moveCursor(0, 1)}
	case tcell.KeyCtrlR:
		return []events.Event{commandEvent(events.CommandResetProgress)}
	case tcell.KeyCtrlE:
		return []events.Event{commandEvent(events.CommandToggleExplosions)}
	case tcell.KeyCtrlB:
		return []events.Event{commandEvent(events.CommandToggleBlips)}
	case tcell.KeyCtrlG:
		return []events.Event{commandEvent(events.CommandToggleChars)}
	case tcell.KeyCtrlK:
		return []events.Event{commandEvent(events.CommandToggleShake)}
	case tcell.KeyCtrlA:
		return []events.Event{commandEvent(events.CommandToggleSound)}
	case tcell.KeyCtrlF:
		return []events.Event{commandEvent(events.CommandToggleFireworks)}
	case tcell.KeyCtrlL:
		return []events.Event{commandEvent(events.CommandToggleReducedEffects)}
	case tcell.KeyCtrlP:
		return []events.Event{commandEvent(events.CommandShowPanel)}
	case tcell.KeyCtrlO:
		// Switching surfaces generates no engine event; subsequent edits
		// carry the new surface kind
		e.cycleSurface()
		return nil
	}
	return nil
}

var (
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	cursorStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	surfaceStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// draw paints the buffer with the shake offset applied
func (e *editor) draw(screen tcell.Screen, ox, oy int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	width, height := screen.Size()
	for y, line := range e.lines {
		sy := y + oy
		if sy < 0 || sy >= height-1 {
			continue
		}
		for x, ch := range line {
			sx := x + ox
			if sx < 0 || sx >= width {
				continue
			}
			screen.SetContent(sx, sy, ch, nil, textStyle)
		}
	}

	// Cursor cell
	cx, cy := e.x+ox, e.y+oy
	if cx >= 0 && cx < width && cy >= 0 && cy < height-1 {
		ch := ' '
		if e.x < len(e.lines[e.y]) {
			ch = rune(e.lines[e.y][e.x])
		}
		screen.SetContent(cx, cy, ch, nil, cursorStyle)
	}

	// Surface indicator in the top-right corner
	label := "[" + e.surfaceKind() + "]"
	x := width - len(label) - 1
	for _, ch := range label {
		if x >= 0 && x < width {
			screen.SetContent(x, 0, ch, nil, surfaceStyle)
		}
		x++
	}
}
