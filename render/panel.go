package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/powertype/status"
)

var (
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	panelBorder = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkSlateGray)
	panelTitle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkSlateGray).Bold(true)
)

// Panel is the toggleable progression overlay fed from the status registry
type Panel struct {
	registry *status.Registry
	visible  bool
}

// NewPanel creates a hidden panel reading from registry
func NewPanel(registry *status.Registry) *Panel {
	return &Panel{registry: registry}
}

// Toggle flips visibility and returns the new state
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is currently shown
func (p *Panel) Visible() bool {
	return p.visible
}

// Draw paints the overlay box centered on the screen
func (p *Panel) Draw(screen tcell.Screen) {
	if !p.visible {
		return
	}
	width, height := screen.Size()

	samples := p.registry.IntSnapshot()
	boxW := 34
	boxH := len(samples) + 4
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}
	x0 := (width - boxW) / 2
	y0 := (height - boxH) / 2

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			screen.SetContent(x, y, ' ', nil, panelStyle)
		}
	}
	drawBorder(screen, x0, y0, boxW, boxH)
	drawText(screen, x0+2, y0, panelTitle, " progress ")

	row := y0 + 2
	for _, sample := range samples {
		if row >= y0+boxH-1 {
			break
		}
		line := fmt.Sprintf("%-18s %10d", sample.Name, sample.Value)
		if len(line) > boxW-4 {
			line = line[:boxW-4]
		}
		drawText(screen, x0+2, row, panelStyle, line)
		row++
	}
}

func drawBorder(screen tcell.Screen, x0, y0, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	for x := x0; x < x0+w; x++ {
		screen.SetContent(x, y0, '─', nil, panelBorder)
		screen.SetContent(x, y0+h-1, '─', nil, panelBorder)
	}
	for y := y0; y < y0+h; y++ {
		screen.SetContent(x0, y, '│', nil, panelBorder)
		screen.SetContent(x0+w-1, y, '│', nil, panelBorder)
	}
	screen.SetContent(x0, y0, '┌', nil, panelBorder)
	screen.SetContent(x0+w-1, y0, '┐', nil, panelBorder)
	screen.SetContent(x0, y0+h-1, '└', nil, panelBorder)
	screen.SetContent(x0+w-1, y0+h-1, '┘', nil, panelBorder)
}
