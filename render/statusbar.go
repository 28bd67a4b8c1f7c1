package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var (
	statusStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	powerStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	comboStyle     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorDarkBlue)
	meterFillStyle = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorDarkBlue)
)

// StatusBar paints the bottom row: progression text on the left,
// combo readout on the right, with an XP meter in between
type StatusBar struct {
	text      string
	level     int
	current   int
	max       int
	combo     int
	powerMode bool
}

// SetProgress records the latest progression state for drawing
func (b *StatusBar) SetProgress(text string, level, current, max int) {
	b.text = text
	b.level = level
	b.current = current
	b.max = max
}

// SetCombo records the latest combo state for drawing
func (b *StatusBar) SetCombo(count int, powerMode bool) {
	b.combo = count
	b.powerMode = powerMode
}

// Draw paints the bar on the bottom row of the screen
func (b *StatusBar) Draw(screen tcell.Screen) {
	width, height := screen.Size()
	if height == 0 || width == 0 {
		return
	}
	row := height - 1

	for x := 0; x < width; x++ {
		screen.SetContent(x, row, ' ', nil, statusStyle)
	}

	drawText(screen, 1, row, statusStyle, b.text)

	// XP meter fills the middle third when there is room
	left := utf8.RuneCountInString(b.text) + 3
	meterWidth := width/3 - 2
	if meterWidth > 4 && b.max > 0 {
		fill := meterWidth * b.current / b.max
		if fill > meterWidth {
			fill = meterWidth
		}
		for i := 0; i < meterWidth; i++ {
			ch := '░'
			style := statusStyle
			if i < fill {
				ch = '█'
				style = meterFillStyle
			}
			screen.SetContent(left+i, row, ch, nil, style)
		}
	}

	if b.combo > 0 {
		label := fmt.Sprintf(" x%d ", b.combo)
		style := comboStyle
		if b.powerMode {
			label = fmt.Sprintf(" x%d POWER ", b.combo)
			style = powerStyle
		}
		drawText(screen, width-len(label)-1, row, style, label)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
