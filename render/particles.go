// Package render draws the typing effects on a tcell screen: particle
// bursts, screen shake, the status bar and the progression panel.
package render

import (
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

const (
	maxParticles    = 512
	particleGravity = 14.0 // cells/s^2, pulls sparks down
)

var sparkRunes = []rune{'*', '+', '.', 'o', '°', '·'}

var sparkColors = []tcell.Color{
	tcell.ColorYellow,
	tcell.ColorOrange,
	tcell.ColorRed,
	tcell.ColorWhite,
}

var fireworkColors = []tcell.Color{
	tcell.ColorFuchsia,
	tcell.ColorAqua,
	tcell.ColorLime,
	tcell.ColorYellow,
	tcell.ColorWhite,
}

// Particle is one animated glyph
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
	Span   float64 // initial life, for fade
	Char   rune
	Color  tcell.Color
	Float  bool // floats upward, ignores gravity
}

// ParticleSystem owns all live particles
// Not safe for concurrent use: all calls happen on the engine loop goroutine
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system
func NewParticleSystem(seed int64) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, maxParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (ps *ParticleSystem) add(p Particle) {
	if len(ps.particles) >= maxParticles {
		// Oldest dies first to make room
		ps.particles = ps.particles[1:]
	}
	ps.particles = append(ps.particles, p)
}

// SpawnChar lifts the typed character off the cursor
func (ps *ParticleSystem) SpawnChar(x, y int, ch rune) {
	if ch == 0 || ch == '\n' || ch == '\r' {
		return
	}
	ps.add(Particle{
		X: float64(x), Y: float64(y),
		VX:   ps.rng.Float64()*4 - 2,
		VY:   -4 - ps.rng.Float64()*3,
		Life: 0.5, Span: 0.5,
		Char:  ch,
		Color: tcell.ColorWhite,
		Float: true,
	})
}

// SpawnExplosion bursts sparks around a deletion
// intensity >= 1 scales the spark count
func (ps *ParticleSystem) SpawnExplosion(x, y int, intensity float64) {
	if intensity < 1 {
		intensity = 1
	}
	count := int(6 * intensity)
	if count > 48 {
		count = 48
	}
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 3 + ps.rng.Float64()*6*intensity
		ps.add(Particle{
			X: float64(x), Y: float64(y),
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed * 0.5, // terminal cells are tall
			Life: 0.4 + ps.rng.Float64()*0.3, Span: 0.7,
			Char:  sparkRunes[ps.rng.Intn(len(sparkRunes))],
			Color: sparkColors[ps.rng.Intn(len(sparkColors))],
		})
	}
}

// SpawnFirework launches a celebratory burst above the cursor
func (ps *ParticleSystem) SpawnFirework(x, y int) {
	for i := 0; i < 36; i++ {
		angle := float64(i) / 36 * 2 * math.Pi
		speed := 5 + ps.rng.Float64()*4
		ps.add(Particle{
			X: float64(x), Y: float64(y) - 2,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle) * speed * 0.5,
			Life: 0.8 + ps.rng.Float64()*0.5, Span: 1.3,
			Char:  '*',
			Color: fireworkColors[ps.rng.Intn(len(fireworkColors))],
		})
	}
}

// SpawnNewline streaks sparks along the finished line
func (ps *ParticleSystem) SpawnNewline(x, y int) {
	for i := 0; i < 10; i++ {
		ps.add(Particle{
			X: float64(x), Y: float64(y),
			VX:   -4 - ps.rng.Float64()*8,
			VY:   ps.rng.Float64()*0.6 - 0.3,
			Life: 0.35, Span: 0.35,
			Char:  '-',
			Color: tcell.ColorAqua,
		})
	}
}

// Step advances physics by dt and culls dead particles
func (ps *ParticleSystem) Step(dt float64) {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		if !p.Float {
			p.VY += particleGravity * dt
		}
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Draw paints live particles, brightest first so young sparks win overlaps
func (ps *ParticleSystem) Draw(screen tcell.Screen, offsetX, offsetY int) {
	width, height := screen.Size()
	for _, p := range ps.particles {
		x := int(p.X) + offsetX
		y := int(p.Y) + offsetY
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		style := tcell.StyleDefault.Foreground(p.Color)
		if p.Span > 0 && p.Life < p.Span*0.3 {
			style = style.Dim(true)
		}
		screen.SetContent(x, y, p.Char, nil, style)
	}
}

// Count returns the number of live particles
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}
