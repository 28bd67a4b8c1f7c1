package engine

import (
	"log"
	"math"

	"github.com/lowrez/powertype/storage"
)

// Leveling tracks cumulative XP and the current level
//
// State is mirrored in memory and persisted after every mutation. Persistence
// is fire-and-forget: a failed write is logged and dropped, the in-memory
// mirror stays authoritative for the session
type Leveling struct {
	store  storage.Store
	baseXP int

	xp           int
	level        int
	xpNext       int // absolute xp at which the next level-up fires
	xpLevelStart int // absolute xp at which the current level began
}

// levelStep returns the threshold increment for the given level:
// round(baseXP*level/100)*10, rounding half away from zero.
// Stored thresholds from earlier versions depend on this exact arithmetic
func levelStep(baseXP, level int) int {
	return int(math.Round(float64(baseXP)*float64(level)/100.0)) * 10
}

// NewLeveling loads persisted progression from store
// Missing keys default to a fresh level-1 state; a stale threshold below the
// loaded xp (possible after a baseXP change) is recomputed in place
func NewLeveling(store storage.Store, baseXP int) *Leveling {
	if baseXP < 1 {
		baseXP = 1
	}
	l := &Leveling{
		store:  store,
		baseXP: baseXP,
		level:  1,
	}
	l.xp = l.load(storage.KeyXP, 0)
	l.level = l.load(storage.KeyLevel, 1)
	l.xpNext = l.load(storage.KeyXPNextAbs, 2*baseXP)
	l.xpLevelStart = l.load(storage.KeyXPLevelStart, 0)

	if l.level < 1 {
		l.level = 1
	}
	if l.xp < 0 {
		l.xp = 0
	}
	if l.xpNext < l.xp {
		l.xpNext = l.xp + levelStep(l.baseXP, l.level)
	}
	return l
}

func (l *Leveling) load(key string, def int) int {
	v, ok, err := l.store.GetInt(key)
	if err != nil {
		log.Printf("leveling: load %q failed, using default %d: %v", key, def, err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

// AddXP accumulates n experience points and reports whether a level-up fired
func (l *Leveling) AddXP(n int) bool {
	if n < 0 {
		n = 0
	}
	l.xp += n

	leveled := false
	if l.xp >= l.xpNext {
		l.level++
		l.xpLevelStart = l.xp
		l.xpNext = l.xp + levelStep(l.baseXP, l.level)
		leveled = true
	}
	l.persist()
	return leveled
}

// Reset returns progression to the initial state and persists it
func (l *Leveling) Reset() {
	l.level = 1
	l.xp = 0
	l.xpLevelStart = 0
	l.xpNext = 2 * l.baseXP
	l.persist()
}

// SetBaseXP applies a configuration change to the base value
//
// Only the untouched initial target (level 1, zero xp) and an already-stale
// threshold are rescaled; mid-level progress keeps its old target until the
// next level-up so a config change never moves the goalposts mid-level
func (l *Leveling) SetBaseXP(baseXP int) {
	if baseXP < 1 {
		baseXP = 1
	}
	l.baseXP = baseXP
	if l.level == 1 && l.xp == 0 {
		l.xpNext = 2 * baseXP
	} else if l.xp >= l.xpNext {
		l.xpNext = l.xp + levelStep(baseXP, l.level)
	}
	l.persist()
}

// Progress returns the xp earned within the current level and the span of
// the level. Callers clamp for display
func (l *Leveling) Progress() (current, max int) {
	return l.xp - l.xpLevelStart, l.xpNext - l.xpLevelStart
}

// Level returns the current level
func (l *Leveling) Level() int {
	return l.level
}

// XP returns cumulative experience
func (l *Leveling) XP() int {
	return l.xp
}

// Threshold returns the absolute xp of the next level-up
func (l *Leveling) Threshold() int {
	return l.xpNext
}

func (l *Leveling) persist() {
	l.put(storage.KeyXP, l.xp)
	l.put(storage.KeyLevel, l.level)
	l.put(storage.KeyXPNextAbs, l.xpNext)
	l.put(storage.KeyXPLevelStart, l.xpLevelStart)
}

func (l *Leveling) put(key string, value int) {
	if err := l.store.PutInt(key, value); err != nil {
		log.Printf("leveling: persist %q failed: %v", key, err)
	}
}
