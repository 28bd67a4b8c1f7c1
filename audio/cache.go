package audio

import (
	"sync"
)

// soundCache holds pre-rendered PCM for every effect so the engine loop
// never synthesizes under a keystroke
type soundCache struct {
	mu        sync.Mutex
	blips     [BlipVariants][]byte
	boomPCM   []byte
	fwPCM     []byte
	nlPCM     []byte
	preloaded bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// preload renders every variant up front. Idempotent
func (c *soundCache) preload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.preloaded {
		return
	}
	for v := 0; v < BlipVariants; v++ {
		c.blips[v] = Render(BlipStreamer(v))
	}
	c.boomPCM = Render(BoomStreamer())
	c.fwPCM = Render(FireworksStreamer())
	c.nlPCM = Render(NewlineStreamer())
	c.preloaded = true
}

func (c *soundCache) blip(variant int) []byte {
	if variant < 0 {
		variant = 0
	}
	if variant >= BlipVariants {
		variant = BlipVariants - 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.blips[variant] == nil {
		c.blips[variant] = Render(BlipStreamer(variant))
	}
	return c.blips[variant]
}

func (c *soundCache) boom() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.boomPCM == nil {
		c.boomPCM = Render(BoomStreamer())
	}
	return c.boomPCM
}

func (c *soundCache) fireworks() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fwPCM == nil {
		c.fwPCM = Render(FireworksStreamer())
	}
	return c.fwPCM
}

func (c *soundCache) newline() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nlPCM == nil {
		c.nlPCM = Render(NewlineStreamer())
	}
	return c.nlPCM
}
