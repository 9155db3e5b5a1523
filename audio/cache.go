package audio

import (
	"sync"

	"github.com/lixenwraith/ironrift/core"
)

// soundCache stores rendered unity-gain cue buffers
type soundCache struct {
	mu    sync.RWMutex
	store [core.SoundTypeCount]floatBuffer
	ready [core.SoundTypeCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached buffer, rendering on first use
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st]
	}

	buf := render(CueStreamer(st))
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload renders the cues heard every few ticks in combat
func (c *soundCache) preload() {
	c.get(core.SoundShot)
	c.get(core.SoundHit)
}
