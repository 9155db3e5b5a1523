package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Buffer is a Source fed by an external producer under a mutex
// Mouse deltas accumulate until polled; keys and fire are level state; quit latches
type Buffer struct {
	mu    sync.Mutex
	frame Frame
}

// Push merges a producer frame into the pending frame
func (b *Buffer) Push(f Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frame.MouseDelta = b.frame.MouseDelta.Add(f.MouseDelta)
	b.frame.Keys = f.Keys
	b.frame.FirePressed = f.FirePressed
	b.frame.Quit = b.frame.Quit || f.Quit
}

// Poll returns the pending frame and clears the accumulated mouse delta
func (b *Buffer) Poll() Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := b.frame
	b.frame.MouseDelta = mgl64.Vec2{}
	return f
}
