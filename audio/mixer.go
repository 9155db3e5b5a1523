package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/parameter"
)

// activeSound tracks a playing sound instance
type activeSound struct {
	buffer floatBuffer
	pos    int
	volume float64
}

type playRequest struct {
	sound  core.SoundType
	volume float64
}

// Mixer sums active cues and writes s16le stereo frames at a fixed cadence
type Mixer struct {
	output io.Writer
	cache  *soundCache

	playQueue chan playRequest
	stopChan  chan struct{}
	stopped   atomic.Bool

	// Accessed only by mix goroutine
	active []activeSound

	played  atomic.Uint64
	dropped atomic.Uint64

	errChan chan error
}

// NewMixer creates a mixer writing to out
func NewMixer(out io.Writer, cache *soundCache) *Mixer {
	return &Mixer{
		output:    out,
		cache:     cache,
		playQueue: make(chan playRequest, parameter.AudioQueueSize),
		stopChan:  make(chan struct{}),
		active:    make([]activeSound, 0, 8),
		errChan:   make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	go m.loop(time.NewTicker(parameter.AudioBufferDuration))
}

// Stop signals the mixer to halt
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
}

// Play queues a cue, returns false when stopped or the queue is full
func (m *Mixer) Play(st core.SoundType, volume float64) bool {
	if m.stopped.Load() {
		return false
	}

	select {
	case m.playQueue <- playRequest{sound: st, volume: volume}:
		return true
	default:
		m.dropped.Add(1)
		return false
	}
}

// Errors returns channel for pipe errors
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

func (m *Mixer) loop(ticker *time.Ticker) {
	defer ticker.Stop()

	mixBuf := make([]float64, parameter.AudioBufferSamples)
	outBytes := make([]byte, parameter.AudioBufferSamples*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.activate(req)

		case <-ticker.C:
			if err := m.writeFrame(mixBuf, outBytes); err != nil {
				select {
				case m.errChan <- err:
				default:
				}
				return
			}
		}
	}
}

func (m *Mixer) activate(req playRequest) {
	buf := m.cache.get(req.sound)
	if len(buf) == 0 {
		return
	}
	m.active = append(m.active, activeSound{buffer: buf, volume: req.volume})
	m.played.Add(1)
}

// writeFrame mixes one buffer period; silence keeps the pipe alive
func (m *Mixer) writeFrame(mixBuf []float64, out []byte) error {
	clear(mixBuf)
	m.active = mixActive(m.active, mixBuf)
	floatToBytes(mixBuf, out)

	if _, err := m.output.Write(out); err != nil {
		return fmt.Errorf("%w: %v", ErrPipeClosed, err)
	}
	return nil
}

// mixActive adds all active sounds into buf, returns those still playing
func mixActive(active []activeSound, buf []float64) []activeSound {
	remaining := active[:0]

	for i := range active {
		s := &active[i]
		for j := 0; j < len(buf) && s.pos < len(s.buffer); j++ {
			buf[j] += s.buffer[s.pos] * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}
	return remaining
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes
// Soft limit above 0.8, hard clip at 1
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}
		v = min(max(v, -1.0), 1.0)

		i16 := int16(v * 32767)
		idx := i * parameter.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))   // L
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16)) // R
	}
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}
