package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
)

// Engine plays combat cues by piping PCM to a system playback tool
// Without a backend it runs silent; Play then reports false
type Engine struct {
	cfg   config.AudioConfig
	log   zerolog.Logger
	cache *soundCache
	mixer *Mixer

	backend *BackendConfig
	cmd     *exec.Cmd
	output  io.WriteCloser

	running    atomic.Bool
	silentMode atomic.Bool

	wg sync.WaitGroup
}

// NewEngine creates an engine; cues are rendered up front
func NewEngine(cfg config.AudioConfig, log zerolog.Logger) *Engine {
	e := &Engine{
		cfg:   cfg,
		log:   log.With().Str("component", "audio").Logger(),
		cache: newSoundCache(),
	}
	e.cache.preload()
	return e
}

// Start detects a backend and launches the mixer
// A missing or failing backend is not an error: the engine goes silent
func (e *Engine) Start() error {
	if e.running.Load() {
		return ErrRunning
	}
	if !e.cfg.Enabled {
		e.goSilent(nil, "audio disabled")
		return nil
	}

	backend, err := DetectBackend()
	if err != nil {
		e.goSilent(err, "no playback backend")
		return nil
	}
	e.backend = backend

	out, err := e.openBackend(backend)
	if err != nil {
		e.goSilent(err, "playback backend failed to start")
		return nil
	}

	e.log.Info().Str("backend", backend.Name).Stringer("type", backend.Type).Msg("audio started")
	return e.StartOutput(out)
}

// StartOutput runs the mixer against an explicit sink
func (e *Engine) StartOutput(out io.WriteCloser) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	e.output = out
	e.mixer = NewMixer(out, e.cache)
	e.mixer.Start()

	e.wg.Add(1)
	go e.monitorMixer()
	return nil
}

func (e *Engine) openBackend(b *BackendConfig) (io.WriteCloser, error) {
	if b.Type == BackendOSS {
		f, err := os.OpenFile(b.Path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", b.Path, err)
		}
		return f, nil
	}

	cmd := exec.Command(b.Path, b.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%s stdin: %w", b.Name, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, fmt.Errorf("start %s: %w", b.Name, err)
	}
	e.cmd = cmd

	e.wg.Add(1)
	go e.monitorProcess()
	return stdin, nil
}

func (e *Engine) goSilent(err error, msg string) {
	e.silentMode.Store(true)
	e.running.Store(true)
	e.log.Info().Err(err).Msg(msg)
}

// monitorProcess watches for subprocess exit
func (e *Engine) monitorProcess() {
	defer e.wg.Done()

	err := e.cmd.Wait()
	if err != nil && e.running.Load() && !e.silentMode.Swap(true) {
		e.log.Warn().Err(err).Msg("playback backend exited, audio silenced")
	}
}

// monitorMixer silences the engine on pipe errors
func (e *Engine) monitorMixer() {
	defer e.wg.Done()

	select {
	case err := <-e.mixer.Errors():
		if !e.silentMode.Swap(true) {
			e.log.Warn().Err(err).Msg("audio output failed, audio silenced")
		}
	case <-e.mixer.stopChan:
	}
}

// Play queues a cue at the configured volume
func (e *Engine) Play(st core.SoundType) bool {
	if !e.running.Load() || e.silentMode.Load() || e.mixer == nil {
		return false
	}
	return e.mixer.Play(st, e.cfg.Volume)
}

// Enabled reports whether cues will be heard
func (e *Engine) Enabled() bool {
	return e.running.Load() && !e.silentMode.Load()
}

// Stop halts the mixer and backend; safe to call more than once
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	if e.mixer != nil {
		e.mixer.Stop()
	}
	if e.output != nil {
		e.output.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}

	e.wg.Wait()

	if e.mixer != nil {
		played, dropped := e.mixer.Stats()
		e.log.Debug().Uint64("played", played).Uint64("dropped", dropped).Msg("audio stopped")
	}
}
