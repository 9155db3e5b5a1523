package audio

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ironrift/config"
	"github.com/lixenwraith/ironrift/core"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestEngine_DisabledIsSilent(t *testing.T) {
	e := NewEngine(config.AudioConfig{Enabled: false, Volume: 0.5}, zerolog.Nop())
	require.NoError(t, e.Start())
	defer e.Stop()

	assert.False(t, e.Enabled())
	assert.False(t, e.Play(core.SoundShot))
	assert.ErrorIs(t, e.Start(), ErrRunning)
}

func TestEngine_PlaysToOutput(t *testing.T) {
	r, w := io.Pipe()
	e := NewEngine(config.AudioConfig{Enabled: true, Volume: 1}, zerolog.Nop())
	require.NoError(t, e.StartOutput(w))

	got := make(chan int, 1)
	go func() {
		buf := make([]byte, 4096)
		n, _ := io.ReadAtLeast(r, buf, 1)
		got <- n
	}()

	assert.True(t, e.Enabled())
	assert.True(t, e.Play(core.SoundHit))

	select {
	case n := <-got:
		assert.Positive(t, n)
	case <-time.After(2 * time.Second):
		t.Fatal("mixer wrote nothing")
	}

	e.Stop()
	e.Stop()
	assert.False(t, e.Play(core.SoundHit))
}

func TestEngine_OutputFailureSilences(t *testing.T) {
	e := NewEngine(config.AudioConfig{Enabled: true, Volume: 1}, zerolog.Nop())
	require.NoError(t, e.StartOutput(nopWriteCloser{&captureWriter{err: errors.New("gone")}}))
	defer e.Stop()

	assert.Eventually(t, func() bool { return !e.Enabled() }, 2*time.Second, 10*time.Millisecond)
}

func TestDetector(t *testing.T) {
	only := func(names ...string) func(string) (string, error) {
		return func(name string) (string, error) {
			for _, n := range names {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		}
	}
	noStat := func(string) (os.FileInfo, error) { return nil, os.ErrNotExist }
	okStat := func(string) (os.FileInfo, error) { return nil, nil }

	tests := []struct {
		name     string
		detector Detector
		want     BackendType
		wantErr  error
	}{
		{"prefers pulse", Detector{LookPath: only("aplay", "pacat"), Stat: noStat, GOOS: "linux"}, BackendPulse, nil},
		{"falls back to alsa", Detector{LookPath: only("aplay"), Stat: noStat, GOOS: "linux"}, BackendALSA, nil},
		{"oss on freebsd", Detector{LookPath: only(), Stat: okStat, GOOS: "freebsd"}, BackendOSS, nil},
		{"nothing", Detector{LookPath: only(), Stat: okStat, GOOS: "linux"}, 0, ErrNoAudioBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.detector.Detect()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Type)
			assert.NotEmpty(t, b.Path)
		})
	}
}
