package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/parameter"
)

func TestCues_RenderLengths(t *testing.T) {
	tests := []struct {
		sound core.SoundType
		want  float64 // seconds
	}{
		{core.SoundShot, parameter.ShotSoundDuration.Seconds()},
		{core.SoundHit, parameter.HitSoundDuration.Seconds()},
		{core.SoundDeath, 2 * parameter.DeathNoteDuration.Seconds()},
		{core.SoundDefeat, (2*parameter.DefeatNoteDuration + parameter.DefeatLastNoteDuration).Seconds()},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			buf := render(CueStreamer(tt.sound))
			require.NotEmpty(t, buf)
			assert.InDelta(t, tt.want*parameter.AudioSampleRate, float64(len(buf)), 4)

			peak := 0.0
			for _, v := range buf {
				peak = math.Max(peak, math.Abs(v))
			}
			assert.Greater(t, peak, 0.01, "audible")
			assert.LessOrEqual(t, peak, 1.0, "unity gain or below")
		})
	}
}

func TestCues_Deterministic(t *testing.T) {
	assert.Equal(t, render(CreateHitSound()), render(CreateHitSound()))
}

func TestCues_Unknown(t *testing.T) {
	assert.Nil(t, CueStreamer(core.SoundTypeCount))
	assert.Nil(t, render(nil))
}

func TestEnvelope_Edges(t *testing.T) {
	buf := render(NewEnvelope(NewOscillator(0, parameter.ShotSoundDuration, WaveSquare), parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease))
	require.NotEmpty(t, buf)

	assert.Zero(t, buf[0], "attack starts silent")
	assert.InDelta(t, 0, buf[len(buf)-1], 0.01, "release ends near silence")
}

func TestCache_RendersOnce(t *testing.T) {
	c := newSoundCache()
	a := c.get(core.SoundDeath)
	b := c.get(core.SoundDeath)
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0], "same backing buffer")
	assert.Nil(t, c.get(core.SoundType(-1)))
}
