package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ironrift/core"
	"github.com/lixenwraith/ironrift/parameter"
	"github.com/lixenwraith/ironrift/vmath"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave gliding linearly from start to end frequency
type oscillator struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	noise      *vmath.FastRand
}

// NewOscillator creates a fixed frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType) beep.Streamer {
	return NewGlide(freq, freq, duration, wave)
}

// NewGlide creates an oscillator sweeping from start to end over duration
// Noise is seeded so every rendering of a cue is identical
func NewGlide(start, end float64, duration time.Duration, wave WaveType) beep.Streamer {
	return &oscillator{
		start:    start,
		end:      end,
		duration: sampleRate.N(duration),
		wave:     wave,
		noise:    vmath.NewFastRand(0x5eed),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*t
		o.phase += freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	att := sampleRate.N(attack)
	rel := sampleRate.N(release)
	start := max(total-rel, att)

	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		switch {
		case e.position < e.attack && e.attack > 0:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.release > 0:
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateShotSound is a short falling square chirp
func CreateShotSound() beep.Streamer {
	osc := NewGlide(parameter.ShotStartFreq, parameter.ShotEndFreq, parameter.ShotSoundDuration, WaveSquare)
	shaped := NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease)
	return newVolume(shaped, 0.35)
}

// CreateHitSound layers a noise crack over a low thump
func CreateHitSound() beep.Streamer {
	crack := NewEnvelope(
		NewOscillator(0, parameter.HitSoundDuration, WaveNoise),
		parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease/2,
	)
	thump := NewEnvelope(
		NewGlide(parameter.HitThumpFreq, parameter.HitThumpFreq/2, parameter.HitSoundDuration, WaveSaw),
		parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease,
	)
	return beep.Mix(newVolume(crack, 0.4), newVolume(thump, 0.6))
}

// CreateDeathSound is two descending saw notes
func CreateDeathSound() beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, parameter.DeathNoteDuration, WaveSaw)
		return NewEnvelope(osc, parameter.DeathNoteDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease)
	}
	return newVolume(beep.Seq(note(parameter.DeathNote1Freq), note(parameter.DeathNote2Freq)), 0.5)
}

// CreateDefeatSound is a falling minor triad, last note held
func CreateDefeatSound() beep.Streamer {
	note := func(freq float64, d, release time.Duration) beep.Streamer {
		fund := NewOscillator(freq, d, WaveSine)
		over := NewOscillator(freq*2, d, WaveSine)
		mixed := beep.Mix(newVolume(fund, 0.75), newVolume(over, 0.25))
		return NewEnvelope(mixed, d, parameter.DefeatSoundAttack, release)
	}
	return newVolume(beep.Seq(
		note(parameter.DefeatNote1Freq, parameter.DefeatNoteDuration, parameter.DefeatSoundRelease),
		note(parameter.DefeatNote2Freq, parameter.DefeatNoteDuration, parameter.DefeatSoundRelease),
		note(parameter.DefeatNote3Freq, parameter.DefeatLastNoteDuration, parameter.DefeatLastNoteRelease),
	), 0.7)
}

// CueStreamer returns a fresh streamer for the sound type, nil for unknown types
func CueStreamer(st core.SoundType) beep.Streamer {
	switch st {
	case core.SoundShot:
		return CreateShotSound()
	case core.SoundHit:
		return CreateHitSound()
	case core.SoundDeath:
		return CreateDeathSound()
	case core.SoundDefeat:
		return CreateDefeatSound()
	default:
		return nil
	}
}

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// render drains a streamer into a mono buffer (left channel)
func render(s beep.Streamer) floatBuffer {
	if s == nil {
		return nil
	}
	chunk := make([][2]float64, 512)
	var out floatBuffer
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = append(out, chunk[i][0])
		}
		if !ok {
			return out
		}
	}
}
