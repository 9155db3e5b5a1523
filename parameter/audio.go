package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioBufferSamples is frames per mixer tick at 44.1kHz
	AudioBufferSamples = (AudioSampleRate * 50) / 1000 // 2205

	// AudioQueueSize bounds pending play requests; extra requests are dropped
	AudioQueueSize = 32

	// AudioMasterVolume is the default output gain
	AudioMasterVolume = 0.6
)

// Shot: bright square chirp falling in pitch
const (
	ShotSoundDuration = 90 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 60 * time.Millisecond
	ShotStartFreq     = 1400.0 // Hz
	ShotEndFreq       = 500.0  // Hz
)

// Hit: noise crack over a low saw thump
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 1 * time.Millisecond
	HitSoundRelease  = 100 * time.Millisecond
	HitThumpFreq     = 90.0 // Hz
)

// Death: two descending saw notes
const (
	DeathNoteDuration = 140 * time.Millisecond
	DeathSoundAttack  = 5 * time.Millisecond
	DeathSoundRelease = 90 * time.Millisecond
	DeathNote1Freq    = 330.0 // Hz (E4)
	DeathNote2Freq    = 220.0 // Hz (A3)
)

// Defeat: three falling sine notes, the last held
const (
	DefeatNoteDuration     = 180 * time.Millisecond
	DefeatLastNoteDuration = 600 * time.Millisecond
	DefeatSoundAttack      = 10 * time.Millisecond
	DefeatSoundRelease     = 120 * time.Millisecond
	DefeatLastNoteRelease  = 450 * time.Millisecond
	DefeatNote1Freq        = 392.0 // Hz (G4)
	DefeatNote2Freq        = 311.1 // Hz (Eb4)
	DefeatNote3Freq        = 261.6 // Hz (C4)
)
