package constants

import "time"

// Audio mixer
const (
	AudioSampleRate   = 44100
	AudioBufferSize   = 100 * time.Millisecond
	MasterGain        = 0.3
	EnvelopeFloor     = 0.01
	DefaultVolumePerc = 100
)

// Walk step: triangle sweep
const (
	WalkSoundDuration = 100 * time.Millisecond
	WalkSoundFromHz   = 100.0
	WalkSoundToHz     = 50.0
	WalkSoundGain     = 0.1
)

// Attack swing: sawtooth sweep
const (
	AttackSoundDuration = 200 * time.Millisecond
	AttackSoundFromHz   = 400.0
	AttackSoundToHz     = 100.0
	AttackSoundGain     = 0.2
)

// Hit taken: square wave, linear sweep
const (
	HitSoundDuration = 100 * time.Millisecond
	HitSoundFromHz   = 150.0
	HitSoundToHz     = 100.0
	HitSoundGain     = 0.2
)

// Background drones
const (
	DroneLowHz  = 110.0
	DroneHighHz = 164.81
	DroneGain   = 0.05
)
