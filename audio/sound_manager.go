package audio

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
	"github.com/lixenwraith/pixel-survivor/status"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager synthesizes game cues on the speaker
// Every method is safe without an audio device; cues are dropped in silent mode
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	bgm         *beep.Ctrl
	enabled     bool
	initialized bool
	muted       bool
	volumePerc  int
	logger      zerolog.Logger

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
	statMuted   *atomic.Bool
}

// NewSoundManager creates a manager; enabled false keeps it silent for its lifetime
func NewSoundManager(enabled bool, volumePerc int, logger zerolog.Logger) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:   mixer,
		master:  &effects.Volume{Streamer: mixer, Base: 2},
		enabled: enabled,
		logger:  logger,
	}
	sm.setVolumeLocked(volumePerc)
	return sm
}

// SetMetrics caches registry pointers
func (sm *SoundManager) SetMetrics(reg *status.Registry) {
	if reg == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.statPlayed = reg.Ints.Get("audio.played")
	sm.statDropped = reg.Ints.Get("audio.dropped")
	sm.statMuted = reg.Bools.Get("audio.muted")
	sm.statMuted.Store(sm.muted)
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferSize)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play implements engine.AudioPlayer
func (sm *SoundManager) Play(c core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	switch c {
	case core.CueBackgroundStart:
		sm.startBackgroundLocked()
		return
	case core.CueBackgroundStop:
		sm.stopBackgroundLocked()
		return
	}

	v, ok := cueVoices[c]
	if !ok || !sm.initialized || sm.muted {
		if sm.statDropped != nil {
			sm.statDropped.Add(1)
		}
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewSweep(v, sampleRate))
	speaker.Unlock()

	if sm.statPlayed != nil {
		sm.statPlayed.Add(1)
	}
}

func (sm *SoundManager) startBackgroundLocked() {
	if !sm.initialized || sm.bgm != nil {
		return
	}
	sm.bgm = &beep.Ctrl{Streamer: beep.Mix(
		NewDrone(constants.DroneLowHz, constants.DroneGain, sampleRate),
		NewDrone(constants.DroneHighHz, constants.DroneGain, sampleRate),
	)}

	speaker.Lock()
	sm.mixer.Add(sm.bgm)
	speaker.Unlock()
}

func (sm *SoundManager) stopBackgroundLocked() {
	if sm.bgm == nil {
		return
	}
	// A Ctrl without a streamer reports drained and the mixer drops it
	speaker.Lock()
	sm.bgm.Streamer = nil
	speaker.Unlock()
	sm.bgm = nil
}

// BackgroundPlaying reports whether the drone loop is active
func (sm *SoundManager) BackgroundPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.bgm != nil
}

// ToggleMute flips the master mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.applyMasterLocked()
	if sm.statMuted != nil {
		sm.statMuted.Store(sm.muted)
	}
	sm.logger.Debug().Bool("muted", sm.muted).Msg("audio mute toggled")
	return sm.muted
}

// IsMuted reports the master mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets the output level as a percentage of the master gain
func (sm *SoundManager) SetVolume(perc int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setVolumeLocked(perc)
}

func (sm *SoundManager) setVolumeLocked(perc int) {
	sm.volumePerc = max(0, min(100, perc))
	sm.applyMasterLocked()
}

func (sm *SoundManager) applyMasterLocked() {
	silent, vol := masterLevel(sm.volumePerc, sm.muted)
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = silent
	sm.master.Volume = vol
}

// masterLevel converts a volume percentage into effects.Volume settings with base 2
func masterLevel(perc int, muted bool) (silent bool, volume float64) {
	if muted || perc <= 0 {
		return true, 0
	}
	return false, math.Log2(constants.MasterGain * float64(perc) / 100)
}

// Close stops all sounds and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopBackgroundLocked()

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Name implements service.Service
func (sm *SoundManager) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string {
	return nil
}

// Init implements service.Service
// A missing audio device degrades to silent mode instead of failing startup
func (sm *SoundManager) Init() error {
	if err := sm.Initialize(); err != nil {
		sm.logger.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	return nil
}

// Start implements service.Service
func (sm *SoundManager) Start() error {
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Close()
	return nil
}
