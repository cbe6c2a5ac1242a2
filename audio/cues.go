package audio

import (
	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/core"
)

// cueVoices maps one-shot cues to their synthesis parameters
var cueVoices = map[core.Cue]Voice{
	core.CueWalkStep: {
		Wave:     WaveTriangle,
		FromHz:   constants.WalkSoundFromHz,
		ToHz:     constants.WalkSoundToHz,
		Ramp:     RampExponential,
		Duration: constants.WalkSoundDuration,
		Gain:     constants.WalkSoundGain,
	},
	core.CueAttack: {
		Wave:     WaveSaw,
		FromHz:   constants.AttackSoundFromHz,
		ToHz:     constants.AttackSoundToHz,
		Ramp:     RampExponential,
		Duration: constants.AttackSoundDuration,
		Gain:     constants.AttackSoundGain,
	},
	core.CueHit: {
		Wave:     WaveSquare,
		FromHz:   constants.HitSoundFromHz,
		ToHz:     constants.HitSoundToHz,
		Ramp:     RampLinear,
		Duration: constants.HitSoundDuration,
		Gain:     constants.HitSoundGain,
	},
}

// VoiceFor returns the synthesis parameters of a one-shot cue
func VoiceFor(c core.Cue) (Voice, bool) {
	v, ok := cueVoices[c]
	return v, ok
}
