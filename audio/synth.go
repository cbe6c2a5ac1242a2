package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pixel-survivor/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// Ramp selects how the pitch moves between the start and end frequency
type Ramp int

const (
	RampExponential Ramp = iota
	RampLinear
)

// Voice describes a one-shot swept tone with an exponential decay to EnvelopeFloor
type Voice struct {
	Wave     WaveType
	FromHz   float64
	ToHz     float64
	Ramp     Ramp
	Duration time.Duration
	Gain     float64
}

func waveSample(w WaveType, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// sweep renders a Voice
type sweep struct {
	v        Voice
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewSweep creates a finite streamer for v
func NewSweep(v Voice, rate beep.SampleRate) beep.Streamer {
	return &sweep{v: v, rate: rate, total: rate.N(v.Duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.total {
			return i, true
		}
		t := float64(s.position) / float64(s.total)

		var freq float64
		if s.v.Ramp == RampLinear {
			freq = s.v.FromHz + (s.v.ToHz-s.v.FromHz)*t
		} else {
			freq = s.v.FromHz * math.Pow(s.v.ToHz/s.v.FromHz, t)
		}

		// Gain decays exponentially from its start value to the floor
		amp := s.v.Gain
		if s.v.Gain > constants.EnvelopeFloor {
			amp = s.v.Gain * math.Pow(constants.EnvelopeFloor/s.v.Gain, t)
		}

		val := amp * waveSample(s.v.Wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// NewDrone creates an infinite sine at freq scaled to gain
func NewDrone(freq, gain float64, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	// effects.Gain multiplies by 1+Gain
	return &effects.Gain{Streamer: tone, Gain: gain - 1}
}
