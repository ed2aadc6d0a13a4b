package modctl

import (
	"fmt"

	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

// Target is the LFO setting a binding drives.
type Target uint8

const (
	TargetFrequency Target = iota + 1
	TargetAmplitude
	TargetWaveform
	TargetMode
	TargetDelay
	TargetRamp
	TargetShapeX
	TargetShapeY

	targetEnd
)

var targetNames = [...]string{
	TargetFrequency: "Frequency",
	TargetAmplitude: "Amplitude",
	TargetWaveform:  "Waveform",
	TargetMode:      "Mode",
	TargetDelay:     "Delay",
	TargetRamp:      "Ramp",
	TargetShapeX:    "ShapeX",
	TargetShapeY:    "ShapeY",
}

func (t Target) Valid() bool { return t >= TargetFrequency && t < targetEnd }

func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
	return targetNames[t]
}

// Discrete reports whether the target selects from a list. Discrete targets
// ignore the binding range.
func (t Target) Discrete() bool {
	return t == TargetWaveform || t == TargetMode
}

// FullRange returns the plain range the LFO model accepts for t.
func (t Target) FullRange() synthdefs.Range[float64] {
	switch t {
	case TargetFrequency:
		return synthdefs.MustRange(synthdefs.LFOMinFrequencyHz, synthdefs.LFOMaxFrequencyHz)
	case TargetDelay:
		return synthdefs.MustRange(0, synthdefs.LFOMaxDelayMSec)
	case TargetRamp:
		return synthdefs.MustRange(0, synthdefs.LFOMaxRampMSec)
	case TargetWaveform:
		return synthdefs.MustRange(0, float64(synthdefs.LFOWaveformCount-1))
	case TargetMode:
		return synthdefs.MustRange(0, float64(synthdefs.LFOModeCount-1))
	}
	return synthdefs.MustRange(0.0, 1.0)
}

// apply writes the plain value v into p. v is already inside the binding
// range.
func (t Target) apply(p *synthdefs.LFOParameters, v float64) {
	switch t {
	case TargetFrequency:
		p.SetFrequencyHz(v)
	case TargetAmplitude:
		p.SetOutputAmplitude(v)
	case TargetDelay:
		p.SetDelayMSec(v)
	case TargetRamp:
		p.SetRampMSec(v)
	case TargetShapeX:
		p.SetWaveShapeX(v)
	case TargetShapeY:
		p.SetWaveShapeY(v)
	}
}
