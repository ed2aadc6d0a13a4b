package modctl

import (
	"github.com/justyntemme/synthmap/pkg/framework/param"
	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

// LFOParamIDs names the host parameters that make up one LFO.
type LFOParamIDs struct {
	Waveform  uint32
	Mode      uint32
	Frequency uint32
	Amplitude uint32
	Delay     uint32
	Ramp      uint32
	ShapeX    uint32
	ShapeY    uint32
}

// SequentialLFOParamIDs numbers the eight parameters from base upward.
func SequentialLFOParamIDs(base uint32) LFOParamIDs {
	return LFOParamIDs{
		Waveform:  base,
		Mode:      base + 1,
		Frequency: base + 2,
		Amplitude: base + 3,
		Delay:     base + 4,
		Ramp:      base + 5,
		ShapeX:    base + 6,
		ShapeY:    base + 7,
	}
}

// AddLFOParameters registers the LFO control surface under ids. prefix is
// prepended to every parameter name, e.g. "LFO1 ". Short names carry no
// prefix.
func AddLFOParameters(reg *param.Registry, ids LFOParamIDs, prefix string, defaults synthdefs.LFOParameters) error {
	return reg.Add(
		param.ChoiceFromNames(ids.Waveform, prefix+"Waveform", synthdefs.LFOWaveformNames()).
			ShortName("Wave").Default(float64(defaults.Waveform())).Build(),
		param.ChoiceFromNames(ids.Mode, prefix+"Mode", synthdefs.LFOModeNames()).
			ShortName("Mode").Default(float64(defaults.Mode())).Build(),
		param.RateParameter(ids.Frequency, prefix+"fo",
			synthdefs.LFOMinFrequencyHz, synthdefs.LFOMaxFrequencyHz, defaults.FrequencyHz()).ShortName("fo").Build(),
		param.AmountParameter(ids.Amplitude, prefix+"Amp", defaults.OutputAmplitude()).ShortName("Amp").Build(),
		param.TimeParameter(ids.Delay, prefix+"Delay", 0, synthdefs.LFOMaxDelayMSec, defaults.DelayMSec()).ShortName("Dly").Build(),
		param.TimeParameter(ids.Ramp, prefix+"Ramp", 0, synthdefs.LFOMaxRampMSec, defaults.RampMSec()).ShortName("Ramp").Build(),
		param.AmountParameter(ids.ShapeX, prefix+"Shape X", defaults.WaveShapeX()).ShortName("ShpX").Build(),
		param.AmountParameter(ids.ShapeY, prefix+"Shape Y", defaults.WaveShapeY()).ShortName("ShpY").Build(),
	)
}

// LFOFromRegistry reads the host values under ids on top of base. IDs that
// are not registered leave the base value in place.
func LFOFromRegistry(reg *param.Registry, ids LFOParamIDs, base synthdefs.LFOParameters) synthdefs.LFOParameters {
	p := base
	if w := reg.Get(ids.Waveform); w != nil {
		if wf, err := synthdefs.LFOWaveformFromOrdinal(uint8(synthdefs.BoundValue(w.GetIndex(), 0, synthdefs.LFOWaveformCount-1))); err == nil {
			p.SetWaveform(wf)
		}
	}
	if m := reg.Get(ids.Mode); m != nil {
		if mode, err := synthdefs.LFOModeFromOrdinal(uint8(synthdefs.BoundValue(m.GetIndex(), 0, synthdefs.LFOModeCount-1))); err == nil {
			p.SetMode(mode)
		}
	}
	plain := func(id uint32, set func(*synthdefs.LFOParameters, float64)) {
		if q := reg.Get(id); q != nil {
			set(&p, q.GetPlainValue())
		}
	}
	plain(ids.Frequency, (*synthdefs.LFOParameters).SetFrequencyHz)
	plain(ids.Amplitude, (*synthdefs.LFOParameters).SetOutputAmplitude)
	plain(ids.Delay, (*synthdefs.LFOParameters).SetDelayMSec)
	plain(ids.Ramp, (*synthdefs.LFOParameters).SetRampMSec)
	plain(ids.ShapeX, (*synthdefs.LFOParameters).SetWaveShapeX)
	plain(ids.ShapeY, (*synthdefs.LFOParameters).SetWaveShapeY)
	return p
}

// ApplyRegistry publishes the host values under ids to the controller's
// store. Call it once per block, before routing that block's events.
func (c *Controller) ApplyRegistry(reg *param.Registry, ids LFOParamIDs) synthdefs.LFOParameters {
	return c.store.Update(func(p *synthdefs.LFOParameters) {
		*p = LFOFromRegistry(reg, ids, *p)
	})
}
