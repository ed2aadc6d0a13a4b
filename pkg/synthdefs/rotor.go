package synthdefs

// RotorParameters drive a rotary-speaker style pair of LFOs: one rate and one
// depth per rotor.
type RotorParameters struct {
	Rate1  float64 // Hz
	Rate2  float64 // Hz
	Depth1 float64 // unipolar
	Depth2 float64 // unipolar
}

// LFOs derives the two rotor LFOs from base. Rate becomes frequency and depth
// becomes output amplitude, both clamped by the LFO setters; every other
// setting is inherited from base.
func (r RotorParameters) LFOs(base LFOParameters) (lfo1, lfo2 LFOParameters) {
	lfo1, lfo2 = base, base

	lfo1.SetFrequencyHz(r.Rate1)
	lfo1.SetOutputAmplitude(r.Depth1)

	lfo2.SetFrequencyHz(r.Rate2)
	lfo2.SetOutputAmplitude(r.Depth2)
	return lfo1, lfo2
}
