package synthdefs

import "math"

// Scale factors for the 14-bit domain.
const (
	midi14Max      = float64(MIDI14BitMax)
	midi14Center   = float64(MIDI14BitCenter)
	midi14UpperLen = midi14Max - midi14Center // 8191 steps above center
)

// MIDI14BitToBipolar maps 0..16383 onto [-1, 1) with one uniform step of
// 1/8192. 0 maps to -1, 8192 to exactly 0 and 16383 to 1-1/8192. Values
// above 16383 are clamped.
func MIDI14BitToBipolar(value uint16) float64 {
	return (float64(BoundMIDI14Bit(value)) - midi14Center) / midi14Center
}

// MIDIPitchBendToBipolar converts a pitch bend message's data bytes, given in
// wire order (LSB first), to a bipolar bend amount.
//
// Unlike MIDI14BitToBipolar, the two halves are scaled separately so both
// extremes are reached: 0 maps to -1, 8192 to exactly 0 and 16383 to +1.
// A bend wheel at rest therefore produces no detuning, and full upward travel
// reaches the configured bend range.
func MIDIPitchBendToBipolar(lsb, msb uint8) float64 {
	return MIDIPitchBendValueToBipolar(BoundMIDIValueDoubleByte(msb, lsb))
}

// MIDIPitchBendValueToBipolar is MIDIPitchBendToBipolar for an already
// combined 14-bit value.
func MIDIPitchBendValueToBipolar(value uint16) float64 {
	v := float64(BoundMIDI14Bit(value)) - midi14Center
	if v < 0 {
		return v / midi14Center
	}
	return v / midi14UpperLen
}

// MIDI14BitToUnipolarDouble maps 0..16383 onto [0, 1]. Both ends are exact.
func MIDI14BitToUnipolarDouble(value uint16) float64 {
	return float64(BoundMIDI14Bit(value)) / midi14Max
}

// MIDI14BitToUnipolarInt maps 0..16383 onto the unsigned range [min, max],
// rounding to nearest.
func MIDI14BitToUnipolarInt(value uint16, min, max uint32) uint32 {
	return MapInteger(uint32(BoundMIDI14Bit(value)), 0, MIDI14BitMax, min, max, RoundNearest)
}

// MIDI14BitToDouble maps 0..16383 onto [min, max]. The result is exactly min
// at 0 and exactly max at 16383, and never leaves the span between them.
func MIDI14BitToDouble(value uint16, min, max float64) float64 {
	return lerpExact(min, max, MIDI14BitToUnipolarDouble(value))
}

// UnipolarToMIDI14Bit maps an unsigned integer in [min, max] onto 0..16383.
// value is clamped to the range first.
func UnipolarToMIDI14Bit(value, min, max uint32) uint16 {
	return MapInteger(value, min, max, uint16(0), uint16(MIDI14BitMax), RoundNearest)
}

// BipolarIntToMIDI14Bit maps a signed integer in [min, max] onto 0..16383.
// A symmetric range such as [-8192, 8191] maps one-to-one.
func BipolarIntToMIDI14Bit(value, min, max int32) uint16 {
	return MapInteger(value, min, max, uint16(0), uint16(MIDI14BitMax), RoundNearest)
}

// UnipolarDoubleToMIDI14Bit is the inverse of MIDI14BitToUnipolarDouble.
// u is clamped to [0, 1]; NaN maps to 0.
func UnipolarDoubleToMIDI14Bit(u float64) uint16 {
	return uint16(math.Round(BoundValue(u, 0, 1) * midi14Max))
}

// BipolarDoubleToMIDI14Bit is the inverse of MIDI14BitToBipolar. b is clamped
// to [-1, 1]; values that would land above 16383 are clamped there.
func BipolarDoubleToMIDI14Bit(b float64) uint16 {
	v := math.Round(BoundValue(b, -1, 1)*midi14Center + midi14Center)
	return uint16(BoundValue(v, 0, midi14Max))
}

// BipolarToMIDIPitchBend is the inverse of MIDIPitchBendValueToBipolar.
func BipolarToMIDIPitchBend(b float64) uint16 {
	b = BoundValue(b, -1, 1)
	if b < 0 {
		return uint16(math.Round(midi14Center + b*midi14Center))
	}
	return uint16(math.Round(midi14Center + b*midi14UpperLen))
}
