package synthdefs

import "golang.org/x/exp/constraints"

// Number is any integer or floating point type the mappers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// MIDI wire ranges.
const (
	MIDIByteMax     = 127
	MIDI14BitMax    = 16383
	MIDI14BitCenter = 8192
	MIDIChannelMax  = 15

	midiDataMask = 0x7F
)

// BoundValue clamps value to [min, max]. NaN clamps to min.
//
// min <= max is a precondition. When it does not hold the result is min for
// values below min and max otherwise; use NewRange to validate bounds that
// come from configuration.
func BoundValue[T Number](value, min, max T) T {
	// written as !(>=) so NaN falls through to min
	if !(value >= min) {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// BoundIntValue clamps an integer to [min, max]. Same precondition as
// BoundValue.
func BoundIntValue[T constraints.Integer](value, min, max T) T {
	return BoundValue(value, min, max)
}

// BoundMIDIValueByte clamps raw to the 7-bit MIDI range 0..127.
func BoundMIDIValueByte[T constraints.Integer](raw T) uint8 {
	if raw < 0 {
		return 0
	}
	if raw > MIDIByteMax {
		return MIDIByteMax
	}
	return uint8(raw)
}

// BoundMIDIValueDoubleByte clamps each byte to 0..127 and combines them as
// MSB*128 + LSB.
func BoundMIDIValueDoubleByte[T constraints.Integer](msb, lsb T) uint16 {
	return uint16(BoundMIDIValueByte(msb))<<7 | uint16(BoundMIDIValueByte(lsb))
}

// BoundMIDI14Bit clamps raw to 0..16383.
func BoundMIDI14Bit[T constraints.Integer](raw T) uint16 {
	if raw < 0 {
		return 0
	}
	// compare in uint64 so narrow T never needs to represent 16383
	if uint64(raw) > MIDI14BitMax {
		return MIDI14BitMax
	}
	return uint16(raw)
}

// SplitMIDI14 decomposes a 14-bit value into its MSB and LSB. Values above
// 16383 are clamped first.
func SplitMIDI14(value uint16) (msb, lsb uint8) {
	value = BoundMIDI14Bit(value)
	return uint8(value >> 7 & midiDataMask), uint8(value & midiDataMask)
}

// BoundMIDIChannel clamps a channel number to 0..15.
func BoundMIDIChannel[T constraints.Integer](raw T) uint8 {
	if raw < 0 {
		return 0
	}
	if raw > MIDIChannelMax {
		return MIDIChannelMax
	}
	return uint8(raw)
}
