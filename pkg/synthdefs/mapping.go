package synthdefs

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Rounding selects how a real-valued intermediate becomes an integer.
type Rounding int

const (
	// RoundNearest rounds half away from zero. This is the default for every
	// integer mapper: it keeps stepped modulation centered on the true value.
	RoundNearest Rounding = iota
	// Truncate drops the fraction toward zero, for callers that need the
	// floor-style quantization some MIDI devices use.
	Truncate
)

// String returns the rounding policy name.
func (r Rounding) String() string {
	switch r {
	case RoundNearest:
		return "nearest"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

func (r Rounding) apply(v float64) float64 {
	switch r {
	case Truncate:
		return math.Trunc(v)
	default:
		return math.Round(v)
	}
}

// MapDoubleValue rescales value from [inMin, inMax] to [outMin, outMax].
// The mapping is affine and is not clamped: a value outside the input range
// lands outside the output range. Compose with BoundValue when a bounded
// result is needed. A zero-width input range returns outMin.
func MapDoubleValue(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (value-inMin)/(inMax-inMin)*(outMax-outMin)
}

// MapInteger rescales an integer from one range to another. The input is
// clamped to [inMin, inMax] before mapping so the result always lies between
// outMin and outMax and can never overflow Out. The arithmetic runs in
// float64, which holds every 32-bit operand exactly; 64-bit operands are
// mapped to within float64 precision and stay monotonic.
func MapInteger[In, Out constraints.Integer](value, inMin, inMax In, outMin, outMax Out, rounding Rounding) Out {
	if inMax == inMin {
		return outMin
	}
	lo, hi := inMin, inMax
	if lo > hi {
		lo, hi = hi, lo
	}
	value = BoundValue(value, lo, hi)
	if value == inMin {
		return outMin
	}
	if value == inMax {
		return outMax
	}

	t := (float64(value) - float64(inMin)) / (float64(inMax) - float64(inMin))
	mapped := rounding.apply(float64(outMin) + t*(float64(outMax)-float64(outMin)))

	olo, ohi := outMin, outMax
	if olo > ohi {
		olo, ohi = ohi, olo
	}
	// float64(ohi) may round up past the largest Out for 64-bit types, so
	// the bounds are returned typed and never converted back from float
	switch {
	case !(mapped > float64(olo)):
		return olo
	case mapped >= float64(ohi):
		return ohi
	}
	return Out(mapped)
}

// MapIntValue rescales a signed integer between ranges, rounding to nearest.
func MapIntValue(value, inMin, inMax, outMin, outMax int) int {
	return MapInteger(value, inMin, inMax, outMin, outMax, RoundNearest)
}

// MapUintValue rescales an unsigned integer between ranges, rounding to
// nearest.
func MapUintValue(value, inMin, inMax, outMin, outMax uint32) uint32 {
	return MapInteger(value, inMin, inMax, outMin, outMax, RoundNearest)
}

// MaxBitDepth is the widest quantization MapDoubleToUINT supports.
const MaxBitDepth = 32

// QuantizationMax returns the largest code at the given bit depth, 2^bits-1.
// bits is clamped to [1, 32].
func QuantizationMax(bits uint8) uint32 {
	bits = BoundValue(bits, 1, MaxBitDepth)
	return uint32(uint64(1)<<bits - 1)
}

// MapDoubleToUINT quantizes a unipolar value to an unsigned code at the given
// bit depth: round(x * (2^bits - 1)). x is clamped to [0, 1] first.
func MapDoubleToUINT(x float64, bits uint8) uint32 {
	top := QuantizationMax(bits)
	return uint32(math.Round(BoundValue(x, 0, 1) * float64(top)))
}

// MapUINTToDouble is the inverse of MapDoubleToUINT. Codes above the bit
// depth's maximum are clamped. For every representable code n,
// MapDoubleToUINT(MapUINTToDouble(n, bits), bits) == n.
func MapUINTToDouble(n uint32, bits uint8) float64 {
	top := QuantizationMax(bits)
	return float64(BoundValue(n, 0, top)) / float64(top)
}

// MIDIByteToIndex selects one of count discrete choices from a 7-bit
// controller value, spreading the choices evenly over 0..127. count == 0
// returns 0.
func MIDIByteToIndex(value uint8, count int) int {
	if count <= 1 {
		return 0
	}
	return MapInteger(BoundMIDIValueByte(value), 0, MIDIByteMax, 0, count-1, RoundNearest)
}

// UnipolarToBipolar maps [0, 1] to [-1, 1], clamping first.
func UnipolarToBipolar(u float64) float64 {
	return 2*BoundValue(u, 0, 1) - 1
}

// BipolarToUnipolar maps [-1, 1] to [0, 1], clamping first.
func BipolarToUnipolar(b float64) float64 {
	return (BoundValue(b, -1, 1) + 1) * 0.5
}

// lerpExact interpolates between a and b for t in [0, 1]. It returns a at
// t == 0 and b at t == 1 exactly, and never leaves the span between them.
func lerpExact(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	v := a + t*(b-a)
	if a <= b {
		return BoundValue(v, a, b)
	}
	return BoundValue(v, b, a)
}
