package synthdefs

import "math"

// Pitch bend and master tuning ranges, in semitones.
const (
	PitchBendMinSemitones     = 1.0
	PitchBendMaxSemitones     = 24.0
	PitchBendDefaultSemitones = 7.0
	MasterTuneMaxSemitones    = 12.0

	centsPerSemitone = 100
)

// PitchBendRange is the bend sensitivity, split the way the MIDI RPN 0
// message carries it: whole semitones plus cents.
type PitchBendRange struct {
	coarse    uint8
	fineCents uint8
}

// NewPitchBendRange splits semitones, clamped to [1, 24], into coarse
// semitones and fine cents. Cents round to nearest.
func NewPitchBendRange(semitones float64) PitchBendRange {
	coarse, cents := splitCents(BoundValue(semitones, PitchBendMinSemitones, PitchBendMaxSemitones))
	return PitchBendRange{coarse: uint8(coarse), fineCents: uint8(cents)}
}

// DefaultPitchBendRange returns a range of 7 semitones.
func DefaultPitchBendRange() PitchBendRange {
	return NewPitchBendRange(PitchBendDefaultSemitones)
}

// Coarse returns the whole-semitone part.
func (r PitchBendRange) Coarse() uint8 { return r.coarse }

// FineCents returns the cents part, 0..99.
func (r PitchBendRange) FineCents() uint8 { return r.fineCents }

// Range returns the full bend range in semitones. The zero value reads as
// the 1 semitone minimum.
func (r PitchBendRange) Range() float64 {
	st := float64(r.coarse) + float64(r.fineCents)/centsPerSemitone
	return BoundValue(st, PitchBendMinSemitones, PitchBendMaxSemitones)
}

// Semitones scales a bipolar bend amount, as produced by
// MIDIPitchBendToBipolar, to a pitch offset. A centered bend is exactly 0.
func (r PitchBendRange) Semitones(bipolar float64) float64 {
	return BoundValue(bipolar, -1, 1) * r.Range()
}

// MasterTuning is a global transpose split into whole semitones and cents.
type MasterTuning struct {
	coarse    int8
	fineCents int8
}

// NewMasterTuning splits semitones, clamped to [-12, 12], into coarse
// semitones and fine cents carrying the same sign.
func NewMasterTuning(semitones float64) MasterTuning {
	coarse, cents := splitCents(BoundValue(semitones, -MasterTuneMaxSemitones, MasterTuneMaxSemitones))
	return MasterTuning{coarse: int8(coarse), fineCents: int8(cents)}
}

// Coarse returns the whole-semitone part.
func (t MasterTuning) Coarse() int8 { return t.coarse }

// FineCents returns the cents part, -99..99.
func (t MasterTuning) FineCents() int8 { return t.fineCents }

// Semitones returns the full transpose in semitones.
func (t MasterTuning) Semitones() float64 {
	return float64(t.coarse) + float64(t.fineCents)/centsPerSemitone
}

// SemitonesToFrequencyRatio converts a pitch offset to a frequency
// multiplier. An offset of 0 returns exactly 1.
func SemitonesToFrequencyRatio(semitones float64) float64 {
	if semitones == 0 {
		return 1
	}
	return math.Exp2(semitones / 12)
}

// PitchOffset combines a bend amount with the master tuning into one
// frequency multiplier for the oscillator.
func PitchOffset(bipolarBend float64, bend PitchBendRange, tuning MasterTuning) float64 {
	return SemitonesToFrequencyRatio(bend.Semitones(bipolarBend) + tuning.Semitones())
}

// splitCents splits a semitone value into whole semitones (toward zero) and
// rounded cents with the same sign, carrying 100 cents into the next semitone.
func splitCents(semitones float64) (coarse, cents int) {
	coarse = int(math.Trunc(semitones))
	cents = int(math.Round((semitones - float64(coarse)) * centsPerSemitone))
	if cents >= centsPerSemitone {
		coarse++
		cents -= centsPerSemitone
	} else if cents <= -centsPerSemitone {
		coarse--
		cents += centsPerSemitone
	}
	return coarse, cents
}
