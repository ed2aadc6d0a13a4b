package synthdefs

import (
	"errors"
	"fmt"
	"strings"
)

// LFO parameter ranges.
const (
	LFOMinFrequencyHz     = 0.02
	LFOMaxFrequencyHz     = 20.0
	LFODefaultFrequencyHz = 2.0
	LFOMaxDelayMSec       = 2000.0
	LFOMaxRampMSec        = 2000.0
)

var (
	// ErrUnknownWaveform is returned when a name or ordinal is not an LFOWaveform.
	ErrUnknownWaveform = errors.New("synthdefs: unknown LFO waveform")
	// ErrUnknownMode is returned when a name or ordinal is not an LFOMode.
	ErrUnknownMode = errors.New("synthdefs: unknown LFO mode")
)

// LFOWaveform selects the modulation shape. Ordinals are stable and used for
// serialization.
type LFOWaveform uint8

const (
	LFOTriangle LFOWaveform = iota
	LFOSin
	LFOSaw
	LFORSH     // random sample and hold
	LFOQRSH    // quasi-random sample and hold
	LFONoise   // random noise
	LFOQRNoise // quasi-random noise

	lfoWaveformCount
)

// LFOWaveformCount is the number of LFOWaveform values.
const LFOWaveformCount = int(lfoWaveformCount)

var lfoWaveformNames = [LFOWaveformCount]string{
	"Triangle", "Sin", "Saw", "RSH", "QRSH", "Noise", "QRNoise",
}

// Valid reports whether w is a known waveform.
func (w LFOWaveform) Valid() bool { return w < lfoWaveformCount }

func (w LFOWaveform) String() string {
	if !w.Valid() {
		return fmt.Sprintf("LFOWaveform(%d)", uint8(w))
	}
	return lfoWaveformNames[w]
}

// IsRandom reports whether the waveform is driven by a noise source rather
// than the phase counter.
func (w LFOWaveform) IsRandom() bool {
	switch w {
	case LFORSH, LFOQRSH, LFONoise, LFOQRNoise:
		return true
	case LFOTriangle, LFOSin, LFOSaw:
		return false
	default:
		return false
	}
}

// LFOWaveformFromOrdinal validates a serialized ordinal.
func LFOWaveformFromOrdinal(n uint8) (LFOWaveform, error) {
	w := LFOWaveform(n)
	if !w.Valid() {
		return 0, fmt.Errorf("%w: ordinal %d", ErrUnknownWaveform, n)
	}
	return w, nil
}

// ParseLFOWaveform looks a waveform up by name, ignoring case.
func ParseLFOWaveform(s string) (LFOWaveform, error) {
	s = strings.TrimSpace(s)
	for i, name := range lfoWaveformNames {
		if strings.EqualFold(s, name) {
			return LFOWaveform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWaveform, s)
}

// LFOWaveformNames returns the display names in ordinal order.
func LFOWaveformNames() []string {
	names := make([]string, LFOWaveformCount)
	copy(names, lfoWaveformNames[:])
	return names
}

// LFOMode controls how the LFO reacts to notes.
type LFOMode uint8

const (
	// LFOSync restarts the LFO on every note on.
	LFOSync LFOMode = iota
	// LFOOneShot runs a single cycle after each note on.
	LFOOneShot
	// LFOFreeRun keeps running after the first note on.
	LFOFreeRun

	lfoModeCount
)

// LFOModeCount is the number of LFOMode values.
const LFOModeCount = int(lfoModeCount)

var lfoModeNames = [LFOModeCount]string{"Sync", "One Shot", "Free Run"}

// Valid reports whether m is a known mode.
func (m LFOMode) Valid() bool { return m < lfoModeCount }

func (m LFOMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("LFOMode(%d)", uint8(m))
	}
	return lfoModeNames[m]
}

// RestartsOnNote reports whether a note on resets the LFO phase.
func (m LFOMode) RestartsOnNote() bool {
	switch m {
	case LFOSync, LFOOneShot:
		return true
	case LFOFreeRun:
		return false
	default:
		return false
	}
}

// LFOModeFromOrdinal validates a serialized ordinal.
func LFOModeFromOrdinal(n uint8) (LFOMode, error) {
	m := LFOMode(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: ordinal %d", ErrUnknownMode, n)
	}
	return m, nil
}

// ParseLFOMode looks a mode up by name, ignoring case and spaces.
func ParseLFOMode(s string) (LFOMode, error) {
	key := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	for i, name := range lfoModeNames {
		if strings.EqualFold(key, strings.ReplaceAll(name, " ", "")) {
			return LFOMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// LFOModeNames returns the display names in ordinal order.
func LFOModeNames() []string {
	names := make([]string, LFOModeCount)
	copy(names, lfoModeNames[:])
	return names
}

// LFOOutput indexes the output slots an LFO publishes each tick.
type LFOOutput int

const (
	LFONormalOutput LFOOutput = iota
	LFONormalOutputInverted
	LFOQuadPhaseOutput
	LFOQuadPhaseOutputInverted
	LFOUnipolarOutputFromMax // inverted envelope shape, max -> max
	LFOUnipolarOutputFromMin // envelope shape, 0 -> max

	LFOOutputCount
)

// LFOParameters is a complete, in-range set of LFO settings.
//
// It is a plain value: assignment copies it, and copies never share
// state. Fields are written only through the setters, which clamp, so no
// instance ever holds an out-of-range value. The zero value is valid: a
// silent triangle LFO in sync mode at the minimum rate.
//
// The zero value stores a frequency of 0 that reads as LFOMinFrequencyHz,
// so == compares stored fields and can report two sets that read the same
// as different. Use Equal to compare what readers observe.
type LFOParameters struct {
	waveform        LFOWaveform
	mode            LFOMode
	frequencyHz     float64
	outputAmplitude float64
	delayMSec       float64
	rampMSec        float64
	waveShapeX      float64
	waveShapeY      float64
}

// DefaultLFOParameters returns a silent 2 Hz triangle in sync mode.
func DefaultLFOParameters() LFOParameters {
	return LFOParameters{
		waveform:    LFOTriangle,
		mode:        LFOSync,
		frequencyHz: LFODefaultFrequencyHz,
	}
}

// NewLFOParameters builds a parameter set from the four core settings. Each
// value is clamped; an unknown waveform or mode keeps the default.
func NewLFOParameters(waveform LFOWaveform, mode LFOMode, frequencyHz, amplitude float64) LFOParameters {
	p := DefaultLFOParameters()
	p.SetWaveform(waveform)
	p.SetMode(mode)
	p.SetFrequencyHz(frequencyHz)
	p.SetOutputAmplitude(amplitude)
	return p
}

// Waveform returns the modulation shape.
func (p LFOParameters) Waveform() LFOWaveform { return p.waveform }

// Mode returns the note behaviour.
func (p LFOParameters) Mode() LFOMode { return p.mode }

// FrequencyHz returns the rate in Hz, always within
// [LFOMinFrequencyHz, LFOMaxFrequencyHz].
func (p LFOParameters) FrequencyHz() float64 {
	return BoundValue(p.frequencyHz, LFOMinFrequencyHz, LFOMaxFrequencyHz)
}

// OutputAmplitude returns the unipolar output level.
func (p LFOParameters) OutputAmplitude() float64 { return p.outputAmplitude }

// DelayMSec returns the onset delay after note on.
func (p LFOParameters) DelayMSec() float64 { return p.delayMSec }

// RampMSec returns the fade-in time after the delay.
func (p LFOParameters) RampMSec() float64 { return p.rampMSec }

// WaveShapeX returns the start-phase shaping control in [0, 1].
func (p LFOParameters) WaveShapeX() float64 { return p.waveShapeX }

// WaveShapeY returns the secondary shaping control in [0, 1].
func (p LFOParameters) WaveShapeY() float64 { return p.waveShapeY }

// SetWaveform sets the shape. Unknown values are ignored and false is
// returned.
func (p *LFOParameters) SetWaveform(w LFOWaveform) bool {
	if !w.Valid() {
		return false
	}
	p.waveform = w
	return true
}

// SetMode sets the note behaviour. Unknown values are ignored and false is
// returned.
func (p *LFOParameters) SetMode(m LFOMode) bool {
	if !m.Valid() {
		return false
	}
	p.mode = m
	return true
}

// SetFrequencyHz sets the rate, clamped to the LFO range.
func (p *LFOParameters) SetFrequencyHz(hz float64) {
	p.frequencyHz = BoundValue(hz, LFOMinFrequencyHz, LFOMaxFrequencyHz)
}

// SetOutputAmplitude sets the output level, clamped to [0, 1].
func (p *LFOParameters) SetOutputAmplitude(a float64) {
	p.outputAmplitude = BoundValue(a, 0, 1)
}

// SetDelayMSec sets the onset delay, clamped to [0, 2000] ms.
func (p *LFOParameters) SetDelayMSec(ms float64) {
	p.delayMSec = BoundValue(ms, 0, LFOMaxDelayMSec)
}

// SetRampMSec sets the fade-in time, clamped to [0, 2000] ms.
func (p *LFOParameters) SetRampMSec(ms float64) {
	p.rampMSec = BoundValue(ms, 0, LFOMaxRampMSec)
}

// SetWaveShapeX sets the X shaping control, clamped to [0, 1].
func (p *LFOParameters) SetWaveShapeX(x float64) {
	p.waveShapeX = BoundValue(x, 0, 1)
}

// SetWaveShapeY sets the Y shaping control, clamped to [0, 1].
func (p *LFOParameters) SetWaveShapeY(y float64) {
	p.waveShapeY = BoundValue(y, 0, 1)
}

// SetFrequencyFromMIDI14 maps a 14-bit controller onto the full LFO rate range.
func (p *LFOParameters) SetFrequencyFromMIDI14(value uint16) {
	p.SetFrequencyHz(MIDI14BitToDouble(value, LFOMinFrequencyHz, LFOMaxFrequencyHz))
}

// SetAmplitudeFromMIDI maps a 7-bit controller onto [0, 1].
func (p *LFOParameters) SetAmplitudeFromMIDI(value uint8) {
	p.SetOutputAmplitude(float64(BoundMIDIValueByte(value)) / MIDIByteMax)
}

// SetWaveformFromMIDI selects a waveform by spreading the waveforms over
// 0..127.
func (p *LFOParameters) SetWaveformFromMIDI(value uint8) {
	p.waveform = LFOWaveform(MIDIByteToIndex(value, LFOWaveformCount))
}

// SetModeFromMIDI selects a mode by spreading the modes over 0..127.
func (p *LFOParameters) SetModeFromMIDI(value uint8) {
	p.mode = LFOMode(MIDIByteToIndex(value, LFOModeCount))
}

// ApplyNoteOff silences the output when a ramp is configured, so the next
// note fades in from zero.
func (p *LFOParameters) ApplyNoteOff() {
	if p.rampMSec > 0 {
		p.outputAmplitude = 0
	}
}

// Equal reports whether p and o read identically through every accessor.
func (p LFOParameters) Equal(o LFOParameters) bool {
	return p.waveform == o.waveform &&
		p.mode == o.mode &&
		p.FrequencyHz() == o.FrequencyHz() &&
		p.outputAmplitude == o.outputAmplitude &&
		p.delayMSec == o.delayMSec &&
		p.rampMSec == o.rampMSec &&
		p.waveShapeX == o.waveShapeX &&
		p.waveShapeY == o.waveShapeY
}

func (p LFOParameters) String() string {
	return fmt.Sprintf("LFO{wave:%s, mode:%s, fo:%.3fHz, amp:%.3f, dly:%.1fms, ramp:%.1fms, shape:(%.3f,%.3f)}",
		p.waveform, p.mode, p.FrequencyHz(), p.outputAmplitude, p.delayMSec, p.rampMSec, p.waveShapeX, p.waveShapeY)
}
