package synthdefs

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultLFOParameters(t *testing.T) {
	p := DefaultLFOParameters()

	if p.Waveform() != LFOTriangle {
		t.Errorf("default waveform = %v, want Triangle", p.Waveform())
	}
	if p.Mode() != LFOSync {
		t.Errorf("default mode = %v, want Sync", p.Mode())
	}
	if p.FrequencyHz() != LFODefaultFrequencyHz {
		t.Errorf("default frequency = %v, want %v", p.FrequencyHz(), LFODefaultFrequencyHz)
	}
	if p.OutputAmplitude() != 0 {
		t.Errorf("default amplitude = %v, want silent", p.OutputAmplitude())
	}
	if p.DelayMSec() != 0 || p.RampMSec() != 0 || p.WaveShapeX() != 0 || p.WaveShapeY() != 0 {
		t.Errorf("default secondary settings not zero: %v", p)
	}
}

func TestZeroValueLFOParametersIsSafe(t *testing.T) {
	var p LFOParameters

	if p.FrequencyHz() != LFOMinFrequencyHz {
		t.Errorf("zero value frequency = %v, want %v", p.FrequencyHz(), LFOMinFrequencyHz)
	}
	if p.OutputAmplitude() != 0 {
		t.Errorf("zero value amplitude = %v, want 0", p.OutputAmplitude())
	}
	if !p.Waveform().Valid() || !p.Mode().Valid() {
		t.Error("zero value holds invalid enums")
	}
}

func TestLFOParametersEqual(t *testing.T) {
	var zero LFOParameters
	atMin := zero
	atMin.SetFrequencyHz(LFOMinFrequencyHz)

	if zero == atMin {
		t.Fatal("stored fields should differ: zero value holds 0 Hz")
	}
	if !zero.Equal(atMin) || !atMin.Equal(zero) {
		t.Errorf("%v and %v read the same and should be Equal", zero, atMin)
	}

	other := atMin
	other.SetWaveShapeY(0.5)
	if atMin.Equal(other) {
		t.Error("sets with different shape Y should not be Equal")
	}
	if !DefaultLFOParameters().Equal(NewLFOParameters(LFOTriangle, LFOSync, LFODefaultFrequencyHz, 0)) {
		t.Error("NewLFOParameters with default values should equal DefaultLFOParameters")
	}
}

func TestLFOParametersCopyIsIndependent(t *testing.T) {
	src := NewLFOParameters(LFOTriangle, LFOFreeRun, 5.0, 0.8)

	dst := DefaultLFOParameters()
	dst = src

	if dst != src || !dst.Equal(src) {
		t.Fatalf("copy differs from source: %v vs %v", dst, src)
	}
	if dst.FrequencyHz() != 5.0 || dst.Waveform() != LFOTriangle || dst.OutputAmplitude() != 0.8 {
		t.Fatalf("copy has wrong fields: %v", dst)
	}

	src.SetFrequencyHz(11)
	src.SetWaveform(LFOSaw)
	if dst.FrequencyHz() != 5.0 {
		t.Errorf("copy frequency changed to %v after mutating source", dst.FrequencyHz())
	}
	if dst.Waveform() != LFOTriangle {
		t.Errorf("copy waveform changed to %v after mutating source", dst.Waveform())
	}

	dst.SetOutputAmplitude(0.1)
	if src.OutputAmplitude() != 0.8 {
		t.Errorf("source amplitude changed to %v after mutating copy", src.OutputAmplitude())
	}
}

func TestLFOParametersSettersClamp(t *testing.T) {
	tests := []struct {
		name string
		set  func(*LFOParameters, float64)
		get  func(LFOParameters) float64
		in   float64
		want float64
	}{
		{"frequency high", (*LFOParameters).SetFrequencyHz, LFOParameters.FrequencyHz, 500, LFOMaxFrequencyHz},
		{"frequency low", (*LFOParameters).SetFrequencyHz, LFOParameters.FrequencyHz, -1, LFOMinFrequencyHz},
		{"frequency NaN", (*LFOParameters).SetFrequencyHz, LFOParameters.FrequencyHz, math.NaN(), LFOMinFrequencyHz},
		{"amplitude high", (*LFOParameters).SetOutputAmplitude, LFOParameters.OutputAmplitude, 1.5, 1},
		{"amplitude low", (*LFOParameters).SetOutputAmplitude, LFOParameters.OutputAmplitude, -0.5, 0},
		{"delay high", (*LFOParameters).SetDelayMSec, LFOParameters.DelayMSec, 9000, LFOMaxDelayMSec},
		{"ramp low", (*LFOParameters).SetRampMSec, LFOParameters.RampMSec, -10, 0},
		{"shape x high", (*LFOParameters).SetWaveShapeX, LFOParameters.WaveShapeX, 2, 1},
		{"shape y in range", (*LFOParameters).SetWaveShapeY, LFOParameters.WaveShapeY, 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultLFOParameters()
			tt.set(&p, tt.in)
			if got := tt.get(p); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLFOParametersRejectUnknownEnums(t *testing.T) {
	p := DefaultLFOParameters()

	if p.SetWaveform(LFOWaveform(99)) {
		t.Error("SetWaveform accepted ordinal 99")
	}
	if p.Waveform() != LFOTriangle {
		t.Errorf("waveform changed to %v", p.Waveform())
	}
	if p.SetMode(LFOMode(7)) {
		t.Error("SetMode accepted ordinal 7")
	}
	if p.Mode() != LFOSync {
		t.Errorf("mode changed to %v", p.Mode())
	}

	q := NewLFOParameters(LFOWaveform(200), LFOMode(200), 3, 0.5)
	if q.Waveform() != LFOTriangle || q.Mode() != LFOSync {
		t.Errorf("NewLFOParameters kept invalid enums: %v", q)
	}
}

func TestLFOParametersFromMIDI(t *testing.T) {
	p := DefaultLFOParameters()

	p.SetFrequencyFromMIDI14(0)
	if p.FrequencyHz() != LFOMinFrequencyHz {
		t.Errorf("14-bit 0 -> %v Hz, want %v", p.FrequencyHz(), LFOMinFrequencyHz)
	}
	p.SetFrequencyFromMIDI14(MIDI14BitMax)
	if p.FrequencyHz() != LFOMaxFrequencyHz {
		t.Errorf("14-bit max -> %v Hz, want %v", p.FrequencyHz(), LFOMaxFrequencyHz)
	}

	p.SetAmplitudeFromMIDI(127)
	if p.OutputAmplitude() != 1 {
		t.Errorf("amplitude 127 -> %v, want 1", p.OutputAmplitude())
	}
	p.SetAmplitudeFromMIDI(0)
	if p.OutputAmplitude() != 0 {
		t.Errorf("amplitude 0 -> %v, want 0", p.OutputAmplitude())
	}

	p.SetWaveformFromMIDI(127)
	if p.Waveform() != LFOQRNoise {
		t.Errorf("waveform 127 -> %v, want QRNoise", p.Waveform())
	}
	p.SetModeFromMIDI(64)
	if p.Mode() != LFOOneShot {
		t.Errorf("mode 64 -> %v, want One Shot", p.Mode())
	}

	for v := 0; v <= MIDIByteMax; v++ {
		p.SetWaveformFromMIDI(uint8(v))
		p.SetModeFromMIDI(uint8(v))
		if !p.Waveform().Valid() || !p.Mode().Valid() {
			t.Fatalf("controller %d produced invalid enum: %v", v, p)
		}
	}
}

func TestApplyNoteOff(t *testing.T) {
	p := NewLFOParameters(LFOSin, LFOSync, 4, 0.7)
	p.ApplyNoteOff()
	if p.OutputAmplitude() != 0.7 {
		t.Errorf("note off without ramp changed amplitude to %v", p.OutputAmplitude())
	}

	p.SetRampMSec(250)
	p.ApplyNoteOff()
	if p.OutputAmplitude() != 0 {
		t.Errorf("note off with ramp left amplitude at %v", p.OutputAmplitude())
	}
}

func TestLFOWaveformNames(t *testing.T) {
	want := []string{"Triangle", "Sin", "Saw", "RSH", "QRSH", "Noise", "QRNoise"}
	got := LFOWaveformNames()
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
		w, err := ParseLFOWaveform(want[i])
		if err != nil || int(w) != i {
			t.Errorf("ParseLFOWaveform(%q) = %v, %v", want[i], w, err)
		}
	}

	got[0] = "mutated"
	if LFOTriangle.String() != "Triangle" {
		t.Error("LFOWaveformNames exposed internal table")
	}
}

func TestLFOWaveformOrdinalsAreStable(t *testing.T) {
	tests := []struct {
		w    LFOWaveform
		want uint8
	}{
		{LFOTriangle, 0}, {LFOSin, 1}, {LFOSaw, 2}, {LFORSH, 3},
		{LFOQRSH, 4}, {LFONoise, 5}, {LFOQRNoise, 6},
	}
	for _, tt := range tests {
		if uint8(tt.w) != tt.want {
			t.Errorf("%v ordinal = %d, want %d", tt.w, uint8(tt.w), tt.want)
		}
		back, err := LFOWaveformFromOrdinal(tt.want)
		if err != nil || back != tt.w {
			t.Errorf("LFOWaveformFromOrdinal(%d) = %v, %v", tt.want, back, err)
		}
	}

	if _, err := LFOWaveformFromOrdinal(7); !errors.Is(err, ErrUnknownWaveform) {
		t.Errorf("ordinal 7 error = %v, want ErrUnknownWaveform", err)
	}
	if LFOWaveform(9).String() != "LFOWaveform(9)" {
		t.Errorf("unknown waveform string = %q", LFOWaveform(9).String())
	}
}

func TestLFOWaveformIsRandom(t *testing.T) {
	random := map[LFOWaveform]bool{LFORSH: true, LFOQRSH: true, LFONoise: true, LFOQRNoise: true}
	for i := 0; i < LFOWaveformCount; i++ {
		w := LFOWaveform(i)
		if w.IsRandom() != random[w] {
			t.Errorf("%v.IsRandom() = %v", w, w.IsRandom())
		}
	}
}

func TestLFOMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    LFOMode
		restart bool
	}{
		{"Sync", LFOSync, true},
		{"One Shot", LFOOneShot, true},
		{"Free Run", LFOFreeRun, false},
	}
	for i, tt := range tests {
		if uint8(tt.mode) != uint8(i) {
			t.Errorf("%s ordinal = %d, want %d", tt.name, tt.mode, i)
		}
		if tt.mode.String() != tt.name {
			t.Errorf("String() = %q, want %q", tt.mode.String(), tt.name)
		}
		if tt.mode.RestartsOnNote() != tt.restart {
			t.Errorf("%s RestartsOnNote = %v", tt.name, tt.mode.RestartsOnNote())
		}
	}

	for _, s := range []string{"oneshot", "One Shot", " FREE RUN "} {
		if _, err := ParseLFOMode(s); err != nil {
			t.Errorf("ParseLFOMode(%q): %v", s, err)
		}
	}
	if _, err := ParseLFOMode("legato"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseLFOMode(legato) error = %v", err)
	}
	if _, err := LFOModeFromOrdinal(3); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("LFOModeFromOrdinal(3) error = %v", err)
	}
	if got := LFOModeNames(); len(got) != LFOModeCount {
		t.Errorf("LFOModeNames returned %d names", len(got))
	}
}

func TestLFOOutputSlots(t *testing.T) {
	if LFOOutputCount != 6 {
		t.Errorf("LFOOutputCount = %d, want 6", LFOOutputCount)
	}
	if LFOUnipolarOutputFromMin != 5 {
		t.Errorf("LFOUnipolarOutputFromMin = %d, want 5", LFOUnipolarOutputFromMin)
	}
}

func TestLFOParametersString(t *testing.T) {
	p := NewLFOParameters(LFOSaw, LFOFreeRun, 1.5, 0.25)
	want := "LFO{wave:Saw, mode:Free Run, fo:1.500Hz, amp:0.250, dly:0.0ms, ramp:0.0ms, shape:(0.000,0.000)}"
	if p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
}
