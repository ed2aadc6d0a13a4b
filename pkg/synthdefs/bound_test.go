package synthdefs

import (
	"errors"
	"math"
	"testing"
)

func TestBoundMIDIValueByte(t *testing.T) {
	tests := []struct {
		raw  int
		want uint8
	}{
		{-1000, 0},
		{-1, 0},
		{0, 0},
		{64, 64},
		{127, 127},
		{128, 127},
		{1 << 20, 127},
	}

	for _, tt := range tests {
		if got := BoundMIDIValueByte(tt.raw); got != tt.want {
			t.Errorf("BoundMIDIValueByte(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestBoundMIDIValueByteIdempotent(t *testing.T) {
	for raw := -300; raw <= 300; raw++ {
		once := BoundMIDIValueByte(raw)
		if once > MIDIByteMax {
			t.Fatalf("BoundMIDIValueByte(%d) = %d, outside 0..127", raw, once)
		}
		if twice := BoundMIDIValueByte(once); twice != once {
			t.Fatalf("BoundMIDIValueByte not idempotent at %d: %d then %d", raw, once, twice)
		}
		if raw >= 0 && raw <= MIDIByteMax && int(once) != raw {
			t.Fatalf("valid byte %d changed to %d", raw, once)
		}
	}
}

func TestBoundMIDIValueByteNarrowTypes(t *testing.T) {
	if got := BoundMIDIValueByte(int8(-128)); got != 0 {
		t.Errorf("int8 -128 = %d, want 0", got)
	}
	if got := BoundMIDIValueByte(uint8(255)); got != 127 {
		t.Errorf("uint8 255 = %d, want 127", got)
	}
	if got := BoundMIDIValueByte(uint64(math.MaxUint64)); got != 127 {
		t.Errorf("uint64 max = %d, want 127", got)
	}
}

func TestBoundMIDIValueDoubleByteRoundTrip(t *testing.T) {
	for msb := 0; msb <= MIDIByteMax; msb++ {
		for lsb := 0; lsb <= MIDIByteMax; lsb++ {
			v := BoundMIDIValueDoubleByte(msb, lsb)
			if int(v) != msb*128+lsb {
				t.Fatalf("combine(%d, %d) = %d, want %d", msb, lsb, v, msb*128+lsb)
			}
			gotMSB, gotLSB := SplitMIDI14(v)
			if int(gotMSB) != msb || int(gotLSB) != lsb {
				t.Fatalf("split(%d) = (%d, %d), want (%d, %d)", v, gotMSB, gotLSB, msb, lsb)
			}
		}
	}
}

func TestBoundMIDIValueDoubleByteClampsEachByte(t *testing.T) {
	if got := BoundMIDIValueDoubleByte(200, -4); got != 127*128 {
		t.Errorf("combine(200, -4) = %d, want %d", got, 127*128)
	}
	if got := BoundMIDIValueDoubleByte(-1, 300); got != 127 {
		t.Errorf("combine(-1, 300) = %d, want 127", got)
	}
	if got := BoundMIDIValueDoubleByte(999, 999); got != MIDI14BitMax {
		t.Errorf("combine(999, 999) = %d, want %d", got, MIDI14BitMax)
	}
}

func TestBoundMIDI14Bit(t *testing.T) {
	tests := []struct {
		raw  int
		want uint16
	}{
		{-1, 0},
		{0, 0},
		{8192, 8192},
		{16383, 16383},
		{16384, 16383},
		{70000, 16383},
	}
	for _, tt := range tests {
		if got := BoundMIDI14Bit(tt.raw); got != tt.want {
			t.Errorf("BoundMIDI14Bit(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
	if got := BoundMIDI14Bit(uint8(200)); got != 200 {
		t.Errorf("BoundMIDI14Bit(uint8 200) = %d, want 200", got)
	}
}

func TestSplitMIDI14ClampsFirst(t *testing.T) {
	msb, lsb := SplitMIDI14(0xFFFF)
	if msb != 127 || lsb != 127 {
		t.Errorf("SplitMIDI14(0xFFFF) = (%d, %d), want (127, 127)", msb, lsb)
	}
}

func TestBoundIntValue(t *testing.T) {
	tests := []struct {
		raw, min, max, want int
	}{
		{200, 0, 127, 127},
		{-5, 0, 127, 0},
		{64, 0, 127, 64},
		{0, 0, 0, 0},
		{-3, -10, -1, -3},
	}
	for _, tt := range tests {
		if got := BoundIntValue(tt.raw, tt.min, tt.max); got != tt.want {
			t.Errorf("BoundIntValue(%d, %d, %d) = %d, want %d", tt.raw, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestBoundValueFloat(t *testing.T) {
	if got := BoundValue(math.NaN(), -1.0, 1.0); got != -1 {
		t.Errorf("NaN clamps to %f, want -1", got)
	}
	if got := BoundValue(math.Inf(1), 0.0, 1.0); got != 1 {
		t.Errorf("+Inf clamps to %f, want 1", got)
	}
	if got := BoundValue(math.Inf(-1), 0.0, 1.0); got != 0 {
		t.Errorf("-Inf clamps to %f, want 0", got)
	}
	for _, v := range []float64{-2, -1, -0.5, 0, 0.5, 1, 2} {
		once := BoundValue(v, -1.0, 1.0)
		if twice := BoundValue(once, -1.0, 1.0); twice != once {
			t.Errorf("BoundValue not idempotent at %f", v)
		}
	}
}

func TestBoundMIDIChannel(t *testing.T) {
	if got := BoundMIDIChannel(-2); got != 0 {
		t.Errorf("channel -2 = %d, want 0", got)
	}
	if got := BoundMIDIChannel(9); got != 9 {
		t.Errorf("channel 9 = %d, want 9", got)
	}
	if got := BoundMIDIChannel(16); got != 15 {
		t.Errorf("channel 16 = %d, want 15", got)
	}
}

func TestNewRange(t *testing.T) {
	r, err := NewRange(0, 127)
	if err != nil {
		t.Fatalf("NewRange(0, 127): %v", err)
	}
	if r.Clamp(200) != 127 || r.Clamp(-5) != 0 {
		t.Errorf("Clamp out of bounds: %d %d", r.Clamp(200), r.Clamp(-5))
	}
	if !r.Contains(64) || r.Contains(128) {
		t.Error("Contains gave wrong answer")
	}

	if _, err := NewRange(10, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("NewRange(10, 1) error = %v, want ErrInvalidRange", err)
	}
	if _, err := NewRange(0.0, math.NaN()); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("NewRange(0, NaN) error = %v, want ErrInvalidRange", err)
	}
	if _, err := NewRange(math.Inf(-1), 0.0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("NewRange(-Inf, 0) error = %v, want ErrInvalidRange", err)
	}
}

func TestRangeNormalize(t *testing.T) {
	r := MustRange(0.02, 20.0)
	if got := r.Normalize(0.02); got != 0 {
		t.Errorf("Normalize(min) = %f, want 0", got)
	}
	if got := r.Normalize(20); got != 1 {
		t.Errorf("Normalize(max) = %f, want 1", got)
	}
	if got := r.Denormalize(0); got != 0.02 {
		t.Errorf("Denormalize(0) = %f, want 0.02", got)
	}
	if got := r.Denormalize(1); got != 20 {
		t.Errorf("Denormalize(1) = %f, want 20", got)
	}

	flat := MustRange(3, 3)
	if got := flat.Normalize(3); got != 0 {
		t.Errorf("zero-width Normalize = %f, want 0", got)
	}
}

func TestMustRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRange(2, 1) did not panic")
		}
	}()
	MustRange(2, 1)
}
