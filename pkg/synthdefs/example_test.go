package synthdefs_test

import (
	"fmt"

	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

func ExampleMIDIPitchBendToBipolar() {
	// pitch bend data bytes arrive LSB first
	fmt.Println(synthdefs.MIDIPitchBendToBipolar(0x00, 0x40))
	fmt.Println(synthdefs.MIDIPitchBendToBipolar(0x00, 0x00))
	fmt.Println(synthdefs.MIDIPitchBendToBipolar(0x7F, 0x7F))
	// Output:
	// 0
	// -1
	// 1
}

func ExampleBoundMIDIValueDoubleByte() {
	v := synthdefs.BoundMIDIValueDoubleByte(0x12, 0x34)
	msb, lsb := synthdefs.SplitMIDI14(v)
	fmt.Printf("%d %#x %#x\n", v, msb, lsb)
	// Output:
	// 2356 0x12 0x34
}

func ExampleLFOParameterStore() {
	store := synthdefs.NewLFOParameterStore(synthdefs.DefaultLFOParameters())

	// control thread
	store.Update(func(p *synthdefs.LFOParameters) {
		p.SetWaveform(synthdefs.LFOSin)
		p.SetFrequencyFromMIDI14(synthdefs.MIDI14BitMax)
		p.SetAmplitudeFromMIDI(127)
	})

	// audio thread
	p := store.Load()
	fmt.Println(p.Waveform(), p.FrequencyHz(), p.OutputAmplitude())
	// Output:
	// Sin 20 1
}
