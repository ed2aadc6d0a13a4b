// Package synthdefs maps MIDI wire values onto a synth engine's parameter
// domains and holds the LFO parameter model built from them.
//
// Three numeric domains meet here:
//
//	MIDI byte      0..127
//	MIDI 14-bit    0..16383 (MSB*128 + LSB), pitch bend centered at 8192
//	normalized     unipolar [0, 1] and bipolar [-1, 1]
//
// Every function in this package is pure, allocation-free and safe to call
// from the audio thread. Out-of-range input is clamped, never reported as an
// error. The only errors live at setup time (see NewRange).
//
// LFOParameters is a plain value type. Its fields can only be written through
// clamping setters, so a copy is always a complete, in-range parameter set.
// LFOParameterStore publishes those copies from a control goroutine to any
// number of audio-thread readers.
package synthdefs
