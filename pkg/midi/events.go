package midi

import (
	"fmt"

	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
	EventTypeControlChange
	EventTypePitchBend
	EventTypeChannelPressure
)

func (t EventType) String() string {
	switch t {
	case EventTypeNoteOff:
		return "NoteOff"
	case EventTypeNoteOn:
		return "NoteOn"
	case EventTypeControlChange:
		return "CC"
	case EventTypePitchBend:
		return "PitchBend"
	case EventTypeChannelPressure:
		return "ChannelPressure"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

type Event interface {
	Type() EventType
	Channel() uint8
	SampleOffset() int32
	String() string
}

type BaseEvent struct {
	EventChannel uint8
	Offset       int32
}

func (e BaseEvent) Channel() uint8 {
	return e.EventChannel
}

func (e BaseEvent) SampleOffset() int32 {
	return e.Offset
}

func newBase(channel int, offset int32) BaseEvent {
	return BaseEvent{EventChannel: synthdefs.BoundMIDIChannel(channel), Offset: offset}
}

type NoteOnEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

// NewNoteOnEvent bounds channel to 0..15 and the data bytes to 0..127.
func NewNoteOnEvent(channel int, offset int32, note, velocity int) NoteOnEvent {
	return NoteOnEvent{
		BaseEvent:  newBase(channel, offset),
		NoteNumber: synthdefs.BoundMIDIValueByte(note),
		Velocity:   synthdefs.BoundMIDIValueByte(velocity),
	}
}

func (e NoteOnEvent) Type() EventType {
	return EventTypeNoteOn
}

func (e NoteOnEvent) String() string {
	return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d, offset:%d}",
		e.EventChannel, e.NoteNumber, e.Velocity, e.Offset)
}

type NoteOffEvent struct {
	BaseEvent
	NoteNumber uint8
	Velocity   uint8
}

// NewNoteOffEvent bounds channel to 0..15 and the data bytes to 0..127.
func NewNoteOffEvent(channel int, offset int32, note, velocity int) NoteOffEvent {
	return NoteOffEvent{
		BaseEvent:  newBase(channel, offset),
		NoteNumber: synthdefs.BoundMIDIValueByte(note),
		Velocity:   synthdefs.BoundMIDIValueByte(velocity),
	}
}

func (e NoteOffEvent) Type() EventType {
	return EventTypeNoteOff
}

func (e NoteOffEvent) String() string {
	return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d, offset:%d}",
		e.EventChannel, e.NoteNumber, e.Velocity, e.Offset)
}

type ControlChangeEvent struct {
	BaseEvent
	Controller uint8
	Value      uint8
}

// NewControlChangeEvent bounds channel to 0..15 and the data bytes to 0..127.
func NewControlChangeEvent(channel int, offset int32, controller, value int) ControlChangeEvent {
	return ControlChangeEvent{
		BaseEvent:  newBase(channel, offset),
		Controller: synthdefs.BoundMIDIValueByte(controller),
		Value:      synthdefs.BoundMIDIValueByte(value),
	}
}

func (e ControlChangeEvent) Type() EventType {
	return EventTypeControlChange
}

func (e ControlChangeEvent) String() string {
	return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d, offset:%d}",
		e.EventChannel, e.Controller, e.Value, e.Offset)
}

// Unipolar returns the controller value scaled to [0, 1].
func (e ControlChangeEvent) Unipolar() float64 {
	return float64(synthdefs.BoundMIDIValueByte(e.Value)) / synthdefs.MIDIByteMax
}

const (
	CCBankSelect     uint8 = 0
	CCModWheel       uint8 = 1
	CCBreath         uint8 = 2
	CCFoot           uint8 = 4
	CCPortamentoTime uint8 = 5
	CCVolume         uint8 = 7
	CCBalance        uint8 = 8
	CCPan            uint8 = 10
	CCExpression     uint8 = 11
	CCGeneral1       uint8 = 16
	CCGeneral2       uint8 = 17
	CCGeneral3       uint8 = 18
	CCGeneral4       uint8 = 19
	CCSustain        uint8 = 64
	CCSoundVariation uint8 = 70
	CCTimbre         uint8 = 71
	CCReleaseTime    uint8 = 72
	CCAttackTime     uint8 = 73
	CCBrightness     uint8 = 74
	CCSound6         uint8 = 75
	CCSound7         uint8 = 76
	CCSound8         uint8 = 77
	CCSound9         uint8 = 78
	CCAllSoundOff    uint8 = 120
	CCResetAll       uint8 = 121
	CCAllNotesOff    uint8 = 123
)

// Controllers 0..31 carry the MSB of a 14-bit value; the matching LSB
// arrives on controller+32.
const highResLSBOffset = 32

// IsHighResMSB reports whether cc can carry the MSB of a 14-bit pair.
func IsHighResMSB(cc uint8) bool {
	return cc < highResLSBOffset
}

// IsHighResLSB reports whether cc carries the LSB of a 14-bit pair.
func IsHighResLSB(cc uint8) bool {
	return cc >= highResLSBOffset && cc < 2*highResLSBOffset
}

// HighResLSB returns the LSB controller paired with msb. ok is false when msb
// is not a 14-bit MSB controller.
func HighResLSB(msb uint8) (lsb uint8, ok bool) {
	if !IsHighResMSB(msb) {
		return 0, false
	}
	return msb + highResLSBOffset, true
}

type PitchBendEvent struct {
	BaseEvent
	Value uint16 // 0 to 16383, 8192 is center
}

// NewPitchBendEvent builds a pitch bend from its data bytes in wire order
// (LSB first). Each byte is bounded to 0..127.
func NewPitchBendEvent(channel int, offset int32, lsb, msb int) PitchBendEvent {
	return PitchBendEvent{
		BaseEvent: newBase(channel, offset),
		Value:     synthdefs.BoundMIDIValueDoubleByte(msb, lsb),
	}
}

func (e PitchBendEvent) Type() EventType {
	return EventTypePitchBend
}

func (e PitchBendEvent) String() string {
	return fmt.Sprintf("PitchBend{ch:%d, val:%d, offset:%d}",
		e.EventChannel, e.Value, e.Offset)
}

// Bytes returns the data bytes in wire order.
func (e PitchBendEvent) Bytes() (lsb, msb uint8) {
	msb, lsb = synthdefs.SplitMIDI14(e.Value)
	return lsb, msb
}

// Bipolar returns the bend amount in [-1, 1], exactly 0 at center.
func (e PitchBendEvent) Bipolar() float64 {
	return synthdefs.MIDIPitchBendValueToBipolar(e.Value)
}

type ChannelPressureEvent struct {
	BaseEvent
	Pressure uint8
}

// NewChannelPressureEvent bounds channel to 0..15 and pressure to 0..127.
func NewChannelPressureEvent(channel int, offset int32, pressure int) ChannelPressureEvent {
	return ChannelPressureEvent{
		BaseEvent: newBase(channel, offset),
		Pressure:  synthdefs.BoundMIDIValueByte(pressure),
	}
}

func (e ChannelPressureEvent) Type() EventType {
	return EventTypeChannelPressure
}

func (e ChannelPressureEvent) String() string {
	return fmt.Sprintf("ChannelPressure{ch:%d, pressure:%d, offset:%d}",
		e.EventChannel, e.Pressure, e.Offset)
}
