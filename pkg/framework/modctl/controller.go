// Package modctl routes MIDI controller, pitch bend and note messages into an
// LFO parameter store.
package modctl

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/justyntemme/synthmap/pkg/framework/debug"
	"github.com/justyntemme/synthmap/pkg/midi"
	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

var (
	// ErrUnknownTarget is returned for a binding whose Target is not defined.
	ErrUnknownTarget = errors.New("modctl: unknown target")
	// ErrInvalidController is returned for a controller number outside 0..127,
	// or a 14-bit binding on a controller that has no LSB partner.
	ErrInvalidController = errors.New("modctl: invalid controller")
	// ErrDuplicateBinding is returned when two bindings claim the same
	// controller.
	ErrDuplicateBinding = errors.New("modctl: duplicate binding")
)

// Binding maps one MIDI controller onto one LFO setting.
type Binding struct {
	Controller uint8
	Target     Target
	// Min and Max bound the plain value the controller sweeps. Both zero
	// means the target's full range.
	Min, Max float64
	// HighRes pairs Controller (0..31) with Controller+32 as a 14-bit value.
	HighRes bool
}

// Config configures a Controller.
type Config struct {
	Bindings []Binding
	// Channels is a bit mask of accepted MIDI channels. Zero accepts all.
	Channels uint16
	// PitchBendRange is used by PitchBendSemitones. The zero value means
	// the 7 semitone default.
	PitchBendRange synthdefs.PitchBendRange
	Logger         *debug.Logger
}

type route struct {
	target  Target
	rng     synthdefs.Range[float64]
	highRes bool
	msb     uint8 // controller carrying the MSB
	isLSB   bool
}

// Controller implements midi.EventProcessor. ProcessEvent and Reset must be
// called from the same single goroutine; PitchBend and the store may be read
// from any.
type Controller struct {
	store    *synthdefs.LFOParameterStore
	routes   [synthdefs.MIDIByteMax + 1]*route
	msbs     [32]uint8
	channels uint16
	bend     synthdefs.PitchBendRange
	log      *debug.Logger

	pitchBend atomic.Uint64 // math.Float64bits of the bipolar bend
}

var _ midi.EventProcessor = (*Controller)(nil)

// NewController validates cfg and returns a Controller writing to store.
func NewController(store *synthdefs.LFOParameterStore, cfg Config) (*Controller, error) {
	if store == nil {
		return nil, errors.New("modctl: nil store")
	}

	c := &Controller{
		store:    store,
		channels: cfg.Channels,
		bend:     cfg.PitchBendRange,
		log:      cfg.Logger,
	}
	if c.bend == (synthdefs.PitchBendRange{}) {
		c.bend = synthdefs.DefaultPitchBendRange()
	}
	if c.log == nil {
		c.log = debug.Nop()
	}

	for i, b := range cfg.Bindings {
		r, err := newRoute(b)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		if err := c.addRoute(b.Controller, r); err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		if b.HighRes {
			lsb, _ := midi.HighResLSB(b.Controller)
			if err := c.addRoute(lsb, &route{target: r.target, rng: r.rng, highRes: true, msb: b.Controller, isLSB: true}); err != nil {
				return nil, fmt.Errorf("binding %d: %w", i, err)
			}
		}
		c.log.Debug("cc %d -> %s [%g, %g] highres=%t", b.Controller, b.Target, r.rng.Min(), r.rng.Max(), b.HighRes)
	}

	c.log.Info("controller ready with %d bindings", len(cfg.Bindings))
	return c, nil
}

func newRoute(b Binding) (*route, error) {
	if b.Controller > synthdefs.MIDIByteMax {
		return nil, fmt.Errorf("%w: %d", ErrInvalidController, b.Controller)
	}
	if !b.Target.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, b.Target)
	}
	if b.HighRes && !midi.IsHighResMSB(b.Controller) {
		return nil, fmt.Errorf("%w: %d has no 14-bit LSB partner", ErrInvalidController, b.Controller)
	}

	rng := b.Target.FullRange()
	if !b.Target.Discrete() && (b.Min != 0 || b.Max != 0) {
		r, err := synthdefs.NewRange(b.Min, b.Max)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Target, err)
		}
		full := rng
		rng = synthdefs.MustRange(full.Clamp(r.Min()), full.Clamp(r.Max()))
	}

	return &route{target: b.Target, rng: rng, highRes: b.HighRes, msb: b.Controller}, nil
}

func (c *Controller) addRoute(cc uint8, r *route) error {
	if c.routes[cc] != nil {
		return fmt.Errorf("%w: controller %d", ErrDuplicateBinding, cc)
	}
	c.routes[cc] = r
	return nil
}

// Store returns the parameter store the controller writes to.
func (c *Controller) Store() *synthdefs.LFOParameterStore {
	return c.store
}

func (c *Controller) accepts(ch uint8) bool {
	return c.channels == 0 || c.channels&(1<<ch) != 0
}

// ProcessEvent applies one MIDI event.
func (c *Controller) ProcessEvent(event midi.Event) {
	if !c.accepts(event.Channel()) {
		return
	}

	switch e := event.(type) {
	case midi.ControlChangeEvent:
		c.controlChange(e.Controller, e.Value)
	case midi.PitchBendEvent:
		c.pitchBend.Store(math.Float64bits(e.Bipolar()))
	case midi.NoteOffEvent:
		c.store.Update((*synthdefs.LFOParameters).ApplyNoteOff)
	case midi.NoteOnEvent:
		// velocity 0 is a note off
		if e.Velocity == 0 {
			c.store.Update((*synthdefs.LFOParameters).ApplyNoteOff)
		}
	}
}

func (c *Controller) controlChange(cc, value uint8) {
	r := c.routes[synthdefs.BoundMIDIValueByte(cc)]
	if r == nil {
		c.log.Debug("unbound controller %d", cc)
		return
	}
	value = synthdefs.BoundMIDIValueByte(value)

	if !r.highRes {
		c.store.Update(func(p *synthdefs.LFOParameters) {
			switch r.target {
			case TargetWaveform:
				p.SetWaveformFromMIDI(value)
			case TargetMode:
				p.SetModeFromMIDI(value)
			default:
				r.target.apply(p, r.rng.Denormalize(float64(value)/synthdefs.MIDIByteMax))
			}
		})
		return
	}

	// A new MSB starts a new 14-bit value with LSB 0. An LSB refines the last
	// MSB seen on its partner.
	var v uint16
	if r.isLSB {
		v = synthdefs.BoundMIDIValueDoubleByte(c.msbs[r.msb], value)
	} else {
		c.msbs[r.msb] = value
		v = synthdefs.BoundMIDIValueDoubleByte(value, 0)
	}

	c.store.Update(func(p *synthdefs.LFOParameters) {
		switch r.target {
		case TargetWaveform:
			msb, _ := synthdefs.SplitMIDI14(v)
			p.SetWaveformFromMIDI(msb)
		case TargetMode:
			msb, _ := synthdefs.SplitMIDI14(v)
			p.SetModeFromMIDI(msb)
		default:
			r.target.apply(p, synthdefs.MIDI14BitToDouble(v, r.rng.Min(), r.rng.Max()))
		}
	})
}

// PitchBend returns the last pitch bend as a bipolar amount in [-1, 1].
func (c *Controller) PitchBend() float64 {
	return math.Float64frombits(c.pitchBend.Load())
}

// PitchBendSemitones returns the last pitch bend scaled by the configured
// bend range.
func (c *Controller) PitchBendSemitones() float64 {
	return c.bend.Semitones(c.PitchBend())
}

// Reset recenters pitch bend and forgets pending 14-bit MSBs. The MSB
// table is not synchronized, so Reset runs on the goroutine that calls
// ProcessEvent, typically between processing blocks.
func (c *Controller) Reset() {
	c.pitchBend.Store(math.Float64bits(0))
	clear(c.msbs[:])
}
