// Package state saves and restores host parameter values and LFO settings.
package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/justyntemme/synthmap/pkg/framework/param"
	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

const (
	magic          = "SYNMAP"
	currentVersion = 1

	// MaxLFOs bounds the LFO block so a corrupt count cannot force a huge
	// allocation.
	MaxLFOs = 64
)

// ErrInvalidState is returned for data that is not a state written by Save.
var ErrInvalidState = errors.New("state: invalid state data")

// Manager handles state saving and loading
type Manager struct {
	version  uint32
	registry *param.Registry
	lfos     []*synthdefs.LFOParameterStore
}

// NewManager creates a state manager for registry and the given LFO stores.
// registry may be nil.
func NewManager(registry *param.Registry, lfos ...*synthdefs.LFOParameterStore) *Manager {
	return &Manager{
		version:  currentVersion,
		registry: registry,
		lfos:     lfos,
	}
}

// lfoRecord is the fixed-size wire form of one LFOParameters.
type lfoRecord struct {
	Waveform    uint8
	Mode        uint8
	FrequencyHz float64
	Amplitude   float64
	DelayMSec   float64
	RampMSec    float64
	WaveShapeX  float64
	WaveShapeY  float64
}

func toRecord(p synthdefs.LFOParameters) lfoRecord {
	return lfoRecord{
		Waveform:    uint8(p.Waveform()),
		Mode:        uint8(p.Mode()),
		FrequencyHz: p.FrequencyHz(),
		Amplitude:   p.OutputAmplitude(),
		DelayMSec:   p.DelayMSec(),
		RampMSec:    p.RampMSec(),
		WaveShapeX:  p.WaveShapeX(),
		WaveShapeY:  p.WaveShapeY(),
	}
}

func (r lfoRecord) params() (synthdefs.LFOParameters, error) {
	w, err := synthdefs.LFOWaveformFromOrdinal(r.Waveform)
	if err != nil {
		return synthdefs.LFOParameters{}, err
	}
	m, err := synthdefs.LFOModeFromOrdinal(r.Mode)
	if err != nil {
		return synthdefs.LFOParameters{}, err
	}
	p := synthdefs.NewLFOParameters(w, m, r.FrequencyHz, r.Amplitude)
	p.SetDelayMSec(r.DelayMSec)
	p.SetRampMSec(r.RampMSec)
	p.SetWaveShapeX(r.WaveShapeX)
	p.SetWaveShapeY(r.WaveShapeY)
	return p, nil
}

// Save writes the state to a writer
func (m *Manager) Save(w io.Writer) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}

	var params []*param.Parameter
	if m.registry != nil {
		params = m.registry.All()
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(params))); err != nil {
		return err
	}
	for _, p := range params {
		if err := binary.Write(w, binary.LittleEndian, p.ID); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, p.GetValue()); err != nil {
			return err
		}
	}

	sets := make([]synthdefs.LFOParameters, len(m.lfos))
	for i, s := range m.lfos {
		sets[i] = s.Load()
	}
	return WriteLFOs(w, sets)
}

// Load reads a state written by Save. Nothing is applied unless the whole
// state parses. Unknown parameter IDs are ignored, and LFO sets beyond the
// number of stores are dropped.
func (m *Manager) Load(r io.Reader) error {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if string(header) != magic {
		return fmt.Errorf("%w: bad header %q", ErrInvalidState, header)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if version == 0 || version > m.version {
		return fmt.Errorf("%w: state version %d is not supported (max %d)", ErrInvalidState, version, m.version)
	}

	var paramCount int32
	if err := binary.Read(r, binary.LittleEndian, &paramCount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if paramCount < 0 {
		return fmt.Errorf("%w: negative parameter count %d", ErrInvalidState, paramCount)
	}

	type entry struct {
		ID    uint32
		Value float64
	}
	// grown as entries arrive so a corrupt count fails on EOF before it can
	// allocate
	var values []entry
	for i := int32(0); i < paramCount; i++ {
		var e entry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return fmt.Errorf("%w: parameter %d: %w", ErrInvalidState, i, err)
		}
		values = append(values, e)
	}

	sets, err := ReadLFOs(r)
	if err != nil {
		return err
	}

	if m.registry != nil {
		for _, e := range values {
			if p := m.registry.Get(e.ID); p != nil {
				p.SetValue(e.Value)
			}
		}
	}
	for i, p := range sets {
		if i < len(m.lfos) {
			m.lfos[i].Store(p)
		}
	}
	return nil
}

// WriteLFOs writes a count followed by one fixed-size record per set.
func WriteLFOs(w io.Writer, sets []synthdefs.LFOParameters) error {
	if len(sets) > MaxLFOs {
		return fmt.Errorf("state: %d LFO sets exceeds limit of %d", len(sets), MaxLFOs)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(sets))); err != nil {
		return err
	}
	for _, p := range sets {
		if err := binary.Write(w, binary.LittleEndian, toRecord(p)); err != nil {
			return err
		}
	}
	return nil
}

// ReadLFOs reads sets written by WriteLFOs. Out-of-range numbers are clamped
// by the LFO setters; unknown waveform or mode ordinals are an error.
func ReadLFOs(r io.Reader) ([]synthdefs.LFOParameters, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if count > MaxLFOs {
		return nil, fmt.Errorf("%w: %d LFO sets exceeds limit of %d", ErrInvalidState, count, MaxLFOs)
	}

	sets := make([]synthdefs.LFOParameters, count)
	for i := range sets {
		var rec lfoRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: lfo %d: %w", ErrInvalidState, i, err)
		}
		p, err := rec.params()
		if err != nil {
			return nil, fmt.Errorf("%w: lfo %d: %w", ErrInvalidState, i, err)
		}
		sets[i] = p
	}
	return sets, nil
}
