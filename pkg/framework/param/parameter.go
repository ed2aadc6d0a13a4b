package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/justyntemme/synthmap/pkg/synthdefs"
)

// Parameter is a host-automatable control. The current value is stored
// normalized to [0, 1] and may be read from any goroutine.
type Parameter struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64 // normalized
	StepCount    int32
	Flags        uint32

	value atomic.Uint64 // math.Float64bits of the normalized value

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// Flags for parameters
const (
	CanAutomate  uint32 = 1 << 0
	IsReadOnly   uint32 = 1 << 1
	IsWrapAround uint32 = 1 << 2
	IsList       uint32 = 1 << 3
	IsHidden     uint32 = 1 << 4
)

// GetValue returns the current normalized value (0-1)
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(p.value.Load())
}

// SetValue sets the normalized value, clamped to 0-1
func (p *Parameter) SetValue(value float64) {
	p.value.Store(math.Float64bits(synthdefs.BoundValue(value, 0, 1)))
}

// GetPlainValue converts normalized to plain value
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// SetPlainValue converts plain to normalized value
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// GetIndex returns the plain value rounded to the nearest step. Used for
// list parameters.
func (p *Parameter) GetIndex() int {
	return int(math.Round(p.GetPlainValue()))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.SetValue(p.DefaultValue)
}

// SetFormatter sets custom value formatting
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// FormatValue returns formatted parameter value
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)

	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}

	if p.StepCount > 0 {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseValue parses string to normalized value
func (p *Parameter) ParseValue(str string) (float64, error) {
	parse := p.parseFunc
	if parse == nil {
		parse = parsePlain
	}
	plain, err := parse(str)
	if err != nil {
		return 0, fmt.Errorf("param %q: %w", p.Name, err)
	}
	return p.Normalize(plain), nil
}

// Normalize converts plain value to normalized (0-1). A parameter with an
// empty range normalizes everything to 0.
func (p *Parameter) Normalize(plain float64) float64 {
	if !(p.Max > p.Min) {
		return 0
	}
	return synthdefs.BoundValue(synthdefs.MapDoubleValue(plain, p.Min, p.Max, 0, 1), 0, 1)
}

// Denormalize converts normalized (0-1) to plain value. The result is
// clamped to [Min, Max].
func (p *Parameter) Denormalize(normalized float64) float64 {
	if !(p.Max > p.Min) {
		return p.Min
	}
	normalized = synthdefs.BoundValue(normalized, 0, 1)
	if normalized == 1 {
		return p.Max
	}
	return synthdefs.BoundValue(p.Min+normalized*(p.Max-p.Min), p.Min, p.Max)
}

func parsePlain(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
