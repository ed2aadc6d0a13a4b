package param

import (
	"fmt"
	"math"
	"strings"
)

// ChoiceOption represents a single choice in a list parameter
type ChoiceOption struct {
	Value   float64
	Name    string
	Aliases []string
}

// Choice creates a parameter builder for a multiple choice parameter. options
// must be non-empty and sorted by Value.
func Choice(id uint32, name string, options []ChoiceOption) *Builder {
	formatter := func(value float64) string {
		best := -1
		bestDist := math.Inf(1)
		for i, opt := range options {
			if d := math.Abs(opt.Value - value); d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			return "Unknown"
		}
		return options[best].Name
	}

	parser := func(str string) (float64, error) {
		s := strings.TrimSpace(str)
		for _, opt := range options {
			if strings.EqualFold(s, opt.Name) {
				return opt.Value, nil
			}
			for _, alias := range opt.Aliases {
				if strings.EqualFold(s, alias) {
					return opt.Value, nil
				}
			}
		}
		return 0, fmt.Errorf("unknown option: %s", str)
	}

	minVal, maxVal := 0.0, 0.0
	if len(options) > 0 {
		minVal = options[0].Value
		maxVal = options[len(options)-1].Value
	}

	b := New(id, name).
		Range(minVal, maxVal).
		Steps(int32(max(len(options)-1, 0))).
		Formatter(formatter, parser)
	b.param.Flags |= IsList
	if len(options) > 0 {
		b.Default(options[0].Value)
	}
	return b
}

// ChoiceFromNames builds a list parameter whose values are the indexes of
// names.
func ChoiceFromNames(id uint32, name string, names []string) *Builder {
	options := make([]ChoiceOption, len(names))
	for i, n := range names {
		options[i] = ChoiceOption{Value: float64(i), Name: n}
	}
	return Choice(id, name, options)
}

// RateParameter creates a rate parameter (Hz) for LFOs
func RateParameter(id uint32, name string, minHz, maxHz, defaultHz float64) *Builder {
	return New(id, name).
		Range(minHz, maxHz).
		Default(defaultHz).
		Unit("Hz").
		Formatter(FrequencyFormatter, FrequencyParser)
}

// TimeParameter creates a time parameter in milliseconds
func TimeParameter(id uint32, name string, minMs, maxMs, defaultMs float64) *Builder {
	return New(id, name).
		Range(minMs, maxMs).
		Default(defaultMs).
		Unit("ms").
		Formatter(TimeFormatter, TimeParser)
}

// AmountParameter creates a 0-1 amount shown as a percentage
func AmountParameter(id uint32, name string, defaultAmount float64) *Builder {
	return New(id, name).
		Range(0, 1).
		Default(defaultAmount).
		Unit("%").
		Formatter(AmountFormatter, AmountParser)
}
