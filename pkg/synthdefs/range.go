package synthdefs

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange reports bounds with min > max, or bounds that are not
// finite numbers.
var ErrInvalidRange = errors.New("synthdefs: invalid range")

// Range is a validated closed interval. Build it with NewRange during setup;
// Clamp and the mapping helpers can then run on the audio thread without
// re-checking the bounds.
type Range[T Number] struct {
	min T
	max T
}

// NewRange validates min <= max. Float bounds must also be finite.
func NewRange[T Number](min, max T) (Range[T], error) {
	if isNonFinite(min) || isNonFinite(max) {
		return Range[T]{}, fmt.Errorf("%w: non-finite bound [%v, %v]", ErrInvalidRange, min, max)
	}
	if min > max {
		return Range[T]{}, fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, min, max)
	}
	return Range[T]{min: min, max: max}, nil
}

// MustRange is NewRange for package-level tables; it panics on bad bounds.
func MustRange[T Number](min, max T) Range[T] {
	r, err := NewRange(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r Range[T]) Min() T { return r.min }

// Max returns the upper bound.
func (r Range[T]) Max() T { return r.max }

// Span returns max - min as a float64.
func (r Range[T]) Span() float64 { return float64(r.max) - float64(r.min) }

// Contains reports whether v lies inside the range.
func (r Range[T]) Contains(v T) bool { return v >= r.min && v <= r.max }

// Clamp bounds v to the range.
func (r Range[T]) Clamp(v T) T { return BoundValue(v, r.min, r.max) }

// Normalize maps v into [0, 1], clamping first. A zero-width range maps
// everything to 0.
func (r Range[T]) Normalize(v T) float64 {
	span := r.Span()
	if span == 0 {
		return 0
	}
	return (float64(r.Clamp(v)) - float64(r.min)) / span
}

// Denormalize maps a unipolar value back into the range. The result is exact
// at both ends.
func (r Range[T]) Denormalize(unipolar float64) float64 {
	return lerpExact(float64(r.min), float64(r.max), BoundValue(unipolar, 0, 1))
}

func isNonFinite[T Number](v T) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
