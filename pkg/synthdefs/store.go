package synthdefs

import "sync/atomic"

// LFOParameterStore publishes LFOParameters from a control goroutine to
// audio-thread readers. Each publish swaps a pointer to a private copy, so a
// reader sees either the whole old set or the whole new set.
//
// Load never allocates or blocks. Store and Update allocate one copy each and
// belong on the control side. The zero value holds DefaultLFOParameters.
type LFOParameterStore struct {
	current atomic.Pointer[LFOParameters]
}

// NewLFOParameterStore returns a store holding initial.
func NewLFOParameterStore(initial LFOParameters) *LFOParameterStore {
	s := &LFOParameterStore{}
	s.Store(initial)
	return s
}

// Load returns a copy of the current parameters.
func (s *LFOParameterStore) Load() LFOParameters {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return DefaultLFOParameters()
}

// Store publishes a copy of p.
func (s *LFOParameterStore) Store(p LFOParameters) {
	s.current.Store(&p)
}

// Update applies fn to a copy of the current parameters and publishes the
// result. fn may run more than once if another writer publishes concurrently,
// so it must not have side effects beyond editing its argument.
func (s *LFOParameterStore) Update(fn func(*LFOParameters)) LFOParameters {
	for {
		old := s.current.Load()
		next := DefaultLFOParameters()
		if old != nil {
			next = *old
		}
		fn(&next)
		if s.current.CompareAndSwap(old, &next) {
			return next
		}
	}
}
