package midi

import (
	"sort"
	"sync"
)

// EventQueue holds events for the current block ordered by sample offset.
// Events with the same offset keep their arrival order.
type EventQueue struct {
	events []Event
	mu     sync.Mutex
	sorted bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]Event, 0, 128),
		sorted: true,
	}
}

func (q *EventQueue) Add(events ...Event) {
	if len(events) == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, events...)
	q.sorted = false
}

// EventsInRange returns a copy of the events with startSample <= offset < endSample.
func (q *EventQueue) EventsInRange(startSample, endSample int32) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	startIdx, endIdx := q.rangeLocked(startSample, endSample)
	if startIdx == endIdx {
		return nil
	}

	result := make([]Event, endIdx-startIdx)
	copy(result, q.events[startIdx:endIdx])
	return result
}

func (q *EventQueue) rangeLocked(startSample, endSample int32) (int, int) {
	q.sortLocked()

	startIdx := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].SampleOffset() >= startSample
	})
	endIdx := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].SampleOffset() >= endSample
	})
	if endIdx < startIdx {
		endIdx = startIdx
	}
	return startIdx, endIdx
}

// RemoveProcessed drops every event at or before upToSample.
func (q *EventQueue) RemoveProcessed(upToSample int32) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.sortLocked()

	keepIdx := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].SampleOffset() > upToSample
	})

	if keepIdx > 0 {
		n := copy(q.events, q.events[keepIdx:])
		clear(q.events[n:])
		q.events = q.events[:n]
	}
}

func (q *EventQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	clear(q.events)
	q.events = q.events[:0]
	q.sorted = true
}

func (q *EventQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Offsetter is implemented by Event types outside this package that can be
// shifted by OffsetEvents.
type Offsetter interface {
	WithOffset(delta int32) Event
}

// OffsetEvents shifts every queued event by offset samples. Events of this
// package and those implementing Offsetter are shifted; any other Event is
// left at its original offset.
func (q *EventQueue) OffsetEvents(offset int32) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.sorted = false
	for i := range q.events {
		switch e := q.events[i].(type) {
		case NoteOnEvent:
			e.Offset += offset
			q.events[i] = e
		case NoteOffEvent:
			e.Offset += offset
			q.events[i] = e
		case ControlChangeEvent:
			e.Offset += offset
			q.events[i] = e
		case PitchBendEvent:
			e.Offset += offset
			q.events[i] = e
		case ChannelPressureEvent:
			e.Offset += offset
			q.events[i] = e
		case Offsetter:
			q.events[i] = e.WithOffset(offset)
		}
	}
}

func (q *EventQueue) sortLocked() {
	if q.sorted {
		return
	}
	sort.SliceStable(q.events, func(i, j int) bool {
		return q.events[i].SampleOffset() < q.events[j].SampleOffset()
	})
	q.sorted = true
}

type EventProcessor interface {
	ProcessEvent(event Event)
}

// ProcessBlock hands the events in [startSample, endSample) to processor in
// offset order. The queue lock is not held while processor runs.
func (q *EventQueue) ProcessBlock(processor EventProcessor, startSample, endSample int32) int {
	events := q.EventsInRange(startSample, endSample)
	for _, event := range events {
		processor.ProcessEvent(event)
	}
	return len(events)
}
