package containers

import (
	"sync"

	"github.com/oriel-sdk/oriel/engine/core"
)

// OverflowPolicy decides what happens when a push meets a full queue.
type OverflowPolicy uint8

const (
	// DropOldest evicts the oldest queued event to make room. Input streams
	// prefer stale loss over fresh loss.
	DropOldest OverflowPolicy = iota
	// Reject refuses the incoming event and reports core.ErrQueueFull.
	Reject
)

// DefaultCapacity is used when a queue is created with no explicit size.
const DefaultCapacity = 4096

// EventQueue is a bounded FIFO ring over events. Any goroutine may push;
// Front and Pop expect the single consumer that drives dispatch. Capacity is
// fixed at construction, so a stalled consumer costs bounded memory.
type EventQueue struct {
	mu         sync.Mutex
	data       []core.Event
	size       int
	readIndex  int
	writeIndex int
	count      int
	policy     OverflowPolicy
}

// Create a new EventQueue
func NewEventQueue(size int, policy OverflowPolicy) *EventQueue {
	if size <= 0 {
		size = DefaultCapacity
	}
	return &EventQueue{
		data:   make([]core.Event, size),
		size:   size,
		policy: policy,
	}
}

// Push adds an event to the queue. On a full queue the policy decides:
// Reject returns core.ErrQueueFull, DropOldest evicts the front slot and
// reports evicted=true.
func (q *EventQueue) Push(event core.Event) (evicted bool, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == q.size {
		if q.policy == Reject {
			return false, core.ErrQueueFull
		}
		q.readIndex = (q.readIndex + 1) % q.size
		q.count--
		evicted = true
	}

	q.data[q.writeIndex] = event
	q.writeIndex = (q.writeIndex + 1) % q.size
	q.count++
	return evicted, nil
}

// Front returns the oldest event without removing it
func (q *EventQueue) Front() (core.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return core.Event{}, false
	}
	return q.data[q.readIndex], true
}

// Pop removes and returns the oldest event in the queue
func (q *EventQueue) Pop() (core.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return core.Event{}, false
	}

	event := q.data[q.readIndex]
	// Clear the slot so drop payloads do not outlive their event.
	q.data[q.readIndex] = core.Event{}
	q.readIndex = (q.readIndex + 1) % q.size
	q.count--
	return event, true
}

// Len reports how many events are queued
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// IsEmpty checks if the queue is empty
func (q *EventQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Cap reports the fixed capacity
func (q *EventQueue) Cap() int {
	return q.size
}
