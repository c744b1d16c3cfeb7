package containers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriel-sdk/oriel/engine/core"
)

func customEvent(code uint32, seq int) core.Event {
	return core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: code, Data: seq})
}

func TestQueuePreservesOrder(t *testing.T) {
	q := NewEventQueue(16, DropOldest)

	for i := 0; i < 10; i++ {
		_, err := q.Push(customEvent(0, i))
		require.NoError(t, err)
	}
	assert.Equal(t, 10, q.Len())

	for i := 0; i < 10; i++ {
		event, ok := q.Pop()
		require.True(t, ok)
		p, ok := event.Custom()
		require.True(t, ok)
		assert.Equal(t, i, p.Data)
	}
	assert.True(t, q.IsEmpty())
}

func TestQueueFrontDoesNotConsume(t *testing.T) {
	q := NewEventQueue(4, DropOldest)
	_, err := q.Push(customEvent(7, 0))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		event, ok := q.Front()
		require.True(t, ok)
		p, _ := event.Custom()
		assert.Equal(t, uint32(7), p.Code)
	}
	assert.Equal(t, 1, q.Len())

	_, ok := q.Pop()
	require.True(t, ok)
	_, ok = q.Front()
	assert.False(t, ok)
}

func TestQueueEmptyPopAndFront(t *testing.T) {
	q := NewEventQueue(4, DropOldest)

	event, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, core.Event{}, event)

	event, ok = q.Front()
	assert.False(t, ok)
	assert.Equal(t, core.Event{}, event)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
}

func TestQueueDropOldestEvicts(t *testing.T) {
	q := NewEventQueue(4, DropOldest)

	for i := 0; i < 4; i++ {
		evicted, err := q.Push(customEvent(0, i))
		require.NoError(t, err)
		assert.False(t, evicted)
	}

	// Two more pushes displace the two oldest events.
	for i := 4; i < 6; i++ {
		evicted, err := q.Push(customEvent(0, i))
		require.NoError(t, err)
		assert.True(t, evicted)
	}
	assert.Equal(t, 4, q.Len())

	for i := 2; i < 6; i++ {
		event, ok := q.Pop()
		require.True(t, ok)
		p, _ := event.Custom()
		assert.Equal(t, i, p.Data)
	}
}

func TestQueueRejectKeepsOldest(t *testing.T) {
	q := NewEventQueue(2, Reject)

	for i := 0; i < 2; i++ {
		_, err := q.Push(customEvent(0, i))
		require.NoError(t, err)
	}

	evicted, err := q.Push(customEvent(0, 2))
	assert.ErrorIs(t, err, core.ErrQueueFull)
	assert.False(t, evicted)
	assert.Equal(t, 2, q.Len())

	event, ok := q.Pop()
	require.True(t, ok)
	p, _ := event.Custom()
	assert.Equal(t, 0, p.Data)
}

func TestQueueDefaultsCapacity(t *testing.T) {
	q := NewEventQueue(0, DropOldest)
	assert.Equal(t, DefaultCapacity, q.Cap())

	q = NewEventQueue(-3, Reject)
	assert.Equal(t, DefaultCapacity, q.Cap())
}

func TestQueueWrapsAround(t *testing.T) {
	q := NewEventQueue(4, DropOldest)

	// Interleave pushes and pops so the indices lap the backing array.
	next := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			_, err := q.Push(customEvent(0, next))
			require.NoError(t, err)
			next++
		}
		for j := 0; j < 3; j++ {
			_, ok := q.Pop()
			require.True(t, ok)
		}
	}
	assert.True(t, q.IsEmpty())
}

func TestQueueConcurrentProducers(t *testing.T) {
	const producers = 4
	const perProducer = 1000

	q := NewEventQueue(producers*perProducer, Reject)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(producer uint32) {
			defer wg.Done()
			for seq := 0; seq < perProducer; seq++ {
				_, err := q.Push(customEvent(producer, seq))
				assert.NoError(t, err)
			}
		}(uint32(p))
	}
	wg.Wait()

	require.Equal(t, producers*perProducer, q.Len())

	// Per producer the sequence numbers must come out in push order.
	lastSeen := make(map[uint32]int, producers)
	for p := 0; p < producers; p++ {
		lastSeen[uint32(p)] = -1
	}
	for !q.IsEmpty() {
		event, ok := q.Pop()
		require.True(t, ok)
		p, ok := event.Custom()
		require.True(t, ok)
		seq := p.Data.(int)
		assert.Greater(t, seq, lastSeen[p.Code])
		lastSeen[p.Code] = seq
	}
	for p := 0; p < producers; p++ {
		assert.Equal(t, perProducer-1, lastSeen[uint32(p)])
	}
}
