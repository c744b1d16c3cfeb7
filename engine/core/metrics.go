package core

import "sync/atomic"

// Metrics counts routing activity. All counters are atomic; producers and
// the dispatching consumer touch them without coordination. Each bridge
// carries its own instance.
type Metrics struct {
	pushed        atomic.Uint64
	dropped       atomic.Uint64
	dispatched    atomic.Uint64
	routingMisses atomic.Uint64
	queuePeak     atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	// Pushed counts events accepted into the queue.
	Pushed uint64
	// Dropped counts events lost to overflow, whichever side was evicted.
	Dropped uint64
	// Dispatched counts events handed to callbacks.
	Dispatched uint64
	// RoutingMisses counts dispatches whose window handle resolved to
	// nothing. Process-wide events do not miss.
	RoutingMisses uint64
	// QueuePeak is the deepest the queue has been since startup.
	QueuePeak int64
}

func (m *Metrics) CountPushed()      { m.pushed.Add(1) }
func (m *Metrics) CountDropped()     { m.dropped.Add(1) }
func (m *Metrics) CountDispatched()  { m.dispatched.Add(1) }
func (m *Metrics) CountRoutingMiss() { m.routingMisses.Add(1) }

// ObserveQueueLen records a high-water mark for the queue depth.
func (m *Metrics) ObserveQueueLen(length int) {
	depth := int64(length)
	for {
		peak := m.queuePeak.Load()
		if depth <= peak {
			return
		}
		if m.queuePeak.CompareAndSwap(peak, depth) {
			return
		}
	}
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Pushed:        m.pushed.Load(),
		Dropped:       m.dropped.Load(),
		Dispatched:    m.dispatched.Load(),
		RoutingMisses: m.routingMisses.Load(),
		QueuePeak:     m.queuePeak.Load(),
	}
}
