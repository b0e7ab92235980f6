package sse

import "sync"

// Event is a server-sent event payload. Type is used as the SSE
// "event:" name, Data is an arbitrary JSON-serialisable body.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub keeps in-memory SSE subscribers grouped by topic. Dashboard
// clients all subscribe to the same notification topic; the hub is
// process-local, with cross-instance fanout handled by the Redis bridge.
// It uses sync.Map to minimise lock contention under subscriber churn.
type Hub struct {
	// subscribers maps topic -> *sync.Map representing a set of channels.
	subscribers sync.Map // map[string]*sync.Map

	// mu serialises publishes against channel close in unsubscribe, so a
	// publish racing a disconnect can never send on a closed channel.
	mu sync.RWMutex
}

// NewHub constructs a Hub.
func NewHub() *Hub {
	return &Hub{}
}

var defaultHub = NewHub()

// DefaultHub exposes the process-global hub.
func DefaultHub() *Hub {
	return defaultHub
}

// Subscribe registers a topic subscriber and returns a channel plus an
// unsubscribe function that must be called on disconnect.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	v, _ := h.subscribers.LoadOrStore(topic, &sync.Map{})
	inner := v.(*sync.Map)
	inner.Store(ch, struct{}{})

	unsubscribe := func() {
		h.mu.Lock()
		inner.Delete(ch)
		close(ch)
		h.mu.Unlock()
		// Empty inner maps are left in place; topics are a small fixed set.
	}

	return ch, unsubscribe
}

// Publish sends an event to all subscribers of the given topic.
// Slow consumers are skipped to avoid blocking producer code.
func (h *Hub) Publish(topic string, ev Event) {
	v, ok := h.subscribers.Load(topic)
	if !ok {
		return
	}
	inner := v.(*sync.Map)

	// Sends never block (select/default below), so holding the read lock
	// across the fanout is cheap.
	h.mu.RLock()
	defer h.mu.RUnlock()

	inner.Range(func(key, _ interface{}) bool {
		ch, ok := key.(chan Event)
		if !ok {
			return true
		}
		select {
		case ch <- ev:
		default:
			// drop if subscriber is slow
		}
		return true
	})
}
