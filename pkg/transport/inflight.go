package transport

import (
	"context"
	"sync"
)

// InFlightRegistry tracks streams that are currently being sent, for
// explicit cancellation. It maps request IDs to their cancel functions,
// allowing a forced shutdown to abort streams that are still in progress.
//
// All methods are safe for concurrent access.
type InFlightRegistry struct {
	mu      sync.Mutex
	entries map[string]context.CancelFunc
}

// NewInFlightRegistry creates a new empty registry.
func NewInFlightRegistry() *InFlightRegistry {
	return &InFlightRegistry{
		entries: make(map[string]context.CancelFunc),
	}
}

// Register adds an in-flight stream to the registry. The cancel function
// will be called if the stream is explicitly cancelled.
func (r *InFlightRegistry) Register(id string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = cancel
}

// Cancel cancels an in-flight stream by calling its cancel function.
// Returns true if the stream was found and cancelled, false if the ID
// was not registered (either already completed or never existed).
func (r *InFlightRegistry) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	cancel, ok := r.entries[id]
	if !ok {
		return false
	}
	cancel()
	delete(r.entries, id)
	return true
}

// CancelAll cancels every registered stream and empties the registry.
// Called on forced shutdown once the grace period has elapsed.
func (r *InFlightRegistry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, cancel := range r.entries {
		cancel()
		delete(r.entries, id)
	}
}

// Remove removes a stream from the registry without cancelling it.
// Called when a stream completes normally.
func (r *InFlightRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len reports how many streams are currently in flight.
func (r *InFlightRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
