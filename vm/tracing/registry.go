// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tracing

// Listener receives the events of a single instrumentation subsystem.
type Listener[E any] interface {
	Event(event E)
}

// ListenerFunc is an adapter to allow the use of ordinary functions as
// listeners.
type ListenerFunc[E any] func(event E)

func (f ListenerFunc[E]) Event(event E) {
	f(event)
}

// Registry holds the tracing toggle and the active listener of one
// instrumentation subsystem.
//
// A Registry is not safe for concurrent use. The interpreter emits events on
// the goroutine that executes the transaction and listeners are invoked
// synchronously from Emit.
type Registry[E any] struct {
	name     string
	enabled  bool
	listener Listener[E]
}

func NewRegistry[E any](name string) *Registry[E] {
	return &Registry[E]{name: name}
}

func (r *Registry[E]) Name() string {
	return r.name
}

// EnableTracing toggles whether emitted events are delivered. Enabling an
// already enabled registry is a no-op.
func (r *Registry[E]) EnableTracing(enabled bool) {
	r.enabled = enabled
}

func (r *Registry[E]) Enabled() bool {
	return r.enabled
}

// Listening returns true if a listener is currently registered.
func (r *Registry[E]) Listening() bool {
	return r.listener != nil
}

// Using registers [listener] as the active listener for the duration of [f].
// The previously active listener is restored when [f] returns, including
// when [f] panics.
func (r *Registry[E]) Using(listener Listener[E], f func()) {
	previous := r.listener
	r.listener = listener
	defer func() {
		r.listener = previous
	}()

	f()
}

// Emit delivers [event] to the active listener. Events emitted while tracing
// is disabled, or while no listener is registered, are dropped.
func (r *Registry[E]) Emit(event E) {
	if !r.enabled || r.listener == nil {
		return
	}
	r.listener.Event(event)
}
