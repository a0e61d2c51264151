// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"sync"

	"github.com/ava-labs/evmtracer/events"
)

var _ Host = (*Recorder)(nil)

type Kind uint8

const (
	CallListNew Kind = iota
	EvmEvent
	GasometerEvent
	RuntimeEvent
)

func (k Kind) String() string {
	switch k {
	case CallListNew:
		return "call_list_new"
	case EvmEvent:
		return "evm_event"
	case GasometerEvent:
		return "gasometer_event"
	case RuntimeEvent:
		return "runtime_event"
	default:
		return "unknown"
	}
}

// KindOf returns the host call that carries events of [subsystem].
func KindOf(subsystem events.Subsystem) Kind {
	switch subsystem {
	case events.Evm:
		return EvmEvent
	case events.Gasometer:
		return GasometerEvent
	default:
		return RuntimeEvent
	}
}

// Notification is a single call received by a Recorder.
type Notification struct {
	Kind    Kind
	Payload []byte
}

// Recorder is an in-memory Host that keeps every notification in arrival
// order.
type Recorder struct {
	lock          sync.Mutex
	notifications []Notification
}

func (r *Recorder) CallListNew() {
	r.record(CallListNew, nil)
}

func (r *Recorder) EvmEvent(payload []byte) {
	r.record(EvmEvent, payload)
}

func (r *Recorder) GasometerEvent(payload []byte) {
	r.record(GasometerEvent, payload)
}

func (r *Recorder) RuntimeEvent(payload []byte) {
	r.record(RuntimeEvent, payload)
}

func (r *Recorder) record(kind Kind, payload []byte) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.notifications = append(r.notifications, Notification{
		Kind:    kind,
		Payload: payload,
	})
}

// Notifications returns a copy of the notifications received so far.
func (r *Recorder) Notifications() []Notification {
	r.lock.Lock()
	defer r.lock.Unlock()

	notifications := make([]Notification, len(r.notifications))
	copy(notifications, r.notifications)
	return notifications
}

func (r *Recorder) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return len(r.notifications)
}

func (r *Recorder) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.notifications = nil
}
