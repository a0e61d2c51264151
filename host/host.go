// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package host defines the one-way channel the tracer forwards encoded
// events to.
package host

// Host receives telemetry from the runtime. All calls are one-way
// notifications and any failure is owned by the host.
type Host interface {
	// CallListNew starts a new top-level recording session.
	CallListNew()
	// EvmEvent delivers one encoded call event.
	EvmEvent(payload []byte)
	// GasometerEvent delivers one encoded gas event.
	GasometerEvent(payload []byte)
	// RuntimeEvent delivers one encoded op-code event.
	RuntimeEvent(payload []byte)
}
