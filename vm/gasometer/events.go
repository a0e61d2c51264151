// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gasometer defines the gas accounting events emitted by the
// gasometer.
package gasometer

import "github.com/ava-labs/evmtracer/vm/tracing"

// Name of the instrumentation subsystem.
const Name = "gasometer"

type (
	Listener = tracing.Listener[Event]
	Registry = tracing.Registry[Event]
)

func NewRegistry() *Registry {
	return tracing.NewRegistry[Event](Name)
}

// Snapshot is the gasometer state after an event was recorded.
type Snapshot struct {
	GasLimit    uint64
	MemoryGas   uint64
	UsedGas     uint64
	RefundedGas int64
}

// Event is emitted each time the gasometer records a cost or a refund.
type Event interface {
	isEvent()
}

var (
	_ Event = (*RecordCost)(nil)
	_ Event = (*RecordRefund)(nil)
	_ Event = (*RecordStipend)(nil)
	_ Event = (*RecordDynamicCost)(nil)
	_ Event = (*RecordTransaction)(nil)
)

type RecordCost struct {
	Cost     uint64
	Snapshot *Snapshot
}

type RecordRefund struct {
	Refund   int64
	Snapshot *Snapshot
}

type RecordStipend struct {
	Stipend  uint64
	Snapshot *Snapshot
}

type RecordDynamicCost struct {
	GasCost   uint64
	MemoryGas uint64
	GasRefund int64
	Snapshot  *Snapshot
}

type RecordTransaction struct {
	Cost     uint64
	Snapshot *Snapshot
}

func (*RecordCost) isEvent()        {}
func (*RecordRefund) isEvent()      {}
func (*RecordStipend) isEvent()     {}
func (*RecordDynamicCost) isEvent() {}
func (*RecordTransaction) isEvent() {}
