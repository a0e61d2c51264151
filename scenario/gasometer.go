// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import "github.com/ava-labs/evmtracer/vm/gasometer"

var gasometerDecoders = map[string]decoder{
	"RecordCost":        decode[recordCost],
	"RecordRefund":      decode[recordRefund],
	"RecordStipend":     decode[recordStipend],
	"RecordDynamicCost": decode[recordDynamicCost],
	"RecordTransaction": decode[recordTransaction],
}

type snapshot struct {
	GasLimit    uint64 `json:"gasLimit"`
	MemoryGas   uint64 `json:"memoryGas"`
	UsedGas     uint64 `json:"usedGas"`
	RefundedGas int64  `json:"refundedGas"`
}

func (s *snapshot) native() *gasometer.Snapshot {
	if s == nil {
		return nil
	}
	return &gasometer.Snapshot{
		GasLimit:    s.GasLimit,
		MemoryGas:   s.MemoryGas,
		UsedGas:     s.UsedGas,
		RefundedGas: s.RefundedGas,
	}
}

type recordCost struct {
	Cost     uint64    `json:"cost"`
	Snapshot *snapshot `json:"snapshot"`
}

func (r *recordCost) event() (Event, error) {
	return Event{Gasometer: &gasometer.RecordCost{
		Cost:     r.Cost,
		Snapshot: r.Snapshot.native(),
	}}, nil
}

type recordRefund struct {
	Refund   int64     `json:"refund"`
	Snapshot *snapshot `json:"snapshot"`
}

func (r *recordRefund) event() (Event, error) {
	return Event{Gasometer: &gasometer.RecordRefund{
		Refund:   r.Refund,
		Snapshot: r.Snapshot.native(),
	}}, nil
}

type recordStipend struct {
	Stipend  uint64    `json:"stipend"`
	Snapshot *snapshot `json:"snapshot"`
}

func (r *recordStipend) event() (Event, error) {
	return Event{Gasometer: &gasometer.RecordStipend{
		Stipend:  r.Stipend,
		Snapshot: r.Snapshot.native(),
	}}, nil
}

type recordDynamicCost struct {
	GasCost   uint64    `json:"gasCost"`
	MemoryGas uint64    `json:"memoryGas"`
	GasRefund int64     `json:"gasRefund"`
	Snapshot  *snapshot `json:"snapshot"`
}

func (r *recordDynamicCost) event() (Event, error) {
	return Event{Gasometer: &gasometer.RecordDynamicCost{
		GasCost:   r.GasCost,
		MemoryGas: r.MemoryGas,
		GasRefund: r.GasRefund,
		Snapshot:  r.Snapshot.native(),
	}}, nil
}

type recordTransaction struct {
	Cost     uint64    `json:"cost"`
	Snapshot *snapshot `json:"snapshot"`
}

func (r *recordTransaction) event() (Event, error) {
	return Event{Gasometer: &gasometer.RecordTransaction{
		Cost:     r.Cost,
		Snapshot: r.Snapshot.native(),
	}}, nil
}
