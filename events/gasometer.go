// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"fmt"

	"github.com/ava-labs/evmtracer/vm/gasometer"
)

const (
	tagRecordCost uint8 = iota
	tagRecordRefund
	tagRecordStipend
	tagRecordDynamicCost
	tagRecordTransaction
)

type Snapshot struct {
	GasLimit    uint64
	MemoryGas   uint64
	UsedGas     uint64
	RefundedGas SignedGas
}

type RecordCost struct {
	gasometerEvent
	Cost     uint64
	Snapshot *Snapshot `rlp:"nil"`
}

type RecordRefund struct {
	gasometerEvent
	Refund   SignedGas
	Snapshot *Snapshot `rlp:"nil"`
}

type RecordStipend struct {
	gasometerEvent
	Stipend  uint64
	Snapshot *Snapshot `rlp:"nil"`
}

type RecordDynamicCost struct {
	gasometerEvent
	GasCost   uint64
	MemoryGas uint64
	GasRefund SignedGas
	Snapshot  *Snapshot `rlp:"nil"`
}

type RecordTransaction struct {
	gasometerEvent
	Cost     uint64
	Snapshot *Snapshot `rlp:"nil"`
}

func (RecordCost) tag() uint8        { return tagRecordCost }
func (RecordRefund) tag() uint8      { return tagRecordRefund }
func (RecordStipend) tag() uint8     { return tagRecordStipend }
func (RecordDynamicCost) tag() uint8 { return tagRecordDynamicCost }
func (RecordTransaction) tag() uint8 { return tagRecordTransaction }

func copySnapshot(s *gasometer.Snapshot) *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		GasLimit:    s.GasLimit,
		MemoryGas:   s.MemoryGas,
		UsedGas:     s.UsedGas,
		RefundedGas: NewSignedGas(s.RefundedGas),
	}
}

// FromGasometer converts a gasometer event into its canonical form.
func FromGasometer(event gasometer.Event) (GasometerEvent, error) {
	switch e := event.(type) {
	case *gasometer.RecordCost:
		return &RecordCost{
			Cost:     e.Cost,
			Snapshot: copySnapshot(e.Snapshot),
		}, nil
	case *gasometer.RecordRefund:
		return &RecordRefund{
			Refund:   NewSignedGas(e.Refund),
			Snapshot: copySnapshot(e.Snapshot),
		}, nil
	case *gasometer.RecordStipend:
		return &RecordStipend{
			Stipend:  e.Stipend,
			Snapshot: copySnapshot(e.Snapshot),
		}, nil
	case *gasometer.RecordDynamicCost:
		return &RecordDynamicCost{
			GasCost:   e.GasCost,
			MemoryGas: e.MemoryGas,
			GasRefund: NewSignedGas(e.GasRefund),
			Snapshot:  copySnapshot(e.Snapshot),
		}, nil
	case *gasometer.RecordTransaction:
		return &RecordTransaction{
			Cost:     e.Cost,
			Snapshot: copySnapshot(e.Snapshot),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnknownEvent, event)
	}
}

func newGasometerEvent(tag uint8) (GasometerEvent, error) {
	switch tag {
	case tagRecordCost:
		return &RecordCost{}, nil
	case tagRecordRefund:
		return &RecordRefund{}, nil
	case tagRecordStipend:
		return &RecordStipend{}, nil
	case tagRecordDynamicCost:
		return &RecordDynamicCost{}, nil
	case tagRecordTransaction:
		return &RecordTransaction{}, nil
	default:
		return nil, fmt.Errorf("%w: gasometer %d", errUnknownTag, tag)
	}
}
