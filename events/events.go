// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package events defines the canonical form of the events forwarded to the
// host. Canonical events own their memory and are encoded as an RLP list of
// the variant tag followed by the variant body.
package events

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/ava-labs/evmtracer/vm/types"
)

var (
	errUnknownEvent   = errors.New("unknown event")
	errUnknownTag     = errors.New("unknown event tag")
	errInvalidCapture = errors.New("capture must have exactly one of exit and trap")
)

type Subsystem uint8

const (
	Evm Subsystem = iota
	Gasometer
	Runtime
)

func (s Subsystem) String() string {
	switch s {
	case Evm:
		return "evm"
	case Gasometer:
		return "gasometer"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Event is a canonical event of one of the instrumentation subsystems.
type Event interface {
	Subsystem() Subsystem
	tag() uint8
}

type EvmEvent interface {
	Event
	isEvmEvent()
}

type GasometerEvent interface {
	Event
	isGasometerEvent()
}

type RuntimeEvent interface {
	Event
	isRuntimeEvent()
}

// Unexported markers are embedded into every variant. RLP skips unexported
// fields so they never reach the wire.
type (
	evmEvent       struct{}
	gasometerEvent struct{}
	runtimeEvent   struct{}
)

func (evmEvent) Subsystem() Subsystem       { return Evm }
func (evmEvent) isEvmEvent()                {}
func (gasometerEvent) Subsystem() Subsystem { return Gasometer }
func (gasometerEvent) isGasometerEvent()    {}
func (runtimeEvent) Subsystem() Subsystem   { return Runtime }
func (runtimeEvent) isRuntimeEvent()        {}

// TargetGas is an optional gas limit. It is a struct so that a present zero
// and an absent value encode differently.
type TargetGas struct {
	Gas uint64
}

// SignedGas carries a signed gas amount, which RLP can't represent directly.
type SignedGas struct {
	Negative  bool
	Magnitude uint64
}

func NewSignedGas(v int64) SignedGas {
	if v >= 0 {
		return SignedGas{Magnitude: uint64(v)}
	}
	return SignedGas{
		Negative:  true,
		Magnitude: uint64(-(v + 1)) + 1,
	}
}

func (s SignedGas) Int64() int64 {
	if s.Negative {
		return -int64(s.Magnitude-1) - 1
	}
	return int64(s.Magnitude)
}

func copyTargetGas(gas *uint64) *TargetGas {
	if gas == nil {
		return nil
	}
	return &TargetGas{Gas: *gas}
}

func copyValue(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v.Clone()
}

func copyContext(c types.Context) types.Context {
	return types.Context{
		Address:       c.Address,
		Caller:        c.Caller,
		ApparentValue: copyValue(c.ApparentValue),
	}
}

func copyTransfer(t *types.Transfer) *types.Transfer {
	if t == nil {
		return nil
	}
	return &types.Transfer{
		Source: t.Source,
		Target: t.Target,
		Value:  copyValue(t.Value),
	}
}

func copyExitReason(r *types.ExitReason) *types.ExitReason {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
