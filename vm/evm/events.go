// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package evm defines the call and sub-call events emitted by the executor.
package evm

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ava-labs/evmtracer/vm/tracing"
	"github.com/ava-labs/evmtracer/vm/types"
)

// Name of the instrumentation subsystem.
const Name = "evm"

type (
	Listener = tracing.Listener[Event]
	Registry = tracing.Registry[Event]
)

func NewRegistry() *Registry {
	return tracing.NewRegistry[Event](Name)
}

// Event is emitted by the executor when a call frame is entered or left.
// Events reference interpreter memory and are only valid for the duration of
// the listener callback.
type Event interface {
	isEvent()
}

var (
	_ Event = (*Call)(nil)
	_ Event = (*Create)(nil)
	_ Event = (*Suicide)(nil)
	_ Event = (*Exit)(nil)
	_ Event = (*TransactCall)(nil)
	_ Event = (*TransactCreate)(nil)
	_ Event = (*TransactCreate2)(nil)
	_ Event = (*PrecompileSubcall)(nil)
)

type Call struct {
	CodeAddress common.Address
	Transfer    *types.Transfer
	Input       []byte
	TargetGas   *uint64
	IsStatic    bool
	Context     types.Context
}

type Create struct {
	Caller    common.Address
	Address   common.Address
	Scheme    types.CreateScheme
	Value     *uint256.Int
	InitCode  []byte
	TargetGas *uint64
}

type Suicide struct {
	Address common.Address
	Target  common.Address
	Balance *uint256.Int
}

type Exit struct {
	Reason      types.ExitReason
	ReturnValue []byte
}

type TransactCall struct {
	Caller   common.Address
	Address  common.Address
	Value    *uint256.Int
	Data     []byte
	GasLimit *uint256.Int
}

type TransactCreate struct {
	Caller   common.Address
	Value    *uint256.Int
	InitCode []byte
	GasLimit *uint256.Int
	Address  common.Address
}

type TransactCreate2 struct {
	Caller   common.Address
	Value    *uint256.Int
	InitCode []byte
	Salt     common.Hash
	GasLimit *uint256.Int
	Address  common.Address
}

type PrecompileSubcall struct {
	CodeAddress common.Address
	Transfer    *types.Transfer
	Input       []byte
	TargetGas   *uint64
	IsStatic    bool
	Context     types.Context
}

func (*Call) isEvent()              {}
func (*Create) isEvent()            {}
func (*Suicide) isEvent()           {}
func (*Exit) isEvent()              {}
func (*TransactCall) isEvent()      {}
func (*TransactCreate) isEvent()    {}
func (*TransactCreate2) isEvent()   {}
func (*PrecompileSubcall) isEvent() {}
