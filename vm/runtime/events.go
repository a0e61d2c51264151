// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package runtime defines the op-code level events emitted by the
// interpreter loop.
package runtime

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/ava-labs/evmtracer/vm/tracing"
	"github.com/ava-labs/evmtracer/vm/types"
)

// Name of the instrumentation subsystem.
const Name = "runtime"

type (
	Listener = tracing.Listener[Event]
	Registry = tracing.Registry[Event]
)

func NewRegistry() *Registry {
	return tracing.NewRegistry[Event](Name)
}

// Event is emitted by the interpreter around every executed op-code and on
// storage access. Stack and Memory alias interpreter state and must be copied
// by listeners that retain them.
type Event interface {
	isEvent()
}

var (
	_ Event = (*Step)(nil)
	_ Event = (*StepResult)(nil)
	_ Event = (*SLoad)(nil)
	_ Event = (*SStore)(nil)
)

// Position is the program counter of the next op-code, or the reason the
// interpreter already stopped.
type Position struct {
	PC   uint64
	Exit *types.ExitReason
}

type Step struct {
	Context  types.Context
	Opcode   vm.OpCode
	Position Position
	Stack    []common.Hash
	Memory   []byte
}

// StepResult reports the outcome of the previous Step. A nil Result means the
// op-code completed and execution continues.
type StepResult struct {
	Result      *types.Capture
	ReturnValue []byte
}

type SLoad struct {
	Address common.Address
	Index   common.Hash
	Value   common.Hash
}

type SStore struct {
	Address common.Address
	Index   common.Hash
	Value   common.Hash
}

func (*Step) isEvent()       {}
func (*StepResult) isEvent() {}
func (*SLoad) isEvent()      {}
func (*SStore) isEvent()     {}
