// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the values shared by the events of the evm,
// gasometer and runtime instrumentation subsystems.
package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Context is the execution context of a call frame.
type Context struct {
	Address       common.Address
	Caller        common.Address
	ApparentValue *uint256.Int
}

// Transfer describes the value moved by a call.
type Transfer struct {
	Source common.Address
	Target common.Address
	Value  *uint256.Int
}

type CreateSchemeKind uint8

const (
	Legacy CreateSchemeKind = iota
	Create2
	Fixed
)

func (k CreateSchemeKind) String() string {
	switch k {
	case Legacy:
		return "legacy"
	case Create2:
		return "create2"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// CreateScheme describes how the address of a created contract is derived.
// Caller is set for Legacy and Create2, CodeHash and Salt for Create2, and
// Address for Fixed.
type CreateScheme struct {
	Kind     CreateSchemeKind
	Caller   common.Address
	CodeHash common.Hash
	Salt     common.Hash
	Address  common.Address
}

type Trap uint8

const (
	TrapCall Trap = iota
	TrapCreate
)

func (t Trap) String() string {
	switch t {
	case TrapCall:
		return "call"
	case TrapCreate:
		return "create"
	default:
		return "unknown"
	}
}

// Capture is the outcome of a step that interrupted the interpreter loop.
// Exactly one of Exit and Trap is set.
type Capture struct {
	Exit *ExitReason
	Trap *Trap
}

func CaptureExit(reason ExitReason) *Capture {
	return &Capture{Exit: &reason}
}

func CaptureTrap(trap Trap) *Capture {
	return &Capture{Trap: &trap}
}
