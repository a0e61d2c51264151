// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/types"
)

const (
	tagCall uint8 = iota
	tagCreate
	tagSuicide
	tagExit
	tagTransactCall
	tagTransactCreate
	tagTransactCreate2
	tagPrecompileSubcall
)

type Call struct {
	evmEvent
	CodeAddress common.Address
	Transfer    *types.Transfer `rlp:"nil"`
	Input       []byte
	TargetGas   *TargetGas `rlp:"nil"`
	IsStatic    bool
	Context     types.Context
}

type Create struct {
	evmEvent
	Caller    common.Address
	Address   common.Address
	Scheme    types.CreateScheme
	Value     *uint256.Int
	InitCode  []byte
	TargetGas *TargetGas `rlp:"nil"`
}

type Suicide struct {
	evmEvent
	Address common.Address
	Target  common.Address
	Balance *uint256.Int
}

type Exit struct {
	evmEvent
	Reason      types.ExitReason
	ReturnValue []byte
}

type TransactCall struct {
	evmEvent
	Caller   common.Address
	Address  common.Address
	Value    *uint256.Int
	Data     []byte
	GasLimit *uint256.Int
}

type TransactCreate struct {
	evmEvent
	Caller   common.Address
	Value    *uint256.Int
	InitCode []byte
	GasLimit *uint256.Int
	Address  common.Address
}

type TransactCreate2 struct {
	evmEvent
	Caller   common.Address
	Value    *uint256.Int
	InitCode []byte
	Salt     common.Hash
	GasLimit *uint256.Int
	Address  common.Address
}

type PrecompileSubcall struct {
	evmEvent
	CodeAddress common.Address
	Transfer    *types.Transfer `rlp:"nil"`
	Input       []byte
	TargetGas   *TargetGas `rlp:"nil"`
	IsStatic    bool
	Context     types.Context
}

func (Call) tag() uint8              { return tagCall }
func (Create) tag() uint8            { return tagCreate }
func (Suicide) tag() uint8           { return tagSuicide }
func (Exit) tag() uint8              { return tagExit }
func (TransactCall) tag() uint8      { return tagTransactCall }
func (TransactCreate) tag() uint8    { return tagTransactCreate }
func (TransactCreate2) tag() uint8   { return tagTransactCreate2 }
func (PrecompileSubcall) tag() uint8 { return tagPrecompileSubcall }

// FromEvm converts an executor event into its canonical form.
func FromEvm(event evm.Event) (EvmEvent, error) {
	switch e := event.(type) {
	case *evm.Call:
		return &Call{
			CodeAddress: e.CodeAddress,
			Transfer:    copyTransfer(e.Transfer),
			Input:       common.CopyBytes(e.Input),
			TargetGas:   copyTargetGas(e.TargetGas),
			IsStatic:    e.IsStatic,
			Context:     copyContext(e.Context),
		}, nil
	case *evm.Create:
		return &Create{
			Caller:    e.Caller,
			Address:   e.Address,
			Scheme:    e.Scheme,
			Value:     copyValue(e.Value),
			InitCode:  common.CopyBytes(e.InitCode),
			TargetGas: copyTargetGas(e.TargetGas),
		}, nil
	case *evm.Suicide:
		return &Suicide{
			Address: e.Address,
			Target:  e.Target,
			Balance: copyValue(e.Balance),
		}, nil
	case *evm.Exit:
		return &Exit{
			Reason:      e.Reason,
			ReturnValue: common.CopyBytes(e.ReturnValue),
		}, nil
	case *evm.TransactCall:
		return &TransactCall{
			Caller:   e.Caller,
			Address:  e.Address,
			Value:    copyValue(e.Value),
			Data:     common.CopyBytes(e.Data),
			GasLimit: copyValue(e.GasLimit),
		}, nil
	case *evm.TransactCreate:
		return &TransactCreate{
			Caller:   e.Caller,
			Value:    copyValue(e.Value),
			InitCode: common.CopyBytes(e.InitCode),
			GasLimit: copyValue(e.GasLimit),
			Address:  e.Address,
		}, nil
	case *evm.TransactCreate2:
		return &TransactCreate2{
			Caller:   e.Caller,
			Value:    copyValue(e.Value),
			InitCode: common.CopyBytes(e.InitCode),
			Salt:     e.Salt,
			GasLimit: copyValue(e.GasLimit),
			Address:  e.Address,
		}, nil
	case *evm.PrecompileSubcall:
		return &PrecompileSubcall{
			CodeAddress: e.CodeAddress,
			Transfer:    copyTransfer(e.Transfer),
			Input:       common.CopyBytes(e.Input),
			TargetGas:   copyTargetGas(e.TargetGas),
			IsStatic:    e.IsStatic,
			Context:     copyContext(e.Context),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnknownEvent, event)
	}
}

func newEvmEvent(tag uint8) (EvmEvent, error) {
	switch tag {
	case tagCall:
		return &Call{}, nil
	case tagCreate:
		return &Create{}, nil
	case tagSuicide:
		return &Suicide{}, nil
	case tagExit:
		return &Exit{}, nil
	case tagTransactCall:
		return &TransactCall{}, nil
	case tagTransactCreate:
		return &TransactCreate{}, nil
	case tagTransactCreate2:
		return &TransactCreate2{}, nil
	case tagPrecompileSubcall:
		return &PrecompileSubcall{}, nil
	default:
		return nil, fmt.Errorf("%w: evm %d", errUnknownTag, tag)
	}
}
