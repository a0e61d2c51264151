// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/ava-labs/evmtracer/vm/evm"
)

var evmDecoders = map[string]decoder{
	"Call":              decode[call],
	"Create":            decode[create],
	"Suicide":           decode[suicide],
	"Exit":              decode[exit],
	"TransactCall":      decode[transactCall],
	"TransactCreate":    decode[transactCreate],
	"TransactCreate2":   decode[transactCreate2],
	"PrecompileSubcall": decode[precompileSubcall],
}

type call struct {
	CodeAddress common.Address `json:"codeAddress"`
	Transfer    *transfer      `json:"transfer"`
	Input       hexutil.Bytes  `json:"input"`
	TargetGas   *uint64        `json:"targetGas"`
	IsStatic    bool           `json:"isStatic"`
	Context     callContext    `json:"context"`
}

func (c *call) event() (Event, error) {
	transfer, err := c.Transfer.native()
	if err != nil {
		return Event{}, err
	}
	context, err := c.Context.native()
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.Call{
		CodeAddress: c.CodeAddress,
		Transfer:    transfer,
		Input:       c.Input,
		TargetGas:   c.TargetGas,
		IsStatic:    c.IsStatic,
		Context:     context,
	}}, nil
}

type precompileSubcall call

func (c *precompileSubcall) event() (Event, error) {
	e, err := (*call)(c).event()
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: (*evm.PrecompileSubcall)(e.Evm.(*evm.Call))}, nil
}

type create struct {
	Caller    common.Address        `json:"caller"`
	Address   common.Address        `json:"address"`
	Scheme    createScheme          `json:"scheme"`
	Value     *math.HexOrDecimal256 `json:"value"`
	InitCode  hexutil.Bytes         `json:"initCode"`
	TargetGas *uint64               `json:"targetGas"`
}

func (c *create) event() (Event, error) {
	scheme, err := c.Scheme.native()
	if err != nil {
		return Event{}, err
	}
	value, err := toUint256(c.Value)
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.Create{
		Caller:    c.Caller,
		Address:   c.Address,
		Scheme:    scheme,
		Value:     value,
		InitCode:  c.InitCode,
		TargetGas: c.TargetGas,
	}}, nil
}

type suicide struct {
	Address common.Address        `json:"address"`
	Target  common.Address        `json:"target"`
	Balance *math.HexOrDecimal256 `json:"balance"`
}

func (s *suicide) event() (Event, error) {
	balance, err := toUint256(s.Balance)
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.Suicide{
		Address: s.Address,
		Target:  s.Target,
		Balance: balance,
	}}, nil
}

type exit struct {
	Reason      exitReason    `json:"reason"`
	ReturnValue hexutil.Bytes `json:"returnValue"`
}

func (e *exit) event() (Event, error) {
	reason, err := e.Reason.native()
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.Exit{
		Reason:      reason,
		ReturnValue: e.ReturnValue,
	}}, nil
}

type transactCall struct {
	Caller   common.Address        `json:"caller"`
	Address  common.Address        `json:"address"`
	Value    *math.HexOrDecimal256 `json:"value"`
	Data     hexutil.Bytes         `json:"data"`
	GasLimit *math.HexOrDecimal256 `json:"gasLimit"`
}

func (t *transactCall) event() (Event, error) {
	value, err := toUint256(t.Value)
	if err != nil {
		return Event{}, err
	}
	gasLimit, err := toUint256(t.GasLimit)
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.TransactCall{
		Caller:   t.Caller,
		Address:  t.Address,
		Value:    value,
		Data:     t.Data,
		GasLimit: gasLimit,
	}}, nil
}

type transactCreate struct {
	Caller   common.Address        `json:"caller"`
	Value    *math.HexOrDecimal256 `json:"value"`
	InitCode hexutil.Bytes         `json:"initCode"`
	GasLimit *math.HexOrDecimal256 `json:"gasLimit"`
	Address  common.Address        `json:"address"`
}

func (t *transactCreate) event() (Event, error) {
	value, err := toUint256(t.Value)
	if err != nil {
		return Event{}, err
	}
	gasLimit, err := toUint256(t.GasLimit)
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.TransactCreate{
		Caller:   t.Caller,
		Value:    value,
		InitCode: t.InitCode,
		GasLimit: gasLimit,
		Address:  t.Address,
	}}, nil
}

type transactCreate2 struct {
	Caller   common.Address        `json:"caller"`
	Value    *math.HexOrDecimal256 `json:"value"`
	InitCode hexutil.Bytes         `json:"initCode"`
	Salt     common.Hash           `json:"salt"`
	GasLimit *math.HexOrDecimal256 `json:"gasLimit"`
	Address  common.Address        `json:"address"`
}

func (t *transactCreate2) event() (Event, error) {
	value, err := toUint256(t.Value)
	if err != nil {
		return Event{}, err
	}
	gasLimit, err := toUint256(t.GasLimit)
	if err != nil {
		return Event{}, err
	}
	return Event{Evm: &evm.TransactCreate2{
		Caller:   t.Caller,
		Value:    value,
		InitCode: t.InitCode,
		Salt:     t.Salt,
		GasLimit: gasLimit,
		Address:  t.Address,
	}}, nil
}
