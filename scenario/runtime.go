// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/ava-labs/evmtracer/vm/runtime"
)

var runtimeDecoders = map[string]decoder{
	"Step":       decode[step],
	"StepResult": decode[stepResult],
	"SLoad":      decode[sLoad],
	"SStore":     decode[sStore],
}

// toOpcode parses the mnemonic of an op-code, as printed by vm.OpCode.
func toOpcode(name string) (vm.OpCode, error) {
	op := vm.StringToOp(name)
	if op.String() != name {
		return 0, fmt.Errorf("%w: %q", errUnknownOpcode, name)
	}
	return op, nil
}

type position struct {
	PC   uint64      `json:"pc"`
	Exit *exitReason `json:"exit"`
}

type step struct {
	Context  callContext   `json:"context"`
	Opcode   string        `json:"opcode"`
	Position position      `json:"position"`
	Stack    []common.Hash `json:"stack"`
	Memory   hexutil.Bytes `json:"memory"`
}

func (s *step) event() (Event, error) {
	context, err := s.Context.native()
	if err != nil {
		return Event{}, err
	}
	opcode, err := toOpcode(s.Opcode)
	if err != nil {
		return Event{}, err
	}
	exit, err := s.Position.Exit.nativePtr()
	if err != nil {
		return Event{}, err
	}
	return Event{Runtime: &runtime.Step{
		Context: context,
		Opcode:  opcode,
		Position: runtime.Position{
			PC:   s.Position.PC,
			Exit: exit,
		},
		Stack:  s.Stack,
		Memory: s.Memory,
	}}, nil
}

type stepResult struct {
	Result      *capture      `json:"result"`
	ReturnValue hexutil.Bytes `json:"returnValue"`
}

func (s *stepResult) event() (Event, error) {
	result, err := s.Result.native()
	if err != nil {
		return Event{}, err
	}
	return Event{Runtime: &runtime.StepResult{
		Result:      result,
		ReturnValue: s.ReturnValue,
	}}, nil
}

type storage struct {
	Address common.Address `json:"address"`
	Index   common.Hash    `json:"index"`
	Value   common.Hash    `json:"value"`
}

type sLoad storage

func (s *sLoad) event() (Event, error) {
	return Event{Runtime: &runtime.SLoad{
		Address: s.Address,
		Index:   s.Index,
		Value:   s.Value,
	}}, nil
}

type sStore storage

func (s *sStore) event() (Event, error) {
	return Event{Runtime: &runtime.SStore{
		Address: s.Address,
		Index:   s.Index,
		Value:   s.Value,
	}}, nil
}
