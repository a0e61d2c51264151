// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/evmtracer/vm/runtime"
	"github.com/ava-labs/evmtracer/vm/types"
)

const (
	tagStep uint8 = iota
	tagStepResult
	tagSLoad
	tagSStore
)

// Position is the program counter of the step, or the exit reason if the
// interpreter had already stopped.
type Position struct {
	PC   uint64
	Exit *types.ExitReason `rlp:"nil"`
}

type CaptureKind uint8

const (
	CaptureExit CaptureKind = iota
	CaptureTrap
)

// Capture is the canonical form of types.Capture. Only the field selected by
// Kind is meaningful.
type Capture struct {
	Kind CaptureKind
	Exit types.ExitReason
	Trap types.Trap
}

type Step struct {
	runtimeEvent
	Context  types.Context
	Opcode   []byte
	Position Position
	Stack    []common.Hash
	Memory   []byte
}

type StepResult struct {
	runtimeEvent
	Result      *Capture `rlp:"nil"`
	ReturnValue []byte
}

type SLoad struct {
	runtimeEvent
	Address common.Address
	Index   common.Hash
	Value   common.Hash
}

type SStore struct {
	runtimeEvent
	Address common.Address
	Index   common.Hash
	Value   common.Hash
}

func (Step) tag() uint8       { return tagStep }
func (StepResult) tag() uint8 { return tagStepResult }
func (SLoad) tag() uint8      { return tagSLoad }
func (SStore) tag() uint8     { return tagSStore }

// copyCapture fails unless exactly one of Exit and Trap is set.
func copyCapture(c *types.Capture) (*Capture, error) {
	switch {
	case c == nil:
		return nil, nil
	case (c.Trap == nil) == (c.Exit == nil):
		return nil, errInvalidCapture
	case c.Trap != nil:
		return &Capture{
			Kind: CaptureTrap,
			Trap: *c.Trap,
		}, nil
	default:
		return &Capture{
			Kind: CaptureExit,
			Exit: *c.Exit,
		}, nil
	}
}

// FromRuntime converts an interpreter event into its canonical form. The
// op-code is carried by name.
func FromRuntime(event runtime.Event) (RuntimeEvent, error) {
	switch e := event.(type) {
	case *runtime.Step:
		return &Step{
			Context: copyContext(e.Context),
			Opcode:  []byte(e.Opcode.String()),
			Position: Position{
				PC:   e.Position.PC,
				Exit: copyExitReason(e.Position.Exit),
			},
			Stack:  slices.Clone(e.Stack),
			Memory: common.CopyBytes(e.Memory),
		}, nil
	case *runtime.StepResult:
		result, err := copyCapture(e.Result)
		if err != nil {
			return nil, err
		}
		return &StepResult{
			Result:      result,
			ReturnValue: common.CopyBytes(e.ReturnValue),
		}, nil
	case *runtime.SLoad:
		return &SLoad{
			Address: e.Address,
			Index:   e.Index,
			Value:   e.Value,
		}, nil
	case *runtime.SStore:
		return &SStore{
			Address: e.Address,
			Index:   e.Index,
			Value:   e.Value,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnknownEvent, event)
	}
}

func newRuntimeEvent(tag uint8) (RuntimeEvent, error) {
	switch tag {
	case tagStep:
		return &Step{}, nil
	case tagStepResult:
		return &StepResult{}, nil
	case tagSLoad:
		return &SLoad{}, nil
	case tagSStore:
		return &SStore{}, nil
	default:
		return nil, fmt.Errorf("%w: runtime %d", errUnknownTag, tag)
	}
}
