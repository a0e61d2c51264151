// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"math"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/gasometer"
	"github.com/ava-labs/evmtracer/vm/runtime"
	"github.com/ava-labs/evmtracer/vm/types"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func TestSignedGas(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 21000, -4800, math.MaxInt64, math.MinInt64} {
		s := NewSignedGas(v)
		require.Equal(t, v < 0, s.Negative)
		require.Equal(t, v, s.Int64())
	}
}

func TestFromEvmCopies(t *testing.T) {
	require := require.New(t)

	gas := uint64(50_000)
	native := &evm.Call{
		CodeAddress: bob,
		Transfer: &types.Transfer{
			Source: alice,
			Target: bob,
			Value:  uint256.NewInt(7),
		},
		Input:     []byte{0xde, 0xad},
		TargetGas: &gas,
		Context: types.Context{
			Address: bob,
			Caller:  alice,
		},
	}
	canonical, err := FromEvm(native)
	require.NoError(err)
	require.Equal(Evm, canonical.Subsystem())

	native.Input[0] = 0
	native.Transfer.Value.SetUint64(8)
	gas = 1

	call, ok := canonical.(*Call)
	require.True(ok)
	require.Equal([]byte{0xde, 0xad}, call.Input)
	require.Equal(uint256.NewInt(7), call.Transfer.Value)
	require.Equal(&TargetGas{Gas: 50_000}, call.TargetGas)
	require.Equal(new(uint256.Int), call.Context.ApparentValue)
}

func TestFromUnknownEvent(t *testing.T) {
	require := require.New(t)

	_, err := FromEvm(nil)
	require.ErrorIs(err, errUnknownEvent)

	_, err = FromGasometer(nil)
	require.ErrorIs(err, errUnknownEvent)

	_, err = FromRuntime(nil)
	require.ErrorIs(err, errUnknownEvent)
}

func TestFromRuntimeOpcodeName(t *testing.T) {
	require := require.New(t)

	canonical, err := FromRuntime(&runtime.Step{
		Opcode:   vm.PUSH1,
		Position: runtime.Position{PC: 4},
		Stack:    []common.Hash{{1}},
		Memory:   []byte{1, 2, 3},
	})
	require.NoError(err)
	require.Equal(Runtime, canonical.Subsystem())

	step, ok := canonical.(*Step)
	require.True(ok)
	require.Equal([]byte("PUSH1"), step.Opcode)
	require.Equal(uint64(4), step.Position.PC)
	require.Nil(step.Position.Exit)
}

func TestFromRuntimeCapture(t *testing.T) {
	require := require.New(t)

	canonical, err := FromRuntime(&runtime.StepResult{
		Result: types.CaptureTrap(types.TrapCreate),
	})
	require.NoError(err)
	result := canonical.(*StepResult)
	require.Equal(&Capture{Kind: CaptureTrap, Trap: types.TrapCreate}, result.Result)

	canonical, err = FromRuntime(&runtime.StepResult{})
	require.NoError(err)
	require.Nil(canonical.(*StepResult).Result)
}

func TestFromRuntimeInvalidCapture(t *testing.T) {
	exit := types.Succeed(types.Returned)
	trap := types.TrapCall
	tests := map[string]*types.Capture{
		"neither exit nor trap": {},
		"both exit and trap": {
			Exit: &exit,
			Trap: &trap,
		},
	}
	for name, capture := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromRuntime(&runtime.StepResult{Result: capture})
			require.ErrorIs(t, err, errInvalidCapture)
		})
	}
}

func TestEncodeTag(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		tag   uint8
	}{
		{
			name:  "evm exit",
			event: &Exit{Reason: types.Revert()},
			tag:   tagExit,
		},
		{
			name:  "gasometer stipend",
			event: &RecordStipend{Stipend: 2300},
			tag:   tagRecordStipend,
		},
		{
			name:  "runtime sstore",
			event: &SStore{Address: alice},
			tag:   tagSStore,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			b, err := Encode(test.event)
			require.NoError(err)

			content, rest, err := rlp.SplitList(b)
			require.NoError(err)
			require.Empty(rest)

			tag, _, err := rlp.SplitUint64(content)
			require.NoError(err)
			require.Equal(uint64(test.tag), tag)
		})
	}
}

func TestTargetGasZeroIsNotAbsent(t *testing.T) {
	require := require.New(t)

	zero := uint64(0)
	withZero, err := FromEvm(&evm.Create{TargetGas: &zero})
	require.NoError(err)
	absent, err := FromEvm(&evm.Create{})
	require.NoError(err)

	withZeroBytes, err := Encode(withZero)
	require.NoError(err)
	absentBytes, err := Encode(absent)
	require.NoError(err)
	require.NotEqual(withZeroBytes, absentBytes)

	decoded, err := DecodeEvm(withZeroBytes)
	require.NoError(err)
	require.Equal(&TargetGas{}, decoded.(*Create).TargetGas)

	decoded, err = DecodeEvm(absentBytes)
	require.NoError(err)
	require.Nil(decoded.(*Create).TargetGas)
}

func TestDecode(t *testing.T) {
	gas := uint64(100)
	call, err := FromEvm(&evm.Call{
		CodeAddress: bob,
		Transfer: &types.Transfer{
			Source: alice,
			Target: bob,
			Value:  uint256.NewInt(1_000_000),
		},
		Input:     []byte{1, 2, 3, 4},
		TargetGas: &gas,
		IsStatic:  true,
		Context: types.Context{
			Address:       bob,
			Caller:        alice,
			ApparentValue: uint256.NewInt(1_000_000),
		},
	})
	require.NoError(t, err)

	dynamicCost, err := FromGasometer(&gasometer.RecordDynamicCost{
		GasCost:   3,
		MemoryGas: 6,
		GasRefund: -4800,
		Snapshot: &gasometer.Snapshot{
			GasLimit:    21_000,
			MemoryGas:   6,
			UsedGas:     9,
			RefundedGas: -4800,
		},
	})
	require.NoError(t, err)

	exit := types.Error(types.OutOfGas)
	step, err := FromRuntime(&runtime.Step{
		Context: types.Context{
			Address:       bob,
			Caller:        alice,
			ApparentValue: uint256.NewInt(0),
		},
		Opcode:   vm.SSTORE,
		Position: runtime.Position{Exit: &exit},
		Stack:    []common.Hash{{1}, {2}},
		Memory:   []byte{0xff},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		event  Event
		decode func([]byte) (Event, error)
	}{
		{
			name:  "call",
			event: call,
			decode: func(b []byte) (Event, error) {
				return DecodeEvm(b)
			},
		},
		{
			name:  "dynamic cost",
			event: dynamicCost,
			decode: func(b []byte) (Event, error) {
				return DecodeGasometer(b)
			},
		},
		{
			name:  "step",
			event: step,
			decode: func(b []byte) (Event, error) {
				return DecodeRuntime(b)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			b, err := Encode(test.event)
			require.NoError(err)

			decoded, err := test.decode(b)
			require.NoError(err)
			require.Equal(test.event, decoded)
		})
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	require := require.New(t)

	b, err := rlp.EncodeToBytes(envelope{
		Tag:  99,
		Body: []uint64{},
	})
	require.NoError(err)

	_, err = DecodeEvm(b)
	require.ErrorIs(err, errUnknownTag)
	_, err = DecodeGasometer(b)
	require.ErrorIs(err, errUnknownTag)
	_, err = DecodeRuntime(b)
	require.ErrorIs(err, errUnknownTag)

	_, err = DecodeEvm([]byte{0x01})
	require.Error(err)
}
