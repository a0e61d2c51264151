// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/ava-labs/evmtracer/vm/types"
)

var (
	errValueOutOfRange  = errors.New("value out of range")
	errUnknownExitKind  = errors.New("unknown exit kind")
	errUnknownScheme    = errors.New("unknown create scheme")
	errUnknownTrap      = errors.New("unknown trap")
	errAmbiguousCapture = errors.New("capture must have exactly one of exit and trap")
	errUnknownOpcode    = errors.New("unknown opcode")
)

// toUint256 converts a JSON quantity, which may be hex or decimal, into a
// 256-bit word. A nil quantity stays nil.
func toUint256(v *math.HexOrDecimal256) (*uint256.Int, error) {
	if v == nil {
		return nil, nil
	}
	b := (*big.Int)(v)
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s is negative", errValueOutOfRange, b)
	}
	value, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %s overflows 256 bits", errValueOutOfRange, b)
	}
	return value, nil
}

type callContext struct {
	Address       common.Address        `json:"address"`
	Caller        common.Address        `json:"caller"`
	ApparentValue *math.HexOrDecimal256 `json:"apparentValue"`
}

func (c callContext) native() (types.Context, error) {
	value, err := toUint256(c.ApparentValue)
	return types.Context{
		Address:       c.Address,
		Caller:        c.Caller,
		ApparentValue: value,
	}, err
}

type transfer struct {
	Source common.Address        `json:"source"`
	Target common.Address        `json:"target"`
	Value  *math.HexOrDecimal256 `json:"value"`
}

func (t *transfer) native() (*types.Transfer, error) {
	if t == nil {
		return nil, nil
	}
	value, err := toUint256(t.Value)
	if err != nil {
		return nil, err
	}
	return &types.Transfer{
		Source: t.Source,
		Target: t.Target,
		Value:  value,
	}, nil
}

type createScheme struct {
	Kind     string         `json:"kind"`
	Caller   common.Address `json:"caller"`
	CodeHash common.Hash    `json:"codeHash"`
	Salt     common.Hash    `json:"salt"`
	Address  common.Address `json:"address"`
}

func (s createScheme) native() (types.CreateScheme, error) {
	for kind := types.Legacy; kind <= types.Fixed; kind++ {
		if kind.String() == s.Kind {
			return types.CreateScheme{
				Kind:     kind,
				Caller:   s.Caller,
				CodeHash: s.CodeHash,
				Salt:     s.Salt,
				Address:  s.Address,
			}, nil
		}
	}
	return types.CreateScheme{}, fmt.Errorf("%w: %q", errUnknownScheme, s.Kind)
}

type exitReason struct {
	Kind    string `json:"kind"`
	Code    uint8  `json:"code"`
	Message string `json:"message"`
}

func (r exitReason) native() (types.ExitReason, error) {
	for kind := types.ExitSucceed; kind <= types.ExitFatal; kind++ {
		if kind.String() == r.Kind {
			return types.ExitReason{
				Kind:    kind,
				Code:    types.ExitCode(r.Code),
				Message: r.Message,
			}, nil
		}
	}
	return types.ExitReason{}, fmt.Errorf("%w: %q", errUnknownExitKind, r.Kind)
}

func (r *exitReason) nativePtr() (*types.ExitReason, error) {
	if r == nil {
		return nil, nil
	}
	reason, err := r.native()
	if err != nil {
		return nil, err
	}
	return &reason, nil
}

type capture struct {
	Exit *exitReason `json:"exit"`
	Trap *string     `json:"trap"`
}

func (c *capture) native() (*types.Capture, error) {
	switch {
	case c == nil:
		return nil, nil
	case (c.Exit == nil) == (c.Trap == nil):
		return nil, errAmbiguousCapture
	case c.Exit != nil:
		reason, err := c.Exit.native()
		if err != nil {
			return nil, err
		}
		return types.CaptureExit(reason), nil
	}

	for trap := types.TrapCall; trap <= types.TrapCreate; trap++ {
		if trap.String() == *c.Trap {
			return types.CaptureTrap(trap), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", errUnknownTrap, *c.Trap)
}
