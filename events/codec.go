// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package events

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

type envelope struct {
	Tag  uint8
	Body interface{}
}

type rawEnvelope struct {
	Tag  uint8
	Body rlp.RawValue
}

// Encode returns the canonical encoding of [event].
func Encode(event Event) ([]byte, error) {
	return rlp.EncodeToBytes(envelope{
		Tag:  event.tag(),
		Body: event,
	})
}

func DecodeEvm(b []byte) (EvmEvent, error) {
	return decode(b, newEvmEvent)
}

func DecodeGasometer(b []byte) (GasometerEvent, error) {
	return decode(b, newGasometerEvent)
}

func DecodeRuntime(b []byte) (RuntimeEvent, error) {
	return decode(b, newRuntimeEvent)
}

func decode[E Event](b []byte, newEvent func(uint8) (E, error)) (E, error) {
	var (
		raw   rawEnvelope
		empty E
	)
	if err := rlp.DecodeBytes(b, &raw); err != nil {
		return empty, fmt.Errorf("couldn't decode envelope: %w", err)
	}
	event, err := newEvent(raw.Tag)
	if err != nil {
		return empty, err
	}
	if err := rlp.DecodeBytes(raw.Body, event); err != nil {
		return empty, fmt.Errorf("couldn't decode %T: %w", event, err)
	}
	return event, nil
}
