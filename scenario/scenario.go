// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scenario loads recorded interpreter events from JSON and replays
// them into the instrumentation subsystems.
//
// A scenario is a list of entries of the form
//
//	{"subsystem": "gasometer", "type": "RecordCost", "event": {"cost": 3}}
//
// where type is the name of an event of the subsystem.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/evmtracer/events"
	"github.com/ava-labs/evmtracer/tracer"
	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/gasometer"
	"github.com/ava-labs/evmtracer/vm/runtime"
)

var (
	errUnknownSubsystem = errors.New("unknown subsystem")
	errUnknownEventType = errors.New("unknown event type")
	errMissingEvent     = errors.New("missing event")
)

// Event is a native event and the subsystem that emits it. Exactly one of
// Evm, Gasometer and Runtime is set.
type Event struct {
	Evm       evm.Event
	Gasometer gasometer.Event
	Runtime   runtime.Event
}

func (e Event) Subsystem() events.Subsystem {
	switch {
	case e.Evm != nil:
		return events.Evm
	case e.Gasometer != nil:
		return events.Gasometer
	default:
		return events.Runtime
	}
}

type entry struct {
	Subsystem string          `json:"subsystem"`
	Type      string          `json:"type"`
	Event     json.RawMessage `json:"event"`
}

// Load parses the scenario read from [r].
func Load(r io.Reader) ([]Event, error) {
	var entries []entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("couldn't parse scenario: %w", err)
	}

	scenario := make([]Event, len(entries))
	for i, entry := range entries {
		event, err := entry.decode()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		scenario[i] = event
	}
	return scenario, nil
}

// LoadFile parses the scenario stored at [path].
func LoadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Replay emits every event of [scenario], in order, into the subsystem it
// belongs to. Events of disabled subsystems are dropped by the registries.
func Replay(registries tracer.Registries, scenario []Event) {
	for _, event := range scenario {
		switch {
		case event.Evm != nil:
			registries.Evm.Emit(event.Evm)
		case event.Gasometer != nil:
			registries.Gasometer.Emit(event.Gasometer)
		case event.Runtime != nil:
			registries.Runtime.Emit(event.Runtime)
		}
	}
}

func (e entry) decode() (Event, error) {
	var decoders map[string]decoder
	switch e.Subsystem {
	case evm.Name:
		decoders = evmDecoders
	case gasometer.Name:
		decoders = gasometerDecoders
	case runtime.Name:
		decoders = runtimeDecoders
	default:
		return Event{}, fmt.Errorf("%w: %q", errUnknownSubsystem, e.Subsystem)
	}

	decode, ok := decoders[e.Type]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q of subsystem %s", errUnknownEventType, e.Type, e.Subsystem)
	}
	if len(e.Event) == 0 {
		return Event{}, fmt.Errorf("%w: %s %s", errMissingEvent, e.Subsystem, e.Type)
	}
	event, err := decode(e.Event)
	if err != nil {
		return Event{}, fmt.Errorf("couldn't decode %s %s: %w", e.Subsystem, e.Type, err)
	}
	return event, nil
}

type decoder func(json.RawMessage) (Event, error)

// decode strictly unmarshals [raw] into a T and converts it into its native
// event.
func decode[T any, PT interface {
	*T
	event() (Event, error)
}](raw json.RawMessage,
) (Event, error) {
	d := json.NewDecoder(bytes.NewReader(raw))
	d.DisallowUnknownFields()

	var t T
	if err := d.Decode(&t); err != nil {
		return Event{}, err
	}
	return PT(&t).event()
}
