// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !noevmtracing

// Package tracer forwards the events of the evm, gasometer and runtime
// instrumentation subsystems to the host.
//
// A single Tracer is registered with all three subsystems while a traced
// closure runs. Every event is converted to its canonical form, encoded, and
// forwarded to the host in the order it was emitted.
//
// Building with the noevmtracing tag replaces the Tracer with a stub that
// never runs the traced closure and never calls the host.
package tracer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/evmtracer/events"
	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/utils/logging"
	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/gasometer"
	"github.com/ava-labs/evmtracer/vm/runtime"
)

// Enabled reports whether this build forwards events.
const Enabled = true

var errNestedTrace = errors.New("trace started while a listener is already registered")

type Tracer struct {
	log        logging.Logger
	host       host.Host
	registries Registries
}

func New(log logging.Logger, h host.Host, registries Registries) *Tracer {
	return &Tracer{
		log:        log,
		host:       h,
		registries: registries,
	}
}

// EmitNew signals the host to start a new recording session. It should be
// called before the outermost Trace.
func EmitNew(h host.Host) {
	h.CallListNew()
}

// Trace registers the tracer with every subsystem and runs [f]. Subsystems
// are disabled when Trace returns, including when [f] panics.
//
// Trace must not be called while another Trace is running on the same
// registries.
func (t *Tracer) Trace(f func()) {
	if t.registries.Listening() {
		t.log.Fatal("nested trace",
			zap.Error(errNestedTrace),
		)
		panic(errNestedTrace)
	}

	t.registries.enableTracing(true)
	defer func() {
		t.registries.enableTracing(false)
		t.log.Debug("trace finished")
	}()
	t.log.Debug("trace started")

	shared := newShared(t)
	var (
		evmListener       evm.Listener       = &evmProxy{shared: shared}
		gasometerListener gasometer.Listener = &gasometerProxy{shared: shared}
		runtimeListener   runtime.Listener   = &runtimeProxy{shared: shared}
	)

	// Each line wraps the previous f into a Using call. Registration order is
	// irrelevant.
	f = using(t.registries.Runtime, runtimeListener, f)
	f = using(t.registries.Gasometer, gasometerListener, f)
	f = using(t.registries.Evm, evmListener, f)
	f()
}

// EvmEvent forwards an executor event to the host.
func (t *Tracer) EvmEvent(event evm.Event) {
	canonical, err := events.FromEvm(event)
	t.assertNoError(err)
	t.host.EvmEvent(t.encode(canonical))
}

// GasometerEvent forwards a gasometer event to the host.
func (t *Tracer) GasometerEvent(event gasometer.Event) {
	canonical, err := events.FromGasometer(event)
	t.assertNoError(err)
	t.host.GasometerEvent(t.encode(canonical))
}

// RuntimeEvent forwards an interpreter event to the host.
func (t *Tracer) RuntimeEvent(event runtime.Event) {
	canonical, err := events.FromRuntime(event)
	t.assertNoError(err)
	t.host.RuntimeEvent(t.encode(canonical))
}

func (t *Tracer) encode(event events.Event) []byte {
	payload, err := events.Encode(event)
	t.assertNoError(err)

	t.log.Verbo("forwarding event",
		zap.Stringer("subsystem", event.Subsystem()),
		zap.String("type", fmt.Sprintf("%T", event)),
		zap.Int("size", len(payload)),
	)
	return payload
}

// Canonical events are built from well-formed interpreter events, so
// conversion and encoding failures are programming errors.
func (t *Tracer) assertNoError(err error) {
	if err != nil {
		t.log.Fatal("failed to forward event",
			zap.Error(err),
		)
		panic(err)
	}
}
