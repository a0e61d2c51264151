// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !noevmtracing

package tracer

import (
	"errors"

	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/gasometer"
	"github.com/ava-labs/evmtracer/vm/runtime"
	"github.com/ava-labs/evmtracer/vm/tracing"
)

var (
	errConcurrentAccess = errors.New("tracer is already handling an event")

	_ evm.Listener       = (*evmProxy)(nil)
	_ gasometer.Listener = (*gasometerProxy)(nil)
	_ runtime.Listener   = (*runtimeProxy)(nil)
)

// shared is the handle every subsystem proxy holds to the one Tracer of a
// trace. Only one proxy may use the Tracer at a time.
type shared struct {
	tracer *Tracer
	busy   bool
}

func newShared(t *Tracer) *shared {
	return &shared{tracer: t}
}

func (s *shared) acquire() *Tracer {
	if s.busy {
		s.tracer.log.Fatal("subsystem reentered the tracer")
		panic(errConcurrentAccess)
	}
	s.busy = true
	return s.tracer
}

func (s *shared) release() {
	s.busy = false
}

type evmProxy struct {
	shared *shared
}

func (p *evmProxy) Event(event evm.Event) {
	t := p.shared.acquire()
	defer p.shared.release()

	t.EvmEvent(event)
}

type gasometerProxy struct {
	shared *shared
}

func (p *gasometerProxy) Event(event gasometer.Event) {
	t := p.shared.acquire()
	defer p.shared.release()

	t.GasometerEvent(event)
}

type runtimeProxy struct {
	shared *shared
}

func (p *runtimeProxy) Event(event runtime.Event) {
	t := p.shared.acquire()
	defer p.shared.release()

	t.RuntimeEvent(event)
}

// using returns [f] wrapped so that it runs with [listener] registered on
// [registry].
func using[E any](registry *tracing.Registry[E], listener tracing.Listener[E], f func()) func() {
	return func() {
		registry.Using(listener, f)
	}
}
