// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build noevmtracing

// Package tracer is compiled without event forwarding. Trace never runs the
// traced closure and no host call is ever made.
package tracer

import (
	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/utils/logging"
	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/gasometer"
	"github.com/ava-labs/evmtracer/vm/runtime"
)

// Enabled reports whether this build forwards events.
const Enabled = false

type Tracer struct{}

func New(logging.Logger, host.Host, Registries) *Tracer {
	return &Tracer{}
}

func EmitNew(host.Host) {}

func (*Tracer) Trace(func()) {}

func (*Tracer) EvmEvent(evm.Event) {}

func (*Tracer) GasometerEvent(gasometer.Event) {}

func (*Tracer) RuntimeEvent(runtime.Event) {}
