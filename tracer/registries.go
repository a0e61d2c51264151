// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tracer

import (
	"github.com/ava-labs/evmtracer/vm/evm"
	"github.com/ava-labs/evmtracer/vm/gasometer"
	"github.com/ava-labs/evmtracer/vm/runtime"
)

// Registries are the instrumentation subsystems a Tracer listens to. The
// interpreter emits into the same registries.
type Registries struct {
	Evm       *evm.Registry
	Gasometer *gasometer.Registry
	Runtime   *runtime.Registry
}

func NewRegistries() Registries {
	return Registries{
		Evm:       evm.NewRegistry(),
		Gasometer: gasometer.NewRegistry(),
		Runtime:   runtime.NewRegistry(),
	}
}

func (r Registries) enableTracing(enabled bool) {
	r.Evm.EnableTracing(enabled)
	r.Gasometer.EnableTracing(enabled)
	r.Runtime.EnableTracing(enabled)
}

// Enabled returns true if any subsystem is enabled.
func (r Registries) Enabled() bool {
	return r.Evm.Enabled() || r.Gasometer.Enabled() || r.Runtime.Enabled()
}

// Listening returns true if any subsystem has an active listener.
func (r Registries) Listening() bool {
	return r.Evm.Listening() || r.Gasometer.Listening() || r.Runtime.Listening()
}
