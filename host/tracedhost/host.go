// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tracedhost

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/trace"
)

var _ host.Host = (*tracedHost)(nil)

type tracedHost struct {
	host.Host
	// Host calls carry no context so every span is a child of [ctx].
	ctx               context.Context
	callListNewTag    string
	evmEventTag       string
	gasometerEventTag string
	runtimeEventTag   string
	tracer            trace.Tracer
}

func New(ctx context.Context, h host.Host, name string, tracer trace.Tracer) host.Host {
	return &tracedHost{
		Host:              h,
		ctx:               ctx,
		callListNewTag:    fmt.Sprintf("%s.callListNew", name),
		evmEventTag:       fmt.Sprintf("%s.evmEvent", name),
		gasometerEventTag: fmt.Sprintf("%s.gasometerEvent", name),
		runtimeEventTag:   fmt.Sprintf("%s.runtimeEvent", name),
		tracer:            tracer,
	}
}

func (h *tracedHost) CallListNew() {
	_, span := h.tracer.Start(h.ctx, h.callListNewTag)
	defer span.End()

	h.Host.CallListNew()
}

func (h *tracedHost) EvmEvent(payload []byte) {
	_, span := h.tracer.Start(h.ctx, h.evmEventTag, oteltrace.WithAttributes(
		attribute.Int("payloadLen", len(payload)),
	))
	defer span.End()

	h.Host.EvmEvent(payload)
}

func (h *tracedHost) GasometerEvent(payload []byte) {
	_, span := h.tracer.Start(h.ctx, h.gasometerEventTag, oteltrace.WithAttributes(
		attribute.Int("payloadLen", len(payload)),
	))
	defer span.End()

	h.Host.GasometerEvent(payload)
}

func (h *tracedHost) RuntimeEvent(payload []byte) {
	_, span := h.tracer.Start(h.ctx, h.runtimeEventTag, oteltrace.WithAttributes(
		attribute.Int("payloadLen", len(payload)),
	))
	defer span.End()

	h.Host.RuntimeEvent(payload)
}
