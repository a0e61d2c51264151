// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tracedhost

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/trace"
)

func TestTracedHostSpans(t *testing.T) {
	require := require.New(t)

	spans := tracetest.NewSpanRecorder()
	tracer := trace.Wrap(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)))
	defer func() {
		require.NoError(tracer.Close())
	}()

	recorder := &host.Recorder{}
	h := New(context.Background(), recorder, "host", tracer)
	h.CallListNew()
	h.RuntimeEvent([]byte{1, 2})
	h.EvmEvent([]byte{3})
	h.GasometerEvent([]byte{4, 5, 6})

	ended := spans.Ended()
	require.Len(ended, 4)

	names := make([]string, len(ended))
	for i, span := range ended {
		names[i] = span.Name()
	}
	require.Equal([]string{
		"host.callListNew",
		"host.runtimeEvent",
		"host.evmEvent",
		"host.gasometerEvent",
	}, names)
	require.Contains(ended[3].Attributes(), attribute.Int("payloadLen", 3))

	require.Equal(4, recorder.Len())
}

func TestTracedHostNoop(t *testing.T) {
	recorder := &host.Recorder{}
	h := New(context.Background(), recorder, "host", trace.Noop)
	h.EvmEvent([]byte{1})
	require.Equal(t, 1, recorder.Len())
}
