// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meterhost wraps a host.Host and records prometheus metrics about
// the notifications it receives.
package meterhost

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/evmtracer/host"
)

var _ host.Host = (*meterHost)(nil)

type meterHost struct {
	host.Host

	metrics *metrics
}

func New(h host.Host, namespace string, registerer prometheus.Registerer) (host.Host, error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &meterHost{
		Host:    h,
		metrics: m,
	}, nil
}

func (h *meterHost) CallListNew() {
	start := time.Now()
	h.Host.CallListNew()
	h.metrics.observe(host.CallListNew, nil, time.Since(start))
}

func (h *meterHost) EvmEvent(payload []byte) {
	start := time.Now()
	h.Host.EvmEvent(payload)
	h.metrics.observe(host.EvmEvent, payload, time.Since(start))
}

func (h *meterHost) GasometerEvent(payload []byte) {
	start := time.Now()
	h.Host.GasometerEvent(payload)
	h.metrics.observe(host.GasometerEvent, payload, time.Since(start))
}

func (h *meterHost) RuntimeEvent(payload []byte) {
	start := time.Now()
	h.Host.RuntimeEvent(payload)
	h.metrics.observe(host.RuntimeEvent, payload, time.Since(start))
}
