// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterhost

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/utils/metric"
	"github.com/ava-labs/evmtracer/utils/wrappers"
)

const kindLabel = "kind"

type metrics struct {
	notifications *prometheus.CounterVec
	payloadBytes  *prometheus.CounterVec
	payloadSize   prometheus.Histogram
	duration      *prometheus.HistogramVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications",
			Help:      "number of host notifications by kind",
		}, []string{kindLabel}),
		payloadBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payload_bytes",
			Help:      "number of encoded event bytes forwarded by kind",
		}, []string{kindLabel}),
		payloadSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payload_size",
			Help:      "size in bytes of the encoded events forwarded to the host",
			Buckets:   metric.BytesBuckets,
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "notification_duration",
			Help:      "time (in ns) spent by the wrapped host handling a notification",
			Buckets:   metric.NanosecondsBuckets,
		}, []string{kindLabel}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.notifications),
		registerer.Register(m.payloadBytes),
		registerer.Register(m.payloadSize),
		registerer.Register(m.duration),
	)
	return m, errs.Err
}

func (m *metrics) observe(kind host.Kind, payload []byte, duration time.Duration) {
	label := kind.String()
	m.notifications.WithLabelValues(label).Inc()
	m.duration.WithLabelValues(label).Observe(float64(duration))
	if kind == host.CallListNew {
		return
	}
	m.payloadBytes.WithLabelValues(label).Add(float64(len(payload)))
	m.payloadSize.Observe(float64(len(payload)))
}
