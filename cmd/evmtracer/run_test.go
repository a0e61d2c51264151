// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/evmtracer/config"
	"github.com/ava-labs/evmtracer/events"
	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/scenario"
	"github.com/ava-labs/evmtracer/tracer"
	"github.com/ava-labs/evmtracer/utils/logging"
)

const scenarioFile = "../../scenario/testdata/call.json"

func testConfig() config.Config {
	return config.Config{
		MetricsNamespace: "test",
		ScenarioFile:     scenarioFile,
	}
}

func TestReplayToWriter(t *testing.T) {
	require := require.New(t)

	out := &bytes.Buffer{}
	require.NoError(replay(logging.NoLog{}, testConfig(), out))

	if !tracer.Enabled {
		require.Zero(out.Len())
		return
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(lines, 12)
	require.Equal(host.CallListNew.String(), lines[0])

	// The first traced event is the transaction's gas charge.
	fields := strings.Fields(lines[2])
	require.Len(fields, 2)
	require.Equal(host.GasometerEvent.String(), fields[0])
	payload, err := hexutil.Decode(fields[1])
	require.NoError(err)
	event, err := events.DecodeGasometer(payload)
	require.NoError(err)
	require.Equal(&events.RecordTransaction{Cost: 21_532}, event)
}

func TestReplayToFile(t *testing.T) {
	require := require.New(t)

	cfg := testConfig()
	cfg.OutputFile = filepath.Join(t.TempDir(), "out", "notifications.txt")

	stdout := &bytes.Buffer{}
	require.NoError(replay(logging.NoLog{}, cfg, stdout))
	require.Zero(stdout.Len())

	written, err := os.ReadFile(cfg.OutputFile)
	require.NoError(err)
	if tracer.Enabled {
		require.Equal(12, bytes.Count(written, []byte("\n")))
	}
}

func TestReplayMissingScenario(t *testing.T) {
	cfg := testConfig()
	cfg.ScenarioFile = filepath.Join(t.TempDir(), "missing.json")

	err := replay(logging.NoLog{}, cfg, &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

var errDiskFull = errors.New("disk full")

// closeFailure buffers writes and fails to close.
type closeFailure struct {
	bytes.Buffer
	closed bool
}

func (c *closeFailure) Close() error {
	c.closed = true
	return errDiskFull
}

func TestForwardReportsCloseError(t *testing.T) {
	require := require.New(t)

	recorded, err := scenario.LoadFile(scenarioFile)
	require.NoError(err)

	out := &closeFailure{}
	err = forward(logging.NoLog{}, testConfig(), recorded, out)
	require.ErrorIs(err, errDiskFull)
	require.True(out.closed)
}

func TestOpenOutputDoesNotCloseStdout(t *testing.T) {
	require := require.New(t)

	stdout := &closeFailure{}
	out, err := openOutput("", stdout)
	require.NoError(err)
	require.NoError(out.Close())
	require.False(stdout.closed)
}

func TestLogMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "counter",
		Help: "counter",
	})
	require.NoError(t, registry.Register(counter))
	counter.Add(2)

	require.NoError(t, logMetrics(logging.NoLog{}, registry))
}
