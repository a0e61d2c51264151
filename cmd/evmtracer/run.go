// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	dto "github.com/prometheus/client_model/go"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/evmtracer/config"
	"github.com/ava-labs/evmtracer/host"
	"github.com/ava-labs/evmtracer/host/meterhost"
	"github.com/ava-labs/evmtracer/host/tracedhost"
	"github.com/ava-labs/evmtracer/scenario"
	"github.com/ava-labs/evmtracer/trace"
	"github.com/ava-labs/evmtracer/tracer"
	"github.com/ava-labs/evmtracer/utils/constants"
	"github.com/ava-labs/evmtracer/utils/logging"
	"github.com/ava-labs/evmtracer/utils/perms"
)

func run(cfg config.Config) int {
	logFactory := logging.NewFactory(cfg.LoggingConfig)
	defer logFactory.Close()

	log, err := logFactory.Make(constants.AppName)
	if err != nil {
		fmt.Printf("couldn't create logger: %s\n", err)
		return 1
	}

	exitCode := 0
	log.RecoverAndPanic(func() {
		if err := replay(log, cfg, os.Stdout); err != nil {
			log.Error("replay failed",
				zap.String("scenario", cfg.ScenarioFile),
				zap.Error(err),
			)
			exitCode = 1
		}
	})
	return exitCode
}

// replay forwards the events of the configured scenario to a host writing to
// the configured output, or to [stdout] if none is configured.
func replay(log logging.Logger, cfg config.Config, stdout io.Writer) error {
	recorded, err := scenario.LoadFile(cfg.ScenarioFile)
	if err != nil {
		return err
	}
	log.Info("loaded scenario",
		zap.String("path", cfg.ScenarioFile),
		zap.Int("numEvents", len(recorded)),
	)

	out, err := openOutput(cfg.OutputFile, stdout)
	if err != nil {
		return err
	}
	return forward(log, cfg, recorded, out)
}

// openOutput opens the file notifications are written to. If [path] is empty,
// notifications are written to [stdout], which is never closed.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("couldn't create output directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perms.ReadWrite)
	if err != nil {
		return nil, fmt.Errorf("couldn't open output file: %w", err)
	}
	return f, nil
}

// forward traces the replay of [recorded] into a host writing to [out]. [out]
// is closed before forward returns.
func forward(log logging.Logger, cfg config.Config, recorded []scenario.Event, out io.WriteCloser) (err error) {
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("couldn't close output: %w", closeErr)
		}
	}()

	spanTracer, err := trace.New(cfg.TraceConfig)
	if err != nil {
		return fmt.Errorf("couldn't create tracer: %w", err)
	}
	defer func() {
		if err := spanTracer.Close(); err != nil {
			log.Warn("failed to close tracer", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	meteredHost, err := meterhost.New(host.NewWriter(log, out), cfg.MetricsNamespace, registry)
	if err != nil {
		return fmt.Errorf("couldn't register host metrics: %w", err)
	}

	ctx, span := spanTracer.Start(context.Background(), "evmtracer.replay", oteltrace.WithAttributes(
		attribute.String("scenario", cfg.ScenarioFile),
		attribute.Int("numEvents", len(recorded)),
	))
	defer span.End()

	h := tracedhost.New(ctx, meteredHost, "host", spanTracer)
	registries := tracer.NewRegistries()
	t := tracer.New(log, h, registries)

	tracer.EmitNew(h)
	t.Trace(func() {
		scenario.Replay(registries, recorded)
	})

	return logMetrics(log, registry)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// logMetrics logs the value of every gathered counter and histogram.
func logMetrics(log logging.Logger, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("couldn't gather metrics: %w", err)
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := []zap.Field{
				zap.String("name", family.GetName()),
			}
			for _, label := range metric.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			switch family.GetType() {
			case dto.MetricType_COUNTER:
				fields = append(fields, zap.Float64("value", metric.GetCounter().GetValue()))
			case dto.MetricType_HISTOGRAM:
				histogram := metric.GetHistogram()
				fields = append(fields,
					zap.Uint64("count", histogram.GetSampleCount()),
					zap.Float64("sum", histogram.GetSampleSum()),
				)
			default:
				continue
			}
			log.Info("host metric", fields...)
		}
	}
	return nil
}
