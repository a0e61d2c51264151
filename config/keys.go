// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey      = "config-file"
	ScenarioFileKey    = "scenario-file"
	OutputFileKey      = "output-file"
	LogsDirKey         = "log-dir"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFormatKey       = "log-format"
	LogMaxSizeKey      = "log-rotater-max-size"
	LogMaxFilesKey     = "log-rotater-max-files"
	LogMaxAgeKey       = "log-rotater-max-age"
	LogCompressedKey   = "log-rotater-compress-enabled"

	MetricsNamespaceKey = "metrics-namespace"

	TracingExporterTypeKey = "tracing-exporter-type"
	TracingEndpointKey     = "tracing-endpoint"
	TracingInsecureKey     = "tracing-insecure"
	TracingSampleRateKey   = "tracing-sample-rate"
	TracingHeadersKey      = "tracing-headers"
)
