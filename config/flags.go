// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/evmtracer/utils/constants"
)

const (
	DefaultMetricsNamespace = constants.AppName

	defaultLogMaxSize  = 8 // MB
	defaultLogMaxFiles = 7
	defaultLogMaxAge   = 0 // days; 0 keeps files regardless of age
)

func addFlags(fs *pflag.FlagSet) {
	// Config file
	fs.String(ConfigFileKey, "", "Specifies a config file (JSON or YAML)")

	// Scenario
	fs.String(ScenarioFileKey, "", "Path to the JSON file listing the events to replay")
	fs.String(OutputFileKey, "", "File the forwarded host notifications are written to. If empty, notifications are written to stdout")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. If empty, logs are only displayed")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Uint(LogMaxSizeKey, defaultLogMaxSize, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogMaxFilesKey, defaultLogMaxFiles, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogMaxAgeKey, defaultLogMaxAge, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogCompressedKey, false, "Enables the compression of rotated log files through gzip")

	// Metrics
	fs.String(MetricsNamespaceKey, DefaultMetricsNamespace, "Namespace of the host notification metrics")

	// Tracing
	fs.String(TracingExporterTypeKey, "disabled", "Type of exporter to use for tracing. Options are [disabled, grpc, http]")
	fs.String(TracingEndpointKey, "", "The endpoint to send trace data to. If empty, the default endpoint of the exporter type is used")
	fs.Bool(TracingInsecureKey, true, "If true, don't use TLS when sending trace data")
	fs.Float64(TracingSampleRateKey, 0.1, "The fraction of traces to sample. If >= 1, always sample. If <= 0, never sample")
	fs.StringToString(TracingHeadersKey, map[string]string{}, "The headers to provide the trace indexer")
}

// BuildFlagSet returns a complete set of flags for the CLI
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	addFlags(fs)
	return fs
}
