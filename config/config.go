// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/evmtracer/trace"
	"github.com/ava-labs/evmtracer/utils/constants"
	"github.com/ava-labs/evmtracer/utils/logging"
)

const (
	defaultGRPCEndpoint = "localhost:4317"
	defaultHTTPEndpoint = "localhost:4318"
)

var (
	errMissingScenarioFile = errors.New("missing scenario file")
	errInvalidSampleRate   = errors.New("invalid tracing sample rate")
	errEmptyNamespace      = errors.New("metrics namespace must not be empty")
)

type Config struct {
	LoggingConfig    logging.Config `json:"loggingConfig"`
	TraceConfig      trace.Config   `json:"traceConfig"`
	MetricsNamespace string         `json:"metricsNamespace"`
	ScenarioFile     string         `json:"scenarioFile"`
	OutputFile       string         `json:"outputFile"`
}

// BuildViper parses [args] into [fs] and returns a viper instance bound to the
// flags, the environment and, if one is specified, the config file.
// Precedence is flags, then environment, then config file, then defaults.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(constants.AppName)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogDisplayLevelKey)
	if logDisplayLevel == "" {
		logDisplayLevel = v.GetString(LogLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.MaxSize = int(v.GetUint(LogMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogCompressedKey)
	return loggingConfig, nil
}

func getTraceConfig(v *viper.Viper) (trace.Config, error) {
	exporterType, err := trace.ExporterTypeFromString(v.GetString(TracingExporterTypeKey))
	if err != nil {
		return trace.Config{}, err
	}
	if exporterType == trace.Disabled {
		return trace.Config{}, nil
	}

	endpoint := v.GetString(TracingEndpointKey)
	if endpoint == "" {
		switch exporterType {
		case trace.GRPC:
			endpoint = defaultGRPCEndpoint
		case trace.HTTP:
			endpoint = defaultHTTPEndpoint
		}
	}

	sampleRate := v.GetFloat64(TracingSampleRateKey)
	if sampleRate < 0 || sampleRate > 1 {
		return trace.Config{}, fmt.Errorf("%w: %f must be in [0, 1]", errInvalidSampleRate, sampleRate)
	}

	return trace.Config{
		ExporterConfig: trace.ExporterConfig{
			Type:     exporterType,
			Endpoint: endpoint,
			Headers:  v.GetStringMapString(TracingHeadersKey),
			Insecure: v.GetBool(TracingInsecureKey),
		},
		TraceSampleRate: sampleRate,
		Version:         constants.Version,
	}, nil
}

// GetConfig returns the CLI configuration defined in the [v] environment.
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		err    error
	)
	config.LoggingConfig, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	config.TraceConfig, err = getTraceConfig(v)
	if err != nil {
		return Config{}, err
	}

	config.MetricsNamespace = v.GetString(MetricsNamespaceKey)
	if config.MetricsNamespace == "" {
		return Config{}, errEmptyNamespace
	}

	config.ScenarioFile = os.ExpandEnv(v.GetString(ScenarioFileKey))
	if config.ScenarioFile == "" {
		return Config{}, errMissingScenarioFile
	}
	config.OutputFile = os.ExpandEnv(v.GetString(OutputFileKey))
	return config, nil
}
