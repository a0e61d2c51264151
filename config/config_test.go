// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/evmtracer/trace"
	"github.com/ava-labs/evmtracer/utils/constants"
	"github.com/ava-labs/evmtracer/utils/logging"
)

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	v, err := BuildViper(BuildFlagSet(), []string{
		"--" + ScenarioFileKey, "scenario.json",
		"--" + LogFormatKey, "plain",
	})
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.Equal(Config{
		LoggingConfig: logging.Config{
			RotatingWriterConfig: logging.RotatingWriterConfig{
				MaxSize:  defaultLogMaxSize,
				MaxFiles: defaultLogMaxFiles,
				MaxAge:   defaultLogMaxAge,
			},
			LogLevel:     logging.Info,
			DisplayLevel: logging.Info,
			LogFormat:    logging.Plain,
		},
		MetricsNamespace: DefaultMetricsNamespace,
		ScenarioFile:     "scenario.json",
	}, config)
}

func TestGetConfigFromFile(t *testing.T) {
	tests := map[string]struct {
		fileName string
		contents string
	}{
		"json": {
			fileName: "config.json",
			contents: fmt.Sprintf(`{%q: "debug", %q: "json", %q: "grpc", %q: 0.5, %q: "scenario.json"}`,
				LogLevelKey,
				LogFormatKey,
				TracingExporterTypeKey,
				TracingSampleRateKey,
				ScenarioFileKey,
			),
		},
		"yaml": {
			fileName: "config.yaml",
			contents: fmt.Sprintf("%s: debug\n%s: json\n%s: grpc\n%s: 0.5\n%s: scenario.json\n",
				LogLevelKey,
				LogFormatKey,
				TracingExporterTypeKey,
				TracingSampleRateKey,
				ScenarioFileKey,
			),
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			configFile := setupFile(t, t.TempDir(), test.fileName, test.contents)
			v, err := BuildViper(BuildFlagSet(), []string{"--" + ConfigFileKey, configFile})
			require.NoError(err)

			config, err := GetConfig(v)
			require.NoError(err)
			require.Equal(logging.Debug, config.LoggingConfig.LogLevel)
			require.Equal(logging.Debug, config.LoggingConfig.DisplayLevel)
			require.Equal(logging.JSON, config.LoggingConfig.LogFormat)
			require.Equal("scenario.json", config.ScenarioFile)
			require.Equal(trace.Config{
				ExporterConfig: trace.ExporterConfig{
					Type:     trace.GRPC,
					Endpoint: defaultGRPCEndpoint,
					Headers:  map[string]string{},
					Insecure: true,
				},
				TraceSampleRate: 0.5,
				Version:         constants.Version,
			}, config.TraceConfig)
		})
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	require := require.New(t)

	configFile := setupFile(t, t.TempDir(), "config.json", fmt.Sprintf(`{%q: "debug", %q: "from-file.json"}`, LogLevelKey, ScenarioFileKey))
	v, err := BuildViper(BuildFlagSet(), []string{
		"--" + ConfigFileKey, configFile,
		"--" + LogLevelKey, "warn",
		"--" + LogDisplayLevelKey, "error",
		"--" + LogFormatKey, "plain",
	})
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.Equal(logging.Warn, config.LoggingConfig.LogLevel)
	require.Equal(logging.Error, config.LoggingConfig.DisplayLevel)
	require.Equal("from-file.json", config.ScenarioFile)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	require := require.New(t)

	t.Setenv("EVMTRACER_LOG_LEVEL", "verbo")
	t.Setenv("EVMTRACER_SCENARIO_FILE", "from-env.json")
	t.Setenv("EVMTRACER_METRICS_NAMESPACE", "replay")

	v, err := BuildViper(BuildFlagSet(), []string{"--" + LogFormatKey, "plain"})
	require.NoError(err)

	config, err := GetConfig(v)
	require.NoError(err)
	require.Equal(logging.Verbo, config.LoggingConfig.LogLevel)
	require.Equal("from-env.json", config.ScenarioFile)
	require.Equal("replay", config.MetricsNamespace)
}

func TestTracingConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    trace.Config
		expectedErr error
	}{
		{
			name:     "disabled",
			args:     nil,
			expected: trace.Config{},
		},
		{
			name: "http with endpoint and headers",
			args: []string{
				"--" + TracingExporterTypeKey, "http",
				"--" + TracingEndpointKey, "collector:4318",
				"--" + TracingInsecureKey + "=false",
				"--" + TracingSampleRateKey, "1",
				"--" + TracingHeadersKey, "authorization=token",
			},
			expected: trace.Config{
				ExporterConfig: trace.ExporterConfig{
					Type:     trace.HTTP,
					Endpoint: "collector:4318",
					Headers:  map[string]string{"authorization": "token"},
				},
				TraceSampleRate: 1,
				Version:         constants.Version,
			},
		},
		{
			name: "sample rate too large",
			args: []string{
				"--" + TracingExporterTypeKey, "grpc",
				"--" + TracingSampleRateKey, "1.5",
			},
			expectedErr: errInvalidSampleRate,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			v, err := BuildViper(BuildFlagSet(), test.args)
			require.NoError(err)

			config, err := getTraceConfig(v)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.expected, config)
		})
	}
}

func TestGetConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "missing scenario",
			args:        []string{"--" + LogFormatKey, "plain"},
			expectedErr: errMissingScenarioFile,
		},
		{
			name: "empty namespace",
			args: []string{
				"--" + ScenarioFileKey, "scenario.json",
				"--" + LogFormatKey, "plain",
				"--" + MetricsNamespaceKey, "",
			},
			expectedErr: errEmptyNamespace,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			v, err := BuildViper(BuildFlagSet(), test.args)
			require.NoError(err)

			_, err = GetConfig(v)
			require.ErrorIs(err, test.expectedErr)
		})
	}
}

func TestGetConfigInvalidValues(t *testing.T) {
	tests := map[string][]string{
		"log level":     {"--" + LogLevelKey, "loud"},
		"log format":    {"--" + LogFormatKey, "fancy"},
		"exporter type": {"--" + TracingExporterTypeKey, "carrier-pigeon"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			args = append(args, "--"+ScenarioFileKey, "scenario.json")
			v, err := BuildViper(BuildFlagSet(), args)
			require.NoError(err)

			_, err = GetConfig(v)
			require.Error(err) //nolint:forbidigo // the error is not exported
		})
	}
}

func TestBuildViperMissingConfigFile(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{"--" + ConfigFileKey, filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err) //nolint:forbidigo // returned by viper
}

func TestBuildViperUnknownFlag(t *testing.T) {
	_, err := BuildViper(BuildFlagSet(), []string{"--unknown-flag"})
	require.Error(t, err) //nolint:forbidigo // returned by pflag
}

// setupFile writes [value] to [fileName] in [dir] and returns its path.
func setupFile(t *testing.T, dir string, fileName string, value string) string {
	require := require.New(t)

	require.NoError(os.MkdirAll(dir, 0o700))
	filePath := filepath.Join(dir, fileName)
	require.NoError(os.WriteFile(filePath, []byte(value), 0o600))
	return filePath
}
