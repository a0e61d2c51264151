// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// ExporterType selects where the spans opened around host notifications are
// sent. Disabled keeps spans in process and exports nothing.
type ExporterType byte

const (
	Disabled ExporterType = iota
	GRPC
	HTTP
)

var (
	errUnknownExporterType = errors.New("unknown exporter type")

	_ encoding.TextMarshaler   = Disabled
	_ encoding.TextUnmarshaler = (*ExporterType)(nil)

	exporterTypeNames = [...]string{
		Disabled: "disabled",
		GRPC:     "grpc",
		HTTP:     "http",
	}

	// Accepted spellings of the --tracing-exporter-type flag besides the
	// canonical names.
	exporterTypeAliases = map[string]ExporterType{
		"":          Disabled,
		"none":      Disabled,
		"null":      Disabled,
		"otlp-grpc": GRPC,
		"otlp-http": HTTP,
	}
)

// ExporterTypeFromString parses an exporter type, ignoring case.
func ExporterTypeFromString(s string) (ExporterType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, typeName := range exporterTypeNames {
		if name == typeName {
			return ExporterType(t), nil
		}
	}
	if t, ok := exporterTypeAliases[name]; ok {
		return t, nil
	}
	return Disabled, fmt.Errorf("%w: %q", errUnknownExporterType, s)
}

func (t ExporterType) String() string {
	if int(t) < len(exporterTypeNames) {
		return exporterTypeNames[t]
	}
	return "unknown"
}

// MarshalText lets config files, JSON or YAML, carry the exporter by name.
func (t ExporterType) MarshalText() ([]byte, error) {
	if int(t) >= len(exporterTypeNames) {
		return nil, fmt.Errorf("%w: %d", errUnknownExporterType, t)
	}
	return []byte(t.String()), nil
}

func (t *ExporterType) UnmarshalText(text []byte) error {
	exporterType, err := ExporterTypeFromString(string(text))
	if err != nil {
		return err
	}
	*t = exporterType
	return nil
}
