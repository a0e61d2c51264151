// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogLevel(t *testing.T) {
	require := require.New(t)

	var testBuffer bytes.Buffer
	logger := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))
	internalLogger := logger.(*log).internalLogger
	logger.(*log).internalLogger = internalLogger.WithOptions(zap.Hooks(func(entry zapcore.Entry) error {
		testBuffer.WriteString(entry.Message)
		return nil
	}))

	logger.Debug("debug")
	require.Zero(testBuffer.Len())
	require.False(logger.Enabled(Debug))

	logger.Info("info")
	require.Equal("info", testBuffer.String())

	logger.SetLevel(Verbo)
	require.True(logger.Enabled(Verbo))
	testBuffer.Reset()
	logger.Verbo("verbo")
	require.Equal("verbo", testBuffer.String())

	// Fatal never exits the process.
	testBuffer.Reset()
	logger.Fatal("fatal")
	require.Equal("fatal", testBuffer.String())
}

func TestRecoverAndPanic(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))
	require.PanicsWithValue(t, "boom", func() {
		log.RecoverAndPanic(func() {
			panic("boom")
		})
	})
}

func TestJSONFormat(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("tracer", NewWrappedCore(Info, buf, JSON.ConsoleEncoder()))
	log.Warn("forwarded", zap.Int("size", 4))

	var entry map[string]interface{}
	require.NoError(json.Unmarshal(buf.Bytes(), &entry))
	require.Equal("warn", entry["level"])
	require.Equal("tracer", entry["logger"])
	require.Equal("forwarded", entry["msg"])
	require.Equal(float64(4), entry["size"])
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	for _, level := range []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo} {
		b, err := json.Marshal(level)
		require.NoError(err)

		var parsed Level
		require.NoError(json.Unmarshal(b, &parsed))
		require.Equal(level, parsed)
	}

	_, err := ToLevel("loud")
	require.ErrorIs(err, errUnknownLevel)
}

func TestToFormat(t *testing.T) {
	require := require.New(t)

	f, err := ToFormat("json", 0)
	require.NoError(err)
	require.Equal(JSON, f)

	f, err = ToFormat("colors", 0)
	require.NoError(err)
	require.Equal(Colors, f)

	_, err = ToFormat("rainbow", 0)
	require.ErrorIs(err, errUnknownFormat)
}

func TestFactoryWritesFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	factory := NewFactory(Config{
		RotatingWriterConfig: RotatingWriterConfig{
			Directory: dir,
			MaxSize:   1,
		},
		DisableWriterDisplaying: true,
		LogLevel:                Debug,
		DisplayLevel:            Off,
	})

	log, err := factory.Make("tracer")
	require.NoError(err)

	_, err = factory.Make("tracer")
	require.Error(err)

	log.Debug("hello")
	factory.Close()

	content, err := os.ReadFile(filepath.Join(dir, "tracer.log"))
	require.NoError(err)
	require.Contains(string(content), "hello")
}
