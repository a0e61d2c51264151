// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

type factory struct {
	config Config
	lock   sync.Mutex

	// For each logger created by this factory:
	// Logger name --> the logger.
	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured
// with the values set in the [config] parameter
func NewFactory(config Config) Factory {
	return &factory{
		config:  config,
		loggers: make(map[string]Logger),
	}
}

// Make implements the Factory interface. The logger displays to stdout and,
// if a directory is configured, writes to a rotating file named after it.
func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", name)
	}

	consoleCore := NewWrappedCore(f.config.DisplayLevel, nopCloser{os.Stdout}, f.config.LogFormat.ConsoleEncoder())
	consoleCore.WriterDisabled = f.config.DisableWriterDisplaying
	cores := []WrappedCore{consoleCore}

	if f.config.Directory != "" {
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(f.config.Directory, name+".log"),
			MaxSize:    f.config.MaxSize,
			MaxAge:     f.config.MaxAge,
			MaxBackups: f.config.MaxFiles,
			Compress:   f.config.Compress,
		}
		cores = append(cores, NewWrappedCore(f.config.LogLevel, rw, f.config.LogFormat.FileEncoder()))
	}

	l := NewLogger(f.config.MsgPrefix, cores...)
	f.loggers[name] = l
	return l, nil
}

func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, lg := range f.loggers {
		lg.Stop()
	}
	f.loggers = nil
}

// nopCloser keeps Stop from closing the process's stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
