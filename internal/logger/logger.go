// SPDX-License-Identifier: MIT

// Package logger holds the process-wide structured logger of lvunit.
// Until Setup is called every record is discarded, so library packages may
// log unconditionally.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects the log destination and verbosity.
type Config struct {
	// Dir receives lvunit.log when non-empty.
	Dir string
	// Debug lowers the level to debug and adds source positions.
	Debug bool
	// Stderr is used when Dir is empty and Debug is set. Nil means os.Stderr.
	Stderr io.Writer
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup installs the logger described by cfg and returns a cleanup func that
// closes the log file and restores the discard logger.
//
// Destinations:
//   - Dir set:    JSON records appended to Dir/lvunit.log.
//   - Debug only: JSON records on stderr.
//   - neither:    records are discarded.
func Setup(cfg Config) (func() error, error) {
	var (
		w    io.Writer = io.Discard
		f    *os.File
		path string
	)
	switch {
	case cfg.Dir != "":
		dir := filepath.Clean(cfg.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		path = filepath.Join(dir, "lvunit.log")
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		w = f
	case cfg.Debug:
		w = cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	mu.Lock()
	prev := logFile
	global = slog.New(h)
	logFile = f
	logPath = path
	mu.Unlock()
	if prev != nil {
		// A repeated Setup supersedes the previous file.
		_ = prev.Close()
	}

	L().Debug("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()
		if logFile != f {
			// Superseded by a later Setup; the file is already closed.
			return nil
		}
		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

// Path returns the log file path, empty when not logging to a file.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()

	return logPath
}

func discard() *slog.Logger { return slog.New(slog.NewJSONHandler(io.Discard, nil)) }

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global = discard()
	logFile = nil
	logPath = ""
}
