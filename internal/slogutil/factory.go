package slogutil

import (
	"io"
	"log/slog"

	"codesearch/internal/config"
)

// CLILogger builds the logger for one CLI invocation: stderr at the level
// chosen by the -v/--quiet flags (or logging.level when no flag is given),
// plus logging.file when configured.
type CLILogger struct {
	Logger *slog.Logger
	closer io.Closer
}

// NewCLILogger returns the invocation's logger. verbosity and quiet come
// from the command line; cliSet reports whether either was given.
func NewCLILogger(stderr io.Writer, cfg config.LoggingConfig, verbosity int, quiet, cliSet bool) (*CLILogger, error) {
	level := slog.LevelWarn
	switch {
	case cliSet:
		level = LevelFromVerbosity(verbosity, quiet)
	case cfg.Level != "":
		level = LevelFromString(cfg.Level)
	}

	handlers := []slog.Handler{NewHandler(stderr, cfg.Format, level)}
	out := &CLILogger{}

	if cfg.File != "" {
		f, err := OpenLogFile(cfg.File, cfg.MaxSize, cfg.MaxBackups)
		if err != nil {
			return nil, err
		}
		out.closer = f
		// The file records at least info even when stderr is quiet.
		fileLevel := level
		if fileLevel > slog.LevelInfo {
			fileLevel = slog.LevelInfo
		}
		handlers = append(handlers, NewHandler(f, cfg.Format, fileLevel))
	}

	if len(handlers) == 1 {
		out.Logger = slog.New(handlers[0])
	} else {
		out.Logger = slog.New(NewTeeHandler(handlers...))
	}
	return out, nil
}

// Close closes the log file, if any.
func (l *CLILogger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
