package vperm

import (
	"io"

	"github.com/mwantia/vperm/log"
)

type SessionOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	LogWriter     io.Writer
	NoTerminalLog bool
	JSONLog       bool
}

type SessionOption func(*SessionOptions) error

func newDefaultSessionOptions() *SessionOptions {
	return &SessionOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(logLevel log.LogLevel) SessionOption {
	return func(opts *SessionOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

// WithLogLevelName parses the level by name, e.g. from an environment variable.
func WithLogLevelName(name string) SessionOption {
	return func(opts *SessionOptions) error {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}

		opts.LogLevel = level
		return nil
	}
}

func WithoutTerminalLog() SessionOption {
	return func(opts *SessionOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) SessionOption {
	return func(opts *SessionOptions) error {
		opts.LogFile = logFile

		return nil
	}
}

// WithLogWriter sends all log output to w instead of the terminal or a file.
func WithLogWriter(w io.Writer) SessionOption {
	return func(opts *SessionOptions) error {
		if w == nil {
			return errNilLogWriter
		}

		opts.LogWriter = w
		return nil
	}
}

func WithJSONLog() SessionOption {
	return func(opts *SessionOptions) error {
		opts.JSONLog = true
		return nil
	}
}
