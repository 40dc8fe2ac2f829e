package main

import (
	"io"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mutagen-io/lsfields/pkg/configuration"
	"github.com/mutagen-io/lsfields/pkg/logging"
)

// maximumLogBackups is the number of rotated log files retained.
const maximumLogBackups = 3

// newLogger creates the logger specified by the configuration. If logs are
// written to a file, then the returned closer must be closed when logging is
// complete. Otherwise it is nil.
func newLogger(config *configuration.Configuration) (*logging.Logger, io.Closer) {
	if config.Logging.File == "" {
		return logging.NewLogger(config.Logging.Level, color.Error), nil
	}
	file := &lumberjack.Logger{
		Filename:   config.Logging.File,
		MaxSize:    config.Logging.MaximumSize.Megabytes(),
		MaxBackups: maximumLogBackups,
	}
	return logging.NewLogger(config.Logging.Level, file), file
}
