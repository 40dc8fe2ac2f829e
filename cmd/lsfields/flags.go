package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/mutagen-io/lsfields/pkg/configuration"
	"github.com/mutagen-io/lsfields/pkg/logging"
)

// applyFlags overrides configuration values with any command line flags that
// were explicitly set and then revalidates the configuration.
func applyFlags(config *configuration.Configuration, flags *pflag.FlagSet) error {
	if flags.Changed("numeric") {
		config.Users.Numeric = rootConfiguration.numeric
	}
	if flags.Changed("binary") {
		config.Size.Binary = rootConfiguration.binary
	}
	if flags.Changed("bytes") {
		config.Size.Bytes = rootConfiguration.bytes
	}
	if flags.Changed("time") {
		field, ok := configuration.NameToTimeField(rootConfiguration.time)
		if !ok {
			return errors.Errorf("invalid time field: %s", rootConfiguration.time)
		}
		config.Time.Field = field
	}
	if flags.Changed("utc") {
		config.Time.UTC = rootConfiguration.utc
	}
	if flags.Changed("exclude") {
		config.Exclude = append(config.Exclude, rootConfiguration.exclude...)
	}
	if flags.Changed("color") {
		mode, ok := configuration.NameToColorMode(rootConfiguration.color)
		if !ok {
			return errors.Errorf("invalid color mode: %s", rootConfiguration.color)
		}
		config.Colors.Mode = mode
	}
	if flags.Changed("log-level") {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			return errors.Errorf("invalid log level: %s", rootConfiguration.logLevel)
		}
		config.Logging.Level = level
	}
	if flags.Changed("log-file") {
		config.Logging.File = rootConfiguration.logFile
	}
	if rootConfiguration.parallelism < 1 {
		return errors.New("parallelism must be positive")
	}
	return config.EnsureValid()
}
