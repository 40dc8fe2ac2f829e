package main

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/mutagen-io/lsfields/pkg/configuration"
	"github.com/mutagen-io/lsfields/pkg/logging"
)

// newTestFlags creates a flag set bound to the root command's configuration.
func newTestFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.BoolVarP(&rootConfiguration.numeric, "numeric", "n", false, "")
	flags.BoolVarP(&rootConfiguration.binary, "binary", "b", false, "")
	flags.StringVarP(&rootConfiguration.time, "time", "t", "", "")
	flags.StringSliceVarP(&rootConfiguration.exclude, "exclude", "I", nil, "")
	flags.StringVar(&rootConfiguration.color, "color", "", "")
	flags.StringVar(&rootConfiguration.logLevel, "log-level", "", "")
	flags.IntVarP(&rootConfiguration.parallelism, "parallelism", "j", 1, "")
	return flags
}

func TestApplyFlags(t *testing.T) {
	flags := newTestFlags()
	err := flags.Parse([]string{
		"-n", "--time", "accessed", "-I", "*.log", "--color", "never",
		"--log-level", "debug", "-j", "4",
	})
	if err != nil {
		t.Fatal("unable to parse flags:", err)
	}

	config := configuration.Default()
	config.Exclude = []string{"*.tmp"}
	if err := applyFlags(config, flags); err != nil {
		t.Fatal("unable to apply flags:", err)
	}
	if !config.Users.Numeric {
		t.Error("numeric flag not applied")
	}
	if config.Size.Binary {
		t.Error("unset flag applied")
	}
	if config.Time.Field != configuration.TimeFieldAccessed {
		t.Error("time flag not applied:", config.Time.Field)
	}
	if len(config.Exclude) != 2 || config.Exclude[1] != "*.log" {
		t.Error("exclusions not appended:", config.Exclude)
	}
	if config.Colors.Mode != configuration.ColorModeNever {
		t.Error("color flag not applied:", config.Colors.Mode)
	}
	if config.Logging.Level != logging.LevelDebug {
		t.Error("log level flag not applied:", config.Logging.Level)
	}
}

func TestApplyFlagsInvalid(t *testing.T) {
	arguments := [][]string{
		{"--time", "yesterday"},
		{"--color", "sometimes"},
		{"--log-level", "loud"},
		{"-I", "["},
		{"-j", "0"},
	}
	for _, a := range arguments {
		flags := newTestFlags()
		if err := flags.Parse(a); err != nil {
			t.Fatal("unable to parse flags:", err)
		}
		if applyFlags(configuration.Default(), flags) == nil {
			t.Errorf("invalid flags accepted: %v", a)
		}
	}
}
