package cmd

import (
	"testing"

	"github.com/fatih/color"

	"github.com/mutagen-io/lsfields/pkg/configuration"
)

func TestConfigureColor(t *testing.T) {
	original := color.NoColor
	defer func() {
		color.NoColor = original
	}()

	ConfigureColor(configuration.ColorModeAlways)
	if color.NoColor {
		t.Error("color disabled in always mode")
	}
	ConfigureColor(configuration.ColorModeNever)
	if !color.NoColor {
		t.Error("color enabled in never mode")
	}
	t.Setenv("NO_COLOR", "1")
	ConfigureColor(configuration.ColorModeAuto)
	if !color.NoColor {
		t.Error("color enabled in auto mode with NO_COLOR set")
	}
}
