package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mutagen-io/lsfields/pkg/logging"
)

// writeConfiguration writes configuration data to a temporary file.
func writeConfiguration(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	return path
}

func TestLoadNonExistent(t *testing.T) {
	configuration, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal("unable to load default configuration:", err)
	}
	if configuration.Time.Layout != DefaultTimeLayout {
		t.Error("default time layout not set")
	}
	if configuration.Users.CacheSize != DefaultCacheSize {
		t.Error("default cache size not set")
	}
	if configuration.Logging.Level != logging.LevelError {
		t.Error("default log level not set")
	}
	if configuration.Colors.Mode != ColorModeAuto {
		t.Error("default color mode not set")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfiguration(t, `
time:
  field: changed
  utc: true
size:
  binary: true
users:
  numeric: true
  cacheSize: 16
exclude:
  - "*.log"
  - "build/**"
colors:
  mode: never
logging:
  level: debug
  file: /tmp/lsfields.log
  maxSize: 2MiB
`)
	configuration, err := Load(path)
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Time.Field != TimeFieldChanged || !configuration.Time.UTC {
		t.Error("time settings not loaded")
	}
	if configuration.Time.Layout != DefaultTimeLayout {
		t.Error("absent time layout not defaulted:", configuration.Time.Layout)
	}
	if !configuration.Size.Binary || configuration.Size.Bytes {
		t.Error("size settings not loaded")
	}
	if !configuration.Users.Numeric || configuration.Users.CacheSize != 16 {
		t.Error("user settings not loaded")
	}
	if len(configuration.Exclude) != 2 {
		t.Error("exclusions not loaded:", configuration.Exclude)
	}
	if configuration.Colors.Mode != ColorModeNever {
		t.Error("color mode not loaded:", configuration.Colors.Mode)
	}
	if configuration.Logging.Level != logging.LevelDebug {
		t.Error("log level not loaded:", configuration.Logging.Level)
	}
	if configuration.Logging.MaximumSize != 2*1024*1024 {
		t.Error("log size not loaded:", configuration.Logging.MaximumSize)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	documents := []string{
		"time:\n  field: birthday\n",
		"colors:\n  mode: sometimes\n",
		"logging:\n  level: verbose\n",
		"logging:\n  maxSize: lots\n",
		"users:\n  cacheSize: -1\n",
		"exclude:\n  - \"[\"\n",
		"exclude:\n  - \"\"\n",
		"unknown: true\n",
	}
	for _, document := range documents {
		if _, err := Load(writeConfiguration(t, document)); err == nil {
			t.Errorf("invalid configuration accepted: %q", document)
		}
	}
}

func TestExcluded(t *testing.T) {
	configuration := Default()
	configuration.Exclude = []string{"*.log", "build/**"}
	cases := []struct {
		name     string
		path     string
		expected bool
	}{
		{"debug.log", "logs/debug.log", true},
		{"out", "build/out", true},
		{"main.go", "src/main.go", false},
		{"README", "build.md/README", false},
	}
	for _, c := range cases {
		if excluded := configuration.Excluded(c.name, c.path); excluded != c.expected {
			t.Errorf("exclusion of %s is %t, expected %t", c.path, excluded, c.expected)
		}
	}
}

func TestByteSizeMegabytes(t *testing.T) {
	cases := map[ByteSize]int{
		0:                     0,
		1:                     1,
		1024 * 1024:           1,
		1024*1024 + 1:         2,
		DefaultLogMaximumSize: 16,
	}
	for size, expected := range cases {
		if megabytes := size.Megabytes(); megabytes != expected {
			t.Errorf("%d bytes is %d megabytes, expected %d", size, megabytes, expected)
		}
	}
}

func TestModeNames(t *testing.T) {
	for _, field := range []TimeField{TimeFieldModified, TimeFieldAccessed, TimeFieldChanged, TimeFieldCreated} {
		if parsed, ok := NameToTimeField(field.String()); !ok || parsed != field {
			t.Error("time field name doesn't round trip:", field)
		}
	}
	for _, mode := range []ColorMode{ColorModeAuto, ColorModeAlways, ColorModeNever} {
		if parsed, ok := NameToColorMode(mode.String()); !ok || parsed != mode {
			t.Error("color mode name doesn't round trip:", mode)
		}
	}
}
