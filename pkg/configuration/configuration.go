package configuration

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/mutagen-io/lsfields/pkg/encoding"
	"github.com/mutagen-io/lsfields/pkg/logging"
)

const (
	// configurationDirectoryName is the name of the configuration directory
	// within the user's configuration directory.
	configurationDirectoryName = "lsfields"
	// configurationFileName is the name of the configuration file.
	configurationFileName = "config.yaml"

	// DefaultTimeLayout is the default timestamp layout.
	DefaultTimeLayout = "2 Jan 15:04"
	// DefaultCacheSize is the default number of account names cached.
	DefaultCacheSize = 256
	// DefaultLogMaximumSize is the default maximum log file size.
	DefaultLogMaximumSize = ByteSize(16 * 1024 * 1024)
)

// Configuration is the listing configuration.
type Configuration struct {
	// Time controls timestamp display.
	Time struct {
		// Field is the timestamp to display.
		Field TimeField `yaml:"field"`
		// Layout is the timestamp layout, as accepted by time.Time.Format.
		Layout string `yaml:"layout"`
		// UTC displays timestamps in UTC rather than the local time zone.
		UTC bool `yaml:"utc"`
	} `yaml:"time"`
	// Size controls size display.
	Size struct {
		// Binary uses power of 1024 prefixes.
		Binary bool `yaml:"binary"`
		// Bytes displays raw byte counts. It takes precedence over Binary.
		Bytes bool `yaml:"bytes"`
	} `yaml:"size"`
	// Users controls owner and group display.
	Users struct {
		// Numeric displays numeric IDs (or SID strings) instead of names.
		Numeric bool `yaml:"numeric"`
		// CacheSize is the maximum number of resolved names to cache.
		CacheSize int `yaml:"cacheSize"`
	} `yaml:"users"`
	// Exclude is a list of doublestar patterns. Entries whose name or path
	// matches any of them aren't listed.
	Exclude []string `yaml:"exclude"`
	// Colors controls output styling.
	Colors struct {
		// Mode is the color mode.
		Mode ColorMode `yaml:"mode"`
	} `yaml:"colors"`
	// Logging controls diagnostic logging.
	Logging struct {
		// Level is the log level.
		Level logging.Level `yaml:"level"`
		// File is the path of a log file. If empty, logs go to standard error.
		File string `yaml:"file"`
		// MaximumSize is the size at which the log file is rotated.
		MaximumSize ByteSize `yaml:"maxSize"`
	} `yaml:"logging"`
}

// Default returns the default configuration.
func Default() *Configuration {
	result := &Configuration{}
	result.Time.Layout = DefaultTimeLayout
	result.Users.CacheSize = DefaultCacheSize
	result.Logging.Level = logging.LevelError
	result.Logging.MaximumSize = DefaultLogMaximumSize
	return result
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	directory, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute user configuration directory")
	}
	return filepath.Join(directory, configurationDirectoryName, configurationFileName), nil
}

// Load loads the configuration file at the specified path. If the file doesn't
// exist, the default configuration is returned. Values absent from the file
// retain their defaults. The result is validated before being returned.
func Load(path string) (*Configuration, error) {
	// Create a configuration with default values. Nothing will be modified in
	// this structure if the configuration file doesn't exist.
	result := Default()

	// Attempt to load the configuration from disk.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "unable to load configuration")
		}
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	// Validate the time layout.
	if c.Time.Layout == "" {
		return errors.New("empty time layout")
	}

	// Validate the cache size.
	if c.Users.CacheSize < 0 {
		return errors.New("negative cache size")
	}

	// Validate exclusion patterns. We have to match against a non-empty path,
	// otherwise bad pattern errors won't be detected.
	for _, pattern := range c.Exclude {
		if pattern == "" {
			return errors.New("empty exclusion pattern")
		}
		if _, err := doublestar.Match(pattern, "a"); err != nil {
			return errors.Wrapf(err, "invalid exclusion pattern (%s)", pattern)
		}
	}

	// Success.
	return nil
}

// Excluded returns whether or not an entry is excluded by the configuration's
// exclusion patterns. Patterns are matched against both the entry's name and
// its slash-separated path. Patterns are assumed to have been validated.
func (c *Configuration) Excluded(name, path string) bool {
	path = filepath.ToSlash(path)
	for _, pattern := range c.Exclude {
		if match, _ := doublestar.Match(pattern, name); match {
			return true
		}
		if match, _ := doublestar.Match(pattern, path); match {
			return true
		}
	}
	return false
}
