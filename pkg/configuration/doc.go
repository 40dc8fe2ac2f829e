// Package configuration provides loading and validation facilities for the
// YAML configuration file that controls listing defaults.
package configuration
