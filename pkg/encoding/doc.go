// Package encoding provides loading and decoding facilities for on-disk
// configuration files.
package encoding
