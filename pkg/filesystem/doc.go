// Package filesystem converts filesystem metadata into field values. It
// classifies entries, applies the policy that decides which fields apply to
// which entry types, and lists directories.
package filesystem
