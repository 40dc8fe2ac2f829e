// Package identity resolves the accounts that own filesystem entries. On
// Windows this means acquiring a path's security descriptor, extracting the
// owner and group SIDs that it contains, and translating each SID into an
// account and domain name. On POSIX systems it provides a thin numeric ID to
// name lookup against the local account database.
//
// Resolution failures are reported as *Error values whose Kind distinguishes
// missing identities, inaccessible descriptors, and misbehaving system calls.
package identity
