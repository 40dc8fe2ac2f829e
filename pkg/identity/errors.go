package identity

import (
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
)

// Kind classifies an identity resolution failure.
type Kind uint8

const (
	// KindNotFound indicates that an owner or group identity is missing or
	// that a SID doesn't correspond to any account.
	KindNotFound Kind = iota + 1
	// KindPermissionDenied indicates that a security descriptor couldn't be
	// accessed.
	KindPermissionDenied
	// KindInvalidInput indicates that a system call misbehaved or reported a
	// failure code.
	KindInvalidInput
)

// String provides a human-readable representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Error is the error type returned by identity resolution operations.
type Error struct {
	// Kind is the failure classification.
	Kind Kind
	// Message describes the failure.
	Message string
	// Err is the underlying system error, if any. For failed system calls this
	// is usually a syscall.Errno carrying the raw error code.
	Err error
}

// newError creates a new resolution error.
func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Error implements error.Error.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying system error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match resolution errors against the generic
// filesystem error values that correspond to their kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == fs.ErrNotExist
	case KindPermissionDenied:
		return target == fs.ErrPermission
	case KindInvalidInput:
		return target == fs.ErrInvalid
	default:
		return false
	}
}

// KindOf returns the kind of a resolution error anywhere in err's chain. It
// returns 0 if err doesn't contain an *Error.
func KindOf(err error) Kind {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind
	}
	return 0
}
