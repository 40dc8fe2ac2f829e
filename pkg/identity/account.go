package identity

import (
	"syscall"
	"unicode/utf16"

	"github.com/pkg/errors"
)

const (
	// maximumLookupAttempts is the maximum number of probe/fill cycles that an
	// account lookup will perform. The account database can change between
	// the probe and the fill, in which case the fill reports an insufficient
	// buffer and the cycle restarts.
	maximumLookupAttempts = 2

	// errorInsufficientBuffer is the ERROR_INSUFFICIENT_BUFFER system error
	// code.
	errorInsufficientBuffer = syscall.Errno(122)
)

// Account is a resolved account name and the domain that it belongs to.
type Account struct {
	// Name is the account name.
	Name string
	// Domain is the name of the domain (or machine) that defines the account.
	Domain string
}

// String joins the domain and account name for display.
func (a Account) String() string {
	if a.Domain == "" {
		return a.Name
	}
	return a.Domain + "/" + a.Name
}

// accountLookupCall performs a single call to the system account lookup
// function for a fixed SID. When name and domain are nil, the call is expected
// to fail and store the required buffer lengths (in UTF-16 code units) in
// nameLength and domainLength. Otherwise it fills the buffers and stores the
// number of code units written.
type accountLookupCall func(name *uint16, nameLength *uint32, domain *uint16, domainLength *uint32) error

// lookupAccount drives the two-phase account lookup protocol: it first probes
// for the required buffer sizes and then fills buffers of exactly that size.
func lookupAccount(call accountLookupCall) (Account, error) {
	var lastErr error
	for attempt := 0; attempt < maximumLookupAttempts; attempt++ {
		// Probe for buffer sizes. This call must fail, because there's nowhere
		// for it to have put the result.
		var nameLength, domainLength uint32
		if err := call(nil, &nameLength, nil, &domainLength); err == nil {
			return Account{}, newError(KindInvalidInput,
				"account lookup succeeded with null buffers", nil,
			)
		}
		if nameLength == 0 || domainLength == 0 {
			return Account{}, newError(KindNotFound,
				"SID was incorrect, causing name or domain length to be 0", nil,
			)
		}

		// Allocate buffers and fill them.
		name := make([]uint16, nameLength)
		domain := make([]uint16, domainLength)
		if err := call(&name[0], &nameLength, &domain[0], &domainLength); err != nil {
			if errors.Is(err, errorInsufficientBuffer) {
				lastErr = err
				continue
			}
			return Account{}, newError(KindInvalidInput, "account lookup failed", err)
		}

		// The reported lengths now describe what was written. They can't
		// exceed what we allocated.
		if int(nameLength) > len(name) || int(domainLength) > len(domain) {
			return Account{}, newError(KindInvalidInput,
				"account lookup reported more data than buffers hold", nil,
			)
		}

		// Success.
		return Account{
			Name:   decodeUTF16(name[:nameLength]),
			Domain: decodeUTF16(domain[:domainLength]),
		}, nil
	}

	// The account changed underneath every attempt.
	return Account{}, newError(KindInvalidInput,
		"account lookup buffers repeatedly insufficient", lastErr,
	)
}

// decodeUTF16 converts UTF-16 code units to a string, substituting the Unicode
// replacement character for invalid sequences.
func decodeUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}
