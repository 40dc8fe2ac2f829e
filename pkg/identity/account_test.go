package identity

import (
	"syscall"
	"testing"
	"unicode/utf16"
	"unsafe"

	"github.com/pkg/errors"
)

// fakeAccount emulates the system account lookup function for a single SID.
type fakeAccount struct {
	// name is the account name, in UTF-16 code units.
	name []uint16
	// domain is the domain name, in UTF-16 code units.
	domain []uint16
	// probeSucceeds causes probes to report success.
	probeSucceeds bool
	// fillErrors are errors returned by successive fill calls before the fake
	// begins succeeding.
	fillErrors []error
	// probes counts probe calls.
	probes int
	// fills counts fill calls.
	fills int
}

// call implements accountLookupCall.
func (f *fakeAccount) call(name *uint16, nameLength *uint32, domain *uint16, domainLength *uint32) error {
	// Handle probes. The reported lengths include a null terminator, unless the
	// value is empty, in which case a zero length emulates an unknown SID.
	if name == nil || domain == nil {
		f.probes++
		*nameLength = terminatedLength(f.name)
		*domainLength = terminatedLength(f.domain)
		if f.probeSucceeds {
			return nil
		}
		return errorInsufficientBuffer
	}

	// Handle fills.
	f.fills++
	if len(f.fillErrors) > 0 {
		err := f.fillErrors[0]
		f.fillErrors = f.fillErrors[1:]
		return err
	}
	if int(*nameLength) < len(f.name)+1 || int(*domainLength) < len(f.domain)+1 {
		return errorInsufficientBuffer
	}
	nameBuffer := unsafe.Slice(name, *nameLength)
	domainBuffer := unsafe.Slice(domain, *domainLength)
	copy(nameBuffer, append(f.name, 0))
	copy(domainBuffer, append(f.domain, 0))
	*nameLength = uint32(len(f.name))
	*domainLength = uint32(len(f.domain))
	return nil
}

// terminatedLength computes the probe length for a value.
func terminatedLength(value []uint16) uint32 {
	if len(value) == 0 {
		return 0
	}
	return uint32(len(value) + 1)
}

func TestLookupAccountSuccess(t *testing.T) {
	fake := &fakeAccount{
		name:   utf16.Encode([]rune("jdoe")),
		domain: utf16.Encode([]rune("WORKSTATION")),
	}
	account, err := lookupAccount(fake.call)
	if err != nil {
		t.Fatal("lookup failed:", err)
	}
	if account.Name != "jdoe" || account.Domain != "WORKSTATION" {
		t.Errorf("incorrect account: %+v", account)
	}
	if account.String() != "WORKSTATION/jdoe" {
		t.Error("incorrect display string:", account.String())
	}
	if fake.probes != 1 || fake.fills != 1 {
		t.Errorf("unexpected call counts: %d probes, %d fills", fake.probes, fake.fills)
	}
}

func TestLookupAccountDecodesExactLengths(t *testing.T) {
	// Use a name with an unpaired surrogate and a domain with a character
	// outside the Basic Multilingual Plane (two code units).
	name := []uint16{'a', 0xD800, 'b'}
	domain := utf16.Encode([]rune("d\U0001F600"))
	fake := &fakeAccount{name: name, domain: domain}
	account, err := lookupAccount(fake.call)
	if err != nil {
		t.Fatal("lookup failed:", err)
	}
	if account.Name != "a\uFFFDb" {
		t.Errorf("invalid sequence not replaced: %q", account.Name)
	}
	if account.Domain != "d\U0001F600" {
		t.Errorf("incorrect domain: %q", account.Domain)
	}
	if encoded := utf16.Encode([]rune(account.Domain)); len(encoded) != len(domain) {
		t.Errorf("domain decoded from %d code units, expected %d", len(encoded), len(domain))
	}
}

func TestLookupAccountZeroNameLength(t *testing.T) {
	fake := &fakeAccount{domain: utf16.Encode([]rune("DOMAIN"))}
	if _, err := lookupAccount(fake.call); KindOf(err) != KindNotFound {
		t.Error("zero name length didn't produce not found error:", err)
	}
	if fake.fills != 0 {
		t.Error("fill attempted after zero-length probe")
	}
}

func TestLookupAccountZeroDomainLength(t *testing.T) {
	fake := &fakeAccount{name: utf16.Encode([]rune("user"))}
	if _, err := lookupAccount(fake.call); KindOf(err) != KindNotFound {
		t.Error("zero domain length didn't produce not found error:", err)
	}
	if fake.fills != 0 {
		t.Error("fill attempted after zero-length probe")
	}
}

func TestLookupAccountProbeSucceeds(t *testing.T) {
	fake := &fakeAccount{
		name:          utf16.Encode([]rune("user")),
		domain:        utf16.Encode([]rune("DOMAIN")),
		probeSucceeds: true,
	}
	if _, err := lookupAccount(fake.call); KindOf(err) != KindInvalidInput {
		t.Error("successful probe didn't produce invalid input error:", err)
	}
	if fake.fills != 0 {
		t.Error("fill attempted after successful probe")
	}
}

func TestLookupAccountFillFailureCarriesCode(t *testing.T) {
	fake := &fakeAccount{
		name:       utf16.Encode([]rune("user")),
		domain:     utf16.Encode([]rune("DOMAIN")),
		fillErrors: []error{syscall.Errno(1332)},
	}
	_, err := lookupAccount(fake.call)
	if KindOf(err) != KindInvalidInput {
		t.Fatal("fill failure didn't produce invalid input error:", err)
	}
	var code syscall.Errno
	if !errors.As(err, &code) || code != 1332 {
		t.Error("fill failure code not preserved")
	}
	if fake.probes != 1 {
		t.Error("fill failure caused a retry")
	}
}

func TestLookupAccountRetriesInsufficientBuffer(t *testing.T) {
	fake := &fakeAccount{
		name:       utf16.Encode([]rune("user")),
		domain:     utf16.Encode([]rune("DOMAIN")),
		fillErrors: []error{errorInsufficientBuffer},
	}
	account, err := lookupAccount(fake.call)
	if err != nil {
		t.Fatal("lookup failed after retry:", err)
	}
	if account.Name != "user" {
		t.Error("incorrect account name after retry:", account.Name)
	}
	if fake.probes != 2 || fake.fills != 2 {
		t.Errorf("unexpected call counts: %d probes, %d fills", fake.probes, fake.fills)
	}
}

func TestLookupAccountRetriesBounded(t *testing.T) {
	fake := &fakeAccount{
		name:   utf16.Encode([]rune("user")),
		domain: utf16.Encode([]rune("DOMAIN")),
		fillErrors: []error{
			errorInsufficientBuffer,
			errorInsufficientBuffer,
			errorInsufficientBuffer,
		},
	}
	if _, err := lookupAccount(fake.call); KindOf(err) != KindInvalidInput {
		t.Error("repeated insufficient buffers didn't produce invalid input error:", err)
	}
	if fake.probes != maximumLookupAttempts || fake.fills != maximumLookupAttempts {
		t.Errorf("unexpected call counts: %d probes, %d fills", fake.probes, fake.fills)
	}
}

func TestAccountStringWithoutDomain(t *testing.T) {
	if (Account{Name: "root"}).String() != "root" {
		t.Error("account without domain rendered incorrectly")
	}
}
