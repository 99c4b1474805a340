package record

import "bytes"

// VendorProfile narrows the generic record-kind contracts to the subset an
// instrument vendor actually emits. The only narrowing this gateway
// currently encodes is the Roche c111's restricted MessageTerminator
// alphabet.
type VendorProfile struct {
	name             string
	terminationCodes [][]byte
}

// ProfileGeneric accepts every termination code the standard allows.
var ProfileGeneric = VendorProfile{
	name:             "generic",
	terminationCodes: [][]byte{[]byte("N"), []byte("T"), []byte("R"), []byte("E"), []byte("Q"), []byte("I"), []byte("F")},
}

// ProfileC111 is the Roche c111 vendor profile: it restricts
// MessageTerminator's termination_code to Normal and Error.
var ProfileC111 = VendorProfile{
	name:             "c111",
	terminationCodes: [][]byte{[]byte("N"), []byte("E")},
}

func (p VendorProfile) String() string { return p.name }

// ValidateTerminator reports whether code (as returned by
// MessageTerminator.NormalizedTerminationCode) is one this profile allows.
func (p VendorProfile) ValidateTerminator(code []byte) bool {
	for _, allowed := range p.terminationCodes {
		if bytes.Equal(code, allowed) {
			return true
		}
	}
	return false
}
