package types

import "unicode/utf8"

// Field capacities in bytes. A single bound per field is used everywhere a
// record is stored: by the sanitizer, the parser and the hierarchy.
const (
	NameCapacity        = 99
	FingerprintCapacity = 49
	RoleCapacity        = 49
)

// FingerprintLen is the number of significant fingerprint bytes.
const FingerprintLen = 9

// Role is a position label as it appears in the record stream.
type Role string

const (
	RoleBoss         Role = "Boss"
	RoleLeftHand     Role = "Left Hand"
	RoleRightHand    Role = "Right Hand"
	RoleSupportLeft  Role = "Support_Left"
	RoleSupportRight Role = "Support_Right"
)

// Known reports whether r is one of the five recognized position labels.
func (r Role) Known() bool {
	switch r {
	case RoleBoss, RoleLeftHand, RoleRightHand, RoleSupportLeft, RoleSupportRight:
		return true
	}
	return false
}

// Fingerprint holds the significant bytes of a fingerprint string.
type Fingerprint [FingerprintLen]byte

// FingerprintOf returns the first FingerprintLen bytes of s, zero-padded.
func FingerprintOf(s string) Fingerprint {
	var fp Fingerprint
	copy(fp[:], s)
	return fp
}

// Record is one parsed member record.
type Record struct {
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	Fingerprint string `json:"fingerprint"`
	Role        Role   `json:"position"`
}

// NewRecord builds a Record, truncating every field to its capacity.
func NewRecord(first, second, fingerprint string, role Role) Record {
	return Record{
		FirstName:   Truncate(first, NameCapacity),
		SecondName:  Truncate(second, NameCapacity),
		Fingerprint: Truncate(fingerprint, FingerprintCapacity),
		Role:        Role(Truncate(string(role), RoleCapacity)),
	}
}

// Key returns the 9-byte fingerprint used for matching and duplicate detection.
func (r *Record) Key() Fingerprint {
	return FingerprintOf(r.Fingerprint)
}

// ShortFingerprint returns at most FingerprintLen bytes of the fingerprint.
func (r *Record) ShortFingerprint() string {
	if len(r.Fingerprint) <= FingerprintLen {
		return r.Fingerprint
	}
	return r.Fingerprint[:FingerprintLen]
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
