package orgfile

import "github.com/joshuapare/orgtrace/org/cipher"

// LoadOptions controls how a clean record file becomes a hierarchy.
type LoadOptions struct {
	// Encoding names the file encoding ("" or UTF-8, UTF-16LE, WINDOWS-1252).
	// A byte order mark takes precedence.
	Encoding string

	// MaxMembers bounds how many records the hierarchy may store.
	// Default: 0 (unlimited)
	MaxMembers int
}

// DecryptOptions controls Decrypt.
type DecryptOptions struct {
	Load LoadOptions

	// Decoder configures cipher decoding (line count, strictness).
	Decoder cipher.Decoder

	// Span is how far past the starting mask the search goes.
	// Default: search.DefaultSpan when nil
	Span *int
}

// SanitizeOptions controls Sanitize.
type SanitizeOptions struct {
	// Encoding names the raw file encoding.
	Encoding string
}
