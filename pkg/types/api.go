package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat     ErrKind = iota // malformed input (bad digits, unreadable encoding)
	ErrKindIncomplete                // input ended before the required amount of data
	ErrKindNotFound                  // missing file or record
	ErrKindCapacity                  // a configured resource limit was exceeded
	ErrKindIO                        // underlying read/write failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindIncomplete:
		return "incomplete"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindCapacity:
		return "capacity"
	case ErrKindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the ErrKind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// Sentinels commonly returned by implementations.
var (
	// ErrIncomplete indicates the cipher input had fewer lines than required.
	ErrIncomplete = &Error{Kind: ErrKindIncomplete, Msg: "incomplete cipher input"}
	// ErrBadDigits indicates a cipher line was not an 8-digit binary number (strict mode only).
	ErrBadDigits = &Error{Kind: ErrKindFormat, Msg: "malformed binary digit line"}
	// ErrEncoding indicates the requested input encoding is not supported.
	ErrEncoding = &Error{Kind: ErrKindFormat, Msg: "unsupported input encoding"}
	// ErrCapacity indicates hierarchy construction exceeded its member limit.
	ErrCapacity = &Error{Kind: ErrKindCapacity, Msg: "hierarchy member limit exceeded"}
	// ErrNotFound indicates a missing input file.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)
