package types

// Operation is a masking transform applied byte-wise to a fingerprint.
type Operation int

const (
	OpXOR Operation = iota
	OpAND
)

// Operations lists the operations in search priority order.
var Operations = []Operation{OpXOR, OpAND}

// Apply combines b with mask.
func (o Operation) Apply(b, mask byte) byte {
	if o == OpAND {
		return b & mask
	}
	return b ^ mask
}

func (o Operation) String() string {
	switch o {
	case OpXOR:
		return "XOR"
	case OpAND:
		return "AND"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Match is a successful search result.
type Match struct {
	Record    Record    `json:"record"`
	Mask      int       `json:"mask"`
	Operation Operation `json:"operation"`
}
