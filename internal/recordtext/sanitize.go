package recordtext

import (
	"strings"

	"github.com/joshuapare/orgtrace/pkg/types"
)

// Sanitize strips corruption markers and line terminators from a raw stream.
// The result is capped at MaxCleanBytes; anything beyond is discarded.
func Sanitize(raw []byte) []byte {
	out := make([]byte, 0, min(len(raw), MaxCleanBytes))
	for _, c := range raw {
		if isCorruption(c) || c == '\n' || c == '\r' {
			continue
		}
		if len(out) == MaxCleanBytes {
			break
		}
		out = append(out, c)
	}
	return out
}

func isCorruption(c byte) bool {
	return strings.IndexByte(CorruptionMarkers, c) >= 0
}

// Extract locates labeled records in a sanitized buffer.
//
// Each record starts at LabelFirstName; its second name, fingerprint and
// position labels must follow in that order. The position value runs up to
// the next LabelFirstName or the end of the buffer. Extraction stops at the
// first record missing a label or carrying labels out of order. Each value
// is cut to its field capacity before surrounding whitespace is trimmed.
func Extract(clean []byte) []types.Record {
	s := string(clean)
	start := strings.Index(s, LabelFirstName)
	if start < 0 {
		return nil
	}

	var records []types.Record
	rest := s[start:]
	for {
		sec := strings.Index(rest, LabelSecondName)
		fin := strings.Index(rest, LabelFingerprint)
		pos := strings.Index(rest, LabelPosition)
		if sec < len(LabelFirstName) ||
			fin < sec+len(LabelSecondName) ||
			pos < fin+len(LabelFingerprint) {
			break
		}

		posStart := pos + len(LabelPosition)
		posEnd := len(rest)
		next := strings.Index(rest[posStart:], LabelFirstName)
		if next >= 0 {
			posEnd = posStart + next
		}

		records = append(records, types.Record{
			FirstName:   clampValue(rest[len(LabelFirstName):sec], types.NameCapacity),
			SecondName:  clampValue(rest[sec+len(LabelSecondName):fin], types.NameCapacity),
			Fingerprint: clampValue(rest[fin+len(LabelFingerprint):pos], types.FingerprintCapacity),
			Role:        types.Role(clampValue(rest[posStart:posEnd], types.RoleCapacity)),
		})

		if next < 0 {
			break
		}
		rest = rest[posEnd:]
	}
	return records
}

// clampValue cuts a raw field to capacity and then trims it, so padding
// counts against the capacity.
func clampValue(raw string, capacity int) string {
	return strings.TrimSpace(types.Truncate(raw, capacity))
}

// Dedupe keeps the first record for each 9-byte fingerprint key, preserving
// arrival order.
func Dedupe(records []types.Record) []types.Record {
	seen := make(map[types.Fingerprint]struct{}, len(records))
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		key := r.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
