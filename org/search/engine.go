// Package search finds which hierarchy member owns an encrypted fingerprint.
//
// The search walks masks start..start+Span in ascending order. For each mask
// it tries XOR over the whole traversal order, then AND. The first member that
// matches wins, so the priority is: lower mask, then XOR before AND, then
// traversal position.
package search

import (
	"math"

	"github.com/joshuapare/orgtrace/internal/logger"
	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/org/cipher"
	"github.com/joshuapare/orgtrace/pkg/types"
)

// DefaultSpan is the number of masks tried after the starting mask.
const DefaultSpan = 10

// maxDistinctSpan is the widest span that can still reach a new mask byte.
// Masks compare by their low byte, so start+256 repeats start.
const maxDistinctSpan = 255

// Engine runs mask searches.
type Engine struct {
	// Span is how far past the starting mask the search goes (inclusive).
	// Zero tries only the starting mask; negative values are treated as zero.
	Span int
}

// Search runs the default engine.
func Search(h *org.Hierarchy, c cipher.Sequence, maskStart int) (types.Match, bool) {
	return Engine{Span: DefaultSpan}.Search(h, c, maskStart)
}

// Search returns the first (member, mask, operation) under which the member's
// fingerprint transforms into c, or false when no pair in range matches.
func (e Engine) Search(h *org.Hierarchy, c cipher.Sequence, maskStart int) (types.Match, bool) {
	span := e.Span
	if span < 0 {
		span = 0
	}
	if len(c) != types.FingerprintLen {
		logger.L.Warn("search: cipher has wrong length", "got", len(c), "want", types.FingerprintLen)
		return types.Match{}, false
	}
	span = clampSpan(maskStart, span)

	var target types.Fingerprint
	copy(target[:], c)

	for off := 0; off <= span; off++ {
		mask := maskStart + off
		for _, op := range types.Operations {
			if r := firstMatch(h, target, byte(mask), op); r != nil {
				logger.L.Debug("search: match", "mask", mask, "op", op.String(),
					"first", r.FirstName, "second", r.SecondName)
				return types.Match{Record: *r, Mask: mask, Operation: op}, true
			}
		}
	}
	logger.L.Debug("search: exhausted", "from", maskStart, "to", maskStart+span)
	return types.Match{}, false
}

// clampSpan bounds span so the mask range never passes math.MaxInt and never
// revisits a mask byte.
func clampSpan(maskStart, span int) int {
	span = min(span, maxDistinctSpan)
	if maskStart > math.MaxInt-span {
		span = math.MaxInt - maskStart
	}
	return span
}

func firstMatch(h *org.Hierarchy, target types.Fingerprint, mask byte, op types.Operation) *types.Record {
	for m := range h.Members() {
		if Matches(m.Record.Key(), target, mask, op) {
			return m.Record
		}
	}
	return nil
}

// Matches reports whether op(fp[i], mask) == target[i] for every byte.
func Matches(fp, target types.Fingerprint, mask byte, op types.Operation) bool {
	for i := range fp {
		if op.Apply(fp[i], mask) != target[i] {
			return false
		}
	}
	return true
}
