package printer

import (
	"encoding/json"
	"strings"

	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/pkg/types"
)

// jsonHand represents a mid-level holder and its supports in JSON format.
type jsonHand struct {
	*types.Record
	Supports []types.Record `json:"supports"`
}

// jsonHierarchy represents the whole tree in JSON format.
type jsonHierarchy struct {
	Boss      *types.Record `json:"boss"`
	LeftHand  *jsonHand     `json:"left_hand"`
	RightHand *jsonHand     `json:"right_hand"`
	Members   int           `json:"members"`
}

// jsonMatch represents a search outcome in JSON format.
type jsonMatch struct {
	Found       bool          `json:"found"`
	Mask        *int          `json:"mask,omitempty"`
	Operation   string        `json:"operation,omitempty"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Record      *types.Record `json:"record,omitempty"`
}

func newJSONHand(holder *types.Record, supports []types.Record) *jsonHand {
	if holder == nil {
		return nil
	}
	if supports == nil {
		supports = []types.Record{}
	}
	return &jsonHand{Record: holder, Supports: supports}
}

// printHierarchyJSON prints the tree as a JSON object.
func (p *Printer) printHierarchyJSON(h *org.Hierarchy) error {
	out := jsonHierarchy{
		Boss:      h.Boss(),
		LeftHand:  newJSONHand(h.LeftHand(), h.LeftSupports()),
		RightHand: newJSONHand(h.RightHand(), h.RightSupports()),
		Members:   h.Len(),
	}
	return p.encode(out)
}

// printMatchJSON prints a search outcome as a JSON object.
func (p *Printer) printMatchJSON(m types.Match, found bool) error {
	out := jsonMatch{Found: found}
	if found {
		mask := m.Mask
		out.Mask = &mask
		out.Operation = m.Operation.String()
		out.Fingerprint = m.Record.ShortFingerprint()
		out.Record = &m.Record
	}
	return p.encode(out)
}

func (p *Printer) encode(v any) error {
	indent := p.opts.IndentSize
	if indent <= 0 {
		indent = DefaultIndentSize
	}
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", strings.Repeat(" ", indent))
	return enc.Encode(v)
}
