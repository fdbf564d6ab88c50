package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/orgtrace/internal/recordtext"
	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/pkg/types"
)

const (
	// MatchFoundFormat reports a successful search: mask, operation,
	// fingerprint (first 9 bytes), first name, second name.
	MatchFoundFormat = "Successful Decrypt! The Mask used was mask_%d of type (%s) and The fingerprint was %s belonging to %s %s\n"

	// MatchNotFound reports an exhausted search. The text is fixed output,
	// spelling included.
	MatchNotFound = "Unsuccesful decrypt, Looks like he got away\n"
)

// printHierarchyText prints record blocks in traversal order.
func (p *Printer) printHierarchyText(h *org.Hierarchy) error {
	return recordtext.Emit(p.writer, h.Records())
}

// printHierarchyTree prints an indented tree, one member per line.
func (p *Printer) printHierarchyTree(h *org.Hierarchy) error {
	indent := p.opts.IndentSize
	if indent <= 0 {
		indent = DefaultIndentSize
	}

	for m := range h.Members() {
		depth := 0
		switch m.Slot {
		case org.SlotLeftHand, org.SlotRightHand:
			if h.Boss() != nil {
				depth = 1
			}
		case org.SlotLeftSupport, org.SlotRightSupport:
			depth = 1
			if h.Boss() != nil {
				depth = 2
			}
		}

		pad := strings.Repeat(" ", depth*indent)
		if _, err := fmt.Fprintf(p.writer, "%s%s: %s %s", pad, m.Record.Role, m.Record.FirstName, m.Record.SecondName); err != nil {
			return err
		}
		if p.opts.ShowFingerprints {
			if _, err := fmt.Fprintf(p.writer, " [%s]", m.Record.Fingerprint); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.writer); err != nil {
			return err
		}
	}
	return nil
}

// printMatchText prints the decrypt report line.
func (p *Printer) printMatchText(m types.Match, found bool) error {
	if !found {
		_, err := fmt.Fprint(p.writer, MatchNotFound)
		return err
	}
	_, err := fmt.Fprintf(p.writer, MatchFoundFormat,
		m.Mask, m.Operation, m.Record.ShortFingerprint(), m.Record.FirstName, m.Record.SecondName)
	return err
}
