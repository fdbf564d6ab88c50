package recordtext

import (
	"bufio"
	"io"

	"github.com/joshuapare/orgtrace/pkg/types"
)

// GroupOrder is the role order used by EmitGrouped.
var GroupOrder = []types.Role{
	types.RoleBoss,
	types.RoleRightHand,
	types.RoleLeftHand,
	types.RoleSupportRight,
	types.RoleSupportLeft,
}

// Emit writes records in the given order.
func Emit(w io.Writer, records []types.Record) error {
	bw := bufio.NewWriter(w)
	for i := range records {
		writeBlock(bw, &records[i])
	}
	return bw.Flush()
}

// EmitGrouped writes records grouped by role in GroupOrder, keeping arrival
// order within a group. Records with unrecognized roles are not written.
func EmitGrouped(w io.Writer, records []types.Record) error {
	bw := bufio.NewWriter(w)
	for _, role := range GroupOrder {
		for i := range records {
			if records[i].Role == role {
				writeBlock(bw, &records[i])
			}
		}
	}
	return bw.Flush()
}

func writeBlock(bw *bufio.Writer, r *types.Record) {
	line := func(label, value string) {
		bw.WriteString(label)
		bw.WriteByte(' ')
		bw.WriteString(value)
		bw.WriteString(LF)
	}
	line(LabelFirstName, r.FirstName)
	line(LabelSecondName, r.SecondName)
	line(LabelFingerprint, r.Fingerprint)
	line(LabelPosition, string(r.Role))
	bw.WriteString(LF)
}
