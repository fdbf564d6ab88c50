package recordtext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/orgtrace/pkg/types"
)

func TestSanitize(t *testing.T) {
	raw := []byte("Fi#rst N?ame: A!da\r\nSecond@ Name: Love&lace$\n")
	require.Equal(t, "First Name: AdaSecond Name: Lovelace", string(Sanitize(raw)))
}

func TestSanitize_Cap(t *testing.T) {
	raw := bytes.Repeat([]byte("a#"), MaxCleanBytes+50)
	out := Sanitize(raw)
	require.Len(t, out, MaxCleanBytes)
	require.NotContains(t, string(out), "#")
}

func TestExtract(t *testing.T) {
	raw := "First Name: A#da\nSecond Name: Love!lace\nFingerprint: AB12CD34E\nPosition: Boss\n\n" +
		"First Name: Alan\nSecond Name: Turing\nFingerprint: QW98ER76T\nPosition: Right Hand\n\n" +
		"First Name: Linus\nSecond Name: T\nFingerprint: LT0000001\nPosition: Support_Right   \n"

	recs := Extract(Sanitize([]byte(raw)))
	require.Equal(t, []types.Record{
		{FirstName: "Ada", SecondName: "Lovelace", Fingerprint: "AB12CD34E", Role: types.RoleBoss},
		{FirstName: "Alan", SecondName: "Turing", Fingerprint: "QW98ER76T", Role: types.RoleRightHand},
		{FirstName: "Linus", SecondName: "T", Fingerprint: "LT0000001", Role: types.RoleSupportRight},
	}, recs)
}

func TestExtract_StopsOnBrokenRecord(t *testing.T) {
	tests := []struct {
		name  string
		clean string
		want  int
	}{
		{name: "no records", clean: "garbage only", want: 0},
		{name: "missing position", clean: "First Name: ASecond Name: BFingerprint: C", want: 0},
		{
			name:  "second record out of order",
			clean: "First Name: ASecond Name: BFingerprint: CPosition: BossFirst Name: XFingerprint: YSecond Name: Z",
			want:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, Extract([]byte(tt.clean)), tt.want)
		})
	}
}

func TestExtract_ClampsBeforeTrimming(t *testing.T) {
	pad := strings.Repeat(" ", types.NameCapacity)
	clean := "First Name:" + pad + "Ada" +
		"Second Name: " + strings.Repeat("L", types.NameCapacity+5) + "   " +
		"Fingerprint:   AB12CD34E   " +
		"Position: Boss"

	recs := Extract([]byte(clean))
	require.Len(t, recs, 1)
	require.Empty(t, recs[0].FirstName, "padding fills the capacity")
	require.Equal(t, strings.Repeat("L", types.NameCapacity-1), recs[0].SecondName, "the leading blank uses one byte")
	require.Equal(t, "AB12CD34E", recs[0].Fingerprint)
	require.Equal(t, types.RoleBoss, recs[0].Role)
}

func TestDedupe(t *testing.T) {
	recs := []types.Record{
		{FirstName: "first", Fingerprint: "123456789"},
		{FirstName: "other", Fingerprint: "987654321"},
		{FirstName: "dup", Fingerprint: "123456789"},
		{FirstName: "dup-suffix", Fingerprint: "123456789XYZ"},
	}
	out := Dedupe(recs)
	require.Len(t, out, 2)
	require.Equal(t, "first", out[0].FirstName)
	require.Equal(t, "other", out[1].FirstName)
}

func TestEmitGrouped(t *testing.T) {
	recs := []types.Record{
		{FirstName: "sl", Role: types.RoleSupportLeft},
		{FirstName: "lh", Role: types.RoleLeftHand},
		{FirstName: "x", Role: "Janitor"},
		{FirstName: "rh", Role: types.RoleRightHand},
		{FirstName: "sr", Role: types.RoleSupportRight},
		{FirstName: "boss", Role: types.RoleBoss},
	}

	var sb strings.Builder
	require.NoError(t, EmitGrouped(&sb, recs))

	var order []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if name, ok := strings.CutPrefix(line, LabelFirstName+" "); ok {
			order = append(order, name)
		}
	}
	require.Equal(t, []string{"boss", "rh", "lh", "sr", "sl"}, order)
}
