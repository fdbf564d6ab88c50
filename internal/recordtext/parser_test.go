package recordtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/orgtrace/pkg/types"
)

const cleanSample = `First Name: Ada
Second Name: Lovelace
Fingerprint: AB12CD34E
Position: Boss

First Name: Alan
Second Name: Turing
Fingerprint: QW98ER76T
Position: Left Hand

First Name: Grace
Second Name: Hopper
Fingerprint: ZX55CV44B
Position: Support_Left

`

func TestParse(t *testing.T) {
	recs, err := ParseString(cleanSample)
	require.NoError(t, err)
	require.Equal(t, []types.Record{
		{FirstName: "Ada", SecondName: "Lovelace", Fingerprint: "AB12CD34E", Role: types.RoleBoss},
		{FirstName: "Alan", SecondName: "Turing", Fingerprint: "QW98ER76T", Role: types.RoleLeftHand},
		{FirstName: "Grace", SecondName: "Hopper", Fingerprint: "ZX55CV44B", Role: types.RoleSupportLeft},
	}, recs)
}

func TestParse_EdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.Record
	}{
		{
			name:  "empty input",
			input: "",
			want:  []types.Record{},
		},
		{
			name:  "crlf line endings and padding",
			input: "First Name:   Ada  \r\nSecond Name: Lovelace\r\nFingerprint: AB12CD34E\r\nPosition: Boss \r\n\r\n",
			want: []types.Record{
				{FirstName: "Ada", SecondName: "Lovelace", Fingerprint: "AB12CD34E", Role: types.RoleBoss},
			},
		},
		{
			name:  "missing label yields empty field",
			input: "First Name: Ada\nLovelace\nFingerprint: AB12CD34E\nPosition: Boss\n",
			want: []types.Record{
				{FirstName: "Ada", Fingerprint: "AB12CD34E", Role: types.RoleBoss},
			},
		},
		{
			name:  "truncated trailing record is dropped",
			input: "First Name: Ada\nSecond Name: Lovelace\nFingerprint: AB12CD34E\nPosition: Boss\n\nFirst Name: Alan\nSecond Name: Turing\n",
			want: []types.Record{
				{FirstName: "Ada", SecondName: "Lovelace", Fingerprint: "AB12CD34E", Role: types.RoleBoss},
			},
		},
		{
			name:  "unknown role kept for the hierarchy to drop",
			input: "First Name: Bob\nSecond Name: Janitor\nFingerprint: 000000000\nPosition: Janitor\n",
			want: []types.Record{
				{FirstName: "Bob", SecondName: "Janitor", Fingerprint: "000000000", Role: "Janitor"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := ParseString(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, recs)
		})
	}
}

func TestParse_TruncatesToCapacity(t *testing.T) {
	input := "First Name: " + strings.Repeat("a", 150) + "\nSecond Name: b\nFingerprint: " +
		strings.Repeat("9", 80) + "\nPosition: Boss\n"

	recs, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].FirstName, types.NameCapacity)
	require.Len(t, recs[0].Fingerprint, types.FingerprintCapacity)
}

func TestParse_RoundTrip(t *testing.T) {
	recs, err := ParseString(cleanSample)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Emit(&sb, recs))
	require.Equal(t, cleanSample, sb.String())
}

func TestParse_UnsupportedEncoding(t *testing.T) {
	_, err := Parse([]byte(cleanSample), ParseOptions{InputEncoding: "EBCDIC"})
	require.ErrorIs(t, err, types.ErrEncoding)
}
