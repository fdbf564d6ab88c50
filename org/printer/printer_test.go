package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/orgtrace/internal/recordtext"
	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/pkg/types"
)

// cleanTree is already in traversal order, so text output must reproduce it.
const cleanTree = `First Name: Ada
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

First Name: Edsger
Second Name: Dijkstra
Fingerprint: ED0000001
Position: Right Hand

First Name: Barbara
Second Name: Liskov
Fingerprint: BL0000002
Position: Support_Right

`

func buildTree(t *testing.T, text string) *org.Hierarchy {
	t.Helper()
	recs, err := recordtext.ParseString(text)
	require.NoError(t, err)
	h, err := org.Build(recs)
	require.NoError(t, err)
	return h
}

func TestPrinter_Text_RoundTrip(t *testing.T) {
	h := buildTree(t, cleanTree)

	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.PrintHierarchy(h))
	require.Equal(t, cleanTree, buf.String())
}

func TestPrinter_Text_ReordersToTraversal(t *testing.T) {
	shuffled := `First Name: Edsger
Second Name: Dijkstra
Fingerprint: ED0000001
Position: Right Hand

First Name: Barbara
Second Name: Liskov
Fingerprint: BL0000002
Position: Support_Right

First Name: Alan
Second Name: Turing
Fingerprint: QW98ER76T
Position: Left Hand

First Name: Grace
Second Name: Hopper
Fingerprint: ZX55CV44B
Position: Support_Left

First Name: Ada
Second Name: Lovelace
Fingerprint: AB12CD34E
Position: Boss
`
	h := buildTree(t, shuffled)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintHierarchy(h))
	require.Equal(t, cleanTree, buf.String())
}

func TestPrinter_JSON(t *testing.T) {
	h := buildTree(t, cleanTree)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintHierarchy(h))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.EqualValues(t, 5, result["members"])

	boss := result["boss"].(map[string]any)
	require.Equal(t, "Ada", boss["first_name"])

	left := result["left_hand"].(map[string]any)
	require.Equal(t, "Alan", left["first_name"])
	require.Len(t, left["supports"], 1)
}

func TestPrinter_JSON_MissingHand(t *testing.T) {
	h := buildTree(t, "First Name: Ada\nSecond Name: L\nFingerprint: AB12CD34E\nPosition: Boss\n")

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatJSON}).PrintHierarchy(h))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Nil(t, result["left_hand"])
	require.Nil(t, result["right_hand"])
}

func TestPrinter_Tree(t *testing.T) {
	h := buildTree(t, cleanTree)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Format: FormatTree, IndentSize: 2, ShowFingerprints: true}).PrintHierarchy(h))
	require.Equal(t, `Boss: Ada Lovelace [AB12CD34E]
  Left Hand: Alan Turing [QW98ER76T]
    Support_Left: Grace Hopper [ZX55CV44B]
  Right Hand: Edsger Dijkstra [ED0000001]
    Support_Right: Barbara Liskov [BL0000002]
`, buf.String())
}

func TestPrinter_UnknownFormat(t *testing.T) {
	h := buildTree(t, cleanTree)
	err := New(&bytes.Buffer{}, Options{Format: "xml"}).PrintHierarchy(h)
	require.Error(t, err)
	require.False(t, ValidFormat("xml"))
	require.True(t, ValidFormat(FormatTree))
}

func TestPrinter_PrintMatch(t *testing.T) {
	m := types.Match{
		Record:    types.Record{FirstName: "Alan", SecondName: "Turing", Fingerprint: "QW98ER76TXYZ"},
		Mask:      5,
		Operation: types.OpXOR,
	}

	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.PrintMatch(m, true))
	require.Equal(t,
		"Successful Decrypt! The Mask used was mask_5 of type (XOR) and The fingerprint was QW98ER76T belonging to Alan Turing\n",
		buf.String())

	buf.Reset()
	require.NoError(t, p.PrintMatch(types.Match{}, false))
	require.Equal(t, "Unsuccesful decrypt, Looks like he got away\n", buf.String())
}

func TestPrinter_PrintMatch_JSON(t *testing.T) {
	m := types.Match{
		Record:    types.Record{FirstName: "Alan", SecondName: "Turing", Fingerprint: "QW98ER76T"},
		Mask:      0,
		Operation: types.OpAND,
	}

	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatJSON})
	require.NoError(t, p.PrintMatch(m, true))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, true, result["found"])
	require.EqualValues(t, 0, result["mask"])
	require.Equal(t, "AND", result["operation"])

	buf.Reset()
	require.NoError(t, p.PrintMatch(types.Match{}, false))
	require.JSONEq(t, `{"found": false}`, buf.String())
}
