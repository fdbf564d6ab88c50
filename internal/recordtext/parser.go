package recordtext

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/joshuapare/orgtrace/pkg/types"
)

// ParseOptions controls clean-stream parsing.
type ParseOptions struct {
	// InputEncoding names the source encoding ("" or UTF-8, UTF-16LE, WINDOWS-1252).
	// A byte order mark in the data takes precedence.
	InputEncoding string
}

// Parse reads a clean record stream: records of four consecutive lines
// (First Name, Second Name, Fingerprint, Position) separated by blank lines.
//
// A line lacking its expected label yields an empty field. A record cut short
// by the end of input is dropped. Records are returned in stream order with
// no role validation; that is the hierarchy's job.
func Parse(data []byte, opts ParseOptions) ([]types.Record, error) {
	text, err := Decode(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(bytes.NewReader(text))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	records := make([]types.Record, 0, InitialRecordCapacity)
	labels := [LinesPerRecord]string{LabelFirstName, LabelSecondName, LabelFingerprint, LabelPosition}

	for scanner.Scan() {
		// Skip blank lines between records
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}

		var fields [LinesPerRecord]string
		fields[0] = extractValue(scanner.Text(), labels[0])

		complete := true
		for i := 1; i < LinesPerRecord; i++ {
			if !scanner.Scan() {
				complete = false
				break
			}
			fields[i] = extractValue(scanner.Text(), labels[i])
		}
		if !complete {
			break
		}

		records = append(records, types.NewRecord(fields[0], fields[1], fields[2], types.Role(fields[3])))
	}
	if err := scanner.Err(); err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "recordtext: scanning record stream", Err: err}
	}
	return records, nil
}

// ParseString is a convenience wrapper around Parse for UTF-8 text.
func ParseString(text string) ([]types.Record, error) {
	return Parse([]byte(text), ParseOptions{})
}

// extractValue returns the whitespace-trimmed text after label in line, or ""
// when line does not contain label.
func extractValue(line, label string) string {
	idx := strings.Index(line, label)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+len(label):])
}
