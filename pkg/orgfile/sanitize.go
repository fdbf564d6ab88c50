package orgfile

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/orgtrace/internal/logger"
	"github.com/joshuapare/orgtrace/internal/recordtext"
	"github.com/joshuapare/orgtrace/internal/writer"
)

// SanitizeReport summarizes a Sanitize run.
type SanitizeReport struct {
	Extracted  int // records found in the raw stream
	Duplicates int // records dropped for a repeated fingerprint
	Written    int // records written to the clean stream
}

// Sanitize cleans a corrupted record dump and commits the clean stream,
// grouped by role, to sink.
func Sanitize(rawPath string, sink writer.Sink, opts SanitizeOptions) (SanitizeReport, error) {
	var report SanitizeReport
	var out bytes.Buffer

	err := readFile(rawPath, func(data []byte) error {
		text, err := recordtext.Decode(data, opts.Encoding)
		if err != nil {
			return err
		}
		extracted := recordtext.Extract(recordtext.Sanitize(text))
		unique := recordtext.Dedupe(extracted)

		report.Extracted = len(extracted)
		report.Duplicates = len(extracted) - len(unique)
		for _, r := range unique {
			if r.Role.Known() {
				report.Written++
			}
		}
		return recordtext.EmitGrouped(&out, unique)
	})
	if err != nil {
		return report, fmt.Errorf("sanitize %s: %w", rawPath, err)
	}

	if err := sink.Commit(out.Bytes()); err != nil {
		return report, fmt.Errorf("write clean stream: %w", err)
	}
	logger.L.Info("orgfile: sanitized", "path", rawPath,
		"extracted", report.Extracted, "duplicates", report.Duplicates, "written", report.Written)
	return report, nil
}
