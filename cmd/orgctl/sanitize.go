package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/orgtrace/internal/writer"
	"github.com/joshuapare/orgtrace/pkg/orgfile"
)

func init() {
	cmd := newSanitizeCmd()
	rootCmd.AddCommand(cmd)
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <raw_dump> <clean_out>",
		Short: "Clean a corrupted record dump into a grouped record file",
		Long: `The sanitize command strips corruption markers and line breaks from a raw
record dump, extracts every labeled record, drops repeated fingerprints and
writes the survivors grouped by position.

Example:
  orgctl sanitize dump.txt clean.txt
  orgctl sanitize dump.txt clean.txt --encoding WINDOWS-1252`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSanitize(args)
		},
	}
}

func runSanitize(args []string) error {
	rawPath, outPath := args[0], args[1]

	printVerbose("Sanitizing %s\n", rawPath)

	report, err := orgfile.Sanitize(rawPath, &writer.FileWriter{Path: outPath}, orgfile.SanitizeOptions{
		Encoding: cfg.Input.Encoding,
	})
	if err != nil {
		return fmt.Errorf("failed to sanitize %s: %w", rawPath, err)
	}

	if wantJSON() {
		return printJSON(map[string]interface{}{
			"input":      rawPath,
			"output":     outPath,
			"extracted":  report.Extracted,
			"duplicates": report.Duplicates,
			"written":    report.Written,
		})
	}

	printInfo("Wrote %d records to %s (%d extracted, %d duplicates)\n",
		report.Written, outPath, report.Extracted, report.Duplicates)
	return nil
}
