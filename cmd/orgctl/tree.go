package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/orgtrace/org/printer"
	"github.com/joshuapare/orgtrace/pkg/orgfile"
)

var (
	treeFormat   string
	treeIndent   int
	treeShowKeys bool
	treeMax      int
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().StringVar(&treeFormat, "format", "", "Output format: text, json, tree (default from config)")
	cmd.Flags().IntVar(&treeIndent, "indent", 2, "Indent width for tree output")
	cmd.Flags().BoolVar(&treeShowKeys, "fingerprints", false, "Show fingerprints in tree output")
	cmd.Flags().IntVar(&treeMax, "max-members", 0, "Fail if more members would be stored (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <clean_file>",
		Short: "Rebuild and print the org hierarchy",
		Long: `The tree command reads a clean record file, rebuilds the hierarchy and
prints its members in traversal order.

Example:
  orgctl tree clean.txt
  orgctl tree clean.txt --format tree --fingerprints
  orgctl tree clean.txt --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	path := args[0]

	format := printer.Format(cfg.Output.Format)
	if treeFormat != "" {
		format = printer.Format(treeFormat)
	}
	if !printer.ValidFormat(format) {
		return fmt.Errorf("unknown format %q", format)
	}

	h, stats, err := orgfile.LoadHierarchy(path, orgfile.LoadOptions{
		Encoding:   cfg.Input.Encoding,
		MaxMembers: treeMax,
	})
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	printVerbose("Loaded %d members (%d replaced, %d orphaned, %d unknown)\n",
		h.Len(), stats.Replaced, stats.Orphaned, stats.Unknown)

	opts := printer.DefaultOptions()
	opts.Format = format
	opts.IndentSize = treeIndent
	opts.ShowFingerprints = treeShowKeys

	return printer.New(stdout(), opts).PrintHierarchy(h)
}
