package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/orgtrace/org/cipher"
	"github.com/joshuapare/orgtrace/org/printer"
	"github.com/joshuapare/orgtrace/pkg/orgfile"
	"github.com/joshuapare/orgtrace/pkg/types"
)

var (
	decryptSpan   int
	decryptStrict bool
)

func init() {
	cmd := newDecryptCmd()
	cmd.Flags().IntVar(&decryptSpan, "span", -1, "Masks to try past the start (default from config)")
	cmd.Flags().BoolVar(&decryptStrict, "strict", false, "Require exactly 8 binary digits per cipher line")
	rootCmd.AddCommand(cmd)
}

func newDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <clean_file> <cipher_file> [mask_start]",
		Short: "Find the member whose fingerprint matches an encrypted cipher",
		Long: `The decrypt command rebuilds the hierarchy from a clean record file, decodes
nine binary-digit lines from the cipher file and tries masks
mask_start..mask_start+span with XOR and AND against every member.

The first match by mask, then operation, then traversal order is printed.

Example:
  orgctl decrypt clean.txt cipher.txt 0
  orgctl decrypt clean.txt cipher.txt 40 --span 20
  orgctl decrypt clean.txt cipher.txt 0 --json`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecrypt(args)
		},
	}
}

func runDecrypt(args []string) error {
	recordsPath, cipherPath := args[0], args[1]

	maskStart := cfg.Search.MaskStart
	if len(args) == 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid mask_start %q: %w", args[2], err)
		}
		maskStart = n
	}

	span := cfg.Search.Span
	if decryptSpan >= 0 {
		span = decryptSpan
	}

	opts := orgfile.DecryptOptions{
		Load: orgfile.LoadOptions{Encoding: cfg.Input.Encoding},
		Decoder: cipher.Decoder{Strict: cfg.Cipher.Strict || decryptStrict},
		Span: &span,
	}

	printVerbose("Searching masks %d..%d\n", maskStart, maskStart+span)

	res, err := orgfile.Decrypt(recordsPath, cipherPath, maskStart, opts)
	if errors.Is(err, types.ErrIncomplete) || errors.Is(err, types.ErrBadDigits) {
		// A short or malformed cipher is reported, not fatal.
		printError("%v\n", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	printVerbose("Hierarchy: %d attached, %d dropped\n", res.Stats.Attached, res.Stats.Dropped())

	popts := printer.DefaultOptions()
	if wantJSON() {
		popts.Format = printer.FormatJSON
	}
	return printer.New(stdout(), popts).PrintMatch(res.Match, res.Found)
}
