package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/orgtrace/internal/fixedpoint"
)

func init() {
	cmd := newFixedCmd()
	rootCmd.AddCommand(cmd)
}

func newFixedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixed <x> <a> <b> <c> <q>",
		Short: "Evaluate a*x^2 - b*x + c in 16-bit Q-format fixed point",
		Long: `The fixed command treats x, a, b and c as raw 16-bit Q-format values with
q fractional bits and prints the polynomial a*x^2 - b*x + c.

Example:
  orgctl fixed 640 320 256 128 8`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixed(args)
		},
	}
}

func runFixed(args []string) error {
	vals := make([]int16, len(args))
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", arg, err)
		}
		vals[i] = int16(n)
	}

	q := vals[4]
	if !fixedpoint.ValidQ(q) {
		return fmt.Errorf("q must be between 0 and %d, got %d", fixedpoint.MaxQ, q)
	}

	return fixedpoint.DescribePoly(os.Stdout, vals[0], vals[1], vals[2], vals[3], q)
}
