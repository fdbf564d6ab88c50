// Package printer renders a hierarchy and search results.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/pkg/types"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs four-line record blocks in traversal order. The
	// output can be parsed back by recordtext.Parse.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatTree outputs an indented tree for humans.
	FormatTree Format = "tree"
)

// ValidFormat reports whether f names a supported format.
func ValidFormat(f Format) bool {
	switch f {
	case FormatText, FormatJSON, FormatTree:
		return true
	}
	return false
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, tree).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (json and tree only).
	// Default: 2
	IndentSize int

	// ShowFingerprints includes fingerprints in tree output.
	// Default: true
	ShowFingerprints bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:           FormatText,
		IndentSize:       DefaultIndentSize,
		ShowFingerprints: true,
	}
}

// Printer handles formatted output of hierarchies and search results.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintHierarchy(h)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintHierarchy prints every member in traversal order.
func (p *Printer) PrintHierarchy(h *org.Hierarchy) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printHierarchyJSON(h)
	case FormatTree:
		return p.printHierarchyTree(h)
	case FormatText, "":
		return p.printHierarchyText(h)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// PrintMatch prints the outcome of a mask search.
func (p *Printer) PrintMatch(m types.Match, found bool) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printMatchJSON(m, found)
	default:
		return p.printMatchText(m, found)
	}
}
