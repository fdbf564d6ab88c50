// Package cipher decodes binary-digit text lines into the encrypted
// fingerprint bytes consumed by org/search.
package cipher

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/joshuapare/orgtrace/pkg/types"
)

const maxLong = 1<<63 - 1

const (
	// DefaultLines is the number of lines (bytes) in a cipher input.
	DefaultLines = types.FingerprintLen

	// BitsPerLine is the number of binary digits per line in strict mode.
	BitsPerLine = 8
)

// Sequence is a decoded cipher: one byte per input line.
type Sequence []byte

// Decoder converts binary-digit lines to bytes.
type Decoder struct {
	// Lines is the number of lines to consume.
	// Default: DefaultLines
	Lines int

	// Strict rejects lines whose leading token is not exactly BitsPerLine
	// binary digits. When false, a line decodes to the value of its leading
	// binary digits truncated to 8 bits, or 0 if it has none.
	// Default: false
	Strict bool
}

// Decode reads lines from r until Lines lines are consumed or the input ends.
// Fewer lines than required fail with types.ErrIncomplete.
func (d Decoder) Decode(r io.Reader) (Sequence, error) {
	want := d.Lines
	if want <= 0 {
		want = DefaultLines
	}

	out := make(Sequence, 0, want)
	scanner := bufio.NewScanner(r)
	for len(out) < want && scanner.Scan() {
		b, err := d.decodeLine(scanner.Bytes())
		if err != nil {
			return nil, fmt.Errorf("cipher: line %d: %w", len(out)+1, err)
		}
		out = append(out, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "cipher: reading input", Err: err}
	}
	if len(out) < want {
		return nil, fmt.Errorf("cipher: got %d of %d lines: %w", len(out), want, types.ErrIncomplete)
	}
	return out, nil
}

// DecodeBytes decodes cipher lines held in memory.
func (d Decoder) DecodeBytes(data []byte) (Sequence, error) {
	return d.Decode(bytes.NewReader(data))
}

// Decode decodes DefaultLines lines leniently.
func Decode(r io.Reader) (Sequence, error) {
	return Decoder{}.Decode(r)
}

// decodeLine parses the leading binary digits of line, most significant bit
// first. Leading blanks and an optional sign are accepted, as strtol does.
func (d Decoder) decodeLine(line []byte) (byte, error) {
	i := 0
	for i < len(line) && isBlank(line[i]) {
		i++
	}
	neg := false
	if !d.Strict && i < len(line) && (line[i] == '+' || line[i] == '-') {
		neg = line[i] == '-'
		i++
	}

	// Overflow saturates to LONG_MAX, or LONG_MIN when negative.
	limit := uint64(maxLong)
	if neg {
		limit++
	}

	var v uint64
	digits := 0
	for ; i < len(line) && (line[i] == '0' || line[i] == '1'); i++ {
		bit := uint64(line[i] - '0')
		if v > (limit-bit)>>1 {
			v = limit
		} else {
			v = v<<1 | bit
		}
		digits++
	}

	if d.Strict {
		rest := bytes.TrimSpace(line[i:])
		if digits != BitsPerLine || len(rest) != 0 {
			return 0, fmt.Errorf("%w: %q", types.ErrBadDigits, line)
		}
	}
	if neg {
		v = -v
	}
	return byte(v), nil
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}
