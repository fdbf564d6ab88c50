package recordtext

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/orgtrace/pkg/types"
)

// Decode converts input data to UTF-8 bytes if needed.
//
// A UTF-16LE or UTF-8 byte order mark overrides enc. Otherwise enc selects the
// source encoding: "" or UTF-8 (returned as-is, no copy), UTF-16LE, or
// WINDOWS-1252.
func Decode(data []byte, enc string) ([]byte, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return transformBytes(utf16LE(), data[len(UTF16LEBOM):])
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return data[len(UTF8BOM):], nil
	}
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return data, nil // No copy!
	case EncodingUTF16LE:
		return transformBytes(utf16LE(), data)
	case EncodingWindows1252:
		return transformBytes(charmap.Windows1252, data)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrEncoding, enc)
	}
}

// ValidEncoding reports whether enc is accepted by Decode.
func ValidEncoding(enc string) bool {
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8, EncodingUTF16LE, EncodingWindows1252:
		return true
	}
	return false
}

func utf16LE() encoding.Encoding {
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

func transformBytes(enc encoding.Encoding, data []byte) ([]byte, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "recordtext: decode input", Err: err}
	}
	return out, nil
}
