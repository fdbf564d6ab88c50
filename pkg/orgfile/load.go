package orgfile

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joshuapare/orgtrace/internal/mmfile"
	"github.com/joshuapare/orgtrace/internal/recordtext"
	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/org/cipher"
	"github.com/joshuapare/orgtrace/pkg/types"
)

// readFile maps path and hands its bytes to fn. The bytes are only valid
// inside fn.
func readFile(path string, fn func([]byte) error) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", types.ErrNotFound, path, err)
		}
		return &types.Error{Kind: types.ErrKindIO, Msg: "open " + path, Err: err}
	}
	fnErr := fn(data)
	if err := cleanup(); err != nil && fnErr == nil {
		return &types.Error{Kind: types.ErrKindIO, Msg: "unmap " + path, Err: err}
	}
	return fnErr
}

// LoadRecords parses a clean record file in stream order.
func LoadRecords(path string, opts LoadOptions) ([]types.Record, error) {
	var records []types.Record
	err := readFile(path, func(data []byte) error {
		var err error
		records, err = recordtext.Parse(data, recordtext.ParseOptions{InputEncoding: opts.Encoding})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load records %s: %w", path, err)
	}
	return records, nil
}

// LoadHierarchy parses a clean record file and builds its hierarchy.
func LoadHierarchy(path string, opts LoadOptions) (*org.Hierarchy, org.Stats, error) {
	records, err := LoadRecords(path, opts)
	if err != nil {
		return nil, org.Stats{}, err
	}
	h, stats, err := org.BuildWithOptions(records, org.Options{MaxMembers: opts.MaxMembers})
	if err != nil {
		return nil, stats, fmt.Errorf("build hierarchy from %s: %w", path, err)
	}
	return h, stats, nil
}

// LoadCipher decodes a binary-digit cipher file.
func LoadCipher(path string, d cipher.Decoder) (cipher.Sequence, error) {
	var seq cipher.Sequence
	err := readFile(path, func(data []byte) error {
		var err error
		seq, err = d.DecodeBytes(data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load cipher %s: %w", path, err)
	}
	return seq, nil
}
