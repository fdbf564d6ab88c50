package orgfile

import (
	"fmt"

	"github.com/joshuapare/orgtrace/internal/logger"
	"github.com/joshuapare/orgtrace/org"
	"github.com/joshuapare/orgtrace/org/search"
	"github.com/joshuapare/orgtrace/pkg/types"
)

// DecryptResult is the outcome of Decrypt.
type DecryptResult struct {
	Match types.Match
	Found bool
	Stats org.Stats
}

// Decrypt builds the hierarchy from recordsPath, decodes cipherPath and
// searches masks maskStart..maskStart+span.
//
// A cipher that does not decode to exactly types.FingerprintLen bytes
// returns an error wrapping types.ErrIncomplete and no search is run. An exhausted search is not an
// error: Found is false.
func Decrypt(recordsPath, cipherPath string, maskStart int, opts DecryptOptions) (DecryptResult, error) {
	h, stats, err := LoadHierarchy(recordsPath, opts.Load)
	if err != nil {
		return DecryptResult{}, err
	}

	seq, err := LoadCipher(cipherPath, opts.Decoder)
	if err != nil {
		return DecryptResult{Stats: stats}, err
	}
	if len(seq) != types.FingerprintLen {
		return DecryptResult{Stats: stats}, fmt.Errorf("cipher %s: %d bytes, want %d: %w",
			cipherPath, len(seq), types.FingerprintLen, types.ErrIncomplete)
	}

	span := search.DefaultSpan
	if opts.Span != nil {
		span = *opts.Span
	}
	logger.L.Debug("orgfile: searching", "members", h.Len(), "from", maskStart, "span", span)

	m, found := search.Engine{Span: span}.Search(h, seq, maskStart)
	return DecryptResult{Match: m, Found: found, Stats: stats}, nil
}
