// Package orgfile provides file-level operations over org record streams:
// loading a hierarchy, decoding a cipher file, running a decrypt search and
// sanitizing corrupted dumps.
//
// Example:
//
//	res, err := orgfile.Decrypt("clean.txt", "cipher_bits.txt", 3, orgfile.DecryptOptions{})
//	if errors.Is(err, types.ErrIncomplete) {
//	    // not enough cipher lines; no search was run
//	}
//	if res.Found {
//	    fmt.Println(res.Match.Record.FirstName, res.Match.Mask, res.Match.Operation)
//	}
package orgfile
