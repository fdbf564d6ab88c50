// Package types defines the shared data model for orgtrace: parsed records,
// role labels, fingerprints, masking operations and search matches, plus
// the typed error taxonomy used across packages.
//
// Design goals:
//   - Bounded fields with explicit, silent truncation.
//   - Fingerprint comparison over a fixed 9-byte window.
//   - Typed errors with stable categories (format/incomplete/capacity/...).
//
// This package has no dependencies beyond the standard library.
package types
