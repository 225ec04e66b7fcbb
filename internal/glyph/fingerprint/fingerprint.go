// Package fingerprint implements content-addressable hashing and structural
// equality over GLYPH values, both defined in terms of the no-tabular
// canonical form so a digest never depends on how an unrelated sibling list
// happened to be shaped.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/Neumenon/glyph/internal/glyph/canon"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// Fingerprint returns the lowercase hex SHA-256 digest of v's canonical text
// with auto-tabular forced off.
func Fingerprint(v value.Value) string {
	text := canon.Canonicalize(v, canon.NoTabular())
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Equal reports whether a and b canonicalize to the same no-tabular text.
func Equal(a, b value.Value) bool {
	return canon.Canonicalize(a, canon.NoTabular()) == canon.Canonicalize(b, canon.NoTabular())
}
