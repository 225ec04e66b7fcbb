// Package canon implements deterministic textual canonicalization of GLYPH
// values: scalar emission, key-sorted composite emission, and the
// auto-tabular transform that compresses homogeneous object lists into a
// row-oriented table.
package canon

import "github.com/Neumenon/glyph/internal/glyph/scalarenc"

// NullStyle selects how the Null variant is emitted. Aliased from
// scalarenc so callers of this package never need to import it directly.
type NullStyle = scalarenc.NullStyle

const (
	NullSymbol     = scalarenc.NullSymbol
	NullUnderscore = scalarenc.NullUnderscore
)

// Options is the full knob surface for canonicalization.
type Options struct {
	AutoTabular  bool
	MinRows      int
	MaxCols      int
	AllowMissing bool
	NullStyle    NullStyle
}

// Default returns the default option bundle: tabular enabled, min_rows=3,
// max_cols=20, allow_missing=true, null_style=SYMBOL.
func Default() Options {
	return Options{
		AutoTabular:  true,
		MinRows:      3,
		MaxCols:      20,
		AllowMissing: true,
		NullStyle:    NullSymbol,
	}
}

// LLM returns the "LLM preset": same as Default but null_style=UNDERSCORE.
func LLM() Options {
	o := Default()
	o.NullStyle = NullUnderscore
	return o
}

// NoTabular returns the "no-tabular preset": same as Default but with
// auto_tabular disabled. This is the option bundle Fingerprint always uses
// internally, regardless of what the caller passes elsewhere.
func NoTabular() Options {
	o := Default()
	o.AutoTabular = false
	return o
}
