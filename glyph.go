// Package glyph is the public entry point for the GLYPH token-efficient
// textual serialization format: deterministic canonicalization, a
// permissive parser, content fingerprinting, and a JSON bridge. Internals
// live under internal/glyph/*; this package is the only layer callers
// outside the module are expected to import.
package glyph

import (
	"github.com/Neumenon/glyph/internal/glyph/canon"
	"github.com/Neumenon/glyph/internal/glyph/fingerprint"
	"github.com/Neumenon/glyph/internal/glyph/jsonbridge"
	"github.com/Neumenon/glyph/internal/glyph/parser"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// Value is the universal GLYPH value: a twelve-variant tagged union shared
// by every operation in this package.
type Value = value.Value

// Options is the canonicalization knob surface: auto-tabular on/off and
// its thresholds, and the null-emission style.
type Options = canon.Options

// NullStyle selects how Null is rendered: NullSymbol ("∅", the default) or
// NullUnderscore ("_", used by the LLM preset).
type NullStyle = canon.NullStyle

const (
	NullSymbol     = canon.NullSymbol
	NullUnderscore = canon.NullUnderscore
)

// DefaultOptions returns the baseline option bundle: auto-tabular enabled
// with min_rows=3, max_cols=20, allow_missing=true, null_style=SYMBOL.
func DefaultOptions() Options { return canon.Default() }

// LLMOptions returns the "LLM preset": identical to DefaultOptions but
// with null_style=UNDERSCORE, shaving two bytes off every null ("∅" is
// three bytes in UTF-8, "_" is one) in contexts where token cost dominates
// readability.
func LLMOptions() Options { return canon.LLM() }

// NoTabularOptions returns DefaultOptions with auto-tabular disabled. This
// is the option bundle Fingerprint and Equal always use internally.
func NoTabularOptions() Options { return canon.NoTabular() }

// Parse reads a single GLYPH value from text. Trailing tokens after the
// value are not checked; use ParseStrict for that.
func Parse(text string) (Value, error) {
	return parser.Parse(text)
}

// ParseStrict behaves like Parse but additionally requires that nothing
// but whitespace/EOF follows the parsed value.
func ParseStrict(text string) (Value, error) {
	p, err := parser.New(text)
	if err != nil {
		return Value{}, err
	}
	v, err := p.ParseValue()
	if err != nil {
		return Value{}, err
	}
	if err := p.ConsumeNewlines(); err != nil {
		return Value{}, err
	}
	if !p.AtEOF() {
		return Value{}, &parser.ParseError{Msg: "unexpected trailing input after value"}
	}
	return v, nil
}

// Canonicalize returns the deterministic canonical textual form of v under
// opts.
func Canonicalize(v Value, opts Options) string {
	return canon.Canonicalize(v, opts)
}

// Fingerprint returns the lowercase hex SHA-256 digest of v's canonical
// text, computed with auto-tabular forced off so it never depends on the
// shape of an unrelated sibling list.
func Fingerprint(v Value) string {
	return fingerprint.Fingerprint(v)
}

// Equal reports whether a and b canonicalize to the same no-tabular text.
func Equal(a, b Value) bool {
	return fingerprint.Equal(a, b)
}

// FromJSON maps generic JSON-shaped data (the output of encoding/json
// decoding into `any`, ideally via a Decoder with UseNumber so Int/Float
// are classified correctly) onto the corresponding GLYPH variant.
func FromJSON(j any) (Value, error) {
	return jsonbridge.FromJSON(j)
}

// ToJSON maps v back onto generic JSON-shaped data.
func ToJSON(v Value) (any, error) {
	return jsonbridge.ToJSON(v)
}

// JSONToGlyph decodes JSON-shaped data and canonicalizes it in one step.
func JSONToGlyph(j any, opts Options) (string, error) {
	v, err := FromJSON(j)
	if err != nil {
		return "", err
	}
	return Canonicalize(v, opts), nil
}

// GlyphToJSON parses GLYPH text and converts it to JSON-shaped data in one
// step.
func GlyphToJSON(text string) (any, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return ToJSON(v)
}
