package scalarenc

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Neumenon/glyph/internal/glyph/value"
)

// NullStyle selects how the Null variant is emitted.
type NullStyle int

const (
	// NullSymbol emits "∅" (U+2205). Default.
	NullSymbol NullStyle = iota
	// NullUnderscore emits "_", used by the LLM preset.
	NullUnderscore
)

var reservedWords = map[string]bool{
	"t": true, "f": true, "true": true, "false": true, "null": true, "nil": true, "_": true,
}

// bareChar reports whether r is a character allowed anywhere in a bare
// identifier: [A-Za-z0-9_\-./+@].
func bareChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.' || r == '/' || r == '+' || r == '@':
		return true
	default:
		return false
	}
}

func bareFirstChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_'
}

// isBareSafeString reports whether s may be emitted unquoted as a string
// scalar: non-empty, every char in the bare set, first char a letter or
// underscore, and not one of the reserved words.
func isBareSafeString(s string) bool {
	if s == "" || reservedWords[s] {
		return false
	}
	for i, r := range s {
		if i == 0 && !bareFirstChar(r) {
			return false
		}
		if !bareChar(r) {
			return false
		}
	}
	return true
}

// isBareSafeIDPart reports whether an Id prefix/value component may be
// emitted unquoted: every character in the bare set, with no
// first-character or reserved-word restriction — an Id's value may be
// all-digit or equal a bool word, since after '^' the parser reads
// IDENT, BOOL and INT tokens alike as text. The two shapes it cannot
// read back — a null word and a float-shaped run — stay quoted.
func isBareSafeIDPart(s string) bool {
	switch s {
	case "", "null", "nil", "_":
		return false
	}
	for _, r := range s {
		if !bareChar(r) {
			return false
		}
	}
	return !isFloatShaped(s)
}

// isFloatShaped reports whether s would tokenize as a FLOAT: an optional
// '-', a digit run, and at least one of a '.'-fraction or an exponent,
// consuming the whole string.
func isFloatShaped(s string) bool {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	start := i
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	sawFloat := false
	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == fracStart {
			return false
		}
		sawFloat = true
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == expStart {
			return false
		}
		sawFloat = true
	}
	return i == n && sawFloat
}

// EmitNull renders the Null variant per the given style.
func EmitNull(ns NullStyle) string {
	if ns == NullUnderscore {
		return "_"
	}
	return "∅"
}

// EmitBool renders the Bool variant.
func EmitBool(b bool) string {
	if b {
		return "t"
	}
	return "f"
}

// EmitInt renders the Int variant: decimal, no leading zeros, "-0" folds
// to "0".
func EmitInt(i int64) string {
	if i == 0 {
		return "0"
	}
	return strconv.FormatInt(i, 10)
}

// EmitFloat renders the Float variant: shortest round-trip decimal,
// exponential form when |x| < 1e-4 or |x| >= 1e15, with NaN/Inf/-Inf as
// emit-only literals and both zeroes folding to "0".
func EmitFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs < 1e-4 || abs >= 1e15 {
		// strconv's 'e' format with shortest precision already strips
		// trailing mantissa zeros, lowercases the exponent marker, signs
		// the exponent, and pads it to at least two digits.
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// EmitString renders the Str variant: bare when safe, quoted otherwise.
func EmitString(s string) string {
	if isBareSafeString(s) {
		return s
	}
	return quoteString(s)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// EmitBytes renders the Bytes variant: b64"<standard base64>".
func EmitBytes(b []byte) string {
	return `b64"` + base64.StdEncoding.EncodeToString(b) + `"`
}

// EmitTime renders the Time variant: UTC ISO-8601 with trailing-zero-free
// fractional seconds and a literal "Z".
func EmitTime(t time.Time) string {
	u := t.UTC()
	base := u.Format("2006-01-02T15:04:05")
	nsec := u.Nanosecond()
	if nsec == 0 {
		return base + "Z"
	}
	frac := fmt.Sprintf("%09d", nsec)
	frac = strings.TrimRight(frac, "0")
	return base + "." + frac + "Z"
}

// EmitID renders the Id variant: bare "^prefix:value" / "^value" form when
// both parts (or the sole value, with empty prefix) are bare-safe;
// otherwise a single quoted string under the "^" marker.
func EmitID(id value.ID) string {
	if id.Prefix == "" {
		if isBareSafeIDPart(id.Value) {
			return "^" + id.Value
		}
		return `^"` + escapeForQuotedString(id.Value) + `"`
	}
	if isBareSafeIDPart(id.Prefix) && isBareSafeIDPart(id.Value) {
		return "^" + id.Prefix + ":" + id.Value
	}
	combined := id.Prefix + ":" + id.Value
	return `^"` + escapeForQuotedString(combined) + `"`
}

// escapeForQuotedString applies the same escape table as quoteString but
// returns the inner contents without surrounding quotes, for composing the
// Id's combined quoted form.
func escapeForQuotedString(s string) string {
	quoted := quoteString(s)
	return quoted[1 : len(quoted)-1]
}
