// Package tabular implements the auto-tabular detection heuristic and the
// row/cell escaping rules shared by the canonical emitter and the parser's
// tabular row reader. It holds no dependency on the canon package: the
// emitter renders each cell itself and passes the resulting text to
// EscapeCell, so this package never needs to know how composite values are
// canonicalized.
package tabular

import (
	"sort"
	"strings"

	"github.com/Neumenon/glyph/internal/glyph/scalarenc"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// Detect reports whether list should be tabulated, and if so, returns the
// sorted column set. Trigger conditions, all required:
//  1. every element is a Map or Struct
//  2. len(list) >= minRows
//  3. 1 <= |union(keys)| <= maxCols
//  4. if !allowMissing, every element has exactly the union key set
//
// No key-overlap threshold is applied: rows sharing no keys at all still
// tabulate as long as the key union stays within maxCols.
func Detect(list []value.Value, minRows, maxCols int, allowMissing bool) (cols []string, ok bool) {
	if len(list) < minRows {
		return nil, false
	}

	rowKeys := make([][]string, len(list))
	union := make(map[string]bool)
	for i, elem := range list {
		keys, isRecord := recordKeys(elem)
		if !isRecord {
			return nil, false
		}
		rowKeys[i] = keys
		for _, k := range keys {
			union[k] = true
		}
	}
	if len(union) == 0 || len(union) > maxCols {
		return nil, false
	}

	if !allowMissing {
		for _, keys := range rowKeys {
			if len(keys) != len(union) {
				return nil, false
			}
		}
	}

	cols = make([]string, 0, len(union))
	for k := range union {
		cols = append(cols, k)
	}
	sortByCanonicalBytes(cols)
	return cols, true
}

// recordKeys returns the field/entry keys of a Map or Struct value, or
// (nil, false) if v is neither.
func recordKeys(v value.Value) ([]string, bool) {
	switch v.Kind() {
	case value.KindMap:
		entries, _ := v.Map()
		keys := make([]string, len(entries))
		for i, e := range entries {
			keys[i] = e.Key
		}
		return keys, true
	case value.KindStruct:
		sp, _ := v.StructPayload()
		keys := make([]string, len(sp.Fields))
		for i, f := range sp.Fields {
			keys[i] = f.Key
		}
		return keys, true
	default:
		return nil, false
	}
}

// sortByCanonicalBytes sorts keys by the UTF-8 bytes of their canonical
// string emission — the same byte-sort rule composite Map/Struct emission
// uses for its own key ordering, so a table's column order matches what a
// non-tabular Map emission of the same row would have used.
func sortByCanonicalBytes(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		return scalarenc.EmitString(keys[i]) < scalarenc.EmitString(keys[j])
	})
}

// EscapeCell applies the cell-escape table to a canonicalized cell string:
// "\" -> "\\", "|" -> "\|", newline -> "\n", applied in that order.
func EscapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// UnescapeCell reverses EscapeCell: "\\" -> "\", "\|" -> "|", "\n" -> newline.
func UnescapeCell(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			case '|':
				b.WriteByte('|')
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
