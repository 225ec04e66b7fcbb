package canon

import (
	"sort"
	"strings"

	"github.com/Neumenon/glyph/internal/glyph/scalarenc"
	"github.com/Neumenon/glyph/internal/glyph/tabular"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

// Canonicalize returns the canonical textual form of v under opts. This is
// the single recursive dispatch over the twelve-variant sum; there is no
// vtable, just a kind switch.
func Canonicalize(v value.Value, opts Options) string {
	var b strings.Builder
	emit(&b, v, opts)
	return b.String()
}

func emit(b *strings.Builder, v value.Value, opts Options) {
	switch v.Kind() {
	case value.KindNull:
		b.WriteString(scalarenc.EmitNull(opts.NullStyle))
	case value.KindBool:
		bv, _ := v.Bool()
		b.WriteString(scalarenc.EmitBool(bv))
	case value.KindInt:
		iv, _ := v.Int()
		b.WriteString(scalarenc.EmitInt(iv))
	case value.KindFloat:
		fv, _ := v.Float()
		b.WriteString(scalarenc.EmitFloat(fv))
	case value.KindStr:
		sv, _ := v.Str()
		b.WriteString(scalarenc.EmitString(sv))
	case value.KindBytes:
		bs, _ := v.Bytes()
		b.WriteString(scalarenc.EmitBytes(bs))
	case value.KindTime:
		tv, _ := v.Time()
		b.WriteString(scalarenc.EmitTime(tv))
	case value.KindID:
		idv, _ := v.ID()
		b.WriteString(scalarenc.EmitID(idv))
	case value.KindList:
		emitList(b, v, opts)
	case value.KindMap:
		emitMap(b, v, opts)
	case value.KindStruct:
		emitStruct(b, v, opts)
	case value.KindSum:
		emitSum(b, v, opts)
	}
}

func emitList(b *strings.Builder, v value.Value, opts Options) {
	elems, _ := v.List()
	if opts.AutoTabular {
		if cols, ok := tabular.Detect(elems, opts.MinRows, opts.MaxCols, opts.AllowMissing); ok {
			emitTabular(b, elems, cols, opts)
			return
		}
	}
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		emit(b, e, opts)
	}
	b.WriteByte(']')
}

func emitTabular(b *strings.Builder, elems []value.Value, cols []string, opts Options) {
	b.WriteString("@tab _ [")
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(scalarenc.EmitString(c))
	}
	b.WriteString("]\n")
	for _, row := range elems {
		b.WriteByte('|')
		for _, col := range cols {
			cell, found := row.Get(col)
			var cellText string
			if !found {
				cellText = scalarenc.EmitNull(opts.NullStyle)
			} else {
				cellText = Canonicalize(cell, opts)
			}
			b.WriteString(tabular.EscapeCell(cellText))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	b.WriteString("@end")
}

func emitMap(b *strings.Builder, v value.Value, opts Options) {
	entries, _ := v.Map()
	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}
	emitEntries(b, entries, opts)
}

func emitStruct(b *strings.Builder, v value.Value, opts Options) {
	sp, _ := v.StructPayload()
	b.WriteString(scalarenc.EmitString(sp.TypeName))
	if len(sp.Fields) == 0 {
		b.WriteString("{}")
		return
	}
	emitEntries(b, sp.Fields, opts)
}

// emitEntries sorts entries by the byte sequence of their canonicalized
// key and writes "{k=v k=v ...}". The sort key is the already-emitted
// key string, so a quoted key orders by its leading '"' byte.
func emitEntries(b *strings.Builder, entries []value.Entry, opts Options) {
	sorted := make([]value.Entry, len(entries))
	copy(sorted, entries)
	sortEntriesByKeyBytes(sorted)

	b.WriteByte('{')
	for i, e := range sorted {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(scalarenc.EmitString(e.Key))
		b.WriteByte('=')
		emit(b, e.Value, opts)
	}
	b.WriteByte('}')
}

func sortEntriesByKeyBytes(entries []value.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return scalarenc.EmitString(entries[i].Key) < scalarenc.EmitString(entries[j].Key)
	})
}

func emitSum(b *strings.Builder, v value.Value, opts Options) {
	sp, _ := v.SumPayload()
	b.WriteString(scalarenc.EmitString(sp.Tag))
	b.WriteByte('(')
	if sp.Value != nil {
		emit(b, *sp.Value, opts)
	}
	b.WriteByte(')')
}
