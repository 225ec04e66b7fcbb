package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Neumenon/glyph/internal/glyph/value"
)

func TestCanonicalizeEmptyContainers(t *testing.T) {
	assert.Equal(t, "[]", Canonicalize(value.List(), Default()))
	assert.Equal(t, "{}", Canonicalize(value.Map(), Default()))
	assert.Equal(t, "Empty{}", Canonicalize(value.Struct("Empty"), Default()))
}

func TestCanonicalizeListNoCommas(t *testing.T) {
	v := value.List(value.Int(1), value.Int(2), value.Int(3))
	assert.Equal(t, "[1 2 3]", Canonicalize(v, NoTabular()))
}

func TestCanonicalizeMapSortsKeysByCanonicalBytes(t *testing.T) {
	v := value.Map(value.Field("b", value.Int(1)), value.Field("a", value.Int(2)))
	assert.Equal(t, "{a=2 b=1}", Canonicalize(v, Default()))
}

func TestCanonicalizeMapSortsQuotedBeforeBare(t *testing.T) {
	// canonical bytes of bare "b" is 0x62; of quoted `"a b"` is 0x22,... -> '"' (0x22) sorts before 'b' (0x62)
	v := value.Map(value.Field("a b", value.Int(1)), value.Field("b", value.Int(2)))
	assert.Equal(t, `{"a b"=1 b=2}`, Canonicalize(v, Default()))
}

func TestCanonicalizeStruct(t *testing.T) {
	v := value.Struct("User", value.Field("name", value.Str("Ada")), value.Field("age", value.Int(30)))
	assert.Equal(t, "User{age=30 name=Ada}", Canonicalize(v, Default()))
}

func TestCanonicalizeSum(t *testing.T) {
	v := value.SumOf("Some", value.Int(1))
	assert.Equal(t, "Some(1)", Canonicalize(v, Default()))

	v2 := value.SumEmpty("None")
	assert.Equal(t, "None()", Canonicalize(v2, Default()))
}

func TestCanonicalizeNullStylePresets(t *testing.T) {
	assert.Equal(t, "∅", Canonicalize(value.Null(), Default()))
	assert.Equal(t, "_", Canonicalize(value.Null(), LLM()))
}

func TestCanonicalizeAutoTabularTrigger(t *testing.T) {
	rows := make([]value.Value, 4)
	for i := range rows {
		rows[i] = value.Map(value.Field("id", value.Int(int64(i))))
	}
	v := value.ListFromSlice(rows)
	got := Canonicalize(v, Default())
	assert.Equal(t, "@tab _ [id]\n|0|\n|1|\n|2|\n|3|\n@end", got)
}

func TestCanonicalizeAutoTabularBelowMinRowsStaysPlain(t *testing.T) {
	rows := []value.Value{
		value.Map(value.Field("id", value.Int(1))),
		value.Map(value.Field("id", value.Int(2))),
	}
	v := value.ListFromSlice(rows)
	got := Canonicalize(v, Default())
	assert.Equal(t, "[{id=1} {id=2}]", got)
}

func TestCanonicalizeTabularMissingCellEmitsNull(t *testing.T) {
	rows := []value.Value{
		value.Map(value.Field("id", value.Int(1)), value.Field("extra", value.Int(9))),
		value.Map(value.Field("id", value.Int(2))),
		value.Map(value.Field("id", value.Int(3))),
	}
	v := value.ListFromSlice(rows)
	got := Canonicalize(v, Default())
	assert.Equal(t, "@tab _ [extra id]\n|9|1|\n|∅|2|\n|∅|3|\n@end", got)
}

func TestCanonicalizeNoTabularOptionDisablesAutoTabular(t *testing.T) {
	rows := make([]value.Value, 4)
	for i := range rows {
		rows[i] = value.Map(value.Field("id", value.Int(int64(i))))
	}
	v := value.ListFromSlice(rows)
	got := Canonicalize(v, NoTabular())
	assert.Equal(t, "[{id=0} {id=1} {id=2} {id=3}]", got)
}

func TestCanonicalizeTabularCellEscaping(t *testing.T) {
	rows := []value.Value{
		value.Map(value.Field("s", value.Str("a|b"))),
		value.Map(value.Field("s", value.Str("c\nd"))),
		value.Map(value.Field("s", value.Str("e"))),
	}
	v := value.ListFromSlice(rows)
	got := Canonicalize(v, Default())
	assert.Equal(t, "@tab _ [s]\n|\"a\\|b\"|\n|\"c\\\\nd\"|\n|e|\n@end", got)
}
