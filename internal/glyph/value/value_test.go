package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorsWrongKindReturnsTypeError(t *testing.T) {
	v := Int(1)
	_, err := v.Str()
	require.Error(t, err)
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, KindStr, te.Want)
	assert.Equal(t, KindInt, te.Got)
}

func TestMustAccessors(t *testing.T) {
	assert.Equal(t, int64(7), Int(7).MustInt())
	assert.Equal(t, "x", Str("x").MustStr())
	assert.True(t, Bool(true).MustBool())
	assert.Equal(t, []byte("ab"), Bytes([]byte("ab")).MustBytes())
	assert.Equal(t, ID{Prefix: "p", Value: "v"}, NewID("p", "v").MustID())
	assert.Len(t, List(Int(1), Int(2)).MustList(), 2)
	assert.Len(t, Map(Field("a", Null())).MustMap(), 1)
	assert.Equal(t, "T", Struct("T").MustStructPayload().TypeName)
	assert.Equal(t, "Some", SumOf("Some", Int(1)).MustSumPayload().Tag)

	assert.PanicsWithError(t,
		(&TypeError{Want: KindStr, Got: KindInt}).Error(),
		func() { Int(1).MustStr() })
}

func TestNumberCoercesIntAndFloatOnly(t *testing.T) {
	n, err := Int(3).Number()
	require.NoError(t, err)
	assert.Equal(t, 3.0, n)

	n, err = Float(2.5).Number()
	require.NoError(t, err)
	assert.Equal(t, 2.5, n)

	_, err = Str("x").Number()
	require.Error(t, err)
}

func TestIntAndFloatNeverEqualAcrossVariant(t *testing.T) {
	a := Int(2)
	b := Float(2.0)
	assert.NotEqual(t, a.Kind(), b.Kind())
}

func TestBytesIsDistinctFromStr(t *testing.T) {
	b := Bytes([]byte("abc"))
	s := Str("abc")
	assert.Equal(t, KindBytes, b.Kind())
	assert.Equal(t, KindStr, s.Kind())
}

func TestBytesCopiesOnConstructAndAccess(t *testing.T) {
	src := []byte("abc")
	v := Bytes(src)
	src[0] = 'z'
	got, _ := v.Bytes()
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'q'
	got2, _ := v.Bytes()
	assert.Equal(t, []byte("abc"), got2)
}

func TestGetOnMapAndStruct(t *testing.T) {
	m := Map(Field("a", Int(1)), Field("b", Int(2)))
	v, ok := m.Get("a")
	require.True(t, ok)
	i, _ := v.Int()
	assert.EqualValues(t, 1, i)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	s := Struct("T", Field("x", Int(9)))
	v, ok = s.Get("x")
	require.True(t, ok)
	i, _ = v.Int()
	assert.EqualValues(t, 9, i)
}

func TestIndexBounds(t *testing.T) {
	l := List(Int(1), Int(2))
	_, err := l.Index(5)
	require.Error(t, err)
	var re *RangeError
	assert.ErrorAs(t, err, &re)

	v, err := l.Index(1)
	require.NoError(t, err)
	i, _ := v.Int()
	assert.EqualValues(t, 2, i)
}

func TestLen(t *testing.T) {
	assert.Equal(t, 3, List(Int(1), Int(2), Int(3)).Len())
	assert.Equal(t, 2, Map(Field("a", Null()), Field("b", Null())).Len())
	assert.Equal(t, 0, Int(1).Len())
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	inner := List(Int(1), Int(2))
	original := Map(Field("list", inner))
	clone := original.Clone()

	clone.Set("list", List(Int(99)))
	got, _ := original.Get("list")
	elems, _ := got.List()
	require.Len(t, elems, 2)
}

func TestSetAndAppend(t *testing.T) {
	m := Map()
	m.Set("k", Int(1))
	v, ok := m.Get("k")
	require.True(t, ok)
	i, _ := v.Int()
	assert.EqualValues(t, 1, i)

	l := List()
	l.Append(Int(1))
	assert.Equal(t, 1, l.Len())
}

func TestTimeRoundTripsInstant(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	v := Time(now)
	got, err := v.Time()
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestSumEmptyHasNilPayload(t *testing.T) {
	v := SumEmpty("None")
	sp, err := v.SumPayload()
	require.NoError(t, err)
	assert.Nil(t, sp.Value)
}
