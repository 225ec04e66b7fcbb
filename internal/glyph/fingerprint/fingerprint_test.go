package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/glyph/internal/glyph/canon"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

func TestFingerprintStableLength(t *testing.T) {
	fp := Fingerprint(value.Int(42))
	assert.Len(t, fp, 64)
}

func TestFingerprintDeterministic(t *testing.T) {
	v := value.Map(value.Field("b", value.Int(2)), value.Field("a", value.Int(1)))
	assert.Equal(t, Fingerprint(v), Fingerprint(v))
}

func TestFingerprintIgnoresEntryOrder(t *testing.T) {
	v1 := value.Map(value.Field("a", value.Int(1)), value.Field("b", value.Int(2)))
	v2 := value.Map(value.Field("b", value.Int(2)), value.Field("a", value.Int(1)))
	assert.Equal(t, Fingerprint(v1), Fingerprint(v2))
}

func TestFingerprintDiffersOnContent(t *testing.T) {
	assert.NotEqual(t, Fingerprint(value.Int(1)), Fingerprint(value.Int(2)))
}

func TestFingerprintIgnoresTabularShape(t *testing.T) {
	rows := make([]value.Value, 0, 5)
	for i := 0; i < 5; i++ {
		rows = append(rows, value.Map(value.Field("id", value.Int(int64(i)))))
	}
	list := value.ListFromSlice(rows)
	noTab := sha256.Sum256([]byte(canon.Canonicalize(list, canon.NoTabular())))
	require.Equal(t, hex.EncodeToString(noTab[:]), Fingerprint(list))
}

func TestEqual(t *testing.T) {
	a := value.Map(value.Field("x", value.Int(1)))
	b := value.Map(value.Field("x", value.Int(1)))
	c := value.Map(value.Field("x", value.Int(2)))
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}
