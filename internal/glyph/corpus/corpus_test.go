package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/glyph/internal/glyph/canon"
	"github.com/Neumenon/glyph/internal/glyph/fingerprint"
	"github.com/Neumenon/glyph/internal/glyph/parser"
	"github.com/Neumenon/glyph/internal/glyph/value"
)

func TestGenerateDeterministicForSameSeed(t *testing.T) {
	cfg := Config{Seed: 42, Records: 5, FieldSpread: 3}
	a := Generate(cfg)
	b := Generate(cfg)

	require.Len(t, a, 5)
	require.Len(t, b, 5)
	for i := range a {
		assert.Equal(t, canon.Canonicalize(a[i], canon.NoTabular()), canon.Canonicalize(b[i], canon.NoTabular()))
	}
}

func TestGenerateRespectsFieldSpread(t *testing.T) {
	cfg := Config{Seed: 1, Records: 10, FieldSpread: 2}
	records := Generate(cfg)

	keys := map[string]struct{}{}
	for _, r := range records {
		m, err := r.Map()
		require.NoError(t, err)
		for _, e := range m {
			keys[e.Key] = struct{}{}
		}
	}
	assert.LessOrEqual(t, len(keys), 2)
}

func TestGenerateDropRateOmitsFields(t *testing.T) {
	cfg := Config{Seed: 7, Records: 50, FieldSpread: len(fieldNames), DropRate: 1.0}
	records := Generate(cfg)
	for _, r := range records {
		m, err := r.Map()
		require.NoError(t, err)
		assert.Len(t, m, 0)
	}
}

func TestGenerateTriggersAutoTabularAboveMinRows(t *testing.T) {
	cfg := Config{Seed: 3, Records: 6, FieldSpread: 2}
	records := Generate(cfg)
	v := value.ListFromSlice(records)

	withTab := canon.Canonicalize(v, canon.Default())
	withoutTab := canon.Canonicalize(v, canon.NoTabular())
	assert.NotEqual(t, withTab, withoutTab)
}

func TestGenerateExercisesIdAndTimeVariants(t *testing.T) {
	cfg := Config{Seed: 9, Records: 4, FieldSpread: len(fieldNames)}
	records := Generate(cfg)

	for _, r := range records {
		m, err := r.Map()
		require.NoError(t, err)

		var sawID, sawTime bool
		for _, e := range m {
			switch e.Key {
			case "record_id":
				id, err := e.Value.ID()
				require.NoError(t, err)
				assert.Equal(t, "rec", id.Prefix)
				assert.NotEmpty(t, id.Value)
				sawID = true
			case "encounter_ts":
				_, err := e.Value.Time()
				require.NoError(t, err)
				sawTime = true
			}
		}
		assert.True(t, sawID)
		assert.True(t, sawTime)

		text := canon.Canonicalize(r, canon.NoTabular())
		reparsed, err := parser.Parse(text)
		require.NoError(t, err)
		assert.True(t, fingerprint.Equal(r, reparsed))
	}
}

func TestLoadConfigMissingFileErrors(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/corpus.yaml")
	assert.Error(t, err)
}
