package processor

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLabelEncodeFirstSeenOrder(t *testing.T) {
	t.Parallel()

	codes, mapping := LabelEncode([]string{"Torgersen", "Biscoe", "Torgersen", "Dream", "Biscoe"})
	assert.Equal(t, []int{0, 1, 0, 2, 1}, codes)
	assert.Equal(t, map[string]int{"Torgersen": 0, "Biscoe": 1, "Dream": 2}, mapping)
}

func TestLabelEncodeEmptyInput(t *testing.T) {
	t.Parallel()

	codes, mapping := LabelEncode(nil)
	assert.Empty(t, codes)
	assert.Empty(t, mapping)
}

func TestLabelEncodeProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z]{1,6}`), 1, 64).Draw(rt, "values")
		codes, mapping := LabelEncode(values)

		require.Len(rt, codes, len(values))

		distinct := make(map[string]bool)
		for _, v := range values {
			distinct[v] = true
		}
		require.Len(rt, mapping, len(distinct), "one code per distinct value")

		seen := make(map[int]bool)
		for _, code := range mapping {
			assert.GreaterOrEqual(rt, code, 0)
			assert.Less(rt, code, len(mapping), "codes stay in 0..k-1")
			assert.False(rt, seen[code], "codes must not repeat")
			seen[code] = true
		}

		for i, v := range values {
			assert.Equal(rt, mapping[v], codes[i], "equal values get equal codes")
		}
	})
}

func TestEncodeColumnAppendsCodes(t *testing.T) {
	t.Parallel()

	df := dataframe.LoadRecords([][]string{
		{"species", "body_mass_g"},
		{"Adelie", "3750"},
		{"Gentoo", "4500"},
		{"Adelie", "3700"},
	})

	encoded, mapping, err := EncodeColumn(df, "species", "_encoded")
	require.NoError(t, err)

	assert.Equal(t, []string{"species", "body_mass_g", "species_encoded"}, encoded.Names())
	assert.Equal(t, map[string]int{"Adelie": 0, "Gentoo": 1}, mapping)
	assert.Equal(t, []string{"0", "1", "0"}, encoded.Col("species_encoded").Records())
	assert.Equal(t, []string{"Adelie", "Gentoo", "Adelie"}, encoded.Col("species").Records(),
		"the raw column is retained")
}

func TestEncodeColumnMissingColumn(t *testing.T) {
	t.Parallel()

	df := dataframe.LoadRecords([][]string{{"island"}, {"Dream"}})
	_, _, err := EncodeColumn(df, "species", "_encoded")
	assert.ErrorIs(t, err, ErrMissingColumn)
}
